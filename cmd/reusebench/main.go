// Command reusebench measures allocation churn with and without the
// reuse toolkit. Scenarios come from a YAML file; each scenario runs the
// same workload twice, constructing fresh objects every iteration and
// then cycling them through a pool, and the report compares wall time and
// heap allocation between the two.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajitpratap0/reuse/pkg/buflist"
	"github.com/ajitpratap0/reuse/pkg/config"
	"github.com/ajitpratap0/reuse/pkg/observability"
	"github.com/ajitpratap0/reuse/pkg/pool"
)

var version = "0.1.0"

// Scenario describes one benchmark workload.
type Scenario struct {
	// Name identifies the scenario in the report.
	Name string `yaml:"name" json:"name"`
	// Iterations is the number of get/use/put cycles to run.
	Iterations int `yaml:"iterations" json:"iterations"`
	// PayloadBytes is the size of each constructed object's buffer.
	PayloadBytes int `yaml:"payload_bytes" json:"payload_bytes"`
	// Prefill is how many spares to construct before the pooled run.
	Prefill int `yaml:"prefill" json:"prefill"`
	// Working is how many objects are held live at once.
	Working int `yaml:"working" json:"working"`
}

// BenchConfig is the scenario file schema.
type BenchConfig struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Result is the measured outcome of one scenario.
type Result struct {
	Scenario      Scenario   `json:"scenario"`
	DirectNanos   int64      `json:"direct_ns"`
	PooledNanos   int64      `json:"pooled_ns"`
	DirectAllocMB float64    `json:"direct_alloc_mb"`
	PooledAllocMB float64    `json:"pooled_alloc_mb"`
	PoolStats     pool.Stats `json:"pool_stats"`
}

// payload is the benchmark object: a reusable byte buffer of scenario size.
type payload struct {
	data []byte
}

func main() {
	var logLevel string

	root := &cobra.Command{
		Use:   "reusebench",
		Short: "Benchmark allocation churn with and without the reuse toolkit",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zapcore.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			cfg := observability.DefaultLoggingConfig()
			cfg.Level = level
			cfg.Format = "console"
			return observability.InitLogging(cfg)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("reusebench %s (%s)\n", version, runtime.Version())
		},
	})

	var configPath, outputPath string
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run benchmark scenarios from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(configPath, outputPath)
		},
	}
	runCmd.Flags().StringVarP(&configPath, "config", "c", "scenarios.yaml", "Scenario file")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write JSON report to file (default stdout)")
	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	observability.Sync()
}

func runScenarios(configPath, outputPath string) error {
	logger := observability.GetLogger()

	var cfg BenchConfig
	if err := config.Load(configPath, &cfg); err != nil {
		return err
	}
	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("no scenarios in %s", configPath)
	}

	results := make([]Result, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		sc = withDefaults(sc)
		logger.Info("running scenario",
			zap.String("name", sc.Name),
			zap.Int("iterations", sc.Iterations),
			zap.Int("payload_bytes", sc.PayloadBytes))

		result, err := runScenario(sc)
		if err != nil {
			return err
		}
		results = append(results, result)

		logger.Info("scenario complete",
			zap.String("name", sc.Name),
			zap.Duration("direct", time.Duration(result.DirectNanos)),
			zap.Duration("pooled", time.Duration(result.PooledNanos)),
			zap.Float64("direct_alloc_mb", result.DirectAllocMB),
			zap.Float64("pooled_alloc_mb", result.PooledAllocMB))
	}

	report, err := gojson.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	report = append(report, '\n')

	if outputPath == "" {
		_, err = os.Stdout.Write(report)
		return err
	}
	return os.WriteFile(outputPath, report, 0644) //nolint:gosec
}

func withDefaults(sc Scenario) Scenario {
	if sc.Iterations <= 0 {
		sc.Iterations = 100000
	}
	if sc.PayloadBytes <= 0 {
		sc.PayloadBytes = 4096
	}
	if sc.Working <= 0 {
		sc.Working = 16
	}
	if sc.Prefill < 0 {
		sc.Prefill = 0
	}
	return sc
}

func runScenario(sc Scenario) (Result, error) {
	directNanos, directAlloc, _ := measure(func() error {
		var working buflist.List[*payload]
		working.Reserve(sc.Working)
		for i := 0; i < sc.Iterations; i++ {
			working.Add(&payload{data: make([]byte, sc.PayloadBytes)})
			if working.Len() >= sc.Working {
				working.Clear()
			}
		}
		return nil
	})

	p, err := pool.New(func() *payload {
		return &payload{data: make([]byte, sc.PayloadBytes)}
	}, pool.WithName("bench_"+sc.Name))
	if err != nil {
		return Result{}, err
	}
	p.Fill(sc.Prefill)

	pooledNanos, pooledAlloc, pooledErr := measure(func() error {
		var working buflist.List[*payload]
		working.Reserve(sc.Working)
		for i := 0; i < sc.Iterations; i++ {
			working.Add(p.Get())
			if working.Len() >= sc.Working {
				for working.Len() > 0 {
					if err := p.Put(working.Pop()); err != nil {
						return err
					}
				}
			}
		}
		for working.Len() > 0 {
			if err := p.Put(working.Pop()); err != nil {
				return err
			}
		}
		return nil
	})
	if pooledErr != nil {
		return Result{}, pooledErr
	}

	return Result{
		Scenario:      sc,
		DirectNanos:   directNanos,
		PooledNanos:   pooledNanos,
		DirectAllocMB: float64(directAlloc) / (1024 * 1024),
		PooledAllocMB: float64(pooledAlloc) / (1024 * 1024),
		PoolStats:     p.Stats(),
	}, nil
}

// measure runs fn and reports its wall time and the heap bytes allocated
// while it ran.
func measure(fn func() error) (nanos int64, allocBytes uint64, err error) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	err = fn()
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)
	return elapsed.Nanoseconds(), after.TotalAlloc - before.TotalAlloc, err
}
