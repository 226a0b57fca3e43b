package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pool traffic metrics. Pools record against these only when given a
// name, so unnamed throwaway pools stay out of the metric space.
var (
	poolGets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reuse",
			Subsystem: "pool",
			Name:      "gets_total",
			Help:      "Total number of instances fetched from a pool",
		},
		[]string{"pool", "source"},
	)

	poolPuts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reuse",
			Subsystem: "pool",
			Name:      "puts_total",
			Help:      "Total number of instances returned to a pool",
		},
		[]string{"pool"},
	)

	poolRejects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reuse",
			Subsystem: "pool",
			Name:      "rejected_puts_total",
			Help:      "Total number of returns rejected as invalid",
		},
		[]string{"pool"},
	)

	poolSpares = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "reuse",
			Subsystem: "pool",
			Name:      "spares",
			Help:      "Number of spare instances currently cached",
		},
		[]string{"pool"},
	)

	poolInUse = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "reuse",
			Subsystem: "pool",
			Name:      "in_use",
			Help:      "Number of instances currently checked out",
		},
		[]string{"pool"},
	)
)

// Sources for RecordPoolGet.
const (
	// GetSourceSpare marks a fetch served from the spare cache.
	GetSourceSpare = "spare"
	// GetSourceFactory marks a fetch that constructed a new instance.
	GetSourceFactory = "factory"
)

// RecordPoolGet records a fetch from the named pool.
func RecordPoolGet(pool, source string) {
	poolGets.WithLabelValues(pool, source).Inc()
}

// RecordPoolPut records a successful return to the named pool.
func RecordPoolPut(pool string) {
	poolPuts.WithLabelValues(pool).Inc()
}

// RecordPoolReject records a rejected return to the named pool.
func RecordPoolReject(pool string) {
	poolRejects.WithLabelValues(pool).Inc()
}

// SetPoolOccupancy updates the spare and in-use gauges for the named pool.
func SetPoolOccupancy(pool string, spares int, inUse int64) {
	poolSpares.WithLabelValues(pool).Set(float64(spares))
	poolInUse.WithLabelValues(pool).Set(float64(inUse))
}
