// Package observability provides structured logging and Prometheus
// metrics for the reuse toolkit. Logging is zap-based with a process
// logger configured once at startup; metrics cover pool traffic and are
// recorded only for pools that opt in with a name.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is the process logger. Nil until InitLogging succeeds; GetLogger
// falls back to a nop logger so library code can log unconditionally.
var logger *zap.Logger

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	// Level is the minimum level to emit.
	Level zapcore.Level
	// Development enables development-friendly output (DPanic panics, etc).
	Development bool
	// Format is the encoding: "json" or "console".
	Format string
	// OutputPaths are the log sinks; defaults to stdout.
	OutputPaths []string
	// ErrorPaths are the internal-error sinks; defaults to stderr.
	ErrorPaths []string
}

// DefaultLoggingConfig returns a production JSON logger configuration at
// info level.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  zapcore.InfoLevel,
		Format: "json",
	}
}

// InitLogging builds the process logger from config and installs it as
// the zap global logger.
func InitLogging(config LoggingConfig) error {
	logConfig := zap.Config{
		Level:       zap.NewAtomicLevelAt(config.Level),
		Development: config.Development,
		Encoding:    config.Format,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      config.OutputPaths,
		ErrorOutputPaths: config.ErrorPaths,
	}

	if logConfig.Encoding == "" {
		logConfig.Encoding = "json"
	}
	if len(logConfig.OutputPaths) == 0 {
		logConfig.OutputPaths = []string{"stdout"}
	}
	if len(logConfig.ErrorOutputPaths) == 0 {
		logConfig.ErrorOutputPaths = []string{"stderr"}
	}

	built, err := logConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	logger = built
	zap.ReplaceGlobals(logger)
	return nil
}

// GetLogger returns the process logger, or a nop logger when InitLogging
// has not run.
func GetLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
