// Package obs wraps the process-wide structured logger. The solver's
// ambient logging mirrors the two-axis verbosity the original C solver
// used (a narrative "verbose" stream and a detailed "debug" trace
// stream) as zap's Info and Debug levels, rather than inventing a third
// logging convention.
package obs

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger = zap.NewNop()

// Init installs the process-wide logger. verbose raises the level to
// Debug; otherwise only Info-and-above is emitted.
func Init(verbose bool) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	l, err := cfg.Build()
	if err != nil {
		// Fall back rather than leaving the process without a logger.
		l = zap.NewExample()
	}
	log = l
}

// L returns the process-wide logger. Safe to call before Init — it
// returns a no-op logger until one is installed.
func L() *zap.Logger { return log }

// Sync flushes any buffered log entries; call before process exit.
func Sync() {
	_ = log.Sync()
}
