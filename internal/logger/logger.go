// Package logger holds the process-wide zap logger. The TUI owns stdout, so
// the logger writes JSON lines to a file under the data directory.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.Logger = zap.NewNop()

// Init builds the global logger writing to the given file path.
func Init(path string) error {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build()
	if err != nil {
		return err
	}
	global = log
	return nil
}

// L returns the global logger. Before Init it is a no-op logger, which keeps
// tests and early startup quiet.
func L() *zap.Logger {
	return global
}

// Sync flushes buffered log entries.
func Sync() {
	_ = global.Sync()
}
