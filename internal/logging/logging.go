// Package logging provides the shared zap logger for verdant.
// Every subsystem logs through a named child logger so log lines are
// attributable to one category (gateway, store, imaging, light, watch).
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Categories used across the codebase.
const (
	CategoryGateway = "gateway"
	CategoryStore   = "store"
	CategoryImaging = "imaging"
	CategoryLight   = "light"
	CategorySession = "session"
	CategoryWatch   = "watch"
	CategoryCLI     = "cli"
)

var (
	mu   sync.RWMutex
	root = zap.NewNop()
)

// Init builds the process logger. Verbose enables debug level; otherwise
// info and above. Safe to call more than once; the last call wins.
func Init(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	mu.Lock()
	root = logger
	mu.Unlock()
	return logger, nil
}

// Named returns a child logger for the given category. Before Init it
// returns a no-op logger, so library code can log unconditionally.
func Named(category string) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.Named(category)
}

// Sync flushes buffered log entries. Call at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}
