// Package debug provides optional debug logging built on log/slog.
// Logging is off by default; Init(true) routes debug output to stderr.
package debug

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = slog.New(slog.DiscardHandler)
)

// Init enables or disables debug logging for the whole process.
func Init(enable bool) {
	mu.Lock()
	defer mu.Unlock()

	if enable {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.DiscardHandler)
	}
}

// Debug logs a debug message with structured attributes.
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
