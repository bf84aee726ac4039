package logger

import (
	"log/slog"
	"os"
	"sync"

	"notes-backend/internal/config"
)

var (
	singleton *slog.Logger
	once      sync.Once
)

// parseLevel maps the configured level name onto a slog.Level, defaulting
// to info for anything unrecognized.
func parseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init builds the singleton logger from the provided config. The first
// call wins; later calls return the same instance.
func Init(cfg config.Config) (*slog.Logger, error) {
	once.Do(func() {
		opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

		var handler slog.Handler
		if cfg.LogFormat == "text" {
			handler = slog.NewTextHandler(os.Stdout, opts)
		} else {
			handler = slog.NewJSONHandler(os.Stdout, opts)
		}

		singleton = slog.New(handler)
	})

	return singleton, nil
}

// L returns the singleton logger instance.
// Init must be called first, otherwise this will return nil.
func L() *slog.Logger {
	return singleton
}
