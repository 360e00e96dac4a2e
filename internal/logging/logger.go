package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/wire"

	"github.com/lobintsev/evmcrispr/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	return newLogger(os.Stderr, cfg.Debug, os.Getenv("EVMCRISPR_LOG_LEVEL"))
}

func newLogger(w io.Writer, debug bool, envLevel string) *slog.Logger {
	level := ParseLevel(envLevel, slog.LevelWarn)
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a level name to a slog level, returning def for unknown
// or empty names.
func ParseLevel(name string, def slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return def
	}
}
