package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"flavor_remover/internal/config"
)

// New creates a *slog.Logger from cfg writing to stderr and installs it as
// the default logger.
//
// Format "json" produces structured JSON; anything else produces text.
// Level is one of debug, info, warn, error (case-insensitive); defaults to info.
// Debug forces debug level and adds source locations.
func New(cfg config.LogConfig, debug bool) *slog.Logger {
	logger := NewWithWriter(os.Stderr, cfg, debug)
	slog.SetDefault(logger)
	return logger
}

// NewWithWriter is New without touching the default logger.
func NewWithWriter(w io.Writer, cfg config.LogConfig, debug bool) *slog.Logger {
	level := ParseLevel(cfg.Level)
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
