// Package log sets up the application logger and names the structured
// fields shared across components.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the handler and level for the application logger.
type Config struct {
	Level  slog.Level
	Format string // "text" or "json"
	Writer io.Writer
}

// New builds a slog.Logger for the given configuration.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Setup builds the logger and installs it as the process default.
func Setup(cfg Config) *slog.Logger {
	logger := New(cfg)
	slog.SetDefault(logger)
	return logger
}
