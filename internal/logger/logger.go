// Package logger configures the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options selects the handler format, level and destination.
type Options struct {
	Environment string
	Level       slog.Level
	// Path is the log file. The terminal is owned by the game screen, so
	// logs never go to stdout while the game runs. Empty means io.Discard.
	Path string
}

// Setup configures the global slog logger based on environment.
// The returned close function releases the log file.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", opts.Path, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := New(w, opts.Environment, opts.Level)
	slog.SetDefault(logger)

	return logger, closeFn, nil
}

// New builds a logger writing to w. Production uses JSON, anything else text.
func New(w io.Writer, environment string, level slog.Level) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// WithSession adds the game session ID to logger context.
func WithSession(logger *slog.Logger, sessionID string) *slog.Logger {
	return logger.With("session_id", sessionID)
}

// WithError adds error to logger context.
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
