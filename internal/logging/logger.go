// Package logging wraps log/slog with bitarray-specific field names.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger wraps slog.Logger with bitarray-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, logging is disabled.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.DiscardHandler
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(nil)
}

// New builds a Logger from a format name ("text" or "json") and a level
// name ("debug", "info", "warn", "error").
func New(w io.Writer, format, level string) (*Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case "text":
		return NewTextLogger(w, lvl), nil
	case "json":
		return NewJSONLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// WithSize adds a size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// WithShards adds a shards field to the logger.
func (l *Logger) WithShards(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("shards", n),
	}
}

// LogSet logs a set operation.
func (l *Logger) LogSet(ctx context.Context, position int, value bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "set failed",
			"position", position,
			"value", value,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "set completed",
			"position", position,
			"value", value,
		)
	}
}

// LogGet logs a get operation.
func (l *Logger) LogGet(ctx context.Context, position int, value bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "get failed",
			"position", position,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "get completed",
			"position", position,
			"value", value,
		)
	}
}

// LogVerify logs the outcome of a full write/read verification pass.
func (l *Logger) LogVerify(ctx context.Context, checked int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "verification failed",
			"checked", checked,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "verification completed",
			"checked", checked,
		)
	}
}
