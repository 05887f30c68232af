package farmstore

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with farmstore-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDataset adds a dataset name field to the logger.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// WithCount adds a record count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogLoad logs a dataset load operation.
func (l *Logger) LogLoad(ctx context.Context, name string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"dataset", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "load completed",
			"dataset", name,
			"count", count,
		)
	}
}

// LogSave logs a dataset save operation.
func (l *Logger) LogSave(ctx context.Context, name string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"dataset", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "save completed",
			"dataset", name,
			"count", count,
		)
	}
}

// LogSearch logs a condition search.
func (l *Logger) LogSearch(ctx context.Context, conditions, matches int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"conditions", conditions,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"conditions", conditions,
			"matches", matches,
		)
	}
}

// LogSort logs a sort of the canonical collection.
func (l *Logger) LogSort(ctx context.Context, field string, ascending bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sort failed",
			"field", field,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sort completed",
			"field", field,
			"ascending", ascending,
		)
	}
}
