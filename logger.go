package wordsieve

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/wordsieve/query"
)

// Logger wraps slog.Logger with wordsieve-specific context.
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCache adds the cache blob name to the logger.
func (l *Logger) WithCache(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("cache", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs an index build.
func (l *Logger) LogBuild(ctx context.Context, words int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"words", words,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index built",
			"words", words,
			"duration", duration,
		)
	}
}

// LogCacheLoad logs a cache read. A miss is expected on first use and
// logged at debug level; anything else that forces a rebuild is a warning.
func (l *Logger) LogCacheLoad(ctx context.Context, name string, miss bool, err error) {
	switch {
	case err == nil:
		l.InfoContext(ctx, "index cache loaded",
			"cache", name,
		)
	case miss:
		l.DebugContext(ctx, "index cache miss",
			"cache", name,
			"reason", err,
		)
	default:
		l.WarnContext(ctx, "index cache unusable, rebuilding",
			"cache", name,
			"error", err,
		)
	}
}

// LogCacheSave logs a cache write. Failures are warnings since the index
// is usable without its cache.
func (l *Logger) LogCacheSave(ctx context.Context, name string, size int, err error) {
	if err != nil {
		l.WarnContext(ctx, "index cache save failed",
			"cache", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index cache saved",
			"cache", name,
			"bytes", size,
		)
	}
}

// LogFilter logs a completed filter run.
func (l *Logger) LogFilter(ctx context.Context, expr string, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "filter failed",
			"constraints", expr,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "filter completed",
			"constraints", expr,
			"results", results,
		)
	}
}

// LogStep logs a single query operation.
func (l *Logger) LogStep(ctx context.Context, e query.Event) {
	attrs := []any{
		"op", e.Op,
		"letters", e.Letters,
		"before", e.Before,
		"after", e.After,
	}
	if e.Op == query.OpAtPosition || e.Op == query.OpNotAtPosition {
		attrs = append(attrs, "slot", e.Slot)
	}
	if e.Err != nil {
		attrs = append(attrs, "error", e.Err)
	}
	l.DebugContext(ctx, "query step", attrs...)
}
