package tracego

import (
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/tracego/model"
)

// Logger wraps slog.Logger with tracego-specific context.
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
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithEndpoints adds start and goal voxel fields to the logger.
func (l *Logger) WithEndpoints(start, goal model.Voxel) *Logger {
	return &Logger{
		Logger: l.Logger.With("start", start.String(), "goal", goal.String()),
	}
}

// WithOutcome adds an outcome field to the logger.
func (l *Logger) WithOutcome(o model.Outcome) *Logger {
	return &Logger{
		Logger: l.Logger.With("outcome", o.String()),
	}
}

// WithPair adds a batch pair index field to the logger.
func (l *Logger) WithPair(i int) *Logger {
	return &Logger{
		Logger: l.Logger.With("pair", i),
	}
}
