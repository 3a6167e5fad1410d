package common

import (
	"context"
	"log"
)

// Logger provides structured logging for engine operations
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}

// StdLogger writes to the standard library logger. The CLI installs it on
// the root context.
type StdLogger struct{}

func (l *StdLogger) Log(level, message string, metadata map[string]interface{}) {
	if len(metadata) == 0 {
		log.Printf("[%s] %s", level, message)
		return
	}
	log.Printf("[%s] %s %v", level, message, metadata)
}
