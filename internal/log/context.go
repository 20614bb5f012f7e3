package log

import (
	"context"
	"log/slog"
)

// ContextKey type for context keys
type ContextKey string

const (
	// LoggerContextKey is the context key for the logger
	LoggerContextKey ContextKey = "logger"
)

// WithContext returns a copy of ctx carrying logger
func WithContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, LoggerContextKey, logger)
}

// FromContext extracts a logger from the context
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(LoggerContextKey).(*Logger); ok {
			return logger
		}
	}
	// Return default logger if not found
	return &Logger{
		Logger:    slog.Default(),
		component: "unknown",
	}
}

// StructuredLogger provides structured logging methods with context awareness
type StructuredLogger struct {
	logger *Logger
}

// NewStructuredLogger creates a new structured logger
func NewStructuredLogger(logger *Logger) *StructuredLogger {
	return &StructuredLogger{
		logger: logger,
	}
}

// LogSaved logs a successful write of the document
func (sl *StructuredLogger) LogSaved(ctx context.Context, backend, key string, size int) {
	fields := NewFields().
		WithStorage(backend, key, size).
		WithOperation(OpSave).
		WithComponent(ComponentStore)

	sl.logger.Logger.DebugContext(ctx, "Document saved", fields.ToSlice()...)
}

// LogImported logs a merged import
func (sl *StructuredLogger) LogImported(ctx context.Context, file, format string, added int) {
	fields := NewFields().
		WithImport(file, format, added).
		WithOperation(OpImport).
		WithComponent(ComponentStore)

	sl.logger.Logger.InfoContext(ctx, "Import merged", fields.ToSlice()...)
}

// LogError logs an error with structured context
func (sl *StructuredLogger) LogError(ctx context.Context, msg string, err error, component string, operation string, fields LogFields) {
	if fields == nil {
		fields = NewFields()
	}
	allFields := fields.
		WithError(err).
		WithOperation(operation).
		WithComponent(component)

	sl.logger.Logger.ErrorContext(ctx, msg, allFields.ToSlice()...)
}
