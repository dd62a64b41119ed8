package contextx

import (
	"context"
	"log/slog"
)

// contextKey is unexported to prevent collisions with other packages.
type contextKey string

const (
	loggerKey  = contextKey("logger")
	actorIDKey = contextKey("actorID")
)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext retrieves the operation-scoped logger.
// It returns slog.Default() when none was stored.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}
