// Package context carries request-scoped values across the echo and
// context.Context boundaries.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header that carries the request ID in and out.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey is the echo.Context key for the request ID.
const echoRequestIDKey = "request_id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// GetRequestID returns the request ID stored on c, or a fresh UUID when the
// request has none yet.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// WithRequestID attaches requestID to ctx so use cases and publishers can
// stamp it on events.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to
// fallback for background work.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
