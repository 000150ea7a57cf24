// Package context carries per-request values (request id, logger, caller identity, WebView flag)
// on both echo.Context and the standard request context.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	identityKey
	webViewKey
)

// echo.Context stores values by string name
var echoKeys = [...]string{ //nolint:gochecknoglobals
	requestIDKey: "request_id",
	loggerKey:    "logger",
	identityKey:  "identity",
	webViewKey:   "webview",
}

func valueOf[T any](ctx context.Context, key ctxKey) (T, bool) {
	val, ok := ctx.Value(key).(T)

	return val, ok
}

func echoValueOf[T any](c echo.Context, key ctxKey) (T, bool) {
	val, ok := c.Get(echoKeys[key]).(T)

	return val, ok
}

// GetRequestID returns the request ID set by the request ID middleware,
// then the one on the request context, else a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := echoValueOf[string](c, requestIDKey); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeys[requestIDKey], requestID)
}

// GetRequestIDFromContext returns the request ID, or "" when absent.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := valueOf[string](ctx, requestIDKey)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := valueOf[*slog.Logger](ctx, loggerKey)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when none is set.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
