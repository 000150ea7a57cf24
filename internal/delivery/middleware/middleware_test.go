package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "propagates caller id", incoming: "abc-123", keep: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces id with whitespace", incoming: "abc 123"},
		{name: "replaces oversized id", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var ctxLogger *slog.Logger
			err := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				ctxLogger = deliverycontext.GetLogger(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, ctxID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.NotNil(t, ctxLogger)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newConfig := func(debug bool) *config.Config {
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		return cfg
	}

	t.Run("debug logs query and runtime", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/stores?lat=25&lng=121", nil), rec)
		deliverycontext.SetWebView(c, true)

		err := NewLoggerMiddleware(logger, newConfig(true)).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "HTTP Request")
		assert.Contains(t, out, "query=\"lat=25&lng=121\"")
		assert.Contains(t, out, "webview=true")
	})

	t.Run("disabled outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/stores", nil), httptest.NewRecorder())

		err := NewLoggerMiddleware(logger, newConfig(false)).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
