package context

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SetIdentity stores the authenticated caller in both echo.Context and the request context.
func SetIdentity(c echo.Context, identity *service.Identity) {
	c.Set(echoKeys[identityKey], identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}

// GetIdentity returns the authenticated caller, or nil.
func GetIdentity(c echo.Context) *service.Identity {
	identity, _ := echoValueOf[*service.Identity](c, identityKey)

	return identity
}

// WithIdentity returns a new context with the identity.
func WithIdentity(ctx context.Context, identity *service.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext returns the identity on ctx, or nil.
func GetIdentityFromContext(ctx context.Context) *service.Identity {
	identity, _ := valueOf[*service.Identity](ctx, identityKey)

	return identity
}

// SetWebView records whether the caller runs inside a WebView.
func SetWebView(c echo.Context, inWebView bool) {
	c.Set(echoKeys[webViewKey], inWebView)
}

// IsWebView reports the classification recorded by SetWebView; false when unset.
func IsWebView(c echo.Context) bool {
	inWebView, _ := echoValueOf[bool](c, webViewKey)

	return inWebView
}
