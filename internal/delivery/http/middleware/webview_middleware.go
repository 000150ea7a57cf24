package middleware

import (
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/webview"

	"github.com/labstack/echo/v4"
)

// WebViewMiddleware classifies each request's runtime with a Detector.
type WebViewMiddleware struct {
	detect webview.Detector
}

// NewWebViewMiddleware uses webview.IsWebView when detect is nil
func NewWebViewMiddleware(detect webview.Detector) *WebViewMiddleware {
	if detect == nil {
		detect = webview.IsWebView
	}

	return &WebViewMiddleware{detect: detect}
}

// Detect records the classification and echoes it in the X-WebView response header.
func (m *WebViewMiddleware) Detect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		inWebView := m.detect(webview.SignalsFromRequest(c.Request()))
		deliverycontext.SetWebView(c, inWebView)
		c.Response().Header().Set(constants.HeaderWebView, strconv.FormatBool(inWebView))

		return next(c)
	}
}
