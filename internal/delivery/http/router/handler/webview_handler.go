package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/webview"
	"storefront/internal/webview/render"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebViewHandlerParams holds dependencies for WebViewHandler, injected by Fx.
type WebViewHandlerParams struct {
	fx.In

	RenderOptions render.Options
}

// WebViewHandler tells the page which render workarounds to apply
type WebViewHandler struct {
	options render.Options
}

// NewWebViewHandler is the constructor for WebViewHandler
func NewWebViewHandler(params WebViewHandlerParams) *WebViewHandler {
	return &WebViewHandler{options: params.RenderOptions}
}

// EnvironmentResponse is the body of GET /webview/environment
type EnvironmentResponse struct {
	IsWebView bool            `json:"is_webview"`
	Signals   webview.Signals `json:"signals"`
	Hints     render.Hints    `json:"hints"`
}

// Environment reports the runtime classification made by the WebView middleware
func (h *WebViewHandler) Environment(c echo.Context) error {
	inWebView := deliverycontext.IsWebView(c)

	return response.Success(c, http.StatusOK, EnvironmentResponse{
		IsWebView: inWebView,
		Signals:   webview.SignalsFromRequest(c.Request()),
		Hints:     h.options.HintsFor(inWebView),
	}, "")
}
