package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/state"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Catalog *state.Catalog
}

// HealthHandler reports liveness plus the loaded catalog size
type HealthHandler struct {
	catalog *state.Catalog
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{catalog: params.Catalog}
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":          "ok",
		"stores":          h.catalog.Len(),
		"catalog_version": h.catalog.Version(),
	}, "Service is healthy")
}
