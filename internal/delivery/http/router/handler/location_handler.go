package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
}

// LocationHandler exposes the location resolver to the page
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{locationUC: params.LocationUC}
}

// ResolveLocation resolves the caller's location; failure is a 422 LOCATION_UNAVAILABLE
func (h *LocationHandler) ResolveLocation(c echo.Context) error {
	location, err := h.locationUC.ResolveLocation(c.Request().Context(), locationRequest(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location resolved successfully")
}
