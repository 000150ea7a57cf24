package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler serves the customer-facing store pages
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// ListStores returns every store, nearest first when the location resolves
func (h *StoreHandler) ListStores(c echo.Context) error {
	query, ok, err := h.storeQuery(c)
	if !ok {
		return err
	}

	listing, err := h.storeUC.ListStores(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Stores retrieved successfully")
}

// NearbyStores returns the closest stores
func (h *StoreHandler) NearbyStores(c echo.Context) error {
	query, ok, err := h.storeQuery(c)
	if !ok {
		return err
	}

	listing, err := h.storeUC.NearbyStores(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Nearby stores retrieved successfully")
}

// GetStore returns a single store
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	store, err := h.storeUC.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// GetMenu returns the store's menu grouped by category
func (h *StoreHandler) GetMenu(c echo.Context) error {
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	menu, err := h.storeUC.GetMenu(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, menu, "Menu retrieved successfully")
}

// GetStoreQRCode returns a PNG QR code linking to the store's ordering page
func (h *StoreHandler) GetStoreQRCode(c echo.Context) error {
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	png, err := h.storeUC.GetStoreQRCode(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

// storeQuery reads the optional radius (km) and limit query parameters
func (h *StoreHandler) storeQuery(c echo.Context) (*usecase.StoreQuery, bool, error) {
	query := &usecase.StoreQuery{Location: locationRequest(c)}

	radius, _, ok := floatQuery(c, "radius")
	if !ok || radius < 0 {
		return nil, false, response.BadRequest(c, "INVALID_RADIUS", "radius must be a non-negative number of kilometers")
	}
	query.RadiusKm = radius

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return nil, false, response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		query.Limit = limit
	}

	return query, true, nil
}
