package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OwnerHandlerParams holds dependencies for OwnerHandler, injected by Fx.
type OwnerHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// OwnerHandler lets authenticated store owners manage their catalog
type OwnerHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewOwnerHandler is the constructor for OwnerHandler
func NewOwnerHandler(params OwnerHandlerParams) *OwnerHandler {
	return &OwnerHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListStores handles listing the caller's stores
func (h *OwnerHandler) ListStores(c echo.Context) error {
	owner, ok, err := ownerID(c)
	if !ok {
		return err
	}

	stores, err := h.catalogUC.ListOwnerStores(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores, "Stores retrieved successfully")
}

// CreateStore handles creating a store
func (h *OwnerHandler) CreateStore(c echo.Context) error {
	owner, ok, err := ownerID(c)
	if !ok {
		return err
	}

	var req usecase.CreateStoreInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	store, err := h.catalogUC.CreateStore(c.Request().Context(), owner, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created successfully")
}

// UpdateStore handles a partial store update
func (h *OwnerHandler) UpdateStore(c echo.Context) error {
	owner, ok, err := ownerID(c)
	if !ok {
		return err
	}
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req usecase.UpdateStoreInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	store, err := h.catalogUC.UpdateStore(c.Request().Context(), owner, storeID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store, "Store updated successfully")
}

// DeleteStore handles deleting a store with its menu
func (h *OwnerHandler) DeleteStore(c echo.Context) error {
	owner, ok, err := ownerID(c)
	if !ok {
		return err
	}
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	if err := h.catalogUC.DeleteStore(c.Request().Context(), owner, storeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return noContent(c)
}

// CreateCategory handles creating a menu category
func (h *OwnerHandler) CreateCategory(c echo.Context) error {
	owner, ok, err := ownerID(c)
	if !ok {
		return err
	}
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req usecase.CategoryInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), owner, storeID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// UpdateCategory handles a partial category update
func (h *OwnerHandler) UpdateCategory(c echo.Context) error {
	owner, ok, err := ownerID(c)
	if !ok {
		return err
	}
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	categoryID, ok, err := uuidParam(c, "categoryID")
	if !ok {
		return err
	}

	var req usecase.UpdateCategoryInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), owner, storeID, categoryID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

// DeleteCategory handles deleting a category; its items become uncategorized
func (h *OwnerHandler) DeleteCategory(c echo.Context) error {
	owner, ok, err := ownerID(c)
	if !ok {
		return err
	}
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	categoryID, ok, err := uuidParam(c, "categoryID")
	if !ok {
		return err
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), owner, storeID, categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return noContent(c)
}

// CreateMenuItem handles creating a menu item
func (h *OwnerHandler) CreateMenuItem(c echo.Context) error {
	owner, ok, err := ownerID(c)
	if !ok {
		return err
	}
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req usecase.MenuItemInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.catalogUC.CreateMenuItem(c.Request().Context(), owner, storeID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created successfully")
}

// UpdateMenuItem handles a partial menu item update
func (h *OwnerHandler) UpdateMenuItem(c echo.Context) error {
	owner, ok, err := ownerID(c)
	if !ok {
		return err
	}
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	itemID, ok, err := uuidParam(c, "itemID")
	if !ok {
		return err
	}

	var req usecase.UpdateMenuItemInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.catalogUC.UpdateMenuItem(c.Request().Context(), owner, storeID, itemID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated successfully")
}

// DeleteMenuItem handles deleting a menu item
func (h *OwnerHandler) DeleteMenuItem(c echo.Context) error {
	owner, ok, err := ownerID(c)
	if !ok {
		return err
	}
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	itemID, ok, err := uuidParam(c, "itemID")
	if !ok {
		return err
	}

	if err := h.catalogUC.DeleteMenuItem(c.Request().Context(), owner, storeID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return noContent(c)
}
