package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStoreInput represents the input for creating a store
type CreateStoreInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"max=1000"`
	Address     string   `json:"address" validate:"max=255"`
	Phone       string   `json:"phone" validate:"max=32"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
	IsOpen      bool     `json:"is_open"`
}

// UpdateStoreInput represents a partial store update
type UpdateStoreInput struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,max=255"`
	Phone       *string  `json:"phone,omitempty" validate:"omitempty,max=32"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	// ClearCoordinates removes the store's position
	ClearCoordinates bool  `json:"clear_coordinates,omitempty"`
	IsOpen           *bool `json:"is_open,omitempty"`
}

// CategoryInput represents the input for creating a menu category
type CategoryInput struct {
	Name      string `json:"name" validate:"required,max=50"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

// UpdateCategoryInput represents a partial menu category update
type UpdateCategoryInput struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	SortOrder *int    `json:"sort_order,omitempty" validate:"omitempty,gte=0"`
}

// MenuItemInput represents the input for creating a menu item
type MenuItemInput struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        string     `json:"name" validate:"required,max=100"`
	Description string     `json:"description" validate:"max=500"`
	Price       int64      `json:"price" validate:"gte=0"`
	ImageURL    string     `json:"image_url" validate:"omitempty,url"`
	IsAvailable *bool      `json:"is_available"`
	SortOrder   int        `json:"sort_order" validate:"gte=0"`
}

// UpdateMenuItemInput represents a partial menu item update
type UpdateMenuItemInput struct {
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	ClearCategory bool       `json:"clear_category,omitempty"`
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Price         *int64     `json:"price,omitempty" validate:"omitempty,gte=0"`
	ImageURL      *string    `json:"image_url,omitempty" validate:"omitempty,url"`
	IsAvailable   *bool      `json:"is_available,omitempty"`
	SortOrder     *int       `json:"sort_order,omitempty" validate:"omitempty,gte=0"`
}

// CatalogUsecase manages the store catalog on behalf of store owners and keeps
// the in-memory catalog in sync.
type CatalogUsecase interface {
	// LoadCatalog replaces the in-memory catalog with the persisted stores.
	LoadCatalog(ctx context.Context) error

	// RefreshStore reloads one store into the in-memory catalog, removing it when gone.
	RefreshStore(ctx context.Context, storeID uuid.UUID) error

	// Store management
	ListOwnerStores(ctx context.Context, ownerID string) ([]*entity.Store, error)
	CreateStore(ctx context.Context, ownerID string, input *CreateStoreInput) (*entity.Store, error)
	UpdateStore(ctx context.Context, ownerID string, storeID uuid.UUID, input *UpdateStoreInput) (*entity.Store, error)
	DeleteStore(ctx context.Context, ownerID string, storeID uuid.UUID) error

	// Menu management
	CreateCategory(ctx context.Context, ownerID string, storeID uuid.UUID, input *CategoryInput) (*entity.MenuCategory, error)
	UpdateCategory(ctx context.Context, ownerID string, storeID, categoryID uuid.UUID, input *UpdateCategoryInput) (*entity.MenuCategory, error)
	DeleteCategory(ctx context.Context, ownerID string, storeID, categoryID uuid.UUID) error
	CreateMenuItem(ctx context.Context, ownerID string, storeID uuid.UUID, input *MenuItemInput) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, ownerID string, storeID, itemID uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, ownerID string, storeID, itemID uuid.UUID) error
}
