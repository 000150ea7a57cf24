// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrCategoryNotFound is returned when a menu category is not found.
	ErrCategoryNotFound = errors.New("menu category not found")
	// ErrMenuItemNotFound is returned when a menu item is not found.
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// StoreRepository defines store persistence operations.
type StoreRepository interface {
	CreateStore(ctx context.Context, store *entity.Store) error

	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindAllStores returns every store ordered by creation time; used to warm the catalog.
	FindAllStores(ctx context.Context) ([]*entity.Store, error)

	FindStoresByOwner(ctx context.Context, ownerID string) ([]*entity.Store, error)

	UpdateStore(ctx context.Context, store *entity.Store) error

	// DeleteStore removes the store together with its categories and items.
	DeleteStore(ctx context.Context, id uuid.UUID) error
}
