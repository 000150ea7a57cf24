package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuRepository defines menu category and item persistence operations.
type MenuRepository interface {
	CreateCategory(ctx context.Context, category *entity.MenuCategory) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.MenuCategory, error)
	// FindCategoriesByStore returns categories ordered by sort order, then name.
	FindCategoriesByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.MenuCategory, error)
	UpdateCategory(ctx context.Context, category *entity.MenuCategory) error
	// DeleteCategory removes the category; its items become uncategorized.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateItem(ctx context.Context, item *entity.MenuItem) error
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	// FindItemsByStore returns items ordered by sort order, then name.
	FindItemsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.MenuItem, error)
	UpdateItem(ctx context.Context, item *entity.MenuItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
