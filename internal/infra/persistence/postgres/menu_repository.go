package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{
		db: db,
	}
}

// CreateCategory persists a new menu category.
func (repo *menuRepository) CreateCategory(ctx context.Context, category *entity.MenuCategory) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategoryNameConflict.WrapMessage(category.Name)
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindCategoryByID retrieves a menu category by its unique ID.
func (repo *menuRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.MenuCategory, error) {
	var categoryM model.MenuCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindCategoriesByStore retrieves a store's categories in display order.
func (repo *menuRepository) FindCategoriesByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.MenuCategory, error) {
	var categoryModels []*model.MenuCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu categories by store")
	}

	categories := make([]*entity.MenuCategory, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// UpdateCategory writes a category's name and sort order.
func (repo *menuRepository) UpdateCategory(ctx context.Context, category *entity.MenuCategory) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuCategoryModel{}).
		Where("id = ?", category.ID).
		Select("name", "sort_order", "updated_at").
		Updates(fromCategoryDomain(category))

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNameConflict.WrapMessage(category.Name)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory soft-deletes a category and detaches its items.
func (repo *menuRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	result := db.Where("id = ?", id).Delete(&model.MenuCategoryModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete menu category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	if err := db.Model(&model.MenuItemModel{}).
		Where("category_id = ?", id).
		Update("category_id", nil).Error; err != nil {
		return errors.Wrap(err, "failed to detach menu items from category")
	}

	return nil
}

// CreateItem persists a new menu item.
func (repo *menuRepository) CreateItem(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid menu item")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindItemByID retrieves a menu item by its unique ID.
func (repo *menuRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by ID")
	}

	return toItemDomain(&itemM), nil
}

// FindItemsByStore retrieves a store's items in display order.
func (repo *menuRepository) FindItemsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu items by store")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

// UpdateItem writes every mutable column of an item.
func (repo *menuRepository) UpdateItem(ctx context.Context, item *entity.MenuItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", item.ID).
		Select("*").
		Omit("id", "store_id", "created_at", "deleted_at").
		Updates(fromItemDomain(item))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid menu item")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// DeleteItem soft-deletes a menu item.
func (repo *menuRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MenuItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete menu item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.MenuCategoryModel) *entity.MenuCategory {
	if data == nil {
		return nil
	}

	return &entity.MenuCategory{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.MenuCategory) *model.MenuCategoryModel {
	if data == nil {
		return nil
	}

	return &model.MenuCategoryModel{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:          data.ID,
		StoreID:     data.StoreID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		IsAvailable: data.IsAvailable,
		SortOrder:   data.SortOrder,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:          data.ID,
		StoreID:     data.StoreID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		IsAvailable: data.IsAvailable,
		SortOrder:   data.SortOrder,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
