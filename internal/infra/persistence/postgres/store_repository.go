// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// CreateStore persists a new store.
func (repo *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrStoreCreationFailed.WrapMessage("missing required store information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrStoreCreationFailed.WrapMessage("invalid store information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindStoreByID retrieves a store by its unique ID.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// FindAllStores retrieves every store, oldest first.
func (repo *storeRepository) FindAllStores(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all stores")
	}

	return toStoreDomains(storeModels), nil
}

// FindStoresByOwner retrieves the stores managed by an owner, newest first.
func (repo *storeRepository) FindStoresByOwner(ctx context.Context, ownerID string) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores by owner")
	}

	return toStoreDomains(storeModels), nil
}

// UpdateStore writes every mutable column, including cleared coordinates.
func (repo *storeRepository) UpdateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Select("*").
		Omit("id", "owner_id", "created_at", "deleted_at").
		Updates(storeM)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrStoreUpdateFailed.WrapMessage("invalid store information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// DeleteStore soft-deletes a store together with its categories and items.
// Callers wanting atomicity run it through the TransactionManager.
func (repo *storeRepository) DeleteStore(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	result := db.Where("id = ?", id).Delete(&model.StoreModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	if err := db.Where("store_id = ?", id).Delete(&model.MenuItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete store menu items")
	}

	if err := db.Where("store_id = ?", id).Delete(&model.MenuCategoryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete store menu categories")
	}

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Phone:       data.Phone,
		ImageURL:    data.ImageURL,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		IsOpen:      data.IsOpen,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toStoreDomains(models []*model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(models))
	for _, storeM := range models {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Phone:       data.Phone,
		ImageURL:    data.ImageURL,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		IsOpen:      data.IsOpen,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
