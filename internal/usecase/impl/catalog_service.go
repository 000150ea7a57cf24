package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	storeRepo repository.StoreRepository
	menuRepo  repository.MenuRepository
	catalog   *state.Catalog
	publisher service.EventPublisher
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	StoreRepo repository.StoreRepository
	MenuRepo  repository.MenuRepository
	Catalog   *state.Catalog
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &catalogService{
		txManager: params.TxManager,
		storeRepo: params.StoreRepo,
		menuRepo:  params.MenuRepo,
		catalog:   params.Catalog,
		publisher: params.Publisher,
		logger:    logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoadCatalog replaces the in-memory catalog with every persisted store.
func (srv *catalogService) LoadCatalog(ctx context.Context) error {
	stores, err := srv.storeRepo.FindAllStores(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load stores")
	}

	srv.catalog.ReplaceStores(stores)
	srv.log(ctx).Info("Catalog loaded", slog.Int("stores", len(stores)))

	return nil
}

// RefreshStore syncs one catalog entry with the repository.
func (srv *catalogService) RefreshStore(ctx context.Context, storeID uuid.UUID) error {
	store, err := srv.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			srv.catalog.RemoveStore(storeID)

			return nil
		}

		return errors.Wrap(err, "failed to find store by ID")
	}

	srv.catalog.UpsertStore(store)

	return nil
}

// ListOwnerStores returns the stores managed by ownerID.
func (srv *catalogService) ListOwnerStores(ctx context.Context, ownerID string) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.FindStoresByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stores by owner")
	}

	return stores, nil
}

// CreateStore creates a store owned by ownerID.
func (srv *catalogService) CreateStore(ctx context.Context, ownerID string, input *usecase.CreateStoreInput) (*entity.Store, error) {
	if err := validateCoordinatePair(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	now := time.Now()
	store := &entity.Store{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Address:     input.Address,
		Phone:       input.Phone,
		ImageURL:    input.ImageURL,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsOpen:      input.IsOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.storeRepo.CreateStore(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.catalog.UpsertStore(store)
	srv.publish(ctx, store, service.StoreActionUpserted)

	return store, nil
}

// UpdateStore applies a partial update to a store owned by ownerID.
func (srv *catalogService) UpdateStore(ctx context.Context, ownerID string, storeID uuid.UUID, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	var store *entity.Store
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		storeRepo := txRepoFactory.NewStoreRepository()

		owned, err := srv.ownedStore(ctx, storeRepo, ownerID, storeID)
		if err != nil {
			return err
		}

		applyStoreUpdates(owned, input)
		if err := validateCoordinatePair(owned.Latitude, owned.Longitude); err != nil {
			return err
		}
		owned.UpdatedAt = time.Now()

		if err := storeRepo.UpdateStore(ctx, owned); err != nil {
			return errors.Wrap(err, "failed to update store")
		}
		store = owned

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.catalog.UpsertStore(store)
	srv.publish(ctx, store, service.StoreActionUpserted)

	return store, nil
}

func applyStoreUpdates(store *entity.Store, input *usecase.UpdateStoreInput) {
	if input.Name != nil {
		store.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.Address != nil {
		store.Address = *input.Address
	}
	if input.Phone != nil {
		store.Phone = *input.Phone
	}
	if input.ImageURL != nil {
		store.ImageURL = *input.ImageURL
	}
	if input.ClearCoordinates {
		store.Latitude, store.Longitude = nil, nil
	}
	if input.Latitude != nil {
		store.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		store.Longitude = input.Longitude
	}
	if input.IsOpen != nil {
		store.IsOpen = *input.IsOpen
	}
}

// DeleteStore removes a store with its menu.
func (srv *catalogService) DeleteStore(ctx context.Context, ownerID string, storeID uuid.UUID) error {
	var deleted *entity.Store
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		storeRepo := txRepoFactory.NewStoreRepository()

		store, err := srv.ownedStore(ctx, storeRepo, ownerID, storeID)
		if err != nil {
			return err
		}

		if err := storeRepo.DeleteStore(ctx, storeID); err != nil {
			return errors.Wrap(err, "failed to delete store")
		}
		deleted = store

		return nil
	})
	if err != nil {
		return err
	}

	srv.catalog.RemoveStore(storeID)
	srv.publish(ctx, deleted, service.StoreActionDeleted)

	return nil
}

// CreateCategory adds a menu category; names are unique per store, ignoring case.
func (srv *catalogService) CreateCategory(ctx context.Context, ownerID string, storeID uuid.UUID, input *usecase.CategoryInput) (*entity.MenuCategory, error) {
	if _, err := srv.ownedStore(ctx, srv.storeRepo, ownerID, storeID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if err := srv.ensureCategoryNameFree(ctx, storeID, uuid.Nil, name); err != nil {
		return nil, err
	}

	now := time.Now()
	category := &entity.MenuCategory{
		ID:        uuid.New(),
		StoreID:   storeID,
		Name:      name,
		SortOrder: input.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.menuRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// UpdateCategory renames or reorders a category.
func (srv *catalogService) UpdateCategory(ctx context.Context, ownerID string, storeID, categoryID uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.MenuCategory, error) {
	category, err := srv.ownedCategory(ctx, srv.storeRepo, srv.menuRepo, ownerID, storeID, categoryID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := srv.ensureCategoryNameFree(ctx, storeID, categoryID, name); err != nil {
			return nil, err
		}
		category.Name = name
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	category.UpdatedAt = time.Now()

	if err := srv.menuRepo.UpdateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory removes a category; its items stay on the menu uncategorized.
func (srv *catalogService) DeleteCategory(ctx context.Context, ownerID string, storeID, categoryID uuid.UUID) error {
	if _, err := srv.ownedCategory(ctx, srv.storeRepo, srv.menuRepo, ownerID, storeID, categoryID); err != nil {
		return err
	}

	if err := srv.menuRepo.DeleteCategory(ctx, categoryID); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// CreateMenuItem adds an item, checking its category in the same transaction.
func (srv *catalogService) CreateMenuItem(ctx context.Context, ownerID string, storeID uuid.UUID, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	now := time.Now()
	item := &entity.MenuItem{
		ID:          uuid.New(),
		StoreID:     storeID,
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		IsAvailable: true,
		SortOrder:   input.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		storeRepo, menuRepo := txRepoFactory.NewStoreRepository(), txRepoFactory.NewMenuRepository()

		if _, err := srv.ownedStore(ctx, storeRepo, ownerID, storeID); err != nil {
			return err
		}
		if item.CategoryID != nil {
			if _, err := srv.categoryOfStore(ctx, menuRepo, storeID, *item.CategoryID); err != nil {
				return err
			}
		}

		if err := menuRepo.CreateItem(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create menu item")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateMenuItem applies a partial update to an item.
func (srv *catalogService) UpdateMenuItem(ctx context.Context, ownerID string, storeID, itemID uuid.UUID, input *usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	var updated *entity.MenuItem
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		storeRepo, menuRepo := txRepoFactory.NewStoreRepository(), txRepoFactory.NewMenuRepository()

		item, err := srv.ownedItem(ctx, storeRepo, menuRepo, ownerID, storeID, itemID)
		if err != nil {
			return err
		}

		if input.CategoryID != nil {
			if _, err := srv.categoryOfStore(ctx, menuRepo, storeID, *input.CategoryID); err != nil {
				return err
			}
		}
		applyMenuItemUpdates(item, input)
		item.UpdatedAt = time.Now()

		if err := menuRepo.UpdateItem(ctx, item); err != nil {
			return errors.Wrap(err, "failed to update menu item")
		}
		updated = item

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func applyMenuItemUpdates(item *entity.MenuItem, input *usecase.UpdateMenuItemInput) {
	if input.ClearCategory {
		item.CategoryID = nil
	}
	if input.CategoryID != nil {
		categoryID := *input.CategoryID
		item.CategoryID = &categoryID
	}
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}
}

// DeleteMenuItem removes an item.
func (srv *catalogService) DeleteMenuItem(ctx context.Context, ownerID string, storeID, itemID uuid.UUID) error {
	if _, err := srv.ownedItem(ctx, srv.storeRepo, srv.menuRepo, ownerID, storeID, itemID); err != nil {
		return err
	}

	if err := srv.menuRepo.DeleteItem(ctx, itemID); err != nil {
		return errors.Wrap(err, "failed to delete menu item")
	}

	return nil
}

// ownedStore loads a store and verifies that ownerID manages it.
func (srv *catalogService) ownedStore(ctx context.Context, storeRepo repository.StoreRepository, ownerID string, storeID uuid.UUID) (*entity.Store, error) {
	store, err := storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("store does not exist")
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	if store.OwnerID != ownerID {
		srv.log(ctx).Warn("Store ownership check failed",
			slog.String("store_id", storeID.String()),
			slog.String("owner_id", ownerID),
		)

		return nil, domainerrors.ErrStoreOwnershipViolation.WrapMessage("store belongs to another owner")
	}

	return store, nil
}

func (srv *catalogService) ownedCategory(ctx context.Context, storeRepo repository.StoreRepository, menuRepo repository.MenuRepository, ownerID string, storeID, categoryID uuid.UUID) (*entity.MenuCategory, error) {
	if _, err := srv.ownedStore(ctx, storeRepo, ownerID, storeID); err != nil {
		return nil, err
	}

	return srv.categoryOfStore(ctx, menuRepo, storeID, categoryID)
}

func (srv *catalogService) categoryOfStore(ctx context.Context, menuRepo repository.MenuRepository, storeID, categoryID uuid.UUID) (*entity.MenuCategory, error) {
	category, err := menuRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category does not exist")
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	// Categories of other stores are reported as missing.
	if category.StoreID != storeID {
		return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category belongs to another store")
	}

	return category, nil
}

func (srv *catalogService) ownedItem(ctx context.Context, storeRepo repository.StoreRepository, menuRepo repository.MenuRepository, ownerID string, storeID, itemID uuid.UUID) (*entity.MenuItem, error) {
	if _, err := srv.ownedStore(ctx, storeRepo, ownerID, storeID); err != nil {
		return nil, err
	}

	item, err := menuRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound.WrapMessage("menu item does not exist")
		}

		return nil, errors.Wrap(err, "failed to find menu item by ID")
	}

	if item.StoreID != storeID {
		return nil, domainerrors.ErrMenuItemNotFound.WrapMessage("menu item belongs to another store")
	}

	return item, nil
}

func (srv *catalogService) ensureCategoryNameFree(ctx context.Context, storeID, exceptID uuid.UUID, name string) error {
	categories, err := srv.menuRepo.FindCategoriesByStore(ctx, storeID)
	if err != nil {
		return errors.Wrap(err, "failed to find categories by store")
	}

	for _, category := range categories {
		if category.ID != exceptID && strings.EqualFold(category.Name, name) {
			return domainerrors.ErrCategoryNameConflict.WrapMessage(name)
		}
	}

	return nil
}

// publish announces a store change to other instances. The local catalog is
// already updated, so failures are only logged.
func (srv *catalogService) publish(ctx context.Context, store *entity.Store, action string) {
	if srv.publisher == nil || store == nil {
		return
	}

	event := &service.StoreChangedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		StoreID:   store.ID.String(),
		OwnerID:   store.OwnerID,
		Action:    action,
	}

	if err := srv.publisher.PublishStoreChanged(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish store change",
			slog.String("store_id", event.StoreID),
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}

func validateCoordinatePair(latitude, longitude *float64) error {
	if (latitude == nil) != (longitude == nil) {
		return domainerrors.ErrValidationFailed.WrapMessage("latitude and longitude must be set together")
	}

	return nil
}
