package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ownerID = "firebase-uid-owner"

type catalogServiceFixture struct {
	txManager *mockRepo.MockTransactionManager
	storeRepo *mockRepo.MockStoreRepository
	menuRepo  *mockRepo.MockMenuRepository
	publisher *mockService.MockEventPublisher
	catalog   *state.Catalog
	service   usecase.CatalogUsecase
}

func newCatalogServiceFixture(t *testing.T) *catalogServiceFixture {
	f := &catalogServiceFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		storeRepo: mockRepo.NewMockStoreRepository(t),
		menuRepo:  mockRepo.NewMockMenuRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
		catalog:   state.NewCatalog(),
	}
	f.service = NewCatalogService(CatalogServiceParams{
		TxManager: f.txManager,
		StoreRepo: f.storeRepo,
		MenuRepo:  f.menuRepo,
		Catalog:   f.catalog,
		Publisher: f.publisher,
	})

	return f
}

// runInTx makes the transaction manager run its callback against the fixture repositories.
func (f *catalogServiceFixture) runInTx(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewStoreRepository().Return(f.storeRepo).Maybe()
	factory.EXPECT().NewMenuRepository().Return(f.menuRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func ownedStore() *entity.Store {
	return &entity.Store{ID: uuid.New(), OwnerID: ownerID, Name: "Noodle Bar", Latitude: ptr(37.5), Longitude: ptr(127.0)}
}

func TestCatalogService_LoadCatalog(t *testing.T) {
	ctx := context.Background()
	f := newCatalogServiceFixture(t)
	stores := []*entity.Store{ownedStore(), ownedStore()}

	f.storeRepo.EXPECT().FindAllStores(ctx).Return(stores, nil)

	require.NoError(t, f.service.LoadCatalog(ctx))
	assert.Equal(t, 2, f.catalog.Len())
}

func TestCatalogService_RefreshStore(t *testing.T) {
	ctx := context.Background()
	f := newCatalogServiceFixture(t)
	store := ownedStore()
	f.catalog.UpsertStore(store)

	renamed := store.Clone()
	renamed.Name = "Renamed"
	f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(renamed, nil).Once()
	require.NoError(t, f.service.RefreshStore(ctx, store.ID))

	got, ok := f.catalog.Store(store.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Name)

	f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(nil, repository.ErrStoreNotFound).Once()
	require.NoError(t, f.service.RefreshStore(ctx, store.ID))
	assert.Zero(t, f.catalog.Len())
}

func TestCatalogService_CreateStore(t *testing.T) {
	ctx := context.Background()
	f := newCatalogServiceFixture(t)

	f.storeRepo.EXPECT().CreateStore(ctx, mock.AnythingOfType("*entity.Store")).Return(nil)
	f.publisher.EXPECT().
		PublishStoreChanged(ctx, mock.MatchedBy(func(event *service.StoreChangedEvent) bool {
			return event.Action == service.StoreActionUpserted && event.OwnerID == ownerID
		})).
		Return(nil)

	store, err := f.service.CreateStore(ctx, ownerID, &usecase.CreateStoreInput{
		Name:      "  Dumpling House ",
		Latitude:  ptr(25.03),
		Longitude: ptr(121.56),
		IsOpen:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Dumpling House", store.Name)
	assert.Equal(t, ownerID, store.OwnerID)

	_, ok := f.catalog.Store(store.ID)
	assert.True(t, ok)
}

func TestCatalogService_CreateStore_HalfCoordinates(t *testing.T) {
	f := newCatalogServiceFixture(t)

	_, err := f.service.CreateStore(context.Background(), ownerID, &usecase.CreateStoreInput{
		Name:     "Half",
		Latitude: ptr(25.03),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_CreateStore_PublishFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	f := newCatalogServiceFixture(t)

	f.storeRepo.EXPECT().CreateStore(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishStoreChanged(ctx, mock.Anything).Return(errors.New("topic not found"))

	store, err := f.service.CreateStore(ctx, ownerID, &usecase.CreateStoreInput{Name: "Cafe"})
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestCatalogService_UpdateStore(t *testing.T) {
	ctx := context.Background()

	t.Run("owner updates and clears coordinates", func(t *testing.T) {
		f := newCatalogServiceFixture(t)
		f.runInTx(t)
		store := ownedStore()

		f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		f.storeRepo.EXPECT().UpdateStore(ctx, store).Return(nil)
		f.publisher.EXPECT().PublishStoreChanged(ctx, mock.Anything).Return(nil)

		updated, err := f.service.UpdateStore(ctx, ownerID, store.ID, &usecase.UpdateStoreInput{
			Name:             ptr("New Name"),
			IsOpen:           ptr(true),
			ClearCoordinates: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "New Name", updated.Name)
		assert.True(t, updated.IsOpen)
		assert.False(t, updated.HasCoordinates())
		cached, ok := f.catalog.Store(store.ID)
		require.True(t, ok)
		assert.Equal(t, "New Name", cached.Name)
	})

	t.Run("write failure leaves catalog untouched", func(t *testing.T) {
		f := newCatalogServiceFixture(t)
		f.runInTx(t)
		store := ownedStore()
		f.catalog.UpsertStore(store)
		version := f.catalog.Version()

		f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store.Clone(), nil)
		f.storeRepo.EXPECT().UpdateStore(ctx, mock.Anything).Return(errors.New("deadlock detected"))

		_, err := f.service.UpdateStore(ctx, ownerID, store.ID, &usecase.UpdateStoreInput{Name: ptr("New Name")})

		require.Error(t, err)
		assert.Equal(t, version, f.catalog.Version())
		cached, _ := f.catalog.Store(store.ID)
		assert.Equal(t, "Noodle Bar", cached.Name)
		f.publisher.AssertNotCalled(t, "PublishStoreChanged", mock.Anything, mock.Anything)
	})

	t.Run("other owner is rejected", func(t *testing.T) {
		f := newCatalogServiceFixture(t)
		f.runInTx(t)
		store := ownedStore()
		f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)

		_, err := f.service.UpdateStore(ctx, "someone-else", store.ID, &usecase.UpdateStoreInput{Name: ptr("x")})

		assert.True(t, errors.Is(err, domainerrors.ErrStoreOwnershipViolation))
	})
}

func TestCatalogService_DeleteStore(t *testing.T) {
	ctx := context.Background()
	f := newCatalogServiceFixture(t)
	f.runInTx(t)
	store := ownedStore()
	f.catalog.UpsertStore(store)

	f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	f.storeRepo.EXPECT().DeleteStore(ctx, store.ID).Return(nil)
	f.publisher.EXPECT().
		PublishStoreChanged(ctx, mock.MatchedBy(func(event *service.StoreChangedEvent) bool {
			return event.Action == service.StoreActionDeleted && event.StoreID == store.ID.String()
		})).
		Return(nil)

	require.NoError(t, f.service.DeleteStore(ctx, ownerID, store.ID))
	assert.Zero(t, f.catalog.Len())
}

func TestCatalogService_DeleteStore_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newCatalogServiceFixture(t)
	f.runInTx(t)
	id := uuid.New()

	f.storeRepo.EXPECT().FindStoreByID(ctx, id).Return(nil, repository.ErrStoreNotFound)

	err := f.service.DeleteStore(ctx, ownerID, id)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestCatalogService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	store := ownedStore()

	t.Run("creates", func(t *testing.T) {
		f := newCatalogServiceFixture(t)
		f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		f.menuRepo.EXPECT().FindCategoriesByStore(ctx, store.ID).Return(nil, nil)
		f.menuRepo.EXPECT().CreateCategory(ctx, mock.AnythingOfType("*entity.MenuCategory")).Return(nil)

		category, err := f.service.CreateCategory(ctx, ownerID, store.ID, &usecase.CategoryInput{Name: "Drinks", SortOrder: 2})
		require.NoError(t, err)
		assert.Equal(t, store.ID, category.StoreID)
		assert.Equal(t, 2, category.SortOrder)
	})

	t.Run("name conflict ignores case", func(t *testing.T) {
		f := newCatalogServiceFixture(t)
		f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		f.menuRepo.EXPECT().FindCategoriesByStore(ctx, store.ID).Return([]*entity.MenuCategory{
			{ID: uuid.New(), StoreID: store.ID, Name: "drinks"},
		}, nil)

		_, err := f.service.CreateCategory(ctx, ownerID, store.ID, &usecase.CategoryInput{Name: "Drinks"})
		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNameConflict))
	})
}

func TestCatalogService_UpdateCategory_OtherStore(t *testing.T) {
	ctx := context.Background()
	f := newCatalogServiceFixture(t)
	store := ownedStore()
	category := &entity.MenuCategory{ID: uuid.New(), StoreID: uuid.New(), Name: "Elsewhere"}

	f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	f.menuRepo.EXPECT().FindCategoryByID(ctx, category.ID).Return(category, nil)

	_, err := f.service.UpdateCategory(ctx, ownerID, store.ID, category.ID, &usecase.UpdateCategoryInput{SortOrder: ptr(1)})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	f := newCatalogServiceFixture(t)
	store := ownedStore()
	category := &entity.MenuCategory{ID: uuid.New(), StoreID: store.ID, Name: "Drinks"}

	f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	f.menuRepo.EXPECT().FindCategoryByID(ctx, category.ID).Return(category, nil)
	f.menuRepo.EXPECT().DeleteCategory(ctx, category.ID).Return(nil)

	require.NoError(t, f.service.DeleteCategory(ctx, ownerID, store.ID, category.ID))
}

func TestCatalogService_CreateMenuItem(t *testing.T) {
	ctx := context.Background()
	store := ownedStore()
	category := &entity.MenuCategory{ID: uuid.New(), StoreID: store.ID, Name: "Mains"}

	t.Run("defaults to available", func(t *testing.T) {
		f := newCatalogServiceFixture(t)
		f.runInTx(t)
		f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		f.menuRepo.EXPECT().FindCategoryByID(ctx, category.ID).Return(category, nil)
		f.menuRepo.EXPECT().CreateItem(ctx, mock.AnythingOfType("*entity.MenuItem")).Return(nil)

		item, err := f.service.CreateMenuItem(ctx, ownerID, store.ID, &usecase.MenuItemInput{
			CategoryID: &category.ID,
			Name:       "Beef Noodles",
			Price:      18000,
		})

		require.NoError(t, err)
		assert.True(t, item.IsAvailable)
		assert.Equal(t, int64(18000), item.Price)
		assert.Equal(t, &category.ID, item.CategoryID)
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newCatalogServiceFixture(t)
		f.runInTx(t)
		missing := uuid.New()
		f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		f.menuRepo.EXPECT().FindCategoryByID(ctx, missing).Return(nil, repository.ErrCategoryNotFound)

		_, err := f.service.CreateMenuItem(ctx, ownerID, store.ID, &usecase.MenuItemInput{CategoryID: &missing, Name: "x"})
		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	})
}

func TestCatalogService_UpdateMenuItem(t *testing.T) {
	ctx := context.Background()
	f := newCatalogServiceFixture(t)
	f.runInTx(t)
	store := ownedStore()
	categoryID := uuid.New()
	item := &entity.MenuItem{ID: uuid.New(), StoreID: store.ID, CategoryID: &categoryID, Name: "Tea", Price: 3000, IsAvailable: true}

	f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	f.menuRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)
	f.menuRepo.EXPECT().UpdateItem(ctx, item).Return(nil)

	updated, err := f.service.UpdateMenuItem(ctx, ownerID, store.ID, item.ID, &usecase.UpdateMenuItemInput{
		ClearCategory: true,
		Price:         ptr(int64(3500)),
		IsAvailable:   ptr(false),
	})

	require.NoError(t, err)
	assert.Nil(t, updated.CategoryID)
	assert.Equal(t, int64(3500), updated.Price)
	assert.False(t, updated.IsAvailable)
}

func TestCatalogService_DeleteMenuItem_OtherStore(t *testing.T) {
	ctx := context.Background()
	f := newCatalogServiceFixture(t)
	store := ownedStore()
	item := &entity.MenuItem{ID: uuid.New(), StoreID: uuid.New()}

	f.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	f.menuRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)

	err := f.service.DeleteMenuItem(ctx, ownerID, store.ID, item.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrMenuItemNotFound))
}
