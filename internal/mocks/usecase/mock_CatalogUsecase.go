package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUsecase is a testify mock of usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

type MockCatalogUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCatalogUsecase) EXPECT() *MockCatalogUsecase_Expecter {
	return &MockCatalogUsecase_Expecter{mock: &_m.Mock}
}

// LoadCatalog provides a mock function with given fields: ctx
func (_m *MockCatalogUsecase) LoadCatalog(ctx context.Context) error {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		return rf(ctx)
	}

	r0 := ret.Error(0)

	return r0
}

// LoadCatalog is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) LoadCatalog(ctx any) *mock.Call {
	return _e.mock.On("LoadCatalog", ctx)
}

// RefreshStore provides a mock function with given fields: ctx, storeID
func (_m *MockCatalogUsecase) RefreshStore(ctx context.Context, storeID uuid.UUID) error {
	ret := _m.Called(ctx, storeID)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		return rf(ctx, storeID)
	}

	r0 := ret.Error(0)

	return r0
}

// RefreshStore is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) RefreshStore(ctx any, storeID any) *mock.Call {
	return _e.mock.On("RefreshStore", ctx, storeID)
}

// ListOwnerStores provides a mock function with given fields: ctx, ownerID
func (_m *MockCatalogUsecase) ListOwnerStores(ctx context.Context, ownerID string) ([]*entity.Store, error) {
	ret := _m.Called(ctx, ownerID)

	if rf, ok := ret.Get(0).(func(context.Context, string) ([]*entity.Store, error)); ok {
		return rf(ctx, ownerID)
	}

	var r0 []*entity.Store
	if val := ret.Get(0); val != nil {
		r0 = val.([]*entity.Store)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// ListOwnerStores is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) ListOwnerStores(ctx any, ownerID any) *mock.Call {
	return _e.mock.On("ListOwnerStores", ctx, ownerID)
}

// CreateStore provides a mock function with given fields: ctx, ownerID, input
func (_m *MockCatalogUsecase) CreateStore(ctx context.Context, ownerID string, input *usecase.CreateStoreInput) (*entity.Store, error) {
	ret := _m.Called(ctx, ownerID, input)

	if rf, ok := ret.Get(0).(func(context.Context, string, *usecase.CreateStoreInput) (*entity.Store, error)); ok {
		return rf(ctx, ownerID, input)
	}

	var r0 *entity.Store
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.Store)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// CreateStore is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) CreateStore(ctx any, ownerID any, input any) *mock.Call {
	return _e.mock.On("CreateStore", ctx, ownerID, input)
}

// UpdateStore provides a mock function with given fields: ctx, ownerID, storeID, input
func (_m *MockCatalogUsecase) UpdateStore(ctx context.Context, ownerID string, storeID uuid.UUID, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	ret := _m.Called(ctx, ownerID, storeID, input)

	if rf, ok := ret.Get(0).(func(context.Context, string, uuid.UUID, *usecase.UpdateStoreInput) (*entity.Store, error)); ok {
		return rf(ctx, ownerID, storeID, input)
	}

	var r0 *entity.Store
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.Store)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// UpdateStore is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) UpdateStore(ctx any, ownerID any, storeID any, input any) *mock.Call {
	return _e.mock.On("UpdateStore", ctx, ownerID, storeID, input)
}

// DeleteStore provides a mock function with given fields: ctx, ownerID, storeID
func (_m *MockCatalogUsecase) DeleteStore(ctx context.Context, ownerID string, storeID uuid.UUID) error {
	ret := _m.Called(ctx, ownerID, storeID)

	if rf, ok := ret.Get(0).(func(context.Context, string, uuid.UUID) error); ok {
		return rf(ctx, ownerID, storeID)
	}

	r0 := ret.Error(0)

	return r0
}

// DeleteStore is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) DeleteStore(ctx any, ownerID any, storeID any) *mock.Call {
	return _e.mock.On("DeleteStore", ctx, ownerID, storeID)
}

// CreateCategory provides a mock function with given fields: ctx, ownerID, storeID, input
func (_m *MockCatalogUsecase) CreateCategory(ctx context.Context, ownerID string, storeID uuid.UUID, input *usecase.CategoryInput) (*entity.MenuCategory, error) {
	ret := _m.Called(ctx, ownerID, storeID, input)

	if rf, ok := ret.Get(0).(func(context.Context, string, uuid.UUID, *usecase.CategoryInput) (*entity.MenuCategory, error)); ok {
		return rf(ctx, ownerID, storeID, input)
	}

	var r0 *entity.MenuCategory
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.MenuCategory)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// CreateCategory is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) CreateCategory(ctx any, ownerID any, storeID any, input any) *mock.Call {
	return _e.mock.On("CreateCategory", ctx, ownerID, storeID, input)
}

// UpdateCategory provides a mock function with given fields: ctx, ownerID, storeID, categoryID, input
func (_m *MockCatalogUsecase) UpdateCategory(ctx context.Context, ownerID string, storeID uuid.UUID, categoryID uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.MenuCategory, error) {
	ret := _m.Called(ctx, ownerID, storeID, categoryID, input)

	if rf, ok := ret.Get(0).(func(context.Context, string, uuid.UUID, uuid.UUID, *usecase.UpdateCategoryInput) (*entity.MenuCategory, error)); ok {
		return rf(ctx, ownerID, storeID, categoryID, input)
	}

	var r0 *entity.MenuCategory
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.MenuCategory)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// UpdateCategory is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) UpdateCategory(ctx any, ownerID any, storeID any, categoryID any, input any) *mock.Call {
	return _e.mock.On("UpdateCategory", ctx, ownerID, storeID, categoryID, input)
}

// DeleteCategory provides a mock function with given fields: ctx, ownerID, storeID, categoryID
func (_m *MockCatalogUsecase) DeleteCategory(ctx context.Context, ownerID string, storeID uuid.UUID, categoryID uuid.UUID) error {
	ret := _m.Called(ctx, ownerID, storeID, categoryID)

	if rf, ok := ret.Get(0).(func(context.Context, string, uuid.UUID, uuid.UUID) error); ok {
		return rf(ctx, ownerID, storeID, categoryID)
	}

	r0 := ret.Error(0)

	return r0
}

// DeleteCategory is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) DeleteCategory(ctx any, ownerID any, storeID any, categoryID any) *mock.Call {
	return _e.mock.On("DeleteCategory", ctx, ownerID, storeID, categoryID)
}

// CreateMenuItem provides a mock function with given fields: ctx, ownerID, storeID, input
func (_m *MockCatalogUsecase) CreateMenuItem(ctx context.Context, ownerID string, storeID uuid.UUID, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	ret := _m.Called(ctx, ownerID, storeID, input)

	if rf, ok := ret.Get(0).(func(context.Context, string, uuid.UUID, *usecase.MenuItemInput) (*entity.MenuItem, error)); ok {
		return rf(ctx, ownerID, storeID, input)
	}

	var r0 *entity.MenuItem
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.MenuItem)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// CreateMenuItem is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) CreateMenuItem(ctx any, ownerID any, storeID any, input any) *mock.Call {
	return _e.mock.On("CreateMenuItem", ctx, ownerID, storeID, input)
}

// UpdateMenuItem provides a mock function with given fields: ctx, ownerID, storeID, itemID, input
func (_m *MockCatalogUsecase) UpdateMenuItem(ctx context.Context, ownerID string, storeID uuid.UUID, itemID uuid.UUID, input *usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	ret := _m.Called(ctx, ownerID, storeID, itemID, input)

	if rf, ok := ret.Get(0).(func(context.Context, string, uuid.UUID, uuid.UUID, *usecase.UpdateMenuItemInput) (*entity.MenuItem, error)); ok {
		return rf(ctx, ownerID, storeID, itemID, input)
	}

	var r0 *entity.MenuItem
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.MenuItem)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// UpdateMenuItem is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) UpdateMenuItem(ctx any, ownerID any, storeID any, itemID any, input any) *mock.Call {
	return _e.mock.On("UpdateMenuItem", ctx, ownerID, storeID, itemID, input)
}

// DeleteMenuItem provides a mock function with given fields: ctx, ownerID, storeID, itemID
func (_m *MockCatalogUsecase) DeleteMenuItem(ctx context.Context, ownerID string, storeID uuid.UUID, itemID uuid.UUID) error {
	ret := _m.Called(ctx, ownerID, storeID, itemID)

	if rf, ok := ret.Get(0).(func(context.Context, string, uuid.UUID, uuid.UUID) error); ok {
		return rf(ctx, ownerID, storeID, itemID)
	}

	r0 := ret.Error(0)

	return r0
}

// DeleteMenuItem is a helper method to define mock.On call
func (_e *MockCatalogUsecase_Expecter) DeleteMenuItem(ctx any, ownerID any, storeID any, itemID any) *mock.Call {
	return _e.mock.On("DeleteMenuItem", ctx, ownerID, storeID, itemID)
}

// NewMockCatalogUsecase creates a new instance of MockCatalogUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCatalogUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogUsecase {
	m := &MockCatalogUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
