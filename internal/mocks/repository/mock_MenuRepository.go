package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMenuRepository is a testify mock of repository.MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

type MockMenuRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMenuRepository) EXPECT() *MockMenuRepository_Expecter {
	return &MockMenuRepository_Expecter{mock: &_m.Mock}
}

// CreateCategory provides a mock function with given fields: ctx, category
func (_m *MockMenuRepository) CreateCategory(ctx context.Context, category *entity.MenuCategory) error {
	ret := _m.Called(ctx, category)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.MenuCategory) error); ok {
		return rf(ctx, category)
	}

	r0 := ret.Error(0)

	return r0
}

// CreateCategory is a helper method to define mock.On call
func (_e *MockMenuRepository_Expecter) CreateCategory(ctx any, category any) *mock.Call {
	return _e.mock.On("CreateCategory", ctx, category)
}

// FindCategoryByID provides a mock function with given fields: ctx, id
func (_m *MockMenuRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.MenuCategory, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.MenuCategory, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.MenuCategory
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.MenuCategory)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindCategoryByID is a helper method to define mock.On call
func (_e *MockMenuRepository_Expecter) FindCategoryByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindCategoryByID", ctx, id)
}

// FindCategoriesByStore provides a mock function with given fields: ctx, storeID
func (_m *MockMenuRepository) FindCategoriesByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.MenuCategory, error) {
	ret := _m.Called(ctx, storeID)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*entity.MenuCategory, error)); ok {
		return rf(ctx, storeID)
	}

	var r0 []*entity.MenuCategory
	if val := ret.Get(0); val != nil {
		r0 = val.([]*entity.MenuCategory)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindCategoriesByStore is a helper method to define mock.On call
func (_e *MockMenuRepository_Expecter) FindCategoriesByStore(ctx any, storeID any) *mock.Call {
	return _e.mock.On("FindCategoriesByStore", ctx, storeID)
}

// UpdateCategory provides a mock function with given fields: ctx, category
func (_m *MockMenuRepository) UpdateCategory(ctx context.Context, category *entity.MenuCategory) error {
	ret := _m.Called(ctx, category)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.MenuCategory) error); ok {
		return rf(ctx, category)
	}

	r0 := ret.Error(0)

	return r0
}

// UpdateCategory is a helper method to define mock.On call
func (_e *MockMenuRepository_Expecter) UpdateCategory(ctx any, category any) *mock.Call {
	return _e.mock.On("UpdateCategory", ctx, category)
}

// DeleteCategory provides a mock function with given fields: ctx, id
func (_m *MockMenuRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		return rf(ctx, id)
	}

	r0 := ret.Error(0)

	return r0
}

// DeleteCategory is a helper method to define mock.On call
func (_e *MockMenuRepository_Expecter) DeleteCategory(ctx any, id any) *mock.Call {
	return _e.mock.On("DeleteCategory", ctx, id)
}

// CreateItem provides a mock function with given fields: ctx, item
func (_m *MockMenuRepository) CreateItem(ctx context.Context, item *entity.MenuItem) error {
	ret := _m.Called(ctx, item)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.MenuItem) error); ok {
		return rf(ctx, item)
	}

	r0 := ret.Error(0)

	return r0
}

// CreateItem is a helper method to define mock.On call
func (_e *MockMenuRepository_Expecter) CreateItem(ctx any, item any) *mock.Call {
	return _e.mock.On("CreateItem", ctx, item)
}

// FindItemByID provides a mock function with given fields: ctx, id
func (_m *MockMenuRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.MenuItem, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.MenuItem
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.MenuItem)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindItemByID is a helper method to define mock.On call
func (_e *MockMenuRepository_Expecter) FindItemByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindItemByID", ctx, id)
}

// FindItemsByStore provides a mock function with given fields: ctx, storeID
func (_m *MockMenuRepository) FindItemsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.MenuItem, error) {
	ret := _m.Called(ctx, storeID)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*entity.MenuItem, error)); ok {
		return rf(ctx, storeID)
	}

	var r0 []*entity.MenuItem
	if val := ret.Get(0); val != nil {
		r0 = val.([]*entity.MenuItem)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindItemsByStore is a helper method to define mock.On call
func (_e *MockMenuRepository_Expecter) FindItemsByStore(ctx any, storeID any) *mock.Call {
	return _e.mock.On("FindItemsByStore", ctx, storeID)
}

// UpdateItem provides a mock function with given fields: ctx, item
func (_m *MockMenuRepository) UpdateItem(ctx context.Context, item *entity.MenuItem) error {
	ret := _m.Called(ctx, item)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.MenuItem) error); ok {
		return rf(ctx, item)
	}

	r0 := ret.Error(0)

	return r0
}

// UpdateItem is a helper method to define mock.On call
func (_e *MockMenuRepository_Expecter) UpdateItem(ctx any, item any) *mock.Call {
	return _e.mock.On("UpdateItem", ctx, item)
}

// DeleteItem provides a mock function with given fields: ctx, id
func (_m *MockMenuRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		return rf(ctx, id)
	}

	r0 := ret.Error(0)

	return r0
}

// DeleteItem is a helper method to define mock.On call
func (_e *MockMenuRepository_Expecter) DeleteItem(ctx any, id any) *mock.Call {
	return _e.mock.On("DeleteItem", ctx, id)
}

// NewMockMenuRepository creates a new instance of MockMenuRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMenuRepository {
	m := &MockMenuRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
