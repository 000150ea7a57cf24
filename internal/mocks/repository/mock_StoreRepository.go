package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStoreRepository is a testify mock of repository.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

type MockStoreRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStoreRepository) EXPECT() *MockStoreRepository_Expecter {
	return &MockStoreRepository_Expecter{mock: &_m.Mock}
}

// CreateStore provides a mock function with given fields: ctx, store
func (_m *MockStoreRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	ret := _m.Called(ctx, store)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Store) error); ok {
		return rf(ctx, store)
	}

	r0 := ret.Error(0)

	return r0
}

// CreateStore is a helper method to define mock.On call
func (_e *MockStoreRepository_Expecter) CreateStore(ctx any, store any) *mock.Call {
	return _e.mock.On("CreateStore", ctx, store)
}

// FindStoreByID provides a mock function with given fields: ctx, id
func (_m *MockStoreRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Store, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.Store
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.Store)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindStoreByID is a helper method to define mock.On call
func (_e *MockStoreRepository_Expecter) FindStoreByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindStoreByID", ctx, id)
}

// FindAllStores provides a mock function with given fields: ctx
func (_m *MockStoreRepository) FindAllStores(ctx context.Context) ([]*entity.Store, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Store, error)); ok {
		return rf(ctx)
	}

	var r0 []*entity.Store
	if val := ret.Get(0); val != nil {
		r0 = val.([]*entity.Store)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindAllStores is a helper method to define mock.On call
func (_e *MockStoreRepository_Expecter) FindAllStores(ctx any) *mock.Call {
	return _e.mock.On("FindAllStores", ctx)
}

// FindStoresByOwner provides a mock function with given fields: ctx, ownerID
func (_m *MockStoreRepository) FindStoresByOwner(ctx context.Context, ownerID string) ([]*entity.Store, error) {
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

// FindStoresByOwner is a helper method to define mock.On call
func (_e *MockStoreRepository_Expecter) FindStoresByOwner(ctx any, ownerID any) *mock.Call {
	return _e.mock.On("FindStoresByOwner", ctx, ownerID)
}

// UpdateStore provides a mock function with given fields: ctx, store
func (_m *MockStoreRepository) UpdateStore(ctx context.Context, store *entity.Store) error {
	ret := _m.Called(ctx, store)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Store) error); ok {
		return rf(ctx, store)
	}

	r0 := ret.Error(0)

	return r0
}

// UpdateStore is a helper method to define mock.On call
func (_e *MockStoreRepository_Expecter) UpdateStore(ctx any, store any) *mock.Call {
	return _e.mock.On("UpdateStore", ctx, store)
}

// DeleteStore provides a mock function with given fields: ctx, id
func (_m *MockStoreRepository) DeleteStore(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		return rf(ctx, id)
	}

	r0 := ret.Error(0)

	return r0
}

// DeleteStore is a helper method to define mock.On call
func (_e *MockStoreRepository_Expecter) DeleteStore(ctx any, id any) *mock.Call {
	return _e.mock.On("DeleteStore", ctx, id)
}

// NewMockStoreRepository creates a new instance of MockStoreRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStoreRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStoreRepository {
	m := &MockStoreRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
