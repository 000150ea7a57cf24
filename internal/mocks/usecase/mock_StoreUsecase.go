package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStoreUsecase is a testify mock of usecase.StoreUsecase.
type MockStoreUsecase struct {
	mock.Mock
}

type MockStoreUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStoreUsecase) EXPECT() *MockStoreUsecase_Expecter {
	return &MockStoreUsecase_Expecter{mock: &_m.Mock}
}

// ListStores provides a mock function with given fields: ctx, query
func (_m *MockStoreUsecase) ListStores(ctx context.Context, query *usecase.StoreQuery) (*usecase.StoreListing, error) {
	ret := _m.Called(ctx, query)

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.StoreQuery) (*usecase.StoreListing, error)); ok {
		return rf(ctx, query)
	}

	var r0 *usecase.StoreListing
	if val := ret.Get(0); val != nil {
		r0 = val.(*usecase.StoreListing)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// ListStores is a helper method to define mock.On call
func (_e *MockStoreUsecase_Expecter) ListStores(ctx any, query any) *mock.Call {
	return _e.mock.On("ListStores", ctx, query)
}

// NearbyStores provides a mock function with given fields: ctx, query
func (_m *MockStoreUsecase) NearbyStores(ctx context.Context, query *usecase.StoreQuery) (*usecase.StoreListing, error) {
	ret := _m.Called(ctx, query)

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.StoreQuery) (*usecase.StoreListing, error)); ok {
		return rf(ctx, query)
	}

	var r0 *usecase.StoreListing
	if val := ret.Get(0); val != nil {
		r0 = val.(*usecase.StoreListing)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NearbyStores is a helper method to define mock.On call
func (_e *MockStoreUsecase_Expecter) NearbyStores(ctx any, query any) *mock.Call {
	return _e.mock.On("NearbyStores", ctx, query)
}

// GetStore provides a mock function with given fields: ctx, storeID
func (_m *MockStoreUsecase) GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	ret := _m.Called(ctx, storeID)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Store, error)); ok {
		return rf(ctx, storeID)
	}

	var r0 *entity.Store
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.Store)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetStore is a helper method to define mock.On call
func (_e *MockStoreUsecase_Expecter) GetStore(ctx any, storeID any) *mock.Call {
	return _e.mock.On("GetStore", ctx, storeID)
}

// GetMenu provides a mock function with given fields: ctx, storeID
func (_m *MockStoreUsecase) GetMenu(ctx context.Context, storeID uuid.UUID) (*entity.Menu, error) {
	ret := _m.Called(ctx, storeID)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Menu, error)); ok {
		return rf(ctx, storeID)
	}

	var r0 *entity.Menu
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.Menu)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetMenu is a helper method to define mock.On call
func (_e *MockStoreUsecase_Expecter) GetMenu(ctx any, storeID any) *mock.Call {
	return _e.mock.On("GetMenu", ctx, storeID)
}

// GetStoreQRCode provides a mock function with given fields: ctx, storeID
func (_m *MockStoreUsecase) GetStoreQRCode(ctx context.Context, storeID uuid.UUID) ([]byte, error) {
	ret := _m.Called(ctx, storeID)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]byte, error)); ok {
		return rf(ctx, storeID)
	}

	var r0 []byte
	if val := ret.Get(0); val != nil {
		r0 = val.([]byte)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetStoreQRCode is a helper method to define mock.On call
func (_e *MockStoreUsecase_Expecter) GetStoreQRCode(ctx any, storeID any) *mock.Call {
	return _e.mock.On("GetStoreQRCode", ctx, storeID)
}

// NewMockStoreUsecase creates a new instance of MockStoreUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStoreUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStoreUsecase {
	m := &MockStoreUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
