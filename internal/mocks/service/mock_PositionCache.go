package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPositionCache is a testify mock of service.PositionCache.
type MockPositionCache struct {
	mock.Mock
}

type MockPositionCache_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPositionCache) EXPECT() *MockPositionCache_Expecter {
	return &MockPositionCache_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, key
func (_m *MockPositionCache) Get(ctx context.Context, key string) (*entity.Location, bool, error) {
	ret := _m.Called(ctx, key)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Location, bool, error)); ok {
		return rf(ctx, key)
	}

	var r0 *entity.Location
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.Location)
	}
	r1 := ret.Get(1).(bool)
	r2 := ret.Error(2)

	return r0, r1, r2
}

// Get is a helper method to define mock.On call
func (_e *MockPositionCache_Expecter) Get(ctx any, key any) *mock.Call {
	return _e.mock.On("Get", ctx, key)
}

// Set provides a mock function with given fields: ctx, key, location, ttl
func (_m *MockPositionCache) Set(ctx context.Context, key string, location *entity.Location, ttl time.Duration) error {
	ret := _m.Called(ctx, key, location, ttl)

	if rf, ok := ret.Get(0).(func(context.Context, string, *entity.Location, time.Duration) error); ok {
		return rf(ctx, key, location, ttl)
	}

	r0 := ret.Error(0)

	return r0
}

// Set is a helper method to define mock.On call
func (_e *MockPositionCache_Expecter) Set(ctx any, key any, location any, ttl any) *mock.Call {
	return _e.mock.On("Set", ctx, key, location, ttl)
}

// NewMockPositionCache creates a new instance of MockPositionCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPositionCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPositionCache {
	m := &MockPositionCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
