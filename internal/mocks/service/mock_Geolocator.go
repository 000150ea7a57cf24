package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockGeolocator is a testify mock of service.Geolocator.
type MockGeolocator struct {
	mock.Mock
}

type MockGeolocator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGeolocator) EXPECT() *MockGeolocator_Expecter {
	return &MockGeolocator_Expecter{mock: &_m.Mock}
}

// CurrentPosition provides a mock function with given fields: ctx, client, opts
func (_m *MockGeolocator) CurrentPosition(ctx context.Context, client string, opts entity.PositionOptions) (*entity.Location, error) {
	ret := _m.Called(ctx, client, opts)

	if rf, ok := ret.Get(0).(func(context.Context, string, entity.PositionOptions) (*entity.Location, error)); ok {
		return rf(ctx, client, opts)
	}

	var r0 *entity.Location
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.Location)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// CurrentPosition is a helper method to define mock.On call
func (_e *MockGeolocator_Expecter) CurrentPosition(ctx any, client any, opts any) *mock.Call {
	return _e.mock.On("CurrentPosition", ctx, client, opts)
}

// NewMockGeolocator creates a new instance of MockGeolocator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockGeolocator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGeolocator {
	m := &MockGeolocator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
