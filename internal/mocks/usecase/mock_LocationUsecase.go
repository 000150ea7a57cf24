package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockLocationUsecase is a testify mock of usecase.LocationUsecase.
type MockLocationUsecase struct {
	mock.Mock
}

type MockLocationUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLocationUsecase) EXPECT() *MockLocationUsecase_Expecter {
	return &MockLocationUsecase_Expecter{mock: &_m.Mock}
}

// HasLocationPermission provides a mock function with given fields: ctx, req
func (_m *MockLocationUsecase) HasLocationPermission(ctx context.Context, req *usecase.LocationRequest) bool {
	ret := _m.Called(ctx, req)

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LocationRequest) bool); ok {
		return rf(ctx, req)
	}

	r0 := ret.Get(0).(bool)

	return r0
}

// HasLocationPermission is a helper method to define mock.On call
func (_e *MockLocationUsecase_Expecter) HasLocationPermission(ctx any, req any) *mock.Call {
	return _e.mock.On("HasLocationPermission", ctx, req)
}

// NativeLocation provides a mock function with given fields: ctx, req
func (_m *MockLocationUsecase) NativeLocation(ctx context.Context, req *usecase.LocationRequest) (*entity.Location, bool) {
	ret := _m.Called(ctx, req)

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LocationRequest) (*entity.Location, bool)); ok {
		return rf(ctx, req)
	}

	var r0 *entity.Location
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.Location)
	}
	r1 := ret.Get(1).(bool)

	return r0, r1
}

// NativeLocation is a helper method to define mock.On call
func (_e *MockLocationUsecase_Expecter) NativeLocation(ctx any, req any) *mock.Call {
	return _e.mock.On("NativeLocation", ctx, req)
}

// ResolveLocation provides a mock function with given fields: ctx, req
func (_m *MockLocationUsecase) ResolveLocation(ctx context.Context, req *usecase.LocationRequest) (*entity.ResolvedLocation, error) {
	ret := _m.Called(ctx, req)

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LocationRequest) (*entity.ResolvedLocation, error)); ok {
		return rf(ctx, req)
	}

	var r0 *entity.ResolvedLocation
	if val := ret.Get(0); val != nil {
		r0 = val.(*entity.ResolvedLocation)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// ResolveLocation is a helper method to define mock.On call
func (_e *MockLocationUsecase_Expecter) ResolveLocation(ctx any, req any) *mock.Call {
	return _e.mock.On("ResolveLocation", ctx, req)
}

// NewMockLocationUsecase creates a new instance of MockLocationUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockLocationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLocationUsecase {
	m := &MockLocationUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
