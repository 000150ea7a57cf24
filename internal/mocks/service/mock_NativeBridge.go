package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockNativeBridge is a testify mock of service.NativeBridge.
type MockNativeBridge struct {
	mock.Mock
}

type MockNativeBridge_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNativeBridge) EXPECT() *MockNativeBridge_Expecter {
	return &MockNativeBridge_Expecter{mock: &_m.Mock}
}

// LocationPermission provides a mock function with given fields: ctx
func (_m *MockNativeBridge) LocationPermission(ctx context.Context) (bool, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) (bool, error)); ok {
		return rf(ctx)
	}

	r0 := ret.Get(0).(bool)
	r1 := ret.Error(1)

	return r0, r1
}

// LocationPermission is a helper method to define mock.On call
func (_e *MockNativeBridge_Expecter) LocationPermission(ctx any) *mock.Call {
	return _e.mock.On("LocationPermission", ctx)
}

// CurrentLocation provides a mock function with given fields: ctx
func (_m *MockNativeBridge) CurrentLocation(ctx context.Context) (entity.BridgeLocation, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) (entity.BridgeLocation, error)); ok {
		return rf(ctx)
	}

	r0 := ret.Get(0).(entity.BridgeLocation)
	r1 := ret.Error(1)

	return r0, r1
}

// CurrentLocation is a helper method to define mock.On call
func (_e *MockNativeBridge_Expecter) CurrentLocation(ctx any) *mock.Call {
	return _e.mock.On("CurrentLocation", ctx)
}

// NewMockNativeBridge creates a new instance of MockNativeBridge. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockNativeBridge(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNativeBridge {
	m := &MockNativeBridge{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
