package service

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a testify mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// PublishStoreChanged provides a mock function with given fields: ctx, event
func (_m *MockEventPublisher) PublishStoreChanged(ctx context.Context, event *service.StoreChangedEvent) error {
	ret := _m.Called(ctx, event)

	if rf, ok := ret.Get(0).(func(context.Context, *service.StoreChangedEvent) error); ok {
		return rf(ctx, event)
	}

	r0 := ret.Error(0)

	return r0
}

// PublishStoreChanged is a helper method to define mock.On call
func (_e *MockEventPublisher_Expecter) PublishStoreChanged(ctx any, event any) *mock.Call {
	return _e.mock.On("PublishStoreChanged", ctx, event)
}

// Close provides a mock function with given fields: 
func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	if rf, ok := ret.Get(0).(func() error); ok {
		return rf()
	}

	r0 := ret.Error(0)

	return r0
}

// Close is a helper method to define mock.On call
func (_e *MockEventPublisher_Expecter) Close() *mock.Call {
	return _e.mock.On("Close")
}

// NewMockEventPublisher creates a new instance of MockEventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
