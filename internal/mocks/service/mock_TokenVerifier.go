package service

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenVerifier is a testify mock of service.TokenVerifier.
type MockTokenVerifier struct {
	mock.Mock
}

type MockTokenVerifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenVerifier) EXPECT() *MockTokenVerifier_Expecter {
	return &MockTokenVerifier_Expecter{mock: &_m.Mock}
}

// Verify provides a mock function with given fields: ctx, token
func (_m *MockTokenVerifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	ret := _m.Called(ctx, token)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*service.Identity, error)); ok {
		return rf(ctx, token)
	}

	var r0 *service.Identity
	if val := ret.Get(0); val != nil {
		r0 = val.(*service.Identity)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Verify is a helper method to define mock.On call
func (_e *MockTokenVerifier_Expecter) Verify(ctx any, token any) *mock.Call {
	return _e.mock.On("Verify", ctx, token)
}

// NewMockTokenVerifier creates a new instance of MockTokenVerifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTokenVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenVerifier {
	m := &MockTokenVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
