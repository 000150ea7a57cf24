package repository

import (
	"context"

	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

type MockTransactionManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionManager) EXPECT() *MockTransactionManager_Expecter {
	return &MockTransactionManager_Expecter{mock: &_m.Mock}
}

// Execute provides a mock function with given fields: ctx, fn
func (_m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(txRepoFactory repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	r0 := ret.Error(0)

	return r0
}

// Execute is a helper method to define mock.On call
func (_e *MockTransactionManager_Expecter) Execute(ctx any, fn any) *mock.Call {
	return _e.mock.On("Execute", ctx, fn)
}

// NewMockTransactionManager creates a new instance of MockTransactionManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
