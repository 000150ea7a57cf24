package repository

import (
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a testify mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// NewStoreRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewStoreRepository() repository.StoreRepository {
	ret := _m.Called()

	if rf, ok := ret.Get(0).(func() repository.StoreRepository); ok {
		return rf()
	}

	var r0 repository.StoreRepository
	if val := ret.Get(0); val != nil {
		r0 = val.(repository.StoreRepository)
	}

	return r0
}

// NewStoreRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewStoreRepository() *mock.Call {
	return _e.mock.On("NewStoreRepository")
}

// NewMenuRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewMenuRepository() repository.MenuRepository {
	ret := _m.Called()

	if rf, ok := ret.Get(0).(func() repository.MenuRepository); ok {
		return rf()
	}

	var r0 repository.MenuRepository
	if val := ret.Get(0); val != nil {
		r0 = val.(repository.MenuRepository)
	}

	return r0
}

// NewMenuRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewMenuRepository() *mock.Call {
	return _e.mock.On("NewMenuRepository")
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
