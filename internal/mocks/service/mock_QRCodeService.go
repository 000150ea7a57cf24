package service

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a testify mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

// GenerateStoreQR provides a mock function with given fields: storeID
func (_m *MockQRCodeService) GenerateStoreQR(storeID uuid.UUID) ([]byte, error) {
	ret := _m.Called(storeID)

	if rf, ok := ret.Get(0).(func(uuid.UUID) ([]byte, error)); ok {
		return rf(storeID)
	}

	var r0 []byte
	if val := ret.Get(0); val != nil {
		r0 = val.([]byte)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GenerateStoreQR is a helper method to define mock.On call
func (_e *MockQRCodeService_Expecter) GenerateStoreQR(storeID any) *mock.Call {
	return _e.mock.On("GenerateStoreQR", storeID)
}

// ParseStoreQR provides a mock function with given fields: qrData
func (_m *MockQRCodeService) ParseStoreQR(qrData string) (uuid.UUID, error) {
	ret := _m.Called(qrData)

	if rf, ok := ret.Get(0).(func(string) (uuid.UUID, error)); ok {
		return rf(qrData)
	}

	r0 := ret.Get(0).(uuid.UUID)
	r1 := ret.Error(1)

	return r0, r1
}

// ParseStoreQR is a helper method to define mock.On call
func (_e *MockQRCodeService_Expecter) ParseStoreQR(qrData any) *mock.Call {
	return _e.mock.On("ParseStoreQR", qrData)
}

// NewMockQRCodeService creates a new instance of MockQRCodeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
