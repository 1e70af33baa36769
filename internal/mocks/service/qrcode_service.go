package service

import (
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock implementation of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateListingQR(propertyID string) ([]byte, error) {
	args := m.Called(propertyID)

	var png []byte
	if v := args.Get(0); v != nil {
		png = v.([]byte)
	}

	return png, args.Error(1)
}
