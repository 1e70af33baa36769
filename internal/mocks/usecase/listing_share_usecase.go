package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockListingShareUsecase is a mock implementation of usecase.ListingShareUsecase.
type MockListingShareUsecase struct {
	mock.Mock
}

func NewMockListingShareUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockListingShareUsecase {
	m := &MockListingShareUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockListingShareUsecase) ListingQR(ctx context.Context, propertyID string) ([]byte, error) {
	args := m.Called(ctx, propertyID)

	var png []byte
	if v := args.Get(0); v != nil {
		png = v.([]byte)
	}

	return png, args.Error(1)
}
