package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockFavoriteUsecase is a mock implementation of usecase.FavoriteUsecase.
type MockFavoriteUsecase struct {
	mock.Mock
}

func NewMockFavoriteUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFavoriteUsecase {
	m := &MockFavoriteUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFavoriteUsecase) Add(ctx context.Context, userID, propertyID string) error {
	return m.Called(ctx, userID, propertyID).Error(0)
}

func (m *MockFavoriteUsecase) Remove(ctx context.Context, userID, propertyID string) error {
	return m.Called(ctx, userID, propertyID).Error(0)
}

func (m *MockFavoriteUsecase) List(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)

	var ids []string
	if v := args.Get(0); v != nil {
		ids = v.([]string)
	}

	return ids, args.Error(1)
}
