package repository

import (
	"context"

	"million/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPropertyImageRepository is a mock implementation of repository.PropertyImageRepository.
type MockPropertyImageRepository struct {
	mock.Mock
}

func NewMockPropertyImageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPropertyImageRepository {
	m := &MockPropertyImageRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPropertyImageRepository) FindEnabledByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyImage, error) {
	args := m.Called(ctx, propertyID)

	var images []*entity.PropertyImage
	if v := args.Get(0); v != nil {
		images = v.([]*entity.PropertyImage)
	}

	return images, args.Error(1)
}

func (m *MockPropertyImageRepository) FindFirstEnabledByProperty(ctx context.Context, propertyID string) (*entity.PropertyImage, error) {
	args := m.Called(ctx, propertyID)

	var image *entity.PropertyImage
	if v := args.Get(0); v != nil {
		image = v.(*entity.PropertyImage)
	}

	return image, args.Error(1)
}

func (m *MockPropertyImageRepository) Create(ctx context.Context, image *entity.PropertyImage) error {
	return m.Called(ctx, image).Error(0)
}

func (m *MockPropertyImageRepository) Disable(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
