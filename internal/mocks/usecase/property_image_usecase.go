package usecase

import (
	"context"

	"million/internal/domain/entity"
	"million/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockPropertyImageUsecase is a mock implementation of usecase.PropertyImageUsecase.
type MockPropertyImageUsecase struct {
	mock.Mock
}

func NewMockPropertyImageUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPropertyImageUsecase {
	m := &MockPropertyImageUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPropertyImageUsecase) Upload(ctx context.Context, propertyID string, upload *usecase.FileUpload) (*entity.PropertyImage, error) {
	args := m.Called(ctx, propertyID, upload)

	var image *entity.PropertyImage
	if v := args.Get(0); v != nil {
		image = v.(*entity.PropertyImage)
	}

	return image, args.Error(1)
}

func (m *MockPropertyImageUsecase) ListByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyImage, error) {
	args := m.Called(ctx, propertyID)

	var images []*entity.PropertyImage
	if v := args.Get(0); v != nil {
		images = v.([]*entity.PropertyImage)
	}

	return images, args.Error(1)
}

func (m *MockPropertyImageUsecase) Disable(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
