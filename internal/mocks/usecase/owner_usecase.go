package usecase

import (
	"context"

	"million/internal/domain/entity"
	"million/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockOwnerUsecase is a mock implementation of usecase.OwnerUsecase.
type MockOwnerUsecase struct {
	mock.Mock
}

func NewMockOwnerUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOwnerUsecase {
	m := &MockOwnerUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOwnerUsecase) List(ctx context.Context) ([]*entity.Owner, error) {
	args := m.Called(ctx)

	var owners []*entity.Owner
	if v := args.Get(0); v != nil {
		owners = v.([]*entity.Owner)
	}

	return owners, args.Error(1)
}

func (m *MockOwnerUsecase) GetByID(ctx context.Context, id string) (*entity.Owner, error) {
	args := m.Called(ctx, id)

	var owner *entity.Owner
	if v := args.Get(0); v != nil {
		owner = v.(*entity.Owner)
	}

	return owner, args.Error(1)
}

func (m *MockOwnerUsecase) Create(ctx context.Context, input *usecase.OwnerInput) (*entity.Owner, error) {
	args := m.Called(ctx, input)

	var owner *entity.Owner
	if v := args.Get(0); v != nil {
		owner = v.(*entity.Owner)
	}

	return owner, args.Error(1)
}

func (m *MockOwnerUsecase) Update(ctx context.Context, id string, input *usecase.OwnerInput) error {
	return m.Called(ctx, id, input).Error(0)
}

func (m *MockOwnerUsecase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
