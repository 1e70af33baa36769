package repository

import (
	"context"

	"million/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockOwnerRepository is a mock implementation of repository.OwnerRepository.
type MockOwnerRepository struct {
	mock.Mock
}

func NewMockOwnerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOwnerRepository {
	m := &MockOwnerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOwnerRepository) FindAll(ctx context.Context) ([]*entity.Owner, error) {
	args := m.Called(ctx)

	var owners []*entity.Owner
	if v := args.Get(0); v != nil {
		owners = v.([]*entity.Owner)
	}

	return owners, args.Error(1)
}

func (m *MockOwnerRepository) FindByID(ctx context.Context, id string) (*entity.Owner, error) {
	args := m.Called(ctx, id)

	var owner *entity.Owner
	if v := args.Get(0); v != nil {
		owner = v.(*entity.Owner)
	}

	return owner, args.Error(1)
}

func (m *MockOwnerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *MockOwnerRepository) Update(ctx context.Context, id string, owner *entity.Owner) error {
	return m.Called(ctx, id, owner).Error(0)
}

func (m *MockOwnerRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
