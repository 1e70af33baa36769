// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"million/internal/domain/entity"
	"million/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository is a mock implementation of repository.PropertyRepository.
type MockPropertyRepository struct {
	mock.Mock
}

func NewMockPropertyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPropertyRepository {
	m := &MockPropertyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPropertyRepository) FindPage(ctx context.Context, filter repository.PropertyFilter, page repository.Page) ([]*entity.Property, int64, error) {
	args := m.Called(ctx, filter, page)

	var properties []*entity.Property
	if v := args.Get(0); v != nil {
		properties = v.([]*entity.Property)
	}

	return properties, args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	args := m.Called(ctx, id)

	var property *entity.Property
	if v := args.Get(0); v != nil {
		property = v.(*entity.Property)
	}

	return property, args.Error(1)
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *MockPropertyRepository) Update(ctx context.Context, id string, update repository.PropertyUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
