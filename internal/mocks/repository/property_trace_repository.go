package repository

import (
	"context"

	"million/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPropertyTraceRepository is a mock implementation of repository.PropertyTraceRepository.
type MockPropertyTraceRepository struct {
	mock.Mock
}

func NewMockPropertyTraceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPropertyTraceRepository {
	m := &MockPropertyTraceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPropertyTraceRepository) FindByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyTrace, error) {
	args := m.Called(ctx, propertyID)

	var traces []*entity.PropertyTrace
	if v := args.Get(0); v != nil {
		traces = v.([]*entity.PropertyTrace)
	}

	return traces, args.Error(1)
}

func (m *MockPropertyTraceRepository) Create(ctx context.Context, trace *entity.PropertyTrace) error {
	return m.Called(ctx, trace).Error(0)
}
