package usecase

import (
	"context"

	"million/internal/domain/entity"
	"million/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockPropertyTraceUsecase is a mock implementation of usecase.PropertyTraceUsecase.
type MockPropertyTraceUsecase struct {
	mock.Mock
}

func NewMockPropertyTraceUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPropertyTraceUsecase {
	m := &MockPropertyTraceUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPropertyTraceUsecase) ListByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyTrace, error) {
	args := m.Called(ctx, propertyID)

	var traces []*entity.PropertyTrace
	if v := args.Get(0); v != nil {
		traces = v.([]*entity.PropertyTrace)
	}

	return traces, args.Error(1)
}

func (m *MockPropertyTraceUsecase) Create(ctx context.Context, input *usecase.CreateTraceInput) (*entity.PropertyTrace, error) {
	args := m.Called(ctx, input)

	var trace *entity.PropertyTrace
	if v := args.Get(0); v != nil {
		trace = v.(*entity.PropertyTrace)
	}

	return trace, args.Error(1)
}
