// Package usecase contains hand-written testify mocks of the usecase
// interfaces, used by delivery-layer tests.
package usecase

import (
	"context"

	"million/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockPropertyUsecase is a mock implementation of usecase.PropertyUsecase.
type MockPropertyUsecase struct {
	mock.Mock
}

func NewMockPropertyUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPropertyUsecase {
	m := &MockPropertyUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPropertyUsecase) List(ctx context.Context, input *usecase.ListPropertiesInput) (*usecase.PagedProperties, error) {
	args := m.Called(ctx, input)

	var page *usecase.PagedProperties
	if v := args.Get(0); v != nil {
		page = v.(*usecase.PagedProperties)
	}

	return page, args.Error(1)
}

func (m *MockPropertyUsecase) GetByID(ctx context.Context, id string) (*usecase.PropertyOutput, error) {
	args := m.Called(ctx, id)

	var property *usecase.PropertyOutput
	if v := args.Get(0); v != nil {
		property = v.(*usecase.PropertyOutput)
	}

	return property, args.Error(1)
}

func (m *MockPropertyUsecase) Create(ctx context.Context, input *usecase.CreatePropertyInput, callerID string) (*usecase.PropertyOutput, error) {
	args := m.Called(ctx, input, callerID)

	var property *usecase.PropertyOutput
	if v := args.Get(0); v != nil {
		property = v.(*usecase.PropertyOutput)
	}

	return property, args.Error(1)
}

func (m *MockPropertyUsecase) Update(ctx context.Context, id string, input *usecase.UpdatePropertyInput, callerOwnerID string) error {
	return m.Called(ctx, id, input, callerOwnerID).Error(0)
}

func (m *MockPropertyUsecase) Delete(ctx context.Context, id string, callerOwnerID string) error {
	return m.Called(ctx, id, callerOwnerID).Error(0)
}
