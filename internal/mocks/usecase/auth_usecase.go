package usecase

import (
	"context"

	"million/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	var output *usecase.AuthOutput
	if v := args.Get(0); v != nil {
		output = v.(*usecase.AuthOutput)
	}

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	var output *usecase.AuthOutput
	if v := args.Get(0); v != nil {
		output = v.(*usecase.AuthOutput)
	}

	return output, args.Error(1)
}
