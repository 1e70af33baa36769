package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockFileStorage is a mock implementation of service.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

func NewMockFileStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFileStorage {
	m := &MockFileStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFileStorage) Save(ctx context.Context, filename string, contentType string, content io.Reader) (string, error) {
	args := m.Called(ctx, filename, contentType, content)

	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)

	var content io.ReadCloser
	if v := args.Get(0); v != nil {
		content = v.(io.ReadCloser)
	}

	return content, args.String(1), args.Error(2)
}

func (m *MockFileStorage) URL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)

	return args.String(0), args.Error(1)
}
