package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockArtifactStore is a mock implementation of ArtifactStore
type MockArtifactStore struct {
	mock.Mock
}

// Put mocks the Put method
func (m *MockArtifactStore) Put(ctx context.Context, id string, body io.Reader) (int64, error) {
	args := m.Called(ctx, id, body)
	return args.Get(0).(int64), args.Error(1)
}

// Remove mocks the Remove method
func (m *MockArtifactStore) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
