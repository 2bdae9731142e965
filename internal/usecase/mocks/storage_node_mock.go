package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/filedock/filedock/internal/domain/entities"
	"github.com/filedock/filedock/internal/domain/repository"
)

// MockStorageNode is a mock implementation of StorageNode
type MockStorageNode struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockStorageNode) Create(ctx context.Context, in *entities.CreateInput, createdAt, updatedAt time.Time) (*repository.StorageCreated, error) {
	args := m.Called(ctx, in, createdAt, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StorageCreated), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockStorageNode) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// RelocateReference mocks the RelocateReference method
func (m *MockStorageNode) RelocateReference(ctx context.Context, id string, folderID *string) error {
	args := m.Called(ctx, id, folderID)
	return args.Error(0)
}
