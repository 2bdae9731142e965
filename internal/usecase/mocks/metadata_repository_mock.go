package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/filedock/filedock/internal/domain/entities"
)

// MockMetadataRepository is a mock implementation of MetadataRepository
type MockMetadataRepository struct {
	mock.Mock
}

// List mocks the List method
func (m *MockMetadataRepository) List(ctx context.Context, folderID *string) ([]entities.FileRecord, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FileRecord), args.Error(1)
}

// Insert mocks the Insert method
func (m *MockMetadataRepository) Insert(ctx context.Context, record *entities.FileRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// Remove mocks the Remove method
func (m *MockMetadataRepository) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// UpdateFolder mocks the UpdateFolder method
func (m *MockMetadataRepository) UpdateFolder(ctx context.Context, id string, folderID *string) (*entities.FileRecord, error) {
	args := m.Called(ctx, id, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FileRecord), args.Error(1)
}
