package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/filedock/filedock/internal/domain/entities"
)

// MockStorageRecordRepository is a mock implementation of StorageRecordRepository
type MockStorageRecordRepository struct {
	mock.Mock
}

// Save mocks the Save method
func (m *MockStorageRecordRepository) Save(ctx context.Context, record *entities.FileRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// Get mocks the Get method
func (m *MockStorageRecordRepository) Get(ctx context.Context, id string) (*entities.FileRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FileRecord), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockStorageRecordRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// UpdateFolder mocks the UpdateFolder method
func (m *MockStorageRecordRepository) UpdateFolder(ctx context.Context, id string, folderID *string) (*entities.FileRecord, error) {
	args := m.Called(ctx, id, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FileRecord), args.Error(1)
}
