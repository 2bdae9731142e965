package repository

import (
	"context"

	"github.com/filedock/filedock/internal/domain/entities"
)

// MetadataRepository is the registry's local store: the canonical, queryable
// listing of files and folders, keyed by the storage-node-issued id.
type MetadataRepository interface {
	// List returns all records whose parent is folderID (nil for root),
	// in insertion order.
	List(ctx context.Context, folderID *string) ([]entities.FileRecord, error)

	// Insert persists a record whose id was supplied by the storage node.
	// Returns entities.ErrDuplicateID if the id already exists.
	Insert(ctx context.Context, record *entities.FileRecord) error

	// Remove deletes the record. Returns entities.ErrNotFound if absent.
	Remove(ctx context.Context, id string) error

	// UpdateFolder changes only the parent reference and updatedAt, and
	// returns the updated record. Returns entities.ErrNotFound if absent.
	UpdateFolder(ctx context.Context, id string, folderID *string) (*entities.FileRecord, error)
}
