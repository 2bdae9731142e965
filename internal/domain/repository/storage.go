package repository

import (
	"context"
	"io"
	"time"

	"github.com/filedock/filedock/internal/domain/entities"
)

// StorageCreated is what the storage node reports back after accepting a
// create: the fields only it is allowed to assign.
type StorageCreated struct {
	ID        string
	Size      int64
	Thumbnail *string
}

// StorageNode is the coordinator's view of the storage service, implemented
// by the HTTP client in internal/adapter/client.
type StorageNode interface {
	// Create assigns a fresh id, computes size and derives a thumbnail
	// reference for image types. Timestamps are coordinator-supplied so
	// both stores record the same pair.
	Create(ctx context.Context, in *entities.CreateInput, createdAt, updatedAt time.Time) (*StorageCreated, error)

	// Delete removes the physical artifact and its id mapping. Returns
	// entities.ErrNotFound if the id is unknown.
	Delete(ctx context.Context, id string) error

	// RelocateReference updates the node's placement bookkeeping. It does
	// not move physical bytes. Returns entities.ErrNotFound if unknown.
	RelocateReference(ctx context.Context, id string, folderID *string) error
}

// StorageRecordRepository is the storage node's private bookkeeping store,
// holding its own copy of every record it has accepted.
type StorageRecordRepository interface {
	Save(ctx context.Context, record *entities.FileRecord) error
	Get(ctx context.Context, id string) (*entities.FileRecord, error)
	Delete(ctx context.Context, id string) error
	UpdateFolder(ctx context.Context, id string, folderID *string) (*entities.FileRecord, error)
}

// ArtifactStore places and removes physical artifacts. Backends: local disk
// and S3.
type ArtifactStore interface {
	// Put writes the artifact for id and returns the number of bytes stored.
	Put(ctx context.Context, id string, body io.Reader) (int64, error)

	// Remove deletes the artifact. Removing an absent artifact is not an
	// error; the id mapping is authoritative for existence.
	Remove(ctx context.Context, id string) error
}
