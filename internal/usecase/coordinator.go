package usecase

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/filedock/filedock/internal/domain/entities"
	"github.com/filedock/filedock/internal/domain/repository"
)

var folderIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// Coordinator sequences the registry's composite write operations across
// the two stores. Every operation is one remote call to the storage node
// plus one local registry write, in a fixed order, with no rollback: when
// the second leg fails the resulting inconsistency is surfaced as a
// PartialError instead of being repaired in-band.
//
// Create writes storage first, because the registry write needs the
// storage-assigned id, size and thumbnail. Delete and Move write the
// registry first: it is the system of record for listings, so stale
// storage bookkeeping is the cheaper inconsistency.
type Coordinator struct {
	metadata repository.MetadataRepository
	storage  repository.StorageNode
	now      func() time.Time
}

// NewCoordinator wires the registry store and the storage node client.
func NewCoordinator(metadata repository.MetadataRepository, storage repository.StorageNode) *Coordinator {
	return &Coordinator{
		metadata: metadata,
		storage:  storage,
		now:      time.Now,
	}
}

// List returns the records under folderID (nil for root).
func (c *Coordinator) List(ctx context.Context, folderID *string) ([]entities.FileRecord, error) {
	return c.metadata.List(ctx, entities.NormalizeFolderID(folderID))
}

// Create validates the input, asks the storage node for an id, size and
// thumbnail, then inserts the combined record into the registry. If the
// storage leg fails nothing was written anywhere and the whole operation
// is retryable. If the registry insert fails the storage node is left
// holding an orphaned artifact, reported as a PartialError.
func (c *Coordinator) Create(ctx context.Context, in *entities.CreateInput) (*entities.FileRecord, error) {
	in.FolderID = entities.NormalizeFolderID(in.FolderID)
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.FolderID != nil && !folderIDPattern.MatchString(*in.FolderID) {
		return nil, &entities.ValidationError{Field: "folderId", Reason: "must be a valid UUID"}
	}

	// Both stores record the same timestamp pair.
	now := c.now().UTC().Truncate(time.Millisecond)

	created, err := c.storage.Create(ctx, in, now, now)
	if err != nil {
		return nil, err
	}

	record := &entities.FileRecord{
		ID:        created.ID,
		Name:      in.Name,
		Type:      in.Type,
		Size:      created.Size,
		Path:      in.Path,
		CreatedAt: now,
		UpdatedAt: now,
		IsFolder:  in.IsFolder,
		FolderID:  in.FolderID,
		Thumbnail: created.Thumbnail,
	}

	if err := c.metadata.Insert(ctx, record); err != nil {
		return nil, &entities.PartialError{
			Op:           "create",
			CompletedLeg: entities.LegStorage,
			FailedLeg:    entities.LegRegistry,
			Err:          err,
		}
	}
	return record, nil
}

// Delete removes the registry record first, then the storage artifact.
// A storage-side NotFound after the registry record is already gone is
// treated as success: the registry's view of "deleted" is authoritative.
func (c *Coordinator) Delete(ctx context.Context, id string) error {
	if err := c.metadata.Remove(ctx, id); err != nil {
		return err
	}

	err := c.storage.Delete(ctx, id)
	if err == nil || errors.Is(err, entities.ErrNotFound) {
		return nil
	}
	return &entities.PartialError{
		Op:           "delete",
		CompletedLeg: entities.LegRegistry,
		FailedLeg:    entities.LegStorage,
		Err:          err,
	}
}

// Move updates the parent reference in the registry, then aligns the
// storage node's bookkeeping. A failed storage leg leaves that bookkeeping
// stale, which is tolerated because all authoritative queries go through
// the registry; the moved record is returned alongside the PartialError.
func (c *Coordinator) Move(ctx context.Context, id string, folderID *string) (*entities.FileRecord, error) {
	folderID = entities.NormalizeFolderID(folderID)
	if folderID != nil && !folderIDPattern.MatchString(*folderID) {
		return nil, &entities.ValidationError{Field: "folderId", Reason: "must be a valid UUID"}
	}

	record, err := c.metadata.UpdateFolder(ctx, id, folderID)
	if err != nil {
		return nil, err
	}

	if err := c.storage.RelocateReference(ctx, id, folderID); err != nil {
		return record, &entities.PartialError{
			Op:           "move",
			CompletedLeg: entities.LegRegistry,
			FailedLeg:    entities.LegStorage,
			Err:          err,
		}
	}
	return record, nil
}
