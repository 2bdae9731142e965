package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/filedock/filedock/internal/domain/entities"
	"github.com/filedock/filedock/internal/domain/repository"
)

// Cap for the stand-in size computation, matching the reference ceiling.
const maxStandInSize = 10_000_000

// StorageUseCase is the storage node's business logic: id assignment,
// artifact placement, size computation and thumbnail derivation.
type StorageUseCase struct {
	records   repository.StorageRecordRepository
	artifacts repository.ArtifactStore
	newID     func() (string, error)
}

// NewStorageUseCase wires the node's bookkeeping store and artifact backend.
func NewStorageUseCase(records repository.StorageRecordRepository, artifacts repository.ArtifactStore) *StorageUseCase {
	return &StorageUseCase{
		records:   records,
		artifacts: artifacts,
		newID:     newRecordID,
	}
}

// newRecordID issues a time-ordered random identifier. UUIDv7 keeps ids
// collision-resistant without a collision check and never reuses a deleted
// id.
func newRecordID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// manifest is the artifact written for every accepted record. Physical
// content is out of scope here, so the node materializes a placeholder
// describing the record; the stand-in size is derived from its bytes.
type manifest struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Path      string    `json:"path"`
	IsFolder  bool      `json:"isFolder"`
	FolderID  *string   `json:"folderId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create assigns a fresh id, places the artifact, computes the size
// (always 0 for folders) and derives a thumbnail reference for image
// files. The caller supplies the timestamps so both stores agree on them.
func (u *StorageUseCase) Create(ctx context.Context, in *entities.CreateInput, createdAt, updatedAt time.Time) (*entities.FileRecord, error) {
	in.FolderID = entities.NormalizeFolderID(in.FolderID)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	id, err := u.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	body, err := json.Marshal(manifest{
		Name:      in.Name,
		Type:      in.Type,
		Path:      in.Path,
		IsFolder:  in.IsFolder,
		FolderID:  in.FolderID,
		CreatedAt: createdAt,
	})
	if err != nil {
		return nil, err
	}
	if _, err := u.artifacts.Put(ctx, id, bytes.NewReader(body)); err != nil {
		return nil, fmt.Errorf("failed to place artifact: %w", err)
	}

	var size int64
	if !in.IsFolder {
		size = standInSize(body)
	}

	var thumbnail *string
	if in.IsImage() {
		ref := "/thumbnails/" + id
		thumbnail = &ref
	}

	record := &entities.FileRecord{
		ID:        id,
		Name:      in.Name,
		Type:      in.Type,
		Size:      size,
		Path:      in.Path,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		IsFolder:  in.IsFolder,
		FolderID:  in.FolderID,
		Thumbnail: thumbnail,
	}

	if err := u.records.Save(ctx, record); err != nil {
		// The artifact is unreachable without its id mapping; drop it.
		_ = u.artifacts.Remove(ctx, id)
		return nil, err
	}
	return record, nil
}

// Delete removes the id mapping and the physical artifact.
func (u *StorageUseCase) Delete(ctx context.Context, id string) error {
	if err := u.records.Delete(ctx, id); err != nil {
		return err
	}
	return u.artifacts.Remove(ctx, id)
}

// RelocateReference updates the node's placement bookkeeping. Physical
// bytes stay where they are; path is caller-supplied metadata.
func (u *StorageUseCase) RelocateReference(ctx context.Context, id string, folderID *string) (*entities.FileRecord, error) {
	return u.records.UpdateFolder(ctx, id, entities.NormalizeFolderID(folderID))
}

// standInSize derives a deterministic, non-negative stand-in size from the
// artifact bytes. Real content sizing is out of scope for this node.
func standInSize(artifact []byte) int64 {
	h := fnv.New64a()
	h.Write(artifact)
	return int64(h.Sum64() % maxStandInSize)
}
