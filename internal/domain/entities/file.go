package entities

import (
	"strings"
	"time"
)

// FileRecord describes a file or folder tracked by both the metadata
// registry and the storage node. The id is issued by the storage node at
// creation time and is the only join key between the two stores.
type FileRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsFolder  bool      `json:"isFolder"`
	FolderID  *string   `json:"folderId,omitempty"`
	Thumbnail *string   `json:"thumbnail,omitempty"`
}

// CreateInput carries the caller-supplied fields of a create operation.
// ID, size and thumbnail are storage-node-authoritative and never accepted
// from the caller.
type CreateInput struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Path     string  `json:"path"`
	FolderID *string `json:"folderId,omitempty"`
	IsFolder bool    `json:"isFolder"`
}

// Validate checks the required string fields. The folderId format check
// happens separately, where the UUID constraint applies.
func (in *CreateInput) Validate() error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.Type == "" {
		return &ValidationError{Field: "type", Reason: "must not be empty"}
	}
	if in.Path == "" {
		return &ValidationError{Field: "path", Reason: "must not be empty"}
	}
	return nil
}

// IsImage reports whether the input's MIME type denotes an image. Folders
// never qualify, regardless of type.
func (in *CreateInput) IsImage() bool {
	return !in.IsFolder && strings.HasPrefix(in.Type, "image/")
}

// NormalizeFolderID canonicalizes the parent reference: an empty string and
// an absent value both mean root, stored as nil.
func NormalizeFolderID(folderID *string) *string {
	if folderID == nil || *folderID == "" {
		return nil
	}
	return folderID
}
