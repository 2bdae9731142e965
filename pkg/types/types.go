package types

import "time"

// StorageCreateRequest is the body the coordinator sends to the storage
// node's upload endpoint: the full record minus the fields the node assigns
// (id, size, thumbnail). Timestamps are supplied by the coordinator so both
// stores persist the same pair.
type StorageCreateRequest struct {
	Name      string    `json:"name" binding:"required"`
	Type      string    `json:"type" binding:"required"`
	Path      string    `json:"path" binding:"required"`
	FolderID  *string   `json:"folderId,omitempty"`
	IsFolder  bool      `json:"isFolder"`
	CreatedAt time.Time `json:"createdAt" binding:"required"`
	UpdatedAt time.Time `json:"updatedAt" binding:"required"`
}

// StorageCreateResponse echoes the accepted record plus the node-assigned
// fields.
type StorageCreateResponse struct {
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

// MoveRequest is the body of both services' move endpoints. A nil or empty
// folderId moves the record to the root.
type MoveRequest struct {
	FolderID *string `json:"folderId"`
}

// MessageResponse is the generic success body for delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic failure body. Code distinguishes clean
// aborts from inconsistency-introducing partial failures; Leg names the
// half of a composite operation that failed.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Leg   string `json:"leg,omitempty"`
}

// Error codes carried in ErrorResponse.Code.
const (
	CodeInvalidInput    = "invalid_input"
	CodeNotFound        = "not_found"
	CodeUpstreamFailure = "upstream_failure"
	CodePartialFailure  = "partial_failure"
	CodeInternal        = "internal"
)
