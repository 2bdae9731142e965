package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/filedock/filedock/internal/domain/entities"
	"github.com/filedock/filedock/internal/domain/repository"
	"github.com/filedock/filedock/pkg/types"
)

// StorageClient talks to the storage node over HTTP with a bounded timeout.
// A timed-out call is treated as failed, the same as a refused connection;
// the coordinator's failure policy does not model ambiguous outcomes.
type StorageClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewStorageClient creates a client for the storage node at baseURL.
func NewStorageClient(baseURL string, timeout time.Duration) *StorageClient {
	return &StorageClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Create asks the node to accept a new record and returns the fields it
// assigned.
func (c *StorageClient) Create(ctx context.Context, in *entities.CreateInput, createdAt, updatedAt time.Time) (*repository.StorageCreated, error) {
	req := types.StorageCreateRequest{
		Name:      in.Name,
		Type:      in.Type,
		Path:      in.Path,
		FolderID:  in.FolderID,
		IsFolder:  in.IsFolder,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/storage/upload", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.asError(resp)
	}

	var created types.StorageCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: malformed upload response: %v", entities.ErrStorageUnavailable, err)
	}
	return &repository.StorageCreated{
		ID:        created.ID,
		Size:      created.Size,
		Thumbnail: created.Thumbnail,
	}, nil
}

// Delete removes the record and its artifact on the node.
func (c *StorageClient) Delete(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/storage/"+id, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.asError(resp)
	}
	return nil
}

// RelocateReference updates the node's placement bookkeeping.
func (c *StorageClient) RelocateReference(ctx context.Context, id string, folderID *string) error {
	resp, err := c.do(ctx, http.MethodPut, "/api/storage/"+id+"/move", types.MoveRequest{FolderID: folderID})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.asError(resp)
	}
	return nil
}

func (c *StorageClient) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrStorageUnavailable, err)
	}
	return resp, nil
}

// asError maps a non-200 node response onto the error taxonomy: 404 means
// the id is unknown there, anything else counts as the node being
// unavailable for this operation.
func (c *StorageClient) asError(resp *http.Response) error {
	var body types.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	message := body.Error
	if message == "" {
		message = resp.Status
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("storage node: %s: %w", message, entities.ErrNotFound)
	}
	return fmt.Errorf("%w: status %d: %s", entities.ErrStorageUnavailable, resp.StatusCode, message)
}
