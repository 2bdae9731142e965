package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filedock/filedock/internal/adapter/client"
	"github.com/filedock/filedock/internal/domain/entities"
	"github.com/filedock/filedock/pkg/types"
)

func TestStorageClient_Create(t *testing.T) {
	thumbnail := "/thumbnails/new-id"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/storage/upload", r.URL.Path)

		var req types.StorageCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "photo.png", req.Name)
		assert.False(t, req.CreatedAt.IsZero())

		json.NewEncoder(w).Encode(types.StorageCreateResponse{
			ID:        "new-id",
			Name:      req.Name,
			Type:      req.Type,
			Size:      777,
			Path:      req.Path,
			CreatedAt: req.CreatedAt,
			UpdatedAt: req.UpdatedAt,
			Thumbnail: &thumbnail,
		})
	}))
	defer server.Close()

	c := client.NewStorageClient(server.URL, time.Second)
	now := time.Now().UTC()
	created, err := c.Create(context.Background(), &entities.CreateInput{
		Name: "photo.png",
		Type: "image/png",
		Path: "/photo.png",
	}, now, now)

	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
	assert.Equal(t, int64(777), created.Size)
	require.NotNil(t, created.Thumbnail)
	assert.Equal(t, thumbnail, *created.Thumbnail)
}

func TestStorageClient_Create_NodeRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(types.ErrorResponse{Error: "invalid name", Code: types.CodeInvalidInput})
	}))
	defer server.Close()

	c := client.NewStorageClient(server.URL, time.Second)
	now := time.Now().UTC()
	_, err := c.Create(context.Background(), &entities.CreateInput{
		Name: "a.txt", Type: "text/plain", Path: "/a.txt",
	}, now, now)

	assert.ErrorIs(t, err, entities.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "invalid name")
}

func TestStorageClient_Create_NodeUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	c := client.NewStorageClient(server.URL, time.Second)
	now := time.Now().UTC()
	_, err := c.Create(context.Background(), &entities.CreateInput{
		Name: "a.txt", Type: "text/plain", Path: "/a.txt",
	}, now, now)

	assert.ErrorIs(t, err, entities.ErrStorageUnavailable)
}

func TestStorageClient_Create_Timeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	c := client.NewStorageClient(server.URL, 50*time.Millisecond)
	now := time.Now().UTC()
	_, err := c.Create(context.Background(), &entities.CreateInput{
		Name: "a.txt", Type: "text/plain", Path: "/a.txt",
	}, now, now)

	// A timed-out call counts as the node being unavailable.
	assert.ErrorIs(t, err, entities.ErrStorageUnavailable)
}

func TestStorageClient_Delete(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		checkErr func(*testing.T, error)
	}{
		{"success", http.StatusOK, func(t *testing.T, err error) {
			assert.NoError(t, err)
		}},
		{"unknown id", http.StatusNotFound, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, entities.ErrNotFound)
		}},
		{"node error", http.StatusInternalServerError, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, entities.ErrStorageUnavailable)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(t, "/api/storage/some-id", r.URL.Path)
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(types.MessageResponse{Message: "ok"})
			}))
			defer server.Close()

			c := client.NewStorageClient(server.URL, time.Second)
			tt.checkErr(t, c.Delete(context.Background(), "some-id"))
		})
	}
}

func TestStorageClient_RelocateReference(t *testing.T) {
	folder := "0191a0b0-1234-7abc-8def-0123456789ab"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/storage/some-id/move", r.URL.Path)

		var req types.MoveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.FolderID)
		assert.Equal(t, folder, *req.FolderID)

		json.NewEncoder(w).Encode(entities.FileRecord{ID: "some-id", FolderID: req.FolderID})
	}))
	defer server.Close()

	c := client.NewStorageClient(server.URL, time.Second)
	assert.NoError(t, c.RelocateReference(context.Background(), "some-id", &folder))
}

func TestStorageClient_RelocateReference_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(types.ErrorResponse{Error: "record not found", Code: types.CodeNotFound})
	}))
	defer server.Close()

	c := client.NewStorageClient(server.URL, time.Second)
	err := c.RelocateReference(context.Background(), "missing-id", nil)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
