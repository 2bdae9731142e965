package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/filedock/filedock/internal/adapter/handler"
	"github.com/filedock/filedock/internal/domain/entities"
	"github.com/filedock/filedock/internal/usecase"
	"github.com/filedock/filedock/internal/usecase/mocks"
	"github.com/filedock/filedock/pkg/types"
)

func newStorageRouter(records *mocks.MockStorageRecordRepository, artifacts *mocks.MockArtifactStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewStorageHandler(usecase.NewStorageUseCase(records, artifacts)).RegisterRoutes(router)
	return router
}

func TestStorageHandler_Upload(t *testing.T) {
	records := new(mocks.MockStorageRecordRepository)
	artifacts := new(mocks.MockArtifactStore)
	artifacts.On("Put", mock.Anything, mock.Anything, mock.Anything).Return(int64(64), nil)
	records.On("Save", mock.Anything, mock.Anything).Return(nil)

	now := time.Now().UTC().Truncate(time.Millisecond)
	w := doJSON(newStorageRouter(records, artifacts), http.MethodPost, "/api/storage/upload",
		types.StorageCreateRequest{
			Name:      "photo.png",
			Type:      "image/png",
			Path:      "/photo.png",
			CreatedAt: now,
			UpdatedAt: now,
		})

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.StorageCreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.GreaterOrEqual(t, resp.Size, int64(0))
	require.NotNil(t, resp.Thumbnail)
	assert.Equal(t, "/thumbnails/"+resp.ID, *resp.Thumbnail)
	assert.Equal(t, "photo.png", resp.Name)
	assert.True(t, resp.CreatedAt.Equal(now))
}

func TestStorageHandler_Upload_MissingFields(t *testing.T) {
	records := new(mocks.MockStorageRecordRepository)
	artifacts := new(mocks.MockArtifactStore)

	w := doJSON(newStorageRouter(records, artifacts), http.MethodPost, "/api/storage/upload",
		map[string]interface{}{
			"type": "text/plain",
		})

	require.Equal(t, http.StatusBadRequest, w.Code)
	artifacts.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestStorageHandler_Delete(t *testing.T) {
	records := new(mocks.MockStorageRecordRepository)
	artifacts := new(mocks.MockArtifactStore)
	records.On("Delete", mock.Anything, "some-id").Return(nil)
	artifacts.On("Remove", mock.Anything, "some-id").Return(nil)

	w := doJSON(newStorageRouter(records, artifacts), http.MethodDelete, "/api/storage/some-id", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body types.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "File deleted from storage", body.Message)
}

func TestStorageHandler_Delete_NotFound(t *testing.T) {
	records := new(mocks.MockStorageRecordRepository)
	artifacts := new(mocks.MockArtifactStore)
	records.On("Delete", mock.Anything, "missing-id").Return(entities.ErrNotFound)

	w := doJSON(newStorageRouter(records, artifacts), http.MethodDelete, "/api/storage/missing-id", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStorageHandler_Move(t *testing.T) {
	records := new(mocks.MockStorageRecordRepository)
	artifacts := new(mocks.MockArtifactStore)
	folder := validFolderID
	records.On("UpdateFolder", mock.Anything, "some-id", &folder).
		Return(&entities.FileRecord{ID: "some-id", FolderID: &folder}, nil)

	w := doJSON(newStorageRouter(records, artifacts), http.MethodPut, "/api/storage/some-id/move",
		types.MoveRequest{FolderID: &folder})

	require.Equal(t, http.StatusOK, w.Code)
	var record entities.FileRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	require.NotNil(t, record.FolderID)
	assert.Equal(t, validFolderID, *record.FolderID)
}

func TestStorageHandler_Move_NotFound(t *testing.T) {
	records := new(mocks.MockStorageRecordRepository)
	artifacts := new(mocks.MockArtifactStore)
	records.On("UpdateFolder", mock.Anything, "missing-id", (*string)(nil)).
		Return(nil, entities.ErrNotFound)

	w := doJSON(newStorageRouter(records, artifacts), http.MethodPut, "/api/storage/missing-id/move",
		types.MoveRequest{})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
