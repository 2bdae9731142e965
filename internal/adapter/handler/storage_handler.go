package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filedock/filedock/internal/domain/entities"
	"github.com/filedock/filedock/internal/usecase"
	"github.com/filedock/filedock/pkg/types"
)

// StorageHandler exposes the storage node's internal API, consumed only by
// the registry's coordinator.
type StorageHandler struct {
	storage *usecase.StorageUseCase
}

// NewStorageHandler creates the storage node handler.
func NewStorageHandler(storage *usecase.StorageUseCase) *StorageHandler {
	return &StorageHandler{storage: storage}
}

// RegisterRoutes registers the storage node endpoints.
func (h *StorageHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/storage")

	api.POST("/upload", h.Upload)
	api.DELETE("/:id", h.Delete)
	api.PUT("/:id/move", h.Move)
}

// Upload accepts a record minus the node-assigned fields and echoes it back
// with a fresh id, computed size and derived thumbnail.
func (h *StorageHandler) Upload(c *gin.Context) {
	var req types.StorageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
			Code:  types.CodeInvalidInput,
		})
		return
	}

	in := entities.CreateInput{
		Name:     req.Name,
		Type:     req.Type,
		Path:     req.Path,
		FolderID: req.FolderID,
		IsFolder: req.IsFolder,
	}

	record, err := h.storage.Create(c.Request.Context(), &in, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StorageCreateResponse{
		ID:        record.ID,
		Name:      record.Name,
		Type:      record.Type,
		Size:      record.Size,
		Path:      record.Path,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
		IsFolder:  record.IsFolder,
		FolderID:  record.FolderID,
		Thumbnail: record.Thumbnail,
	})
}

// Delete removes the artifact and its id mapping.
func (h *StorageHandler) Delete(c *gin.Context) {
	if err := h.storage.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{Message: "File deleted from storage"})
}

// Move updates the node's placement bookkeeping for the record.
func (h *StorageHandler) Move(c *gin.Context) {
	var req types.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
			Code:  types.CodeInvalidInput,
		})
		return
	}

	record, err := h.storage.RelocateReference(c.Request.Context(), c.Param("id"), req.FolderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
