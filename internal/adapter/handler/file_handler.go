package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filedock/filedock/internal/domain/entities"
	"github.com/filedock/filedock/internal/usecase"
	"github.com/filedock/filedock/pkg/types"
)

// FileHandler exposes the metadata registry's client-facing endpoints on
// top of the coordinator.
type FileHandler struct {
	coordinator *usecase.Coordinator
}

// NewFileHandler creates the registry handler.
func NewFileHandler(coordinator *usecase.Coordinator) *FileHandler {
	return &FileHandler{coordinator: coordinator}
}

// RegisterRoutes registers the registry endpoints.
func (h *FileHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/files", h.ListFiles)
	router.POST("/files/upload", h.UploadFile)
	router.POST("/folders", h.CreateFolder)
	router.DELETE("/files/:id", h.DeleteFile)
	router.PUT("/files/:id/move", h.MoveFile)
}

// ListFiles returns the records under the folderId query parameter, or the
// root listing when it is absent.
func (h *FileHandler) ListFiles(c *gin.Context) {
	var folderID *string
	if v, ok := c.GetQuery("folderId"); ok && v != "" {
		folderID = &v
	}

	records, err := h.coordinator.List(c.Request.Context(), folderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// UploadFile creates a file record. isFolder is forced false regardless of
// the request body.
func (h *FileHandler) UploadFile(c *gin.Context) {
	h.create(c, false)
}

// CreateFolder creates a folder record. isFolder is forced true.
func (h *FileHandler) CreateFolder(c *gin.Context) {
	h.create(c, true)
}

func (h *FileHandler) create(c *gin.Context, isFolder bool) {
	var in entities.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
			Code:  types.CodeInvalidInput,
		})
		return
	}
	in.IsFolder = isFolder

	record, err := h.coordinator.Create(c.Request.Context(), &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteFile removes a record from both stores.
func (h *FileHandler) DeleteFile(c *gin.Context) {
	if err := h.coordinator.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{Message: "File deleted successfully"})
}

// MoveFile changes a record's parent folder.
func (h *FileHandler) MoveFile(c *gin.Context) {
	var req types.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
			Code:  types.CodeInvalidInput,
		})
		return
	}

	record, err := h.coordinator.Move(c.Request.Context(), c.Param("id"), req.FolderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// writeError translates the error taxonomy into HTTP responses. Partial
// failures name the leg that failed so operators can tell a clean abort
// from an inconsistency-introducing one.
func writeError(c *gin.Context, err error) {
	if entities.IsValidation(err) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: err.Error(),
			Code:  types.CodeInvalidInput,
		})
		return
	}
	if pe, ok := entities.AsPartial(err); ok {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error: pe.Error(),
			Code:  types.CodePartialFailure,
			Leg:   pe.FailedLeg,
		})
		return
	}
	if errors.Is(err, entities.ErrNotFound) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error: err.Error(),
			Code:  types.CodeNotFound,
		})
		return
	}
	if errors.Is(err, entities.ErrStorageUnavailable) {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error: err.Error(),
			Code:  types.CodeUpstreamFailure,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, types.ErrorResponse{
		Error: err.Error(),
		Code:  types.CodeInternal,
	})
}
