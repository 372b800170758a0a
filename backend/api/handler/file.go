package handler

import (
	"errors"
	"net/http"

	"mediavault/backend/common"
	"mediavault/backend/service"

	"github.com/gin-gonic/gin"
)

// MaxUploadBytes is the hard ceiling on an upload body (200 MiB).
const MaxUploadBytes = 200 << 20

// FileHandler serves upload, listing, retrieval and deletion.
type FileHandler struct {
	files *service.FileService
}

func NewFileHandler(files *service.FileService) *FileHandler {
	return &FileHandler{files: files}
}

// Upload accepts one multipart part named "file", stores it and returns
// the new record including its public URL.
func (h *FileHandler) Upload(c *gin.Context) {
	if c.Request.ContentLength > MaxUploadBytes {
		common.RespError(c, http.StatusRequestEntityTooLarge, "File too large")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			common.RespError(c, http.StatusRequestEntityTooLarge, "File too large")
		} else {
			common.RespError(c, http.StatusBadRequest, "No file uploaded")
		}
		return
	}

	record, err := h.files.Store(c.GetString("user_id"), requestBaseURL(c), fh)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedType) {
			common.RespError(c, http.StatusBadRequest, "Unsupported file type")
		} else {
			common.SysError("upload failed: " + err.Error())
			common.RespError(c, http.StatusInternalServerError, "Failed to store file")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "file": record})
}

// List returns the caller's records in stored order.
func (h *FileHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.files.List(c.GetString("user_id")))
}

// Get returns one of the caller's records. Records owned by someone else
// read as not found.
func (h *FileHandler) Get(c *gin.Context) {
	record, ok := h.files.Get(c.Param("id"), c.GetString("user_id"))
	if !ok {
		common.RespNotFound(c)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete removes the bytes on disk and the index record together.
func (h *FileHandler) Delete(c *gin.Context) {
	removed, err := h.files.Delete(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		common.SysError("delete failed: " + err.Error())
		common.RespError(c, http.StatusInternalServerError, "Failed to delete file")
		return
	}
	if !removed {
		common.RespNotFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// requestBaseURL builds the externally reachable prefix for public URLs,
// preferring the configured server address over the request host.
func requestBaseURL(c *gin.Context) string {
	if common.ServerAddress != "" {
		return common.ServerAddress
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
