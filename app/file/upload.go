// Package file contains the attachment upload and download endpoints
package file

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/model"
	"bitwise74/task-api/pkg/response"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const keyCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FileUpload stores the multipart field "file" and records it so tasks can
// reference it through file_id
func FileUpload(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")
	userID := c.MustGet("userID").(uint)

	if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		// Lets BodySizeLimiter turn an oversized body into a 413
		c.Error(err)

		if strings.Contains(err.Error(), "request body too large") {
			return
		}

		response.Error(c, http.StatusBadRequest, "No file provided")

		zap.L().Debug("Failed to read multipart file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	src, err := fh.Open()
	if err != nil {
		response.Internal(c, "Failed to open multipart file", err)
		return
	}
	defer src.Close()

	id, err := gonanoid.Generate(keyCharset, 16)
	if err != nil {
		response.Internal(c, "Failed to generate file key", err)
		return
	}

	mime, err := mimetype.DetectReader(src)
	if err != nil {
		response.Internal(c, "Failed to detect file type", err)
		return
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		response.Internal(c, "Failed to rewind multipart file", err)
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = mime.Extension()
	}

	key := id + ext
	contentType := mime.String()

	if err := d.Storage.Put(c.Request.Context(), key, src, fh.Size, contentType); err != nil {
		response.Internal(c, "Failed to store file", err)
		return
	}

	f, err := d.Files.Create(c.Request.Context(), model.File{
		UserID:      &userID,
		Key:         key,
		Name:        filepath.Base(fh.Filename),
		ContentType: contentType,
		Size:        fh.Size,
	})
	if err != nil {
		if delErr := d.Storage.Delete(c.Request.Context(), key); delErr != nil {
			zap.L().Warn("Failed to remove orphaned file", zap.String("key", key), zap.Error(delErr))
		}

		response.Internal(c, "Failed to save file", err)
		return
	}

	c.JSON(http.StatusOK, f)
}
