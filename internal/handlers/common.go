package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"media-ai-backend/internal/database"
	"media-ai-backend/internal/events"
	"media-ai-backend/internal/models"
)

// Cloudinary folders per media kind.
const (
	folderImages    = "saas-pro-ai-images"
	folderFaces     = "saas-pro-face-detection"
	folderDocuments = "saas-pro-documents"
	folderVideos    = "saas-pro-videos-upload"
)

// MaxMultipartMemory is how much of a multipart body is held in memory before spilling to disk.
const MaxMultipartMemory = 32 << 20

var errFileRequired = errors.New("no file uploaded")

type uploadedFile struct {
	Name string
	Size int64
	Data []byte
}

// readFormFile reads the "file" part. When maxSize > 0, larger files are rejected
// from the part header before the content is read.
func readFormFile(c *gin.Context, maxSize int64) (*uploadedFile, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, errFileRequired
	}
	if maxSize > 0 && header.Size > maxSize {
		return nil, fmt.Errorf("file size exceeds %dMB limit", maxSize>>20)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return &uploadedFile{
		Name: filepath.Base(header.Filename),
		Size: header.Size,
		Data: data,
	}, nil
}

// optionalString returns nil for an empty form value.
func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func titleOr(title, fallback string) string {
	if strings.TrimSpace(title) == "" {
		return fallback
	}
	return title
}

// parseIDParam reads and validates the "id" query parameter.
func parseIDParam(c *gin.Context, entity string) (uuid.UUID, bool) {
	raw := c.Query("id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: entity + " id required"})
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid " + entity + " id",
			Message: err.Error(),
		})
		return uuid.Nil, false
	}
	return id, true
}

// storeError maps a store error to 404 or 500.
func storeError(c *gin.Context, log *zerolog.Logger, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFoundMsg})
		return
	}
	log.Error().Err(err).Msg(failMsg)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   failMsg,
		Message: err.Error(),
	})
}

func uploadFailed(c *gin.Context, log *zerolog.Logger, err error, what string) {
	log.Error().Err(err).Msg("Upload to Cloudinary failed")
	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "failed to upload " + what,
		Message: err.Error(),
	})
}

// publish sends a domain event. Failures are logged and never reach the client.
func publish(ctx context.Context, publisher events.Publisher, log *zerolog.Logger, eventType, key string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, eventType, key, payload); err != nil {
		log.Warn().Err(err).Str("event", eventType).Str("key", key).Msg("Failed to publish event")
	}
}
