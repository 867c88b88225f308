package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/models"
	"media-ai-backend/internal/processing"
)

// URLBuilder builds Cloudinary delivery URLs.
type URLBuilder interface {
	URL(publicID string, opts cloudinary.URLOptions) (string, error)
}

// Uploader sends files to Cloudinary and builds URLs for the result.
type Uploader interface {
	URLBuilder
	Upload(ctx context.Context, params cloudinary.UploadParams) (*cloudinary.UploadResult, error)
}

type ImageProcessor interface {
	Process(ctx context.Context, publicID, processType string) processing.Result
}

type VisionAnalyzer interface {
	Analyze(ctx context.Context, task string, payload interface{}) (json.RawMessage, error)
}

type NotificationVerifier interface {
	VerifyNotification(body []byte, timestamp, signature string, maxAge time.Duration, now time.Time) error
}

type VideoStore interface {
	CreateVideo(ctx context.Context, video *models.Video) (*models.Video, error)
	ListVideos(ctx context.Context) ([]models.Video, error)
}

type ImageStore interface {
	CreateImage(ctx context.Context, image *models.Image) (*models.Image, error)
	ListImages(ctx context.Context) ([]models.Image, error)
	GetImageByPublicID(ctx context.Context, publicID string) (*models.Image, error)
	UpdateImageVision(ctx context.Context, publicID string, field models.VisionField, analysis models.JSON, tokensUsed int) error
	DeleteImage(ctx context.Context, id uuid.UUID) (*models.Image, error)
}

type DocumentStore interface {
	CreateDocument(ctx context.Context, doc *models.Document) (*models.Document, error)
	ListDocuments(ctx context.Context) ([]models.Document, error)
	GetDocumentByPublicID(ctx context.Context, publicID string) (*models.Document, error)
	UpdateDocumentConversion(ctx context.Context, id uuid.UUID, status string, pdfPublicID, thumbnailPublicID *string) (*models.Document, error)
	SetDocumentArchivePath(ctx context.Context, id uuid.UUID, path string) error
	DeleteDocument(ctx context.Context, id uuid.UUID) (*models.Document, error)
}

// DocumentArchive keeps copies of uploaded documents. It may be nil.
type DocumentArchive interface {
	Store(publicID, filename string, data []byte) (string, error)
	Remove(objectPath string) error
}
