package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversion statuses of an uploaded office document.
const (
	ConversionPending  = "pending"
	ConversionComplete = "complete"
	ConversionFailed   = "failed"
)

type Document struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Title             string    `db:"title" json:"title"`
	Description       *string   `db:"description" json:"description"`
	OriginalPublicID  string    `db:"original_public_id" json:"originalPublicId"`
	PDFPublicID       *string   `db:"pdf_public_id" json:"pdfPublicId"`
	ThumbnailPublicID *string   `db:"thumbnail_public_id" json:"thumbnailPublicId"`
	OriginalSize      string    `db:"original_size" json:"originalSize"`
	FileType          string    `db:"file_type" json:"fileType"`
	ConversionStatus  string    `db:"conversion_status" json:"conversionStatus"`
	PageCount         *int      `db:"page_count" json:"pageCount"`
	ArchivePath       *string   `db:"archive_path" json:"archivePath,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}
