package models

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Title          string    `db:"title" json:"title"`
	Description    *string   `db:"description" json:"description"`
	PublicID       string    `db:"public_id" json:"publicId"`
	OriginalSize   string    `db:"original_size" json:"originalSize"`
	CompressedSize string    `db:"compressed_size" json:"compressedSize"`
	Duration       float64   `db:"duration" json:"duration"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}
