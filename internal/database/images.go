package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"media-ai-backend/internal/models"
)

const imageColumns = `id, title, description, public_id, original_size, file_type, tags, extracted_text,
	has_background_removed, is_enhanced, ai_caption, quality_score, quality_level, watermark_detected,
	object_detection, ai_vision_tags, ai_vision_moderation, ai_vision_general, tokens_used,
	facial_attributes, face_count, has_faces, faces_bounding_boxes, facial_landmarks,
	created_at, updated_at`

func (d *DatabaseClient) CreateImage(ctx context.Context, image *models.Image) (*models.Image, error) {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	if image.Tags == nil {
		image.Tags = []string{}
	}

	var created models.Image
	err := d.namedReturning(ctx, `
		INSERT INTO images (
			id, title, description, public_id, original_size, file_type, tags, extracted_text,
			has_background_removed, is_enhanced, ai_caption, quality_score, quality_level,
			watermark_detected, object_detection, facial_attributes, face_count, has_faces,
			faces_bounding_boxes, facial_landmarks
		) VALUES (
			:id, :title, :description, :public_id, :original_size, :file_type, :tags, :extracted_text,
			:has_background_removed, :is_enhanced, :ai_caption, :quality_score, :quality_level,
			:watermark_detected, :object_detection, :facial_attributes, :face_count, :has_faces,
			:faces_bounding_boxes, :facial_landmarks
		)
		RETURNING `+imageColumns, image, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	return &created, nil
}

func (d *DatabaseClient) ListImages(ctx context.Context) ([]models.Image, error) {
	images := []models.Image{}
	err := d.db.SelectContext(ctx, &images, `
		SELECT `+imageColumns+`
		FROM images
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	return images, nil
}

func (d *DatabaseClient) GetImageByPublicID(ctx context.Context, publicID string) (*models.Image, error) {
	var image models.Image
	err := d.db.GetContext(ctx, &image, `
		SELECT `+imageColumns+`
		FROM images
		WHERE public_id = $1
	`, publicID)
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", notFound(err))
	}

	return &image, nil
}

// UpdateImageVision stores one mode's analysis and the token usage on the image with publicID.
func (d *DatabaseClient) UpdateImageVision(ctx context.Context, publicID string, field models.VisionField, analysis models.JSON, tokensUsed int) error {
	switch field {
	case models.VisionFieldTags, models.VisionFieldModeration, models.VisionFieldGeneral:
	default:
		return fmt.Errorf("unknown vision field %q", field)
	}

	result, err := d.db.ExecContext(ctx, `
		UPDATE images
		SET `+string(field)+` = $1, tokens_used = $2, updated_at = NOW()
		WHERE public_id = $3
	`, analysis, tokensUsed, publicID)
	if err != nil {
		return fmt.Errorf("failed to update image vision data: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update image vision data: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteImage removes exactly one image and returns the deleted row.
func (d *DatabaseClient) DeleteImage(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	var image models.Image
	err := d.db.GetContext(ctx, &image, `
		DELETE FROM images
		WHERE id = $1
		RETURNING `+imageColumns, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete image: %w", notFound(err))
	}

	return &image, nil
}
