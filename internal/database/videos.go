package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"media-ai-backend/internal/models"
)

const videoColumns = `id, title, description, public_id, original_size, compressed_size, duration, created_at, updated_at`

func (d *DatabaseClient) CreateVideo(ctx context.Context, video *models.Video) (*models.Video, error) {
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}

	var created models.Video
	err := d.namedReturning(ctx, `
		INSERT INTO videos (id, title, description, public_id, original_size, compressed_size, duration)
		VALUES (:id, :title, :description, :public_id, :original_size, :compressed_size, :duration)
		RETURNING `+videoColumns, video, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	return &created, nil
}

func (d *DatabaseClient) ListVideos(ctx context.Context) ([]models.Video, error) {
	videos := []models.Video{}
	err := d.db.SelectContext(ctx, &videos, `
		SELECT `+videoColumns+`
		FROM videos
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	return videos, nil
}
