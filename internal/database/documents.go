package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"media-ai-backend/internal/models"
)

const documentColumns = `id, title, description, original_public_id, pdf_public_id, thumbnail_public_id,
	original_size, file_type, conversion_status, page_count, archive_path, created_at, updated_at`

func (d *DatabaseClient) CreateDocument(ctx context.Context, doc *models.Document) (*models.Document, error) {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.ConversionStatus == "" {
		doc.ConversionStatus = models.ConversionPending
	}

	var created models.Document
	err := d.namedReturning(ctx, `
		INSERT INTO documents (
			id, title, description, original_public_id, original_size, file_type,
			conversion_status, archive_path
		) VALUES (
			:id, :title, :description, :original_public_id, :original_size, :file_type,
			:conversion_status, :archive_path
		)
		RETURNING `+documentColumns, doc, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return &created, nil
}

func (d *DatabaseClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	docs := []models.Document{}
	err := d.db.SelectContext(ctx, &docs, `
		SELECT `+documentColumns+`
		FROM documents
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return docs, nil
}

func (d *DatabaseClient) GetDocumentByPublicID(ctx context.Context, publicID string) (*models.Document, error) {
	var doc models.Document
	err := d.db.GetContext(ctx, &doc, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE original_public_id = $1
	`, publicID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", notFound(err))
	}

	return &doc, nil
}

// UpdateDocumentConversion records the outcome of a conversion. Nil ids leave the columns untouched.
func (d *DatabaseClient) UpdateDocumentConversion(ctx context.Context, id uuid.UUID, status string, pdfPublicID, thumbnailPublicID *string) (*models.Document, error) {
	var doc models.Document
	err := d.db.GetContext(ctx, &doc, `
		UPDATE documents
		SET conversion_status = $2,
			pdf_public_id = COALESCE($3, pdf_public_id),
			thumbnail_public_id = COALESCE($4, thumbnail_public_id),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+documentColumns, id, status, pdfPublicID, thumbnailPublicID)
	if err != nil {
		return nil, fmt.Errorf("failed to update document conversion: %w", notFound(err))
	}

	return &doc, nil
}

func (d *DatabaseClient) SetDocumentArchivePath(ctx context.Context, id uuid.UUID, path string) error {
	result, err := d.db.ExecContext(ctx, `
		UPDATE documents
		SET archive_path = $2, updated_at = NOW()
		WHERE id = $1
	`, id, path)
	if err != nil {
		return fmt.Errorf("failed to set document archive path: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set document archive path: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDocument removes exactly one document and returns the deleted row.
func (d *DatabaseClient) DeleteDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := d.db.GetContext(ctx, &doc, `
		DELETE FROM documents
		WHERE id = $1
		RETURNING `+documentColumns, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete document: %w", notFound(err))
	}

	return &doc, nil
}
