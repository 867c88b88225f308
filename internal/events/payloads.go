package events

import (
	"media-ai-backend/internal/models"
)

// Event payloads

func VideoUploadedPayload(v *models.Video) map[string]interface{} {
	return map[string]interface{}{
		"id":              v.ID.String(),
		"public_id":       v.PublicID,
		"original_size":   v.OriginalSize,
		"compressed_size": v.CompressedSize,
		"duration":        v.Duration,
	}
}

func ImageProcessedPayload(img *models.Image, processType string) map[string]interface{} {
	return map[string]interface{}{
		"id":           img.ID.String(),
		"public_id":    img.PublicID,
		"process_type": processType,
		"tags":         []string(img.Tags),
	}
}

func FacesDetectedPayload(img *models.Image) map[string]interface{} {
	count := 0
	if img.FaceCount != nil {
		count = *img.FaceCount
	}
	return map[string]interface{}{
		"id":         img.ID.String(),
		"public_id":  img.PublicID,
		"face_count": count,
		"tags":       []string(img.Tags),
	}
}

func VisionAnalyzedPayload(publicID, mode string, tokensUsed int) map[string]interface{} {
	return map[string]interface{}{
		"public_id":   publicID,
		"mode":        mode,
		"tokens_used": tokensUsed,
	}
}

func DocumentPayload(doc *models.Document) map[string]interface{} {
	payload := map[string]interface{}{
		"id":                doc.ID.String(),
		"public_id":         doc.OriginalPublicID,
		"file_type":         doc.FileType,
		"conversion_status": doc.ConversionStatus,
	}
	if doc.PDFPublicID != nil {
		payload["pdf_public_id"] = *doc.PDFPublicID
	}
	return payload
}

func DeletedPayload(id, publicID string) map[string]interface{} {
	return map[string]interface{}{
		"id":        id,
		"public_id": publicID,
	}
}
