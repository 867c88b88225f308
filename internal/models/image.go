package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Image struct {
	ID                   uuid.UUID      `db:"id" json:"id"`
	Title                string         `db:"title" json:"title"`
	Description          *string        `db:"description" json:"description"`
	PublicID             string         `db:"public_id" json:"publicId"`
	OriginalSize         string         `db:"original_size" json:"originalSize"`
	FileType             string         `db:"file_type" json:"fileType"`
	Tags                 pq.StringArray `db:"tags" json:"tags"`
	ExtractedText        *string        `db:"extracted_text" json:"extractedText"`
	HasBackgroundRemoved bool           `db:"has_background_removed" json:"hasBackgroundRemoved"`
	IsEnhanced           bool           `db:"is_enhanced" json:"isEnhanced"`
	AICaption            *string        `db:"ai_caption" json:"aiCaption"`
	QualityScore         *float64       `db:"quality_score" json:"qualityScore"`
	QualityLevel         *string        `db:"quality_level" json:"qualityLevel"`
	WatermarkDetected    *string        `db:"watermark_detected" json:"watermarkDetected"`
	ObjectDetection      JSON           `db:"object_detection" json:"objectDetection"`
	AIVisionTags         JSON           `db:"ai_vision_tags" json:"aiVisionTags"`
	AIVisionModeration   JSON           `db:"ai_vision_moderation" json:"aiVisionModeration"`
	AIVisionGeneral      JSON           `db:"ai_vision_general" json:"aiVisionGeneral"`
	TokensUsed           *int           `db:"tokens_used" json:"tokensUsed"`
	FacialAttributes     JSON           `db:"facial_attributes" json:"facialAttributes"`
	FaceCount            *int           `db:"face_count" json:"faceCount"`
	HasFaces             bool           `db:"has_faces" json:"hasFaces"`
	FacesBoundingBoxes   JSON           `db:"faces_bounding_boxes" json:"facesBoundingBoxes"`
	FacialLandmarks      JSON           `db:"facial_landmarks" json:"facialLandmarks"`
	CreatedAt            time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time      `db:"updated_at" json:"updatedAt"`
}

// VisionField names the images column that stores one AI Vision mode's analysis.
type VisionField string

const (
	VisionFieldTags       VisionField = "ai_vision_tags"
	VisionFieldModeration VisionField = "ai_vision_moderation"
	VisionFieldGeneral    VisionField = "ai_vision_general"
)
