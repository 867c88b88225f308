package processing

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/logger"
)

// Process types accepted by POST /api/ai-image-process.
const (
	BackgroundRemoval  = "background-removal"
	OCR                = "ocr"
	AutoTag            = "auto-tag"
	Enhance            = "enhance"
	QualityAnalysis    = "quality-analysis"
	WatermarkDetection = "watermark-detection"
	Captioning         = "captioning"
	ObjectDetection    = "object-detection"
)

const maxTags = 10

// Media is the subset of the Cloudinary client the processor needs.
type Media interface {
	Upload(ctx context.Context, params cloudinary.UploadParams) (*cloudinary.UploadResult, error)
	ExtractText(ctx context.Context, publicID string) (*cloudinary.ResourceResult, error)
	URL(publicID string, opts cloudinary.URLOptions) (string, error)
}

// DetectedObject is one normalised hit from an object detection model.
type DetectedObject struct {
	Object      string          `json:"object"`
	Confidence  float64         `json:"confidence"`
	BoundingBox json.RawMessage `json:"boundingBox"`
	Model       string          `json:"model"`
}

// Result is the normalised outcome of one processing feature.
// Tags is never nil; unset pointer fields mean the feature does not produce them.
type Result struct {
	Type              string           `json:"type"`
	Tags              []string         `json:"tags"`
	ProcessedURL      *string          `json:"processedUrl,omitempty"`
	FineEdgesURL      *string          `json:"fineEdgesUrl,omitempty"`
	ExtractedText     *string          `json:"extractedText,omitempty"`
	AICaption         *string          `json:"aiCaption,omitempty"`
	QualityScore      *float64         `json:"qualityScore,omitempty"`
	QualityLevel      *string          `json:"qualityLevel,omitempty"`
	WatermarkDetected *string          `json:"watermarkDetected,omitempty"`
	ObjectDetection   []DetectedObject `json:"objectDetection,omitempty"`
}

type Processor struct {
	media Media
	log   zerolog.Logger
}

func NewProcessor(media Media) *Processor {
	return &Processor{
		media: media,
		log:   logger.WithComponent("processing"),
	}
}

type feature func(ctx context.Context, publicID string) (Result, error)

// Process runs exactly one feature for processType. It never fails: a feature error
// is logged and replaced by a degraded result tagged "<processType>-failed".
func (p *Processor) Process(ctx context.Context, publicID, processType string) Result {
	run, ok := p.features()[processType]
	if !ok {
		return Result{Type: processType, Tags: []string{}}
	}

	result, err := run(ctx, publicID)
	if err != nil {
		p.log.Error().
			Err(err).
			Str("public_id", publicID).
			Str("process_type", processType).
			Msg("Image processing failed")
		return degraded(processType)
	}

	result.Type = processType
	if result.Tags == nil {
		result.Tags = []string{}
	}
	return result
}

func (p *Processor) features() map[string]feature {
	return map[string]feature{
		BackgroundRemoval:  p.backgroundRemoval,
		OCR:                p.ocr,
		AutoTag:            p.autoTag,
		Enhance:            p.enhance,
		QualityAnalysis:    p.qualityAnalysis,
		WatermarkDetection: p.watermarkDetection,
		Captioning:         p.captioning,
		ObjectDetection:    p.objectDetection,
	}
}

// degraded is the result of a failed feature. Features that report a value keep
// reporting one: zero score, "unknown" level or watermark, empty text or caption.
func degraded(processType string) Result {
	result := Result{Type: processType, Tags: []string{processType + "-failed"}}
	empty := ""
	unknown := "unknown"

	switch processType {
	case OCR:
		result.ExtractedText = &empty
	case QualityAnalysis:
		score := 0.0
		result.QualityScore = &score
		result.QualityLevel = &unknown
	case WatermarkDetection:
		result.WatermarkDetected = &unknown
	case Captioning:
		result.AICaption = &empty
	case ObjectDetection:
		result.ObjectDetection = []DetectedObject{}
	}
	return result
}
