package processing

import (
	"context"
	"fmt"
	"sort"

	"media-ai-backend/internal/cloudinary"
)

func (p *Processor) backgroundRemoval(ctx context.Context, publicID string) (Result, error) {
	processedURL, err := p.media.URL(publicID, cloudinary.URLOptions{
		Transformations: []cloudinary.Transformation{{Effect: "background_removal"}},
		Format:          "png",
		Sign:            true,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to build background removal url: %w", err)
	}

	fineEdgesURL, err := p.media.URL(publicID, cloudinary.URLOptions{
		Transformations: []cloudinary.Transformation{{Effect: "background_removal:fineedges_y"}},
		Format:          "png",
		Sign:            true,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to build fine edges url: %w", err)
	}

	return Result{
		Tags:         []string{"background-removed"},
		ProcessedURL: &processedURL,
		FineEdgesURL: &fineEdgesURL,
	}, nil
}

func (p *Processor) ocr(ctx context.Context, publicID string) (Result, error) {
	resource, err := p.media.ExtractText(ctx, publicID)
	if err != nil {
		return Result{}, err
	}

	text := resource.Info.Text()
	tags := []string{"no-text"}
	if text != "" {
		tags = []string{"text-detected"}
	}

	return Result{Tags: tags, ExtractedText: &text}, nil
}

func (p *Processor) autoTag(ctx context.Context, publicID string) (Result, error) {
	upload, err := p.reupload(ctx, publicID, "_tagged", "coco", 0.6)
	if err != nil {
		return Result{}, err
	}

	candidates := append([]string{}, upload.Tags...)
	for _, hit := range detectedObjects(upload) {
		candidates = append(candidates, hit.Object)
	}

	return Result{Tags: limit(dedupe(candidates), maxTags)}, nil
}

func (p *Processor) enhance(ctx context.Context, publicID string) (Result, error) {
	processedURL, err := p.media.URL(publicID, cloudinary.URLOptions{
		Transformations: []cloudinary.Transformation{{
			Effect:      "viesus_correct",
			Quality:     "auto:best",
			FetchFormat: "auto",
		}},
		Sign: true,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to build enhancement url: %w", err)
	}

	return Result{
		Tags:         []string{"enhanced", "viesus-corrected"},
		ProcessedURL: &processedURL,
	}, nil
}

func (p *Processor) qualityAnalysis(ctx context.Context, publicID string) (Result, error) {
	upload, err := p.reupload(ctx, publicID, "_quality", "iqa", 0)
	if err != nil {
		return Result{}, err
	}

	score := 0.0
	level := "unknown"
	if hits := upload.Info.Detection.ObjectDetection.Data["iqa"].Tags["iqa-analysis"]; len(hits) > 0 {
		if v, ok := hits[0].Attributes["score"].(float64); ok {
			score = v
		}
		if v, ok := hits[0].Attributes["quality"].(string); ok && v != "" {
			level = v
		}
	}

	return Result{
		Tags:         []string{"quality-" + level},
		QualityScore: &score,
		QualityLevel: &level,
	}, nil
}

func (p *Processor) watermarkDetection(ctx context.Context, publicID string) (Result, error) {
	upload, err := p.reupload(ctx, publicID, "_watermark", "watermark-detection", 0.5)
	if err != nil {
		return Result{}, err
	}

	hits := upload.Info.Detection.ObjectDetection.Data["watermark-detection"].Tags
	kind := "clean"
	switch {
	case firstConfidence(hits["banner"]) > 0.5:
		kind = "banner"
	case firstConfidence(hits["watermark"]) > 0.5:
		kind = "watermark"
	}

	return Result{Tags: []string{kind}, WatermarkDetected: &kind}, nil
}

func (p *Processor) captioning(ctx context.Context, publicID string) (Result, error) {
	upload, err := p.reupload(ctx, publicID, "_caption", "captioning", 0)
	if err != nil {
		return Result{}, err
	}

	caption := upload.Info.Detection.Captioning.Data.Caption
	tags := []string{"captioned"}
	if caption == "" {
		tags = []string{"caption-empty"}
	}

	return Result{Tags: tags, AICaption: &caption}, nil
}

func (p *Processor) objectDetection(ctx context.Context, publicID string) (Result, error) {
	upload, err := p.reupload(ctx, publicID, "_objects", "", 0.6)
	if err != nil {
		return Result{}, err
	}

	objects := detectedObjects(upload)
	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		names = append(names, obj.Object)
	}

	return Result{
		Tags:            limit(names, maxTags),
		ObjectDetection: objects,
	}, nil
}

// reupload feeds the delivered original back through the upload API so a detection
// add-on can run on it. The copy is stored as publicID+suffix.
func (p *Processor) reupload(ctx context.Context, publicID, suffix, detection string, autoTagging float64) (*cloudinary.UploadResult, error) {
	source, err := p.media.URL(publicID, cloudinary.URLOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to build source url: %w", err)
	}

	return p.media.Upload(ctx, cloudinary.UploadParams{
		RemoteURL:   source,
		PublicID:    publicID + suffix,
		Overwrite:   true,
		Detection:   detection,
		AutoTagging: autoTagging,
	})
}

// detectedObjects flattens every model's hits, ordered by model then object name.
func detectedObjects(upload *cloudinary.UploadResult) []DetectedObject {
	data := upload.Info.Detection.ObjectDetection.Data

	models := make([]string, 0, len(data))
	for model := range data {
		models = append(models, model)
	}
	sort.Strings(models)

	objects := []DetectedObject{}
	for _, model := range models {
		tags := data[model].Tags
		names := make([]string, 0, len(tags))
		for name := range tags {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			for _, hit := range tags[name] {
				objects = append(objects, DetectedObject{
					Object:      name,
					Confidence:  hit.Confidence,
					BoundingBox: hit.BoundingBox,
					Model:       model,
				})
			}
		}
	}
	return objects
}

func firstConfidence(hits []cloudinary.DetectedObject) float64 {
	if len(hits) == 0 {
		return 0
	}
	return hits[0].Confidence
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func limit(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
