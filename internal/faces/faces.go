package faces

import (
	"fmt"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/models"
)

// Face detection modes accepted by POST /api/face-detection.
const (
	ModeDetection     = "face-detection"
	ModeCrop          = "face-crop"
	ModeOverlay       = "face-overlay"
	ModeRedEyeRemoval = "red-eye-removal"
)

// URLBuilder builds delivery URLs for an uploaded image.
type URLBuilder interface {
	URL(publicID string, opts cloudinary.URLOptions) (string, error)
}

type Result struct {
	Tags          []string          `json:"tags"`
	ProcessedURLs map[string]string `json:"processedUrls"`
	FaceCount     int               `json:"faceCount"`
	Type          string            `json:"type,omitempty"`
}

// Flatten turns detected faces into tags and mode-specific transformation URLs.
func Flatten(publicID string, faces []cloudinary.Face, mode string, urls URLBuilder) (Result, error) {
	result := Result{
		Tags:          []string{},
		ProcessedURLs: map[string]string{},
		FaceCount:     len(faces),
	}

	if len(faces) == 0 {
		result.Tags = append(result.Tags, "no-faces-detected")
		return result, nil
	}

	result.Type = mode
	result.Tags = append(result.Tags, fmt.Sprintf("%d-faces-detected", len(faces)))

	variants, tag := modeVariants(mode)
	for _, v := range variants {
		u, err := urls.URL(publicID, cloudinary.URLOptions{Transformations: v.transformations})
		if err != nil {
			return Result{}, fmt.Errorf("failed to build %s url: %w", v.name, err)
		}
		result.ProcessedURLs[v.name] = u
	}
	if tag != "" {
		result.Tags = append(result.Tags, tag)
	}

	for _, face := range faces {
		result.Tags = append(result.Tags, attributeTags(face.Attributes)...)
	}
	result.Tags = dedupe(result.Tags)

	return result, nil
}

type variant struct {
	name            string
	transformations []cloudinary.Transformation
}

func modeVariants(mode string) ([]variant, string) {
	switch mode {
	case ModeDetection:
		return []variant{{
			name: "faceDetection",
			transformations: []cloudinary.Transformation{{
				Overlay: cloudinary.TextOverlay("Arial_20_bold", "Face Detected"),
				Gravity: "adv_faces",
				Color:   "red",
			}},
		}}, "face-detection-applied"

	case ModeCrop:
		return []variant{
			{
				name:            "faceCropSingle",
				transformations: []cloudinary.Transformation{{Width: "300", Height: "300", Crop: "thumb", Gravity: "adv_face"}},
			},
			{
				name:            "faceCropAll",
				transformations: []cloudinary.Transformation{{Width: "400", Height: "300", Crop: "fill", Gravity: "adv_faces"}},
			},
		}, "face-crop-applied"

	case ModeOverlay:
		return []variant{
			{
				name:            "faceOverlay",
				transformations: emojiLayer("Arial_30_bold", "😊", "0.8", "adv_faces"),
			},
			{
				name:            "eyesOverlay",
				transformations: emojiLayer("Arial_20_bold", "👀", "1.2", "adv_eyes"),
			},
		}, "face-overlay-applied"

	case ModeRedEyeRemoval:
		return []variant{{
			name:            "redEyeRemoval",
			transformations: []cloudinary.Transformation{{Effect: "adv_redeye"}},
		}}, "red-eye-removal-applied"

	default:
		return []variant{
			{
				name: "faceDetection",
				transformations: []cloudinary.Transformation{{
					Overlay:    cloudinary.TextOverlay("Arial_16_bold", "Faces Detected"),
					Gravity:    "adv_faces",
					Color:      "white",
					Background: "black",
				}},
			},
			{
				name:            "faceThumbnail",
				transformations: []cloudinary.Transformation{{Width: "200", Height: "200", Crop: "thumb", Gravity: "adv_face"}},
			},
		}, ""
	}
}

// emojiLayer scales a text layer relative to each detected region and applies it there.
func emojiLayer(font, emoji, width, gravity string) []cloudinary.Transformation {
	return []cloudinary.Transformation{
		{Overlay: cloudinary.TextOverlay(font, emoji)},
		{Flags: "region_relative", Width: width, Crop: "scale"},
		{Flags: "layer_apply", Gravity: gravity},
	}
}

func attributeTags(attrs cloudinary.FaceAttributes) []string {
	var tags []string
	if attrs.Glasses != "" && attrs.Glasses != "NoGlasses" {
		tags = append(tags, "glasses-detected")
	}
	if attrs.Blur != nil && attrs.Blur.BlurLevel == "high" {
		tags = append(tags, "blurry-face")
	}
	if occ := attrs.Occlusion; occ != nil {
		if occ.EyeOccluded {
			tags = append(tags, "eyes-occluded")
		}
		if occ.MouthOccluded {
			tags = append(tags, "mouth-occluded")
		}
		if occ.ForeheadOccluded {
			tags = append(tags, "forehead-occluded")
		}
	}
	if len(attrs.Accessories) > 0 {
		tags = append(tags, "accessories-detected")
	}
	return tags
}

func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Columns holds the face-related JSON columns of an image row.
type Columns struct {
	FacialAttributes   models.JSON
	FacesBoundingBoxes models.JSON
	FacialLandmarks    models.JSON
}

// ToColumns serialises faces for persistence. Faces without landmarks are skipped
// in the landmarks column.
func ToColumns(faces []cloudinary.Face) (Columns, error) {
	if faces == nil {
		faces = []cloudinary.Face{}
	}

	boxes := make([]cloudinary.BoundingBox, 0, len(faces))
	landmarks := make([]interface{}, 0, len(faces))
	for _, face := range faces {
		boxes = append(boxes, face.BoundingBox)
		if len(face.FacialLandmarks) > 0 && string(face.FacialLandmarks) != "null" {
			landmarks = append(landmarks, face.FacialLandmarks)
		}
	}

	var cols Columns
	var err error
	if cols.FacialAttributes, err = models.NewJSON(faces); err != nil {
		return Columns{}, fmt.Errorf("failed to encode facial attributes: %w", err)
	}
	if cols.FacesBoundingBoxes, err = models.NewJSON(boxes); err != nil {
		return Columns{}, fmt.Errorf("failed to encode bounding boxes: %w", err)
	}
	if cols.FacialLandmarks, err = models.NewJSON(landmarks); err != nil {
		return Columns{}, fmt.Errorf("failed to encode facial landmarks: %w", err)
	}
	return cols, nil
}
