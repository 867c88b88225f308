package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Resource types accepted by the upload API.
const (
	ResourceImage = "image"
	ResourceVideo = "video"
	ResourceRaw   = "raw"
)

// UploadParams describes one upload. Exactly one of File or RemoteURL is used.
type UploadParams struct {
	File      []byte
	Filename  string
	RemoteURL string

	ResourceType    string
	Folder          string
	PublicID        string
	Overwrite       bool
	Detection       string
	AutoTagging     float64
	RawConvert      string
	NotificationURL string
	Transformation  string
}

type UploadResult struct {
	PublicID     string     `json:"public_id"`
	Bytes        int64      `json:"bytes"`
	Format       string     `json:"format"`
	ResourceType string     `json:"resource_type"`
	Duration     float64    `json:"duration"`
	SecureURL    string     `json:"secure_url"`
	Tags         []string   `json:"tags"`
	Info         UploadInfo `json:"info"`
}

type UploadInfo struct {
	Detection Detection `json:"detection"`
}

type Detection struct {
	ObjectDetection ObjectDetection `json:"object_detection"`
	Captioning      Captioning      `json:"captioning"`
	AdvFace         AdvFace         `json:"adv_face"`
}

// ObjectDetection maps a detection model name (coco, iqa, watermark-detection, ...) to its hits.
type ObjectDetection struct {
	Status string                 `json:"status"`
	Data   map[string]ModelResult `json:"data"`
}

type ModelResult struct {
	Tags map[string][]DetectedObject `json:"tags"`
}

type DetectedObject struct {
	Confidence  float64                `json:"confidence"`
	BoundingBox json.RawMessage        `json:"bounding-box,omitempty"`
	Attributes  map[string]interface{} `json:"attributes,omitempty"`
}

type Captioning struct {
	Status string `json:"status"`
	Data   struct {
		Caption string `json:"caption"`
	} `json:"data"`
}

type AdvFace struct {
	Status string `json:"status"`
	Data   []Face `json:"data"`
}

type Face struct {
	BoundingBox     BoundingBox     `json:"bounding_box"`
	Attributes      FaceAttributes  `json:"attributes"`
	FacialLandmarks json.RawMessage `json:"facial_landmarks,omitempty"`
}

type BoundingBox struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type FaceAttributes struct {
	Glasses string `json:"glasses,omitempty"`
	Blur    *struct {
		BlurLevel string  `json:"blurLevel"`
		Value     float64 `json:"value"`
	} `json:"blur,omitempty"`
	Exposure *struct {
		ExposureLevel string  `json:"exposureLevel"`
		Value         float64 `json:"value"`
	} `json:"exposure,omitempty"`
	Noise *struct {
		NoiseLevel string  `json:"noiseLevel"`
		Value      float64 `json:"value"`
	} `json:"noise,omitempty"`
	Accessories []struct {
		Type       string  `json:"type"`
		Confidence float64 `json:"confidence"`
	} `json:"accessories,omitempty"`
	Occlusion *struct {
		ForeheadOccluded bool `json:"foreheadOccluded"`
		EyeOccluded      bool `json:"eyeOccluded"`
		MouthOccluded    bool `json:"mouthOccluded"`
	} `json:"occlusion,omitempty"`
	HeadPose *struct {
		Pitch float64 `json:"pitch"`
		Roll  float64 `json:"roll"`
		Yaw   float64 `json:"yaw"`
	} `json:"head_pose,omitempty"`
}

// Upload sends a signed upload request and returns the created asset.
// Every upload goes to the auto endpoint; ResourceType is passed along for the record.
func (c *Client) Upload(ctx context.Context, params UploadParams) (*UploadResult, error) {
	if !c.hasCredentials() {
		return nil, ErrMissingCredentials
	}

	var file interface{}
	switch {
	case params.RemoteURL != "":
		file = params.RemoteURL
	case len(params.File) > 0:
		file = bytes.NewReader(params.File)
	default:
		return nil, fmt.Errorf("upload requires a file or a remote url")
	}

	var overwrite *bool
	if params.Overwrite {
		overwrite = api.Bool(true)
	}

	res, err := c.sdk.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:         params.PublicID,
		Folder:           params.Folder,
		Overwrite:        overwrite,
		ResourceType:     params.ResourceType,
		FilenameOverride: params.Filename,
		Transformation:   params.Transformation,
		Detection:        params.Detection,
		AutoTagging:      params.AutoTagging,
		RawConvert:       params.RawConvert,
		NotificationURL:  params.NotificationURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", ErrRejected, res.Error.Message)
	}

	var result UploadResult
	if err := decodeResponse(res.Response, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
