package cloudinary

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
)

type ResourceResult struct {
	PublicID string       `json:"public_id"`
	Format   string       `json:"format"`
	Bytes    int64        `json:"bytes"`
	Info     ResourceInfo `json:"info"`
}

type ResourceInfo struct {
	OCR struct {
		AdvOCR struct {
			Status string `json:"status"`
			Data   []struct {
				TextAnnotations []struct {
					Description string `json:"description"`
					Locale      string `json:"locale,omitempty"`
				} `json:"textAnnotations"`
			} `json:"data"`
		} `json:"adv_ocr"`
	} `json:"ocr"`
}

// Text returns the full-text annotation of the first OCR page, or "".
func (i ResourceInfo) Text() string {
	data := i.OCR.AdvOCR.Data
	if len(data) == 0 || len(data[0].TextAnnotations) == 0 {
		return ""
	}
	return data[0].TextAnnotations[0].Description
}

// ExtractText runs the adv_ocr add-on on an uploaded image through the Admin API
// and returns the resource with its OCR info.
func (c *Client) ExtractText(ctx context.Context, publicID string) (*ResourceResult, error) {
	if !c.hasCredentials() {
		return nil, ErrMissingCredentials
	}

	res, err := c.sdk.Admin.UpdateAsset(ctx, admin.UpdateAssetParams{
		AssetType:    api.Image,
		DeliveryType: api.Upload,
		PublicID:     publicID,
		OCR:          "adv_ocr",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run ocr on %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", ErrRejected, res.Error.Message)
	}

	var result ResourceResult
	if err := decodeResponse(res.Response, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
