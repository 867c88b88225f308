package cloudinary

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/asset"
)

// Transformation is one component of a delivery URL. Empty fields are omitted.
type Transformation struct {
	Background  string
	Color       string
	Crop        string
	Effect      string
	FetchFormat string
	Flags       string
	Gravity     string
	Height      string
	Overlay     string
	Quality     string
	Width       string
}

// String serializes the component in Cloudinary's short-key form, keys sorted.
func (t Transformation) String() string {
	parts := make([]string, 0, 11)
	add := func(key, value string) {
		if value != "" {
			parts = append(parts, key+"_"+value)
		}
	}
	add("b", t.Background)
	add("c", t.Crop)
	add("co", t.Color)
	add("e", t.Effect)
	add("f", t.FetchFormat)
	add("fl", t.Flags)
	add("g", t.Gravity)
	add("h", t.Height)
	add("l", t.Overlay)
	add("q", t.Quality)
	add("w", t.Width)
	return strings.Join(parts, ",")
}

// Chain joins transformation components with '/'.
func Chain(transformations ...Transformation) string {
	parts := make([]string, 0, len(transformations))
	for _, t := range transformations {
		if s := t.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}

// TextOverlay builds an overlay value rendering text in the given font, e.g. "Arial_20_bold".
func TextOverlay(font, text string) string {
	escaped := url.PathEscape(text)
	escaped = strings.ReplaceAll(escaped, ",", "%2C")
	return "text:" + font + ":" + escaped
}

type URLOptions struct {
	ResourceType    string
	Transformations []Transformation
	Format          string
	Sign            bool
}

// URL builds a delivery URL for publicID. Signing requires the API secret.
func (c *Client) URL(publicID string, opts URLOptions) (string, error) {
	if opts.Sign && c.apiSecret == "" {
		return "", ErrMissingCredentials
	}

	var (
		a   *asset.Asset
		err error
	)
	switch opts.ResourceType {
	case ResourceVideo:
		a, err = c.sdk.Video(publicID)
	case ResourceRaw:
		a, err = c.sdk.File(publicID)
	default:
		a, err = c.sdk.Image(publicID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to build asset %s: %w", publicID, err)
	}

	if opts.Format != "" {
		a.PublicID = publicID + "." + opts.Format
	}
	a.Transformation = Chain(opts.Transformations...)
	a.Config.URL.SignURL = opts.Sign

	return a.String()
}
