package faces_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/faces"
)

type stubURLs struct {
	err error
}

func (s stubURLs) URL(publicID string, opts cloudinary.URLOptions) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "https://res.example.com/demo/image/upload/" + cloudinary.Chain(opts.Transformations...) + "/" + publicID, nil
}

func decodeFaces(t *testing.T, raw string) []cloudinary.Face {
	t.Helper()
	var out []cloudinary.Face
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

const twoFaces = `[
	{"bounding_box":{"top":10,"left":20,"width":30,"height":40},
	 "attributes":{"glasses":"ReadingGlasses","blur":{"blurLevel":"high","value":0.9},
	   "occlusion":{"foreheadOccluded":false,"eyeOccluded":true,"mouthOccluded":false}},
	 "facial_landmarks":{"mouth":[{"x":1,"y":2}]}},
	{"bounding_box":{"top":1,"left":2,"width":3,"height":4},
	 "attributes":{"glasses":"NoGlasses","accessories":[{"type":"headwear","confidence":0.8}],
	   "occlusion":{"foreheadOccluded":true,"eyeOccluded":true,"mouthOccluded":true}}}
]`

func TestFlatten_NoFaces(t *testing.T) {
	result, err := faces.Flatten("abc", nil, faces.ModeCrop, stubURLs{})
	require.NoError(t, err)

	assert.Equal(t, []string{"no-faces-detected"}, result.Tags)
	assert.Empty(t, result.ProcessedURLs)
	assert.NotNil(t, result.ProcessedURLs)
	assert.Equal(t, 0, result.FaceCount)
}

func TestFlatten_AttributeTagsDeduped(t *testing.T) {
	result, err := faces.Flatten("abc", decodeFaces(t, twoFaces), faces.ModeDetection, stubURLs{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2-faces-detected",
		"face-detection-applied",
		"glasses-detected",
		"blurry-face",
		"eyes-occluded",
		"mouth-occluded",
		"forehead-occluded",
		"accessories-detected",
	}, result.Tags)
	assert.Equal(t, 2, result.FaceCount)
	assert.Equal(t, faces.ModeDetection, result.Type)
	assert.Contains(t, result.ProcessedURLs["faceDetection"], "co_red,g_adv_faces,l_text:Arial_20_bold:Face%20Detected")
}

func TestFlatten_Modes(t *testing.T) {
	one := decodeFaces(t, `[{"bounding_box":{"top":0,"left":0,"width":1,"height":1},"attributes":{}}]`)

	tests := []struct {
		mode     string
		wantURLs map[string]string
		wantTag  string
	}{
		{
			mode: faces.ModeCrop,
			wantURLs: map[string]string{
				"faceCropSingle": "c_thumb,g_adv_face,h_300,w_300",
				"faceCropAll":    "c_fill,g_adv_faces,h_300,w_400",
			},
			wantTag: "face-crop-applied",
		},
		{
			mode: faces.ModeOverlay,
			wantURLs: map[string]string{
				"faceOverlay": "c_scale,fl_region_relative,w_0.8/fl_layer_apply,g_adv_faces",
				"eyesOverlay": "c_scale,fl_region_relative,w_1.2/fl_layer_apply,g_adv_eyes",
			},
			wantTag: "face-overlay-applied",
		},
		{
			mode:     faces.ModeRedEyeRemoval,
			wantURLs: map[string]string{"redEyeRemoval": "e_adv_redeye"},
			wantTag:  "red-eye-removal-applied",
		},
		{
			mode: "",
			wantURLs: map[string]string{
				"faceDetection": "b_black,co_white,g_adv_faces,l_text:Arial_16_bold:Faces%20Detected",
				"faceThumbnail": "c_thumb,g_adv_face,h_200,w_200",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			result, err := faces.Flatten("abc", one, tt.mode, stubURLs{})
			require.NoError(t, err)

			require.Len(t, result.ProcessedURLs, len(tt.wantURLs))
			for name, fragment := range tt.wantURLs {
				assert.Contains(t, result.ProcessedURLs[name], fragment)
			}
			assert.Equal(t, "1-faces-detected", result.Tags[0])
			if tt.wantTag != "" {
				assert.Contains(t, result.Tags, tt.wantTag)
			} else {
				assert.Equal(t, []string{"1-faces-detected"}, result.Tags)
			}
		})
	}
}

func TestFlatten_URLError(t *testing.T) {
	_, err := faces.Flatten("abc", decodeFaces(t, twoFaces), faces.ModeCrop, stubURLs{err: errors.New("boom")})
	assert.Error(t, err)
}

func TestToColumns(t *testing.T) {
	cols, err := faces.ToColumns(decodeFaces(t, twoFaces))
	require.NoError(t, err)

	assert.JSONEq(t, `[{"top":10,"left":20,"width":30,"height":40},{"top":1,"left":2,"width":3,"height":4}]`,
		string(cols.FacesBoundingBoxes))
	assert.JSONEq(t, `[{"mouth":[{"x":1,"y":2}]}]`, string(cols.FacialLandmarks))

	var attrs []map[string]interface{}
	require.NoError(t, json.Unmarshal(cols.FacialAttributes, &attrs))
	assert.Len(t, attrs, 2)

	empty, err := faces.ToColumns(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty.FacialAttributes))
}
