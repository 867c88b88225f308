package cloudinary_test

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-ai-backend/internal/cloudinary"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *cloudinary.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := cloudinary.NewClient(cloudinary.Config{
		CloudName:       "demo",
		APIKey:          "key",
		APISecret:       "secret",
		APIBaseURL:      server.URL,
		DeliveryBaseURL: "https://res.example.com",
	})
	require.NoError(t, err)
	return client
}

// uploadSignature recomputes the upload API signature over the signed form fields.
func uploadSignature(r *http.Request, secret string) string {
	var pairs []string
	for k, v := range r.Form {
		switch k {
		case "file", "api_key", "resource_type", "signature":
			continue
		}
		pairs = append(pairs, k+"="+v[0])
	}
	sort.Strings(pairs)
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

func notificationSignature(body []byte, timestamp, secret string) string {
	sum := sha1.Sum([]byte(string(body) + timestamp + secret))
	return hex.EncodeToString(sum[:])
}

func TestClient_Upload_SignedMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/auto/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "key", r.FormValue("api_key"))
		assert.Equal(t, "saas-pro-ai-images", r.FormValue("folder"))
		assert.Equal(t, "coco", r.FormValue("detection"))
		assert.Equal(t, "0.6", r.FormValue("auto_tagging"))
		assert.Equal(t, "cat.png", r.FormValue("filename_override"))
		assert.NotEmpty(t, r.FormValue("timestamp"))
		assert.Equal(t, uploadSignature(r, "secret"), r.FormValue("signature"))

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		data, _ := io.ReadAll(file)
		assert.Equal(t, "png-bytes", string(data))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"public_id":"saas-pro-ai-images/abc","bytes":1234,"format":"png","tags":["cat"],
			"info":{"detection":{"object_detection":{"status":"complete","data":{"coco":{"tags":{"cat":[{"confidence":0.9}]}}}}}}}`))
	})

	result, err := client.Upload(context.Background(), cloudinary.UploadParams{
		File:        []byte("png-bytes"),
		Filename:    "cat.png",
		Folder:      "saas-pro-ai-images",
		Detection:   "coco",
		AutoTagging: 0.6,
	})
	require.NoError(t, err)
	assert.Equal(t, "saas-pro-ai-images/abc", result.PublicID)
	assert.Equal(t, int64(1234), result.Bytes)
	assert.Equal(t, []string{"cat"}, result.Tags)
	assert.InDelta(t, 0.9, result.Info.Detection.ObjectDetection.Data["coco"].Tags["cat"][0].Confidence, 1e-9)
}

func TestClient_Upload_RemoteURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/auto/upload", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "https://res.example.com/demo/image/upload/abc", r.FormValue("file"))
		assert.Equal(t, "abc_tagged", r.FormValue("public_id"))
		assert.Equal(t, "true", r.FormValue("overwrite"))
		assert.Equal(t, uploadSignature(r, "secret"), r.FormValue("signature"))
		_, _ = w.Write([]byte(`{"public_id":"abc_tagged"}`))
	})

	result, err := client.Upload(context.Background(), cloudinary.UploadParams{
		RemoteURL: "https://res.example.com/demo/image/upload/abc",
		PublicID:  "abc_tagged",
		Overwrite: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "abc_tagged", result.PublicID)
}

func TestClient_Upload_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid image file"}}`))
	})

	_, err := client.Upload(context.Background(), cloudinary.UploadParams{File: []byte("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, cloudinary.ErrRejected)
	assert.Contains(t, err.Error(), "Invalid image file")
}

func TestClient_Upload_RequiresSource(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.Upload(context.Background(), cloudinary.UploadParams{Folder: "x"})
	assert.Error(t, err)
}

func TestClient_ExtractText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1_1/demo/resources/image/upload/folder/abc", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "adv_ocr", body["ocr"])

		_, _ = w.Write([]byte(`{"public_id":"folder/abc","info":{"ocr":{"adv_ocr":{"status":"complete",
			"data":[{"textAnnotations":[{"description":"Hello\nWorld"},{"description":"Hello"}]}]}}}}`))
	})

	result, err := client.ExtractText(context.Background(), "folder/abc")
	require.NoError(t, err)
	assert.Equal(t, "folder/abc", result.PublicID)
	assert.Equal(t, "Hello\nWorld", result.Info.Text())
}

func TestClient_ExtractText_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"Resource not found - folder/abc"}}`))
	})

	_, err := client.ExtractText(context.Background(), "folder/abc")
	assert.ErrorIs(t, err, cloudinary.ErrRejected)
}

func TestResourceInfo_TextEmpty(t *testing.T) {
	assert.Equal(t, "", cloudinary.ResourceInfo{}.Text())
}

func TestClient_Analyze(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/analysis/demo/analyze/ai_vision_general", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "source")

		_, _ = w.Write([]byte(`{"data":{"analysis":{"responses":[]}},"limits":{"usage":{"count":3}}}`))
	})

	raw, err := client.Analyze(context.Background(), "ai_vision_general", map[string]interface{}{
		"source": map[string]string{"uri": "https://example.com/a.jpg"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"analysis":{"responses":[]}},"limits":{"usage":{"count":3}}}`, string(raw))
}

func TestClient_Analyze_ProviderStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	})

	_, err := client.Analyze(context.Background(), "ai_vision_tagging", map[string]string{})
	var apiErr *cloudinary.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}

func TestClient_MissingSecret(t *testing.T) {
	client, err := cloudinary.NewClient(cloudinary.Config{CloudName: "demo", APIKey: "key"})
	require.NoError(t, err)

	_, err = client.Upload(context.Background(), cloudinary.UploadParams{File: []byte("x")})
	assert.ErrorIs(t, err, cloudinary.ErrMissingCredentials)

	_, err = client.ExtractText(context.Background(), "abc")
	assert.ErrorIs(t, err, cloudinary.ErrMissingCredentials)

	_, err = client.Analyze(context.Background(), "ai_vision_general", nil)
	assert.ErrorIs(t, err, cloudinary.ErrMissingCredentials)

	_, err = client.URL("abc", cloudinary.URLOptions{Sign: true})
	assert.ErrorIs(t, err, cloudinary.ErrMissingCredentials)
}

func TestNewClient_InvalidDeliveryURL(t *testing.T) {
	_, err := cloudinary.NewClient(cloudinary.Config{CloudName: "demo", DeliveryBaseURL: "not a url"})
	assert.Error(t, err)
}

func TestClient_VerifyNotification(t *testing.T) {
	client, err := cloudinary.NewClient(cloudinary.Config{CloudName: "demo", APIKey: "key", APISecret: "secret"})
	require.NoError(t, err)

	body := []byte(`{"notification_type":"info"}`)
	now := time.Now()
	at := func(d time.Duration) string { return strconv.FormatInt(now.Add(d).Unix(), 10) }

	tests := []struct {
		name      string
		timestamp string
		signature string
		want      error
	}{
		{"valid", at(0), notificationSignature(body, at(0), "secret"), nil},
		{"slightly in the future", at(time.Minute), notificationSignature(body, at(time.Minute), "secret"), nil},
		{"wrong signature", at(0), strings.Repeat("0", 40), cloudinary.ErrInvalidSignature},
		{"wrong secret", at(0), notificationSignature(body, at(0), "other"), cloudinary.ErrInvalidSignature},
		{"stale", at(-3 * time.Hour), notificationSignature(body, at(-3*time.Hour), "secret"), cloudinary.ErrStaleNotification},
		{"far future", at(3 * time.Hour), notificationSignature(body, at(3*time.Hour), "secret"), cloudinary.ErrStaleNotification},
		{"malformed timestamp", "not-a-number", notificationSignature(body, "not-a-number", "secret"), cloudinary.ErrStaleNotification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.VerifyNotification(body, tt.timestamp, tt.signature, 2*time.Hour, now)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
