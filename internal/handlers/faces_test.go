package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/events"
	"media-ai-backend/internal/handlers"
	"media-ai-backend/internal/models"
)

func faceUpload(faces ...cloudinary.Face) *cloudinary.UploadResult {
	result := &cloudinary.UploadResult{PublicID: "saas-pro-face-detection/group", Bytes: 4096, Format: "jpg"}
	result.Info.Detection.AdvFace.Status = "complete"
	result.Info.Detection.AdvFace.Data = faces
	return result
}

func newFaceRouter(media *fakeMedia, store *fakeImageStore, publisher *recordingPublisher) *gin.Engine {
	h := handlers.NewFaceHandler(media, store, publisher)
	router := gin.New()
	router.POST("/api/face-detection", h.Detect)
	router.GET("/api/face-detection", h.Get)
	return router
}

func TestFaceDetect_Crop(t *testing.T) {
	media := newFakeMedia()
	media.result = faceUpload(
		cloudinary.Face{
			BoundingBox: cloudinary.BoundingBox{Top: 10, Left: 20, Width: 30, Height: 40},
			Attributes:  cloudinary.FaceAttributes{Glasses: "ReadingGlasses"},
		},
		cloudinary.Face{BoundingBox: cloudinary.BoundingBox{Top: 1, Left: 2, Width: 3, Height: 4}},
	)
	store := &fakeImageStore{}
	publisher := &recordingPublisher{}
	router := newFaceRouter(media, store, publisher)

	w := serve(router, multipartRequest(t, "/api/face-detection", "group.jpg", []byte("jpg"),
		map[string]string{"processType": "face-crop"}))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, media.uploads, 1)
	assert.Equal(t, "adv_face", media.uploads[0].Detection)
	assert.Equal(t, "saas-pro-face-detection", media.uploads[0].Folder)

	require.Len(t, store.images, 1)
	image := store.images[0]
	assert.True(t, image.HasFaces)
	require.NotNil(t, image.FaceCount)
	assert.Equal(t, 2, *image.FaceCount)
	assert.Contains(t, image.Tags, "2-faces-detected")
	assert.Contains(t, image.Tags, "glasses-detected")

	var boxes []map[string]float64
	require.NoError(t, json.Unmarshal(image.FacesBoundingBoxes, &boxes))
	require.Len(t, boxes, 2)
	assert.Equal(t, 30.0, boxes[0]["width"])

	var resp struct {
		ProcessedURLs map[string]string `json:"processedUrls"`
		OriginalURL   string            `json:"originalUrl"`
	}
	decode(t, w, &resp)
	assert.Contains(t, resp.ProcessedURLs["faceCropSingle"], "c_thumb,g_adv_face,h_300,w_300")
	assert.Equal(t, "https://res.example.com/demo/image/upload/v1/saas-pro-face-detection/group", resp.OriginalURL)

	assert.Equal(t, []string{events.ImageFacesDetected}, publisher.types())
}

func TestFaceDetect_NoFaces(t *testing.T) {
	media := newFakeMedia()
	media.result = faceUpload()
	store := &fakeImageStore{}
	router := newFaceRouter(media, store, &recordingPublisher{})

	w := serve(router, multipartRequest(t, "/api/face-detection", "landscape.jpg", []byte("jpg"),
		map[string]string{"processType": "face-detection"}))

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.images, 1)
	assert.False(t, store.images[0].HasFaces)
	assert.Equal(t, []string{"no-faces-detected"}, []string(store.images[0].Tags))

	var resp struct {
		ProcessedURLs map[string]string `json:"processedUrls"`
	}
	decode(t, w, &resp)
	assert.Empty(t, resp.ProcessedURLs)
}

func TestFaceGet(t *testing.T) {
	count := 1
	store := &fakeImageStore{images: []models.Image{{
		PublicID:  "saas-pro-face-detection/one",
		FaceCount: &count,
		HasFaces:  true,
	}}}
	router := newFaceRouter(newFakeMedia(), store, &recordingPublisher{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/face-detection?publicId=saas-pro-face-detection/one", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.FaceDataResponse
	decode(t, w, &resp)
	assert.True(t, resp.HasFaces)
	require.NotNil(t, resp.FaceCount)
	assert.Equal(t, 1, *resp.FaceCount)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/api/face-detection?publicId=nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
