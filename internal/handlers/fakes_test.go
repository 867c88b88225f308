package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/database"
	"media-ai-backend/internal/models"
	"media-ai-backend/internal/processing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeMedia records uploads and builds URLs with the real Cloudinary URL builder.
type fakeMedia struct {
	urls    *cloudinary.Client
	result  *cloudinary.UploadResult
	err     error
	uploads []cloudinary.UploadParams
}

func newFakeMedia() *fakeMedia {
	urls, err := cloudinary.NewClient(cloudinary.Config{
		CloudName:       "demo",
		APIKey:          "key",
		APISecret:       "secret",
		DeliveryBaseURL: "https://res.example.com",
	})
	if err != nil {
		panic(err)
	}
	return &fakeMedia{
		urls:   urls,
		result: &cloudinary.UploadResult{PublicID: "folder/asset", Bytes: 2048, Format: "png"},
	}
}

func (m *fakeMedia) Upload(ctx context.Context, params cloudinary.UploadParams) (*cloudinary.UploadResult, error) {
	m.uploads = append(m.uploads, params)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *fakeMedia) URL(publicID string, opts cloudinary.URLOptions) (string, error) {
	return m.urls.URL(publicID, opts)
}

type fakeProcessor struct {
	result processing.Result
	calls  []string
}

func (p *fakeProcessor) Process(ctx context.Context, publicID, processType string) processing.Result {
	p.calls = append(p.calls, processType)
	r := p.result
	r.Type = processType
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return r
}

type fakeAnalyzer struct {
	raw     json.RawMessage
	err     error
	task    string
	payload interface{}
	calls   int
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, task string, payload interface{}) (json.RawMessage, error) {
	a.calls++
	a.task = task
	a.payload = payload
	return a.raw, a.err
}

type fakeVerifier struct {
	err error
}

func (v fakeVerifier) VerifyNotification(body []byte, timestamp, signature string, maxAge time.Duration, now time.Time) error {
	return v.err
}

type fakeVideoStore struct {
	videos []models.Video
	err    error
}

func (s *fakeVideoStore) CreateVideo(ctx context.Context, video *models.Video) (*models.Video, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := *video
	created.ID = uuid.New()
	s.videos = append(s.videos, created)
	return &created, nil
}

func (s *fakeVideoStore) ListVideos(ctx context.Context) ([]models.Video, error) {
	return s.videos, s.err
}

type visionUpdate struct {
	publicID   string
	field      models.VisionField
	analysis   models.JSON
	tokensUsed int
}

type fakeImageStore struct {
	images    []models.Image
	updates   []visionUpdate
	updateErr error
}

func (s *fakeImageStore) CreateImage(ctx context.Context, image *models.Image) (*models.Image, error) {
	created := *image
	created.ID = uuid.New()
	s.images = append(s.images, created)
	return &created, nil
}

func (s *fakeImageStore) ListImages(ctx context.Context) ([]models.Image, error) {
	return s.images, nil
}

func (s *fakeImageStore) GetImageByPublicID(ctx context.Context, publicID string) (*models.Image, error) {
	for i := range s.images {
		if s.images[i].PublicID == publicID {
			return &s.images[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeImageStore) UpdateImageVision(ctx context.Context, publicID string, field models.VisionField, analysis models.JSON, tokensUsed int) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, err := s.GetImageByPublicID(ctx, publicID); err != nil {
		return err
	}
	s.updates = append(s.updates, visionUpdate{publicID, field, analysis, tokensUsed})
	return nil
}

func (s *fakeImageStore) DeleteImage(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	for i, image := range s.images {
		if image.ID == id {
			s.images = append(s.images[:i], s.images[i+1:]...)
			return &image, nil
		}
	}
	return nil, database.ErrNotFound
}

type conversionUpdate struct {
	id     uuid.UUID
	status string
	pdfID  *string
}

type fakeDocumentStore struct {
	docs        []models.Document
	conversions []conversionUpdate
}

func (s *fakeDocumentStore) CreateDocument(ctx context.Context, doc *models.Document) (*models.Document, error) {
	created := *doc
	created.ID = uuid.New()
	s.docs = append(s.docs, created)
	return &created, nil
}

func (s *fakeDocumentStore) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return s.docs, nil
}

func (s *fakeDocumentStore) GetDocumentByPublicID(ctx context.Context, publicID string) (*models.Document, error) {
	for i := range s.docs {
		if s.docs[i].OriginalPublicID == publicID {
			doc := s.docs[i]
			return &doc, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeDocumentStore) UpdateDocumentConversion(ctx context.Context, id uuid.UUID, status string, pdfPublicID, thumbnailPublicID *string) (*models.Document, error) {
	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs[i].ConversionStatus = status
			if pdfPublicID != nil {
				s.docs[i].PDFPublicID = pdfPublicID
			}
			if thumbnailPublicID != nil {
				s.docs[i].ThumbnailPublicID = thumbnailPublicID
			}
			s.conversions = append(s.conversions, conversionUpdate{id, status, pdfPublicID})
			doc := s.docs[i]
			return &doc, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeDocumentStore) SetDocumentArchivePath(ctx context.Context, id uuid.UUID, path string) error {
	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs[i].ArchivePath = &path
			return nil
		}
	}
	return database.ErrNotFound
}

func (s *fakeDocumentStore) DeleteDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	for i, doc := range s.docs {
		if doc.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return &doc, nil
		}
	}
	return nil, database.ErrNotFound
}

type fakeArchive struct {
	stored  map[string][]byte
	removed []string
	err     error
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{stored: map[string][]byte{}}
}

func (a *fakeArchive) Store(publicID, filename string, data []byte) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	objectPath := "documents/" + publicID + "/" + filename
	a.stored[objectPath] = data
	return objectPath, nil
}

func (a *fakeArchive) Remove(objectPath string) error {
	a.removed = append(a.removed, objectPath)
	return a.err
}

type publishedEvent struct {
	Type    string
	Key     string
	Payload map[string]interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, eventType, key string, payload map[string]interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{eventType, key, payload})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

// multipartRequest builds a multipart POST with one "file" part (omitted when filename is "").
func multipartRequest(t *testing.T, target, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
