package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/events"
	"media-ai-backend/internal/handlers"
	"media-ai-backend/internal/models"
)

const notificationURL = "https://api.example.com/api/document-webhook"

type documentFixture struct {
	media     *fakeMedia
	store     *fakeDocumentStore
	archive   *fakeArchive
	publisher *recordingPublisher
	router    *gin.Engine
}

func newDocumentFixture(withArchive bool) *documentFixture {
	f := &documentFixture{
		media:     newFakeMedia(),
		store:     &fakeDocumentStore{},
		archive:   newFakeArchive(),
		publisher: &recordingPublisher{},
	}

	var archive handlers.DocumentArchive
	if withArchive {
		archive = f.archive
	}
	h := handlers.NewDocumentHandler(f.media, f.store, archive, f.publisher, notificationURL)

	f.router = gin.New()
	f.router.POST("/api/document-upload", h.Upload)
	f.router.GET("/api/documents", h.List)
	f.router.DELETE("/api/documents", h.Delete)
	return f
}

func TestDocumentUpload_Success(t *testing.T) {
	f := newDocumentFixture(true)
	f.media.result = &cloudinary.UploadResult{PublicID: "saas-pro-documents/Quarterly_Report_1700000000000", Bytes: 5120}

	req := multipartRequest(t, "/api/document-upload", "report.DOCX", []byte("docx-bytes"),
		map[string]string{"title": "Quarterly  Report", "description": "Q3"})
	w := serve(f.router, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, f.media.uploads, 1)
	params := f.media.uploads[0]
	assert.Equal(t, cloudinary.ResourceRaw, params.ResourceType)
	assert.Equal(t, "aspose", params.RawConvert)
	assert.Equal(t, notificationURL, params.NotificationURL)
	assert.Equal(t, "saas-pro-documents", params.Folder)
	assert.Regexp(t, `^Quarterly_Report_\d+$`, params.PublicID)

	require.Len(t, f.store.docs, 1)
	doc := f.store.docs[0]
	assert.Equal(t, models.ConversionPending, doc.ConversionStatus)
	assert.Equal(t, "docx", doc.FileType)
	assert.Equal(t, "5120", doc.OriginalSize)
	require.NotNil(t, doc.ArchivePath)
	assert.Equal(t, []byte("docx-bytes"), f.archive.stored[*doc.ArchivePath])

	var resp struct {
		ID               string `json:"id"`
		ConversionStatus string `json:"conversionStatus"`
		OriginalURL      string `json:"originalUrl"`
		Message          string `json:"message"`
	}
	decode(t, w, &resp)
	assert.Equal(t, models.ConversionPending, resp.ConversionStatus)
	assert.Equal(t, "https://res.example.com/demo/raw/upload/v1/saas-pro-documents/Quarterly_Report_1700000000000", resp.OriginalURL)
	assert.Contains(t, resp.Message, "conversion in progress")

	assert.Equal(t, []string{events.DocumentUploaded}, f.publisher.types())
}

func TestDocumentUpload_BareExtensionGetsDefaultTitle(t *testing.T) {
	f := newDocumentFixture(false)

	w := serve(f.router, multipartRequest(t, "/api/document-upload", ".docx", []byte("docx-bytes"), nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, f.media.uploads, 1)
	assert.Regexp(t, `^document_\d+$`, f.media.uploads[0].PublicID)
	require.Len(t, f.store.docs, 1)
	assert.Equal(t, "document", f.store.docs[0].Title)
	assert.Equal(t, "docx", f.store.docs[0].FileType)
}

func TestDocumentUpload_TooLarge(t *testing.T) {
	f := newDocumentFixture(false)

	big := bytes.Repeat([]byte("a"), handlers.MaxDocumentSize+1)
	w := serve(f.router, multipartRequest(t, "/api/document-upload", "big.docx", big, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "10MB")
	assert.Empty(t, f.media.uploads)
	assert.Empty(t, f.store.docs)
}

func TestDocumentUpload_UnsupportedFormat(t *testing.T) {
	f := newDocumentFixture(false)

	w := serve(f.router, multipartRequest(t, "/api/document-upload", "scan.pdf", []byte("%PDF"), nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported file format")
	assert.Empty(t, f.media.uploads)
	assert.Empty(t, f.store.docs)
}

func TestDocumentUpload_MissingFile(t *testing.T) {
	f := newDocumentFixture(false)

	w := serve(f.router, multipartRequest(t, "/api/document-upload", "", nil, map[string]string{"title": "x"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no file uploaded")
	assert.Empty(t, f.media.uploads)
}

func TestDocumentUpload_UploadFailure(t *testing.T) {
	f := newDocumentFixture(false)
	f.media.err = errors.New("cloudinary unavailable")

	w := serve(f.router, multipartRequest(t, "/api/document-upload", "notes.txt", []byte("hi"), nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, f.store.docs)
	assert.Empty(t, f.publisher.types())
}

func TestDocumentUpload_ArchiveFailureIsNotFatal(t *testing.T) {
	f := newDocumentFixture(true)
	f.archive.err = errors.New("bucket missing")

	w := serve(f.router, multipartRequest(t, "/api/document-upload", "sheet.xlsx", []byte("x"), nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, f.store.docs, 1)
	assert.Nil(t, f.store.docs[0].ArchivePath)
}

func TestDocumentDelete(t *testing.T) {
	f := newDocumentFixture(true)
	archived := "documents/doc_1/a.docx"
	kept := models.Document{ID: uuid.New(), OriginalPublicID: "doc_2"}
	target := models.Document{ID: uuid.New(), OriginalPublicID: "doc_1", ArchivePath: &archived}
	f.store.docs = []models.Document{kept, target}

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"missing id", "", http.StatusBadRequest},
		{"malformed id", "?id=not-a-uuid", http.StatusBadRequest},
		{"unknown id", "?id=" + uuid.NewString(), http.StatusNotFound},
		{"existing id", "?id=" + target.ID.String(), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/documents"+tt.query, nil)
			w := serve(f.router, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	require.Len(t, f.store.docs, 1)
	assert.Equal(t, kept.ID, f.store.docs[0].ID)
	assert.Equal(t, []string{archived}, f.archive.removed)
	assert.Equal(t, []string{events.DocumentDeleted}, f.publisher.types())
}

func TestDocumentList(t *testing.T) {
	f := newDocumentFixture(false)
	f.store.docs = []models.Document{{ID: uuid.New(), Title: "b"}, {ID: uuid.New(), Title: "a"}}

	w := serve(f.router, httptest.NewRequest(http.MethodGet, "/api/documents", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var docs []models.Document
	decode(t, w, &docs)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].Title)
}
