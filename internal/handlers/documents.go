package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/events"
	"media-ai-backend/internal/logger"
	"media-ai-backend/internal/models"
)

// MaxDocumentSize is the largest office document accepted for conversion.
const MaxDocumentSize = 10 << 20

// SupportedDocumentFormats are the extensions the Aspose add-on converts to PDF.
var SupportedDocumentFormats = []string{
	"doc", "docx", "docm", "dotx", "rtf", "txt",
	"xls", "xlsx", "xlsm",
	"pot", "potm", "potx", "pps", "ppsm", "pptx", "ppt", "pptm",
}

type DocumentHandler struct {
	media           Uploader
	store           DocumentStore
	archive         DocumentArchive
	publisher       events.Publisher
	notificationURL string
	log             zerolog.Logger
	now             func() time.Time
}

func NewDocumentHandler(media Uploader, store DocumentStore, archive DocumentArchive, publisher events.Publisher, notificationURL string) *DocumentHandler {
	return &DocumentHandler{
		media:           media,
		store:           store,
		archive:         archive,
		publisher:       publisher,
		notificationURL: notificationURL,
		log:             logger.WithComponent("documents"),
		now:             time.Now,
	}
}

// defaultDocumentTitle names uploads like ".docx" that have neither a title nor a base name.
const defaultDocumentTitle = "document"

func documentExtension(filename string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, f := range SupportedDocumentFormats {
		if ext == f {
			return ext, true
		}
	}
	return ext, false
}

// documentPublicID is the title with whitespace runs replaced by '_', suffixed with the
// upload time in milliseconds.
func documentPublicID(title string, at time.Time) string {
	return fmt.Sprintf("%s_%d", strings.Join(strings.Fields(title), "_"), at.UnixMilli())
}

// Upload godoc
// @Summary     Upload an office document for PDF conversion
// @Description Uploads a document (max 10MB) as a raw asset with Aspose conversion. The row starts
// @Description as "pending" and is completed by the conversion webhook.
// @Tags        documents
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       file formData file true "Office document"
// @Param       title formData string false "Title"
// @Param       description formData string false "Description"
// @Success     200 {object} models.DocumentUploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /api/document-upload [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := readFormFile(c, MaxDocumentSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	ext, ok := documentExtension(file.Name)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unsupported file format",
			Message: "Supported formats: " + strings.Join(SupportedDocumentFormats, ", "),
		})
		return
	}

	title := titleOr(c.PostForm("title"), titleOr(strings.TrimSuffix(file.Name, filepath.Ext(file.Name)), defaultDocumentTitle))

	upload, err := h.media.Upload(ctx, cloudinary.UploadParams{
		File:            file.Data,
		Filename:        file.Name,
		ResourceType:    cloudinary.ResourceRaw,
		Folder:          folderDocuments,
		PublicID:        documentPublicID(title, h.now()),
		RawConvert:      "aspose",
		NotificationURL: h.notificationURL,
	})
	if err != nil {
		uploadFailed(c, &h.log, err, "document")
		return
	}

	doc, err := h.store.CreateDocument(ctx, &models.Document{
		Title:            title,
		Description:      optionalString(c.PostForm("description")),
		OriginalPublicID: upload.PublicID,
		OriginalSize:     strconv.FormatInt(upload.Bytes, 10),
		FileType:         ext,
		ConversionStatus: models.ConversionPending,
	})
	if err != nil {
		h.log.Error().Err(err).Str("public_id", upload.PublicID).Msg("Failed to save document")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save document",
			Message: err.Error(),
		})
		return
	}

	h.archiveCopy(c, doc, file)

	publish(ctx, h.publisher, &h.log, events.DocumentUploaded, doc.OriginalPublicID, events.DocumentPayload(doc))

	c.JSON(http.StatusOK, models.DocumentUploadResponse{
		Document:    doc,
		OriginalURL: originalURL(h.media, upload.PublicID, cloudinary.ResourceRaw),
		Message:     "Document uploaded successfully. PDF conversion in progress...",
	})
}

// archiveCopy stores the original bytes when an archive is configured. Failures only log.
func (h *DocumentHandler) archiveCopy(c *gin.Context, doc *models.Document, file *uploadedFile) {
	if h.archive == nil {
		return
	}

	objectPath, err := h.archive.Store(doc.OriginalPublicID, file.Name, file.Data)
	if err != nil {
		h.log.Warn().Err(err).Str("public_id", doc.OriginalPublicID).Msg("Failed to archive document")
		return
	}

	if err := h.store.SetDocumentArchivePath(c.Request.Context(), doc.ID, objectPath); err != nil {
		h.log.Warn().Err(err).Str("public_id", doc.OriginalPublicID).Msg("Failed to record archive path")
		return
	}
	doc.ArchivePath = &objectPath
}

// List godoc
// @Summary     List documents
// @Description Returns every uploaded document, newest first.
// @Tags        documents
// @Produce     json
// @Security    Bearer
// @Success     200 {array} models.Document
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.store.ListDocuments(c.Request.Context())
	if err != nil {
		storeError(c, &h.log, err, "documents not found", "failed to fetch documents")
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Delete godoc
// @Summary     Delete a document
// @Description Deletes exactly one document row and its archived copy, if any.
// @Tags        documents
// @Produce     json
// @Security    Bearer
// @Param       id query string true "Document ID (UUID)"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/documents [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "document")
	if !ok {
		return
	}

	doc, err := h.store.DeleteDocument(c.Request.Context(), id)
	if err != nil {
		storeError(c, &h.log, err, "document not found", "failed to delete document")
		return
	}

	if h.archive != nil && doc.ArchivePath != nil {
		if err := h.archive.Remove(*doc.ArchivePath); err != nil {
			h.log.Warn().Err(err).Str("path", *doc.ArchivePath).Msg("Failed to remove archived document")
		}
	}

	publish(c.Request.Context(), h.publisher, &h.log, events.DocumentDeleted, doc.OriginalPublicID, events.DeletedPayload(doc.ID.String(), doc.OriginalPublicID))

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
