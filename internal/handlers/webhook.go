package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/events"
	"media-ai-backend/internal/logger"
	"media-ai-backend/internal/models"
)

// maxNotificationBytes bounds the body of an unauthenticated notification.
const maxNotificationBytes = 1 << 20

type WebhookHandler struct {
	verifier  NotificationVerifier
	store     DocumentStore
	publisher events.Publisher
	verify    bool
	maxAge    time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

// NewWebhookHandler builds the document conversion webhook. When verify is false,
// notification signatures are not checked.
func NewWebhookHandler(verifier NotificationVerifier, store DocumentStore, publisher events.Publisher, verify bool, maxAge time.Duration) *WebhookHandler {
	return &WebhookHandler{
		verifier:  verifier,
		store:     store,
		publisher: publisher,
		verify:    verify,
		maxAge:    maxAge,
		log:       logger.WithComponent("webhook"),
		now:       time.Now,
	}
}

// DocumentConversion godoc
// @Summary     Cloudinary document conversion webhook
// @Description Receives Aspose conversion notifications and updates the matching document. Only
// @Description notification_type=info with info_kind=aspose changes state; anything else is acknowledged.
// @Tags        webhooks
// @Accept      json
// @Produce     json
// @Param       X-Cld-Signature header string false "Notification signature"
// @Param       X-Cld-Timestamp header string false "Notification timestamp (unix seconds)"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     413 {object} models.ErrorResponse
// @Router      /api/document-webhook [post]
func (h *WebhookHandler) DocumentConversion(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxNotificationBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "notification body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read request body",
			Message: err.Error(),
		})
		return
	}

	if h.verify {
		err := h.verifier.VerifyNotification(body,
			c.GetHeader(cloudinary.HeaderTimestamp),
			c.GetHeader(cloudinary.HeaderSignature),
			h.maxAge, h.now())
		if err != nil {
			h.log.Warn().Err(err).Msg("Rejected webhook notification")
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid notification signature",
				Message: err.Error(),
			})
			return
		}
	}

	var notification models.DocumentNotification
	if err := json.Unmarshal(body, &notification); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse notification",
			Message: err.Error(),
		})
		return
	}

	if notification.NotificationType != "info" || notification.InfoKind != "aspose" {
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
		return
	}

	doc, err := h.store.GetDocumentByPublicID(ctx, notification.PublicID)
	if err != nil {
		h.log.Warn().Err(err).Str("public_id", notification.PublicID).Msg("Conversion notification for unknown document")
		storeError(c, &h.log, err, "document not found", "failed to fetch document")
		return
	}

	var (
		status    string
		pdfID     *string
		eventType string
	)
	switch notification.InfoStatus {
	case "complete":
		// The converted PDF and its page thumbnails share the original public id.
		status = models.ConversionComplete
		pdfID = &notification.PublicID
		eventType = events.DocumentConverted
	case "failed":
		status = models.ConversionFailed
		eventType = events.DocumentConversionFailed
	default:
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
		return
	}

	updated, err := h.store.UpdateDocumentConversion(ctx, doc.ID, status, pdfID, pdfID)
	if err != nil {
		storeError(c, &h.log, err, "document not found", "failed to update document")
		return
	}

	h.log.Info().
		Str("public_id", notification.PublicID).
		Str("status", status).
		Msg("Document conversion finished")

	publish(ctx, h.publisher, &h.log, eventType, updated.OriginalPublicID, events.DocumentPayload(updated))

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
