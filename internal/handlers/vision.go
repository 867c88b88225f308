package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/database"
	"media-ai-backend/internal/events"
	"media-ai-backend/internal/logger"
	"media-ai-backend/internal/models"
	"media-ai-backend/internal/vision"
)

// PersistedHeader is "false" when an analysis could not be saved on its image.
const PersistedHeader = "X-AI-Vision-Persisted"

type VisionHandler struct {
	analyzer  VisionAnalyzer
	store     ImageStore
	publisher events.Publisher
	log       zerolog.Logger
}

func NewVisionHandler(analyzer VisionAnalyzer, store ImageStore, publisher events.Publisher) *VisionHandler {
	return &VisionHandler{
		analyzer:  analyzer,
		store:     store,
		publisher: publisher,
		log:       logger.WithComponent("ai-vision"),
	}
}

// Analyze godoc
// @Summary     Run an AI Vision analysis
// @Description Validates the request for its mode (tagging, moderation or general), forwards it to
// @Description Cloudinary AI Vision and returns the provider response unchanged. With publicId the
// @Description analysis is also stored on the matching image.
// @Tags        ai-vision
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.AIVisionRequest true "Analysis request"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /api/ai-vision [post]
func (h *VisionHandler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.AIVisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	mode, payload, err := vision.BuildRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	raw, err := h.analyzer.Analyze(ctx, mode.Task(), payload)
	if err != nil {
		var apiErr *cloudinary.APIError
		if errors.As(err, &apiErr) {
			h.log.Warn().Int("status", apiErr.StatusCode).Str("mode", string(mode)).Msg("AI Vision request rejected")
			c.JSON(apiErr.StatusCode, models.ErrorResponse{
				Error:   "AI Vision API error",
				Message: vision.ExtractErrorMessage(apiErr.Body),
			})
			return
		}
		h.log.Error().Err(err).Str("mode", string(mode)).Msg("AI Vision request failed")
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "AI Vision processing failed",
			Message: err.Error(),
		})
		return
	}

	if req.PublicID != "" {
		persisted := h.persist(c, req.PublicID, mode, raw)
		if !persisted {
			c.Header(PersistedHeader, "false")
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// persist stores the analysis on the image. An unknown public id is not an error.
func (h *VisionHandler) persist(c *gin.Context, publicID string, mode vision.Mode, raw []byte) bool {
	ctx := c.Request.Context()

	outcome, err := vision.ParseOutcome(raw)
	if err != nil {
		h.log.Error().Err(err).Str("public_id", publicID).Msg("Failed to read AI Vision result")
		return false
	}
	if !outcome.HasAnalysis() {
		h.log.Debug().Str("public_id", publicID).Msg("AI Vision response has no analysis, keeping stored result")
		return true
	}

	err = h.store.UpdateImageVision(ctx, publicID, mode.Field(), models.JSON(outcome.Analysis), outcome.TokensUsed)
	switch {
	case errors.Is(err, database.ErrNotFound):
		h.log.Debug().Str("public_id", publicID).Msg("No image to attach AI Vision result to")
		return true
	case err != nil:
		h.log.Error().Err(err).Str("public_id", publicID).Msg("Failed to save AI Vision result")
		return false
	}

	publish(ctx, h.publisher, &h.log, events.ImageVisionAnalyzed, publicID,
		events.VisionAnalyzedPayload(publicID, string(mode), outcome.TokensUsed))
	return true
}

// Get godoc
// @Summary     Get stored AI Vision results
// @Tags        ai-vision
// @Produce     json
// @Security    Bearer
// @Param       publicId query string true "Cloudinary public id"
// @Success     200 {object} models.VisionDataResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/ai-vision [get]
func (h *VisionHandler) Get(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "public id is required"})
		return
	}

	image, err := h.store.GetImageByPublicID(c.Request.Context(), publicID)
	if err != nil {
		storeError(c, &h.log, err, "image not found", "failed to fetch AI Vision data")
		return
	}

	c.JSON(http.StatusOK, models.VisionDataResponse{
		ID:                 image.ID.String(),
		Title:              image.Title,
		PublicID:           image.PublicID,
		AIVisionTags:       image.AIVisionTags,
		AIVisionModeration: image.AIVisionModeration,
		AIVisionGeneral:    image.AIVisionGeneral,
		TokensUsed:         image.TokensUsed,
	})
}
