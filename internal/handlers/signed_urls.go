package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/logger"
	"media-ai-backend/internal/models"
)

type SignedURLHandler struct {
	urls URLBuilder
	log  zerolog.Logger
}

func NewSignedURLHandler(urls URLBuilder) *SignedURLHandler {
	return &SignedURLHandler{
		urls: urls,
		log:  logger.WithComponent("signed-urls"),
	}
}

// Generate godoc
// @Summary     Generate signed transformation URLs
// @Description Returns the original URL and signed background removal, drop shadow and enhancement URLs.
// @Tags        images
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.SignedURLsRequest true "Public id"
// @Success     200 {object} models.SignedURLsResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/generate-signed-urls [post]
func (h *SignedURLHandler) Generate(c *gin.Context) {
	var req models.SignedURLsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PublicID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "public id is required"})
		return
	}

	var resp models.SignedURLsResponse
	variants := []struct {
		dest *string
		opts cloudinary.URLOptions
	}{
		{&resp.Original, cloudinary.URLOptions{}},
		{&resp.Standard, cloudinary.URLOptions{
			Transformations: []cloudinary.Transformation{{Effect: "background_removal"}},
			Format:          "png",
			Sign:            true,
		}},
		{&resp.FineEdges, cloudinary.URLOptions{
			Transformations: []cloudinary.Transformation{{Effect: "background_removal:fineedges_y"}},
			Format:          "png",
			Sign:            true,
		}},
		{&resp.WithShadow, cloudinary.URLOptions{
			Transformations: []cloudinary.Transformation{{Effect: "background_removal"}, {Effect: "dropshadow"}},
			Format:          "png",
			Sign:            true,
		}},
		{&resp.Enhanced, cloudinary.URLOptions{
			Transformations: []cloudinary.Transformation{{Effect: "viesus_correct", Quality: "auto:best"}},
			Sign:            true,
		}},
	}

	for _, v := range variants {
		u, err := h.urls.URL(req.PublicID, v.opts)
		if err != nil {
			h.log.Error().Err(err).Str("public_id", req.PublicID).Msg("Failed to sign URL")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to generate URLs",
				Message: err.Error(),
			})
			return
		}
		*v.dest = u
	}

	c.JSON(http.StatusOK, resp)
}
