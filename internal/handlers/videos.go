package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/events"
	"media-ai-backend/internal/logger"
	"media-ai-backend/internal/models"
)

type VideoHandler struct {
	media     Uploader
	store     VideoStore
	publisher events.Publisher
	log       zerolog.Logger
}

func NewVideoHandler(media Uploader, store VideoStore, publisher events.Publisher) *VideoHandler {
	return &VideoHandler{
		media:     media,
		store:     store,
		publisher: publisher,
		log:       logger.WithComponent("videos"),
	}
}

// Upload godoc
// @Summary     Upload a video
// @Description Uploads a video to Cloudinary with automatic quality and mp4 delivery, then records it.
// @Tags        videos
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       file formData file true "Video file"
// @Param       title formData string false "Title"
// @Param       description formData string false "Description"
// @Param       originalSize formData string false "Original size in bytes as reported by the client"
// @Success     200 {object} models.Video
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /api/video-upload [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	file, err := readFormFile(c, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.media.Upload(c.Request.Context(), cloudinary.UploadParams{
		File:           file.Data,
		Filename:       file.Name,
		ResourceType:   cloudinary.ResourceVideo,
		Folder:         folderVideos,
		Transformation: cloudinary.Transformation{Quality: "auto", FetchFormat: "mp4"}.String(),
	})
	if err != nil {
		uploadFailed(c, &h.log, err, "video")
		return
	}

	originalSize := c.PostForm("originalSize")
	if originalSize == "" {
		originalSize = strconv.FormatInt(file.Size, 10)
	}

	video, err := h.store.CreateVideo(c.Request.Context(), &models.Video{
		Title:          titleOr(c.PostForm("title"), file.Name),
		Description:    optionalString(c.PostForm("description")),
		PublicID:       result.PublicID,
		OriginalSize:   originalSize,
		CompressedSize: strconv.FormatInt(result.Bytes, 10),
		Duration:       result.Duration,
	})
	if err != nil {
		h.log.Error().Err(err).Str("public_id", result.PublicID).Msg("Failed to save video")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save video",
			Message: err.Error(),
		})
		return
	}

	publish(c.Request.Context(), h.publisher, &h.log, events.VideoUploaded, video.PublicID, events.VideoUploadedPayload(video))

	c.JSON(http.StatusOK, video)
}

// List godoc
// @Summary     List videos
// @Description Returns every uploaded video, newest first.
// @Tags        videos
// @Produce     json
// @Security    Bearer
// @Success     200 {array} models.Video
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.store.ListVideos(c.Request.Context())
	if err != nil {
		storeError(c, &h.log, err, "videos not found", "failed to fetch videos")
		return
	}
	c.JSON(http.StatusOK, videos)
}
