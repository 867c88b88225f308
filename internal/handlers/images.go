package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/events"
	"media-ai-backend/internal/logger"
	"media-ai-backend/internal/models"
	"media-ai-backend/internal/processing"
)

type ImageHandler struct {
	media     Uploader
	processor ImageProcessor
	store     ImageStore
	publisher events.Publisher
	log       zerolog.Logger
}

func NewImageHandler(media Uploader, processor ImageProcessor, store ImageStore, publisher events.Publisher) *ImageHandler {
	return &ImageHandler{
		media:     media,
		processor: processor,
		store:     store,
		publisher: publisher,
		log:       logger.WithComponent("images"),
	}
}

type processedURLs struct {
	ProcessedURL *string `json:"processedUrl"`
	FineEdgesURL *string `json:"fineEdgesUrl"`
}

// processingRecord is stored in images.object_detection for every processed image.
type processingRecord struct {
	ProcessType   string                      `json:"processType"`
	ProcessedURLs processedURLs               `json:"processedUrls"`
	ProcessedAt   time.Time                   `json:"processedAt"`
	OriginalData  []processing.DetectedObject `json:"originalData"`
}

// Process godoc
// @Summary     Upload and process an image
// @Description Uploads an image and runs one AI feature on it. Feature failures are reported as a
// @Description "<processType>-failed" tag, never as an error response.
// @Tags        images
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       file formData file true "Image file"
// @Param       title formData string false "Title"
// @Param       description formData string false "Description"
// @Param       processType formData string true "background-removal, ocr, auto-tag, enhance, quality-analysis, watermark-detection, captioning or object-detection"
// @Success     200 {object} models.ImageProcessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /api/ai-image-process [post]
func (h *ImageHandler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := readFormFile(c, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	processType := c.PostForm("processType")

	upload, err := h.media.Upload(ctx, cloudinary.UploadParams{
		File:         file.Data,
		Filename:     file.Name,
		ResourceType: cloudinary.ResourceImage,
		Folder:       folderImages,
	})
	if err != nil {
		uploadFailed(c, &h.log, err, "image")
		return
	}

	result := h.processor.Process(ctx, upload.PublicID, processType)

	record, err := models.NewJSON(processingRecord{
		ProcessType: processType,
		ProcessedURLs: processedURLs{
			ProcessedURL: result.ProcessedURL,
			FineEdgesURL: result.FineEdgesURL,
		},
		ProcessedAt:  time.Now().UTC(),
		OriginalData: result.ObjectDetection,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to encode processing record")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to encode processing record"})
		return
	}

	image, err := h.store.CreateImage(ctx, &models.Image{
		Title:                titleOr(c.PostForm("title"), file.Name),
		Description:          optionalString(c.PostForm("description")),
		PublicID:             upload.PublicID,
		OriginalSize:         strconv.FormatInt(upload.Bytes, 10),
		FileType:             upload.Format,
		Tags:                 result.Tags,
		ExtractedText:        result.ExtractedText,
		HasBackgroundRemoved: processType == processing.BackgroundRemoval,
		IsEnhanced:           processType == processing.Enhance,
		AICaption:            result.AICaption,
		QualityScore:         result.QualityScore,
		QualityLevel:         result.QualityLevel,
		WatermarkDetected:    result.WatermarkDetected,
		ObjectDetection:      record,
	})
	if err != nil {
		h.log.Error().Err(err).Str("public_id", upload.PublicID).Msg("Failed to save image")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save image",
			Message: err.Error(),
		})
		return
	}

	publish(ctx, h.publisher, &h.log, events.ImageProcessed, image.PublicID, events.ImageProcessedPayload(image, processType))

	c.JSON(http.StatusOK, models.ImageProcessResponse{
		Image:         image,
		ProcessedData: result,
		OriginalURL:   originalURL(h.media, upload.PublicID, cloudinary.ResourceImage),
		ProcessedURL:  result.ProcessedURL,
	})
}

// List godoc
// @Summary     List processed images
// @Description Returns every processed image, newest first.
// @Tags        images
// @Produce     json
// @Security    Bearer
// @Success     200 {array} models.Image
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/ai-images [get]
func (h *ImageHandler) List(c *gin.Context) {
	images, err := h.store.ListImages(c.Request.Context())
	if err != nil {
		storeError(c, &h.log, err, "images not found", "failed to fetch images")
		return
	}
	c.JSON(http.StatusOK, images)
}

// Delete godoc
// @Summary     Delete an image
// @Description Deletes exactly one image row. The Cloudinary asset is kept.
// @Tags        images
// @Produce     json
// @Security    Bearer
// @Param       id query string true "Image ID (UUID)"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/ai-images [delete]
func (h *ImageHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "image")
	if !ok {
		return
	}

	image, err := h.store.DeleteImage(c.Request.Context(), id)
	if err != nil {
		storeError(c, &h.log, err, "image not found", "failed to delete image")
		return
	}

	publish(c.Request.Context(), h.publisher, &h.log, events.ImageDeleted, image.PublicID, events.DeletedPayload(image.ID.String(), image.PublicID))

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// originalURL is the unsigned delivery URL of an upload; it is "" if it cannot be built.
func originalURL(urls URLBuilder, publicID, resourceType string) string {
	u, err := urls.URL(publicID, cloudinary.URLOptions{ResourceType: resourceType})
	if err != nil {
		return ""
	}
	return u
}
