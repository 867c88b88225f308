package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/events"
	"media-ai-backend/internal/faces"
	"media-ai-backend/internal/logger"
	"media-ai-backend/internal/models"
)

type FaceHandler struct {
	media     Uploader
	store     ImageStore
	publisher events.Publisher
	log       zerolog.Logger
}

func NewFaceHandler(media Uploader, store ImageStore, publisher events.Publisher) *FaceHandler {
	return &FaceHandler{
		media:     media,
		store:     store,
		publisher: publisher,
		log:       logger.WithComponent("face-detection"),
	}
}

// Detect godoc
// @Summary     Upload an image and detect faces
// @Description Uploads with advanced face detection, tags the result and builds transformation URLs
// @Description for the requested mode (face-detection, face-crop, face-overlay, red-eye-removal).
// @Tags        face-detection
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       file formData file true "Image file"
// @Param       title formData string false "Title"
// @Param       description formData string false "Description"
// @Param       processType formData string false "Face mode"
// @Success     200 {object} models.FaceDetectionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /api/face-detection [post]
func (h *FaceHandler) Detect(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := readFormFile(c, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	mode := c.PostForm("processType")

	upload, err := h.media.Upload(ctx, cloudinary.UploadParams{
		File:         file.Data,
		Filename:     file.Name,
		ResourceType: cloudinary.ResourceImage,
		Folder:       folderFaces,
		Detection:    "adv_face",
	})
	if err != nil {
		uploadFailed(c, &h.log, err, "image")
		return
	}

	detected := upload.Info.Detection.AdvFace.Data

	result, err := faces.Flatten(upload.PublicID, detected, mode, h.media)
	if err != nil {
		h.log.Error().Err(err).Str("public_id", upload.PublicID).Msg("Failed to build face URLs")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to process face detection",
			Message: err.Error(),
		})
		return
	}

	cols, err := faces.ToColumns(detected)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to encode face data")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to encode face data"})
		return
	}

	faceCount := len(detected)
	image, err := h.store.CreateImage(ctx, &models.Image{
		Title:              titleOr(c.PostForm("title"), file.Name),
		Description:        optionalString(c.PostForm("description")),
		PublicID:           upload.PublicID,
		OriginalSize:       strconv.FormatInt(upload.Bytes, 10),
		FileType:           upload.Format,
		Tags:               result.Tags,
		FacialAttributes:   cols.FacialAttributes,
		FaceCount:          &faceCount,
		HasFaces:           faceCount > 0,
		FacesBoundingBoxes: cols.FacesBoundingBoxes,
		FacialLandmarks:    cols.FacialLandmarks,
	})
	if err != nil {
		h.log.Error().Err(err).Str("public_id", upload.PublicID).Msg("Failed to save image")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save image",
			Message: err.Error(),
		})
		return
	}

	publish(ctx, h.publisher, &h.log, events.ImageFacesDetected, image.PublicID, events.FacesDetectedPayload(image))

	c.JSON(http.StatusOK, models.FaceDetectionResponse{
		Image:             image,
		FaceDetectionData: result,
		OriginalURL:       originalURL(h.media, upload.PublicID, cloudinary.ResourceImage),
		ProcessedURLs:     result.ProcessedURLs,
	})
}

// Get godoc
// @Summary     Get stored face detection data
// @Tags        face-detection
// @Produce     json
// @Security    Bearer
// @Param       publicId query string true "Cloudinary public id"
// @Success     200 {object} models.FaceDataResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/face-detection [get]
func (h *FaceHandler) Get(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "public id is required"})
		return
	}

	image, err := h.store.GetImageByPublicID(c.Request.Context(), publicID)
	if err != nil {
		storeError(c, &h.log, err, "image not found", "failed to fetch face detection data")
		return
	}

	c.JSON(http.StatusOK, models.FaceDataResponse{
		ID:                 image.ID.String(),
		Title:              image.Title,
		PublicID:           image.PublicID,
		FacialAttributes:   image.FacialAttributes,
		FaceCount:          image.FaceCount,
		HasFaces:           image.HasFaces,
		FacesBoundingBoxes: image.FacesBoundingBoxes,
		FacialLandmarks:    image.FacialLandmarks,
	})
}
