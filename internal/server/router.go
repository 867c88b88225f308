package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"media-ai-backend/internal/config"
	"media-ai-backend/internal/handlers"
	"media-ai-backend/internal/middleware"
)

// Handlers groups every route handler the router mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Videos     *handlers.VideoHandler
	Images     *handlers.ImageHandler
	Vision     *handlers.VisionHandler
	Faces      *handlers.FaceHandler
	Documents  *handlers.DocumentHandler
	Webhook    *handlers.WebhookHandler
	SignedURLs *handlers.SignedURLHandler
}

func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = handlers.MaxMultipartMemory
	router.Use(middleware.RequestLogger())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// No session auth: health check and Cloudinary notifications.
	router.GET("/health", h.Health.Check)
	router.POST("/api/document-webhook", h.Webhook.DocumentConversion)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))

	// Videos
	api.POST("/video-upload", h.Videos.Upload)
	api.GET("/videos", h.Videos.List)

	// Images
	api.POST("/ai-image-process", h.Images.Process)
	api.GET("/ai-images", h.Images.List)
	api.DELETE("/ai-images", h.Images.Delete)
	api.POST("/generate-signed-urls", h.SignedURLs.Generate)

	// AI Vision
	api.POST("/ai-vision", h.Vision.Analyze)
	api.GET("/ai-vision", h.Vision.Get)

	// Faces
	api.POST("/face-detection", h.Faces.Detect)
	api.GET("/face-detection", h.Faces.Get)

	// Documents
	api.POST("/document-upload", h.Documents.Upload)
	api.GET("/documents", h.Documents.List)
	api.DELETE("/documents", h.Documents.Delete)

	return router
}
