package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ImageProcessResponse struct {
	*Image
	ProcessedData interface{} `json:"processedData"`
	OriginalURL   string      `json:"originalUrl"`
	ProcessedURL  *string     `json:"processedUrl"`
}

type FaceDetectionResponse struct {
	*Image
	FaceDetectionData interface{}       `json:"faceDetectionData"`
	OriginalURL       string            `json:"originalUrl"`
	ProcessedURLs     map[string]string `json:"processedUrls"`
}

type FaceDataResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	PublicID           string `json:"publicId"`
	FacialAttributes   JSON   `json:"facialAttributes"`
	FaceCount          *int   `json:"faceCount"`
	HasFaces           bool   `json:"hasFaces"`
	FacesBoundingBoxes JSON   `json:"facesBoundingBoxes"`
	FacialLandmarks    JSON   `json:"facialLandmarks"`
}

type VisionDataResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	PublicID           string `json:"publicId"`
	AIVisionTags       JSON   `json:"aiVisionTags"`
	AIVisionModeration JSON   `json:"aiVisionModeration"`
	AIVisionGeneral    JSON   `json:"aiVisionGeneral"`
	TokensUsed         *int   `json:"tokensUsed"`
}

type DocumentUploadResponse struct {
	*Document
	OriginalURL string `json:"originalUrl"`
	Message     string `json:"message"`
}

type SignedURLsResponse struct {
	Original   string `json:"original"`
	Standard   string `json:"standard"`
	FineEdges  string `json:"fineEdges"`
	WithShadow string `json:"withShadow"`
	Enhanced   string `json:"enhanced"`
}
