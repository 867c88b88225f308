package models

type SignedURLsRequest struct {
	PublicID string `json:"publicId"`
}

type TagDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AIVisionRequest is the body of POST /api/ai-vision. Which list is required depends on Mode.
type AIVisionRequest struct {
	Mode               string          `json:"mode"`
	ImageURL           string          `json:"imageUrl"`
	PublicID           string          `json:"publicId,omitempty"`
	TagDefinitions     []TagDefinition `json:"tagDefinitions,omitempty"`
	RejectionQuestions []string        `json:"rejectionQuestions,omitempty"`
	Prompts            []string        `json:"prompts,omitempty"`
}

// DocumentNotification is the body Cloudinary posts to the document webhook.
type DocumentNotification struct {
	NotificationType string `json:"notification_type"`
	InfoKind         string `json:"info_kind"`
	InfoStatus       string `json:"info_status"`
	PublicID         string `json:"public_id"`
	ResourceType     string `json:"resource_type,omitempty"`
}
