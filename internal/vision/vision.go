package vision

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"media-ai-backend/internal/models"
)

type Mode string

const (
	ModeTagging    Mode = "tagging"
	ModeModeration Mode = "moderation"
	ModeGeneral    Mode = "general"
)

// MaxItems caps tag definitions, rejection questions and prompts per request.
const MaxItems = 10

// Task is the analysis endpoint name for the mode.
func (m Mode) Task() string {
	return "ai_vision_" + string(m)
}

// Field is the image column the mode's analysis is stored in.
func (m Mode) Field() models.VisionField {
	switch m {
	case ModeTagging:
		return models.VisionFieldTags
	case ModeModeration:
		return models.VisionFieldModeration
	default:
		return models.VisionFieldGeneral
	}
}

// ValidationError rejects a request before any upstream call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type Source struct {
	URI string `json:"uri"`
}

// Payload is the JSON body sent to the analysis endpoint.
type Payload struct {
	Source             Source                 `json:"source"`
	TagDefinitions     []models.TagDefinition `json:"tag_definitions,omitempty"`
	RejectionQuestions []string               `json:"rejection_questions,omitempty"`
	Prompts            []string               `json:"prompts,omitempty"`
}

// BuildRequest validates req and shapes the provider payload for its mode.
func BuildRequest(req models.AIVisionRequest) (Mode, Payload, error) {
	mode := Mode(req.Mode)
	switch mode {
	case ModeTagging, ModeModeration, ModeGeneral:
	default:
		return "", Payload{}, invalid("Invalid mode. Must be 'tagging', 'moderation', or 'general'")
	}

	if strings.TrimSpace(req.ImageURL) == "" {
		return "", Payload{}, invalid("imageUrl is required")
	}

	payload := Payload{Source: Source{URI: req.ImageURL}}

	switch mode {
	case ModeTagging:
		if len(req.TagDefinitions) == 0 {
			return "", Payload{}, invalid("Tag definitions are required for tagging mode")
		}
		defs := req.TagDefinitions
		if len(defs) > MaxItems {
			defs = defs[:MaxItems]
		}
		payload.TagDefinitions = make([]models.TagDefinition, 0, len(defs))
		for _, def := range defs {
			name := SanitizeTagName(def.Name)
			if name == "" {
				return "", Payload{}, invalid("Tag name %q has no usable characters", def.Name)
			}
			payload.TagDefinitions = append(payload.TagDefinitions, models.TagDefinition{
				Name:        name,
				Description: def.Description,
			})
		}

	case ModeModeration:
		if len(req.RejectionQuestions) == 0 {
			return "", Payload{}, invalid("Rejection questions are required for moderation mode")
		}
		payload.RejectionQuestions = truncate(req.RejectionQuestions)

	case ModeGeneral:
		if len(req.Prompts) == 0 {
			return "", Payload{}, invalid("Prompts are required for general mode")
		}
		payload.Prompts = truncate(req.Prompts)
	}

	return mode, payload, nil
}

// SanitizeTagName lower-cases name and keeps only [a-z0-9-]. Whitespace and
// underscores become hyphens, hyphen runs collapse, and edge hyphens are trimmed.
func SanitizeTagName(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		case r == '-' || r == '_' || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func truncate(items []string) []string {
	if len(items) > MaxItems {
		return items[:MaxItems]
	}
	return items
}

// Outcome is the part of a successful analysis response that gets persisted.
type Outcome struct {
	Analysis   json.RawMessage
	TokensUsed int
}

// HasAnalysis reports whether the response carried a non-null data.analysis.
func (o Outcome) HasAnalysis() bool {
	trimmed := bytes.TrimSpace(o.Analysis)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// ParseOutcome reads data.analysis and limits.usage.count from a provider response.
func ParseOutcome(raw []byte) (Outcome, error) {
	var body struct {
		Data struct {
			Analysis json.RawMessage `json:"analysis"`
		} `json:"data"`
		Limits struct {
			Usage struct {
				Count int `json:"count"`
			} `json:"usage"`
		} `json:"limits"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Outcome{}, fmt.Errorf("failed to decode analysis response: %w", err)
	}
	return Outcome{Analysis: body.Data.Analysis, TokensUsed: body.Limits.Usage.Count}, nil
}

// ExtractErrorMessage pulls a human readable message out of a provider error body.
// It understands {"error":{"message":...}}, {"error":"..."} and {"message":...},
// falling back to the trimmed body text.
func ExtractErrorMessage(body []byte) string {
	var structured struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &structured); err == nil {
		if len(structured.Error) > 0 {
			var nested struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(structured.Error, &nested) == nil && nested.Message != "" {
				return nested.Message
			}
			var plain string
			if json.Unmarshal(structured.Error, &plain) == nil && plain != "" {
				return plain
			}
		}
		if structured.Message != "" {
			return structured.Message
		}
	}
	return strings.TrimSpace(string(body))
}
