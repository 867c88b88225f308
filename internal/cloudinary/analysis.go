package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError carries a non-2xx response from the analysis endpoint.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cloudinary: status %d, body: %s", e.StatusCode, string(e.Body))
}

// Analyze runs an AI Vision task and returns the provider's JSON body unchanged.
func (c *Client) Analyze(ctx context.Context, task string, payload interface{}) (json.RawMessage, error) {
	if !c.hasCredentials() {
		return nil, ErrMissingCredentials
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := c.apiBaseURL + "/v2/analysis/" + c.cloudName + "/analyze/" + task
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Str("task", task).Msg("Analysis request rejected")
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("failed to decode response: body: %s", string(body))
	}
	return json.RawMessage(body), nil
}
