package cloudinary

import (
	"strconv"
	"time"
)

// Notification headers set by Cloudinary on webhook deliveries.
const (
	HeaderSignature = "X-Cld-Signature"
	HeaderTimestamp = "X-Cld-Timestamp"
)

// DefaultNotificationMaxAge is the window Cloudinary documents for notification signatures.
const DefaultNotificationMaxAge = 2 * time.Hour

// VerifyNotification checks a webhook body against its signature headers.
// The timestamp must lie within maxAge of now in either direction.
func (c *Client) VerifyNotification(body []byte, timestamp, signature string, maxAge time.Duration, now time.Time) error {
	if c.apiSecret == "" {
		return ErrMissingCredentials
	}
	if maxAge <= 0 {
		maxAge = DefaultNotificationMaxAge
	}

	sent, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrStaleNotification
	}
	skew := now.Sub(time.Unix(sent, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > maxAge {
		return ErrStaleNotification
	}

	if !c.sdk.Upload.VerifyNotificationSignature(string(body), sent, signature, int64(maxAge/time.Second)) {
		return ErrInvalidSignature
	}
	return nil
}
