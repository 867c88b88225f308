package cloudinary

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/config"
	cldlogger "github.com/cloudinary/cloudinary-go/v2/logger"
	"github.com/rs/zerolog"

	"media-ai-backend/internal/logger"
)

var (
	// ErrMissingCredentials is returned when a signed call is attempted without an API key and secret.
	ErrMissingCredentials = errors.New("cloudinary: missing api credentials")

	// ErrInvalidSignature is returned when a notification signature does not match its body.
	ErrInvalidSignature = errors.New("cloudinary: invalid notification signature")

	// ErrStaleNotification is returned when a notification timestamp is malformed or outside the accepted window.
	ErrStaleNotification = errors.New("cloudinary: stale notification")

	// ErrRejected wraps the error message Cloudinary returned in a response body.
	ErrRejected = errors.New("cloudinary: request rejected")
)

type Config struct {
	CloudName       string
	APIKey          string
	APISecret       string
	APIBaseURL      string
	DeliveryBaseURL string
	Timeout         time.Duration
}

// Client wraps the Cloudinary SDK with the calls this service makes.
// AI Vision analysis goes over plain HTTP because the SDK has no endpoint for it.
type Client struct {
	sdk        *cld.Cloudinary
	cloudName  string
	apiKey     string
	apiSecret  string
	apiBaseURL string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "https://api.cloudinary.com"
	}
	if cfg.DeliveryBaseURL == "" {
		cfg.DeliveryBaseURL = "https://res.cloudinary.com"
	}
	if cfg.Timeout < time.Second {
		cfg.Timeout = 60 * time.Second
	}

	conf, err := config.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to build cloudinary config: %w", err)
	}

	apiBaseURL := strings.TrimSuffix(cfg.APIBaseURL, "/")
	conf.API.UploadPrefix = apiBaseURL
	conf.API.Timeout = int64(cfg.Timeout / time.Second)
	conf.API.UploadTimeout = conf.API.Timeout
	conf.URL.Analytics = false

	delivery, err := url.Parse(cfg.DeliveryBaseURL)
	if err != nil || delivery.Host == "" {
		return nil, fmt.Errorf("invalid delivery base url %q", cfg.DeliveryBaseURL)
	}
	conf.URL.Secure = delivery.Scheme != "http"
	if delivery.Host != conf.URL.SharedHost {
		conf.URL.SecureCName = delivery.Host
		conf.URL.CName = delivery.Host
	}

	sdk, err := cld.NewFromConfiguration(*conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	log := logger.WithComponent("cloudinary")
	sdk.Logger.Writer = sdkLogWriter{log: log}

	return &Client{
		sdk:        sdk,
		cloudName:  cfg.CloudName,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		apiBaseURL: apiBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}, nil
}

func (c *Client) hasCredentials() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

// decodeResponse re-reads the raw response body the SDK keeps alongside its typed result.
// The typed results drop the add-on payloads under "info".
func decodeResponse(raw interface{}, out interface{}) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to re-encode response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// sdkLogWriter routes the SDK's logger into zerolog.
type sdkLogWriter struct {
	log zerolog.Logger
}

var _ cldlogger.LogWriter = sdkLogWriter{}

func (w sdkLogWriter) Debug(v ...interface{}) {
	w.log.Debug().Msg(fmt.Sprint(v...))
}

func (w sdkLogWriter) Error(v ...interface{}) {
	w.log.Error().Msg(fmt.Sprint(v...))
}
