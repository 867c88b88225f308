package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"media-ai-backend/internal/logger"
)

type Config struct {
	// Cloudinary
	CloudinaryCloudName       string
	CloudinaryAPIKey          string
	CloudinaryAPISecret       string
	CloudinaryAPIBaseURL      string
	CloudinaryDeliveryBaseURL string
	VerifyWebhooks            bool
	WebhookMaxAge             time.Duration

	// Supabase
	SupabaseURL           string
	SupabaseServiceKey    string
	SupabaseJWTSecret     string
	SupabaseStorageBucket string

	// Database
	DatabaseURL string

	// Kafka
	KafkaBrokers []string
	KafkaTopic   string

	// Server
	Port        string
	Environment string
	BaseURL     string

	// Logging
	LogLevel  string
	LogFormat string
	LogOutput string
}

func Load() (*Config, error) {
	cfg := &Config{
		CloudinaryCloudName:       getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:          getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret:       getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryAPIBaseURL:      getEnv("CLOUDINARY_API_BASE_URL", "https://api.cloudinary.com"),
		CloudinaryDeliveryBaseURL: getEnv("CLOUDINARY_DELIVERY_BASE_URL", "https://res.cloudinary.com"),
		VerifyWebhooks:            getEnvBool("CLOUDINARY_VERIFY_WEBHOOKS", true),
		WebhookMaxAge:             getEnvDuration("CLOUDINARY_WEBHOOK_MAX_AGE", 2*time.Hour),

		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseJWTSecret:     getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "document-archive"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "media-events"),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     strings.TrimSuffix(getEnv("BASE_URL", "http://localhost:8080"), "/"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
		LogOutput: getEnv("LOG_OUTPUT", "stdout"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.CloudinaryCloudName == "" {
		return fmt.Errorf("CLOUDINARY_CLOUD_NAME is required")
	}
	if c.CloudinaryAPIKey == "" {
		return fmt.Errorf("CLOUDINARY_API_KEY is required")
	}
	if c.CloudinaryAPISecret == "" {
		return fmt.Errorf("CLOUDINARY_API_SECRET is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.SupabaseURL != "" && c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required when SUPABASE_URL is set")
	}
	return nil
}

// ArchiveEnabled reports whether uploaded documents are copied to Supabase Storage.
func (c *Config) ArchiveEnabled() bool {
	return c.SupabaseURL != ""
}

// WebhookURL is the notification URL handed to Cloudinary for document conversions.
func (c *Config) WebhookURL() string {
	return c.BaseURL + "/api/document-webhook"
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	cfg := logger.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.Format = c.LogFormat
	cfg.Output = c.LogOutput
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
