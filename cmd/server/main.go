// @title           Media AI Backend API
// @version         1.0.0
// @description     Backend API for AI media processing on Cloudinary: video compression, image features, AI Vision analysis, face detection and document to PDF conversion.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"media-ai-backend/docs"
	"media-ai-backend/internal/cloudinary"
	"media-ai-backend/internal/config"
	"media-ai-backend/internal/database"
	"media-ai-backend/internal/events"
	"media-ai-backend/internal/handlers"
	"media-ai-backend/internal/logger"
	"media-ai-backend/internal/processing"
	"media-ai-backend/internal/server"
	"media-ai-backend/internal/supabase"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Media AI backend HTTP server",
	Long: `Serves the media AI API. Pending database migrations are applied
before the server starts listening.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
			if err := m.Up(ctx); err != nil {
				return err
			}
			version, err := m.Version(ctx)
			if err != nil {
				return err
			}
			log.Info().Int64("version", version).Msg("Migrations applied")
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the state of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
			return m.Status(ctx)
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return cfg, nil
}

func withMigrator(ctx context.Context, fn func(context.Context, *database.Migrator) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db.DB())
	if err != nil {
		return err
	}
	return fn(ctx, migrator)
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.WithComponent("server")

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Swagger docs follow the public base URL
	if baseURL, err := url.Parse(cfg.BaseURL); err == nil && baseURL.Host != "" {
		docs.SwaggerInfo.Host = baseURL.Host
		if baseURL.Scheme == "https" {
			docs.SwaggerInfo.Schemes = []string{"https", "http"}
		} else {
			docs.SwaggerInfo.Schemes = []string{"http", "https"}
		}
	}

	db, err := database.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db.DB())
	if err != nil {
		return err
	}
	if err := migrator.Up(ctx); err != nil {
		return err
	}

	media, err := cloudinary.NewClient(cloudinary.Config{
		CloudName:       cfg.CloudinaryCloudName,
		APIKey:          cfg.CloudinaryAPIKey,
		APISecret:       cfg.CloudinaryAPISecret,
		APIBaseURL:      cfg.CloudinaryAPIBaseURL,
		DeliveryBaseURL: cfg.CloudinaryDeliveryBaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	publisher := events.New(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer publisher.Close()

	var archive handlers.DocumentArchive
	if cfg.ArchiveEnabled() {
		archive = supabase.NewDocumentArchive(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
		log.Info().Str("bucket", cfg.SupabaseStorageBucket).Msg("Document archive enabled")
	}

	router := server.NewRouter(cfg, server.Handlers{
		Health:     handlers.NewHealthHandler(db),
		Videos:     handlers.NewVideoHandler(media, db, publisher),
		Images:     handlers.NewImageHandler(media, processing.NewProcessor(media), db, publisher),
		Vision:     handlers.NewVisionHandler(media, db, publisher),
		Faces:      handlers.NewFaceHandler(media, db, publisher),
		Documents:  handlers.NewDocumentHandler(media, db, archive, publisher, cfg.WebhookURL()),
		Webhook:    handlers.NewWebhookHandler(media, db, publisher, cfg.VerifyWebhooks, cfg.WebhookMaxAge),
		SignedURLs: handlers.NewSignedURLHandler(media),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info().Msg("Server stopped")
	return nil
}
