package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"media-ai-backend/internal/logger"
	"media-ai-backend/internal/models"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	log zerolog.Logger
}

// NewHealthHandler returns a health check. A nil db always reports ok.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: logger.WithComponent("health"),
	}
}

// Check godoc
// @Summary     Health check
// @Description Returns the health status of the API and its database
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Failure     503 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.log.Warn().Err(err).Msg("Database ping failed")
			c.JSON(http.StatusServiceUnavailable, models.HealthResponse{Status: "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
