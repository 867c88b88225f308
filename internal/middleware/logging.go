package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"media-ai-backend/internal/logger"
	"media-ai-backend/internal/models"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger logs one line per request and converts panics into a 500 response.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		log := logger.WithRequestID(requestID)

		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("Recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
					Error: "internal server error",
				})
			}

			status := c.Writer.Status()
			event := log.Info()
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			}

			event.
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Str("user_id", UserID(c)).
				Msg("Request handled")
		}()

		c.Next()
	}
}
