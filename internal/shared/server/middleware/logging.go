package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"smartresume/internal/shared/telemetry"
)

// Context keys handlers set to enrich the request log line.
const (
	DocumentIDKey      = "documentId"
	GenerationStateKey = "generationState"
	FailureKindKey     = "failureKind"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		telemetry.Info("request.complete", map[string]any{
			"request_id":       RequestIDFromContext(c),
			"method":           c.Request.Method,
			"path":             c.Request.URL.Path,
			"status":           c.Writer.Status(),
			"duration_ms":      float64(latency.Microseconds()) / 1000.0,
			"document_id":      c.GetString(DocumentIDKey),
			"generation_state": c.GetString(GenerationStateKey),
			"failure_kind":     c.GetString(FailureKindKey),
			"client_ip":        c.ClientIP(),
			"user_agent":       c.Request.UserAgent(),
		})
	}
}
