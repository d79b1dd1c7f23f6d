package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cv-mailer/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log line.
const (
	StyleKey         = "cvStyle"
	RecipientHashKey = "recipientHash"
	OverflowKey      = "cvOverflow"
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

		style, _ := c.Get(StyleKey)
		recipient, _ := c.Get(RecipientHashKey)
		overflow, _ := c.Get(OverflowKey)

		telemetry.Info("request.complete", map[string]any{
			"request_id":     RequestIDFromContext(c),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"status":         c.Writer.Status(),
			"duration_ms":    float64(latency.Microseconds()) / 1000.0,
			"style":          style,
			"recipient_hash": recipient,
			"overflow":       overflow,
			"client_ip":      c.ClientIP(),
			"user_agent":     c.Request.UserAgent(),
		})
	}
}
