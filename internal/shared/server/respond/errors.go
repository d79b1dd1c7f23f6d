package respond

import (
	"github.com/gin-gonic/gin"

	"cv-mailer/internal/shared/telemetry"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Error logs the failure and aborts with a JSON error body.
func Error(c *gin.Context, status int, message string, details any) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if details != nil {
		fields["details"] = details
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, Details: details})
}
