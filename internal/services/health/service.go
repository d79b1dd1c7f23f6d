package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cv-mailer/internal/shared/server/respond"
)

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]bool {
	return map[string]bool{"ok": true}
}

// RegisterRoutes exposes GET /health and HEAD /health.
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	h := func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, s.Status())
	}
	rg.GET("/health", h)
	rg.HEAD("/health", h)
}
