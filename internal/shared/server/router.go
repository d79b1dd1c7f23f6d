package server

import (
	"github.com/gin-gonic/gin"

	"cv-mailer/internal/sendcv"
	"cv-mailer/internal/services/health"
	"cv-mailer/internal/shared/config"
	"cv-mailer/internal/shared/metrics"
	"cv-mailer/internal/shared/server/middleware"
)

// RouterDeps carries the handlers mounted by NewRouter.
type RouterDeps struct {
	Config  config.Config
	SendCV  *sendcv.Handler
	Health  *health.Service
	Limiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	if deps.Health == nil {
		deps.Health = health.NewService()
	}
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	deps.Health.RegisterRoutes(api)

	if deps.SendCV != nil {
		limited := api.Group("", middleware.RateLimit(middleware.RateLimitConfig{
			Rule:    middleware.PerMinute(deps.Config.RateLimitPerMinute, deps.Config.RateLimitBurst),
			Limiter: deps.Limiter,
		}))
		deps.SendCV.RegisterRoutes(limited)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
