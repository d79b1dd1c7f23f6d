package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"

	"cv-mailer/internal/delivery"
	"cv-mailer/internal/sendcv"
	"cv-mailer/internal/services/health"
	"cv-mailer/internal/shared/config"
	"cv-mailer/internal/shared/server"
	"cv-mailer/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Dispatcher    *delivery.Dispatcher
	SendCVService *sendcv.Service
	SendCVHandler *sendcv.Handler
	Health        *health.Service
}

// Build wires the dispatcher, handlers and router from cfg. Incomplete mail
// settings do not fail the build; they are reported on each send.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	dispatcher := delivery.NewDispatcher(DeliveryConfig(cfg))
	svc := sendcv.NewService(dispatcher)
	app := &App{
		Config:        cfg,
		Dispatcher:    dispatcher,
		SendCVService: svc,
		SendCVHandler: sendcv.NewHandler(svc),
		Health:        health.NewService(),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config: cfg,
		SendCV: app.SendCVHandler,
		Health: app.Health,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":            cfg.Env,
		"mail_transport": cfg.Mail.Transport,
		"rate_limit":     cfg.RateLimitPerMinute,
	})
	return app, nil
}

// DeliveryConfig maps the environment configuration onto the dispatcher's.
func DeliveryConfig(cfg config.Config) delivery.Config {
	return delivery.Config{
		Transport:            cfg.Mail.Transport,
		SMTPHost:             cfg.Mail.SMTPHost,
		SMTPPort:             cfg.Mail.SMTPPort,
		SMTPUser:             cfg.Mail.SMTPUser,
		SMTPPass:             cfg.Mail.SMTPPass,
		From:                 cfg.Mail.From,
		ToOverride:           cfg.Mail.ToOverride,
		PostmarkServerToken:  cfg.Mail.PostmarkServerToken,
		PostmarkAccountToken: cfg.Mail.PostmarkAccountToken,
		DevDir:               cfg.Mail.DevDir,
		Timeout:              cfg.SMTPTimeout,
	}
}
