package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	Env                string        `env:"ENV" envDefault:"dev"`
	CORSAllowOrigin    []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"0"`
	RateLimitBurst     int           `env:"RATE_LIMIT_BURST" envDefault:"5"`
	Mail               MailConfig
	SMTPTimeout        time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
}

// MailConfig is the raw outbound mail configuration. Blank values are
// legal here and reported per request when a CV is sent.
type MailConfig struct {
	Transport            string `env:"MAIL_TRANSPORT" envDefault:"smtp"`
	SMTPHost             string `env:"SMTP_HOST"`
	SMTPPort             string `env:"SMTP_PORT"`
	SMTPUser             string `env:"SMTP_USER"`
	SMTPPass             string `env:"SMTP_PASS"`
	From                 string `env:"MAIL_FROM"`
	ToOverride           string `env:"MAIL_TO_OVERRIDE"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	DevDir               string `env:"MAIL_DEV_DIR" envDefault:"./data/outbox"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(existing(".env", "cmd/.env")...)

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.CORSAllowOrigin = trimAll(cfg.CORSAllowOrigin)
	cfg.Mail.Transport = normalizeTransport(cfg.Mail.Transport)
	if cfg.RateLimitPerMinute < 0 {
		cfg.RateLimitPerMinute = 0
	}
	return cfg, nil
}

func existing(paths ...string) []string {
	var out []string
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			out = append(out, path)
		}
	}
	return out
}

func trimAll(parts []string) []string {
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeTransport(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postmark":
		return "postmark"
	case "dev", "file":
		return "dev"
	default:
		return "smtp"
	}
}
