package bootstrap

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"cv-mailer/internal/shared/config"
)

func TestBuildWithoutMailSettingsReportsPerRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(config.Config{Mail: config.MailConfig{Transport: "smtp"}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/send-cv", bytes.NewBufferString(`{"email":"jan@x.pl"}`))
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != `{"error":"Brak SMTP_HOST w konfiguracji."}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestBuildDevTransportEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := filepath.Join(t.TempDir(), "outbox")
	app, err := Build(config.Config{Mail: config.MailConfig{
		Transport:  "dev",
		DevDir:     dir,
		From:       "cv@example.com",
		ToOverride: "qa@example.com",
	}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/send-cv", bytes.NewBufferString(`{"name":"Jan Kowalski","style":"klasyczne"}`))
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 3 {
		t.Fatalf("expected 3 outbox files, got %v (%v)", entries, err)
	}
}

func TestDeliveryConfigMapping(t *testing.T) {
	cfg := config.Config{Mail: config.MailConfig{SMTPHost: "h", SMTPPort: "465", From: "f"}}
	got := DeliveryConfig(cfg)
	if got.SMTPHost != "h" || got.SMTPPort != "465" || got.From != "f" {
		t.Fatalf("unexpected mapping %+v", got)
	}
}
