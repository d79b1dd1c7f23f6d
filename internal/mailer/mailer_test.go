package mailer_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-mailer/internal/mailer"
)

func sampleMessage() mailer.Message {
	return mailer.Message{
		From:    "cv@example.com",
		To:      "jan@example.com",
		Subject: "Twoje gotowe CV - Klasyczne",
		HTML:    "<p>W zalaczniku Twoje CV wygenerowane na podstawie formularza.</p>",
		Tag:     "cv",
		Attachments: []mailer.Attachment{
			{Name: "CV.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.3 test")},
		},
	}
}

func TestMessageValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, sampleMessage().Validate())

	cases := map[string]func(*mailer.Message){
		"missing from":    func(m *mailer.Message) { m.From = " " },
		"missing to":      func(m *mailer.Message) { m.To = "" },
		"missing subject": func(m *mailer.Message) { m.Subject = "" },
		"unnamed file":    func(m *mailer.Message) { m.Attachments[0].Name = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			msg := sampleMessage()
			mutate(&msg)
			assert.ErrorIs(t, msg.Validate(), mailer.ErrInvalidMessage)
		})
	}
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	var got mailer.Message
	var s mailer.Sender = mailer.SenderFunc(func(_ context.Context, msg mailer.Message) error {
		got = msg
		return nil
	})
	require.NoError(t, s.Send(context.Background(), sampleMessage()))
	assert.Equal(t, "jan@example.com", got.To)
}

func TestNewSMTPSender(t *testing.T) {
	t.Parallel()

	_, err := mailer.NewSMTPSender(mailer.SMTPConfig{Port: 587})
	assert.ErrorIs(t, err, mailer.ErrInvalidConfig)

	_, err = mailer.NewSMTPSender(mailer.SMTPConfig{Host: "smtp.example.com", Port: 70000})
	assert.ErrorIs(t, err, mailer.ErrInvalidConfig)

	s, err := mailer.NewSMTPSender(mailer.SMTPConfig{Host: "smtp.example.com", Port: 465})
	require.NoError(t, err)
	assert.True(t, s.Implicit())

	s, err = mailer.NewSMTPSender(mailer.SMTPConfig{Host: "smtp.example.com", Port: 587})
	require.NoError(t, err)
	assert.False(t, s.Implicit())
}

func TestSMTPSenderRejectsInvalidMessage(t *testing.T) {
	t.Parallel()

	s, err := mailer.NewSMTPSender(mailer.SMTPConfig{Host: "127.0.0.1", Port: 2525})
	require.NoError(t, err)
	msg := sampleMessage()
	msg.To = ""
	assert.ErrorIs(t, s.Send(context.Background(), msg), mailer.ErrInvalidMessage)
}

func TestSMTPSenderReportsDialFailure(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	s, err := mailer.NewSMTPSender(mailer.SMTPConfig{Host: "127.0.0.1", Port: port, Username: "u", Password: "p", Timeout: 2 * time.Second})
	require.NoError(t, err)

	err = s.Send(context.Background(), sampleMessage())
	require.Error(t, err)
	assert.ErrorIs(t, err, mailer.ErrFailedToSend)
}

func TestPostmarkSenderSendsAttachment(t *testing.T) {
	t.Parallel()

	var payload map[string]any
	var token string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = r.Header.Get("X-Postmark-Server-Token")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &payload)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"To":"jan@example.com","SubmittedAt":"2026-01-01T00:00:00Z","MessageID":"abc","ErrorCode":0,"Message":"OK"}`))
	}))
	defer srv.Close()

	s, err := mailer.NewPostmarkSender(mailer.PostmarkConfig{ServerToken: "server-token", BaseURL: srv.URL})
	require.NoError(t, err)
	require.NoError(t, s.Send(context.Background(), sampleMessage()))

	assert.Equal(t, "server-token", token)
	assert.Equal(t, "jan@example.com", payload["To"])
	assert.Equal(t, "Twoje gotowe CV - Klasyczne", payload["Subject"])
	attachments, ok := payload["Attachments"].([]any)
	require.True(t, ok, "attachments missing: %v", payload)
	require.Len(t, attachments, 1)
	first := attachments[0].(map[string]any)
	assert.Equal(t, "CV.pdf", first["Name"])
	assert.Equal(t, "application/pdf", first["ContentType"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF-1.3 test")), first["Content"])
}

func TestPostmarkSenderSurfacesAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
	}))
	defer srv.Close()

	s, err := mailer.NewPostmarkSender(mailer.PostmarkConfig{ServerToken: "server-token", BaseURL: srv.URL})
	require.NoError(t, err)

	err = s.Send(context.Background(), sampleMessage())
	require.Error(t, err)
	assert.ErrorIs(t, err, mailer.ErrFailedToSend)
	assert.Contains(t, err.Error(), "300")
}

func TestNewPostmarkSenderRequiresToken(t *testing.T) {
	t.Parallel()

	s, err := mailer.NewPostmarkSender(mailer.PostmarkConfig{})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
}

func TestDevSenderWritesOutbox(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "outbox")
	s := mailer.NewDevSender(dir)
	require.NoError(t, s.Send(context.Background(), sampleMessage()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	var html, meta, pdf string
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".html"):
			html = e.Name()
		case strings.HasSuffix(e.Name(), ".json"):
			meta = e.Name()
		case strings.HasSuffix(e.Name(), "CV.pdf"):
			pdf = e.Name()
		}
	}
	require.NotEmpty(t, html)
	require.NotEmpty(t, meta)
	require.NotEmpty(t, pdf)
	assert.Contains(t, html, "jan_at_example.com")

	data, err := os.ReadFile(filepath.Join(dir, pdf))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 test", string(data))

	raw, err := os.ReadFile(filepath.Join(dir, meta))
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "jan@example.com", decoded["to"])
	assert.Equal(t, "Twoje gotowe CV - Klasyczne", decoded["subject"])
}

func TestDevSenderRejectsTraversalInAttachmentName(t *testing.T) {
	t.Parallel()

	s := mailer.NewDevSender(t.TempDir())
	msg := sampleMessage()
	msg.Attachments[0].Name = "../CV.pdf"
	assert.ErrorIs(t, s.Send(context.Background(), msg), mailer.ErrInvalidMessage)
}
