// Package delivery turns a rendered CV into an outbound email: it checks the
// mail configuration, resolves the recipient and hands the message to a
// transport.
package delivery

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cv-mailer/internal/mailer"
	"cv-mailer/resume/model"
)

// Transport names accepted in Config.Transport.
const (
	TransportSMTP     = "smtp"
	TransportPostmark = "postmark"
	TransportDev      = "dev"
)

// Config is the mail configuration, assembled once at startup.
type Config struct {
	Transport            string
	SMTPHost             string
	SMTPPort             string
	SMTPUser             string
	SMTPPass             string
	From                 string
	ToOverride           string
	PostmarkServerToken  string
	PostmarkAccountToken string
	PostmarkBaseURL      string
	DevDir               string
	Timeout              time.Duration
}

// Request is one CV ready to be mailed.
type Request struct {
	Email    string
	Name     string
	Style    model.Style
	Document []byte
}

// Receipt describes a message that was handed to the transport.
type Receipt struct {
	To        string
	Subject   string
	Transport string
}

// Dispatcher validates configuration and sends CVs.
type Dispatcher struct {
	cfg    Config
	sender mailer.Sender
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithSender replaces the transport built from Config.
func WithSender(s mailer.Sender) Option {
	return func(d *Dispatcher) { d.sender = s }
}

func NewDispatcher(cfg Config, opts ...Option) *Dispatcher {
	if cfg.Transport == "" {
		cfg.Transport = TransportSMTP
	}
	d := &Dispatcher{cfg: cfg}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch sends req. Configuration and recipient problems are returned as
// *ConfigError and *RecipientError before anything is sent.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Receipt, error) {
	port, err := d.validate()
	if err != nil {
		return Receipt{}, err
	}
	to := strings.TrimSpace(d.cfg.ToOverride)
	if to == "" {
		to = strings.TrimSpace(req.Email)
	}
	if to == "" {
		return Receipt{}, &RecipientError{}
	}

	sender := d.sender
	if sender == nil {
		sender, err = d.buildSender(port)
		if err != nil {
			return Receipt{}, err
		}
	}

	msg := mailer.Message{
		From:    d.from(),
		To:      to,
		Subject: Subject(req.Style),
		HTML:    HTMLBody(req.Name),
		Tag:     "cv-" + string(req.Style),
		Attachments: []mailer.Attachment{
			{Name: attachmentName, ContentType: attachmentType, Data: req.Document},
		},
	}
	if err := sender.Send(ctx, msg); err != nil {
		return Receipt{}, fmt.Errorf("send cv via %s: %w", d.cfg.Transport, err)
	}
	return Receipt{To: to, Subject: msg.Subject, Transport: d.cfg.Transport}, nil
}

func (d *Dispatcher) from() string {
	if from := strings.TrimSpace(d.cfg.From); from != "" {
		return from
	}
	return d.cfg.SMTPUser
}

// validate checks the settings the configured transport needs, in a fixed
// order, and returns the parsed SMTP port.
func (d *Dispatcher) validate() (int, error) {
	switch d.cfg.Transport {
	case TransportPostmark:
		if d.cfg.PostmarkServerToken == "" {
			return 0, &ConfigError{Setting: "POSTMARK_SERVER_TOKEN"}
		}
		if d.from() == "" {
			return 0, &ConfigError{Setting: "MAIL_FROM"}
		}
		return 0, nil
	case TransportDev:
		if d.cfg.DevDir == "" {
			return 0, &ConfigError{Setting: "MAIL_DEV_DIR"}
		}
		if d.from() == "" {
			return 0, &ConfigError{Setting: "MAIL_FROM"}
		}
		return 0, nil
	}

	required := []struct{ name, value string }{
		{"SMTP_HOST", d.cfg.SMTPHost},
		{"SMTP_PORT", d.cfg.SMTPPort},
		{"SMTP_USER", d.cfg.SMTPUser},
		{"SMTP_PASS", d.cfg.SMTPPass},
	}
	for _, s := range required {
		if strings.TrimSpace(s.value) == "" {
			return 0, &ConfigError{Setting: s.name}
		}
	}
	port, err := strconv.Atoi(strings.TrimSpace(d.cfg.SMTPPort))
	if err != nil || port <= 0 || port > 65535 {
		return 0, &ConfigError{Setting: "SMTP_PORT", Invalid: true}
	}
	return port, nil
}

func (d *Dispatcher) buildSender(port int) (mailer.Sender, error) {
	switch d.cfg.Transport {
	case TransportPostmark:
		return mailer.NewPostmarkSender(mailer.PostmarkConfig{
			ServerToken:  d.cfg.PostmarkServerToken,
			AccountToken: d.cfg.PostmarkAccountToken,
			BaseURL:      d.cfg.PostmarkBaseURL,
		})
	case TransportDev:
		return mailer.NewDevSender(d.cfg.DevDir), nil
	default:
		return mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     strings.TrimSpace(d.cfg.SMTPHost),
			Port:     port,
			Username: d.cfg.SMTPUser,
			Password: d.cfg.SMTPPass,
			Timeout:  d.cfg.Timeout,
		})
	}
}
