// Package mailer delivers rendered CVs through a pluggable transport:
// SMTP, the Postmark HTTP API, or a local directory for development.
package mailer

import (
	"context"
	"fmt"
	"strings"
)

// Sender delivers one message. Implementations make a single attempt.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a transport-neutral email with an HTML body.
type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Tag         string
	Attachments []Attachment
}

// Attachment is an in-memory file attached to a Message.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Validate checks the fields every transport needs.
func (m Message) Validate() error {
	switch {
	case strings.TrimSpace(m.From) == "":
		return fmt.Errorf("%w: sender is required", ErrInvalidMessage)
	case strings.TrimSpace(m.To) == "":
		return fmt.Errorf("%w: recipient is required", ErrInvalidMessage)
	case strings.TrimSpace(m.Subject) == "":
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	for _, a := range m.Attachments {
		if a.Name == "" {
			return fmt.Errorf("%w: attachment without a name", ErrInvalidMessage)
		}
	}
	return nil
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
