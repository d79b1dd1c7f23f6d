package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkConfig configures the Postmark transport. BaseURL is optional.
type PostmarkConfig struct {
	ServerToken  string
	AccountToken string
	BaseURL      string
}

// PostmarkSender sends through Postmark's transactional email API.
type PostmarkSender struct {
	client *postmark.Client
}

func NewPostmarkSender(cfg PostmarkConfig) (*PostmarkSender, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: Postmark server token is required", ErrInvalidConfig)
	}
	client := postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}
	return &PostmarkSender{client: client}, nil
}

func (p *PostmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	email := postmark.Email{
		From:     msg.From,
		To:       msg.To,
		Subject:  msg.Subject,
		Tag:      msg.Tag,
		HTMLBody: msg.HTML,
	}
	for _, a := range msg.Attachments {
		email.Attachments = append(email.Attachments, postmark.Attachment{
			Name:        a.Name,
			Content:     base64.StdEncoding.EncodeToString(a.Data),
			ContentType: a.ContentType,
		})
	}

	resp, err := p.client.SendEmail(ctx, email)
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrFailedToSend, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
