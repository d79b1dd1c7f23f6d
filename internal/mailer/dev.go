package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cv-mailer/internal/shared/util"
)

// DevSender writes messages to a directory instead of sending them.
// Each message produces <stamp>_<recipient>.html, a .json metadata file
// and one file per attachment.
type DevSender struct {
	dir string
	now func() time.Time
}

func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devMetadata struct {
	Timestamp   string   `json:"timestamp"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	Subject     string   `json:"subject"`
	Tag         string   `json:"tag,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

func (d *DevSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create outbox: %v", ErrFailedToSend, err)
	}

	now := d.now()
	recipient, err := util.SanitizeFileName(strings.ReplaceAll(msg.To, "@", "_at_"))
	if err != nil {
		recipient = "recipient"
	}
	base := filepath.Join(d.dir, now.Format("2006_01_02_150405.000")+"_"+recipient)

	if err := os.WriteFile(base+".html", []byte(msg.HTML), 0o644); err != nil {
		return fmt.Errorf("%w: write html: %v", ErrFailedToSend, err)
	}
	meta := devMetadata{
		Timestamp: now.UTC().Format(time.RFC3339),
		From:      msg.From,
		To:        msg.To,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
	}
	for _, a := range msg.Attachments {
		name, err := util.SanitizeFileName(a.Name)
		if err != nil {
			return fmt.Errorf("%w: attachment %q: %v", ErrInvalidMessage, a.Name, err)
		}
		if err := os.WriteFile(base+"_"+name, a.Data, 0o644); err != nil {
			return fmt.Errorf("%w: write attachment: %v", ErrFailedToSend, err)
		}
		meta.Attachments = append(meta.Attachments, filepath.Base(base+"_"+name))
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal metadata: %v", ErrFailedToSend, err)
	}
	if err := os.WriteFile(base+".json", data, 0o644); err != nil {
		return fmt.Errorf("%w: write metadata: %v", ErrFailedToSend, err)
	}
	return nil
}
