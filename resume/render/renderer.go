package render

import (
	"bytes"
	"fmt"

	"cv-mailer/resume/model"
)

// Document is a rendered CV ready to be attached to a mail.
type Document struct {
	Bytes []byte
	Style model.Style
	// Overflow reports body text placed below the footer rule. The page is
	// never split, so such text overlaps the footer or runs off the page.
	Overflow bool
}

// Layout lays the form out on a fresh page without encoding it.
func Layout(form model.ApplicantForm, m Metrics) (*Page, bool) {
	sheet := NewStyleSheet(form)
	page := NewPage(m)
	TemplateFor(form.SelectedStyle()).Render(page, form, sheet)
	overflow := page.LowestText() < FooterTop(page)
	drawFooter(page, sheet)
	return page, overflow
}

// RenderCV lays out the form and encodes it as a PDF.
func RenderCV(form model.ApplicantForm) (Document, error) {
	page, overflow := Layout(form, NewFontMetrics())

	var buf bytes.Buffer
	if err := EncodePDF(page, &buf); err != nil {
		return Document{}, fmt.Errorf("render cv: %w", err)
	}
	return Document{
		Bytes:    buf.Bytes(),
		Style:    form.SelectedStyle(),
		Overflow: overflow,
	}, nil
}
