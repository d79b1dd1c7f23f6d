package delivery

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"cv-mailer/resume/model"
	"cv-mailer/resume/render"
)

const (
	attachmentName = "CV.pdf"
	attachmentType = "application/pdf"
	bodyParagraph  = "<p>W zalaczniku Twoje CV wygenerowane na podstawie formularza.</p>"
)

var strict = bluemonday.StrictPolicy()

// Subject is the mail subject for a CV rendered in style.
func Subject(style model.Style) string {
	return render.Normalize("Twoje gotowe CV — " + style.Title())
}

// HTMLBody is the mail body. A non-empty applicant name adds a greeting
// line; markup in the name is stripped.
func HTMLBody(name string) string {
	name = strings.TrimSpace(strict.Sanitize(strings.TrimSpace(name)))
	if name == "" {
		return bodyParagraph
	}
	return "<p>Dzien dobry, " + name + "!</p>" + bodyParagraph
}
