package render

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cv-mailer/resume/model"
)

// ConsentNotice is the data-processing consent printed at the bottom of every CV.
const ConsentNotice = "Wyrażam zgodę na przetwarzanie moich danych osobowych przez [nazwa firmy] w celu prowadzenia rekrutacji na aplikowane przeze mnie stanowisko."

// footerRuleOffset is the height of the footer rule above the bottom margin.
const footerRuleOffset = 28.0

// TemplateRenderer draws one CV layout onto a page.
type TemplateRenderer interface {
	Render(p *Page, form model.ApplicantForm, sheet StyleSheet)
}

var templates = map[model.Style]TemplateRenderer{
	model.StyleClassic:   Classic{},
	model.StyleTechnical: Technical{},
	model.StyleModern:    Modern{},
}

// TemplateFor returns the renderer for a style; unknown styles get Modern.
func TemplateFor(style model.Style) TemplateRenderer {
	if t, ok := templates[style]; ok {
		return t
	}
	return Modern{}
}

// FooterTop is the y coordinate of the footer rule. Body content below it
// collides with the consent notice.
func FooterTop(p *Page) float64 {
	return p.Margin + footerRuleOffset
}

// drawFooter draws the closing rule and the consent notice.
func drawFooter(p *Page, sheet StyleSheet) {
	top := FooterTop(p)
	p.Line(p.Margin, top, p.Width-p.Margin, top, 1, sheet.Line)

	size := sheet.Size(9)
	at := Cursor{X: p.Margin, Y: p.Margin + 14, Width: p.Width - 2*p.Margin}
	Paragraph(p, at, ConsentNotice, TextOptions{
		Size:       size,
		LineHeight: size + 2,
		Weight:     Regular,
		Color:      sheet.Subtle,
	})
}

// upper uses a fresh Caser per call; Casers are not safe for concurrent use.
func upper(label string) string {
	return cases.Upper(language.Polish).String(label)
}
