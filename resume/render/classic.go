package render

import "cv-mailer/resume/model"

// Classic is a single column layout with ruled section headers.
type Classic struct{}

// Render implements TemplateRenderer.
func (Classic) Render(p *Page, form model.ApplicantForm, sheet StyleSheet) {
	m := p.Margin
	top := p.Height - m

	p.Text(m, top-10, form.DisplayName(), TextStyle{Size: 24, Weight: Bold, Color: sheet.Dark})
	if form.Position != "" {
		p.Text(m, top-36, form.Position, TextStyle{Size: sheet.Size(12), Color: sheet.Subtle})
	}

	at := Cursor{X: m, Y: top - 60, Width: p.Width - 2*m}
	contact := joinNonEmpty("   •   ", prefixed("Email: ", form.Email), prefixed("Telefon: ", form.Phone))
	p.Text(at.X, at.Y, contact, TextStyle{Size: sheet.Size(10), Color: sheet.Subtle})
	at = at.Down(8)
	Rule(p, at, sheet.Line)
	at = at.Down(16)

	body := sheet.Body()
	bullet := sheet.Size(bodySize)

	if form.ExtraInfo != "" {
		at = classicHeader(p, at, "Podsumowanie", sheet)
		at = Paragraph(p, at, form.ExtraInfo, body).Down(10)
	}
	at = classicHeader(p, at, "Doświadczenie", sheet)
	at = BulletList(p, at, form.Experience, body, bullet).Down(6)

	at = classicHeader(p, at, "Wykształcenie", sheet)
	at = Paragraph(p, at, form.Education, body).Down(6)

	at = classicHeader(p, at, "Umiejętności", sheet)
	at = BulletList(p, at, form.Skills, body, bullet).Down(6)

	at = classicHeader(p, at, "Języki", sheet)
	Paragraph(p, at, form.Languages, body)
}

func classicHeader(p *Page, at Cursor, label string, sheet StyleSheet) Cursor {
	p.Text(at.X, at.Y, upper(label), TextStyle{Size: sheet.Size(11), Weight: Bold, Color: sheet.Dark})
	at = at.Down(12)
	p.Line(at.X, at.Y, at.X+at.Width, at.Y, 0.8, sheet.Line)
	return at.Down(12)
}

func prefixed(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}
