package render

import "cv-mailer/resume/model"

const (
	technicalBandHeight = 80.0
	technicalColumnGap  = 20.0
)

// Technical has a dark header band over two equal columns.
type Technical struct{}

// Render implements TemplateRenderer.
func (Technical) Render(p *Page, form model.ApplicantForm, sheet StyleSheet) {
	m := p.Margin

	p.Rect(0, p.Height-technicalBandHeight, p.Width, technicalBandHeight, Gray(0.1))
	p.Text(m, p.Height-46, form.DisplayName(), TextStyle{Size: 22, Weight: Bold, Color: white})
	if form.Position != "" {
		p.Text(m, p.Height-68, form.Position, TextStyle{Size: sheet.Size(12), Color: Gray(0.8)})
	}

	colW := (p.Width - 2*m - technicalColumnGap) / 2
	top := p.Height - 100
	body := sheet.Body()
	bullet := sheet.Size(bodySize)

	left := Cursor{X: m, Y: top, Width: colW}
	left = technicalLabel(p, left, "KONTAKT", sheet)
	left = Paragraph(p, left, joinNonEmpty("  •  ", form.Email, form.Phone), body).Down(8)
	Rule(p, left, sheet.Line)
	left = left.Down(10)
	left = technicalLabel(p, left, "UMIEJĘTNOŚCI", sheet)
	BulletList(p, left, form.Skills, body, bullet)

	right := Cursor{X: m + colW + technicalColumnGap, Y: top, Width: colW}
	right = technicalLabel(p, right, "DOŚWIADCZENIE", sheet)
	right = BulletList(p, right, form.Experience, body, bullet).Down(6)
	Rule(p, right, sheet.Line)
	right = right.Down(10)
	right = technicalLabel(p, right, "WYKSZTAŁCENIE", sheet)
	right = Paragraph(p, right, form.Education, body).Down(6)
	Rule(p, right, sheet.Line)
	right = right.Down(10)
	right = technicalLabel(p, right, "JĘZYKI", sheet)
	Paragraph(p, right, form.Languages, body)
}

func technicalLabel(p *Page, at Cursor, label string, sheet StyleSheet) Cursor {
	p.Text(at.X, at.Y, label, TextStyle{Size: sheet.Size(11), Weight: Bold, Color: sheet.Accent})
	return at.Down(14)
}
