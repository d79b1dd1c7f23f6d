package render

import "cv-mailer/resume/model"

const (
	modernHeaderHeight = 90.0
	modernSidebarWidth = 185.0
	// GradientBandCount is the number of solid bands approximating the header gradient.
	GradientBandCount = 120
)

var (
	sidebarShade  = RGB{R: 0.94, G: 0.97, B: 1}
	positionLight = RGB{R: 0.9, G: 0.95, B: 1}
)

// Modern has an accent header band, a shaded sidebar and a content column.
type Modern struct{}

// Render implements TemplateRenderer.
func (Modern) Render(p *Page, form model.ApplicantForm, sheet StyleSheet) {
	m := p.Margin
	bandY := p.Height - modernHeaderHeight

	drawHeaderBand(p, bandY, sheet)
	p.Text(m, p.Height-48, form.DisplayName(), TextStyle{Size: sheet.Size(26), Weight: Bold, Color: white})
	if form.Position != "" {
		p.Text(m, p.Height-68, form.Position, TextStyle{Size: sheet.Size(12), Color: positionLight})
	}

	p.Rect(m, m, modernSidebarWidth, p.Height-modernHeaderHeight-m*1.2, sidebarShade)

	body := sheet.Body()
	bullet := sheet.Size(bodySize)

	left := Cursor{X: m + 14, Y: bandY - 20, Width: modernSidebarWidth - 28}
	left = modernSection(p, left, "Kontakt", 10, sheet)
	if form.Email != "" {
		left = modernField(p, left, "Email", form.Email, sheet)
	}
	if form.Phone != "" {
		left = modernField(p, left, "Telefon", form.Phone, sheet)
	}
	left = modernSection(p, left, "Umiejętności", 10, sheet)
	BulletList(p, left, form.Skills, body, bullet)

	rightX := m + modernSidebarWidth + 24
	right := Cursor{X: rightX, Y: bandY - 20, Width: p.Width - rightX - m}
	if form.ExtraInfo != "" {
		right = modernSection(p, right, "Podsumowanie", 11, sheet)
		right = Paragraph(p, right, form.ExtraInfo, body).Down(6)
	}
	right = modernSection(p, right, "Doświadczenie", 11, sheet)
	right = BulletList(p, right, form.Experience, body, bullet).Down(6)
	right = modernSection(p, right, "Wykształcenie", 11, sheet)
	right = Paragraph(p, right, form.Education, body).Down(6)
	right = modernSection(p, right, "Języki", 11, sheet)
	Paragraph(p, right, form.Languages, body)
}

func drawHeaderBand(p *Page, y float64, sheet StyleSheet) {
	if sheet.Gradient == nil {
		p.Rect(0, y, p.Width, modernHeaderHeight, sheet.Accent)
		return
	}
	bandW := p.Width / GradientBandCount
	for i, color := range GradientBands(sheet.Gradient.Start, sheet.Gradient.End, GradientBandCount) {
		// bands overlap by half a point so no hairline gaps show between them
		p.Rect(bandW*float64(i), y, bandW+0.5, modernHeaderHeight, color)
	}
}

func modernSection(p *Page, at Cursor, label string, size float64, sheet StyleSheet) Cursor {
	p.Text(at.X, at.Y, upper(label), TextStyle{Size: size, Weight: Bold, Color: sheet.Accent})
	at = at.Down(12)
	Rule(p, at, sheet.Line)
	return at.Down(10)
}

func modernField(p *Page, at Cursor, label, value string, sheet StyleSheet) Cursor {
	p.Text(at.X, at.Y, label, TextStyle{Size: 9, Weight: Bold, Color: sheet.Subtle})
	at = at.Down(12)
	return Paragraph(p, at, value, sheet.Body()).Down(6)
}
