package render

import (
	"math"
	"strings"

	"cv-mailer/resume/model"
)

const defaultAccentHex = "#2c7be5"

// Gradient holds the two endpoints of the modern header band.
type Gradient struct {
	Start RGB
	End   RGB
}

// StyleSheet is the read-only palette derived from a form's color and size hints.
type StyleSheet struct {
	Primary  RGB
	Dark     RGB
	Subtle   RGB
	Line     RGB
	Accent   RGB
	Gradient *Gradient
	Scale    float64
}

// NewStyleSheet resolves the palette for a form. Malformed hints fall back to
// the brand blue.
func NewStyleSheet(form model.ApplicantForm) StyleSheet {
	gradStart := strings.TrimSpace(form.GradStart)
	gradEnd := strings.TrimSpace(form.GradEnd)

	accentHex := defaultAccentHex
	switch {
	case gradStart != "":
		accentHex = gradStart
	case strings.TrimSpace(form.Accent) != "":
		accentHex = form.Accent
	}

	sheet := StyleSheet{
		Primary: RGB{R: 0.17, G: 0.48, B: 0.90},
		Dark:    Gray(0.13),
		Subtle:  RGB{R: 0.56, G: 0.62, B: 0.66},
		Line:    RGB{R: 0.89, G: 0.95, B: 0.99},
		Accent:  ParseHex(accentHex),
		Scale:   ScaleFor(form.SelectedFontSize()),
	}
	if gradStart != "" && gradEnd != "" {
		sheet.Gradient = &Gradient{Start: ParseHex(gradStart), End: ParseHex(gradEnd)}
	}
	return sheet
}

// ScaleFor maps a font size preference to a multiplier.
func ScaleFor(size model.FontSize) float64 {
	switch size {
	case model.FontSizeSmall:
		return 0.9
	case model.FontSizeLarge:
		return 1.12
	default:
		return 1.0
	}
}

// Size scales a base point size and rounds it to a whole point.
func (s StyleSheet) Size(base float64) float64 {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	return math.Round(base * scale)
}

// Body is the default paragraph style: 11pt on a 14pt line in the dark color.
func (s StyleSheet) Body() TextOptions {
	return TextOptions{
		Size:       bodySize,
		LineHeight: bodyLineHeight,
		Weight:     Regular,
		Color:      s.Dark,
	}
}
