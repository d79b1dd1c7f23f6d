package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Style selects one of the three CV layouts.
type Style string

const (
	StyleClassic   Style = "klasyczne"
	StyleTechnical Style = "techniczne"
	StyleModern    Style = "nowoczesne"
)

// FontSize is the applicant's text size preference.
type FontSize string

const (
	FontSizeSmall    FontSize = "small"
	FontSizeStandard FontSize = "standard"
	FontSizeLarge    FontSize = "large"
)

// PlaceholderName is drawn when the form carries no name.
const PlaceholderName = "Imie i nazwisko"

// ApplicantForm is the flat payload posted by the CV form.
type ApplicantForm struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Skills     string `json:"skills"`
	Languages  string `json:"languages"`
	ExtraInfo  string `json:"extra_info"`
	Style      string `json:"style"`
	Accent     string `json:"accent"`
	GradStart  string `json:"gradStart"`
	GradEnd    string `json:"gradEnd"`
	FontSize   string `json:"fontSize"`
}

// DecodeForm parses a request body. The body may be a JSON object or a JSON
// string whose content is the object; an empty body is an empty form.
func DecodeForm(raw []byte) (ApplicantForm, error) {
	var form ApplicantForm
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return form, nil
	}
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return form, fmt.Errorf("decode form string: %w", err)
		}
		if strings.TrimSpace(inner) == "" {
			return form, nil
		}
		trimmed = []byte(inner)
	}
	if err := json.Unmarshal(trimmed, &form); err != nil {
		return form, fmt.Errorf("decode form: %w", err)
	}
	return form, nil
}

// SelectedStyle resolves the style field. Unknown or empty values fall back to
// the modern layout.
func (f ApplicantForm) SelectedStyle() Style {
	switch Style(strings.ToLower(strings.TrimSpace(f.Style))) {
	case StyleClassic:
		return StyleClassic
	case StyleTechnical:
		return StyleTechnical
	default:
		return StyleModern
	}
}

// SelectedFontSize resolves the font size preference, defaulting to standard.
func (f ApplicantForm) SelectedFontSize() FontSize {
	switch FontSize(strings.ToLower(strings.TrimSpace(f.FontSize))) {
	case FontSizeSmall:
		return FontSizeSmall
	case FontSizeLarge:
		return FontSizeLarge
	default:
		return FontSizeStandard
	}
}

// DisplayName returns the name or the placeholder label.
func (f ApplicantForm) DisplayName() string {
	if f.Name == "" {
		return PlaceholderName
	}
	return f.Name
}

// Title returns the human label of a style, used in mail subjects.
func (s Style) Title() string {
	switch s {
	case StyleClassic:
		return "Klasyczne"
	case StyleTechnical:
		return "Techniczne"
	default:
		return "Nowoczesne"
	}
}
