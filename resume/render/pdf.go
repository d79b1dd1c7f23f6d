package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const baseFontFamily = "Helvetica"

// FontMetrics measures text with the Helvetica core font metrics used by the
// PDF encoder. It is not safe for concurrent use; create one per render.
type FontMetrics struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

// NewFontMetrics returns metrics backed by a scratch fpdf document.
func NewFontMetrics() *FontMetrics {
	pdf := fpdf.New("P", "pt", "A4", "")
	return &FontMetrics{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// StringWidth implements Metrics.
func (m *FontMetrics) StringWidth(text string, weight Weight, size float64) float64 {
	m.pdf.SetFont(baseFontFamily, fontStyle(weight), size)
	return m.pdf.GetStringWidth(m.translate(text))
}

func fontStyle(weight Weight) string {
	if weight == Bold {
		return "B"
	}
	return ""
}

// EncodePDF serializes the page primitives into a single-page PDF.
func EncodePDF(p *Page, w io.Writer) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: p.Width, Ht: p.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("cv-mailer", true)
	pdf.SetTitle("CV", true)
	pdf.AddPage()
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	// fpdf measures y from the top edge; page primitives measure from the bottom.
	flip := func(y float64) float64 { return p.Height - y }

	for _, item := range p.Primitives() {
		switch v := item.(type) {
		case TextRun:
			r, g, b := v.Color.Bytes()
			pdf.SetFont(baseFontFamily, fontStyle(v.Weight), v.Size)
			pdf.SetTextColor(r, g, b)
			pdf.Text(v.X, flip(v.Y), translate(v.Text))
		case LineSegment:
			r, g, b := v.Color.Bytes()
			pdf.SetDrawColor(r, g, b)
			pdf.SetLineWidth(v.Thickness)
			pdf.Line(v.X1, flip(v.Y1), v.X2, flip(v.Y2))
		case FilledRect:
			r, g, b := v.Color.Bytes()
			pdf.SetFillColor(r, g, b)
			pdf.Rect(v.X, flip(v.Y+v.Height), v.Width, v.Height, "F")
		default:
			return fmt.Errorf("encode pdf: unsupported primitive %T", item)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("encode pdf: %w", err)
	}
	return nil
}
