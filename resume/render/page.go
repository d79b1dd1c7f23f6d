package render

import "math"

// A4 page geometry in PDF points.
const (
	A4Width    = 595.28
	A4Height   = 841.89
	PageMargin = 40.0
)

// Weight selects between the regular and bold base fonts.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// Metrics measures text in the page's fonts.
type Metrics interface {
	StringWidth(text string, weight Weight, size float64) float64
}

// Primitive is one draw operation on a page.
type Primitive interface {
	primitive()
}

// TextRun draws text with its baseline at Y.
type TextRun struct {
	X      float64
	Y      float64
	Text   string
	Size   float64
	Weight Weight
	Color  RGB
}

// LineSegment strokes a straight line.
type LineSegment struct {
	X1        float64
	Y1        float64
	X2        float64
	Y2        float64
	Thickness float64
	Color     RGB
}

// FilledRect fills a rectangle whose bottom-left corner is (X, Y).
type FilledRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  RGB
}

func (TextRun) primitive()     {}
func (LineSegment) primitive() {}
func (FilledRect) primitive()  {}

// TextStyle describes how a single text run is drawn.
type TextStyle struct {
	Size   float64
	Weight Weight
	Color  RGB
}

// Page is a single fixed-size canvas. Coordinates have their origin at the
// bottom-left corner with y growing upwards. Nothing is clipped: content
// placed below the margin is still recorded.
type Page struct {
	Width   float64
	Height  float64
	Margin  float64
	metrics Metrics
	items   []Primitive
	lowest  float64
}

// NewPage returns an empty A4 page measured with m.
func NewPage(m Metrics) *Page {
	return &Page{
		Width:   A4Width,
		Height:  A4Height,
		Margin:  PageMargin,
		metrics: m,
		lowest:  math.Inf(1),
	}
}

// Measure returns the width of text at the given weight and size.
func (p *Page) Measure(text string, weight Weight, size float64) float64 {
	return p.metrics.StringWidth(Normalize(text), weight, size)
}

// Text records a text run. Empty strings draw nothing.
func (p *Page) Text(x, y float64, text string, style TextStyle) {
	text = Normalize(text)
	if text == "" {
		return
	}
	p.items = append(p.items, TextRun{
		X:      x,
		Y:      y,
		Text:   text,
		Size:   style.Size,
		Weight: style.Weight,
		Color:  style.Color,
	})
	if y < p.lowest {
		p.lowest = y
	}
}

// Line records a line segment.
func (p *Page) Line(x1, y1, x2, y2, thickness float64, color RGB) {
	p.items = append(p.items, LineSegment{X1: x1, Y1: y1, X2: x2, Y2: y2, Thickness: thickness, Color: color})
}

// Rect records a filled rectangle.
func (p *Page) Rect(x, y, width, height float64, color RGB) {
	p.items = append(p.items, FilledRect{X: x, Y: y, Width: width, Height: height, Color: color})
}

// Primitives returns the recorded draw operations in order.
func (p *Page) Primitives() []Primitive {
	return append([]Primitive(nil), p.items...)
}

// LowestText returns the lowest text baseline drawn so far, or +Inf when the
// page holds no text.
func (p *Page) LowestText() float64 {
	return p.lowest
}

// TextRuns returns only the text runs, in drawing order.
func (p *Page) TextRuns() []TextRun {
	var runs []TextRun
	for _, item := range p.items {
		if run, ok := item.(TextRun); ok {
			runs = append(runs, run)
		}
	}
	return runs
}
