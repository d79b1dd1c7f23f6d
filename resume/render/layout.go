package render

import "strings"

const (
	bodySize       = 11.0
	bodyLineHeight = 14.0
	bulletIndent   = 12.0
	bulletGap      = 2.0
	bulletGlyph    = "•"
)

// Cursor is the insertion point of a column: the left edge, the current
// baseline and the usable width. Placement functions take a cursor and return
// the advanced one.
type Cursor struct {
	X     float64
	Y     float64
	Width float64
}

// Down moves the cursor dy points towards the bottom of the page.
func (c Cursor) Down(dy float64) Cursor {
	c.Y -= dy
	return c
}

// Indent shifts the cursor right by dx and narrows it accordingly.
func (c Cursor) Indent(dx float64) Cursor {
	c.X += dx
	c.Width -= dx
	return c
}

// TextOptions controls paragraph placement.
type TextOptions struct {
	Size       float64
	LineHeight float64
	Weight     Weight
	Color      RGB
}

// Wrap greedily packs words into lines no wider than width. A word that does
// not fit on its own is kept as a solitary line.
func Wrap(m Metrics, text string, width float64, weight Weight, size float64) []string {
	words := strings.Fields(Normalize(text))
	var lines []string
	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if m.StringWidth(candidate, weight, size) > width {
			if line != "" {
				lines = append(lines, line)
			}
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Paragraph wraps text to the cursor width and draws one line per LineHeight,
// starting at the cursor baseline. The returned cursor sits one line below the
// last drawn line.
func Paragraph(p *Page, at Cursor, text string, opts TextOptions) Cursor {
	style := TextStyle{Size: opts.Size, Weight: opts.Weight, Color: opts.Color}
	for _, line := range Wrap(p.metrics, text, at.Width, opts.Weight, opts.Size) {
		p.Text(at.X, at.Y, line, style)
		at = at.Down(opts.LineHeight)
	}
	return at
}

// ListItems splits text on line breaks and drops blank entries.
func ListItems(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// BulletList draws one bullet per line of text with the item body indented
// next to it.
func BulletList(p *Page, at Cursor, text string, body TextOptions, bulletSize float64) Cursor {
	for _, item := range ListItems(text) {
		p.Text(at.X, at.Y, bulletGlyph, TextStyle{Size: bulletSize, Weight: Regular, Color: black})
		next := Paragraph(p, at.Indent(bulletIndent), item, body)
		at.Y = next.Y - bulletGap
	}
	return at
}

// Rule strokes a 1pt separator across the cursor width at its baseline.
func Rule(p *Page, at Cursor, color RGB) {
	p.Line(at.X, at.Y, at.X+at.Width, at.Y, 1, color)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
