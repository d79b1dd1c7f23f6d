package render

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// monoMetrics treats every rune as half an em wide.
type monoMetrics struct{}

func (monoMetrics) StringWidth(text string, weight Weight, size float64) float64 {
	w := float64(utf8.RuneCountInString(text)) * size * 0.5
	if weight == Bold {
		w *= 1.1
	}
	return w
}

func textsOf(p *Page) []string {
	var out []string
	for _, run := range p.TextRuns() {
		out = append(out, run.Text)
	}
	return out
}

func assertHasText(t *testing.T, p *Page, want string) {
	t.Helper()
	for _, text := range textsOf(p) {
		if text == want {
			return
		}
	}
	t.Fatalf("expected text run %q, got %q", want, strings.Join(textsOf(p), " | "))
}

func countText(p *Page, want string) int {
	n := 0
	for _, text := range textsOf(p) {
		if text == want {
			n++
		}
	}
	return n
}
