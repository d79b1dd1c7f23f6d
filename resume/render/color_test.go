package render

import (
	"math"
	"strings"
	"testing"
)

func TestParseHexRoundTrip(t *testing.T) {
	cases := map[string]string{
		"#2c7be5":   "#2c7be5",
		"2C7BE5":    "#2c7be5",
		"#000000":   "#000000",
		"ffffff":    "#ffffff",
		"#abc":      "#aabbcc",
		"f0a":       "#ff00aa",
		" #123456 ": "#123456",
	}
	for in, want := range cases {
		c := ParseHex(in)
		for _, ch := range []float64{c.R, c.G, c.B} {
			if ch < 0 || ch > 1 {
				t.Fatalf("%q: channel out of range: %v", in, c)
			}
		}
		if got := c.Hex(); got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
}

func TestParseHexAllByteValues(t *testing.T) {
	const digits = "0123456789abcdef"
	for v := 0; v < 256; v++ {
		pair := string([]byte{digits[v>>4], digits[v&0x0f]})
		hex := "#" + strings.Repeat(pair, 3)
		if got := ParseHex(hex).Hex(); got != hex {
			t.Fatalf("expected %s, got %s", hex, got)
		}
	}
}

func TestParseHexFallback(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#1234", "12345", "#1234567", "#gggggg", "blue", "##123456", "#12 456"} {
		if got := ParseHex(in); got != FallbackBlue {
			t.Fatalf("%q: expected fallback blue, got %v", in, got)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := ParseHex("#102030")
	b := ParseHex("#f0e0d0")
	if got := Lerp(a, b, 0); got != a {
		t.Fatalf("expected start color, got %v", got)
	}
	if got := Lerp(a, b, 1); math.Abs(got.R-b.R) > 1e-9 || math.Abs(got.G-b.G) > 1e-9 || math.Abs(got.B-b.B) > 1e-9 {
		t.Fatalf("expected end color, got %v", got)
	}
	if got := Lerp(a, b, 2); got.Hex() != b.Hex() {
		t.Fatalf("expected t to be clamped, got %v", got)
	}
}

func TestGradientBandsMonotonicLuminance(t *testing.T) {
	bands := GradientBands(ParseHex("#000000"), ParseHex("#ffffff"), GradientBandCount)
	if len(bands) != GradientBandCount {
		t.Fatalf("expected %d bands, got %d", GradientBandCount, len(bands))
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Luminance() <= bands[i-1].Luminance() {
			t.Fatalf("band %d luminance %v not above band %d luminance %v", i, bands[i].Luminance(), i-1, bands[i-1].Luminance())
		}
	}
	if first := bands[0].Luminance(); first <= 0 || first >= 0.01 {
		t.Fatalf("expected first band sampled near black, got %v", first)
	}
}

func TestGradientBandsEmpty(t *testing.T) {
	if got := GradientBands(black, white, 0); got != nil {
		t.Fatalf("expected no bands, got %v", got)
	}
}
