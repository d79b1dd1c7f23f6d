package render

import (
	"math"
	"strconv"
	"strings"
)

// RGB is a color with channels in [0,1].
type RGB struct {
	R float64
	G float64
	B float64
}

// FallbackBlue is used whenever a color hint is missing or malformed.
var FallbackBlue = RGB{R: 0.17, G: 0.48, B: 0.90}

// Gray returns an RGB with equal channels.
func Gray(v float64) RGB {
	return RGB{R: v, G: v, B: v}
}

var (
	black = Gray(0)
	white = Gray(1)
)

// ParseHex converts "#rgb", "rgb", "#rrggbb" or "rrggbb" into an RGB.
// Anything else yields FallbackBlue.
func ParseHex(hex string) RGB {
	h := strings.TrimSpace(hex)
	h = strings.TrimPrefix(h, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return FallbackBlue
	}
	num, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return FallbackBlue
	}
	return RGB{
		R: float64((num>>16)&0xff) / 255,
		G: float64((num>>8)&0xff) / 255,
		B: float64(num&0xff) / 255,
	}
}

// Hex formats the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	r, g, b := c.Bytes()
	const digits = "0123456789abcdef"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []int{r, g, b} {
		out[1+i*2] = digits[v>>4]
		out[2+i*2] = digits[v&0x0f]
	}
	return string(out)
}

// Bytes returns the channels scaled to 0..255.
func (c RGB) Bytes() (r, g, b int) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B)
}

// Luminance returns the relative luminance using Rec. 709 weights.
func (c RGB) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

func channelByte(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// Lerp interpolates linearly per channel; t is clamped to [0,1].
func Lerp(a, b RGB, t float64) RGB {
	t = math.Max(0, math.Min(1, t))
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// GradientBands samples n solid colors between start and end, one per band,
// each taken at the band's midpoint.
func GradientBands(start, end RGB, n int) []RGB {
	if n <= 0 {
		return nil
	}
	bands := make([]RGB, n)
	for i := range bands {
		t := (float64(i) + 0.5) / float64(n)
		bands[i] = Lerp(start, end, t)
	}
	return bands
}
