package render

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// The embedded base fonts only cover WinAnsi, which lacks most Polish letters.
var polishASCII = map[rune]rune{
	'ą': 'a', 'ć': 'c', 'ę': 'e', 'ł': 'l', 'ń': 'n', 'ó': 'o', 'ś': 's', 'ź': 'z', 'ż': 'z',
	'Ą': 'A', 'Ć': 'C', 'Ę': 'E', 'Ł': 'L', 'Ń': 'N', 'Ó': 'O', 'Ś': 'S', 'Ź': 'Z', 'Ż': 'Z',
}

func foldPolish(r rune) rune {
	if a, ok := polishASCII[r]; ok {
		return a
	}
	return r
}

// Normalize maps Polish diacritics to their ASCII base letters.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(runes.Map(foldPolish), s)
	if err != nil {
		return strings.Map(foldPolish, s)
	}
	return out
}
