package util

import (
	"errors"
	"strings"
	"unicode"
)

var errInvalidFileName = errors.New("invalid file name")

// SanitizeFileName makes name safe to use as a single path element.
// Separators, whitespace and control characters become underscores;
// traversal patterns are rejected.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/', r == '\\', r == ':':
			return '_'
		case unicode.IsSpace(r), unicode.IsControl(r):
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if s == "" || s == "." {
		return "", errInvalidFileName
	}
	return s, nil
}
