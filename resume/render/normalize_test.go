package render

import (
	"strings"
	"testing"
)

const polishLetters = "ąćęłńóśźżĄĆĘŁŃÓŚŹŻ"

func TestNormalizeMapsPolishLetters(t *testing.T) {
	if got := Normalize(polishLetters); got != "acelnoszzACELNOSZZ" {
		t.Fatalf("unexpected mapping: %q", got)
	}
	if got := Normalize("Zażółć gęślą jaźń"); got != "Zazolc gesla jazn" {
		t.Fatalf("unexpected sentence: %q", got)
	}
}

func TestNormalizeKeepsOtherText(t *testing.T) {
	for _, in := range []string{"", "plain ascii", "café • naïve", "Grüße", "100% ok\n"} {
		if got := Normalize(in); got != in {
			t.Fatalf("expected %q unchanged, got %q", in, got)
		}
	}
}

func TestNormalizeIdempotentAndTotal(t *testing.T) {
	inputs := []string{
		"",
		polishLetters,
		"Łódź, Świętokrzyskie — ul. Żółta 5",
		"mixed ąa ćc êe \xff broken utf8",
		strings.Repeat("ż", 1000),
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent for %q: %q vs %q", in, once, twice)
		}
		if strings.ContainsAny(once, polishLetters) {
			t.Fatalf("diacritics remain in %q", once)
		}
	}
}
