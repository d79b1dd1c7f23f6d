package model

import "testing"

func TestDecodeFormObject(t *testing.T) {
	form, err := DecodeForm([]byte(`{"name":"Jan Kowalski","email":"jan@x.pl","style":"klasyczne","extra_info":"x","gradStart":"#000","fontSize":"large"}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if form.Name != "Jan Kowalski" || form.Email != "jan@x.pl" || form.ExtraInfo != "x" || form.GradStart != "#000" {
		t.Fatalf("unexpected form: %+v", form)
	}
	if form.SelectedStyle() != StyleClassic || form.SelectedFontSize() != FontSizeLarge {
		t.Fatalf("unexpected selections: %s %s", form.SelectedStyle(), form.SelectedFontSize())
	}
}

func TestDecodeFormJSONString(t *testing.T) {
	form, err := DecodeForm([]byte(`"{\"name\":\"Anna\",\"style\":\"techniczne\"}"`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if form.Name != "Anna" || form.SelectedStyle() != StyleTechnical {
		t.Fatalf("unexpected form: %+v", form)
	}
}

func TestDecodeFormEmpty(t *testing.T) {
	for _, raw := range []string{"", "  ", "null", `""`} {
		form, err := DecodeForm([]byte(raw))
		if err != nil {
			t.Fatalf("%q: decode failed: %v", raw, err)
		}
		if form != (ApplicantForm{}) {
			t.Fatalf("%q: expected empty form, got %+v", raw, form)
		}
	}
}

func TestDecodeFormMalformed(t *testing.T) {
	for _, raw := range []string{"{", `{"name": 5}`, `"{not json}"`, "[1,2]"} {
		if _, err := DecodeForm([]byte(raw)); err == nil {
			t.Fatalf("%q: expected error", raw)
		}
	}
}

func TestSelectedStyleFallsBackToModern(t *testing.T) {
	cases := map[string]Style{
		"":            StyleModern,
		"nowoczesne":  StyleModern,
		"KLASYCZNE":   StyleClassic,
		" techniczne": StyleTechnical,
		"retro":       StyleModern,
	}
	for in, want := range cases {
		if got := (ApplicantForm{Style: in}).SelectedStyle(); got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
}

func TestStyleTitle(t *testing.T) {
	if StyleClassic.Title() != "Klasyczne" || StyleTechnical.Title() != "Techniczne" || StyleModern.Title() != "Nowoczesne" {
		t.Fatalf("unexpected titles")
	}
}

func TestDisplayNamePlaceholder(t *testing.T) {
	if got := (ApplicantForm{}).DisplayName(); got != PlaceholderName {
		t.Fatalf("expected placeholder, got %q", got)
	}
}
