package i18n

import "testing"

func strPtr(s string) *string { return &s }

func TestTextResolvePrefersLocaleOverride(t *testing.T) {
	headline := Text{Base: strPtr("H"), FR: strPtr("HF")}

	if got, ok := headline.Resolve(LocaleFR); !ok || got != "HF" {
		t.Fatalf("fr = %q ok=%v, want HF", got, ok)
	}
	// No _en value: English falls back to the legacy base field.
	if got, ok := headline.Resolve(LocaleEN); !ok || got != "H" {
		t.Fatalf("en = %q ok=%v, want H", got, ok)
	}
}

func TestTextResolveAbsenceIsNotAnError(t *testing.T) {
	empty := Text{}
	if _, ok := empty.Resolve(LocaleEN); ok {
		t.Fatal("expected no value for empty Text")
	}

	frOnly := Text{FR: strPtr("seulement")}
	if _, ok := frOnly.Resolve(LocaleEN); ok {
		t.Fatal("expected no English value when only FR is set")
	}
}

func TestTextResolveTreatsEmptyStringAsAbsent(t *testing.T) {
	headline := Text{Base: strPtr("base"), EN: strPtr("")}
	if got, ok := headline.Resolve(LocaleEN); !ok || got != "base" {
		t.Fatalf("got %q ok=%v, want fallback to base", got, ok)
	}
}

func TestNewTextDropsEmptyValues(t *testing.T) {
	text := NewText("", "fr", "")
	if text.Base != nil || text.EN != nil {
		t.Fatalf("expected only FR set: %+v", text)
	}
	if text.IsZero() {
		t.Fatal("text with FR should not be zero")
	}
	if !NewText("", "", "").IsZero() {
		t.Fatal("all-empty text should be zero")
	}
}

func TestTextListResolve(t *testing.T) {
	list := TextList{Base: []string{"a", "b"}, FR: []string{"un", "deux"}}

	if got, ok := list.Resolve(LocaleFR); !ok || len(got) != 2 || got[0] != "un" {
		t.Fatalf("fr list = %v ok=%v", got, ok)
	}
	if got, ok := list.Resolve(LocaleEN); !ok || got[0] != "a" {
		t.Fatalf("en list = %v ok=%v", got, ok)
	}
	if _, ok := (TextList{}).Resolve(LocaleFR); ok {
		t.Fatal("expected no value for empty list")
	}
}

func TestParseLocale(t *testing.T) {
	cases := map[string]Locale{
		"fr":      LocaleFR,
		"EN":      LocaleEN,
		" en ":    LocaleEN,
		"de":      LocaleFR,
		"":        LocaleFR,
		"english": LocaleFR,
	}
	for raw, expected := range cases {
		if got := Parse(raw); got != expected {
			t.Fatalf("Parse(%q) = %s, want %s", raw, got, expected)
		}
	}
}
