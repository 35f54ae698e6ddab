package timeutil

import (
	"strings"
	"testing"
	"time"

	"github.com/reggie-app/reggie-api/internal/i18n"
)

func TestFormatLong(t *testing.T) {
	et := ReferenceLocation()
	ts := time.Date(2024, time.January, 12, 19, 30, 0, 0, et)

	if got := FormatLong(ts, i18n.LocaleFR); got != "vendredi 12 janvier 2024 à 19:30" {
		t.Fatalf("fr long = %q", got)
	}
	if got := FormatLong(ts, i18n.LocaleEN); got != "Friday, January 12, 2024 at 7:30 PM" {
		t.Fatalf("en long = %q", got)
	}
}

func TestFormatShort(t *testing.T) {
	ts := time.Date(2024, time.February, 3, 12, 0, 0, 0, time.UTC)

	// The abbreviation spelling belongs to the locale library; pin the
	// day, the French month stem, and the year.
	got := FormatShort(ts, i18n.LocaleFR)
	if !strings.HasPrefix(got, "3 févr") || !strings.HasSuffix(got, " 2024") {
		t.Fatalf("fr short = %q", got)
	}
	if got := FormatShort(ts, i18n.LocaleEN); got != "Feb 3, 2024" {
		t.Fatalf("en short = %q", got)
	}
}

func TestFormatTimeETConvertsZone(t *testing.T) {
	// 00:30 UTC on Jan 13 is 7:30 PM Jan 12 in New York.
	ts := time.Date(2024, time.January, 13, 0, 30, 0, 0, time.UTC)
	if got := FormatTimeET(ts); got != "7:30 PM" {
		t.Fatalf("FormatTimeET = %q", got)
	}
}
