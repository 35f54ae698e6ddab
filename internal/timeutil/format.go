package timeutil

import (
	"time"

	"github.com/goodsign/monday"

	"github.com/reggie-app/reggie-api/internal/i18n"
)

// FormatLong renders the full match date: French as
// "vendredi 12 janvier 2024 à 19:30" (24h clock), English as
// "Friday, January 12, 2024 at 7:30 PM" (12h clock). The caller picks the
// zone t is expressed in.
func FormatLong(t time.Time, locale i18n.Locale) string {
	if locale == i18n.LocaleEN {
		return t.Format("Monday, January 2, 2006 at 3:04 PM")
	}
	return monday.Format(t, "Monday 2 January 2006 à 15:04", monday.LocaleFrFR)
}

// FormatShort renders the compact date: "12 janv. 2024" or "Jan 12, 2024".
func FormatShort(t time.Time, locale i18n.Locale) string {
	if locale == i18n.LocaleEN {
		return t.Format("Jan 2, 2006")
	}
	return monday.Format(t, "2 Jan 2006", monday.LocaleFrFR)
}

// FormatTimeET renders the 12h clock time in the reference timezone.
func FormatTimeET(t time.Time) string {
	return t.In(ReferenceLocation()).Format("3:04 PM")
}
