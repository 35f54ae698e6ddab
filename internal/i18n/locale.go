// Package i18n resolves localized content fields and serves the translation
// catalog for the two site locales.
package i18n

import "strings"

// Locale identifies a supported display language.
type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"
)

// DefaultLocale is French, matching the site's primary audience.
const DefaultLocale = LocaleFR

// Parse maps a raw string to a supported locale, falling back to the
// default for anything unrecognized.
func Parse(raw string) Locale {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "en":
		return LocaleEN
	case "fr":
		return LocaleFR
	default:
		return DefaultLocale
	}
}
