package i18n

// Text carries a legacy untranslated value plus optional per-locale
// overrides. It replaces the store's `{field}`, `{field}_fr`, `{field}_en`
// column triples with one typed value and one resolution rule, so fallback
// chains cannot drift between call sites.
type Text struct {
	Base *string `json:"base,omitempty"`
	FR   *string `json:"fr,omitempty"`
	EN   *string `json:"en,omitempty"`
}

// NewText builds a Text from raw column values; empty strings count as
// absent.
func NewText(base, fr, en string) Text {
	return Text{Base: optional(base), FR: optional(fr), EN: optional(en)}
}

// Resolve picks the best available value for the locale: the locale's
// override when present, else the legacy base value. ok is false when
// neither exists; callers omit the content region rather than erroring.
func (t Text) Resolve(locale Locale) (value string, ok bool) {
	var preferred *string
	switch locale {
	case LocaleEN:
		preferred = t.EN
	default:
		preferred = t.FR
	}
	if preferred != nil && *preferred != "" {
		return *preferred, true
	}
	if t.Base != nil && *t.Base != "" {
		return *t.Base, true
	}
	return "", false
}

// IsZero reports whether no candidate value is present at all.
func (t Text) IsZero() bool {
	return t.Base == nil && t.FR == nil && t.EN == nil
}

// TextList is the list-valued counterpart of Text, used for fields like key
// takeaways. Resolution follows the same per-locale preference.
type TextList struct {
	Base []string `json:"base,omitempty"`
	FR   []string `json:"fr,omitempty"`
	EN   []string `json:"en,omitempty"`
}

// Resolve picks the locale's list when non-empty, else the base list. ok is
// false when both are empty.
func (l TextList) Resolve(locale Locale) (values []string, ok bool) {
	var preferred []string
	switch locale {
	case LocaleEN:
		preferred = l.EN
	default:
		preferred = l.FR
	}
	if len(preferred) > 0 {
		return preferred, true
	}
	if len(l.Base) > 0 {
		return l.Base, true
	}
	return nil, false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
