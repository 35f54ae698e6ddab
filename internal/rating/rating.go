// Package rating reconciles the two stored score scales into one canonical
// 0-10 rating and classifies it into a display tier. The threshold table
// here is the single source of truth for rating presentation; list sorting
// and badge coloring must both go through it.
package rating

import (
	"github.com/reggie-app/reggie-api/internal/domain/matches"
	"github.com/reggie-app/reggie-api/internal/i18n"
)

// Tier is the qualitative classification of a canonical rating.
type Tier string

const (
	TierEpic      Tier = "epic"
	TierMustWatch Tier = "must_watch"
	TierWorthIt   Tier = "worth_it"
	TierSkip      Tier = "skip"
)

// Class couples a tier with its fixed display color and labels.
type Class struct {
	Tier    Tier   `json:"tier"`
	Color   string `json:"color"`
	labelFR string
	labelEN string
}

// Label returns the tier label for the locale.
func (c Class) Label(locale i18n.Locale) string {
	if locale == i18n.LocaleEN {
		return c.labelEN
	}
	return c.labelFR
}

// Thresholds are inclusive lower bounds, checked top-down.
var classes = []struct {
	min   float64
	class Class
}{
	{8.0, Class{Tier: TierEpic, Color: "#8B5CF6", labelFR: "Épique", labelEN: "Epic"}},
	{7.0, Class{Tier: TierMustWatch, Color: "#22C55E", labelFR: "Must Watch", labelEN: "Must Watch"}},
	{5.0, Class{Tier: TierWorthIt, Color: "#EAB308", labelFR: "Worth It", labelEN: "Worth It"}},
}

var skipClass = Class{Tier: TierSkip, Color: "#EF4444", labelFR: "À éviter", labelEN: "Skip"}

// Normalize maps an analysis to the canonical 0-10 rating. The composite
// match interest score (stored on a 0-100 scale) wins over the legacy 0-10
// rating; an analysis with neither, or no analysis at all, rates 0.
func Normalize(a *matches.Analysis) float64 {
	if a == nil {
		return 0
	}
	var r float64
	switch {
	case a.MatchInterestScore != nil:
		r = *a.MatchInterestScore / 10
	case a.Rating != nil:
		r = *a.Rating
	default:
		return 0
	}
	return min(max(r, 0), 10)
}

// Classify maps a canonical rating to its tier, first matching lower bound
// wins. Boundaries are inclusive: exactly 8.0 is epic, exactly 5.0 is
// worth-it.
func Classify(r float64) Class {
	for _, c := range classes {
		if r >= c.min {
			return c.class
		}
	}
	return skipClass
}

// ForRecommendation maps a verdict recommendation string onto the same
// class table, so verdict badges cannot diverge from rating badges. Unknown
// recommendations fall back to the worth-it class.
func ForRecommendation(recommendation string) Class {
	switch recommendation {
	case string(TierEpic):
		return classes[0].class
	case string(TierMustWatch):
		return classes[1].class
	case string(TierWorthIt):
		return classes[2].class
	case string(TierSkip):
		return skipClass
	default:
		return classes[2].class
	}
}
