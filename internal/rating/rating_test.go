package rating

import (
	"testing"

	"github.com/reggie-app/reggie-api/internal/domain/matches"
	"github.com/reggie-app/reggie-api/internal/i18n"
)

func floatPtr(f float64) *float64 { return &f }

func TestNormalizeCompositeScoreWins(t *testing.T) {
	analysis := &matches.Analysis{
		MatchInterestScore: floatPtr(85),
		Rating:             floatPtr(6),
	}
	if got := Normalize(analysis); got != 8.5 {
		t.Fatalf("Normalize = %v, want 8.5", got)
	}
}

func TestNormalizeLegacyRatingPassesThrough(t *testing.T) {
	analysis := &matches.Analysis{Rating: floatPtr(6)}
	if got := Normalize(analysis); got != 6.0 {
		t.Fatalf("Normalize = %v, want 6.0", got)
	}
}

func TestNormalizeAbsentValuesRateZero(t *testing.T) {
	if got := Normalize(&matches.Analysis{}); got != 0 {
		t.Fatalf("Normalize(empty) = %v", got)
	}
	if got := Normalize(nil); got != 0 {
		t.Fatalf("Normalize(nil) = %v", got)
	}
}

func TestNormalizeClampsToScale(t *testing.T) {
	if got := Normalize(&matches.Analysis{MatchInterestScore: floatPtr(120)}); got != 10 {
		t.Fatalf("Normalize(120) = %v, want 10", got)
	}
	if got := Normalize(&matches.Analysis{Rating: floatPtr(-1)}); got != 0 {
		t.Fatalf("Normalize(-1) = %v, want 0", got)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		rating float64
		tier   Tier
	}{
		{10, TierEpic},
		{8.0, TierEpic},
		{7.999999, TierMustWatch},
		{7.0, TierMustWatch},
		{6.9, TierWorthIt},
		{5.0, TierWorthIt},
		{4.999, TierSkip},
		{0, TierSkip},
	}

	for _, tc := range cases {
		if got := Classify(tc.rating).Tier; got != tc.tier {
			t.Fatalf("Classify(%v) = %s, want %s", tc.rating, got, tc.tier)
		}
	}
}

func TestClassifyIsMonotonic(t *testing.T) {
	order := map[Tier]int{TierSkip: 0, TierWorthIt: 1, TierMustWatch: 2, TierEpic: 3}

	prev := -1
	for r := 0.0; r <= 10.0; r += 0.25 {
		rank := order[Classify(r).Tier]
		if rank < prev {
			t.Fatalf("tier rank decreased at rating %v", r)
		}
		prev = rank
	}
}

func TestClassLabelsAndColors(t *testing.T) {
	epic := Classify(9)
	if epic.Color != "#8B5CF6" {
		t.Fatalf("epic color = %s", epic.Color)
	}
	if epic.Label(i18n.LocaleFR) != "Épique" || epic.Label(i18n.LocaleEN) != "Epic" {
		t.Fatalf("epic labels = %s/%s", epic.Label(i18n.LocaleFR), epic.Label(i18n.LocaleEN))
	}

	skip := Classify(1)
	if skip.Color != "#EF4444" {
		t.Fatalf("skip color = %s", skip.Color)
	}
	if skip.Label(i18n.LocaleFR) != "À éviter" || skip.Label(i18n.LocaleEN) != "Skip" {
		t.Fatalf("skip labels = %s/%s", skip.Label(i18n.LocaleFR), skip.Label(i18n.LocaleEN))
	}

	// Must Watch and Worth It keep the English label in both locales.
	mw := Classify(7.5)
	if mw.Label(i18n.LocaleFR) != "Must Watch" {
		t.Fatalf("must watch fr label = %s", mw.Label(i18n.LocaleFR))
	}
}

func TestForRecommendationReusesClassTable(t *testing.T) {
	if got := ForRecommendation("epic"); got.Tier != TierEpic {
		t.Fatalf("epic recommendation = %+v", got)
	}
	if got := ForRecommendation("must_watch"); got.Color != "#22C55E" {
		t.Fatalf("must_watch color = %s", got.Color)
	}
	if got := ForRecommendation("skip"); got.Tier != TierSkip {
		t.Fatalf("skip recommendation = %+v", got)
	}
	// Unknown recommendations take the worth-it class.
	if got := ForRecommendation("mystery"); got.Tier != TierWorthIt {
		t.Fatalf("unknown recommendation = %+v", got)
	}
}
