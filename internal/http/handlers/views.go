package handlers

import (
	"github.com/reggie-app/reggie-api/internal/domain/matches"
	"github.com/reggie-app/reggie-api/internal/i18n"
	"github.com/reggie-app/reggie-api/internal/rating"
	"github.com/reggie-app/reggie-api/internal/timeutil"
)

// MatchView is a match plus its locale-resolved presentation block. The raw
// localized triples stay in the embedded match for clients that re-render;
// the presentation block is ready to display as-is.
type MatchView struct {
	matches.Match
	Presentation MatchPresentation `json:"presentation"`
}

// MatchPresentation carries the display strings for one locale. Dates are
// rendered in the reference timezone regardless of locale.
type MatchPresentation struct {
	Rating       float64       `json:"rating"`
	Tier         string        `json:"tier"`
	TierLabel    string        `json:"tierLabel"`
	TierColor    string        `json:"tierColor"`
	Headline     string        `json:"headline,omitempty"`
	Summary      string        `json:"summary,omitempty"`
	Comment      string        `json:"comment,omitempty"`
	KeyTakeaways []string      `json:"keyTakeaways,omitempty"`
	BestFor      string        `json:"bestFor,omitempty"`
	WatchIf      string        `json:"watchIf,omitempty"`
	Verdict      *VerdictBadge `json:"verdict,omitempty"`
	DateLong     string        `json:"dateLong"`
	DateShort    string        `json:"dateShort"`
	TipoffET     string        `json:"tipoffEt"`
}

// VerdictBadge renders the verdict recommendation with the same tier colors
// as the rating badge.
type VerdictBadge struct {
	Recommendation string `json:"recommendation"`
	Label          string `json:"label"`
	Color          string `json:"color"`
}

func newMatchView(m matches.Match, locale i18n.Locale) MatchView {
	r := rating.Normalize(m.Analysis)
	class := rating.Classify(r)
	et := m.ScheduledAt.In(timeutil.ReferenceLocation())

	p := MatchPresentation{
		Rating:    r,
		Tier:      string(class.Tier),
		TierLabel: class.Label(locale),
		TierColor: class.Color,
		DateLong:  timeutil.FormatLong(et, locale),
		DateShort: timeutil.FormatShort(et, locale),
		TipoffET:  timeutil.FormatTimeET(m.ScheduledAt),
	}
	if a := m.Analysis; a != nil {
		p.Headline, _ = a.Headline.Resolve(locale)
		p.Summary, _ = a.Summary.Resolve(locale)
		p.Comment, _ = a.Comment.Resolve(locale)
		p.KeyTakeaways, _ = a.KeyTakeaways.Resolve(locale)
		if a.Verdict != nil {
			p.BestFor, _ = a.Verdict.BestFor.Resolve(locale)
			p.WatchIf, _ = a.Verdict.WatchIf.Resolve(locale)
			if a.Verdict.Recommendation != "" {
				vc := rating.ForRecommendation(a.Verdict.Recommendation)
				p.Verdict = &VerdictBadge{
					Recommendation: a.Verdict.Recommendation,
					Label:          vc.Label(locale),
					Color:          vc.Color,
				}
			}
		}
	}
	return MatchView{Match: m, Presentation: p}
}

func newMatchViews(ms []matches.Match, locale i18n.Locale) []MatchView {
	views := make([]MatchView, 0, len(ms))
	for _, m := range ms {
		views = append(views, newMatchView(m, locale))
	}
	return views
}
