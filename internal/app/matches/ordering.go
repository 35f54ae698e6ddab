package matches

import (
	"sort"

	"github.com/reggie-app/reggie-api/internal/domain/matches"
	"github.com/reggie-app/reggie-api/internal/i18n"
	"github.com/reggie-app/reggie-api/internal/rating"
)

// sortByInterest orders best game first, with earlier tipoffs breaking ties.
func sortByInterest(ms []matches.Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		ri, rj := rating.Normalize(ms[i].Analysis), rating.Normalize(ms[j].Analysis)
		if ri != rj {
			return ri > rj
		}
		return ms[i].ScheduledAt.Before(ms[j].ScheduledAt)
	})
}

// sortByRating orders best game first, preserving the incoming order for
// equal ratings.
func sortByRating(ms []matches.Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		return rating.Normalize(ms[i].Analysis) > rating.Normalize(ms[j].Analysis)
	})
}

// dedupeByID drops later duplicates, keeping the first occurrence. Rails
// merge per-team fetches, so a game between the two teams shows up twice.
func dedupeByID(ms []matches.Match) []matches.Match {
	seen := make(map[string]struct{}, len(ms))
	out := ms[:0]
	for _, m := range ms {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}

func truncate(ms []matches.Match, limit int) []matches.Match {
	if len(ms) > limit {
		return ms[:limit]
	}
	return ms
}

func newText(base, fr, en string) i18n.Text {
	return i18n.NewText(base, fr, en)
}

func newTextList(base, fr, en []string) i18n.TextList {
	return i18n.TextList{Base: base, FR: fr, EN: en}
}
