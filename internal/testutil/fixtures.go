package testutil

import (
	"time"

	"github.com/reggie-app/reggie-api/internal/store"
)

// GameRow builds a minimal store row between two catalog teams.
func GameRow(id, awayAbbr, homeAbbr string, scheduledAt time.Time, status string) store.GameRow {
	return store.GameRow{
		ID:          id,
		NBAGameID:   "00" + id,
		ScheduledAt: scheduledAt,
		Status:      status,
		AwayTeam:    store.TeamRow{Abbreviation: awayAbbr},
		HomeTeam:    store.TeamRow{Abbreviation: homeAbbr},
	}
}

// AnalyzedGameRow builds a finished, analyzed store row with the given
// composite interest score (0-100 scale).
func AnalyzedGameRow(id, awayAbbr, homeAbbr string, scheduledAt time.Time, score float64) store.GameRow {
	row := GameRow(id, awayAbbr, homeAbbr, scheduledAt, "finished")
	row.Analyses = []store.AnalysisRow{{
		ID:                 "a-" + id,
		Type:               "post",
		MatchInterestScore: &score,
		CreatedAt:          scheduledAt.Add(3 * time.Hour),
	}}
	return row
}
