// Package standings serves the season standings split by conference.
package standings

import (
	"context"
	"log/slog"

	"github.com/reggie-app/reggie-api/internal/domain/matches"
	"github.com/reggie-app/reggie-api/internal/domain/teams"
	"github.com/reggie-app/reggie-api/internal/logging"
	"github.com/reggie-app/reggie-api/internal/store"
)

// Store is the read surface the service needs.
type Store interface {
	Standings(ctx context.Context, season int) ([]store.StandingRow, error)
}

// Table is the standings response, one ranked list per conference.
type Table struct {
	East []matches.Standing `json:"east"`
	West []matches.Standing `json:"west"`
}

// Service assembles the standings table for one season.
type Service struct {
	store  Store
	logger *slog.Logger
	season int
}

// NewService builds a standings service bound to a season.
func NewService(st Store, logger *slog.Logger, season int) *Service {
	return &Service{store: st, logger: logger, season: season}
}

// Table returns the season standings partitioned by conference, each side
// ordered by conference rank. Store failures degrade to an empty table.
func (s *Service) Table(ctx context.Context) Table {
	rows, err := s.store.Standings(ctx, s.season)
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "listing standings failed", err)
		return Table{}
	}

	var table Table
	for _, row := range rows {
		team := resolveTeam(row.Team)
		standing := matches.Standing{
			Team:           team,
			Conference:     team.Conference,
			ConferenceRank: row.ConferenceRank,
			Wins:           row.Wins,
			Losses:         row.Losses,
			WinPct:         row.WinPct,
			LastTen:        row.LastTen,
			Streak:         row.Streak,
			GamesBehind:    row.GamesBehind,
			HomeRecord:     row.HomeRecord,
			AwayRecord:     row.AwayRecord,
		}
		if team.Conference == teams.West {
			table.West = append(table.West, standing)
		} else {
			table.East = append(table.East, standing)
		}
	}
	return table
}

func resolveTeam(row store.TeamRow) teams.Team {
	if team, ok := teams.ByAbbreviation(row.Abbreviation); ok {
		return team
	}
	return teams.Fallback(row.Abbreviation, row.Name, row.City)
}
