// Package matches assembles domain matches from store rows and implements
// the listing, lookup, and rail operations behind the HTTP handlers.
package matches

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reggie-app/reggie-api/internal/domain/matches"
	"github.com/reggie-app/reggie-api/internal/domain/teams"
	"github.com/reggie-app/reggie-api/internal/logging"
	"github.com/reggie-app/reggie-api/internal/slug"
	"github.com/reggie-app/reggie-api/internal/store"
	"github.com/reggie-app/reggie-api/internal/timeutil"
)

// ErrNotFound reports that no match answers to the requested slug. Malformed
// slugs map here too; the router treats both as a plain 404.
var ErrNotFound = errors.New("match not found")

const (
	// teamHistoryLimit caps the team page match list.
	teamHistoryLimit = 20
	// railLimit caps each match page rail after merging both teams.
	railLimit = 4
	// railPerTeamLimit is how many games each team contributes to a rail.
	railPerTeamLimit = 2
)

// Store is the read surface the service needs. *store.Postgres satisfies it;
// tests substitute a stub.
type Store interface {
	MatchesBetween(ctx context.Context, start, end time.Time, analyzedOnly bool) ([]store.GameRow, error)
	TeamIDByAbbreviation(ctx context.Context, abbr string) (string, error)
	TeamMatches(ctx context.Context, teamID string, limit int) ([]store.GameRow, error)
	RelatedMatches(ctx context.Context, teamID, excludeID string, limit int) ([]store.GameRow, error)
	UpcomingMatches(ctx context.Context, teamID string, now time.Time, limit int) ([]store.GameRow, error)
	AllAnalyzed(ctx context.Context) ([]store.GameRow, error)
}

// Service assembles matches for the read API. Listing operations degrade to
// an empty result when the store fails; only the single-match lookup
// propagates upstream failures.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// NewService builds a match service using the wall clock.
func NewService(st Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger, now: time.Now}
}

// Yesterday lists yesterday's analyzed games, best first. Yesterday is the
// previous calendar day in the reference timezone regardless of display
// locale.
func (s *Service) Yesterday(ctx context.Context) []matches.Match {
	start, end := timeutil.YesterdayRange(s.now())
	rows, err := s.store.MatchesBetween(ctx, start, end, true)
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "listing yesterday's matches failed", err)
		return nil
	}
	result := s.assembleAll(rows)
	sortByInterest(result)
	return result
}

// Today lists today's games in the reference timezone, analyzed or not,
// best first with earlier tipoffs breaking ties.
func (s *Service) Today(ctx context.Context) []matches.Match {
	start, end := timeutil.TodayRange(s.now())
	rows, err := s.store.MatchesBetween(ctx, start, end, false)
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "listing today's matches failed", err)
		return nil
	}
	result := s.assembleAll(rows)
	sortByInterest(result)
	return result
}

// BySlug resolves a match page slug. The decoder only recovers the segment
// boundaries and the date; identity is settled by re-encoding every game of
// that UTC day and comparing the full slug string.
func (s *Service) BySlug(ctx context.Context, matchSlug string) (matches.Match, error) {
	parts, err := slug.Parse(matchSlug)
	if err != nil {
		return matches.Match{}, ErrNotFound
	}
	start, end, err := timeutil.UTCDayRange(parts.Date)
	if err != nil {
		return matches.Match{}, ErrNotFound
	}

	rows, err := s.store.MatchesBetween(ctx, start, end, false)
	if err != nil {
		return matches.Match{}, fmt.Errorf("lookup match %q: %w", matchSlug, err)
	}
	for _, row := range rows {
		if m := s.assemble(row); m.Slug == matchSlug {
			return m, nil
		}
	}
	return matches.Match{}, ErrNotFound
}

// TeamFilter selects the ordering of a team's match history.
type TeamFilter string

const (
	// FilterRecent orders by date, newest first. This is the default.
	FilterRecent TeamFilter = "recent"
	// FilterBest orders by rating, best first.
	FilterBest TeamFilter = "best"
)

// ParseFilter maps a raw query value onto a filter, defaulting to recent.
func ParseFilter(raw string) TeamFilter {
	if raw == string(FilterBest) {
		return FilterBest
	}
	return FilterRecent
}

// TeamMatches lists a team's analyzed games. A team absent from the store
// has simply played no tracked games yet, so both that case and store
// failures yield an empty list.
func (s *Service) TeamMatches(ctx context.Context, abbr string, filter TeamFilter) []matches.Match {
	logger := logging.FromContext(ctx, s.logger)

	teamID, err := s.store.TeamIDByAbbreviation(ctx, abbr)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logging.Error(logger, "resolving team failed", err, logging.FieldTeam, abbr)
		}
		return nil
	}
	rows, err := s.store.TeamMatches(ctx, teamID, teamHistoryLimit)
	if err != nil {
		logging.Error(logger, "listing team matches failed", err, logging.FieldTeam, abbr)
		return nil
	}

	result := s.assembleAll(rows)
	if filter == FilterBest {
		sortByRating(result)
	}
	return result
}

// Rails returns the two match page rails: recent finished games of either
// team, and either team's next scheduled games. Each rail concatenates the
// away team's fetch then the home team's, drops duplicate games keeping the
// first, and truncates; the merged fetch order is the response order. Rails
// degrade independently, so one failed fetch never empties the other.
func (s *Service) Rails(ctx context.Context, m matches.Match) (related, upcoming []matches.Match) {
	awayID, homeID := s.railTeamIDs(ctx, m)

	var g errgroup.Group
	g.Go(func() error {
		related = s.relatedRail(ctx, m, awayID, homeID)
		return nil
	})
	g.Go(func() error {
		upcoming = s.upcomingRail(ctx, m, awayID, homeID)
		return nil
	})
	_ = g.Wait()
	return related, upcoming
}

// AllAnalyzed lists every analyzed game, newest first, for sitemap
// enumeration. Failures degrade to an empty list.
func (s *Service) AllAnalyzed(ctx context.Context) []matches.Match {
	rows, err := s.store.AllAnalyzed(ctx)
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "listing analyzed matches failed", err)
		return nil
	}
	return s.assembleAll(rows)
}

func (s *Service) railTeamIDs(ctx context.Context, m matches.Match) (awayID, homeID string) {
	logger := logging.FromContext(ctx, s.logger)
	resolve := func(abbr string) string {
		id, err := s.store.TeamIDByAbbreviation(ctx, abbr)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				logging.Error(logger, "resolving rail team failed", err, logging.FieldTeam, abbr)
			}
			return ""
		}
		return id
	}
	return resolve(m.AwayTeam.Abbreviation), resolve(m.HomeTeam.Abbreviation)
}

func (s *Service) relatedRail(ctx context.Context, m matches.Match, awayID, homeID string) []matches.Match {
	logger := logging.FromContext(ctx, s.logger)
	var merged []matches.Match
	for _, teamID := range []string{awayID, homeID} {
		if teamID == "" {
			continue
		}
		rows, err := s.store.RelatedMatches(ctx, teamID, m.ID, railPerTeamLimit)
		if err != nil {
			logging.Error(logger, "fetching related matches failed", err)
			continue
		}
		merged = append(merged, s.assembleAll(rows)...)
	}
	return truncate(dedupeByID(merged), railLimit)
}

func (s *Service) upcomingRail(ctx context.Context, m matches.Match, awayID, homeID string) []matches.Match {
	logger := logging.FromContext(ctx, s.logger)
	now := s.now()
	var merged []matches.Match
	for _, teamID := range []string{awayID, homeID} {
		if teamID == "" {
			continue
		}
		rows, err := s.store.UpcomingMatches(ctx, teamID, now, railPerTeamLimit)
		if err != nil {
			logging.Error(logger, "fetching upcoming matches failed", err)
			continue
		}
		for _, row := range rows {
			if row.ID == m.ID {
				continue
			}
			merged = append(merged, s.assemble(row))
		}
	}
	return truncate(dedupeByID(merged), railLimit)
}

func (s *Service) assembleAll(rows []store.GameRow) []matches.Match {
	result := make([]matches.Match, 0, len(rows))
	for _, row := range rows {
		result = append(result, s.assemble(row))
	}
	return result
}

// assemble enriches a store row into a domain match: catalog teams (with a
// neutral fallback for unknown abbreviations), the first analysis mapped to
// the breakdown shape the match status calls for, and the canonical slug.
func (s *Service) assemble(row store.GameRow) matches.Match {
	home := resolveTeam(row.HomeTeam)
	away := resolveTeam(row.AwayTeam)
	status := matches.Status(row.Status)

	m := matches.Match{
		ID:          row.ID,
		NBAGameID:   row.NBAGameID,
		HomeTeam:    home,
		AwayTeam:    away,
		ScheduledAt: row.ScheduledAt,
		Status:      status,
		HomeScore:   row.HomeScore,
		AwayScore:   row.AwayScore,
		Slug:        slug.ForMatch(away.City, away.Name, home.City, home.Name, row.ScheduledAt),
	}
	if len(row.Analyses) > 0 {
		m.Analysis = toAnalysis(row.ID, row.Analyses[0], status)
	}
	return m
}

func resolveTeam(row store.TeamRow) teams.Team {
	if team, ok := teams.ByAbbreviation(row.Abbreviation); ok {
		return team
	}
	return teams.Fallback(row.Abbreviation, row.Name, row.City)
}

func toAnalysis(matchID string, row store.AnalysisRow, status matches.Status) *matches.Analysis {
	a := &matches.Analysis{
		ID:                 row.ID,
		MatchID:            matchID,
		Type:               matches.AnalysisType(row.Type),
		Rating:             row.Rating,
		MatchInterestScore: row.MatchInterestScore,
		Headline:           newText(row.Headline, row.HeadlineFR, row.HeadlineEN),
		Summary:            newText(row.Summary, row.SummaryFR, row.SummaryEN),
		Comment:            newText("", row.CommentFR, row.CommentEN),
		KeyTakeaways:       newTextList(row.KeyTakeaways, row.KeyTakeawaysFR, row.KeyTakeawaysEN),
		CreatedAt:          row.CreatedAt,
	}

	// A finished match shows the post-match breakdown, anything earlier the
	// pre-match one. The store may carry both; the response never does.
	if status == matches.StatusFinished {
		if row.InterestBreakdown != nil {
			a.InterestBreakdown = &matches.InterestBreakdown{
				Stakes:       row.InterestBreakdown.Stakes,
				StarPower:    row.InterestBreakdown.StarPower,
				Performances: row.InterestBreakdown.Performances,
				ClutchFactor: row.InterestBreakdown.ClutchFactor,
			}
		}
	} else if row.PrematchBreakdown != nil {
		a.PrematchBreakdown = &matches.PrematchBreakdown{
			Stakes:          row.PrematchBreakdown.Stakes,
			StarPower:       row.PrematchBreakdown.StarPower,
			RecentForm:      row.PrematchBreakdown.RecentForm,
			Rivalry:         row.PrematchBreakdown.Rivalry,
			ScheduleContext: row.PrematchBreakdown.ScheduleContext,
		}
	}

	for _, p := range row.StandoutPlayers {
		a.StandoutPlayers = append(a.StandoutPlayers, matches.StandoutPlayer{
			Name:         p.Name,
			Team:         p.Team,
			Contribution: newText(p.Contribution, p.ContributionFR, p.ContributionEN),
		})
	}
	if row.GameDynamics != nil {
		a.GameDynamics = &matches.GameDynamics{
			Pace:            row.GameDynamics.Pace,
			Physicality:     row.GameDynamics.Physicality,
			ShootingQuality: row.GameDynamics.ShootingQuality,
		}
	}
	if row.Verdict != nil {
		a.Verdict = &matches.Verdict{
			Recommendation: row.Verdict.Recommendation,
			BestFor:        newText(row.Verdict.BestFor, row.Verdict.BestForFR, row.Verdict.BestForEN),
			WatchIf:        newText(row.Verdict.WatchIf, row.Verdict.WatchIfFR, row.Verdict.WatchIfEN),
		}
	}
	return a
}
