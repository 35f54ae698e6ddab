// Package store is the read-only fetch boundary over the relational data
// store. It returns raw rows; all derivation (slugs, ratings, locale
// resolution) happens in the app layer.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/reggie-app/reggie-api/internal/logging"
	"github.com/reggie-app/reggie-api/internal/metrics"
)

// ErrNotFound reports that a lookup matched no row.
var ErrNotFound = errors.New("not found")

// Open connects to Postgres and verifies the connection.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	return db, nil
}

// Postgres executes the read queries against the managed store.
type Postgres struct {
	db      *sql.DB
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewPostgres wraps an open connection pool.
func NewPostgres(db *sql.DB, logger *slog.Logger, recorder *metrics.Recorder) *Postgres {
	return &Postgres{db: db, logger: logger, metrics: recorder}
}

// gameSelect is the shared projection for game rows. The %s slot takes the
// analysis join: LEFT JOIN when unanalyzed games are wanted, JOIN otherwise.
const gameSelect = `
SELECT g.id, g.nba_game_id, g.scheduled_at, g.status, g.home_score, g.away_score,
       ht.abbreviation, ht.name, ht.city,
       aw.abbreviation, aw.name, aw.city,
       a.id, a.type, a.rating, a.match_interest_score,
       a.headline, a.headline_fr, a.headline_en,
       a.summary, a.summary_fr, a.summary_en,
       a.comment_fr, a.comment_en,
       a.key_takeaways, a.key_takeaways_fr, a.key_takeaways_en,
       a.interest_breakdown, a.prematch_breakdown,
       a.standout_players, a.game_dynamics, a.verdict,
       a.created_at
FROM games g
JOIN teams ht ON ht.id = g.home_team_id
JOIN teams aw ON aw.id = g.away_team_id
%s game_analyses a ON a.match_id = g.id`

// MatchesBetween returns games scheduled in [start, end), with their teams
// and analyses. When analyzedOnly is set, games without an analysis are
// excluded.
func (p *Postgres) MatchesBetween(ctx context.Context, start, end time.Time, analyzedOnly bool) ([]GameRow, error) {
	join := "LEFT JOIN"
	if analyzedOnly {
		join = "JOIN"
	}
	query := fmt.Sprintf(gameSelect, join) + `
WHERE g.scheduled_at >= $1 AND g.scheduled_at < $2
ORDER BY g.scheduled_at ASC, g.id, a.created_at ASC`

	return p.queryGames(ctx, "matches_between", query, start, end)
}

// TeamIDByAbbreviation resolves a team's store id, case-insensitively.
func (p *Postgres) TeamIDByAbbreviation(ctx context.Context, abbr string) (string, error) {
	started := time.Now()
	var id string
	err := p.db.QueryRowContext(ctx,
		`SELECT id FROM teams WHERE UPPER(abbreviation) = UPPER($1)`, abbr).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
	}
	p.observe(ctx, "team_id_by_abbreviation", started, err)
	if err != nil {
		return "", err
	}
	return id, nil
}

// TeamMatches returns the team's most recent analyzed games, newest first.
func (p *Postgres) TeamMatches(ctx context.Context, teamID string, limit int) ([]GameRow, error) {
	query := fmt.Sprintf(gameSelect, "JOIN") + `
WHERE g.id IN (
    SELECT g2.id FROM games g2
    JOIN game_analyses a2 ON a2.match_id = g2.id
    WHERE g2.home_team_id = $1 OR g2.away_team_id = $1
    GROUP BY g2.id, g2.scheduled_at
    ORDER BY g2.scheduled_at DESC
    LIMIT $2)
ORDER BY g.scheduled_at DESC, g.id, a.created_at ASC`

	return p.queryGames(ctx, "team_matches", query, teamID, limit)
}

// RelatedMatches returns a team's recent finished analyzed games, excluding
// one game id, newest first.
func (p *Postgres) RelatedMatches(ctx context.Context, teamID, excludeID string, limit int) ([]GameRow, error) {
	query := fmt.Sprintf(gameSelect, "JOIN") + `
WHERE g.id IN (
    SELECT g2.id FROM games g2
    JOIN game_analyses a2 ON a2.match_id = g2.id
    WHERE (g2.home_team_id = $1 OR g2.away_team_id = $1)
      AND g2.id <> $2
      AND g2.status = 'finished'
    GROUP BY g2.id, g2.scheduled_at
    ORDER BY g2.scheduled_at DESC
    LIMIT $3)
ORDER BY g.scheduled_at DESC, g.id, a.created_at ASC`

	return p.queryGames(ctx, "related_matches", query, teamID, excludeID, limit)
}

// UpcomingMatches returns a team's next scheduled games from `now` on,
// soonest first.
func (p *Postgres) UpcomingMatches(ctx context.Context, teamID string, now time.Time, limit int) ([]GameRow, error) {
	query := fmt.Sprintf(gameSelect, "LEFT JOIN") + `
WHERE g.id IN (
    SELECT g2.id FROM games g2
    WHERE (g2.home_team_id = $1 OR g2.away_team_id = $1)
      AND g2.status = 'scheduled'
      AND g2.scheduled_at >= $2
    ORDER BY g2.scheduled_at ASC
    LIMIT $3)
ORDER BY g.scheduled_at ASC, g.id, a.created_at ASC`

	return p.queryGames(ctx, "upcoming_matches", query, teamID, now, limit)
}

// AllAnalyzed returns every analyzed game, newest first. The sitemap
// enumeration consumes this.
func (p *Postgres) AllAnalyzed(ctx context.Context) ([]GameRow, error) {
	query := fmt.Sprintf(gameSelect, "JOIN") + `
ORDER BY g.scheduled_at DESC, g.id, a.created_at ASC`

	return p.queryGames(ctx, "all_analyzed", query)
}

// Standings returns the season's standings rows ordered by conference rank.
func (p *Postgres) Standings(ctx context.Context, season int) ([]StandingRow, error) {
	started := time.Now()
	query := `
SELECT s.conference_rank, s.wins, s.losses, s.win_pct, s.last_10, s.streak,
       s.games_behind, s.home_record, s.away_record,
       t.abbreviation, t.name, t.city
FROM standings s
JOIN teams t ON t.id = s.team_id
WHERE s.season = $1
ORDER BY s.conference_rank ASC`

	rows, err := p.db.QueryContext(ctx, query, season)
	if err != nil {
		p.observe(ctx, "standings", started, err)
		return nil, fmt.Errorf("query standings: %w", err)
	}
	defer rows.Close()

	var result []StandingRow
	for rows.Next() {
		var (
			s                      StandingRow
			lastTen, streak        sql.NullString
			homeRecord, awayRecord sql.NullString
			gamesBehind            sql.NullFloat64
		)
		if err := rows.Scan(
			&s.ConferenceRank, &s.Wins, &s.Losses, &s.WinPct, &lastTen, &streak,
			&gamesBehind, &homeRecord, &awayRecord,
			&s.Team.Abbreviation, &s.Team.Name, &s.Team.City,
		); err != nil {
			p.observe(ctx, "standings", started, err)
			return nil, fmt.Errorf("scan standings: %w", err)
		}
		s.LastTen = lastTen.String
		s.Streak = streak.String
		s.HomeRecord = homeRecord.String
		s.AwayRecord = awayRecord.String
		if gamesBehind.Valid {
			s.GamesBehind = &gamesBehind.Float64
		}
		result = append(result, s)
	}
	err = rows.Err()
	p.observe(ctx, "standings", started, err)
	if err != nil {
		return nil, fmt.Errorf("iterate standings: %w", err)
	}
	return result, nil
}

func (p *Postgres) queryGames(ctx context.Context, name, query string, args ...any) ([]GameRow, error) {
	started := time.Now()
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		p.observe(ctx, name, started, err)
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	games, err := scanGames(rows)
	p.observe(ctx, name, started, err)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", name, err)
	}
	return games, nil
}

func (p *Postgres) observe(ctx context.Context, name string, started time.Time, err error) {
	p.metrics.RecordStoreQuery(name, time.Since(started), err)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logging.Error(logging.FromContext(ctx, p.logger), "store query failed", err, logging.FieldQuery, name)
	}
}

// scanGames reads joined game/analysis rows and groups them per game,
// preserving row order and analysis order within a game.
func scanGames(rows *sql.Rows) ([]GameRow, error) {
	var games []GameRow
	index := make(map[string]int)

	for rows.Next() {
		var (
			g                    GameRow
			homeScore, awayScore sql.NullInt64

			aID, aType                       sql.NullString
			aRating, aScore                  sql.NullFloat64
			headline, headlineFR, headlineEN sql.NullString
			summary, summaryFR, summaryEN    sql.NullString
			commentFR, commentEN             sql.NullString
			takeaways, takeawaysFR           []byte
			takeawaysEN                      []byte
			interestDoc, prematchDoc         []byte
			playersDoc, dynamicsDoc          []byte
			verdictDoc                       []byte
			aCreated                         sql.NullTime
		)

		if err := rows.Scan(
			&g.ID, &g.NBAGameID, &g.ScheduledAt, &g.Status, &homeScore, &awayScore,
			&g.HomeTeam.Abbreviation, &g.HomeTeam.Name, &g.HomeTeam.City,
			&g.AwayTeam.Abbreviation, &g.AwayTeam.Name, &g.AwayTeam.City,
			&aID, &aType, &aRating, &aScore,
			&headline, &headlineFR, &headlineEN,
			&summary, &summaryFR, &summaryEN,
			&commentFR, &commentEN,
			&takeaways, &takeawaysFR, &takeawaysEN,
			&interestDoc, &prematchDoc,
			&playersDoc, &dynamicsDoc, &verdictDoc,
			&aCreated,
		); err != nil {
			return nil, err
		}

		if homeScore.Valid {
			v := int(homeScore.Int64)
			g.HomeScore = &v
		}
		if awayScore.Valid {
			v := int(awayScore.Int64)
			g.AwayScore = &v
		}

		idx, seen := index[g.ID]
		if !seen {
			index[g.ID] = len(games)
			games = append(games, g)
			idx = len(games) - 1
		}

		if !aID.Valid {
			continue
		}
		analysis := AnalysisRow{
			ID:         aID.String,
			Type:       aType.String,
			Headline:   headline.String,
			HeadlineFR: headlineFR.String,
			HeadlineEN: headlineEN.String,
			Summary:    summary.String,
			SummaryFR:  summaryFR.String,
			SummaryEN:  summaryEN.String,
			CommentFR:  commentFR.String,
			CommentEN:  commentEN.String,
			CreatedAt:  aCreated.Time,
		}
		if aRating.Valid {
			analysis.Rating = &aRating.Float64
		}
		if aScore.Valid {
			analysis.MatchInterestScore = &aScore.Float64
		}

		var err error
		if analysis.KeyTakeaways, err = decodeStrings(takeaways); err != nil {
			return nil, err
		}
		if analysis.KeyTakeawaysFR, err = decodeStrings(takeawaysFR); err != nil {
			return nil, err
		}
		if analysis.KeyTakeawaysEN, err = decodeStrings(takeawaysEN); err != nil {
			return nil, err
		}
		if analysis.InterestBreakdown, err = decodeDoc[InterestBreakdownDoc](interestDoc); err != nil {
			return nil, err
		}
		if analysis.PrematchBreakdown, err = decodeDoc[PrematchBreakdownDoc](prematchDoc); err != nil {
			return nil, err
		}
		if analysis.StandoutPlayers, err = decodeSlice[StandoutPlayerDoc](playersDoc); err != nil {
			return nil, err
		}
		if analysis.GameDynamics, err = decodeDoc[GameDynamicsDoc](dynamicsDoc); err != nil {
			return nil, err
		}
		if analysis.Verdict, err = decodeDoc[VerdictDoc](verdictDoc); err != nil {
			return nil, err
		}

		games[idx].Analyses = append(games[idx].Analyses, analysis)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

func decodeStrings(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode string list: %w", err)
	}
	return out, nil
}

func decodeDoc[T any](raw []byte) (*T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &out, nil
}

func decodeSlice[T any](raw []byte) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}
