// Package matches defines the match, analysis, and standings shapes served
// by the API. Matches are assembled per request from store rows and never
// persisted by this layer.
package matches

import (
	"time"

	"github.com/reggie-app/reggie-api/internal/domain/teams"
	"github.com/reggie-app/reggie-api/internal/i18n"
)

// Status is the lifecycle state of a game.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// Match is one scheduled or completed game, enriched with catalog teams and
// its canonical slug. The slug is always recomputable from the team cities,
// names, and the scheduled date.
type Match struct {
	ID          string      `json:"id"`
	NBAGameID   string      `json:"nbaGameId"`
	HomeTeam    teams.Team  `json:"homeTeam"`
	AwayTeam    teams.Team  `json:"awayTeam"`
	ScheduledAt time.Time   `json:"scheduledAt"`
	Status      Status      `json:"status"`
	HomeScore   *int        `json:"homeScore,omitempty"`
	AwayScore   *int        `json:"awayScore,omitempty"`
	Analysis    *Analysis   `json:"analysis,omitempty"`
	Slug        string      `json:"slug"`
}

// AnalysisType distinguishes pre-match previews from post-match reviews.
type AnalysisType string

const (
	AnalysisPre  AnalysisType = "pre"
	AnalysisPost AnalysisType = "post"
)

// Analysis is the editorial payload attached to a match. Exactly one of the
// two breakdown shapes is populated, selected by match status.
type Analysis struct {
	ID                 string             `json:"id"`
	MatchID            string             `json:"matchId"`
	Type               AnalysisType       `json:"type"`
	Rating             *float64           `json:"rating,omitempty"`
	MatchInterestScore *float64           `json:"matchInterestScore,omitempty"`
	Headline           i18n.Text          `json:"headline"`
	Summary            i18n.Text          `json:"summary"`
	Comment            i18n.Text          `json:"comment"`
	KeyTakeaways       i18n.TextList      `json:"keyTakeaways"`
	InterestBreakdown  *InterestBreakdown `json:"interestBreakdown,omitempty"`
	PrematchBreakdown  *PrematchBreakdown `json:"prematchBreakdown,omitempty"`
	StandoutPlayers    []StandoutPlayer   `json:"standoutPlayers,omitempty"`
	GameDynamics       *GameDynamics      `json:"gameDynamics,omitempty"`
	Verdict            *Verdict           `json:"verdict,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// InterestBreakdown scores a finished game; the components sum to 100.
type InterestBreakdown struct {
	Stakes       float64 `json:"stakes"`
	StarPower    float64 `json:"starPower"`
	Performances float64 `json:"performances"`
	ClutchFactor float64 `json:"clutchFactor"`
}

// PrematchBreakdown scores an upcoming game; the components sum to 100.
type PrematchBreakdown struct {
	Stakes          float64 `json:"stakes"`
	StarPower       float64 `json:"starPower"`
	RecentForm      float64 `json:"recentForm"`
	Rivalry         float64 `json:"rivalry,omitempty"`
	ScheduleContext float64 `json:"scheduleContext,omitempty"`
}

// StandoutPlayer highlights one player's contribution in a finished game.
type StandoutPlayer struct {
	Name         string    `json:"name"`
	Team         string    `json:"team"`
	Contribution i18n.Text `json:"contribution"`
}

// GameDynamics captures the qualitative feel of a finished game.
type GameDynamics struct {
	Pace            string `json:"pace"`
	Physicality     string `json:"physicality"`
	ShootingQuality string `json:"shootingQuality"`
}

// Verdict is the editorial recommendation attached to an analysis.
type Verdict struct {
	Recommendation string    `json:"recommendation"`
	BestFor        i18n.Text `json:"bestFor"`
	WatchIf        i18n.Text `json:"watchIf"`
}

// Standing is a per-team, per-season aggregate recomputed upstream.
type Standing struct {
	Team           teams.Team       `json:"team"`
	Conference     teams.Conference `json:"conference"`
	ConferenceRank int              `json:"conferenceRank"`
	Wins           int              `json:"wins"`
	Losses         int              `json:"losses"`
	WinPct         float64          `json:"winPct"`
	LastTen        string           `json:"lastTen"`
	Streak         string           `json:"streak"`
	GamesBehind    *float64         `json:"gamesBehind,omitempty"`
	HomeRecord     string           `json:"homeRecord,omitempty"`
	AwayRecord     string           `json:"awayRecord,omitempty"`
}
