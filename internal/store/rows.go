package store

import "time"

// GameRow is the raw shape of one game as returned by the query interface:
// the game record, its nested team sub-rows, and zero-or-many analysis rows.
// Assembly into a domain Match happens in the app layer.
type GameRow struct {
	ID          string
	NBAGameID   string
	ScheduledAt time.Time
	Status      string
	HomeScore   *int
	AwayScore   *int
	HomeTeam    TeamRow
	AwayTeam    TeamRow
	Analyses    []AnalysisRow
}

// TeamRow is the nested team sub-record on a game row.
type TeamRow struct {
	Abbreviation string
	Name         string
	City         string
}

// AnalysisRow mirrors one game_analyses record, including its decoded JSONB
// documents. Localized columns come in `{field}` / `{field}_fr` /
// `{field}_en` triples.
type AnalysisRow struct {
	ID                 string
	Type               string
	Rating             *float64
	MatchInterestScore *float64
	Headline           string
	HeadlineFR         string
	HeadlineEN         string
	Summary            string
	SummaryFR          string
	SummaryEN          string
	CommentFR          string
	CommentEN          string
	KeyTakeaways       []string
	KeyTakeawaysFR     []string
	KeyTakeawaysEN     []string
	InterestBreakdown  *InterestBreakdownDoc
	PrematchBreakdown  *PrematchBreakdownDoc
	StandoutPlayers    []StandoutPlayerDoc
	GameDynamics       *GameDynamicsDoc
	Verdict            *VerdictDoc
	CreatedAt          time.Time
}

// InterestBreakdownDoc is the post-match score breakdown JSONB document.
type InterestBreakdownDoc struct {
	Stakes       float64 `json:"stakes"`
	StarPower    float64 `json:"star_power"`
	Performances float64 `json:"performances"`
	ClutchFactor float64 `json:"clutch_factor"`
}

// PrematchBreakdownDoc is the pre-match score breakdown JSONB document.
type PrematchBreakdownDoc struct {
	Stakes          float64 `json:"stakes"`
	StarPower       float64 `json:"star_power"`
	RecentForm      float64 `json:"recent_form"`
	Rivalry         float64 `json:"rivalry,omitempty"`
	ScheduleContext float64 `json:"schedule_context,omitempty"`
}

// StandoutPlayerDoc is one entry of the standout_players JSONB array.
type StandoutPlayerDoc struct {
	Name           string `json:"name"`
	Team           string `json:"team"`
	Contribution   string `json:"contribution"`
	ContributionFR string `json:"contribution_fr,omitempty"`
	ContributionEN string `json:"contribution_en,omitempty"`
}

// GameDynamicsDoc is the game_dynamics JSONB document.
type GameDynamicsDoc struct {
	Pace            string `json:"pace"`
	Physicality     string `json:"physicality"`
	ShootingQuality string `json:"shooting_quality"`
}

// VerdictDoc is the verdict JSONB document.
type VerdictDoc struct {
	Recommendation string `json:"recommendation"`
	BestFor        string `json:"best_for"`
	BestForFR      string `json:"best_for_fr,omitempty"`
	BestForEN      string `json:"best_for_en,omitempty"`
	WatchIf        string `json:"watch_if"`
	WatchIfFR      string `json:"watch_if_fr,omitempty"`
	WatchIfEN      string `json:"watch_if_en,omitempty"`
}

// StandingRow is one standings record joined to its team sub-row.
type StandingRow struct {
	Team           TeamRow
	ConferenceRank int
	Wins           int
	Losses         int
	WinPct         float64
	LastTen        string
	Streak         string
	GamesBehind    *float64
	HomeRecord     string
	AwayRecord     string
}
