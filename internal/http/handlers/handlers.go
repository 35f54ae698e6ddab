// Package handlers implements the HTTP endpoints over the app services.
// Every content endpoint takes a `lang` query parameter (fr or en, default
// fr) that selects the presentation locale; day boundaries always follow the
// reference timezone.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	appmatches "github.com/reggie-app/reggie-api/internal/app/matches"
	appstandings "github.com/reggie-app/reggie-api/internal/app/standings"
	"github.com/reggie-app/reggie-api/internal/domain/matches"
	"github.com/reggie-app/reggie-api/internal/domain/teams"
	"github.com/reggie-app/reggie-api/internal/i18n"
	"github.com/reggie-app/reggie-api/internal/seo"
	"github.com/reggie-app/reggie-api/internal/sitemap"
	"github.com/reggie-app/reggie-api/internal/timeutil"
)

// Deps are the collaborators a Handler needs.
type Deps struct {
	Matches    *appmatches.Service
	Standings  *appstandings.Service
	Translator *i18n.Translator
	Logger     *slog.Logger
	SiteURL    string
	// Ready reports whether the service can reach its dependencies. A nil
	// check means always ready.
	Ready func(context.Context) error
}

// Handler wires HTTP routes to the app services.
type Handler struct {
	matches    *appmatches.Service
	standings  *appstandings.Service
	translator *i18n.Translator
	logger     *slog.Logger
	siteURL    string
	ready      func(context.Context) error
	now        func() time.Time
}

// New constructs a Handler with the wall clock.
func New(d Deps) *Handler {
	return &Handler{
		matches:    d.Matches,
		standings:  d.Standings,
		translator: d.Translator,
		logger:     d.Logger,
		siteURL:    d.SiteURL,
		ready:      d.Ready,
		now:        time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, loggerFromRequest(r, h.logger))
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			writeError(w, r, http.StatusServiceUnavailable, "not ready", logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, logger)
}

// MatchListResponse is the payload of the daily listing endpoints.
type MatchListResponse struct {
	Locale  string      `json:"locale"`
	Title   string      `json:"title"`
	Date    string      `json:"date"`
	Matches []MatchView `json:"matches"`
	JSONLD  seo.WebSite `json:"jsonLd"`
}

// Today lists today's games, best first.
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	locale := localeFrom(r)
	day, _ := timeutil.TodayRange(h.now())
	writeJSON(w, http.StatusOK, MatchListResponse{
		Locale:  string(locale),
		Title:   h.translator.Lookup(locale, "home.today"),
		Date:    timeutil.FormatDate(day.In(timeutil.ReferenceLocation())),
		Matches: newMatchViews(h.matches.Today(r.Context()), locale),
		JSONLD:  seo.Site(h.siteURL, locale),
	}, loggerFromRequest(r, h.logger))
}

// Yesterday lists yesterday's analyzed games, best first.
func (h *Handler) Yesterday(w http.ResponseWriter, r *http.Request) {
	locale := localeFrom(r)
	day, _ := timeutil.YesterdayRange(h.now())
	writeJSON(w, http.StatusOK, MatchListResponse{
		Locale:  string(locale),
		Title:   h.translator.Lookup(locale, "home.yesterday"),
		Date:    timeutil.FormatDate(day.In(timeutil.ReferenceLocation())),
		Matches: newMatchViews(h.matches.Yesterday(r.Context()), locale),
		JSONLD:  seo.Site(h.siteURL, locale),
	}, loggerFromRequest(r, h.logger))
}

// MatchDetailResponse is the match page payload: the match, both rails, and
// the structured data document.
type MatchDetailResponse struct {
	Locale   string          `json:"locale"`
	Match    MatchView       `json:"match"`
	Related  []MatchView     `json:"related"`
	Upcoming []MatchView     `json:"upcoming"`
	JSONLD   seo.SportsEvent `json:"jsonLd"`
}

// MatchBySlug resolves one match page by its slug.
func (h *Handler) MatchBySlug(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	locale := localeFrom(r)

	m, err := h.matches.BySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, appmatches.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "match not found", logger)
			return
		}
		logger.Error("match lookup failed", "error", err)
		writeError(w, r, http.StatusBadGateway, "upstream failure", logger)
		return
	}

	related, upcoming := h.matches.Rails(r.Context(), m)
	writeJSON(w, http.StatusOK, MatchDetailResponse{
		Locale:   string(locale),
		Match:    newMatchView(m, locale),
		Related:  newMatchViews(related, locale),
		Upcoming: newMatchViews(upcoming, locale),
		JSONLD:   seo.MatchEvent(m, locale),
	}, logger)
}

// ConferenceTeams is one conference's half of the team list.
type ConferenceTeams struct {
	Label string       `json:"label"`
	Teams []teams.Team `json:"teams"`
}

// TeamListResponse is the catalog split by conference.
type TeamListResponse struct {
	Locale string          `json:"locale"`
	East   ConferenceTeams `json:"east"`
	West   ConferenceTeams `json:"west"`
}

// Teams lists the full catalog grouped by conference.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	locale := localeFrom(r)
	writeJSON(w, http.StatusOK, TeamListResponse{
		Locale: string(locale),
		East: ConferenceTeams{
			Label: h.translator.Lookup(locale, "standings.east"),
			Teams: teams.ByConference(teams.East),
		},
		West: ConferenceTeams{
			Label: h.translator.Lookup(locale, "standings.west"),
			Teams: teams.ByConference(teams.West),
		},
	}, loggerFromRequest(r, h.logger))
}

// TeamResponse is the team page payload.
type TeamResponse struct {
	Locale string         `json:"locale"`
	Team   teams.Team     `json:"team"`
	JSONLD seo.SportsTeam `json:"jsonLd"`
}

// TeamBySlug resolves one catalog team by its slug.
func (h *Handler) TeamBySlug(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	team, ok := teams.BySlug(mux.Vars(r)["slug"])
	if !ok {
		writeError(w, r, http.StatusNotFound, "team not found", logger)
		return
	}
	writeJSON(w, http.StatusOK, TeamResponse{
		Locale: string(localeFrom(r)),
		Team:   team,
		JSONLD: seo.TeamPage(team),
	}, logger)
}

// TeamMatchesResponse is the team match history payload.
type TeamMatchesResponse struct {
	Locale       string      `json:"locale"`
	Team         teams.Team  `json:"team"`
	Filter       string      `json:"filter"`
	FilterLabel  string      `json:"filterLabel"`
	Matches      []MatchView `json:"matches"`
	EmptyMessage string      `json:"emptyMessage,omitempty"`
}

// TeamMatches lists a team's analyzed games, ordered by the filter query
// parameter (recent or best).
func (h *Handler) TeamMatches(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	team, ok := teams.BySlug(mux.Vars(r)["slug"])
	if !ok {
		writeError(w, r, http.StatusNotFound, "team not found", logger)
		return
	}

	locale := localeFrom(r)
	filter := appmatches.ParseFilter(r.URL.Query().Get("filter"))
	filterLabel := "team.filterRecent"
	if filter == appmatches.FilterBest {
		filterLabel = "team.filterBest"
	}

	history := h.matches.TeamMatches(r.Context(), team.Abbreviation, filter)
	resp := TeamMatchesResponse{
		Locale:      string(locale),
		Team:        team,
		Filter:      string(filter),
		FilterLabel: h.translator.Lookup(locale, filterLabel),
		Matches:     newMatchViews(history, locale),
	}
	if len(history) == 0 {
		resp.EmptyMessage = h.translator.Lookup(locale, "team.noMatches")
	}
	writeJSON(w, http.StatusOK, resp, logger)
}

// ConferenceStandings is one conference's ranked table.
type ConferenceStandings struct {
	Label     string             `json:"label"`
	Standings []matches.Standing `json:"standings"`
}

// StandingsResponse is the standings page payload.
type StandingsResponse struct {
	Locale string              `json:"locale"`
	East   ConferenceStandings `json:"east"`
	West   ConferenceStandings `json:"west"`
}

// Standings returns the season standings split by conference.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	locale := localeFrom(r)
	table := h.standings.Table(r.Context())
	writeJSON(w, http.StatusOK, StandingsResponse{
		Locale: string(locale),
		East: ConferenceStandings{
			Label:     h.translator.Lookup(locale, "standings.east"),
			Standings: table.East,
		},
		West: ConferenceStandings{
			Label:     h.translator.Lookup(locale, "standings.west"),
			Standings: table.West,
		},
	}, loggerFromRequest(r, h.logger))
}

// Sitemap serves the XML sitemap over every indexable page.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	set := sitemap.Build(h.siteURL, h.now(), h.matches.AllAnalyzed(r.Context()))

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if err := sitemap.Encode(w, set); err != nil && logger != nil {
		logger.Error("failed to encode sitemap", "error", err)
	}
}

func localeFrom(r *http.Request) i18n.Locale {
	return i18n.Parse(r.URL.Query().Get("lang"))
}
