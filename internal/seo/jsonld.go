// Package seo builds the schema.org JSON-LD documents embedded in rendered
// pages.
package seo

import (
	"time"

	"github.com/reggie-app/reggie-api/internal/domain/matches"
	"github.com/reggie-app/reggie-api/internal/domain/teams"
	"github.com/reggie-app/reggie-api/internal/i18n"
)

const schemaContext = "https://schema.org"

// SportsTeam is the schema.org team node.
type SportsTeam struct {
	Context string        `json:"@context,omitempty"`
	Type    string        `json:"@type"`
	Name    string        `json:"name"`
	Sport   string        `json:"sport,omitempty"`
	Member  *Organization `json:"memberOf,omitempty"`
}

// Organization is the schema.org organization node.
type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// SportsEvent is the schema.org document for a match page.
type SportsEvent struct {
	Context     string     `json:"@context"`
	Type        string     `json:"@type"`
	Name        string     `json:"name"`
	StartDate   time.Time  `json:"startDate"`
	Description string     `json:"description"`
	HomeTeam    SportsTeam `json:"homeTeam"`
	AwayTeam    SportsTeam `json:"awayTeam"`
	Sport       string     `json:"sport"`
	EventStatus string     `json:"eventStatus,omitempty"`
}

// WebSite is the schema.org document for the site root.
type WebSite struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// MatchEvent builds the SportsEvent document. The description prefers the
// localized summary over the headline; a finished game with both scores is
// marked EventCompleted.
func MatchEvent(m matches.Match, locale i18n.Locale) SportsEvent {
	description := "NBA game analysis"
	if m.Analysis != nil {
		if summary, ok := m.Analysis.Summary.Resolve(locale); ok {
			description = summary
		} else if headline, ok := m.Analysis.Headline.Resolve(locale); ok {
			description = headline
		}
	}

	event := SportsEvent{
		Context:     schemaContext,
		Type:        "SportsEvent",
		Name:        m.AwayTeam.FullName() + " vs " + m.HomeTeam.FullName(),
		StartDate:   m.ScheduledAt,
		Description: description,
		HomeTeam:    SportsTeam{Type: "SportsTeam", Name: m.HomeTeam.FullName()},
		AwayTeam:    SportsTeam{Type: "SportsTeam", Name: m.AwayTeam.FullName()},
		Sport:       "Basketball",
	}
	if m.Status == matches.StatusFinished && m.HomeScore != nil && m.AwayScore != nil {
		event.EventStatus = "https://schema.org/EventCompleted"
	}
	return event
}

// TeamPage builds the SportsTeam document for a team page.
func TeamPage(team teams.Team) SportsTeam {
	return SportsTeam{
		Context: schemaContext,
		Type:    "SportsTeam",
		Name:    team.FullName(),
		Sport:   "Basketball",
		Member:  &Organization{Type: "SportsOrganization", Name: "NBA"},
	}
}

// Site builds the WebSite document for a locale's homepage.
func Site(siteURL string, locale i18n.Locale) WebSite {
	description := "Guide NBA sans spoilers - Découvrez quels matchs valent le coup"
	path := "/fr"
	if locale == i18n.LocaleEN {
		description = "Spoiler-free NBA Guide - Find out which games are worth watching"
		path = "/en"
	}
	return WebSite{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        "Reggie",
		Description: description,
		URL:         siteURL + path,
	}
}
