// Package sitemap enumerates every indexable page of the site, in both
// locales, as a standard XML sitemap.
package sitemap

import (
	"encoding/xml"
	"io"
	"time"

	"github.com/reggie-app/reggie-api/internal/domain/matches"
	"github.com/reggie-app/reggie-api/internal/domain/teams"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet is the sitemap document root.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one sitemap entry.
type URL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// Build enumerates the static pages, every catalog team page, and every
// analyzed match page, each in both locales. Match pages take their lastmod
// from the analysis timestamp, falling back to the scheduled time.
func Build(baseURL string, now time.Time, analyzed []matches.Match) URLSet {
	nowMod := lastMod(now)

	urls := []URL{
		{Loc: baseURL + "/fr", LastMod: nowMod, ChangeFreq: "hourly", Priority: 1},
		{Loc: baseURL + "/en", LastMod: nowMod, ChangeFreq: "hourly", Priority: 1},
		{Loc: baseURL + "/fr/equipes", LastMod: nowMod, ChangeFreq: "weekly", Priority: 0.8},
		{Loc: baseURL + "/en/teams", LastMod: nowMod, ChangeFreq: "weekly", Priority: 0.8},
		{Loc: baseURL + "/fr/methodologie", LastMod: nowMod, ChangeFreq: "monthly", Priority: 0.5},
		{Loc: baseURL + "/en/methodology", LastMod: nowMod, ChangeFreq: "monthly", Priority: 0.5},
	}

	for _, team := range teams.All {
		urls = append(urls,
			URL{Loc: baseURL + "/fr/equipe/" + team.Slug, LastMod: nowMod, ChangeFreq: "daily", Priority: 0.7},
			URL{Loc: baseURL + "/en/team/" + team.Slug, LastMod: nowMod, ChangeFreq: "daily", Priority: 0.7},
		)
	}

	for _, m := range analyzed {
		mod := lastMod(m.ScheduledAt)
		if m.Analysis != nil && !m.Analysis.CreatedAt.IsZero() {
			mod = lastMod(m.Analysis.CreatedAt)
		}
		urls = append(urls,
			URL{Loc: baseURL + "/fr/match/" + m.Slug, LastMod: mod, ChangeFreq: "weekly", Priority: 0.8},
			URL{Loc: baseURL + "/en/match/" + m.Slug, LastMod: mod, ChangeFreq: "weekly", Priority: 0.8},
		)
	}

	return URLSet{Xmlns: xmlns, URLs: urls}
}

// Encode writes the sitemap as an XML document with the standard header.
func Encode(w io.Writer, set URLSet) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	return enc.Close()
}

func lastMod(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
