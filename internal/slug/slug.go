// Package slug derives the canonical URL identifiers for teams and matches.
//
// A match slug is `{away}-vs-{home}-{YYYY-MM-DD}` where each side is the
// slugified "city name" of the team and the date is the scheduled instant's
// calendar day in UTC. The decoder is intentionally partial: it recovers the
// segment boundaries and the date but never inverts the normalization. Match
// lookup works by re-encoding candidates and comparing strings, so the encode
// function is the single authority on match identity.
package slug

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrMalformedSlug reports a match slug missing the team separator or the
// trailing date. Callers treat it the same as a missing match.
var ErrMalformedSlug = errors.New("malformed match slug")

const (
	separator = "-vs-"
	dateLen   = len("2006-01-02")
)

// stripMarks decomposes to NFD and drops combining marks, so "Montréal"
// slugifies the same as "Montreal".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Make converts arbitrary text into a lowercase slug restricted to
// [a-z0-9-]: accents are stripped and every run of other characters
// collapses to a single hyphen.
func Make(text string) string {
	lowered := strings.ToLower(text)
	if folded, _, err := transform.String(stripMarks, lowered); err == nil {
		lowered = folded
	}

	var b strings.Builder
	b.Grow(len(lowered))
	lastWasHyphen := false
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasHyphen = false
		default:
			if !lastWasHyphen {
				b.WriteByte('-')
				lastWasHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// ForTeam builds the canonical team slug from its city and name.
func ForTeam(city, name string) string {
	return Make(city + " " + name)
}

// ForMatch builds the canonical match slug. The date segment is the
// scheduled instant's calendar day rendered in UTC.
func ForMatch(awayCity, awayName, homeCity, homeName string, scheduledAt time.Time) string {
	away := ForTeam(awayCity, awayName)
	home := ForTeam(homeCity, homeName)
	return away + separator + home + "-" + scheduledAt.UTC().Format("2006-01-02")
}

// Parts holds the segments recovered from a match slug. Away and Home are
// opaque slug text, not team identities; resolving them back to teams is the
// caller's job (by re-encoding candidates, see package doc).
type Parts struct {
	Away string
	Home string
	Date string
}

// Parse splits a match slug into its away segment, home segment, and
// trailing YYYY-MM-DD date. It returns ErrMalformedSlug when the separator
// does not appear exactly once or the date suffix is absent.
func Parse(s string) (Parts, error) {
	segments := strings.Split(s, separator)
	if len(segments) != 2 {
		return Parts{}, ErrMalformedSlug
	}

	rest := segments[1]
	if len(rest) < dateLen+1 || rest[len(rest)-dateLen-1] != '-' {
		return Parts{}, ErrMalformedSlug
	}
	date := rest[len(rest)-dateLen:]
	if !isDate(date) {
		return Parts{}, ErrMalformedSlug
	}

	return Parts{
		Away: segments[0],
		Home: rest[:len(rest)-dateLen-1],
		Date: date,
	}, nil
}

// isDate checks the fixed-width \d{4}-\d{2}-\d{2} shape without validating
// the calendar; the decoder mirrors the encoder's formatting, nothing more.
func isDate(s string) bool {
	if len(s) != dateLen {
		return false
	}
	for i := 0; i < dateLen; i++ {
		if i == 4 || i == 7 {
			if s[i] != '-' {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
