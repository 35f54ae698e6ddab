// Package timeutil owns day-boundary math and localized timestamp
// formatting. Day boundaries are always computed in the fixed reference
// timezone (US Eastern); the display locale only changes how a timestamp is
// worded, never which calendar day it belongs to.
package timeutil

import (
	"sync"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ReferenceTimezone anchors yesterday/today boundaries for every visitor.
const ReferenceTimezone = "America/New_York"

var (
	refOnce sync.Once
	refLoc  *time.Location
)

// ReferenceLocation returns the fixed reference timezone. It falls back to
// UTC only if the zone database is unavailable; cmd/server imports
// time/tzdata so that cannot happen in a built binary.
func ReferenceLocation() *time.Location {
	refOnce.Do(func() {
		loc, err := time.LoadLocation(ReferenceTimezone)
		if err != nil {
			loc = time.UTC
		}
		refLoc = loc
	})
	return refLoc
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayRange bounds the calendar day containing t in the given location,
// returned as UTC instants. The end bound is exclusive.
func DayRange(t time.Time, loc *time.Location) (start, end time.Time) {
	local := t.In(loc)
	startLocal := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return startLocal.UTC(), startLocal.AddDate(0, 0, 1).UTC()
}

// TodayRange bounds the reference timezone's current calendar day.
func TodayRange(now time.Time) (start, end time.Time) {
	return DayRange(now, ReferenceLocation())
}

// YesterdayRange bounds the reference timezone's previous calendar day.
func YesterdayRange(now time.Time) (start, end time.Time) {
	return DayRange(now.In(ReferenceLocation()).AddDate(0, 0, -1), ReferenceLocation())
}

// UTCDayRange bounds a YYYY-MM-DD calendar date in UTC. Slug lookups use
// this: the slug's date segment is rendered in UTC, so candidates come from
// the UTC day.
func UTCDayRange(date string) (start, end time.Time, err error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1), nil
}
