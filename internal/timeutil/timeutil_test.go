package timeutil

import (
	"testing"
	"time"
)

func TestTodayRangeUsesEasternDay(t *testing.T) {
	// 3 AM UTC on Jan 15 is still 10 PM Jan 14 in New York.
	now := time.Date(2024, time.January, 15, 3, 0, 0, 0, time.UTC)

	start, end := TodayRange(now)

	wantStart := time.Date(2024, time.January, 14, 5, 0, 0, 0, time.UTC) // midnight ET is 05:00 UTC in January
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Fatalf("end = %v", end)
	}
}

func TestYesterdayRangePrecedesTodayRange(t *testing.T) {
	now := time.Date(2024, time.January, 15, 3, 0, 0, 0, time.UTC)

	yStart, yEnd := YesterdayRange(now)
	tStart, _ := TodayRange(now)

	if !yEnd.Equal(tStart) {
		t.Fatalf("yesterday end %v != today start %v", yEnd, tStart)
	}
	if !yStart.Equal(tStart.AddDate(0, 0, -1)) {
		t.Fatalf("yesterday start = %v", yStart)
	}
}

func TestDayRangeHandlesDSTTransition(t *testing.T) {
	// US spring forward: March 10 2024 is a 23-hour day in New York.
	loc := ReferenceLocation()
	day := time.Date(2024, time.March, 10, 12, 0, 0, 0, loc)

	start, end := DayRange(day, loc)
	if got := end.Sub(start); got != 23*time.Hour {
		t.Fatalf("DST day length = %v, want 23h", got)
	}
}

func TestUTCDayRange(t *testing.T) {
	start, end, err := UTCDayRange("2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("range length = %v", end.Sub(start))
	}

	if _, _, err := UTCDayRange("not-a-date"); err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(parsed); got != "2024-03-01" {
		t.Fatalf("FormatDate = %q", got)
	}
}
