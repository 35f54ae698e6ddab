package matches

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reggie-app/reggie-api/internal/store"
	"github.com/reggie-app/reggie-api/internal/testutil"
)

type betweenCall struct {
	start, end   time.Time
	analyzedOnly bool
}

type stubStore struct {
	between     []store.GameRow
	betweenErr  error
	teamIDs     map[string]string
	teamIDErr   error
	team        []store.GameRow
	teamErr     error
	related     map[string][]store.GameRow
	relatedErr  error
	upcoming    map[string][]store.GameRow
	upcomingErr error
	analyzed    []store.GameRow
	analyzedErr error

	betweenCalls []betweenCall
}

func (s *stubStore) MatchesBetween(_ context.Context, start, end time.Time, analyzedOnly bool) ([]store.GameRow, error) {
	s.betweenCalls = append(s.betweenCalls, betweenCall{start, end, analyzedOnly})
	return s.between, s.betweenErr
}

func (s *stubStore) TeamIDByAbbreviation(_ context.Context, abbr string) (string, error) {
	if s.teamIDErr != nil {
		return "", s.teamIDErr
	}
	id, ok := s.teamIDs[abbr]
	if !ok {
		return "", store.ErrNotFound
	}
	return id, nil
}

func (s *stubStore) TeamMatches(_ context.Context, _ string, _ int) ([]store.GameRow, error) {
	return s.team, s.teamErr
}

func (s *stubStore) RelatedMatches(_ context.Context, teamID, _ string, _ int) ([]store.GameRow, error) {
	if s.relatedErr != nil {
		return nil, s.relatedErr
	}
	return s.related[teamID], nil
}

func (s *stubStore) UpcomingMatches(_ context.Context, teamID string, _ time.Time, _ int) ([]store.GameRow, error) {
	if s.upcomingErr != nil {
		return nil, s.upcomingErr
	}
	return s.upcoming[teamID], nil
}

func (s *stubStore) AllAnalyzed(_ context.Context) ([]store.GameRow, error) {
	return s.analyzed, s.analyzedErr
}

func newTestService(t *testing.T, st *stubStore, now time.Time) *Service {
	t.Helper()
	svc := NewService(st, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func gameRow(id, away, home string, scheduledAt time.Time, status string) store.GameRow {
	return testutil.GameRow(id, away, home, scheduledAt, status)
}

func analyzedRow(id, away, home string, scheduledAt time.Time, status string, score float64) store.GameRow {
	row := testutil.AnalyzedGameRow(id, away, home, scheduledAt, score)
	row.Status = status
	return row
}

// 6 PM ET on January 15, 2024.
var testNow = time.Date(2024, time.January, 15, 23, 0, 0, 0, time.UTC)

func TestAssembleEnrichesTeamsFromCatalog(t *testing.T) {
	svc := newTestService(t, &stubStore{}, testNow)

	row := gameRow("g1", "BOS", "NYK", testNow, "scheduled")
	m := svc.assemble(row)

	if m.AwayTeam.City != "Boston" || m.AwayTeam.Name != "Celtics" {
		t.Fatalf("away team not enriched: %+v", m.AwayTeam)
	}
	if m.HomeTeam.Conference == "" || m.HomeTeam.PrimaryColor == "" {
		t.Fatalf("home team missing catalog fields: %+v", m.HomeTeam)
	}
	if m.Slug != "boston-celtics-vs-new-york-knicks-2024-01-15" {
		t.Fatalf("slug = %q", m.Slug)
	}
}

func TestAssembleFallsBackForUnknownTeam(t *testing.T) {
	svc := newTestService(t, &stubStore{}, testNow)

	row := gameRow("g1", "XXX", "NYK", testNow, "scheduled")
	row.AwayTeam.Name = "Expansion"
	row.AwayTeam.City = "Nowhere"
	m := svc.assemble(row)

	if m.AwayTeam.ID != 0 {
		t.Fatalf("fallback team id = %d, want 0", m.AwayTeam.ID)
	}
	if m.AwayTeam.Slug != "xxx" {
		t.Fatalf("fallback slug = %q", m.AwayTeam.Slug)
	}
	if m.Slug != "nowhere-expansion-vs-new-york-knicks-2024-01-15" {
		t.Fatalf("match slug = %q", m.Slug)
	}
}

func TestAssembleSelectsBreakdownByStatus(t *testing.T) {
	svc := newTestService(t, &stubStore{}, testNow)

	interest := &store.InterestBreakdownDoc{Stakes: 20}
	prematch := &store.PrematchBreakdownDoc{Stakes: 25}

	finished := gameRow("g1", "BOS", "NYK", testNow, "finished")
	finished.Analyses = []store.AnalysisRow{{ID: "a1", Type: "post", InterestBreakdown: interest, PrematchBreakdown: prematch}}
	m := svc.assemble(finished)
	if m.Analysis.InterestBreakdown == nil || m.Analysis.PrematchBreakdown != nil {
		t.Fatalf("finished match breakdowns: %+v", m.Analysis)
	}

	scheduled := gameRow("g2", "BOS", "NYK", testNow, "scheduled")
	scheduled.Analyses = []store.AnalysisRow{{ID: "a2", Type: "pre", InterestBreakdown: interest, PrematchBreakdown: prematch}}
	m = svc.assemble(scheduled)
	if m.Analysis.PrematchBreakdown == nil || m.Analysis.InterestBreakdown != nil {
		t.Fatalf("scheduled match breakdowns: %+v", m.Analysis)
	}
}

func TestAssembleKeepsFirstAnalysisOnly(t *testing.T) {
	svc := newTestService(t, &stubStore{}, testNow)

	row := gameRow("g1", "BOS", "NYK", testNow, "finished")
	row.Analyses = []store.AnalysisRow{{ID: "a-old", Type: "post"}, {ID: "a-new", Type: "post"}}
	m := svc.assemble(row)

	if m.Analysis == nil || m.Analysis.ID != "a-old" {
		t.Fatalf("analysis = %+v, want a-old", m.Analysis)
	}
}

func TestTodayOrdersByRatingThenTipoff(t *testing.T) {
	early := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	late := early.Add(3 * time.Hour)
	st := &stubStore{between: []store.GameRow{
		analyzedRow("g1", "BOS", "NYK", late, "finished", 60),
		analyzedRow("g2", "LAL", "GSW", early, "finished", 85),
		analyzedRow("g3", "MIA", "CHI", late, "finished", 85),
		gameRow("g4", "DEN", "PHX", early, "scheduled"),
	}}
	svc := newTestService(t, st, testNow)

	got := svc.Today(context.Background())
	if len(got) != 4 {
		t.Fatalf("len = %d", len(got))
	}
	// 8.5 ties break on earlier tipoff; unanalyzed rates 0 and sinks last.
	wantOrder := []string{"g2", "g3", "g1", "g4"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Fatalf("position %d = %s, want %s", i, got[i].ID, want)
		}
	}

	call := st.betweenCalls[0]
	if call.analyzedOnly {
		t.Fatal("today must include unanalyzed games")
	}
}

func TestYesterdayRequiresAnalysisAndUsesReferenceDay(t *testing.T) {
	st := &stubStore{}
	svc := newTestService(t, st, testNow)

	svc.Yesterday(context.Background())

	call := st.betweenCalls[0]
	if !call.analyzedOnly {
		t.Fatal("yesterday must request analyzed games only")
	}
	// Midnight ET on January 14 is 05:00 UTC.
	wantStart := time.Date(2024, time.January, 14, 5, 0, 0, 0, time.UTC)
	if !call.start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", call.start, wantStart)
	}
	if !call.end.Equal(wantStart.Add(24 * time.Hour)) {
		t.Fatalf("end = %v", call.end)
	}
}

func TestListingsDegradeToEmptyOnStoreFailure(t *testing.T) {
	st := &stubStore{betweenErr: errors.New("connection refused")}
	svc := newTestService(t, st, testNow)

	if got := svc.Today(context.Background()); len(got) != 0 {
		t.Fatalf("today = %v, want empty", got)
	}
	if got := svc.Yesterday(context.Background()); len(got) != 0 {
		t.Fatalf("yesterday = %v, want empty", got)
	}
}

func TestBySlugResolvesByReencoding(t *testing.T) {
	scheduledAt := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	st := &stubStore{between: []store.GameRow{
		gameRow("g1", "LAL", "GSW", scheduledAt, "scheduled"),
		gameRow("g2", "BOS", "NYK", scheduledAt, "scheduled"),
	}}
	svc := newTestService(t, st, testNow)

	m, err := svc.BySlug(context.Background(), "boston-celtics-vs-new-york-knicks-2024-01-16")
	if err != nil {
		t.Fatalf("BySlug: %v", err)
	}
	if m.ID != "g2" {
		t.Fatalf("resolved %s, want g2", m.ID)
	}

	// Candidates come from the slug's UTC day, not the reference timezone.
	call := st.betweenCalls[0]
	wantStart := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	if !call.start.Equal(wantStart) || !call.end.Equal(wantStart.Add(24*time.Hour)) {
		t.Fatalf("candidate window = [%v, %v)", call.start, call.end)
	}
}

func TestBySlugNotFound(t *testing.T) {
	st := &stubStore{between: []store.GameRow{
		gameRow("g1", "LAL", "GSW", time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC), "scheduled"),
	}}
	svc := newTestService(t, st, testNow)

	if _, err := svc.BySlug(context.Background(), "boston-celtics-vs-new-york-knicks-2024-01-16"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBySlugMalformedIsNotFound(t *testing.T) {
	st := &stubStore{}
	svc := newTestService(t, st, testNow)

	for _, bad := range []string{
		"not-a-match-slug",
		"a-vs-b",
		"a-vs-b-vs-c-2024-01-16",
		"a-vs-b-2024-1-16",
	} {
		if _, err := svc.BySlug(context.Background(), bad); !errors.Is(err, ErrNotFound) {
			t.Fatalf("BySlug(%q) = %v, want ErrNotFound", bad, err)
		}
	}
	if len(st.betweenCalls) != 0 {
		t.Fatal("malformed slugs must not hit the store")
	}
}

func TestBySlugPropagatesStoreFailure(t *testing.T) {
	st := &stubStore{betweenErr: errors.New("connection refused")}
	svc := newTestService(t, st, testNow)

	_, err := svc.BySlug(context.Background(), "boston-celtics-vs-new-york-knicks-2024-01-16")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want upstream failure", err)
	}
}

func TestTeamMatchesFilters(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	st := &stubStore{
		teamIDs: map[string]string{"BOS": "t1"},
		team: []store.GameRow{
			analyzedRow("g3", "BOS", "NYK", day(14), "finished", 60),
			analyzedRow("g2", "LAL", "BOS", day(12), "finished", 90),
			analyzedRow("g1", "BOS", "MIA", day(10), "finished", 75),
		},
	}
	svc := newTestService(t, st, testNow)

	recent := svc.TeamMatches(context.Background(), "BOS", FilterRecent)
	if recent[0].ID != "g3" || recent[2].ID != "g1" {
		t.Fatalf("recent order: %s, %s, %s", recent[0].ID, recent[1].ID, recent[2].ID)
	}

	best := svc.TeamMatches(context.Background(), "BOS", FilterBest)
	if best[0].ID != "g2" || best[1].ID != "g1" || best[2].ID != "g3" {
		t.Fatalf("best order: %s, %s, %s", best[0].ID, best[1].ID, best[2].ID)
	}
}

func TestTeamMatchesUnknownTeamIsEmpty(t *testing.T) {
	svc := newTestService(t, &stubStore{teamIDs: map[string]string{}}, testNow)

	if got := svc.TeamMatches(context.Background(), "BOS", FilterRecent); len(got) != 0 {
		t.Fatalf("got %d matches for a team the store has never seen", len(got))
	}
}

func TestParseFilter(t *testing.T) {
	if ParseFilter("best") != FilterBest {
		t.Fatal("best not recognized")
	}
	for _, raw := range []string{"", "recent", "RECENT", "garbage"} {
		if ParseFilter(raw) != FilterRecent {
			t.Fatalf("ParseFilter(%q) should default to recent", raw)
		}
	}
}

func TestRailsMergeDedupeAndTruncate(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	shared := analyzedRow("shared", "BOS", "NYK", day(10), "finished", 70)
	st := &stubStore{
		teamIDs: map[string]string{"BOS": "t1", "NYK": "t2"},
		related: map[string][]store.GameRow{
			"t1": {analyzedRow("r1", "BOS", "MIA", day(12), "finished", 80), shared},
			"t2": {analyzedRow("r2", "CHI", "NYK", day(11), "finished", 65), shared},
		},
		upcoming: map[string][]store.GameRow{
			"t1": {gameRow("u1", "BOS", "DEN", day(20), "scheduled"), gameRow("current", "BOS", "NYK", day(18), "scheduled")},
			"t2": {gameRow("u2", "NYK", "PHX", day(19), "scheduled")},
		},
	}
	svc := newTestService(t, st, testNow)

	current := svc.assemble(gameRow("current", "BOS", "NYK", day(18), "scheduled"))
	related, upcoming := svc.Rails(context.Background(), current)

	if len(related) != 3 {
		t.Fatalf("related = %d matches, want 3 after dedupe", len(related))
	}
	// Away fetch first, then home; the shared game keeps its first slot.
	if related[0].ID != "r1" || related[1].ID != "shared" || related[2].ID != "r2" {
		t.Fatalf("related order: %s, %s, %s", related[0].ID, related[1].ID, related[2].ID)
	}

	if len(upcoming) != 2 {
		t.Fatalf("upcoming = %d matches, want 2", len(upcoming))
	}
	if upcoming[0].ID != "u1" || upcoming[1].ID != "u2" {
		t.Fatalf("upcoming order: %s, %s", upcoming[0].ID, upcoming[1].ID)
	}
	for _, m := range upcoming {
		if m.ID == "current" {
			t.Fatal("upcoming rail must exclude the match itself")
		}
	}
}

func TestRailsKeepFetchOrderNotDateOrder(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	st := &stubStore{
		teamIDs: map[string]string{"BOS": "t1", "NYK": "t2"},
		related: map[string][]store.GameRow{
			"t1": {
				analyzedRow("a1", "BOS", "MIA", day(8), "finished", 70),
				analyzedRow("a2", "CHI", "BOS", day(5), "finished", 70),
			},
			"t2": {
				analyzedRow("h1", "NYK", "DEN", day(9), "finished", 70),
				analyzedRow("h2", "PHX", "NYK", day(7), "finished", 70),
			},
		},
	}
	svc := newTestService(t, st, testNow)

	current := svc.assemble(gameRow("current", "BOS", "NYK", day(18), "scheduled"))
	related, _ := svc.Rails(context.Background(), current)

	// h1 is the newest game but the home fetch still trails the away one.
	wantOrder := []string{"a1", "a2", "h1", "h2"}
	if len(related) != len(wantOrder) {
		t.Fatalf("related = %d matches, want %d", len(related), len(wantOrder))
	}
	for i, want := range wantOrder {
		if related[i].ID != want {
			t.Fatalf("position %d = %s, want %s", i, related[i].ID, want)
		}
	}
}

func TestRailsDegradeIndependently(t *testing.T) {
	day20 := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	st := &stubStore{
		teamIDs:    map[string]string{"BOS": "t1", "NYK": "t2"},
		relatedErr: errors.New("connection refused"),
		upcoming: map[string][]store.GameRow{
			"t1": {gameRow("u1", "BOS", "DEN", day20, "scheduled")},
		},
	}
	svc := newTestService(t, st, testNow)

	current := svc.assemble(gameRow("current", "BOS", "NYK", testNow, "scheduled"))
	related, upcoming := svc.Rails(context.Background(), current)

	if len(related) != 0 {
		t.Fatalf("related = %v, want empty", related)
	}
	if len(upcoming) != 1 || upcoming[0].ID != "u1" {
		t.Fatalf("upcoming = %v, want u1 only", upcoming)
	}
}

func TestAllAnalyzedDegradesToEmpty(t *testing.T) {
	st := &stubStore{analyzedErr: errors.New("connection refused")}
	svc := newTestService(t, st, testNow)

	if got := svc.AllAnalyzed(context.Background()); len(got) != 0 {
		t.Fatalf("got %d matches, want none", len(got))
	}
}
