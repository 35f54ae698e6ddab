package teams

import (
	"strings"

	"github.com/reggie-app/reggie-api/internal/slug"
)

// All lists the 30 NBA teams. Slugs are derived from "city name" at init so
// they always agree with the match slug encoding.
var All = []Team{
	// Eastern Conference - Atlantic
	{ID: 1, Name: "Celtics", Abbreviation: "BOS", City: "Boston", Conference: East, Logo: "celtics", PrimaryColor: "#007A33", SecondaryColor: "#BA9653"},
	{ID: 2, Name: "Nets", Abbreviation: "BKN", City: "Brooklyn", Conference: East, Logo: "nets", PrimaryColor: "#000000", SecondaryColor: "#FFFFFF"},
	{ID: 3, Name: "Knicks", Abbreviation: "NYK", City: "New York", Conference: East, Logo: "knicks", PrimaryColor: "#006BB6", SecondaryColor: "#F58426"},
	{ID: 4, Name: "76ers", Abbreviation: "PHI", City: "Philadelphia", Conference: East, Logo: "76ers", PrimaryColor: "#006BB6", SecondaryColor: "#ED174C"},
	{ID: 5, Name: "Raptors", Abbreviation: "TOR", City: "Toronto", Conference: East, Logo: "raptors", PrimaryColor: "#CE1141", SecondaryColor: "#000000"},

	// Eastern Conference - Central
	{ID: 6, Name: "Bulls", Abbreviation: "CHI", City: "Chicago", Conference: East, Logo: "bulls", PrimaryColor: "#CE1141", SecondaryColor: "#000000"},
	{ID: 7, Name: "Cavaliers", Abbreviation: "CLE", City: "Cleveland", Conference: East, Logo: "cavaliers", PrimaryColor: "#860038", SecondaryColor: "#FDBB30"},
	{ID: 8, Name: "Pistons", Abbreviation: "DET", City: "Detroit", Conference: East, Logo: "pistons", PrimaryColor: "#C8102E", SecondaryColor: "#1D42BA"},
	{ID: 9, Name: "Pacers", Abbreviation: "IND", City: "Indiana", Conference: East, Logo: "pacers", PrimaryColor: "#002D62", SecondaryColor: "#FDBB30"},
	{ID: 10, Name: "Bucks", Abbreviation: "MIL", City: "Milwaukee", Conference: East, Logo: "bucks", PrimaryColor: "#00471B", SecondaryColor: "#EEE1C6"},

	// Eastern Conference - Southeast
	{ID: 11, Name: "Hawks", Abbreviation: "ATL", City: "Atlanta", Conference: East, Logo: "hawks", PrimaryColor: "#E03A3E", SecondaryColor: "#C1D32F"},
	{ID: 12, Name: "Hornets", Abbreviation: "CHA", City: "Charlotte", Conference: East, Logo: "hornets", PrimaryColor: "#1D1160", SecondaryColor: "#00788C"},
	{ID: 13, Name: "Heat", Abbreviation: "MIA", City: "Miami", Conference: East, Logo: "heat", PrimaryColor: "#98002E", SecondaryColor: "#F9A01B"},
	{ID: 14, Name: "Magic", Abbreviation: "ORL", City: "Orlando", Conference: East, Logo: "magic", PrimaryColor: "#0077C0", SecondaryColor: "#C4CED4"},
	{ID: 15, Name: "Wizards", Abbreviation: "WAS", City: "Washington", Conference: East, Logo: "wizards", PrimaryColor: "#002B5C", SecondaryColor: "#E31837"},

	// Western Conference - Northwest
	{ID: 16, Name: "Nuggets", Abbreviation: "DEN", City: "Denver", Conference: West, Logo: "nuggets", PrimaryColor: "#0E2240", SecondaryColor: "#FEC524"},
	{ID: 17, Name: "Timberwolves", Abbreviation: "MIN", City: "Minnesota", Conference: West, Logo: "timberwolves", PrimaryColor: "#0C2340", SecondaryColor: "#236192"},
	{ID: 18, Name: "Thunder", Abbreviation: "OKC", City: "Oklahoma City", Conference: West, Logo: "thunder", PrimaryColor: "#007AC1", SecondaryColor: "#EF3B24"},
	{ID: 19, Name: "Trail Blazers", Abbreviation: "POR", City: "Portland", Conference: West, Logo: "blazers", PrimaryColor: "#E03A3E", SecondaryColor: "#000000"},
	{ID: 20, Name: "Jazz", Abbreviation: "UTA", City: "Utah", Conference: West, Logo: "jazz", PrimaryColor: "#002B5C", SecondaryColor: "#00471B"},

	// Western Conference - Pacific
	{ID: 21, Name: "Warriors", Abbreviation: "GSW", City: "Golden State", Conference: West, Logo: "warriors", PrimaryColor: "#1D428A", SecondaryColor: "#FFC72C"},
	{ID: 22, Name: "Clippers", Abbreviation: "LAC", City: "LA", Conference: West, Logo: "clippers", PrimaryColor: "#C8102E", SecondaryColor: "#1D428A"},
	{ID: 23, Name: "Lakers", Abbreviation: "LAL", City: "Los Angeles", Conference: West, Logo: "lakers", PrimaryColor: "#552583", SecondaryColor: "#FDB927"},
	{ID: 24, Name: "Suns", Abbreviation: "PHX", City: "Phoenix", Conference: West, Logo: "suns", PrimaryColor: "#1D1160", SecondaryColor: "#E56020"},
	{ID: 25, Name: "Kings", Abbreviation: "SAC", City: "Sacramento", Conference: West, Logo: "kings", PrimaryColor: "#5A2D81", SecondaryColor: "#63727A"},

	// Western Conference - Southwest
	{ID: 26, Name: "Mavericks", Abbreviation: "DAL", City: "Dallas", Conference: West, Logo: "mavericks", PrimaryColor: "#00538C", SecondaryColor: "#002B5E"},
	{ID: 27, Name: "Rockets", Abbreviation: "HOU", City: "Houston", Conference: West, Logo: "rockets", PrimaryColor: "#CE1141", SecondaryColor: "#000000"},
	{ID: 28, Name: "Grizzlies", Abbreviation: "MEM", City: "Memphis", Conference: West, Logo: "grizzlies", PrimaryColor: "#5D76A9", SecondaryColor: "#12173F"},
	{ID: 29, Name: "Pelicans", Abbreviation: "NOP", City: "New Orleans", Conference: West, Logo: "pelicans", PrimaryColor: "#0C2340", SecondaryColor: "#C8102E"},
	{ID: 30, Name: "Spurs", Abbreviation: "SAS", City: "San Antonio", Conference: West, Logo: "spurs", PrimaryColor: "#C4CED4", SecondaryColor: "#000000"},
}

var (
	byAbbrev = make(map[string]Team, len(All))
	bySlug   = make(map[string]Team, len(All))
)

func init() {
	for i := range All {
		All[i].Slug = slug.ForTeam(All[i].City, All[i].Name)
		byAbbrev[strings.ToUpper(All[i].Abbreviation)] = All[i]
		bySlug[All[i].Slug] = All[i]
	}
}

// ByAbbreviation looks a team up by abbreviation, case-insensitively.
func ByAbbreviation(abbr string) (Team, bool) {
	t, ok := byAbbrev[strings.ToUpper(abbr)]
	return t, ok
}

// BySlug looks a team up by its canonical slug.
func BySlug(s string) (Team, bool) {
	t, ok := bySlug[s]
	return t, ok
}

// ByConference returns the catalog teams in the given conference, in
// catalog order.
func ByConference(c Conference) []Team {
	result := make([]Team, 0, len(All)/2)
	for _, t := range All {
		if t.Conference == c {
			result = append(result, t)
		}
	}
	return result
}

// Fallback synthesizes a placeholder for an abbreviation missing from the
// catalog. The East conference and gray colors are presentation filler, not
// business data.
func Fallback(abbr, name, city string) Team {
	if name == "" {
		name = abbr
	}
	return Team{
		ID:             0,
		Name:           name,
		Abbreviation:   abbr,
		City:           city,
		Conference:     East,
		Logo:           "",
		PrimaryColor:   "#666666",
		SecondaryColor: "#999999",
		Slug:           strings.ToLower(abbr),
	}
}
