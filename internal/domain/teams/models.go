// Package teams holds the static NBA team catalog and its lookups.
package teams

// Conference is one of the two NBA conferences.
type Conference string

const (
	East Conference = "East"
	West Conference = "West"
)

// Team is an immutable reference entity from the static catalog. Matches
// reference catalog teams by identity; nothing mutates them after init.
type Team struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Abbreviation   string     `json:"abbreviation"`
	City           string     `json:"city"`
	Conference     Conference `json:"conference"`
	Logo           string     `json:"logo"`
	PrimaryColor   string     `json:"primaryColor"`
	SecondaryColor string     `json:"secondaryColor"`
	Slug           string     `json:"slug"`
}

// FullName returns the display name, e.g. "Boston Celtics".
func (t Team) FullName() string {
	return t.City + " " + t.Name
}
