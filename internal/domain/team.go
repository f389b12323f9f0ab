package domain

import "strings"

// Team is one of the four competition teams.
// TeamNameEntry is the captain-submitted custom name; it only replaces the
// display name once TeamNameSubmitted is set, and that transition is one-way.
type Team struct {
	TeamID            string `json:"teamId"`
	TeamName          string `json:"teamName"`
	TeamNameEntry     string `json:"teamNameEntry"`
	TeamNameSubmitted bool   `json:"teamNameSubmitted"`
}

// DisplayName resolves the name shown on the board: the submitted custom
// name wins, then the server-provided name, then the static metadata name.
func (t Team) DisplayName() string {
	if t.TeamNameSubmitted && t.TeamNameEntry != "" {
		return t.TeamNameEntry
	}
	if t.TeamName != "" {
		return t.TeamName
	}
	return MetaFor(t.TeamID).Name
}

// TeamMeta is static per-team metadata matching the four known captains.
type TeamMeta struct {
	Name    string
	Captain string
	Color   string // hex, used for roster accents
}

var teamMeta = map[string]TeamMeta{
	"kevin": {Name: "Team Kevin", Captain: "Kevin Donnelly", Color: "#EF4444"},
	"molly": {Name: "Team Molly", Captain: "Molly Mevis", Color: "#3B82F6"},
	"kasia": {Name: "Team Kasia", Captain: "Kasia", Color: "#10B981"},
	"fuji":  {Name: "Team Fuji", Captain: "Fuji", Color: "#F59E0B"},
}

// MetaFor resolves team metadata whether the ID is "kevin" or "team-kevin".
// Unknown IDs degrade to a gray placeholder instead of failing.
func MetaFor(teamID string) TeamMeta {
	key := strings.TrimPrefix(teamID, "team-")
	if m, ok := teamMeta[key]; ok {
		return m
	}
	return TeamMeta{Name: "Unknown Team", Captain: "Unknown", Color: "#6B7280"}
}
