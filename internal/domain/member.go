package domain

// Member is a competing athlete. Gender is display-only and never scored.
type Member struct {
	MemberID string `json:"memberId"`
	TeamID   string `json:"teamId"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Scores   Scores `json:"scores"`
}

// Snapshot is the full teams/members/config payload retrieved from the server.
type Snapshot struct {
	Teams   []Team   `json:"teams"`
	Members []Member `json:"members"`
	Config  *Config  `json:"config"`
}
