package domain

// DemoSnapshot returns the seeded roster shown when the API has never been
// reachable. Only used before a first successful fetch.
func DemoSnapshot() *Snapshot {
	return &Snapshot{
		Teams: []Team{
			{TeamID: "team-kevin", TeamName: "Team Kevin"},
			{TeamID: "team-molly", TeamName: "Team Molly"},
			{TeamID: "team-kasia", TeamName: "Team Kasia"},
			{TeamID: "team-fuji", TeamName: "Team Fuji"},
		},
		Members: []Member{
			{MemberID: "kevin-donnelly", TeamID: "team-kevin", Name: "Kevin Donnelly", Gender: "M"},
			{MemberID: "claire-chappell", TeamID: "team-kevin", Name: "Claire Chappell", Gender: "F"},
			{MemberID: "colin-baer", TeamID: "team-kevin", Name: "Colin Baer", Gender: "M"},
			{MemberID: "molly-mevis", TeamID: "team-molly", Name: "Molly Mevis", Gender: "F"},
			{MemberID: "jessica-dorgan", TeamID: "team-molly", Name: "Jessica Dorgan", Gender: "F"},
			{MemberID: "andrew-sheehan", TeamID: "team-molly", Name: "Andrew Sheehan", Gender: "M"},
			{MemberID: "jillian-kashul", TeamID: "team-kasia", Name: "Jillian Kashul", Gender: "F"},
			{MemberID: "katie-sink", TeamID: "team-kasia", Name: "Katie Sink", Gender: "F"},
			{MemberID: "charlie-anderson", TeamID: "team-kasia", Name: "Charlie Anderson", Gender: "M"},
			{MemberID: "christina-wagner", TeamID: "team-fuji", Name: "Christina Wagner", Gender: "F"},
			{MemberID: "james-galiger", TeamID: "team-fuji", Name: "James Galiger", Gender: "M"},
			{MemberID: "thomas-kashul", TeamID: "team-fuji", Name: "Thomas Kashul", Gender: "M"},
		},
	}
}
