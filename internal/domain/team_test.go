package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	team := Team{TeamID: "team-kevin"}
	assert.Equal(t, "Team Kevin", team.DisplayName(), "falls back to static metadata")

	team.TeamName = "The Red Rockets"
	assert.Equal(t, "The Red Rockets", team.DisplayName(), "server name wins over metadata")

	team.TeamNameEntry = "Kevin's Krushers"
	assert.Equal(t, "The Red Rockets", team.DisplayName(), "entry ignored until submitted")

	team.TeamNameSubmitted = true
	assert.Equal(t, "Kevin's Krushers", team.DisplayName())
}

func TestMetaFor(t *testing.T) {
	// Both ID shapes resolve the same team.
	assert.Equal(t, "Kevin Donnelly", MetaFor("kevin").Captain)
	assert.Equal(t, "Kevin Donnelly", MetaFor("team-kevin").Captain)
	assert.Equal(t, "#3B82F6", MetaFor("team-molly").Color)

	unknown := MetaFor("team-zzz")
	assert.Equal(t, "Unknown Team", unknown.Name)
	assert.Equal(t, "#6B7280", unknown.Color)
}

func TestChallengeForWeek(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Not a Water Bottle", cfg.ChallengeForWeek(1).Title)
	assert.Equal(t, 2, cfg.ChallengeForWeek(2).Week)
	assert.Equal(t, 1, cfg.ChallengeForWeek(9).Week, "unknown week falls back to week 1")
}

func TestDemoSnapshot(t *testing.T) {
	snap := DemoSnapshot()
	assert.Len(t, snap.Teams, 4)
	assert.Len(t, snap.Members, 12)
	valid := map[string]bool{
		"team-kevin": true, "team-molly": true, "team-kasia": true, "team-fuji": true,
	}
	for _, m := range snap.Members {
		assert.True(t, valid[m.TeamID], "demo member %s has unknown team %s", m.MemberID, m.TeamID)
	}
}
