// Package store holds the single mutable application snapshot: teams,
// members, competition config, auth state, and UI expansion/search state.
//
// The store is owned by the TUI model and only ever touched from the
// bubbletea update loop, so it needs no locking. Every mutation goes through
// a method here, never by reaching into the collections directly, which keeps
// the merge rules for optimistic edits in one place.
package store

import (
	"sort"
	"strings"
	"time"

	"github.com/moonshotcrossfit/cup/internal/domain"
	"github.com/moonshotcrossfit/cup/internal/scoring"
)

// Store is the application state.
type Store struct {
	teams   []domain.Team
	members []domain.Member
	config  domain.Config

	authenticated bool
	token         string
	captainTeamID string

	expandedTeams   map[string]bool
	expandedMembers map[string]bool
	saving          map[string]bool

	lastSynced      time.Time
	searchQuery     string
	highlightMember string
}

// New returns an empty store with default config.
func New() *Store {
	return &Store{
		config:          domain.DefaultConfig(),
		expandedTeams:   make(map[string]bool),
		expandedMembers: make(map[string]bool),
		saving:          make(map[string]bool),
	}
}

// ── snapshot reconciliation ──────────────────────────────────────────────────

// ReplaceSnapshot overwrites teams, members, and config wholesale from a
// sync result. A missing or empty challenge list falls back to the default
// template, and every team is auto-expanded so rosters are visible.
func (s *Store) ReplaceSnapshot(snap *domain.Snapshot) {
	s.teams = snap.Teams
	s.members = snap.Members
	if snap.Config != nil {
		s.config = *snap.Config
		if len(s.config.Challenges) == 0 {
			s.config.Challenges = domain.DefaultChallenges()
		}
		if s.config.CurrentWeek < 1 {
			s.config.CurrentWeek = 1
		}
	}
	for _, t := range s.teams {
		s.expandedTeams[t.TeamID] = true
	}
}

// HasData reports whether any snapshot (real or demo) has been loaded.
// This is also the first-load guard for the demo fallback: after first load,
// a genuinely empty competition is indistinguishable from a failed fetch.
func (s *Store) HasData() bool {
	return len(s.teams) > 0
}

// MarkSynced stamps the last sync attempt. Called even on failed polls so
// the "updated N ago" label reflects that the client tried.
func (s *Store) MarkSynced(now time.Time) {
	s.lastSynced = now
}

// LastSynced returns the last sync timestamp (zero if never).
func (s *Store) LastSynced() time.Time {
	return s.lastSynced
}

// ── member score mutation ────────────────────────────────────────────────────

// MergeMemberScores applies a field-level partial update to a member's
// scores. Fields absent from the patch keep their prior values.
func (s *Store) MergeMemberScores(memberID string, patch domain.ScorePatch) {
	for i := range s.members {
		if s.members[i].MemberID == memberID {
			s.members[i].Scores.Apply(patch)
			return
		}
	}
}

// Member returns a copy of the member with the given ID.
func (s *Store) Member(memberID string) (domain.Member, bool) {
	for i := range s.members {
		if s.members[i].MemberID == memberID {
			return s.members[i], true
		}
	}
	return domain.Member{}, false
}

// ── team name ────────────────────────────────────────────────────────────────

// SetTeamName records a captain's custom team name and marks it submitted.
// The transition is one-way: once submitted it cannot be unset client-side.
func (s *Store) SetTeamName(teamID, name string) {
	for i := range s.teams {
		if s.teams[i].TeamID == teamID {
			s.teams[i].TeamNameEntry = name
			s.teams[i].TeamNameSubmitted = true
			return
		}
	}
}

// Team returns a copy of the team with the given ID.
func (s *Store) Team(teamID string) (domain.Team, bool) {
	for _, t := range s.teams {
		if t.TeamID == teamID {
			return t, true
		}
	}
	return domain.Team{}, false
}

// ── auth ─────────────────────────────────────────────────────────────────────

// Login records a successful captain authentication.
func (s *Store) Login(token, teamID string) {
	s.authenticated = true
	s.token = token
	s.captainTeamID = teamID
}

// Logout clears auth state and collapses member accordions back to the
// team-level view. Expanded teams are left as-is.
func (s *Store) Logout() {
	s.authenticated = false
	s.token = ""
	s.captainTeamID = ""
	s.expandedMembers = make(map[string]bool)
}

// Authenticated reports whether a captain is logged in.
func (s *Store) Authenticated() bool { return s.authenticated }

// Token returns the bearer credential for authorized writes.
func (s *Store) Token() string { return s.token }

// CaptainTeamID returns the team the captain may edit ("" if none).
func (s *Store) CaptainTeamID() string { return s.captainTeamID }

// CanEdit reports whether the authenticated captain may edit this team.
func (s *Store) CanEdit(teamID string) bool {
	return s.authenticated && s.captainTeamID == teamID
}

// ── UI-only state (never triggers network) ───────────────────────────────────

// ToggleTeam flips a team card's expansion.
func (s *Store) ToggleTeam(teamID string) {
	if s.expandedTeams[teamID] {
		delete(s.expandedTeams, teamID)
	} else {
		s.expandedTeams[teamID] = true
	}
}

// ToggleMember flips a member accordion's expansion.
func (s *Store) ToggleMember(memberID string) {
	if s.expandedMembers[memberID] {
		delete(s.expandedMembers, memberID)
	} else {
		s.expandedMembers[memberID] = true
	}
}

// ExpandTeam force-expands a team card (used by search jump).
func (s *Store) ExpandTeam(teamID string) {
	s.expandedTeams[teamID] = true
}

// TeamExpanded reports whether a team card is expanded.
func (s *Store) TeamExpanded(teamID string) bool { return s.expandedTeams[teamID] }

// MemberExpanded reports whether a member accordion is expanded.
func (s *Store) MemberExpanded(memberID string) bool { return s.expandedMembers[memberID] }

// SetSaving marks or clears a member's in-flight save indicator.
func (s *Store) SetSaving(memberID string, saving bool) {
	if saving {
		s.saving[memberID] = true
	} else {
		delete(s.saving, memberID)
	}
}

// Saving reports whether a member has a write in flight.
func (s *Store) Saving(memberID string) bool { return s.saving[memberID] }

// SetSearch records the current search query.
func (s *Store) SetSearch(query string) { s.searchQuery = query }

// Search returns the current search query.
func (s *Store) Search() string { return s.searchQuery }

// SetHighlight points the search-jump highlight at a member ("" clears).
func (s *Store) SetHighlight(memberID string) { s.highlightMember = memberID }

// Highlight returns the highlighted member ID ("" if none).
func (s *Store) Highlight() string { return s.highlightMember }

// ── derived reads for the render pipeline ────────────────────────────────────

// Config returns the competition config.
func (s *Store) Config() domain.Config { return s.config }

// Standing is one leaderboard row.
type Standing struct {
	Team        domain.Team
	Total       int
	MemberCount int
}

// Standings returns teams sorted by total descending. Sorting is stable so
// tied teams keep their server order.
func (s *Store) Standings() []Standing {
	out := make([]Standing, 0, len(s.teams))
	for _, t := range s.teams {
		st := Standing{
			Team:  t,
			Total: scoring.TeamTotal(t, s.members),
		}
		for i := range s.members {
			if s.members[i].TeamID == t.TeamID {
				st.MemberCount++
			}
		}
		out = append(out, st)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// MembersOf returns a team's members sorted by points descending.
func (s *Store) MembersOf(teamID string) []domain.Member {
	var out []domain.Member
	for i := range s.members {
		if s.members[i].TeamID == teamID {
			out = append(out, s.members[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return scoring.Points(&out[i].Scores) > scoring.Points(&out[j].Scores)
	})
	return out
}

// FindMember returns the first member whose name contains the query,
// case-insensitively. First match wins, not best match.
func (s *Store) FindMember(query string) (domain.Member, bool) {
	lower := strings.ToLower(query)
	for i := range s.members {
		if strings.Contains(strings.ToLower(s.members[i].Name), lower) {
			return s.members[i], true
		}
	}
	return domain.Member{}, false
}
