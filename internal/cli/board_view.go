package cli

import (
	"strings"
	"time"

	"github.com/moonshotcrossfit/cup/internal/cli/formatter"
	"github.com/moonshotcrossfit/cup/internal/domain"
	"github.com/moonshotcrossfit/cup/internal/scoring"
)

// rebuild regenerates the flattened row list and the viewport body in one
// pass, so cursor indexes and rendered lines can never drift apart. Called
// after every mutation that affects what is on screen.
func (m *boardModel) rebuild() {
	m.rows = m.rows[:0]
	m.rowLines = m.rowLines[:0]
	m.highlightLine = -1

	standings := m.store.Standings()
	cfg := m.store.Config()

	var lines []string
	push := func(s string) {
		for _, ln := range strings.Split(s, "\n") {
			lines = append(lines, ln)
		}
	}
	pushRow := func(r row, rendered string) {
		m.rowLines = append(m.rowLines, len(lines))
		m.rows = append(m.rows, r)
		lines = append(lines, rendered)
	}

	push(formatter.Leaderboard(standings))
	push(formatter.ChallengeCard(cfg))
	lines = append(lines, "")
	lines = append(lines, formatter.StyleHeader.Render("TEAMS"))

	for _, st := range standings {
		team := st.Team
		members := m.store.MembersOf(team.TeamID)
		expanded := m.store.TeamExpanded(team.TeamID)
		editable := m.store.CanEdit(team.TeamID)
		color := domain.MetaFor(team.TeamID).Color

		selected := len(m.rows) == m.cursor
		pushRow(row{kind: rowTeam, teamID: team.TeamID},
			formatter.TeamHeaderLine(team, st.Total, st.MemberCount, expanded, selected))

		if !expanded {
			continue
		}

		if summary := scoring.TeamSummary(cfg.CurrentWeek, members); summary != "" {
			lines = append(lines, "    "+formatter.Dim(summary))
		}
		if editable {
			push(formatter.TeamNameStatus(team))
		}

		for _, member := range members {
			memberOpen := m.store.MemberExpanded(member.MemberID)
			selected := len(m.rows) == m.cursor
			pushRow(row{kind: rowMember, teamID: team.TeamID, memberID: member.MemberID},
				formatter.MemberLine(member, color, scoring.Points(&member.Scores),
					memberOpen, selected,
					m.store.Saving(member.MemberID),
					m.store.Highlight() == member.MemberID))
			if m.store.Highlight() == member.MemberID {
				m.highlightLine = len(lines) - 1
			}

			if !memberOpen {
				continue
			}

			if editable {
				for _, section := range editSections {
					lines = append(lines, formatter.SectionLabel(section.title))
					for _, field := range section.fields {
						selected := len(m.rows) == m.cursor
						var rendered string
						if field.IsCounter() {
							rendered = formatter.StepperLine(fieldLabels[field],
								member.Scores.Count(field), selected)
						} else {
							rendered = formatter.ToggleLine(fieldLabels[field],
								member.Scores.Flag(field), selected)
						}
						pushRow(row{
							kind:     rowField,
							teamID:   team.TeamID,
							memberID: member.MemberID,
							field:    field,
						}, rendered)
					}
				}
			} else {
				push(strings.TrimRight(formatter.MemberDetail(&member.Scores), "\n"))
			}
		}
		lines = append(lines, "")
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.vp.SetContent(strings.Join(lines, "\n"))
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m boardModel) View() string {
	if m.quitting {
		return ""
	}

	cfg := m.store.Config()
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))

	var b strings.Builder
	b.WriteString(m.headerLine(cfg))
	b.WriteString("\n")
	b.WriteString(m.statusLine(cfg))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Search: ") + m.search.View())
	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n")

	switch m.mode {
	case modeLogin:
		b.WriteString(m.loginView())
	case modeTeamName:
		b.WriteString(m.nameView())
	default:
		b.WriteString(m.vp.View())
	}

	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n")
	b.WriteString(m.footerLine())
	return b.String()
}

func (m boardModel) headerLine(cfg domain.Config) string {
	parts := []string{
		formatter.StyleGold.Render("MOONSHOT CUP"),
		formatter.WeekBadge(cfg.CurrentWeek),
		formatter.Dim(formatter.UpdatedLabel(m.store.LastSynced(), time.Now())),
	}
	if m.offline {
		parts = append(parts, formatter.StyleAmber.Render("offline"))
	}
	return strings.Join(parts, "  ")
}

func (m boardModel) statusLine(cfg domain.Config) string {
	subtitle := formatter.Dim(formatter.HeroSubtitle(cfg.CurrentWeek))
	if !m.store.Authenticated() {
		return subtitle + "  " + formatter.Dim("· viewing — press l to log in")
	}
	label := "Captain"
	if team, ok := m.store.Team(m.store.CaptainTeamID()); ok {
		label = "Captain · " + team.DisplayName()
	}
	return subtitle + "  " + formatter.StyleGreen.Render(label)
}

func (m boardModel) loginView() string {
	var b strings.Builder
	if m.loginErr {
		b.WriteString(formatter.StyleRed.Render("Invalid PIN — not recognized"))
		b.WriteString("\n\n")
	}
	if m.loggingIn {
		b.WriteString(formatter.Dim("Checking PIN..."))
		b.WriteString("\n\n")
	}
	if m.loginForm != nil {
		b.WriteString(m.loginForm.View())
	}
	return b.String()
}

func (m boardModel) nameView() string {
	var b strings.Builder
	b.WriteString(formatter.Dim("One shot: the team name locks in once submitted."))
	b.WriteString("\n\n")
	if m.nameForm != nil {
		b.WriteString(m.nameForm.View())
	}
	return b.String()
}

func (m boardModel) footerLine() string {
	switch m.mode {
	case modeLogin, modeTeamName:
		return formatter.Dim("enter confirm · esc cancel")
	}
	if m.search.Focused() {
		return formatter.Dim("type to search · enter/esc done")
	}
	hints := "↑/↓ move · enter expand · / search · r refresh · q quit"
	if m.store.Authenticated() {
		hints = "↑/↓ move · enter toggle · +/− adjust · n team name · L logout · q quit"
	} else {
		hints += " · l captain login"
	}
	if m.lastPushErr != nil {
		return formatter.StyleAmber.Render("save failed, board will resync") + "  " + formatter.Dim(hints)
	}
	return formatter.Dim(hints)
}
