package formatter

import (
	"fmt"
	"strings"

	"github.com/moonshotcrossfit/cup/internal/domain"
	"github.com/moonshotcrossfit/cup/internal/scoring"
)

// BadgeChips renders a member's earned-activity chips on one line.
func BadgeChips(badges []scoring.Badge) string {
	if len(badges) == 0 {
		return Dim("No activity yet")
	}
	chips := make([]string, 0, len(badges))
	for _, b := range badges {
		chips = append(chips, BadgeStyle(b.Category).Render("["+b.Label+"]"))
	}
	return strings.Join(chips, " ")
}

// TeamHeaderLine renders a team card's header row.
func TeamHeaderLine(team domain.Team, total, memberCount int, expanded, selected bool) string {
	meta := domain.MetaFor(team.TeamID)
	arrow := "▸"
	if expanded {
		arrow = "▾"
	}
	cursor := "  "
	if selected {
		cursor = StyleGold.Render("› ")
	}
	name := TeamStyle(meta.Color).Render(Truncate(team.DisplayName(), 28))
	return fmt.Sprintf("%s%s %s  %s  %s",
		cursor,
		Dim(arrow),
		name,
		Bold(fmt.Sprintf("%d pts", total)),
		Dim(fmt.Sprintf("Captain: %s · %d members", meta.Captain, memberCount)),
	)
}

// MemberLine renders a compact roster row for one member.
func MemberLine(m domain.Member, color string, pts int, expanded, selected, saving, highlighted bool) string {
	arrow := "▸"
	if expanded {
		arrow = "▾"
	}
	cursor := "    "
	if selected {
		cursor = "  " + StyleGold.Render("› ")
	}
	name := m.Name
	if highlighted {
		name = StyleHighlight.Render(name)
	} else {
		name = StyleFg.Render(name)
	}
	line := fmt.Sprintf("%s%s %s  %s",
		cursor, Dim(arrow), PadRight(name, 24), TeamStyle(color).Render(fmt.Sprintf("%d pts", pts)))
	if saving {
		line += "  " + StyleAmber.Render("Saving...")
	}
	return line
}

// MemberDetail renders the read-only accordion body: badges, remaining
// capped points, and missing-activity hints.
func MemberDetail(s *domain.Scores) string {
	var b strings.Builder
	b.WriteString("      " + BadgeChips(scoring.Badges(s)) + "\n")

	if available := scoring.PointsAvailable(s); available > 0 {
		b.WriteString("      " + StyleGold.Render(fmt.Sprintf("%d pts", available)) +
			Dim(" still available (capped activities) + uncapped (judging, friends)") + "\n")
	}
	if missing := scoring.MissingActivities(s); len(missing) > 0 {
		b.WriteString("      " + Dim("Not yet: "+strings.Join(missing, ", ")) + "\n")
	}
	return b.String()
}

// SectionLabel renders an edit-roster section header (Open / Growth / Fun).
func SectionLabel(title string) string {
	return "      " + StyleHeader.Render(strings.ToUpper(title))
}

// ToggleLine renders an editable one-shot switch row.
func ToggleLine(label string, on, selected bool) string {
	mark := Dim("○")
	if on {
		mark = StyleGreen.Render("●")
	}
	cursor := "        "
	if selected {
		cursor = "      " + StyleGold.Render("› ")
	}
	return fmt.Sprintf("%s%s %s", cursor, mark, StyleFg.Render(label))
}

// StepperLine renders an editable counter row with its current value.
func StepperLine(label string, value int, selected bool) string {
	cursor := "        "
	if selected {
		cursor = "      " + StyleGold.Render("› ")
	}
	return fmt.Sprintf("%s%s %s %s %s",
		cursor,
		Dim("−"),
		Bold(fmt.Sprintf("%2d", value)),
		Dim("+"),
		StyleFg.Render(label),
	)
}

// TeamNameStatus renders the team-name slot in an edit roster: either the
// submission hint or the locked-in confirmation.
func TeamNameStatus(team domain.Team) string {
	if team.TeamNameSubmitted {
		name := team.TeamNameEntry
		if name == "" {
			name = team.DisplayName()
		}
		return "      " + StyleGreen.Render("✓ "+name) + Dim(fmt.Sprintf(" (+%d pts)", scoring.PtsTeamNameBonus))
	}
	return "      " + StylePurple.Render(fmt.Sprintf("Team Name (%d pts by Mar 3)", scoring.PtsTeamNameBonus)) +
		Dim(" — press n to submit")
}
