package formatter

import (
	"fmt"
	"strings"

	"github.com/moonshotcrossfit/cup/internal/domain"
	"github.com/moonshotcrossfit/cup/internal/store"
)

// RankRow is one computed leaderboard entry.
type RankRow struct {
	Rank        int
	DisplayName string
	Captain     string
	Color       string
	MemberCount int
	Total       int
	GapLabel    string
}

// BuildRankRows turns sorted standings into display rows with rank, gap and
// tie labels. Tie detection is pairwise against the immediately preceding
// rank; the gap is always measured against the leader and never negative.
func BuildRankRows(standings []store.Standing) []RankRow {
	rows := make([]RankRow, 0, len(standings))
	leaderTotal := 0
	if len(standings) > 0 {
		leaderTotal = standings[0].Total
	}

	for i, st := range standings {
		rank := i + 1
		meta := domain.MetaFor(st.Team.TeamID)

		var gapLabel string
		switch {
		case rank == 1:
			if len(standings) > 1 && standings[1].Total == st.Total {
				gapLabel = "Tied for 1st"
			} else {
				gapLabel = "Leader"
			}
		case st.Total == standings[i-1].Total:
			gapLabel = fmt.Sprintf("Tied for %d%s", rank, OrdSuffix(rank))
		default:
			gapLabel = fmt.Sprintf("%d pts behind", leaderTotal-st.Total)
		}

		rows = append(rows, RankRow{
			Rank:        rank,
			DisplayName: st.Team.DisplayName(),
			Captain:     meta.Captain,
			Color:       meta.Color,
			MemberCount: st.MemberCount,
			Total:       st.Total,
			GapLabel:    gapLabel,
		})
	}
	return rows
}

// AllZero reports whether every standing totals zero.
func AllZero(standings []store.Standing) bool {
	for _, st := range standings {
		if st.Total != 0 {
			return false
		}
	}
	return true
}

// ZeroStateBanner is shown above the ranks before any points are scored.
func ZeroStateBanner() string {
	return StyleDim.Render("Competition kicks off Feb 27") + "\n" +
		StyleDim.Render("Check back for live standings")
}

// Leaderboard renders the stacked rank rows. Before any points are scored the
// zero-state banner renders first, with the rank rows still beneath it.
func Leaderboard(standings []store.Standing) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("LEADERBOARD"))
	b.WriteString("\n")

	if AllZero(standings) {
		b.WriteString(ZeroStateBanner())
		b.WriteString("\n")
	}

	for _, r := range BuildRankRows(standings) {
		style := TeamStyle(r.Color)
		b.WriteString(fmt.Sprintf(" %s %s  %s\n",
			style.Render(fmt.Sprintf("%d.", r.Rank)),
			style.Render(PadRight(Truncate(r.DisplayName, 22), 22)),
			Bold(fmt.Sprintf("%d pts", r.Total)),
		))
		b.WriteString("    " + Dim(fmt.Sprintf("Captain: %s · %d members · %s",
			r.Captain, r.MemberCount, r.GapLabel)))
		b.WriteString("\n")
	}

	return b.String()
}
