package cli

import (
	"fmt"
	"time"

	"github.com/moonshotcrossfit/cup/internal/cli/formatter"
	"github.com/moonshotcrossfit/cup/internal/domain"
	"github.com/moonshotcrossfit/cup/internal/store"
	"github.com/spf13/cobra"
)

func newStandingsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Print the current leaderboard and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStandings(cmd, app)
		},
	}
}

// runStandings fetches one snapshot and prints the leaderboard to stdout.
// When the API is unreachable it falls back to the demo roster, flagged as
// such, rather than failing with nothing to show.
func runStandings(cmd *cobra.Command, app *App) error {
	st := store.New()

	snap, err := app.API.FetchSnapshot(cmd.Context())
	if err != nil {
		st.ReplaceSnapshot(domain.DemoSnapshot())
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: scoreboard unreachable, showing demo data:", err)
	} else {
		st.ReplaceSnapshot(snap)
	}
	st.MarkSynced(time.Now())

	cfg := st.Config()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.StyleGold.Render("MOONSHOT CUP"), " ", formatter.WeekBadge(cfg.CurrentWeek))
	fmt.Fprintln(out)
	fmt.Fprint(out, formatter.Leaderboard(st.Standings()))
	return nil
}
