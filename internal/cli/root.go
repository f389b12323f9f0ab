package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "cup" command. Running it bare opens the
// live board; non-interactive stdout falls back to a one-shot standings print.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cup",
		Short:         "Live scoreboard for the Moonshot Cup team competition",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return runStandings(cmd, app)
			}
			return runBoard(app)
		},
	}

	root.AddCommand(newStandingsCmd(app))

	return root
}

func runBoard(app *App) error {
	p := tea.NewProgram(newBoardModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
