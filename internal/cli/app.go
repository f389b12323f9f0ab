// Package cli hosts the terminal UI: the board model (bubbletea), its
// render pipeline, and the cobra entrypoints.
package cli

import (
	"github.com/moonshotcrossfit/cup/internal/api"
	"github.com/moonshotcrossfit/cup/internal/config"
	"github.com/moonshotcrossfit/cup/internal/localstore"
)

// App bundles the collaborators the UI needs.
type App struct {
	API   *api.Client
	Local *localstore.Store
	Cfg   config.Config

	// IsInteractive reports whether stdin/stdout is a real terminal.
	// Non-interactive invocations degrade to a one-shot standings print.
	IsInteractive func() bool
}
