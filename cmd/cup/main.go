package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/moonshotcrossfit/cup/internal/api"
	"github.com/moonshotcrossfit/cup/internal/cli"
	"github.com/moonshotcrossfit/cup/internal/config"
	"github.com/moonshotcrossfit/cup/internal/localstore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Local cache path: config or default ~/.cup/cache.db
	cachePath := cfg.CachePath
	if cachePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		cachePath = filepath.Join(home, ".cup", "cache.db")
	}

	local, err := localstore.Open(cachePath)
	if err != nil {
		return fmt.Errorf("opening local cache: %w", err)
	}
	defer local.Close()

	app := &cli.App{
		API:   api.New(cfg.APIURL),
		Local: local,
		Cfg:   cfg,
	}

	// Detect interactive terminal so piped output gets plain standings.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
