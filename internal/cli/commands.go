package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/moonshotcrossfit/cup/internal/domain"
	"github.com/moonshotcrossfit/cup/internal/localstore"
)

func fetchCmd(app *App) tea.Cmd {
	return func() tea.Msg {
		snap, err := app.API.FetchSnapshot(context.Background())
		return snapshotMsg{snap: snap, err: err}
	}
}

func pollTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return pollTickMsg{} })
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Minute, func(time.Time) tea.Msg { return clockTickMsg{} })
}

func loginCmd(app *App, pin string) tea.Cmd {
	return func() tea.Msg {
		teamID, ok := app.API.Login(context.Background(), pin)
		return loginResultMsg{pin: pin, teamID: teamID, ok: ok}
	}
}

func pushScoresCmd(app *App, token, memberID string, patch domain.ScorePatch) tea.Cmd {
	return func() tea.Msg {
		err := app.API.PushScores(context.Background(), token, memberID, patch)
		return pushDoneMsg{memberID: memberID, err: err}
	}
}

func pushTeamNameCmd(app *App, token, teamID, name string) tea.Cmd {
	return func() tea.Msg {
		err := app.API.PushTeamName(context.Background(), token, teamID, name)
		return pushDoneMsg{err: err}
	}
}

func debounceCmd(quiet time.Duration, key editKey, seq int) tea.Cmd {
	return tea.Tick(quiet, func(time.Time) tea.Msg {
		return debounceFiredMsg{key: key, seq: seq}
	})
}

func restoreSearchCmd(app *App) tea.Cmd {
	return func() tea.Msg {
		if app.Local == nil {
			return searchRestoredMsg{}
		}
		q, ok, err := app.Local.Get(context.Background(), localstore.KeyAthleteSearch)
		if err != nil || !ok {
			return searchRestoredMsg{}
		}
		return searchRestoredMsg{query: q}
	}
}

func persistSearchCmd(app *App, query string) tea.Cmd {
	return func() tea.Msg {
		if app.Local != nil {
			_ = app.Local.Set(context.Background(), localstore.KeyAthleteSearch, query)
		}
		return nil
	}
}

func clearSearchCmd(app *App) tea.Cmd {
	return func() tea.Msg {
		if app.Local != nil {
			_ = app.Local.Delete(context.Background(), localstore.KeyAthleteSearch)
		}
		return nil
	}
}
