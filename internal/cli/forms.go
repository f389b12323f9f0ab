package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/moonshotcrossfit/cup/internal/cli/formatter"
)

// cupHuhTheme adapts huh's base theme to the board's gold-accent palette.
func cupHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorGold).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorGold)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorGold)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("enter a value")
	}
	return nil
}

// newLoginForm builds the captain PIN prompt.
func newLoginForm(pin *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Captain PIN").
				Placeholder("••••").
				EchoMode(huh.EchoModePassword).
				Value(pin).
				Validate(validateNonEmpty),
		),
	).WithTheme(cupHuhTheme()).WithShowHelp(false)
}

// newTeamNameForm builds the one-time custom team name prompt.
func newTeamNameForm(name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Team Name").
				Placeholder("Enter team name").
				Value(name).
				Validate(validateNonEmpty),
		),
	).WithTheme(cupHuhTheme()).WithShowHelp(false)
}
