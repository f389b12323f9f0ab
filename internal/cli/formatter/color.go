package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/moonshotcrossfit/cup/internal/scoring"
)

// Palette matching the competition site's theme.
var (
	ColorGold   = lipgloss.Color("#D4AF37")
	ColorRed    = lipgloss.Color("#EF4444")
	ColorGreen  = lipgloss.Color("#10B981")
	ColorBlue   = lipgloss.Color("#3B82F6")
	ColorAmber  = lipgloss.Color("#F59E0B")
	ColorPurple = lipgloss.Color("#A78BFA")
	ColorDim    = lipgloss.Color("#6B7280")
	ColorFg     = lipgloss.Color("#E5E7EB")
)

// Predefined lipgloss styles.
var (
	StyleGold      = lipgloss.NewStyle().Foreground(ColorGold)
	StyleRed       = lipgloss.NewStyle().Foreground(ColorRed)
	StyleGreen     = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleBlue      = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleAmber     = lipgloss.NewStyle().Foreground(ColorAmber)
	StylePurple    = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim       = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg        = lipgloss.NewStyle().Foreground(ColorFg)
	StyleBold      = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleHeader    = lipgloss.NewStyle().Foreground(ColorGold).Bold(true)
	StyleHighlight = lipgloss.NewStyle().Foreground(ColorFg).Background(lipgloss.Color("#374151")).Bold(true)
)

// TeamStyle returns a style in the team's hex accent color.
func TeamStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}

// BadgeStyle maps a badge category to its chip style.
func BadgeStyle(cat scoring.BadgeCategory) lipgloss.Style {
	switch cat {
	case scoring.CategoryOpen:
		return StyleBlue
	case scoring.CategoryGrowth:
		return StyleGreen
	case scoring.CategoryFun:
		return StyleAmber
	default:
		return StylePurple
	}
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
