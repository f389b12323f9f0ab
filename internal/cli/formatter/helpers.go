package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/moonshotcrossfit/cup/internal/domain"
)

// OrdSuffix returns the English ordinal suffix for n ("st", "nd", "rd", "th").
func OrdSuffix(n int) string {
	v := n % 100
	if v >= 11 && v <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// PadRight pads s with spaces to width (no-op when already longer).
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Truncate shortens s to at most width runes, ellipsized.
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

// UpdatedLabel renders the "time since last update" footer text.
// A zero timestamp means no sync attempt has completed yet.
func UpdatedLabel(lastSynced, now time.Time) string {
	if lastSynced.IsZero() {
		return "Loading..."
	}
	diff := now.Sub(lastSynced)
	switch {
	case diff < time.Minute:
		return "Updated just now"
	case diff < time.Hour:
		return fmt.Sprintf("Updated %d min ago", int(diff.Minutes()))
	default:
		return fmt.Sprintf("Updated %d hr ago", int(diff.Hours()))
	}
}

// WeekBadge renders the hero week indicator.
func WeekBadge(week int) string {
	return StyleGold.Render(fmt.Sprintf("Week %d of 3", week))
}

// HeroSubtitle returns the week-dependent tagline.
func HeroSubtitle(week int) string {
	switch week {
	case 2:
		return "The Race Heats Up"
	case 3:
		return "Final Week — Every Point Counts"
	default:
		return "The Open Starts Now"
	}
}

// ChallengeCard renders the weekly challenge block.
func ChallengeCard(cfg domain.Config) string {
	ch := cfg.ChallengeForWeek(cfg.CurrentWeek)
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("WEEK %d CHALLENGE", ch.Week)))
	b.WriteString("\n")
	b.WriteString(Bold(ch.Title))
	if ch.Desc != "" {
		b.WriteString("\n")
		b.WriteString(Dim(ch.Desc))
	}
	return b.String()
}
