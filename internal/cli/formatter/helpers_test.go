package formatter

import (
	"testing"
	"time"

	"github.com/moonshotcrossfit/cup/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrdSuffix(t *testing.T) {
	assert.Equal(t, "st", OrdSuffix(1))
	assert.Equal(t, "nd", OrdSuffix(2))
	assert.Equal(t, "rd", OrdSuffix(3))
	assert.Equal(t, "th", OrdSuffix(4))
	assert.Equal(t, "th", OrdSuffix(11))
	assert.Equal(t, "th", OrdSuffix(12))
	assert.Equal(t, "th", OrdSuffix(13))
	assert.Equal(t, "st", OrdSuffix(21))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "long…", Truncate("longer name", 5))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "abcd", PadRight("abcd", 3))
}

func TestUpdatedLabel(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Loading...", UpdatedLabel(time.Time{}, now))
	assert.Equal(t, "Updated just now", UpdatedLabel(now.Add(-20*time.Second), now))
	assert.Equal(t, "Updated 5 min ago", UpdatedLabel(now.Add(-5*time.Minute), now))
	assert.Equal(t, "Updated 2 hr ago", UpdatedLabel(now.Add(-2*time.Hour), now))
}

func TestHeroSubtitle(t *testing.T) {
	assert.Equal(t, "The Open Starts Now", HeroSubtitle(1))
	assert.Equal(t, "The Race Heats Up", HeroSubtitle(2))
	assert.Equal(t, "Final Week — Every Point Counts", HeroSubtitle(3))
}

func TestChallengeCard(t *testing.T) {
	out := ChallengeCard(domain.DefaultConfig())
	assert.Contains(t, out, "WEEK 1 CHALLENGE")
	assert.Contains(t, out, "Not a Water Bottle")
}
