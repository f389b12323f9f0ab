package scoring

import (
	"fmt"
	"strings"

	"github.com/moonshotcrossfit/cup/internal/domain"
)

// BadgeCategory groups earned badges for display styling.
type BadgeCategory int

const (
	CategoryOpen BadgeCategory = iota
	CategoryGrowth
	CategoryFun
	CategoryBonus
)

// Badge is one earned-activity chip for a member's detail row.
type Badge struct {
	Label    string
	Category BadgeCategory
}

// Badges derives the earned-activity chips for a scores record, in a stable
// order matching the scoring categories.
func Badges(s *domain.Scores) []Badge {
	if s == nil {
		return nil
	}
	var badges []Badge
	add := func(label string, cat BadgeCategory) {
		badges = append(badges, Badge{Label: label, Category: cat})
	}

	if s.OpenWorkout1 {
		add("25.1", CategoryOpen)
	}
	if s.OpenWorkout2 {
		add("25.2", CategoryOpen)
	}
	if s.OpenWorkout3 {
		add("25.3", CategoryOpen)
	}
	if s.JudgesCourse {
		add("Judge Cert", CategoryOpen)
	}
	if s.JudgedCount > 0 {
		add(fmt.Sprintf("Judged %d", s.JudgedCount), CategoryOpen)
	}

	if s.FriendsBrought > 0 {
		label := fmt.Sprintf("%d friend", s.FriendsBrought)
		if s.FriendsBrought > 1 {
			label += "s"
		}
		add(label, CategoryGrowth)
	}
	if s.FriendSignup5 > 0 {
		add(fmt.Sprintf("%d 5-pack", s.FriendSignup5), CategoryGrowth)
	}
	if s.FriendSignup10 > 0 {
		add(fmt.Sprintf("%d 10-pack", s.FriendSignup10), CategoryGrowth)
	}
	if s.FriendSignupMembership > 0 {
		add(fmt.Sprintf("%d membership", s.FriendSignupMembership), CategoryGrowth)
	}
	if s.GoogleReview {
		add("Review", CategoryGrowth)
	}
	if s.SocialMediaCount > 0 {
		add(fmt.Sprintf("%d social", s.SocialMediaCount), CategoryGrowth)
	}

	if s.WeeklyChallenge1 {
		add("W1 Challenge", CategoryFun)
	}
	if s.WeeklyChallenge2 {
		add("W2 Challenge", CategoryFun)
	}
	if s.WeeklyChallenge3 {
		add("W3 Challenge", CategoryFun)
	}
	if s.WeeklyChallengeWinner1 {
		add("W1 Winner", CategoryFun)
	}
	if s.WeeklyChallengeWinner2 {
		add("W2 Winner", CategoryFun)
	}
	if s.WeeklyChallengeWinner3 {
		add("W3 Winner", CategoryFun)
	}

	if s.BonusPoints > 0 {
		add(fmt.Sprintf("+%d bonus", s.BonusPoints), CategoryBonus)
	}

	return badges
}

// TeamSummary builds the completion summary line for a team card header,
// e.g. "25.1: 2/3 · Judges: 1/3 · Reviews: 0/3". Open workout columns only
// appear once their week has started. Empty rosters summarize to "".
func TeamSummary(currentWeek int, members []domain.Member) string {
	total := len(members)
	if total == 0 {
		return ""
	}

	var w1, w2, w3, jc, review int
	for i := range members {
		s := &members[i].Scores
		if s.OpenWorkout1 {
			w1++
		}
		if s.OpenWorkout2 {
			w2++
		}
		if s.OpenWorkout3 {
			w3++
		}
		if s.JudgesCourse {
			jc++
		}
		if s.GoogleReview {
			review++
		}
	}

	var parts []string
	if currentWeek >= 1 {
		parts = append(parts, fmt.Sprintf("25.1: %d/%d", w1, total))
	}
	if currentWeek >= 2 {
		parts = append(parts, fmt.Sprintf("25.2: %d/%d", w2, total))
	}
	if currentWeek >= 3 {
		parts = append(parts, fmt.Sprintf("25.3: %d/%d", w3, total))
	}
	parts = append(parts, fmt.Sprintf("Judges: %d/%d", jc, total))
	parts = append(parts, fmt.Sprintf("Reviews: %d/%d", review, total))

	return strings.Join(parts, " · ")
}
