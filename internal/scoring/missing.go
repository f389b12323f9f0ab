package scoring

import (
	"fmt"

	"github.com/moonshotcrossfit/cup/internal/domain"
)

// MissingActivities lists what a member hasn't done yet, in a fixed order:
// open workouts, judges course, review, social remainder, weekly challenges.
func MissingActivities(s *domain.Scores) []string {
	if s == nil {
		s = &domain.Scores{}
	}
	var missing []string

	if !s.OpenWorkout1 {
		missing = append(missing, fmt.Sprintf("25.1 (%d pts)", PtsOpenWorkout))
	}
	if !s.OpenWorkout2 {
		missing = append(missing, fmt.Sprintf("25.2 (%d pts)", PtsOpenWorkout))
	}
	if !s.OpenWorkout3 {
		missing = append(missing, fmt.Sprintf("25.3 (%d pts)", PtsOpenWorkout))
	}
	if !s.JudgesCourse {
		missing = append(missing, fmt.Sprintf("Judges Course (%d pts)", PtsJudgesCourse))
	}
	if !s.GoogleReview {
		missing = append(missing, fmt.Sprintf("Google Review (%d pts)", PtsGoogleReview))
	}
	if used := min(s.SocialMediaCount, SocialCap); used < SocialCap {
		missing = append(missing, fmt.Sprintf("Social posts (%d more)", SocialCap-used))
	}
	if !s.WeeklyChallenge1 {
		missing = append(missing, fmt.Sprintf("W1 Challenge (%d pts)", PtsWeeklyChallenge))
	}
	if !s.WeeklyChallenge2 {
		missing = append(missing, fmt.Sprintf("W2 Challenge (%d pts)", PtsWeeklyChallenge))
	}
	if !s.WeeklyChallenge3 {
		missing = append(missing, fmt.Sprintf("W3 Challenge (%d pts)", PtsWeeklyChallenge))
	}

	return missing
}
