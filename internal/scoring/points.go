// Package scoring implements the client-side point model. It mirrors the
// backend's rules exactly: both sides must compute identical totals, so any
// drift here is a bug, not a display choice. Everything in this package is a
// pure function of its inputs.
package scoring

import "github.com/moonshotcrossfit/cup/internal/domain"

// Point values per activity.
const (
	PtsOpenWorkout     = 2 // each, 3 workouts
	PtsJudgesCourse    = 3 // once
	PtsJudged          = 1 // per judging shift, uncapped
	PtsFriendBrought   = 3 // per friend, uncapped
	PtsSignup5Pack     = 5
	PtsSignup10Pack    = 10
	PtsSignupMember    = 15
	PtsGoogleReview    = 2 // once
	PtsSocialPost      = 1 // per post, capped
	SocialCap          = 6 // max counted posts
	PtsWeeklyChallenge = 2 // each, 3 weeks
	PtsChallengeWinner = 3 // each, 3 weeks
	PtsTeamNameBonus   = 3 // flat, once the custom name is submitted
)

// CappedMax is the per-member maximum from one-shot and capped activities.
// CappedPoints + PointsAvailable always sums to this.
const CappedMax = 3*PtsOpenWorkout + PtsJudgesCourse + PtsGoogleReview +
	SocialCap*PtsSocialPost + 3*PtsWeeklyChallenge + 3*PtsChallengeWinner

// CappedPoints is the portion of Points earned from one-shot and capped
// activities, i.e. Points minus the uncapped counters.
func CappedPoints(s *domain.Scores) int {
	if s == nil {
		return 0
	}
	uncapped := s.JudgedCount*PtsJudged +
		s.FriendsBrought*PtsFriendBrought +
		s.FriendSignup5*PtsSignup5Pack +
		s.FriendSignup10*PtsSignup10Pack +
		s.FriendSignupMembership*PtsSignupMember +
		s.BonusPoints
	return Points(s) - uncapped
}

// Points computes a member's total. A nil record scores zero.
func Points(s *domain.Scores) int {
	if s == nil {
		return 0
	}
	pts := 0

	for _, done := range []bool{s.OpenWorkout1, s.OpenWorkout2, s.OpenWorkout3} {
		if done {
			pts += PtsOpenWorkout
		}
	}
	if s.JudgesCourse {
		pts += PtsJudgesCourse
	}
	pts += s.JudgedCount * PtsJudged

	pts += s.FriendsBrought * PtsFriendBrought
	pts += s.FriendSignup5 * PtsSignup5Pack
	pts += s.FriendSignup10 * PtsSignup10Pack
	pts += s.FriendSignupMembership * PtsSignupMember
	if s.GoogleReview {
		pts += PtsGoogleReview
	}
	pts += min(s.SocialMediaCount, SocialCap) * PtsSocialPost

	for _, done := range []bool{s.WeeklyChallenge1, s.WeeklyChallenge2, s.WeeklyChallenge3} {
		if done {
			pts += PtsWeeklyChallenge
		}
	}
	for _, won := range []bool{s.WeeklyChallengeWinner1, s.WeeklyChallengeWinner2, s.WeeklyChallengeWinner3} {
		if won {
			pts += PtsChallengeWinner
		}
	}

	pts += s.BonusPoints
	return pts
}

// TeamTotal sums member points and adds the flat team-name bonus if and only
// if the team has a submitted custom name.
func TeamTotal(team domain.Team, members []domain.Member) int {
	total := 0
	for i := range members {
		if members[i].TeamID == team.TeamID {
			total += Points(&members[i].Scores)
		}
	}
	if team.TeamNameSubmitted {
		total += PtsTeamNameBonus
	}
	return total
}

// PointsAvailable computes what a member can still earn from one-shot and
// capped activities. Uncapped counters have no ceiling to report and never
// contribute.
func PointsAvailable(s *domain.Scores) int {
	if s == nil {
		return CappedMax
	}
	available := 0

	for _, done := range []bool{s.OpenWorkout1, s.OpenWorkout2, s.OpenWorkout3} {
		if !done {
			available += PtsOpenWorkout
		}
	}
	if !s.JudgesCourse {
		available += PtsJudgesCourse
	}
	if !s.GoogleReview {
		available += PtsGoogleReview
	}
	available += (SocialCap - min(s.SocialMediaCount, SocialCap)) * PtsSocialPost

	for _, done := range []bool{s.WeeklyChallenge1, s.WeeklyChallenge2, s.WeeklyChallenge3} {
		if !done {
			available += PtsWeeklyChallenge
		}
	}
	for _, won := range []bool{s.WeeklyChallengeWinner1, s.WeeklyChallengeWinner2, s.WeeklyChallengeWinner3} {
		if !won {
			available += PtsChallengeWinner
		}
	}

	return available
}
