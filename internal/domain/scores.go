package domain

// Scores is a member's activity record. The schema is closed: every
// recognized activity key is an explicit field, so a typo'd key is a compile
// error rather than a silently-zero map lookup. Missing wire keys decode to
// their zero value, which scores as "not done".
type Scores struct {
	// One-shot completions.
	OpenWorkout1 bool `json:"openWorkout1,omitempty"`
	OpenWorkout2 bool `json:"openWorkout2,omitempty"`
	OpenWorkout3 bool `json:"openWorkout3,omitempty"`
	JudgesCourse bool `json:"judgesCourse,omitempty"`
	GoogleReview bool `json:"googleReview,omitempty"`

	WeeklyChallenge1       bool `json:"weeklyChallenge1,omitempty"`
	WeeklyChallenge2       bool `json:"weeklyChallenge2,omitempty"`
	WeeklyChallenge3       bool `json:"weeklyChallenge3,omitempty"`
	WeeklyChallengeWinner1 bool `json:"weeklyChallengeWinner1,omitempty"`
	WeeklyChallengeWinner2 bool `json:"weeklyChallengeWinner2,omitempty"`
	WeeklyChallengeWinner3 bool `json:"weeklyChallengeWinner3,omitempty"`

	// Counters. All are floored at zero; SocialMediaCount records beyond the
	// scoring cap but only the first capped units count.
	JudgedCount            int `json:"judgedCount,omitempty"`
	FriendsBrought         int `json:"friendsBrought,omitempty"`
	FriendSignup5          int `json:"friendSignup5,omitempty"`
	FriendSignup10         int `json:"friendSignup10,omitempty"`
	FriendSignupMembership int `json:"friendSignupMembership,omitempty"`
	SocialMediaCount       int `json:"socialMediaCount,omitempty"`
	BonusPoints            int `json:"bonusPoints,omitempty"`
}

// Field names one activity key. The string value doubles as the wire key.
type Field string

const (
	FieldOpenWorkout1 Field = "openWorkout1"
	FieldOpenWorkout2 Field = "openWorkout2"
	FieldOpenWorkout3 Field = "openWorkout3"
	FieldJudgesCourse Field = "judgesCourse"
	FieldGoogleReview Field = "googleReview"

	FieldWeeklyChallenge1       Field = "weeklyChallenge1"
	FieldWeeklyChallenge2       Field = "weeklyChallenge2"
	FieldWeeklyChallenge3       Field = "weeklyChallenge3"
	FieldWeeklyChallengeWinner1 Field = "weeklyChallengeWinner1"
	FieldWeeklyChallengeWinner2 Field = "weeklyChallengeWinner2"
	FieldWeeklyChallengeWinner3 Field = "weeklyChallengeWinner3"

	FieldJudgedCount            Field = "judgedCount"
	FieldFriendsBrought         Field = "friendsBrought"
	FieldFriendSignup5          Field = "friendSignup5"
	FieldFriendSignup10         Field = "friendSignup10"
	FieldFriendSignupMembership Field = "friendSignupMembership"
	FieldSocialMediaCount       Field = "socialMediaCount"
	FieldBonusPoints            Field = "bonusPoints"
)

// IsCounter reports whether the field is a numeric counter (as opposed to a
// one-shot boolean flag).
func (f Field) IsCounter() bool {
	switch f {
	case FieldJudgedCount, FieldFriendsBrought, FieldFriendSignup5,
		FieldFriendSignup10, FieldFriendSignupMembership,
		FieldSocialMediaCount, FieldBonusPoints:
		return true
	}
	return false
}

// Flag returns the value of a boolean field. Counter fields return false.
func (s *Scores) Flag(f Field) bool {
	switch f {
	case FieldOpenWorkout1:
		return s.OpenWorkout1
	case FieldOpenWorkout2:
		return s.OpenWorkout2
	case FieldOpenWorkout3:
		return s.OpenWorkout3
	case FieldJudgesCourse:
		return s.JudgesCourse
	case FieldGoogleReview:
		return s.GoogleReview
	case FieldWeeklyChallenge1:
		return s.WeeklyChallenge1
	case FieldWeeklyChallenge2:
		return s.WeeklyChallenge2
	case FieldWeeklyChallenge3:
		return s.WeeklyChallenge3
	case FieldWeeklyChallengeWinner1:
		return s.WeeklyChallengeWinner1
	case FieldWeeklyChallengeWinner2:
		return s.WeeklyChallengeWinner2
	case FieldWeeklyChallengeWinner3:
		return s.WeeklyChallengeWinner3
	}
	return false
}

// Count returns the value of a counter field. Flag fields return 0.
func (s *Scores) Count(f Field) int {
	switch f {
	case FieldJudgedCount:
		return s.JudgedCount
	case FieldFriendsBrought:
		return s.FriendsBrought
	case FieldFriendSignup5:
		return s.FriendSignup5
	case FieldFriendSignup10:
		return s.FriendSignup10
	case FieldFriendSignupMembership:
		return s.FriendSignupMembership
	case FieldSocialMediaCount:
		return s.SocialMediaCount
	case FieldBonusPoints:
		return s.BonusPoints
	}
	return 0
}

// SetFlag sets a boolean field. Counter fields are ignored.
func (s *Scores) SetFlag(f Field, v bool) {
	switch f {
	case FieldOpenWorkout1:
		s.OpenWorkout1 = v
	case FieldOpenWorkout2:
		s.OpenWorkout2 = v
	case FieldOpenWorkout3:
		s.OpenWorkout3 = v
	case FieldJudgesCourse:
		s.JudgesCourse = v
	case FieldGoogleReview:
		s.GoogleReview = v
	case FieldWeeklyChallenge1:
		s.WeeklyChallenge1 = v
	case FieldWeeklyChallenge2:
		s.WeeklyChallenge2 = v
	case FieldWeeklyChallenge3:
		s.WeeklyChallenge3 = v
	case FieldWeeklyChallengeWinner1:
		s.WeeklyChallengeWinner1 = v
	case FieldWeeklyChallengeWinner2:
		s.WeeklyChallengeWinner2 = v
	case FieldWeeklyChallengeWinner3:
		s.WeeklyChallengeWinner3 = v
	}
}

// SetCount sets a counter field, floored at zero. Flag fields are ignored.
func (s *Scores) SetCount(f Field, n int) {
	if n < 0 {
		n = 0
	}
	switch f {
	case FieldJudgedCount:
		s.JudgedCount = n
	case FieldFriendsBrought:
		s.FriendsBrought = n
	case FieldFriendSignup5:
		s.FriendSignup5 = n
	case FieldFriendSignup10:
		s.FriendSignup10 = n
	case FieldFriendSignupMembership:
		s.FriendSignupMembership = n
	case FieldSocialMediaCount:
		s.SocialMediaCount = n
	case FieldBonusPoints:
		s.BonusPoints = n
	}
}
