package domain

// ScorePatch is a field-level partial update to a Scores record. Nil fields
// are untouched on merge, so two patches to different fields within one
// session never clobber each other. Marshals sparse, matching the wire's
// Partial<ScoresRecord> shape.
type ScorePatch struct {
	OpenWorkout1 *bool `json:"openWorkout1,omitempty"`
	OpenWorkout2 *bool `json:"openWorkout2,omitempty"`
	OpenWorkout3 *bool `json:"openWorkout3,omitempty"`
	JudgesCourse *bool `json:"judgesCourse,omitempty"`
	GoogleReview *bool `json:"googleReview,omitempty"`

	WeeklyChallenge1       *bool `json:"weeklyChallenge1,omitempty"`
	WeeklyChallenge2       *bool `json:"weeklyChallenge2,omitempty"`
	WeeklyChallenge3       *bool `json:"weeklyChallenge3,omitempty"`
	WeeklyChallengeWinner1 *bool `json:"weeklyChallengeWinner1,omitempty"`
	WeeklyChallengeWinner2 *bool `json:"weeklyChallengeWinner2,omitempty"`
	WeeklyChallengeWinner3 *bool `json:"weeklyChallengeWinner3,omitempty"`

	JudgedCount            *int `json:"judgedCount,omitempty"`
	FriendsBrought         *int `json:"friendsBrought,omitempty"`
	FriendSignup5          *int `json:"friendSignup5,omitempty"`
	FriendSignup10         *int `json:"friendSignup10,omitempty"`
	FriendSignupMembership *int `json:"friendSignupMembership,omitempty"`
	SocialMediaCount       *int `json:"socialMediaCount,omitempty"`
	BonusPoints            *int `json:"bonusPoints,omitempty"`
}

// FlagPatch builds a patch setting a single boolean field.
func FlagPatch(f Field, v bool) ScorePatch {
	var p ScorePatch
	p.PutFlag(f, v)
	return p
}

// CountPatch builds a patch setting a single counter field.
func CountPatch(f Field, n int) ScorePatch {
	var p ScorePatch
	p.PutCount(f, n)
	return p
}

// PutFlag records a boolean field in the patch. Counter fields are ignored.
func (p *ScorePatch) PutFlag(f Field, v bool) {
	val := v
	switch f {
	case FieldOpenWorkout1:
		p.OpenWorkout1 = &val
	case FieldOpenWorkout2:
		p.OpenWorkout2 = &val
	case FieldOpenWorkout3:
		p.OpenWorkout3 = &val
	case FieldJudgesCourse:
		p.JudgesCourse = &val
	case FieldGoogleReview:
		p.GoogleReview = &val
	case FieldWeeklyChallenge1:
		p.WeeklyChallenge1 = &val
	case FieldWeeklyChallenge2:
		p.WeeklyChallenge2 = &val
	case FieldWeeklyChallenge3:
		p.WeeklyChallenge3 = &val
	case FieldWeeklyChallengeWinner1:
		p.WeeklyChallengeWinner1 = &val
	case FieldWeeklyChallengeWinner2:
		p.WeeklyChallengeWinner2 = &val
	case FieldWeeklyChallengeWinner3:
		p.WeeklyChallengeWinner3 = &val
	}
}

// PutCount records a counter field in the patch. Flag fields are ignored.
func (p *ScorePatch) PutCount(f Field, n int) {
	val := n
	switch f {
	case FieldJudgedCount:
		p.JudgedCount = &val
	case FieldFriendsBrought:
		p.FriendsBrought = &val
	case FieldFriendSignup5:
		p.FriendSignup5 = &val
	case FieldFriendSignup10:
		p.FriendSignup10 = &val
	case FieldFriendSignupMembership:
		p.FriendSignupMembership = &val
	case FieldSocialMediaCount:
		p.SocialMediaCount = &val
	case FieldBonusPoints:
		p.BonusPoints = &val
	}
}

// Apply merges the patch into s. Unset fields keep their prior values;
// counters are floored at zero.
func (s *Scores) Apply(p ScorePatch) {
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			if *src < 0 {
				*dst = 0
			} else {
				*dst = *src
			}
		}
	}

	setBool(&s.OpenWorkout1, p.OpenWorkout1)
	setBool(&s.OpenWorkout2, p.OpenWorkout2)
	setBool(&s.OpenWorkout3, p.OpenWorkout3)
	setBool(&s.JudgesCourse, p.JudgesCourse)
	setBool(&s.GoogleReview, p.GoogleReview)
	setBool(&s.WeeklyChallenge1, p.WeeklyChallenge1)
	setBool(&s.WeeklyChallenge2, p.WeeklyChallenge2)
	setBool(&s.WeeklyChallenge3, p.WeeklyChallenge3)
	setBool(&s.WeeklyChallengeWinner1, p.WeeklyChallengeWinner1)
	setBool(&s.WeeklyChallengeWinner2, p.WeeklyChallengeWinner2)
	setBool(&s.WeeklyChallengeWinner3, p.WeeklyChallengeWinner3)

	setInt(&s.JudgedCount, p.JudgedCount)
	setInt(&s.FriendsBrought, p.FriendsBrought)
	setInt(&s.FriendSignup5, p.FriendSignup5)
	setInt(&s.FriendSignup10, p.FriendSignup10)
	setInt(&s.FriendSignupMembership, p.FriendSignupMembership)
	setInt(&s.SocialMediaCount, p.SocialMediaCount)
	setInt(&s.BonusPoints, p.BonusPoints)
}
