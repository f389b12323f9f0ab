package cli

import "github.com/moonshotcrossfit/cup/internal/domain"

// editSection groups the edit controls the way the scoring categories do.
type editSection struct {
	title  string
	fields []domain.Field
}

// editSections is the fixed layout of an editable member accordion.
var editSections = []editSection{
	{title: "Open", fields: []domain.Field{
		domain.FieldOpenWorkout1,
		domain.FieldOpenWorkout2,
		domain.FieldOpenWorkout3,
		domain.FieldJudgesCourse,
		domain.FieldJudgedCount,
	}},
	{title: "Growth", fields: []domain.Field{
		domain.FieldFriendsBrought,
		domain.FieldFriendSignup5,
		domain.FieldFriendSignup10,
		domain.FieldFriendSignupMembership,
		domain.FieldGoogleReview,
		domain.FieldSocialMediaCount,
	}},
	{title: "Fun", fields: []domain.Field{
		domain.FieldWeeklyChallenge1,
		domain.FieldWeeklyChallengeWinner1,
		domain.FieldWeeklyChallenge2,
		domain.FieldWeeklyChallengeWinner2,
		domain.FieldWeeklyChallenge3,
		domain.FieldWeeklyChallengeWinner3,
		domain.FieldBonusPoints,
	}},
}

// fieldLabels are the control captions shown next to toggles and steppers.
var fieldLabels = map[domain.Field]string{
	domain.FieldOpenWorkout1:           "25.1 Completed",
	domain.FieldOpenWorkout2:           "25.2 Completed",
	domain.FieldOpenWorkout3:           "25.3 Completed",
	domain.FieldJudgesCourse:           "Judges Course",
	domain.FieldJudgedCount:            "Times Judged",
	domain.FieldFriendsBrought:         "Friends Brought",
	domain.FieldFriendSignup5:          "5-Pack Signups",
	domain.FieldFriendSignup10:         "10-Pack Signups",
	domain.FieldFriendSignupMembership: "Membership Signups",
	domain.FieldGoogleReview:           "Google Review w/ Photo",
	domain.FieldSocialMediaCount:       "Social Media Posts",
	domain.FieldWeeklyChallenge1:       "W1 Challenge",
	domain.FieldWeeklyChallenge2:       "W2 Challenge",
	domain.FieldWeeklyChallenge3:       "W3 Challenge",
	domain.FieldWeeklyChallengeWinner1: "W1 Winner",
	domain.FieldWeeklyChallengeWinner2: "W2 Winner",
	domain.FieldWeeklyChallengeWinner3: "W3 Winner",
	domain.FieldBonusPoints:            "Bonus Points",
}
