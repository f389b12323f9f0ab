package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_OnlyTouchesSetFields(t *testing.T) {
	s := Scores{OpenWorkout1: true, JudgedCount: 3, SocialMediaCount: 2}

	s.Apply(CountPatch(FieldSocialMediaCount, 5))

	assert.Equal(t, 5, s.SocialMediaCount)
	assert.True(t, s.OpenWorkout1, "unpatched flag must survive the merge")
	assert.Equal(t, 3, s.JudgedCount, "unpatched counter must survive the merge")
}

func TestApply_FlooredAtZero(t *testing.T) {
	s := Scores{JudgedCount: 2}
	s.Apply(CountPatch(FieldJudgedCount, -1))
	assert.Equal(t, 0, s.JudgedCount)
}

func TestApply_ClearFlag(t *testing.T) {
	s := Scores{GoogleReview: true}
	s.Apply(FlagPatch(FieldGoogleReview, false))
	assert.False(t, s.GoogleReview)
}

func TestPatch_MarshalsSparse(t *testing.T) {
	// The wire body carries only the edited field, nothing else.
	body, err := json.Marshal(CountPatch(FieldJudgedCount, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"judgedCount":3}`, string(body))

	body, err = json.Marshal(FlagPatch(FieldOpenWorkout2, true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"openWorkout2":true}`, string(body))
}

func TestPutFlag_IgnoresCounterFields(t *testing.T) {
	var p ScorePatch
	p.PutFlag(FieldJudgedCount, true)
	p.PutCount(FieldGoogleReview, 5)
	body, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(body))
}
