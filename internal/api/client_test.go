package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/moonshotcrossfit/cup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		io.WriteString(w, `{
			"teams": [{"teamId": "team-kevin", "teamName": "Team Kevin"}],
			"members": [{"memberId": "m1", "teamId": "team-kevin", "name": "Kevin", "scores": {"openWorkout1": true}}],
			"config": {"currentWeek": 2}
		}`)
	}))
	defer srv.Close()

	snap, err := New(srv.URL).FetchSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Teams, 1)
	require.Len(t, snap.Members, 1)
	assert.True(t, snap.Members[0].Scores.OpenWorkout1)
	require.NotNil(t, snap.Config)
	assert.Equal(t, 2, snap.Config.CurrentWeek)
}

func TestFetchSnapshot_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchSnapshot(context.Background())
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		var body struct {
			Pin string `json:"pin"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Pin == "1234" {
			io.WriteString(w, `{"teamId": "team-kevin"}`)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL)

	teamID, ok := c.Login(context.Background(), "1234")
	assert.True(t, ok)
	assert.Equal(t, "team-kevin", teamID)

	// Wrong PIN is an outcome, not an error.
	_, ok = c.Login(context.Background(), "0000")
	assert.False(t, ok)
}

func TestLogin_Unreachable(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, ok := c.Login(context.Background(), "1234")
	assert.False(t, ok)
}

func TestPushScores(t *testing.T) {
	var got struct {
		MemberID string            `json:"memberId"`
		Scores   domain.ScorePatch `json:"scores"`
	}
	var auth, reqID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scores", r.URL.Path)
		auth = r.Header.Get("Authorization")
		reqID = r.Header.Get("X-Request-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	patch := domain.CountPatch(domain.FieldJudgedCount, 4)
	err := New(srv.URL).PushScores(context.Background(), "1234", "m1", patch)
	require.NoError(t, err)

	assert.Equal(t, "Bearer 1234", auth)
	_, err = uuid.Parse(reqID)
	assert.NoError(t, err, "X-Request-ID should be a UUID")
	assert.Equal(t, "m1", got.MemberID)
	require.NotNil(t, got.Scores.JudgedCount)
	assert.Equal(t, 4, *got.Scores.JudgedCount)
	assert.Nil(t, got.Scores.SocialMediaCount, "patch body stays sparse")
}

func TestPushScores_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := New(srv.URL).PushScores(context.Background(), "bad", "m1",
		domain.FlagPatch(domain.FieldOpenWorkout1, true))
	assert.Error(t, err)
}

func TestPushTeamName(t *testing.T) {
	var got struct {
		TeamID        string `json:"teamId"`
		TeamNameEntry string `json:"teamNameEntry"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/team-name", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	err := New(srv.URL).PushTeamName(context.Background(), "1234", "team-kevin", "The Krushers")
	require.NoError(t, err)
	assert.Equal(t, "team-kevin", got.TeamID)
	assert.Equal(t, "The Krushers", got.TeamNameEntry)
}
