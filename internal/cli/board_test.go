package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/moonshotcrossfit/cup/internal/api"
	"github.com/moonshotcrossfit/cup/internal/config"
	"github.com/moonshotcrossfit/cup/internal/domain"
	"github.com/moonshotcrossfit/cup/internal/localstore"
	"github.com/moonshotcrossfit/cup/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a scriptable competition API for board tests.
type fakeBackend struct {
	mu       sync.Mutex
	failData bool

	scoresPosts []scoresPost
	namePosts   []namePost
}

type scoresPost struct {
	Auth     string
	MemberID string
	Patch    domain.ScorePatch
}

type namePost struct {
	TeamID string
	Name   string
}

func (f *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch r.URL.Path {
		case "/data":
			if f.failData {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			io.WriteString(w, `{
				"teams": [
					{"teamId": "team-kevin", "teamName": "Team Kevin"},
					{"teamId": "team-molly", "teamName": "Team Molly"}
				],
				"members": [
					{"memberId": "m-alice", "teamId": "team-kevin", "name": "Alice Archer", "scores": {}},
					{"memberId": "m-bob", "teamId": "team-kevin", "name": "Bob Breaker", "scores": {}},
					{"memberId": "m-cara", "teamId": "team-molly", "name": "Cara Croft", "scores": {}}
				],
				"config": {"currentWeek": 1}
			}`)

		case "/login":
			var body struct {
				Pin string `json:"pin"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if body.Pin != "1234" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			io.WriteString(w, `{"teamId": "team-kevin"}`)

		case "/scores":
			var body struct {
				MemberID string            `json:"memberId"`
				Scores   domain.ScorePatch `json:"scores"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			f.scoresPosts = append(f.scoresPosts, scoresPost{
				Auth:     r.Header.Get("Authorization"),
				MemberID: body.MemberID,
				Patch:    body.Scores,
			})

		case "/team-name":
			var body struct {
				TeamID        string `json:"teamId"`
				TeamNameEntry string `json:"teamNameEntry"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			f.namePosts = append(f.namePosts, namePost{TeamID: body.TeamID, Name: body.TeamNameEntry})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (f *fakeBackend) setFailData(fail bool) {
	f.mu.Lock()
	f.failData = fail
	f.mu.Unlock()
}

func (f *fakeBackend) scores() []scoresPost {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]scoresPost(nil), f.scoresPosts...)
}

func newTestBoard(t *testing.T, backend *fakeBackend) (*teatest.Driver, *App) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	local, err := localstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })

	app := &App{
		API:   api.New(srv.URL),
		Local: local,
		Cfg:   config.Default(),
	}

	d := teatest.New(t, newBoardModel(app), teatest.WithSize(110, 50))
	d.DrainInit()
	return d, app
}

func board(d *teatest.Driver) boardModel {
	return d.Model.(boardModel)
}

func TestBoard_LoadsSnapshot(t *testing.T) {
	d, _ := newTestBoard(t, &fakeBackend{})

	view := d.View()
	assert.Contains(t, view, "LEADERBOARD")
	assert.Contains(t, view, "Team Kevin")
	assert.Contains(t, view, "Alice Archer", "teams start expanded")
	assert.Contains(t, view, "Updated just now")
	assert.NotContains(t, view, "offline")
}

func TestBoard_DemoFallbackOnFirstLoadOnly(t *testing.T) {
	backend := &fakeBackend{failData: true}
	d, _ := newTestBoard(t, backend)

	// First load failed: demo roster shown, flagged offline.
	view := d.View()
	assert.Contains(t, view, "Claire Chappell")
	assert.Contains(t, view, "offline")

	// Server recovers; next poll replaces the demo data.
	backend.setFailData(false)
	d.Send(pollTickMsg{})
	view = d.View()
	assert.Contains(t, view, "Alice Archer")
	assert.NotContains(t, view, "offline")

	// A later failure keeps the real snapshot on screen.
	backend.setFailData(true)
	d.Send(pollTickMsg{})
	view = d.View()
	assert.Contains(t, view, "Alice Archer", "stale data beats no data")
	assert.Contains(t, view, "offline")
}

func TestBoard_ExpandCollapse(t *testing.T) {
	d, _ := newTestBoard(t, &fakeBackend{})

	// Cursor starts on the first team header; enter collapses it.
	d.PressEnter()
	m := board(d)
	assert.False(t, m.store.TeamExpanded("team-kevin"))
	assert.NotContains(t, d.View(), "Alice Archer")

	d.PressEnter()
	assert.True(t, board(d).store.TeamExpanded("team-kevin"))
}

func loginAsKevin(t *testing.T, d *teatest.Driver) {
	t.Helper()
	d.PressKey('l')
	d.Type("1234")
	d.PressEnter()
	require.True(t, board(d).store.Authenticated(), "login should succeed")
}

func TestBoard_LoginFlow(t *testing.T) {
	d, _ := newTestBoard(t, &fakeBackend{})

	loginAsKevin(t, d)
	m := board(d)
	assert.Equal(t, "team-kevin", m.store.CaptainTeamID())
	assert.Contains(t, d.View(), "Captain · Team Kevin")
}

func TestBoard_LoginRejected(t *testing.T) {
	d, _ := newTestBoard(t, &fakeBackend{})

	d.PressKey('l')
	d.Type("9999")
	d.PressEnter()

	m := board(d)
	assert.False(t, m.store.Authenticated())
	assert.Equal(t, modeLogin, m.mode, "rejected PIN re-prompts")
	assert.Contains(t, d.View(), "Invalid PIN")

	d.PressEsc()
	assert.Equal(t, modeBoard, board(d).mode)
}

func TestBoard_ToggleFlagPushesImmediately(t *testing.T) {
	backend := &fakeBackend{}
	d, _ := newTestBoard(t, backend)
	loginAsKevin(t, d)

	// Team header → first member → expand → first toggle (25.1).
	d.PressDown()
	d.PressEnter()
	d.PressDown()
	d.PressEnter()

	m := board(d)
	member, ok := m.store.Member("m-alice")
	require.True(t, ok)
	assert.True(t, member.Scores.OpenWorkout1, "optimistic merge lands before the response")

	posts := backend.scores()
	require.Len(t, posts, 1)
	assert.Equal(t, "Bearer 1234", posts[0].Auth)
	assert.Equal(t, "m-alice", posts[0].MemberID)
	require.NotNil(t, posts[0].Patch.OpenWorkout1)
	assert.True(t, *posts[0].Patch.OpenWorkout1)
}

func TestBoard_StepperDebouncesToOneWrite(t *testing.T) {
	backend := &fakeBackend{}
	d, _ := newTestBoard(t, backend)
	loginAsKevin(t, d)

	// Navigate to Alice's "Times Judged" stepper (5th control in Open).
	d.PressDown()
	d.PressEnter()
	for i := 0; i < 5; i++ {
		d.PressDown()
	}

	d.PressKey('+')
	d.PressKey('+')
	d.PressKey('+')

	m := board(d)
	member, _ := m.store.Member("m-alice")
	assert.Equal(t, 3, member.Scores.JudgedCount, "display updates on every click")
	assert.Empty(t, backend.scores(), "no write while the timer is pending")

	key := editKey{memberID: "m-alice", field: domain.FieldJudgedCount}

	// A stale timer (superseded by later clicks) must not write.
	d.Send(debounceFiredMsg{key: key, seq: 2})
	assert.Empty(t, backend.scores())

	// The live timer writes once, carrying the accumulated value.
	d.Send(debounceFiredMsg{key: key, seq: 3})
	posts := backend.scores()
	require.Len(t, posts, 1)
	require.NotNil(t, posts[0].Patch.JudgedCount)
	assert.Equal(t, 3, *posts[0].Patch.JudgedCount)
}

func TestBoard_DecrementAtZeroIsNoOp(t *testing.T) {
	backend := &fakeBackend{}
	d, _ := newTestBoard(t, backend)
	loginAsKevin(t, d)

	d.PressDown()
	d.PressEnter()
	for i := 0; i < 5; i++ {
		d.PressDown()
	}

	d.PressKey('-')

	m := board(d)
	member, _ := m.store.Member("m-alice")
	assert.Equal(t, 0, member.Scores.JudgedCount)
	assert.Empty(t, m.pendingSeq, "no timer scheduled for a no-op")
	assert.Empty(t, backend.scores())
}

func TestBoard_TeamNameSubmission(t *testing.T) {
	backend := &fakeBackend{}
	d, _ := newTestBoard(t, backend)
	loginAsKevin(t, d)

	d.PressKey('n')
	d.Type("The Krushers")
	d.PressEnter()

	m := board(d)
	team, ok := m.store.Team("team-kevin")
	require.True(t, ok)
	assert.True(t, team.TeamNameSubmitted)
	assert.Equal(t, "The Krushers", team.DisplayName())

	backend.mu.Lock()
	defer backend.mu.Unlock()
	require.Len(t, backend.namePosts, 1)
	assert.Equal(t, "team-kevin", backend.namePosts[0].TeamID)
	assert.Equal(t, "The Krushers", backend.namePosts[0].Name)

	// Submitted names can't be re-entered.
	d.PressKey('n')
	assert.Equal(t, modeBoard, board(d).mode)
}

func TestBoard_TeamNameNeedsAuth(t *testing.T) {
	d, _ := newTestBoard(t, &fakeBackend{})
	d.PressKey('n')
	assert.Equal(t, modeBoard, board(d).mode)
}

func TestBoard_SearchJumpAndPersist(t *testing.T) {
	d, app := newTestBoard(t, &fakeBackend{})

	d.PressKey('/')
	d.Type("cro")

	m := board(d)
	assert.Equal(t, "m-cara", m.store.Highlight())
	assert.True(t, m.store.TeamExpanded("team-molly"))

	q, ok, err := app.Local.Get(t.Context(), localstore.KeyAthleteSearch)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cro", q)

	// Shrinking under two characters clears highlight and cache.
	d.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	d.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	m = board(d)
	assert.Equal(t, "", m.store.Highlight())
	_, ok, err = app.Local.Get(t.Context(), localstore.KeyAthleteSearch)
	require.NoError(t, err)
	assert.False(t, ok)

	d.PressEsc()
	assert.False(t, board(d).search.Focused())
}

func TestBoard_SearchRestoredOnStartup(t *testing.T) {
	backend := &fakeBackend{}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	local, err := localstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })
	require.NoError(t, local.Set(t.Context(), localstore.KeyAthleteSearch, "bob"))

	app := &App{API: api.New(srv.URL), Local: local, Cfg: config.Default()}
	d := teatest.New(t, newBoardModel(app), teatest.WithSize(110, 50))
	d.DrainInit()

	m := board(d)
	assert.Equal(t, "bob", m.search.Value())
	assert.Equal(t, "m-bob", m.store.Highlight())
}

func TestBoard_Logout(t *testing.T) {
	d, _ := newTestBoard(t, &fakeBackend{})
	loginAsKevin(t, d)

	d.PressDown()
	d.PressEnter() // expand Alice
	require.True(t, board(d).store.MemberExpanded("m-alice"))

	d.PressKey('L')
	m := board(d)
	assert.False(t, m.store.Authenticated())
	assert.False(t, m.store.MemberExpanded("m-alice"))
}

func TestBoard_Quit(t *testing.T) {
	d, _ := newTestBoard(t, &fakeBackend{})
	d.PressKey('q')
	assert.True(t, d.Quitting)
}
