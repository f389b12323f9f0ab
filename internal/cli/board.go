package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/moonshotcrossfit/cup/internal/domain"
	"github.com/moonshotcrossfit/cup/internal/store"
)

// boardMode selects what owns the keyboard: the board itself or a form.
type boardMode int

const (
	modeBoard boardMode = iota
	modeLogin
	modeTeamName
)

// rowKind tags a navigable row in the flattened board.
type rowKind int

const (
	rowTeam rowKind = iota
	rowMember
	rowField
)

// row is one cursor-addressable line: a team header, a member row, or (in
// edit mode) a single toggle/stepper control.
type row struct {
	kind     rowKind
	teamID   string
	memberID string
	field    domain.Field
}

// boardModel is the root bubbletea model. All state mutations happen in
// Update; View re-derives the entire board from the store every time.
type boardModel struct {
	app   *App
	store *store.Store

	search textinput.Model
	vp     viewport.Model
	width  int
	height int

	rows          []row
	rowLines      []int
	cursor        int
	highlightLine int

	// Form values are heap-allocated: huh holds a pointer to them, and the
	// model itself is copied on every Update.
	mode      boardMode
	loginForm *huh.Form
	loginPin  *string
	loginErr  bool
	loggingIn bool

	nameForm   *huh.Form
	nameValue  *string
	nameTeamID string

	// Debounce sequencing: a stepper click bumps the seq for its
	// (member, field) key; a timer firing with a stale seq is dropped.
	pendingSeq map[editKey]int

	offline     bool
	lastPushErr error
	quitting    bool
}

func newBoardModel(app *App) boardModel {
	search := textinput.New()
	search.Placeholder = "athlete name"
	search.CharLimit = 40
	search.Prompt = ""

	return boardModel{
		app:        app,
		store:      store.New(),
		search:     search,
		vp:         viewport.New(0, 0),
		pendingSeq: make(map[editKey]int),
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(
		fetchCmd(m.app),
		restoreSearchCmd(m.app),
		pollTick(m.app.Cfg.PollInterval()),
		clockTick(),
	)
}

// ── update ───────────────────────────────────────────────────────────────────

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = m.contentHeight()
		m.rebuild()
		return m, nil

	case snapshotMsg:
		// Always stamp the attempt so the footer reflects "we tried",
		// and re-render even on failure.
		m.store.MarkSynced(time.Now())
		if msg.err != nil {
			m.offline = true
			// First-load resilience only: never clobber a loaded
			// snapshot with demo data on a later transient failure.
			if !m.store.HasData() {
				m.store.ReplaceSnapshot(domain.DemoSnapshot())
			}
		} else {
			m.offline = false
			m.store.ReplaceSnapshot(msg.snap)
		}
		m.applySearchJump()
		m.rebuild()
		m.scrollHighlightIntoView()
		return m, nil

	case pollTickMsg:
		return m, tea.Batch(fetchCmd(m.app), pollTick(m.app.Cfg.PollInterval()))

	case clockTickMsg:
		// View derives the label from the store; re-arming is enough.
		return m, clockTick()

	case loginResultMsg:
		m.loggingIn = false
		if !msg.ok {
			m.loginErr = true
			m.loginPin = new(string)
			m.loginForm = newLoginForm(m.loginPin)
			return m, m.loginForm.Init()
		}
		m.store.Login(msg.pin, msg.teamID)
		m.mode = modeBoard
		m.loginErr = false
		m.rebuild()
		return m, nil

	case pushDoneMsg:
		if msg.memberID != "" {
			m.store.SetSaving(msg.memberID, false)
		}
		if msg.err != nil {
			// Optimistic edit stays; the next poll reconciles.
			m.lastPushErr = msg.err
		} else {
			m.lastPushErr = nil
		}
		m.rebuild()
		return m, nil

	case debounceFiredMsg:
		if m.pendingSeq[msg.key] != msg.seq {
			return m, nil // superseded by a newer click
		}
		delete(m.pendingSeq, msg.key)
		member, ok := m.store.Member(msg.key.memberID)
		if !ok {
			return m, nil
		}
		final := member.Scores.Count(msg.key.field)
		m.store.SetSaving(msg.key.memberID, true)
		m.rebuild()
		return m, pushScoresCmd(m.app, m.store.Token(), msg.key.memberID,
			domain.CountPatch(msg.key.field, final))

	case searchRestoredMsg:
		if msg.query != "" {
			m.search.SetValue(msg.query)
			m.store.SetSearch(msg.query)
			m.applySearchJump()
			m.rebuild()
			m.scrollHighlightIntoView()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Forward everything else (blink ticks, form internals) to whichever
	// input is live. Forms can complete off these messages too.
	switch m.mode {
	case modeLogin:
		return m.updateLoginForm(msg)
	case modeTeamName:
		return m.updateNameForm(msg)
	default:
		if m.search.Focused() {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// updateLoginForm feeds one message to the PIN form and fires the login
// request exactly once when the form completes.
func (m boardModel) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.loginForm == nil {
		return m, nil
	}
	f, cmd := m.loginForm.Update(msg)
	m.loginForm = f.(*huh.Form)

	switch m.loginForm.State {
	case huh.StateCompleted:
		if m.loggingIn {
			return m, cmd
		}
		m.loggingIn = true
		return m, tea.Batch(cmd, loginCmd(m.app, strings.TrimSpace(*m.loginPin)))
	case huh.StateAborted:
		m.mode = modeBoard
	}
	return m, cmd
}

// updateNameForm feeds one message to the team-name form; completion commits
// the name locally and pushes it.
func (m boardModel) updateNameForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.nameForm == nil {
		return m, nil
	}
	f, cmd := m.nameForm.Update(msg)
	m.nameForm = f.(*huh.Form)

	switch m.nameForm.State {
	case huh.StateCompleted:
		name := strings.TrimSpace(*m.nameValue)
		m.mode = modeBoard
		m.nameForm = nil
		if name == "" {
			return m, cmd
		}
		// Optimistic: lock the name in locally, then persist.
		m.store.SetTeamName(m.nameTeamID, name)
		m.rebuild()
		return m, tea.Batch(cmd, pushTeamNameCmd(m.app, m.store.Token(), m.nameTeamID, name))
	case huh.StateAborted:
		m.mode = modeBoard
		m.nameForm = nil
	}
	return m, cmd
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeLogin:
		return m.handleLoginKey(msg)
	case modeTeamName:
		return m.handleTeamNameKey(msg)
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.search.Focus()
		return m, textinput.Blink

	case "l":
		if !m.store.Authenticated() {
			m.mode = modeLogin
			m.loginPin = new(string)
			m.loginErr = false
			m.loginForm = newLoginForm(m.loginPin)
			return m, m.loginForm.Init()
		}

	case "L":
		if m.store.Authenticated() {
			m.store.Logout()
			m.rebuild()
		}
		return m, nil

	case "r":
		return m, fetchCmd(m.app)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.rebuild()
			m.scrollCursorIntoView()
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.rebuild()
			m.scrollCursorIntoView()
		}
		return m, nil

	case "enter", " ":
		return m.activateCursor()

	case "n":
		if r, ok := m.cursorRow(); ok && r.kind == rowTeam && m.store.CanEdit(r.teamID) {
			if team, found := m.store.Team(r.teamID); found && !team.TeamNameSubmitted {
				m.mode = modeTeamName
				m.nameTeamID = r.teamID
				m.nameValue = new(string)
				m.nameForm = newTeamNameForm(m.nameValue)
				return m, m.nameForm.Init()
			}
		}
		return m, nil

	case "+", "=", "right":
		return m.stepCursor(1)

	case "-", "_", "left":
		return m.stepCursor(-1)
	}

	return m, nil
}

func (m boardModel) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.mode = modeBoard
		m.loginErr = false
		return m, nil
	}
	if m.loggingIn {
		return m, nil
	}
	return m.updateLoginForm(msg)
}

func (m boardModel) handleTeamNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.mode = modeBoard
		m.nameForm = nil
		return m, nil
	}
	return m.updateNameForm(msg)
}

func (m boardModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	extra := m.onSearchChanged()
	m.rebuild()
	m.scrollHighlightIntoView()
	return m, tea.Batch(cmd, extra)
}

// onSearchChanged reconciles the store with the input's current query and
// returns the persistence command, if any.
func (m *boardModel) onSearchChanged() tea.Cmd {
	query := strings.TrimSpace(m.search.Value())
	if query == m.store.Search() {
		return nil
	}
	m.store.SetSearch(query)
	if len(query) >= 2 {
		m.applySearchJump()
		return persistSearchCmd(m.app, query)
	}
	m.store.SetHighlight("")
	return clearSearchCmd(m.app)
}

// applySearchJump expands and highlights the first member matching the
// current query. First match wins, not best match.
func (m *boardModel) applySearchJump() {
	query := m.store.Search()
	if len(query) < 2 {
		return
	}
	if member, ok := m.store.FindMember(query); ok {
		m.store.ExpandTeam(member.TeamID)
		m.store.SetHighlight(member.MemberID)
	}
}

// ── cursor actions ───────────────────────────────────────────────────────────

func (m boardModel) cursorRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// activateCursor handles enter/space: expansion toggles for team and member
// rows (UI-only, never a network call), flag toggles for field rows.
func (m boardModel) activateCursor() (tea.Model, tea.Cmd) {
	r, ok := m.cursorRow()
	if !ok {
		return m, nil
	}
	switch r.kind {
	case rowTeam:
		m.store.ToggleTeam(r.teamID)
	case rowMember:
		m.store.ToggleMember(r.memberID)
	case rowField:
		if !r.field.IsCounter() {
			return m.toggleField(r)
		}
		return m, nil
	}
	m.rebuild()
	m.scrollCursorIntoView()
	return m, nil
}

// toggleField flips a one-shot flag: optimistic store merge, immediate
// re-render, then the authorized write fires with no delay.
func (m boardModel) toggleField(r row) (tea.Model, tea.Cmd) {
	member, ok := m.store.Member(r.memberID)
	if !ok {
		return m, nil
	}
	patch := domain.FlagPatch(r.field, !member.Scores.Flag(r.field))
	m.store.MergeMemberScores(r.memberID, patch)
	m.store.SetSaving(r.memberID, true)
	m.rebuild()
	return m, pushScoresCmd(m.app, m.store.Token(), r.memberID, patch)
}

// stepCursor adjusts a counter under the cursor. The store updates at once;
// the write is debounced per (member, field) so a burst of clicks sends one
// request carrying the final value. Decrement at zero is a local no-op.
func (m boardModel) stepCursor(delta int) (tea.Model, tea.Cmd) {
	r, ok := m.cursorRow()
	if !ok || r.kind != rowField || !r.field.IsCounter() {
		return m, nil
	}
	member, ok := m.store.Member(r.memberID)
	if !ok {
		return m, nil
	}
	next := member.Scores.Count(r.field) + delta
	if next < 0 {
		return m, nil
	}
	m.store.MergeMemberScores(r.memberID, domain.CountPatch(r.field, next))

	key := editKey{memberID: r.memberID, field: r.field}
	m.pendingSeq[key]++
	m.rebuild()
	return m, debounceCmd(m.app.Cfg.Debounce(), key, m.pendingSeq[key])
}

// ── layout ───────────────────────────────────────────────────────────────────

// contentHeight is the viewport height: total minus the three header lines,
// two separators, and the footer hint line.
func (m *boardModel) contentHeight() int {
	h := m.height - 6
	if h < 1 {
		return 1
	}
	return h
}

func (m *boardModel) scrollCursorIntoView() {
	if m.cursor >= 0 && m.cursor < len(m.rowLines) {
		m.scrollLineIntoView(m.rowLines[m.cursor])
	}
}

func (m *boardModel) scrollHighlightIntoView() {
	if m.highlightLine >= 0 {
		m.scrollLineIntoView(m.highlightLine)
	}
}

func (m *boardModel) scrollLineIntoView(line int) {
	switch {
	case line < m.vp.YOffset:
		m.vp.SetYOffset(line)
	case line >= m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(line - m.vp.Height + 1)
	}
}
