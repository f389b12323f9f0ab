package cli

import "github.com/moonshotcrossfit/cup/internal/domain"

// snapshotMsg carries a poll result (or its failure).
type snapshotMsg struct {
	snap *domain.Snapshot
	err  error
}

// pollTickMsg fires the 30-second snapshot refresh.
type pollTickMsg struct{}

// clockTickMsg refreshes the "updated N ago" label without a network call.
type clockTickMsg struct{}

// loginResultMsg carries the outcome of a PIN submission. The pin doubles
// as the bearer token for subsequent authorized writes.
type loginResultMsg struct {
	pin    string
	teamID string
	ok     bool
}

// pushDoneMsg signals that an authorized write settled (success or not).
type pushDoneMsg struct {
	memberID string
	err      error
}

// editKey identifies one debounced (member, field) stepper.
type editKey struct {
	memberID string
	field    domain.Field
}

// debounceFiredMsg fires when a stepper's quiet period elapses. A stale seq
// means a newer click superseded this timer and the fire is dropped.
type debounceFiredMsg struct {
	key editKey
	seq int
}

// searchRestoredMsg carries the cached athlete search read at startup.
type searchRestoredMsg struct {
	query string
}
