package prefs

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/mo"

	"github.com/umputun/showcase/app/enum"
)

// State holds the preference slots of one mounted toggle. The effective value is derived from
// them and pushed to subscribers each time it changes.
type State struct {
	mu         sync.Mutex
	initial    enum.Preference
	pending    mo.Option[bool]
	confirmed  mo.Option[bool]
	serverPass bool
	seq        uint64
	subs       []func(enum.Preference)
}

// Submission identifies one in-flight toggle.
type Submission struct {
	Target bool
	seq    uint64
}

// NewState makes a state for a toggle mounted with the given initial value. serverPass is true
// until the client attaches, see Hydrate.
func NewState(initial enum.Preference, serverPass bool) *State {
	return &State{
		initial:    initial,
		pending:    mo.None[bool](),
		confirmed:  mo.None[bool](),
		serverPass: serverPass,
	}
}

// Effective returns the currently effective preference.
func (s *State) Effective() enum.Preference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effective()
}

// Pending returns the in-flight optimistic value, if any.
func (s *State) Pending() mo.Option[bool] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Confirmed returns the last confirmed value, if any.
func (s *State) Confirmed() mo.Option[bool] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmed
}

// Subscribe registers fn to be called with the new effective preference after every change.
func (s *State) Subscribe(fn func(enum.Preference)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Hydrate marks the client as attached. initial is the value resolved on the client, the cookie
// or the media query, and replaces the one the server pass was mounted with. From now on pending
// and confirmed values are honored.
func (s *State) Hydrate(initial enum.Preference) {
	s.update(func() {
		s.initial = initial
		s.serverPass = false
	})
}

// Begin puts target into the pending slot, overwriting any earlier pending value.
func (s *State) Begin(target bool) Submission {
	var sub Submission
	s.update(func() {
		s.seq++
		s.pending = mo.Some(target)
		sub = Submission{Target: target, seq: s.seq}
	})
	return sub
}

// Complete applies the outcome of a submission. On error the pending value stays displayed.
// A confirmation is discarded if a different value is pending by now.
func (s *State) Complete(sub Submission, confirmed bool, err error) {
	if err != nil {
		return
	}
	s.update(func() {
		if v, ok := s.pending.Get(); ok && v != sub.Target {
			return // stale, a newer toggle is in flight
		}
		s.confirmed = mo.Some(confirmed)
		if sub.seq == s.seq {
			s.pending = mo.None[bool]()
		}
	})
}

// Toggle submits the negation of the effective preference and applies the outcome.
// It returns the effective preference afterwards.
func (s *State) Toggle(ctx context.Context, submitter Submitter) (enum.Preference, error) {
	sub := s.Begin(s.Effective().Toggle())
	confirmed, err := submitter.Submit(ctx, sub.Target)
	s.Complete(sub, confirmed, err)
	if err != nil {
		return s.Effective(), fmt.Errorf("toggle dark mode: %w", err)
	}
	return s.Effective(), nil
}

// update runs fn under the lock and notifies subscribers if the effective value changed.
func (s *State) update(fn func()) {
	s.mu.Lock()
	before := s.effective()
	fn()
	after := s.effective()
	subs := append([]func(enum.Preference){}, s.subs...)
	s.mu.Unlock()

	if before == after {
		return
	}
	for _, f := range subs {
		f(after)
	}
}

func (s *State) effective() enum.Preference {
	return Resolve(s.initial, s.pending, s.confirmed, s.serverPass)
}
