// Package walkthrough implements the interactive counter example. A walkthrough cycles through
// the phases of a click (callback, setter, getter) and highlights the matching code spans.
package walkthrough

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/umputun/showcase/app/enum"
)

// Spans are the annotated spans of the listing, one per non-idle phase.
var Spans = []enum.Phase{enum.PhaseCallback, enum.PhaseSetter, enum.PhaseGetter}

// Walkthrough is the state of one mounted example. It travels with the fragment as hidden
// form fields, every mounted instance owns its own state.
type Walkthrough struct {
	ID    string
	Phase enum.Phase
	Count int
	Tab   enum.Tab
}

// New makes a walkthrough at idle, with zero count, on the show tab.
func New() Walkthrough {
	return Walkthrough{ID: uuid.NewString(), Phase: enum.PhaseIdle, Tab: enum.TabShow}
}

// Increment handles a click on the counter button. On the tell tab it also advances the phase.
func (w *Walkthrough) Increment() {
	w.Count++
	if w.Tab.Interactive() {
		w.Phase = w.Phase.Next()
	}
}

// NextStep advances the phase, the counter is untouched.
func (w *Walkthrough) NextStep() {
	w.Phase = w.Phase.Next()
}

// PrevStep moves the phase back, the counter is untouched.
func (w *Walkthrough) PrevStep() {
	w.Phase = w.Phase.Prev()
}

// Select switches the tab. Phase and counter are kept, switching back resumes where it was left.
func (w *Walkthrough) Select(tab enum.Tab) {
	w.Tab = tab
}

// Apply dispatches a user action.
func (w *Walkthrough) Apply(a enum.Action) {
	switch a {
	case enum.ActionIncrement:
		w.Increment()
	case enum.ActionNext:
		w.NextStep()
	case enum.ActionPrev:
		w.PrevStep()
	case enum.ActionShow:
		w.Select(enum.TabShow)
	case enum.ActionTell:
		w.Select(enum.TabTell)
	}
}

// NavVisible reports whether the previous/next controls are rendered.
func (w Walkthrough) NavVisible() bool {
	return w.Tab.Interactive() && w.Phase != enum.PhaseIdle
}

// IncrementDisabled reports whether the counter button is disabled, it is while a walkthrough
// is in progress.
func (w Walkthrough) IncrementDisabled() bool {
	return w.Tab.Interactive() && w.Phase != enum.PhaseIdle
}

// Highlighted reports whether the span is highlighted. Nothing is highlighted at idle.
func (w Walkthrough) Highlighted(span enum.Phase) bool {
	return span != enum.PhaseIdle && span == w.Phase
}

// HighlightSet returns the highlighted spans, at most one.
func (w Walkthrough) HighlightSet() []enum.Phase {
	return lo.Filter(Spans, func(s enum.Phase, _ int) bool { return w.Highlighted(s) })
}

// Fields returns the hidden form fields carrying the state.
func (w Walkthrough) Fields() url.Values {
	return url.Values{
		"id":    {w.ID},
		"phase": {w.Phase.String()},
		"count": {strconv.Itoa(w.Count)},
		"tab":   {w.Tab.String()},
	}
}

// FromForm restores a walkthrough from its form fields. Missing or invalid fields fall back to
// the initial state, a negative count is clamped to zero.
func FromForm(v url.Values) Walkthrough {
	w := New()
	if id := v.Get("id"); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			w.ID = id
		}
	}
	if p, err := enum.ParsePhase(v.Get("phase")); err == nil {
		w.Phase = p
	}
	if t, err := enum.ParseTab(v.Get("tab")); err == nil {
		w.Tab = t
	}
	if c, err := strconv.Atoi(v.Get("count")); err == nil && c > 0 {
		w.Count = c
	}
	return w
}
