package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/showcase/app/enum"
	"github.com/umputun/showcase/app/prefs/mocks"
)

func TestState_ToggleScenario(t *testing.T) {
	// no cookie, media query says dark
	st := NewState(enum.PreferenceDark, false)
	assert.Equal(t, enum.PreferenceDark, st.Effective())
	assert.Equal(t, "dark", Class(st.Effective()))
	assert.Equal(t, "/static/images/sun.svg", Icon(st.Effective()))
	assert.Equal(t, "false", HiddenValue(st.Effective()))

	sub := &mocks.SubmitterMock{SubmitFunc: func(_ context.Context, target bool) (bool, error) {
		assert.Equal(t, enum.PreferenceLight, st.Effective(), "optimistic value while in flight")
		return target, nil
	}}

	res, err := st.Toggle(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, enum.PreferenceLight, res)
	require.Len(t, sub.SubmitCalls(), 1)
	assert.False(t, sub.SubmitCalls()[0].Target)
	assert.Equal(t, mo.Some(false), st.Confirmed())
	assert.True(t, st.Pending().IsAbsent())
	assert.Equal(t, enum.PreferenceLight, st.Effective())
}

func TestState_ToggleFailureKeepsOptimisticValue(t *testing.T) {
	st := NewState(enum.PreferenceUnset, false)
	sub := &mocks.SubmitterMock{SubmitFunc: func(context.Context, bool) (bool, error) {
		return false, &TransportError{Op: "test", Err: errors.New("no channel")}
	}}

	res, err := st.Toggle(context.Background(), sub)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, enum.PreferenceDark, res)
	assert.Equal(t, mo.Some(true), st.Pending())
	assert.True(t, st.Confirmed().IsAbsent())
	assert.Len(t, sub.SubmitCalls(), 1, "no retry")
}

func TestState_StaleConfirmationDiscarded(t *testing.T) {
	st := NewState(enum.PreferenceLight, false)

	first := st.Begin(true)
	second := st.Begin(false) // user toggles again before the first one returns
	assert.Equal(t, enum.PreferenceLight, st.Effective())

	st.Complete(first, true, nil)
	assert.True(t, st.Confirmed().IsAbsent(), "stale confirmation must not apply")
	assert.Equal(t, mo.Some(false), st.Pending())
	assert.Equal(t, enum.PreferenceLight, st.Effective())

	st.Complete(second, false, nil)
	assert.Equal(t, mo.Some(false), st.Confirmed())
	assert.True(t, st.Pending().IsAbsent())
}

func TestState_SameValueConfirmationKeepsNewerPending(t *testing.T) {
	st := NewState(enum.PreferenceLight, false)
	first := st.Begin(true)
	second := st.Begin(true)

	st.Complete(first, true, nil)
	assert.Equal(t, mo.Some(true), st.Confirmed())
	assert.Equal(t, mo.Some(true), st.Pending(), "newer submission still in flight")

	st.Complete(second, true, nil)
	assert.True(t, st.Pending().IsAbsent())
	assert.Equal(t, enum.PreferenceDark, st.Effective())
}

func TestState_ServerPass(t *testing.T) {
	st := NewState(enum.PreferenceUnset, true)
	var seen []enum.Preference
	st.Subscribe(func(p enum.Preference) { seen = append(seen, p) })

	sub := st.Begin(true)
	assert.Equal(t, enum.PreferenceUnset, st.Effective(), "no optimistic ui before hydration")
	assert.Empty(t, seen)

	st.Hydrate(enum.PreferenceLight)
	assert.Equal(t, enum.PreferenceDark, st.Effective(), "pending wins over the client initial value")
	assert.Equal(t, []enum.Preference{enum.PreferenceDark}, seen)

	st.Complete(sub, true, nil)
	assert.Equal(t, enum.PreferenceDark, st.Effective())
	assert.Len(t, seen, 1, "no notification when the effective value is unchanged")
}

func TestState_HydrateWithMediaQuery(t *testing.T) {
	// no cookie: the server pass renders unset, the attached client reports a dark os scheme
	st := NewState(enum.PreferenceUnset, true)
	var seen []enum.Preference
	st.Subscribe(func(p enum.Preference) { seen = append(seen, p) })

	st.Hydrate(enum.PreferenceDark)
	assert.Equal(t, enum.PreferenceDark, st.Effective())
	assert.Equal(t, []enum.Preference{enum.PreferenceDark}, seen)
	assert.False(t, Toggle(st.Effective()), "toggle submits false")

	sub := &mocks.SubmitterMock{SubmitFunc: func(_ context.Context, target bool) (bool, error) { return target, nil }}
	res, err := st.Toggle(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, enum.PreferenceLight, res)
	assert.Equal(t, mo.Some(false), st.Confirmed())
	assert.Equal(t, []enum.Preference{enum.PreferenceDark, enum.PreferenceLight}, seen)
}

func TestState_Subscribe(t *testing.T) {
	st := NewState(enum.PreferenceLight, false)
	var seen []enum.Preference
	st.Subscribe(func(p enum.Preference) { seen = append(seen, p) })

	sub := &mocks.SubmitterMock{SubmitFunc: func(_ context.Context, target bool) (bool, error) { return target, nil }}
	_, err := st.Toggle(context.Background(), sub)
	require.NoError(t, err)
	_, err = st.Toggle(context.Background(), sub)
	require.NoError(t, err)

	assert.Equal(t, []enum.Preference{enum.PreferenceDark, enum.PreferenceLight}, seen)
}
