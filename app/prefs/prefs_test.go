package prefs

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"github.com/umputun/showcase/app/enum"
)

func TestResolve(t *testing.T) {
	options := map[string]mo.Option[bool]{
		"none":  mo.None[bool](),
		"true":  mo.Some(true),
		"false": mo.Some(false),
	}

	for initial := range enum.PreferenceIter() {
		for pn, pending := range options {
			for cn, confirmed := range options {
				t.Run(initial.String()+"/"+pn+"/"+cn, func(t *testing.T) {
					expected := initial
					if v, ok := confirmed.Get(); ok {
						expected = enum.PreferenceFromBool(v)
					}
					if v, ok := pending.Get(); ok {
						expected = enum.PreferenceFromBool(v)
					}
					assert.Equal(t, expected, Resolve(initial, pending, confirmed, false))
					assert.Equal(t, initial, Resolve(initial, pending, confirmed, true), "server pass uses initial")
				})
			}
		}
	}
}

func TestToggle(t *testing.T) {
	assert.True(t, Toggle(enum.PreferenceUnset))
	assert.False(t, Toggle(enum.PreferenceDark))
	assert.True(t, Toggle(enum.PreferenceLight))
}

func TestRenderHelpers(t *testing.T) {
	tests := []struct {
		pref   enum.Preference
		class  string
		icon   string
		hidden string
	}{
		{enum.PreferenceDark, "dark", "/static/images/sun.svg", "false"},
		{enum.PreferenceLight, "light", "/static/images/moon.svg", "true"},
		{enum.PreferenceUnset, "bg-white", "/static/images/moon.svg", "true"},
	}

	for _, tc := range tests {
		t.Run(tc.pref.String(), func(t *testing.T) {
			assert.Equal(t, tc.class, Class(tc.pref))
			assert.Equal(t, tc.icon, Icon(tc.pref))
			assert.Equal(t, tc.hidden, HiddenValue(tc.pref))
		})
	}
}

func TestParseFlag(t *testing.T) {
	assert.Equal(t, enum.PreferenceDark, parseFlag("true"))
	assert.Equal(t, enum.PreferenceLight, parseFlag("false"))
	assert.Equal(t, enum.PreferenceUnset, parseFlag(""))
	assert.Equal(t, enum.PreferenceUnset, parseFlag("TRUE"))
	assert.Equal(t, enum.PreferenceUnset, parseFlag("1"))
}
