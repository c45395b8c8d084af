// Package prefs resolves the dark-mode preference of a page from the optimistic toggle input,
// the last confirmed cookie write and the value found when the page was mounted.
package prefs

import (
	"strconv"

	"github.com/samber/mo"

	"github.com/umputun/showcase/app/enum"
)

// CookieName is the name of the cookie holding the dark-mode flag.
const CookieName = "darkmode"

// FieldName is the form field carrying the flag submitted by the toggle control.
const FieldName = "prefers_dark"

// Resolve returns the effective preference. Pending input wins over the confirmed value, which wins
// over the initial one. A server-rendered pass always gets the initial value, there is no
// optimistic state before the client attaches.
func Resolve(initial enum.Preference, pending, confirmed mo.Option[bool], serverPass bool) enum.Preference {
	if serverPass {
		return initial
	}
	if v, ok := pending.Get(); ok {
		return enum.PreferenceFromBool(v)
	}
	if v, ok := confirmed.Get(); ok {
		return enum.PreferenceFromBool(v)
	}
	return initial
}

// Toggle returns the value submitted when the user activates the toggle control.
func Toggle(current enum.Preference) bool {
	return current.Toggle()
}

// Class returns the body class for the preference.
func Class(p enum.Preference) string {
	switch p {
	case enum.PreferenceDark:
		return "dark"
	case enum.PreferenceLight:
		return "light"
	default:
		return "bg-white"
	}
}

// Icon returns the icon shown on the toggle button, sun when dark and moon otherwise.
func Icon(p enum.Preference) string {
	if p.Dark() {
		return "/static/images/sun.svg"
	}
	return "/static/images/moon.svg"
}

// HiddenValue returns the hidden form field value, the negation of the displayed preference.
func HiddenValue(p enum.Preference) string {
	return strconv.FormatBool(Toggle(p))
}

// parseFlag maps a cookie value to a preference. Only the literal "true" and "false" count.
func parseFlag(v string) enum.Preference {
	switch v {
	case "true":
		return enum.PreferenceDark
	case "false":
		return enum.PreferenceLight
	default:
		return enum.PreferenceUnset
	}
}
