package prefs

import (
	"net/http"
	"strings"

	"github.com/samber/mo"

	"github.com/umputun/showcase/app/enum"
)

// ColorSchemeHint is the client hint header carrying the prefers-color-scheme media query result.
const ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// InitialResolver resolves the preference seen when a toggle is mounted.
type InitialResolver interface {
	Initial(r *http.Request) enum.Preference
}

// MediaQuery reports the host's color-scheme preference, none when the host doesn't tell.
type MediaQuery interface {
	PrefersDark(r *http.Request) mo.Option[bool]
}

// ServerInitial resolves the initial value on a server-rendered pass from the inbound cookies only.
type ServerInitial struct{}

// Initial returns the preference stored in the darkmode cookie, unset if missing or invalid.
func (ServerInitial) Initial(r *http.Request) enum.Preference {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return enum.PreferenceUnset
	}
	return parseFlag(c.Value)
}

// ClientInitial resolves the initial value once the client is attached: the darkmode cookie if
// present, else the media query, else unset.
type ClientInitial struct {
	Media MediaQuery
}

// Initial returns the resolved initial preference.
func (c ClientInitial) Initial(r *http.Request) enum.Preference {
	if p := (ServerInitial{}).Initial(r); p != enum.PreferenceUnset {
		return p
	}
	if c.Media == nil {
		return enum.PreferenceUnset
	}
	if dark, ok := c.Media.PrefersDark(r).Get(); ok {
		return enum.PreferenceFromBool(dark)
	}
	return enum.PreferenceUnset
}

// ClientHint reads the media query result from the Sec-CH-Prefers-Color-Scheme header.
type ClientHint struct{}

// PrefersDark returns some(true) for "dark", some(false) for "light" and none otherwise.
func (ClientHint) PrefersDark(r *http.Request) mo.Option[bool] {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(ColorSchemeHint)), `"`)
	switch strings.ToLower(v) {
	case "dark":
		return mo.Some(true)
	case "light":
		return mo.Some(false)
	default:
		return mo.None[bool]()
	}
}
