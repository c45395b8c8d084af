package web

import (
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/showcase/app/content"
	"github.com/umputun/showcase/app/enum"
	"github.com/umputun/showcase/app/prefs"
	"github.com/umputun/showcase/app/server/web/mocks"
	"github.com/umputun/showcase/app/walkthrough"
)

func TestNew(t *testing.T) {
	t.Run("nil renderer", func(t *testing.T) {
		_, err := New(nil, Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, prefs.ErrContextMissing)
	})

	t.Run("defaults", func(t *testing.T) {
		h, err := New(defaultRendererMock(), Config{CookieTTL: time.Hour, SecureCookies: true})
		require.NoError(t, err)
		assert.Equal(t, "Showcase", h.title)
		assert.Equal(t, time.Hour, h.cookie.MaxAge)
		assert.True(t, h.cookie.Secure)
		assert.NotNil(t, h.tmpl.Lookup("base.html"))
		assert.NotNil(t, h.tmpl.Lookup("darkmode-toggle"))
		assert.NotNil(t, h.tmpl.Lookup("walkthrough"))
	})
}

func TestStaticFS(t *testing.T) {
	sfs, err := StaticFS()
	require.NoError(t, err)
	for _, name := range []string{"images/sun.svg", "images/moon.svg", "js/app.js", "css/site.css"} {
		_, err := fs.Stat(sfs, name)
		assert.NoError(t, err, name)
	}
}

func TestHandler_URL(t *testing.T) {
	h, err := New(defaultRendererMock(), Config{BaseURL: "/site"})
	require.NoError(t, err)
	assert.Equal(t, "/site/", h.url("/"))
	assert.Equal(t, "/site/web/walkthrough", h.url("/web/walkthrough"))
}

func TestIsHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	assert.False(t, isHTMX(req))
	req.Header.Set("HX-Request", "true")
	assert.True(t, isHTMX(req))
}

func TestNewThemeData(t *testing.T) {
	tests := []struct {
		pref     enum.Preference
		expected themeData
	}{
		{enum.PreferenceDark, themeData{Class: "dark", Icon: "/static/images/sun.svg", Hidden: "false", Dark: true}},
		{enum.PreferenceLight, themeData{Class: "light", Icon: "/static/images/moon.svg", Hidden: "true"}},
		{enum.PreferenceUnset, themeData{Class: "bg-white", Icon: "/static/images/moon.svg", Hidden: "true"}},
	}
	for _, tc := range tests {
		t.Run(tc.pref.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, newThemeData(tc.pref))
		})
	}
}

// defaultRendererMock returns a renderer mock producing a marker per phase.
func defaultRendererMock() *mocks.RendererMock {
	return &mocks.RendererMock{
		RenderFunc: func(phase enum.Phase) (walkthrough.Rendered, error) {
			return walkthrough.Rendered{
				Title:   "How does it work?",
				Listing: template.HTML("<pre>listing-" + phase.String() + "</pre>"),
				Steps:   []template.HTML{"step one", "step two"},
			}, nil
		},
		CSSFunc: func(w io.Writer) error {
			_, err := io.WriteString(w, ".chroma {}")
			return err
		},
	}
}

// newTestHandler creates a test handler with a renderer mock.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := New(defaultRendererMock(), Config{})
	require.NoError(t, err)
	return h
}

// newTestHandlerWithContent creates a test handler rendering the embedded walkthrough content.
func newTestHandlerWithContent(t *testing.T) *Handler {
	t.Helper()
	src, err := content.NewSource("")
	require.NoError(t, err)
	r, err := walkthrough.NewRenderer(src, "github")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	h, err := New(r, Config{})
	require.NoError(t, err)
	return h
}
