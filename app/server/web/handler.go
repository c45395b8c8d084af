// Package web provides HTTP handlers for the site pages and their interactive fragments.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"time"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/showcase/app/enum"
	"github.com/umputun/showcase/app/prefs"
	"github.com/umputun/showcase/app/walkthrough"
)

//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Renderer renders the walkthrough listing and notes for a phase.
type Renderer interface {
	Render(phase enum.Phase) (walkthrough.Rendered, error)
	CSS(w io.Writer) error
}

// Config holds web handler configuration.
type Config struct {
	BaseURL       string
	Title         string
	CookieTTL     time.Duration // darkmode cookie lifetime, zero for a session cookie
	SecureCookies bool
}

// Handler handles web UI requests.
type Handler struct {
	renderer Renderer
	tmpl     *template.Template
	baseURL  string
	title    string
	cookie   prefs.CookieOpts

	// full pages are server-rendered passes, fragments come from an attached client
	serverInitial prefs.InitialResolver
	clientInitial prefs.InitialResolver
}

// New creates a new web handler.
func New(renderer Renderer, cfg Config) (*Handler, error) {
	if renderer == nil {
		return nil, fmt.Errorf("walkthrough renderer: %w", prefs.ErrContextMissing)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	title := cfg.Title
	if title == "" {
		title = "Showcase"
	}

	return &Handler{
		renderer:      renderer,
		tmpl:          tmpl,
		baseURL:       cfg.BaseURL,
		title:         title,
		cookie:        prefs.CookieOpts{MaxAge: cfg.CookieTTL, Secure: cfg.SecureCookies},
		serverInitial: prefs.ServerInitial{},
		clientInitial: prefs.ClientInitial{Media: prefs.ClientHint{}},
	}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /web/darkmode", h.handleDarkModeMount)
	r.HandleFunc("POST /api/darkmode", h.handleDarkModeToggle)
	r.HandleFunc("GET /web/walkthrough", h.handleWalkthroughNew)
	r.HandleFunc("POST /web/walkthrough", h.handleWalkthroughAction)
	r.HandleFunc("GET /web/chroma.css", h.handleChromaCSS)
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs())

	// parse base template
	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	if _, err = tmpl.New("base.html").Parse(string(baseContent)); err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	// parse partials
	partials := []string{"darkmode-toggle", "walkthrough"}
	for _, name := range partials {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		_, parseErr := tmpl.New(name).Parse(string(content))
		if parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}

	return tmpl, nil
}

// themeData is what the toggle and the body need to show a preference.
type themeData struct {
	Class  string // body class
	Icon   string // toggle icon
	Hidden string // prefers_dark value submitted by the toggle, the negated current value
	Dark   bool
}

// darkmodeEvent is the HX-Trigger payload announcing the displayed preference.
type darkmodeEvent struct {
	Darkmode darkmodeDetail `json:"darkmode"`
}

type darkmodeDetail struct {
	Class string `json:"class"`
	Dark  bool   `json:"dark"`
}

// walkthroughData holds one walkthrough fragment.
type walkthroughData struct {
	walkthrough.Walkthrough
	walkthrough.Rendered
	Fields url.Values
}

// templateData holds data passed to templates.
type templateData struct {
	Title       string
	BaseURL     string
	Theme       themeData
	Walkthrough walkthroughData
}

func newThemeData(p enum.Preference) themeData {
	return themeData{Class: prefs.Class(p), Icon: prefs.Icon(p), Hidden: prefs.HiddenValue(p), Dark: p.Dark()}
}

// walkthroughData renders the walkthrough for its current phase.
func (h *Handler) walkthroughData(w walkthrough.Walkthrough) (walkthroughData, error) {
	rendered, err := h.renderer.Render(w.Phase)
	if err != nil {
		return walkthroughData{}, fmt.Errorf("render walkthrough: %w", err)
	}
	return walkthroughData{Walkthrough: w, Rendered: rendered, Fields: w.Fields()}, nil
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// isHTMX reports whether the request comes from htmx, i.e. from an attached client.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
