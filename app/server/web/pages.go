package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/showcase/app/enum"
	"github.com/umputun/showcase/app/prefs"
	"github.com/umputun/showcase/app/walkthrough"
)

// handleIndex renders the main page. This is a server-rendered pass, the theme comes from the
// darkmode cookie only.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	wt, err := h.walkthroughData(walkthrough.New())
	if err != nil {
		log.Printf("[ERROR] failed to render walkthrough: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	st := prefs.NewState(h.serverInitial.Initial(r), true)
	data := templateData{
		Title:       h.title,
		BaseURL:     h.baseURL,
		Theme:       newThemeData(st.Effective()),
		Walkthrough: wt,
	}

	// ask the browser for the media query result on the following requests
	w.Header().Set("Accept-CH", prefs.ColorSchemeHint)
	w.Header().Set("Vary", prefs.ColorSchemeHint)

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	_, _ = buf.WriteTo(w)
}

// handleDarkModeMount is the client pass of the toggle, loaded by the page once htmx is attached.
// The server pass rendered the toggle from the cookie only, here the color-scheme hint sent by
// the client fills in when there is no cookie.
func (h *Handler) handleDarkModeMount(w http.ResponseWriter, r *http.Request) {
	st := prefs.NewState(h.serverInitial.Initial(r), true)
	st.Subscribe(func(p enum.Preference) { log.Printf("[DEBUG] client pass switched darkmode to %s", p) })
	st.Hydrate(h.clientInitial.Initial(r))
	h.renderToggle(w, st.Effective())
}

// handleDarkModeToggle accepts the prefers_dark flag, sets the darkmode cookie and echoes the flag.
// htmx requests get the re-rendered toggle and a darkmode event, JSON clients get the bare flag,
// plain form posts are redirected back.
func (h *Handler) handleDarkModeToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	target, err := strconv.ParseBool(r.PostFormValue(prefs.FieldName))
	if err != nil {
		http.Error(w, "invalid "+prefs.FieldName, http.StatusBadRequest)
		return
	}

	submitter, err := prefs.NewCookieSubmitter(w, h.cookie)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	st := prefs.NewState(h.clientInitial.Initial(r), false)
	sub := st.Begin(target)
	confirmed, err := submitter.Submit(r.Context(), target)
	st.Complete(sub, confirmed, err)
	if err != nil {
		var te *prefs.TransportError
		if errors.As(err, &te) {
			log.Printf("[WARN] darkmode not persisted: %v", err)
			http.Error(w, "darkmode not persisted", http.StatusServiceUnavailable)
			return
		}
		log.Printf("[ERROR] darkmode toggle failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	log.Printf("[DEBUG] darkmode set to %v, effective %s", confirmed, st.Effective())

	switch {
	case isHTMX(r):
		h.renderToggle(w, st.Effective())
	case strings.Contains(r.Header.Get("Accept"), "application/json"):
		rest.RenderJSON(w, st.Confirmed().OrElse(confirmed))
	default:
		http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
	}
}

// renderToggle renders the toggle for the preference with a darkmode event, so the page
// updates the body class to match.
func (h *Handler) renderToggle(w http.ResponseWriter, p enum.Preference) {
	theme := newThemeData(p)
	trigger, err := json.Marshal(darkmodeEvent{Darkmode: darkmodeDetail{Class: theme.Class, Dark: theme.Dark}})
	if err != nil {
		log.Printf("[ERROR] failed to encode darkmode event: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("HX-Trigger", string(trigger))
	if err := h.tmpl.ExecuteTemplate(w, "darkmode-toggle", templateData{BaseURL: h.baseURL, Theme: theme}); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleWalkthroughNew renders a fresh walkthrough fragment.
func (h *Handler) handleWalkthroughNew(w http.ResponseWriter, _ *http.Request) {
	h.renderWalkthrough(w, walkthrough.New())
}

// handleWalkthroughAction applies a user action to the walkthrough posted with the fragment.
func (h *Handler) handleWalkthroughAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	action, err := enum.ParseAction(r.PostFormValue("action"))
	if err != nil {
		http.Error(w, "invalid action", http.StatusBadRequest)
		return
	}

	wt := walkthrough.FromForm(r.PostForm)
	wt.Apply(action)
	log.Printf("[DEBUG] walkthrough %s: %s -> phase %s, count %d, tab %s", wt.ID, action, wt.Phase, wt.Count, wt.Tab)
	h.renderWalkthrough(w, wt)
}

// handleChromaCSS serves the stylesheet for the listing tokens.
func (h *Handler) handleChromaCSS(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if err := h.renderer.CSS(w); err != nil {
		log.Printf("[ERROR] failed to write chroma css: %v", err)
	}
}

func (h *Handler) renderWalkthrough(w http.ResponseWriter, wt walkthrough.Walkthrough) {
	data, err := h.walkthroughData(wt)
	if err != nil {
		log.Printf("[ERROR] failed to render walkthrough: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := h.tmpl.ExecuteTemplate(w, "walkthrough", templateData{BaseURL: h.baseURL, Walkthrough: data}); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}
