package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

//go:generate moq -out mocks/submitter.go -pkg mocks -skip-ensure -fmt goimports . Submitter

// Submitter delivers the toggled flag to the persistence boundary and returns the confirmed value.
type Submitter interface {
	Submit(ctx context.Context, target bool) (bool, error)
}

// HeaderSink is the response header collaborator the cookie is written to.
type HeaderSink interface {
	Header() http.Header
}

// CookieOpts are the optional attributes of the darkmode cookie.
type CookieOpts struct {
	MaxAge time.Duration // zero means a session cookie
	Secure bool
}

// CookieSubmitter persists the flag as a darkmode cookie on the response.
type CookieSubmitter struct {
	sink HeaderSink
	opts CookieOpts
}

// NewCookieSubmitter makes a submitter writing to the given sink. A nil sink is ErrContextMissing.
func NewCookieSubmitter(sink HeaderSink, opts CookieOpts) (*CookieSubmitter, error) {
	if sink == nil {
		return nil, fmt.Errorf("cookie submitter, response header sink: %w", ErrContextMissing)
	}
	return &CookieSubmitter{sink: sink, opts: opts}, nil
}

// Submit adds "Set-Cookie: darkmode=<target>; Path=/" to the response and echoes target back.
// The request going away before the cookie is set is the only transport failure.
func (c *CookieSubmitter) Submit(ctx context.Context, target bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &TransportError{Op: "set cookie", Err: err}
	}

	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    strconv.FormatBool(target),
		Path:     "/",
		Secure:   c.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if c.opts.MaxAge > 0 {
		cookie.MaxAge = int(c.opts.MaxAge.Seconds())
	}
	c.sink.Header().Add("Set-Cookie", cookie.String())
	return target, nil
}

// HTTPSubmitter posts the toggle form to the server endpoint and reads the echoed flag.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSubmitter makes a submitter for the toggle endpoint, e.g. http://localhost:8080/api/darkmode.
// A nil client means a client with a 10s timeout.
func NewHTTPSubmitter(endpoint string, client *http.Client) *HTTPSubmitter {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSubmitter{endpoint: endpoint, client: client}
}

// Submit posts prefers_dark=<target> and returns the value confirmed by the server.
func (h *HTTPSubmitter) Submit(ctx context.Context, target bool) (bool, error) {
	form := url.Values{FieldName: {strconv.FormatBool(target)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false, &TransportError{Op: "make request", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return false, &TransportError{Op: "post " + h.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, &TransportError{Op: "post " + h.endpoint, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var confirmed bool
	if err := json.NewDecoder(resp.Body).Decode(&confirmed); err != nil {
		return false, &TransportError{Op: "decode response", Err: err}
	}
	return confirmed, nil
}
