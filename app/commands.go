package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/showcase/app/content"
	"github.com/umputun/showcase/app/enum"
	"github.com/umputun/showcase/app/prefs"
	"github.com/umputun/showcase/app/server"
	"github.com/umputun/showcase/app/walkthrough"
)

// ServerCmd implements the server subcommand
type ServerCmd struct {
	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /showcase)"`
		Title           string        `long:"title" env:"TITLE" default:"Showcase" description:"site title"`
		RequestsPerSec  int64         `long:"rps" env:"RPS" default:"1000" description:"max requests per second"`
	} `group:"server" namespace:"server" env-namespace:"SHOWCASE_SERVER"`

	Content struct {
		File  string `long:"file" env:"FILE" description:"walkthrough content file, embedded example if not set"`
		Watch bool   `long:"watch" env:"WATCH" description:"reload the content file on change"`
		Style string `long:"style" env:"STYLE" default:"github" description:"chroma style of the listing"`
	} `group:"content" namespace:"content" env-namespace:"SHOWCASE_CONTENT"`

	Cookie struct {
		TTL    time.Duration `long:"ttl" env:"TTL" default:"8760h" description:"darkmode cookie lifetime, 0 for a session cookie"`
		Secure bool          `long:"secure" env:"SECURE" description:"set the secure attribute on the darkmode cookie"`
	} `group:"cookie" namespace:"cookie" env-namespace:"SHOWCASE_COOKIE"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting showcase server on %s", s.Server.Address)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	src, err := content.NewSource(s.Content.File)
	if err != nil {
		return fmt.Errorf("failed to initialize content: %w", err)
	}

	renderer, err := walkthrough.NewRenderer(src, s.Content.Style)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	defer renderer.Close()
	src.OnReload(func(content.Document) { renderer.Invalidate() })

	if s.Content.Watch {
		if s.Content.File == "" {
			log.Printf("[WARN] content watch requested without a content file, ignored")
		} else {
			if err := src.StartWatcher(ctx); err != nil {
				return fmt.Errorf("failed to start content watcher: %w", err)
			}
			log.Printf("[INFO] content hot-reload enabled")
		}
	}

	srv, err := server.New(renderer, server.Config{
		Address:         s.Server.Address,
		ReadTimeout:     s.Server.ReadTimeout,
		WriteTimeout:    s.Server.WriteTimeout,
		IdleTimeout:     s.Server.IdleTimeout,
		ShutdownTimeout: s.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		Title:           s.Server.Title,
		CookieTTL:       s.Cookie.TTL,
		SecureCookies:   s.Cookie.Secure,
		RequestsPerSec:  s.Server.RequestsPerSec,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// DarkmodeCmd implements the darkmode subcommand, a client toggling the preference on a running server
type DarkmodeCmd struct {
	URL     string        `long:"url" env:"SHOWCASE_URL" default:"http://localhost:8080" description:"site URL, including the base URL"`
	Current string        `long:"current" choice:"unset" choice:"dark" choice:"light" default:"unset" description:"preference shown before the toggle"`
	Timeout time.Duration `long:"timeout" default:"10s" description:"request timeout"`
	Debug   bool          `long:"dbg" env:"DEBUG" description:"debug mode"`

	out io.Writer
}

// Execute runs the darkmode command
func (d *DarkmodeCmd) Execute(_ []string) error {
	setupLogs(d.Debug)
	return d.run(context.Background())
}

func (d *DarkmodeCmd) run(ctx context.Context) error {
	current, err := enum.ParsePreference(d.Current)
	if err != nil {
		return fmt.Errorf("invalid current preference: %w", err)
	}
	out := d.out
	if out == nil {
		out = os.Stdout
	}

	st := prefs.NewState(current, false)
	st.Subscribe(func(p enum.Preference) { log.Printf("[DEBUG] effective preference %s", p) })

	endpoint := strings.TrimSuffix(d.URL, "/") + "/api/darkmode"
	res, err := st.Toggle(ctx, prefs.NewHTTPSubmitter(endpoint, &http.Client{Timeout: d.Timeout}))
	if err != nil {
		// the optimistic value stays pending, report it along with the failure
		if _, ok := st.Pending().Get(); ok {
			_, _ = fmt.Fprintf(out, "darkmode: %s (not persisted)\n", res)
		}
		return fmt.Errorf("darkmode toggle failed: %w", err)
	}
	_, _ = fmt.Fprintf(out, "darkmode: %s\n", res)
	return nil
}

// validateBaseURL normalizes the base URL: empty or "/" means none, otherwise it must start
// with "/" and loses the trailing slash.
func validateBaseURL(baseURL string) (string, error) {
	if baseURL == "" || baseURL == "/" {
		return "", nil
	}
	if !strings.HasPrefix(baseURL, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", baseURL)
	}
	return strings.TrimSuffix(baseURL, "/"), nil
}
