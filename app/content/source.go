package content

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/go-pkgz/lgr"
)

// Source holds the current document and reloads it from the content file on demand or on change.
type Source struct {
	path string

	mu        sync.RWMutex
	doc       Document
	listeners []func(Document)
}

// NewSource loads the document from path, the embedded one if path is empty.
func NewSource(path string) (*Source, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return &Source{path: path, doc: doc}, nil
}

// Document returns the current document.
func (s *Source) Document() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// OnReload registers fn to be called with the new document after a successful reload.
func (s *Source) OnReload(fn func(Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload reads the content file again. On error the current document is kept, a canceled ctx
// leaves it untouched as well.
func (s *Source) Reload(ctx context.Context) error {
	if s.path == "" {
		return errors.New("content file path not set")
	}
	doc, err := Load(s.path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("reload %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.doc = doc
	listeners := append([]func(Document){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(doc)
	}
	log.Printf("[INFO] content reloaded from %s", s.path)
	return nil
}

// reloadDelay coalesces the burst of events a single save produces.
const reloadDelay = 100 * time.Millisecond

// StartWatcher watches the content file and reloads it on change until ctx is canceled.
// The directory is watched, so a file replaced by rename or removed and created again is
// picked up. While the file is missing the current document stays.
func (s *Source) StartWatcher(ctx context.Context) error {
	if s.path == "" {
		return errors.New("content file path not set")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	log.Printf("[INFO] watching content file %s for changes", s.path)
	go s.watch(ctx, watcher)
	return nil
}

// watch runs the event loop. Reloads happen on this goroutine, after reloadDelay without
// further events for the content file.
func (s *Source) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	name := filepath.Clean(s.path)
	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] content watcher stopped")
			return

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			switch {
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				// moved away or deleted, a create follows when it is replaced
				log.Printf("[WARN] content file %s is gone, keeping the current document", s.path)
				timer.Stop()
			case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
				timer.Reset(reloadDelay)
			}

		case <-timer.C:
			if err := s.Reload(ctx); err != nil {
				log.Printf("[WARN] failed to reload content: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[WARN] content watcher error: %v", err)
		}
	}
}
