// Reloads a definition file when it changes on disk.

package catalog

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// ReloadInterval is the minimum delay between two reloads of the same file.
const ReloadInterval = 100 * time.Millisecond

// Store holds the current catalog. Readers call Load and keep using the
// catalog they got; a reload publishes a new catalog and never mutates the
// old one.
type Store struct {
	current atomic.Pointer[Catalog]
	// OnReload, when set, is called after each successful reload from the
	// watcher goroutine.
	OnReload func(*Catalog)
}

// NewStore returns a store publishing c.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Load returns the current catalog.
func (s *Store) Load() *Catalog {
	return s.current.Load()
}

// Watch reloads path whenever it is written, created or renamed into place
// and publishes the result. A file that fails to load is logged and the
// previous catalog stays current.
//
// The parent directory is watched so editors that replace the file
// atomically are handled. Watch returns once the watcher is running; it stops
// when ctx is canceled. A nil logger means slog.Default().
func (s *Store) Watch(ctx context.Context, path string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return err
	}
	lim := rate.NewLimiter(rate.Every(ReloadInterval), 1)
	go func() {
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if err := lim.Wait(ctx); err != nil {
					return
				}
				s.reload(ctx, abs, logger)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.WarnContext(ctx, "Error watching definitions", "err", err)
			}
		}
	}()
	return nil
}

func (s *Store) reload(ctx context.Context, path string, logger *slog.Logger) {
	c, err := Load(path, logger)
	if err != nil {
		logger.WarnContext(ctx, "Failed to reload definitions, keeping previous catalog", "path", path, "err", err)
		return
	}
	s.current.Store(c)
	logger.InfoContext(ctx, "Definitions reloaded", "path", path, "tables", c.Len(), "generation", c.Generation().String())
	if s.OnReload != nil {
		s.OnReload(c)
	}
}
