package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/plantadash/plantsearch/internal/core/services"
	"github.com/plantadash/plantsearch/internal/logger"
)

// Watcher calls a reload function after a dataset file changes.
// Bursts of events within the quiet period trigger one reload.
type Watcher struct {
	path      string
	delay     time.Duration
	onChange  func()
	fs        *fsnotify.Watcher
	debouncer *services.Debouncer
}

// NewWatcher watches path. The parent directory is watched so that
// editors which replace the file are still seen.
func NewWatcher(path string, delay time.Duration, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:      abs,
		delay:     delay,
		onChange:  onChange,
		fs:        fs,
		debouncer: services.NewDebouncer(),
	}, nil
}

// Run delivers change notifications until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.debouncer.Cancel()

	for {
		select {
		case <-ctx.Done():
			return w.fs.Close()
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if w.isRelevant(event) {
				logger.Debug("Dataset changed: %s %s", event.Op, event.Name)
				w.debouncer.Arm(w.delay, w.onChange)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Dataset watcher: %v", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.debouncer.Cancel()
	return w.fs.Close()
}

// isRelevant keeps writes, creates and renames of the watched file.
func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
