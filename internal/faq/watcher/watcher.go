// Package watcher re-runs FAQ ingestion when source files change.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"shop-assistant/pkg/log"
)

const DefaultDebounce = 500 * time.Millisecond

var ErrNoPaths = errors.New("watcher: no paths to watch")

// Watcher calls a callback once per burst of writes to the watched files.
// Directories of the files are watched so editors that replace files on save
// are still seen.
type Watcher struct {
	l        log.Logger
	files    map[string]struct{}
	dirs     map[string]struct{}
	debounce time.Duration
}

// New watches the given files. debounce <= 0 selects DefaultDebounce.
func New(l log.Logger, files []string, debounce time.Duration) (*Watcher, error) {
	if len(files) == 0 {
		return nil, ErrNoPaths
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		l:        l,
		files:    make(map[string]struct{}, len(files)),
		dirs:     make(map[string]struct{}),
		debounce: debounce,
	}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("watcher: %w", err)
		}
		w.files[abs] = struct{}{}
		w.dirs[filepath.Dir(abs)] = struct{}{}
	}
	return w, nil
}

// Run blocks until ctx is done, calling onChange after each debounced change.
// Errors from onChange are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	defer fw.Close()

	for dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watcher: watch %s: %w", dir, err)
		}
	}

	// Reset without draining relies on the Go 1.23 timer semantics.
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.l.Debugf(ctx, "internal.faq.watcher.Run: %s %s", ev.Op, ev.Name)
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.l.Warnf(ctx, "internal.faq.watcher.Run: %v", err)

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				w.l.Errorf(ctx, "internal.faq.watcher.Run: onChange: %v", err)
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}
