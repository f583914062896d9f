// Package watch re-lints source files as they change on disk.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher monitors directories and invokes a callback for changed
// files that pass the match filter. Events for a path accumulate until
// the path has been quiet for the debounce window, then dispatch once,
// so a rapid save sequence (truncate + write, editor autosave bursts)
// re-lints only the final content.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	log         *zap.Logger
	match       func(path string) bool
	onChange    func(path string)
	pending     map[string]time.Time
	debounceDur time.Duration
	tickEvery   time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// New creates a Watcher. match filters event paths; onChange runs for
// each matching path once its events have settled.
func New(log *zap.Logger, match func(string) bool, onChange func(string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		watcher:     fsw,
		log:         log,
		match:       match,
		onChange:    onChange,
		pending:     make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
		tickEvery:   100 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Add registers root and every directory beneath it for watching.
func (w *Watcher) Add(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return err
		}
		w.log.Debug("watching directory", zap.String("path", path))
		return nil
	})
}

// Start begins dispatching events. Non-blocking; the watcher runs in
// its own goroutine until Stop is called or the context is canceled.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.loop(ctx)
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		case <-ticker.C:
			w.dispatchSettled()
		}
	}
}

// handleEvent records the event; dispatch happens from the ticker once
// the path has settled.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	// New directories join the watch set so nested creates keep
	// arriving.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watcher.Add(event.Name); err == nil {
				w.log.Debug("watch extended", zap.String("path", event.Name))
			}
			return
		}
	}
	if w.match != nil && !w.match(event.Name) {
		return
	}
	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
	w.log.Debug("file changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
}

// dispatchSettled invokes the callback for every pending path whose
// last event is older than the debounce window.
func (w *Watcher) dispatchSettled() {
	w.mu.Lock()
	now := time.Now()
	var settled []string
	for path, last := range w.pending {
		if now.Sub(last) >= w.debounceDur {
			settled = append(settled, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range settled {
		w.log.Debug("file settled", zap.String("path", path))
		w.onChange(path)
	}
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.watcher.Close()
}
