// Package reload watches shared library files and reports when they change.
// Rapid bursts of events, such as a build rewriting a library in several
// steps, are debounced into a single notification.
package reload

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/modbridge/pkg/log"
)

// DefaultDebounceDelay is used when no positive delay is configured.
const DefaultDebounceDelay = 100 * time.Millisecond

// Watcher calls a function after any of a set of files changes.
type Watcher struct {
	mu sync.Mutex

	files         map[string]bool
	dirs          []string
	debounceDelay time.Duration
	onChange      func(path string)
	logger        log.Logger

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
	stopped  bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger. If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithDebounceDelay sets how long the watcher waits for events to settle.
func WithDebounceDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounceDelay = d
		}
	}
}

// New creates a watcher for paths. onChange receives the last path that
// changed within a debounce window.
func New(paths []string, onChange func(path string), opts ...Option) *Watcher {
	w := &Watcher{
		files:         make(map[string]bool),
		debounceDelay: DefaultDebounceDelay,
		onChange:      onChange,
		logger:        log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}

	seen := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		w.files[p] = true
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	return w
}

// Start begins watching. Directories are watched rather than files so that
// a library replaced by rename is still noticed.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.cancel = cancel
	w.stopped = false
	w.mu.Unlock()

	w.logger.Info("library watcher started", log.Int("files", len(w.files)))

	w.wg.Add(1)
	go w.loop(watchCtx, fw)
	return nil
}

// Stop ends watching and cancels any pending notification.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	cancel := w.cancel
	w.stopped = true
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
	return nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fw.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("library changed", log.String("path", name), log.String("op", event.Op.String()))
			w.schedule(name)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("library watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		w.mu.Lock()
		stopped := w.stopped
		w.mu.Unlock()
		if !stopped {
			w.onChange(path)
		}
	})
}
