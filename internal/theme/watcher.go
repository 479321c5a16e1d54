package theme

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches the active theme file and reloads it on change.
type Watcher struct {
	mu     sync.Mutex
	logger *slog.Logger
	loader *Loader

	debounce         time.Duration
	onChangeCallback func(*Theme)

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher creates a watcher for the loader's active theme.
func NewWatcher(loader *Loader, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		logger:   logger,
		loader:   loader,
		debounce: DefaultDebounce,
	}
}

// SetDebounce sets how long the watcher waits after the last event.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// SetChangeCallback sets the callback invoked after a reload that changed
// the theme. Reloads that fail validation do not invoke it.
func (w *Watcher) SetChangeCallback(callback func(*Theme)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChangeCallback = callback
}

// Start begins watching. Bundled themes have no file, so Start is a no-op
// for them.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	src := w.loader.Source()
	if src.Path == "" {
		w.logger.Debug("not watching bundled theme", "name", src.Name)
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: editors often replace the file on save.
	if err := fw.Add(filepath.Dir(src.Path)); err != nil {
		_ = fw.Close()
		return err
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.watchLoop(ctx, fw, w.stopCh, w.doneCh, filepath.Base(src.Path), w.debounce)

	w.logger.Debug("theme watcher started", "path", src.Path)
	return nil
}

// Stop stops watching and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	doneCh := w.doneCh
	w.mu.Unlock()

	<-doneCh
	w.logger.Debug("theme watcher stopped")
}

// IsRunning returns whether the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) watchLoop(ctx context.Context, fw *fsnotify.Watcher, stopCh, doneCh chan struct{}, filename string, debounce time.Duration) {
	defer close(doneCh)
	defer fw.Close()
	defer func() {
		// A cancelled ctx ends the loop without Stop.
		w.mu.Lock()
		if w.doneCh == doneCh {
			w.running = false
		}
		w.mu.Unlock()
	}()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	changed, err := w.loader.Reload()
	if err != nil || !changed {
		return
	}

	w.mu.Lock()
	callback := w.onChangeCallback
	w.mu.Unlock()

	if callback != nil {
		callback(w.loader.Current())
	}
}
