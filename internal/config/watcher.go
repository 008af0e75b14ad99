package config

import (
	"path/filepath"
	"sync"
	"time"

	"brandstudio/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches .brandstudio/config.json and reloads it on change, so a
// hand-edited debug_mode or plan-limit override takes effect without
// restarting a long-lived gallery session.
type Watcher struct {
	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	workspace string
	onReload  func(*Config)

	lastEvent   time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewWatcher creates a config watcher. onReload receives the freshly
// loaded config after every change; it may be nil.
func NewWatcher(workspace string, onReload func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     fsw,
		workspace:   workspace,
		onReload:    onReload,
		debounceDur: 500 * time.Millisecond, // Debounce rapid editor saves
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the watch loop runs in a goroutine.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory, not the file: editors replace config files by
	// rename, which drops a direct file watch.
	dir := filepath.Dir(Path(w.workspace))
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	defer close(w.doneCh)
	configName := filepath.Base(Path(w.workspace))

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != configName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.mu.Lock()
			if time.Since(w.lastEvent) < w.debounceDur {
				w.mu.Unlock()
				continue
			}
			w.lastEvent = time.Now()
			w.mu.Unlock()

			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryConfig).Warn("Config watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.workspace)
	if err != nil {
		logging.Get(logging.CategoryConfig).Error("Config reload failed: %v", err)
		return
	}
	if err := logging.ReloadConfig(); err != nil {
		logging.Get(logging.CategoryConfig).Warn("Logging reload failed: %v", err)
	}
	logging.Get(logging.CategoryConfig).Info("Config reloaded from %s", Path(w.workspace))
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

// Stop shuts the watcher down and waits for the loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	err := w.watcher.Close()
	<-w.doneCh
	return err
}
