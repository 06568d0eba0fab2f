package app

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"arc-slider/internal/config"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 150 * time.Millisecond

// ConfigWatcher watches a YAML configuration file and reloads it when it
// changes. The parent directory is watched so that editors which replace the
// file by renaming are still seen.
type ConfigWatcher struct {
	path     string
	debounce time.Duration

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	done     chan struct{}
	onChange func(config.Configuration)
	onError  func(error)
}

// NewConfigWatcher creates a watcher for the configuration at path.
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	return &ConfigWatcher{
		path:     filepath.Clean(abs),
		debounce: DefaultDebounce,
	}, nil
}

// Path returns the watched file.
func (w *ConfigWatcher) Path() string {
	return w.path
}

// SetDebounce sets how long the watcher waits for events to settle.
func (w *ConfigWatcher) SetDebounce(d time.Duration) {
	w.debounce = max(d, 0)
}

// OnChange sets the callback for a successfully reloaded configuration.
// The callback is called from a background goroutine.
func (w *ConfigWatcher) OnChange(callback func(config.Configuration)) {
	w.mu.Lock()
	w.onChange = callback
	w.mu.Unlock()
}

// OnError sets the callback for reload and watch failures.
// The callback is called from a background goroutine.
func (w *ConfigWatcher) OnError(callback func(error)) {
	w.mu.Lock()
	w.onError = callback
	w.mu.Unlock()
}

// Start begins watching in a background goroutine.
func (w *ConfigWatcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		return errors.New("config watcher already started")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}

	w.watcher = fw
	w.stopCh = make(chan struct{})
	w.done = make(chan struct{})
	go w.watchLoop(fw, w.stopCh, w.done)
	log.Printf("Config: watching %s", w.path)
	return nil
}

// Stop stops the watcher goroutine and waits for it to exit. Stopping a
// watcher that is not running does nothing.
func (w *ConfigWatcher) Stop() error {
	w.mu.Lock()
	fw, stopCh, done := w.watcher, w.stopCh, w.done
	w.watcher = nil
	w.mu.Unlock()

	if fw == nil {
		return nil
	}
	close(stopCh)
	<-done
	return fw.Close()
}

// Reload loads the file now and dispatches the result to the callbacks.
func (w *ConfigWatcher) Reload() (config.Configuration, error) {
	cfg, err := config.Load(w.path)

	w.mu.Lock()
	onChange, onError := w.onChange, w.onError
	w.mu.Unlock()

	if err != nil {
		log.Printf("Config: reload of %s failed: %v", w.path, err)
		if onError != nil {
			onError(err)
		}
		return config.Configuration{}, err
	}
	log.Printf("Config: reloaded %s", w.path)
	if onChange != nil {
		onChange(cfg)
	}
	return cfg, nil
}

func (w *ConfigWatcher) watchLoop(fw *fsnotify.Watcher, stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-stopCh:
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			onError := w.onError
			w.mu.Unlock()
			if onError != nil {
				onError(fmt.Errorf("watching %s: %w", w.path, err))
			}
		case <-fire:
			fire = nil
			w.Reload()
		}
	}
}

func (w *ConfigWatcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
