// Package app provides the demo application's state, events and config reloading.
package app

import (
	"fmt"
	"sync"

	"arc-slider/internal/arc"
	"arc-slider/internal/config"
)

// State holds the demo application state: the active configuration, where it
// came from, and the last progress reported by the slider.
type State struct {
	mu sync.RWMutex

	ConfigPath string

	config   config.Configuration
	progress arc.ProgressState

	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventProgressChanged EventType = iota
	EventConfigChanged
	EventConfigError
	EventConfigSaved
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a state holding the default configuration.
func NewState() *State {
	cfg := config.Default()
	return &State{
		config:    cfg,
		progress:  cfg.ProgressState(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Config returns the active configuration.
func (s *State) Config() config.Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Progress returns the last known progress.
func (s *State) Progress() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress.Progress
}

// SetProgress records a progress value, clamped to the configured range.
// EventProgressChanged is emitted only when the stored value changes, so a
// slider and the state can feed each other without looping.
func (s *State) SetProgress(progress int) {
	s.mu.Lock()
	prev := s.progress.Progress
	s.progress, _ = arc.UpdateProgress(s.progress, progress)
	current := s.progress.Progress
	s.mu.Unlock()

	if current != prev {
		s.Emit(EventProgressChanged, current)
	}
}

// ApplyConfig makes cfg the active configuration. Progress is re-clamped to
// the new bound and EventConfigChanged carries cfg to listeners.
func (s *State) ApplyConfig(cfg config.Configuration) {
	s.mu.Lock()
	s.config = cfg
	prev := s.progress.Progress
	s.progress, _ = arc.UpdateMaxProgress(s.progress, cfg.MaxProgress)
	current := s.progress.Progress
	s.mu.Unlock()

	s.Emit(EventConfigChanged, cfg)
	if current != prev {
		s.Emit(EventProgressChanged, current)
	}
}

// LoadConfig reads the configuration at path and makes it active, taking its
// progress as the current value. On failure the active configuration is kept
// and EventConfigError is emitted.
func (s *State) LoadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		err = fmt.Errorf("loading %s: %w", path, err)
		s.Emit(EventConfigError, err)
		return err
	}

	s.mu.Lock()
	s.ConfigPath = path
	s.config = cfg
	prev := s.progress.Progress
	s.progress = cfg.ProgressState()
	current := s.progress.Progress
	s.mu.Unlock()

	s.Emit(EventConfigChanged, cfg)
	if current != prev {
		s.Emit(EventProgressChanged, current)
	}
	return nil
}

// SaveConfig writes the active configuration, with the current progress as
// its initial value, to path.
func (s *State) SaveConfig(path string) error {
	s.mu.RLock()
	cfg := s.config
	cfg.Progress = s.progress.Progress
	s.mu.RUnlock()

	if err := cfg.Save(path); err != nil {
		return err
	}

	s.mu.Lock()
	s.ConfigPath = path
	s.mu.Unlock()

	s.Emit(EventConfigSaved, path)
	return nil
}
