package source

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"pickbox/internal/eventbus"
)

// DefaultDebounce collapses the burst of events editors produce on save
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads an options file when it changes and publishes the result
type Watcher struct {
	path     string
	bus      eventbus.EventBus
	debounce time.Duration

	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for path
func NewWatcher(path string, bus eventbus.EventBus) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		bus:      bus,
		debounce: DefaultDebounce,
	}
}

// SetDebounce changes the quiet period before a reload
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Reload reads the file once and publishes OptionsLoaded, or Error on failure
func (w *Watcher) Reload() error {
	options, err := LoadFile(w.path)
	if err != nil {
		log.Printf("Failed to reload options from %s: %v", w.path, err)
		w.bus.Publish(eventbus.ErrorEvent{Message: "reload options", Err: err})
		return err
	}
	log.Printf("Loaded %d options from %s", len(options), w.path)
	w.bus.Publish(eventbus.OptionsLoadedEvent{Source: w.path, Options: options})
	return nil
}

// Start watches until ctx is cancelled. The parent directory is watched so
// that editors replacing the file (rename + create) keep being picked up.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			_ = w.Reload()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error for %s: %v", w.path, err)
			w.bus.Publish(eventbus.ErrorEvent{Message: "watch options", Err: err})
		}
	}
}
