//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=watcher
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"lookout/internal/app/errors"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// Watcher reports writes to the log file of one task at a time
type Watcher interface {
	Watch(taskID int, onChange func()) error
	Unwatch()
	Close()
}

// target is the task currently being watched
type target struct {
	taskID    int
	matcher   Matcher
	debouncer Debouncer
}

type manager struct {
	cfg       *config.Config
	dir       string
	fsWatcher *fsnotify.Watcher
	target    *target
	log       logger.Logger
	mu        sync.RWMutex
	added     bool
	closed    bool
}

// NewWatcher creates a Watcher over the logs directory; outside file mode it returns a no-op
func NewWatcher(cfg *config.Config, log logger.Logger) (Watcher, error) {
	if cfg.Logs.Source != config.SourceFile {
		return NoOp(), nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(cfg.Logs.Dir)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	m := &manager{
		cfg:       cfg,
		dir:       dir,
		fsWatcher: fsw,
		log:       log.WithComponent("WATCHER"),
	}

	go m.processEvents()

	return m, nil
}

// Watch replaces the current target; onChange runs after writes settle
func (m *manager) Watch(taskID int, onChange func()) error {
	matcher, err := NewTaskMatcher(m.cfg.Logs.Pattern, taskID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	if !m.added {
		if err := m.fsWatcher.Add(m.dir); err != nil {
			return fmt.Errorf("%w: %s: %w", errors.ErrFailedToOpenLog, m.dir, err)
		}

		m.added = true
	}

	m.stopTargetLocked()

	m.target = &target{
		taskID:  taskID,
		matcher: matcher,
		debouncer: NewDebouncer(m.cfg.Logs.Debounce, m.cfg.Logs.Refresh, func([]string) {
			onChange()
		}),
	}

	m.log.Info().Msgf("Watching %s for task %d", filepath.Join(m.dir, fmt.Sprint(matcher)), taskID)

	return nil
}

// Unwatch drops the current target
func (m *manager) Unwatch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopTargetLocked()
}

// Close stops the watcher and releases resources
func (m *manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.closed = true
	m.stopTargetLocked()
	m.fsWatcher.Close()
}

func (m *manager) stopTargetLocked() {
	if m.target == nil {
		return
	}

	m.target.debouncer.Stop()
	m.target = nil
}

func (m *manager) processEvents() {
	for {
		select {
		case event, ok := <-m.fsWatcher.Events:
			if !ok {
				return
			}

			m.handleEvent(event)
		case err, ok := <-m.fsWatcher.Errors:
			if !ok {
				return
			}

			m.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (m *manager) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.target == nil {
		return
	}

	if m.target.matcher.Match(event.Name) {
		m.target.debouncer.Trigger(filepath.Base(event.Name))
	}
}

// isRelevantEvent returns true for events that can move a log cursor, including truncation and rotation
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}

// NoOp returns a watcher that never reports changes
func NoOp() Watcher {
	return noOpWatcher{}
}

type noOpWatcher struct{}

func (noOpWatcher) Watch(int, func()) error { return nil }
func (noOpWatcher) Unwatch()                {}
func (noOpWatcher) Close()                  {}
