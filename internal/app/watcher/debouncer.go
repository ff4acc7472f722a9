package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of writes into one callback. A steady stream still fires every maxWait
type Debouncer interface {
	Trigger(file string)
	Stop()
}

type debouncer struct {
	duration time.Duration
	maxWait  time.Duration
	callback func(files []string)
	timer    *time.Timer
	first    time.Time
	files    map[string]struct{}
	mu       sync.Mutex
	stopped  bool
}

// NewDebouncer creates a Debouncer that waits duration after the last write, but never longer than maxWait after the first
func NewDebouncer(duration, maxWait time.Duration, callback func(files []string)) Debouncer {
	if maxWait < duration {
		maxWait = duration
	}

	return &debouncer{
		duration: duration,
		maxWait:  maxWait,
		callback: callback,
		files:    make(map[string]struct{}),
	}
}

// Trigger records a change and pushes the deadline back, bounded by maxWait
func (d *debouncer) Trigger(file string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.files[file] = struct{}{}

	if d.timer == nil {
		d.first = time.Now()
		d.timer = time.AfterFunc(d.duration, d.fire)

		return
	}

	remaining := d.maxWait - time.Since(d.first)
	if remaining <= 0 {
		return
	}

	d.timer.Stop()
	d.timer = time.AfterFunc(min(d.duration, remaining), d.fire)
}

// Stop cancels any pending callback; later triggers are ignored
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.files = make(map[string]struct{})
}

func (d *debouncer) fire() {
	d.mu.Lock()

	d.timer = nil

	if d.stopped || len(d.files) == 0 {
		d.mu.Unlock()
		return
	}

	files := make([]string, 0, len(d.files))
	for f := range d.files {
		files = append(files, f)
	}

	d.files = make(map[string]struct{})

	d.mu.Unlock()

	d.callback(files)
}
