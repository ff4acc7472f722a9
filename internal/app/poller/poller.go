package poller

import (
	"context"
	"sync"
	"time"
)

// Func is the periodic work; ctx is cancelled when the handle is stopped
type Func func(ctx context.Context)

// Handle controls a running periodic task
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start runs fn once right away and then on every interval until Stop or ctx is done
func Start(ctx context.Context, interval time.Duration, fn Func) *Handle {
	ctx, cancel := context.WithCancel(ctx)

	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go h.loop(ctx, interval, fn)

	return h
}

func (h *Handle) loop(ctx context.Context, interval time.Duration, fn Func) {
	defer close(h.done)

	fn(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}

			fn(ctx)
		}
	}
}

// Stop cancels the task and waits for an in-flight run to return. Safe to call repeatedly, not from fn
func (h *Handle) Stop() {
	if h == nil {
		return
	}

	h.once.Do(func() {
		h.cancel()
		<-h.done
	})
}

// Done is closed once the task has exited
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
