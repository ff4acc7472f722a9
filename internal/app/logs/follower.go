package logs

import (
	"context"
	"sync"

	"lookout/internal/app/bus"
	"lookout/internal/app/watcher"
	"lookout/internal/config/logger"
)

// Follower points the file watcher at whichever task the controller shows, so writes trigger an immediate poll
type Follower interface {
	Start(ctx context.Context)
}

type follower struct {
	ctrl    Controller
	watcher watcher.Watcher
	bus     bus.Bus
	log     logger.Logger
	mu      sync.Mutex
	current *int
}

// NewFollower creates a follower; with a no-op watcher it only tracks the task
func NewFollower(ctrl Controller, w watcher.Watcher, b bus.Bus, log logger.Logger) Follower {
	return &follower{
		ctrl:    ctrl,
		watcher: w,
		bus:     b,
		log:     log.WithComponent("FOLLOW"),
	}
}

// Start listens for task switches until ctx is done
func (f *follower) Start(ctx context.Context) {
	msgCh := f.bus.Subscribe(ctx)

	go func() {
		for msg := range msgCh {
			if msg.Type != bus.EventLogsReset {
				continue
			}

			if data, ok := msg.Data.(bus.LogsReset); ok {
				f.retarget(ctx, data.TaskID)
			}
		}

		f.watcher.Unwatch()
	}()
}

func (f *follower) retarget(ctx context.Context, id *int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if sameTask(f.current, id) {
		return
	}

	f.current = id

	if id == nil {
		f.watcher.Unwatch()
		return
	}

	taskID := *id

	err := f.watcher.Watch(taskID, func() {
		if ctx.Err() != nil {
			return
		}

		_ = f.ctrl.PollForward(ctx)
	})
	if err != nil {
		f.log.Warn().Err(err).Int("task", taskID).Msg("File watch unavailable, relying on polling")
	}
}
