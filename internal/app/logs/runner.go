//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=logs
package logs

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"lookout/internal/app/bus"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// RunOptions controls the headless tail
type RunOptions struct {
	Lines  int
	Follow bool
}

// Runner prints a task log to stdout without the TUI
type Runner interface {
	Run(ctx context.Context, taskID int, opts RunOptions) error
}

type runner struct {
	cfg      *config.Config
	ctrl     Controller
	follower Follower
	bus      bus.Bus
	log      logger.Logger
	out      io.Writer
	format   *Formatter
}

// NewRunner creates a headless runner writing to stdout
func NewRunner(cfg *config.Config, ctrl Controller, follower Follower, b bus.Bus, log logger.Logger) Runner {
	return &runner{
		cfg:      cfg,
		ctrl:     ctrl,
		follower: follower,
		bus:      b,
		log:      log.WithComponent("TAIL"),
		out:      os.Stdout,
		format:   NewFormatter(os.Stdout),
	}
}

// Run prints the latest page and, when following, every appended increment until interrupted
func (r *runner) Run(ctx context.Context, taskID int, opts RunOptions) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	lines := opts.Lines
	if lines <= 0 {
		lines = r.cfg.Logs.PageSize
	}

	var msgCh <-chan bus.Message
	if opts.Follow {
		msgCh = r.bus.Subscribe(ctx)
		r.follower.Start(ctx)
	}

	r.ctrl.SetActiveTask(&taskID)

	if err := r.ctrl.LoadLatestHistory(ctx, lines); err != nil {
		return err
	}

	fmt.Fprint(r.out, r.format.Snapshot(r.ctrl.Snapshot().Content))

	if !opts.Follow {
		return nil
	}

	r.ctrl.StartAutoRefresh(ctx)
	defer r.ctrl.StopAutoRefresh()

	r.stream(ctx, taskID, msgCh)

	return nil
}

// stream prints bus updates for taskID until ctx is done or the bus closes
func (r *runner) stream(ctx context.Context, taskID int, msgCh <-chan bus.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgCh:
			if !ok {
				return
			}

			r.handle(taskID, msg)
		}
	}
}

func (r *runner) handle(taskID int, msg bus.Message) {
	switch data := msg.Data.(type) {
	case bus.LogsAppended:
		if data.TaskID != taskID {
			return
		}

		if data.Rotated {
			fmt.Fprint(r.out, r.format.Rotation(taskID))
		}

		fmt.Fprint(r.out, r.format.Content(data.Content))
	case bus.LogsCleared:
		if data.TaskID == taskID {
			fmt.Fprint(r.out, r.format.Rotation(taskID))
		}
	case bus.LogsFailed:
		r.log.Warn().Err(data.Error).Int("task", taskID).Msg("Poll failed, retrying on next tick")
	}
}
