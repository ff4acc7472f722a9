package viewer

import (
	"context"

	"github.com/looplab/fsm"

	"lookout/internal/config/logger"
)

// Dialog states
const (
	Idle       = "idle"
	Confirming = "confirming"
	Clearing   = "clearing"
)

// Dialog events
const (
	Open    = "open"
	Cancel  = "cancel"
	Submit  = "submit"
	Succeed = "succeed"
	Fail    = "fail"
)

// Dialog is the clear-logs confirmation; a failed clear returns to confirming with the error shown
type Dialog struct {
	fsm *fsm.FSM
	Err error
}

// NewDialog creates a closed dialog
func NewDialog(log logger.Logger) *Dialog {
	d := &Dialog{}

	d.fsm = fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Open, Src: []string{Idle}, Dst: Confirming},
			{Name: Cancel, Src: []string{Confirming}, Dst: Idle},
			{Name: Submit, Src: []string{Confirming}, Dst: Clearing},
			{Name: Succeed, Src: []string{Clearing}, Dst: Idle},
			{Name: Fail, Src: []string{Clearing}, Dst: Confirming},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("DIALOG: %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
			"enter_" + Idle: func(ctx context.Context, e *fsm.Event) {
				d.Err = nil
			},
			"before_" + Submit: func(ctx context.Context, e *fsm.Event) {
				d.Err = nil
			},
			"after_" + Fail: func(ctx context.Context, e *fsm.Event) {
				if len(e.Args) > 0 {
					if err, ok := e.Args[0].(error); ok {
						d.Err = err
					}
				}
			},
		},
	)

	return d
}

// Fire triggers an event, reporting whether the transition was allowed
func (d *Dialog) Fire(event string, args ...interface{}) bool {
	return d.fsm.Event(context.Background(), event, args...) == nil
}

// State returns the current dialog state
func (d *Dialog) State() string {
	return d.fsm.Current()
}

// Visible reports whether the dialog covers the log
func (d *Dialog) Visible() bool {
	return d.fsm.Current() != Idle
}

// Busy reports whether a clear request is in flight
func (d *Dialog) Busy() bool {
	return d.fsm.Current() == Clearing
}
