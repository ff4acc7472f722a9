package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"lookout/internal/app/bus"
	"lookout/internal/app/events"
	"lookout/internal/app/logs"
	"lookout/internal/app/monitor"
	"lookout/internal/app/ui/viewer"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// UI creates a Bubble Tea program showing one task's log
type UI func(ctx context.Context, taskID int) (*tea.Program, error)

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config     *config.Config
	Bus        bus.Bus
	Controller logs.Controller
	Follower   logs.Follower
	Stream     events.Stream
	Monitor    monitor.Monitor
	Logger     logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, taskID int) (*tea.Program, error) {
		model := viewer.NewModel(ctx, taskID, params.Config.Logs.PageSize, viewer.Deps{
			Controller: params.Controller,
			Follower:   params.Follower,
			Stream:     params.Stream,
			Bus:        params.Bus,
			Monitor:    params.Monitor,
			Logger:     params.Logger,
		})

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Int("task", taskID).Msg("TUI: Program created via factory")

		return p, nil
	}
}
