package viewer

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"lookout/internal/app/bus"
	"lookout/internal/app/events"
	"lookout/internal/app/logs"
	"lookout/internal/app/monitor"
	"lookout/internal/app/ui/components"
	"lookout/internal/config/logger"
)

// Deps groups what the viewer needs from the rest of the app
type Deps struct {
	Controller logs.Controller
	Follower   logs.Follower
	Stream     events.Stream
	Bus        bus.Bus
	Monitor    monitor.Monitor
	Logger     logger.Logger
}

// Model is the Bubble Tea model for a single task's log
type Model struct {
	ctx      context.Context
	taskID   int
	pageSize int
	ctrl     logs.Controller
	monitor  monitor.Monitor
	msgChan  <-chan bus.Message
	release  func()
	dialog   *Dialog
	live     *components.Blink
	spinner  spinner.Model

	state struct {
		snapshot        logs.Snapshot
		taskRunning     *bool
		streamConnected bool
		rss             uint64
		cpu             float64
		started         time.Time
	}

	ui struct {
		width       int
		height      int
		ready       bool
		keys        KeyMap
		help        help.Model
		viewport    viewport.Model
		showTips    bool
		tipOffset   int
		tickCounter int
	}

	log logger.Logger
}

// NewModel creates the viewer for taskID, subscribing to the bus and the event stream until the view exits
func NewModel(ctx context.Context, taskID, pageSize int, deps Deps) Model {
	log := deps.Logger.WithComponent("UI")

	subCtx, cancel := context.WithCancel(ctx)
	msgChan := deps.Bus.Subscribe(subCtx)
	unbridge := bridgeStream(deps.Stream, deps.Bus, log)

	deps.Follower.Start(subCtx)

	log.Debug().Int("task", taskID).Msg("Created model and subscribed to events")

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = components.SpinnerStyle

	m := Model{
		ctx:      ctx,
		taskID:   taskID,
		pageSize: pageSize,
		ctrl:     deps.Controller,
		monitor:  deps.Monitor,
		msgChan:  msgChan,
		release: func() {
			unbridge()
			cancel()
		},
		dialog:  NewDialog(log),
		live:    components.NewBlink(),
		spinner: s,
		log:     log,
	}

	m.state.started = time.Now()
	m.state.streamConnected = deps.Stream.Connected()

	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.viewport = viewport.New(0, 0)
	m.ui.showTips = true
	m.ui.tipOffset = rand.Intn(len(components.Tips)) //nolint:gosec // not security-critical

	return m
}

// Init opens the task and starts the tickers
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		openCmd(m.ctx, m.ctrl, m.taskID, m.pageSize),
		waitForMsgCmd(m.msgChan),
		tickCmd(),
		statsCmd(m.ctx, m.monitor),
		m.spinner.Tick,
	)
}

// renderLog rebuilds the viewport content from the current snapshot
func (m *Model) renderLog() {
	width := m.ui.viewport.Width
	if width <= 0 {
		width = components.DefaultViewportWidth
	}

	content := m.state.snapshot.Content
	if n := len(content); n > 0 && content[n-1] == '\n' {
		content = content[:n-1]
	}

	m.ui.viewport.SetContent(wrapContent(content, width, highlightLine))
}

// isActive reports whether a snapshot belongs to the task this view shows
func (m Model) isActive(id *int) bool {
	return id != nil && *id == m.taskID
}
