package viewer

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"lookout/internal/app/bus"
	"lookout/internal/app/logs"
	"lookout/internal/app/monitor"
	"lookout/internal/app/ui/components"
)

const tickCounterMaximum = 1000000

// msgMsg wraps a bus message for tea messaging
type msgMsg bus.Message

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// channelClosedMsg signals the bus subscription has closed
type channelClosedMsg struct{}

// statsMsg carries the viewer's own resource usage
type statsMsg struct {
	Stats monitor.Stats
	Err   error
}

// clearResultMsg reports the outcome of a confirmed clear
type clearResultMsg struct {
	Err error
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		atBottom := !m.ui.ready || m.ui.viewport.AtBottom()

		m.ui.viewport.Width = msg.Width
		m.ui.viewport.Height = max(msg.Height-components.PanelHeightPadding, components.MinPanelHeight)
		m.ui.ready = true

		m.renderLog()

		if atBottom {
			m.ui.viewport.GotoBottom()
		}

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tickMsg:
		m.ui.tickCounter++

		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		m.live.Update()

		return m, tickCmd()

	case statsMsg:
		if msg.Err == nil {
			m.state.rss = msg.Stats.RSS
			m.state.cpu = msg.Stats.CPU
		}

		return m, statsCmd(m.ctx, m.monitor)

	case clearResultMsg:
		if msg.Err != nil {
			m.dialog.Fire(Fail, msg.Err)
		} else {
			m.dialog.Fire(Succeed)
		}

		m.state.snapshot = m.ctrl.Snapshot()

		return m, nil

	case msgMsg:
		return m.handleMessage(bus.Message(msg))

	case channelClosedMsg:
		m.log.Debug().Msg("Bus channel closed, quitting")

		return m.quit()
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		return m.quit()
	}

	if m.dialog.Visible() {
		return m.handleDialogKey(msg)
	}

	switch {
	case key.Matches(msg, m.ui.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.ui.keys.Up):
		if m.ui.viewport.AtTop() && m.canLoadOlder() {
			return m, olderCmd(m.ctx, m.ctrl, m.pageSize)
		}

		return m.scroll(msg)

	case key.Matches(msg, m.ui.keys.Down, m.ui.keys.PageUp, m.ui.keys.PageDown):
		return m.scroll(msg)

	case key.Matches(msg, m.ui.keys.Older):
		if m.canLoadOlder() {
			return m, olderCmd(m.ctx, m.ctrl, m.pageSize)
		}

	case key.Matches(msg, m.ui.keys.Latest):
		return m, latestCmd(m.ctx, m.ctrl, m.pageSize)

	case key.Matches(msg, m.ui.keys.ToggleRefresh):
		return m, toggleCmd(m.ctx, m.ctrl)

	case key.Matches(msg, m.ui.keys.Clear):
		if m.isActive(m.state.snapshot.TaskID) {
			m.dialog.Fire(Open)
		}

	case key.Matches(msg, m.ui.keys.DismissError):
		m.ctrl.DismissError()
		m.state.snapshot = m.ctrl.Snapshot()

	case key.Matches(msg, m.ui.keys.ToggleTips):
		m.ui.showTips = !m.ui.showTips
	}

	return m, nil
}

// handleDialogKey routes keys while the clear confirmation is open
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.Confirm):
		if m.dialog.Fire(Submit) {
			return m, clearCmd(m.ctx, m.ctrl)
		}

	case key.Matches(msg, m.ui.keys.Cancel):
		m.dialog.Fire(Cancel)
	}

	return m, nil
}

// handleMessage applies a bus message and keeps the scroll position sensible
func (m Model) handleMessage(msg bus.Message) (tea.Model, tea.Cmd) {
	next := waitForMsgCmd(m.msgChan)

	switch msg.Type {
	case bus.EventLogsAppended:
		data, ok := msg.Data.(bus.LogsAppended)
		if !ok || data.TaskID != m.taskID {
			return m, next
		}

		atBottom := m.ui.viewport.AtBottom()

		m.state.snapshot = m.ctrl.Snapshot()
		m.renderLog()

		if atBottom || data.Rotated {
			m.ui.viewport.GotoBottom()
		}

		m.live.Flash(components.LiveFlashTicks)

	case bus.EventLogsPrepended:
		data, ok := msg.Data.(bus.LogsPrepended)
		if !ok || data.TaskID != m.taskID {
			return m, next
		}

		before := m.ui.viewport.TotalLineCount()

		m.state.snapshot = m.ctrl.Snapshot()
		m.renderLog()

		m.ui.viewport.SetYOffset(m.ui.viewport.YOffset + m.ui.viewport.TotalLineCount() - before)

	case bus.EventLogsReset, bus.EventLogsCleared:
		m.state.snapshot = m.ctrl.Snapshot()
		m.renderLog()
		m.ui.viewport.GotoBottom()

	case bus.EventLogsFailed, bus.EventAutoRefreshChanged:
		m.state.snapshot = m.ctrl.Snapshot()

	case bus.EventTaskStatusChanged:
		data, ok := msg.Data.(bus.TaskStatusChanged)
		if !ok || data.ID != m.taskID {
			return m, next
		}

		running := data.Running
		m.state.taskRunning = &running

		return m, tea.Batch(next, pollCmd(m.ctx, m.ctrl))

	case bus.EventStreamConnected:
		m.state.streamConnected = true

	case bus.EventStreamDisconnected:
		m.state.streamConnected = false
	}

	return m, next
}

// scroll hands navigation keys to the viewport
func (m Model) scroll(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	m.ui.viewport, cmd = m.ui.viewport.Update(msg)

	return m, cmd
}

// quit releases subscriptions and stops polling before exiting
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.release()
	m.ctrl.StopAutoRefresh()

	return m, tea.Quit
}

func (m Model) canLoadOlder() bool {
	s := m.state.snapshot

	return m.isActive(s.TaskID) && s.HasMoreHistory && !s.FetchingHistory
}

// waitForMsgCmd waits for the next bus message
func waitForMsgCmd(msgChan <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-msgChan
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(components.UITickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// statsCmd samples the viewer's own footprint once per interval
func statsCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	return tea.Tick(components.StatsPollingInterval, func(time.Time) tea.Msg {
		statsCtx, cancel := context.WithTimeout(ctx, components.StatsTimeout)
		defer cancel()

		stats, err := mon.Self(statsCtx)

		return statsMsg{Stats: stats, Err: err}
	})
}

// openCmd activates the task, seeds it with the latest page and arms polling
func openCmd(ctx context.Context, ctrl logs.Controller, taskID, pageSize int) tea.Cmd {
	return func() tea.Msg {
		ctrl.SetActiveTask(&taskID)
		_ = ctrl.LoadLatestHistory(ctx, pageSize)
		ctrl.StartAutoRefresh(ctx)

		return nil
	}
}

func olderCmd(ctx context.Context, ctrl logs.Controller, pageSize int) tea.Cmd {
	return func() tea.Msg {
		_ = ctrl.LoadOlderHistory(ctx, pageSize)
		return nil
	}
}

func latestCmd(ctx context.Context, ctrl logs.Controller, pageSize int) tea.Cmd {
	return func() tea.Msg {
		_ = ctrl.LoadLatestHistory(ctx, pageSize)
		return nil
	}
}

func pollCmd(ctx context.Context, ctrl logs.Controller) tea.Cmd {
	return func() tea.Msg {
		_ = ctrl.PollForward(ctx)
		return nil
	}
}

func toggleCmd(ctx context.Context, ctrl logs.Controller) tea.Cmd {
	return func() tea.Msg {
		ctrl.ToggleAutoRefresh(ctx)
		return nil
	}
}

func clearCmd(ctx context.Context, ctrl logs.Controller) tea.Cmd {
	return func() tea.Msg {
		return clearResultMsg{Err: ctrl.Clear(ctx)}
	}
}
