package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lookout/internal/app/monitor"
	"lookout/internal/app/ui/components"
)

// View renders the UI
func (m Model) View() string {
	if !m.ui.ready {
		return "Initializing…"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.RenderHeader(m.ui.width, m.renderTitle(), m.renderIndicator()),
		m.renderBody(),
		m.renderStatus(),
		components.RenderFooter(m.ui.width, m.ui.help.View(m.ui.keys)),
		m.renderTip(),
	)
}

// renderTitle renders the task title with a spinner while a request is in flight
func (m Model) renderTitle() string {
	title := fmt.Sprintf("task %d", m.taskID)

	switch {
	case m.state.snapshot.FetchingHistory:
		return m.spinner.View() + " " + title + " loading history…"
	case m.state.snapshot.Loading:
		return m.spinner.View() + " " + title
	}

	return title
}

// renderIndicator renders the live/paused marker and the event stream state
func (m Model) renderIndicator() string {
	var b strings.Builder

	if m.state.snapshot.AutoRefresh {
		b.WriteString(m.live.Render(components.LiveStyle))
		b.WriteString(" ")
		b.WriteString(components.LiveStyle.Render("live"))
	} else {
		b.WriteString(components.PausedStyle.Render("paused"))
	}

	if !m.state.streamConnected {
		b.WriteString(" ")
		b.WriteString(components.WarningStyle.Render("offline"))
	}

	return b.String()
}

// renderBody renders the log viewport, the empty state, or the clear dialog in its place
func (m Model) renderBody() string {
	height := m.ui.viewport.Height

	if m.dialog.Visible() {
		return lipgloss.Place(m.ui.width, height, lipgloss.Center, lipgloss.Center, m.renderDialog())
	}

	if m.state.snapshot.Content == "" {
		return lipgloss.Place(m.ui.width, height, lipgloss.Left, lipgloss.Top, components.EmptyStateStyle.Render("No output yet"))
	}

	return m.ui.viewport.View()
}

// renderDialog renders the clear confirmation
func (m Model) renderDialog() string {
	lines := []string{
		components.DialogTitleStyle.Render("Clear logs"),
		"",
		fmt.Sprintf("Delete the log of task %d on the server?", m.taskID),
		"",
	}

	switch {
	case m.dialog.Busy():
		lines = append(lines, m.spinner.View()+" clearing…")
	case m.dialog.Err != nil:
		lines = append(lines, components.ErrorStyle.Render(m.dialog.Err.Error()), "", components.HelpStyle.Render("y retry • n cancel"))
	default:
		lines = append(lines, components.HelpStyle.Render("y confirm • n cancel"))
	}

	return components.DialogStyle.Render(strings.Join(lines, "\n"))
}

// renderStatus renders the cursor, history, task and resource line below the log
func (m Model) renderStatus() string {
	s := m.state.snapshot

	parts := []string{fmt.Sprintf("pos %d", s.Cursor)}

	if s.HasMoreHistory {
		parts = append(parts, fmt.Sprintf("%d lines, more above", s.HistoryOffset))
	} else {
		parts = append(parts, fmt.Sprintf("%d lines, start of log", s.HistoryOffset))
	}

	if m.state.taskRunning != nil {
		if *m.state.taskRunning {
			parts = append(parts, components.LiveStyle.Render("running"))
		} else {
			parts = append(parts, "stopped")
		}
	}

	if m.state.rss > 0 {
		parts = append(parts, "mem "+strings.TrimSpace(monitor.FormatMemory(m.state.rss)))
	}

	if s.Err != nil {
		parts = append(parts, components.ErrorStyle.Render("error: "+s.Err.Error()+" (x to dismiss)"))
	}

	return components.StatusBarStyle.MaxWidth(max(m.ui.width, 1)).Render(strings.Join(parts, " • "))
}

// renderTip returns the current rotating tip or an empty line when tips are hidden
func (m Model) renderTip() string {
	if !m.ui.showTips {
		return ""
	}

	return components.Tip(m.ui.tipOffset, m.ui.tickCounter)
}
