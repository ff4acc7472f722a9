package viewer

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"lookout/internal/app/bus"
)

func Test_Model_View(t *testing.T) {
	t.Run("Log content", func(t *testing.T) {
		f := newModelFixture(t)
		f.resize(t)

		f.ctrl.EXPECT().Snapshot().Return(activeSnapshot("hello\nworld\n"))
		f.update(t, msgMsg{Type: bus.EventLogsReset})

		view := ansi.Strip(f.model.View())

		assert.Contains(t, view, "task 7")
		assert.Contains(t, view, "live")
		assert.Contains(t, view, "hello")
		assert.Contains(t, view, "world")
		assert.Contains(t, view, "start of log")
	})

	t.Run("Empty state", func(t *testing.T) {
		f := newModelFixture(t)
		f.resize(t)
		f.model.state.snapshot = activeSnapshot("")
		f.model.state.snapshot.AutoRefresh = false

		view := ansi.Strip(f.model.View())

		assert.Contains(t, view, "No output yet")
		assert.Contains(t, view, "paused")
	})

	t.Run("Error and stream state", func(t *testing.T) {
		f := newModelFixture(t)
		f.update(t, tea.WindowSizeMsg{Width: 120, Height: 12})
		f.model.state.streamConnected = false
		f.model.state.snapshot = activeSnapshot("a\n")
		f.model.state.snapshot.Err = errors.New("HTTP error! status: 500")

		view := ansi.Strip(f.model.View())

		assert.Contains(t, view, "offline")
		assert.Contains(t, view, "error: HTTP error! status: 500")
	})

	t.Run("Clear dialog", func(t *testing.T) {
		f := newModelFixture(t)
		f.resize(t)
		f.model.state.snapshot = activeSnapshot("a\n")
		f.model.dialog.Fire(Open)

		view := ansi.Strip(f.model.View())

		assert.Contains(t, view, "Clear logs")
		assert.Contains(t, view, "y confirm")
	})

	t.Run("Tips hidden", func(t *testing.T) {
		f := newModelFixture(t)
		f.resize(t)
		f.model.ui.showTips = false

		assert.Empty(t, f.model.renderTip())
	})
}
