package viewer

import (
	"github.com/charmbracelet/bubbles/key"

	"lookout/internal/app/ui/components"
)

// KeyMap defines the key bindings for the log viewer
type KeyMap struct {
	components.KeyMap
	ToggleRefresh key.Binding
	Older         key.Binding
	Latest        key.Binding
	Clear         key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
	DismissError  key.Binding
	ToggleTips    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	base.Up.SetHelp("↑/k", "scroll up")
	base.Down.SetHelp("↓/j", "scroll down")

	return KeyMap{
		KeyMap: base,
		ToggleRefresh: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		Older: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "older"),
		),
		Latest: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "latest"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel"),
		),
		DismissError: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss error"),
		),
		ToggleTips: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tips"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleRefresh, k.Older, k.Latest, k.Clear, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.ToggleRefresh, k.Older, k.Latest, k.Clear},
		{k.DismissError, k.ToggleTips, k.Quit, k.ForceQuit},
	}
}
