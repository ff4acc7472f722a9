package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("Print logs without the TUI using ") + tipKey("lookout tail 3 -f"),
	tipDesc("List tasks with ") + tipKey("lookout tasks --match 'sony*'"),
	tipDesc("Read log files directly with ") + tipKey("--source file"),
	tipDesc("Press ") + tipKey("space") + tipDesc(" to pause auto-refresh"),
	tipDesc("Scroll to the top or press ") + tipKey("p") + tipDesc(" for older history"),
	tipDesc("Press ") + tipKey("g") + tipDesc(" to jump back to the latest lines"),
	tipDesc("Press ") + tipKey("t") + tipDesc(" to hide these tips"),
}

// Tip returns the tip shown at the given tick, rotating from offset
func Tip(offset, tick int) string {
	if len(Tips) == 0 {
		return ""
	}

	rotation := tick / TipRotationTicks

	return Tips[(offset+rotation)%len(Tips)]
}
