package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	// Status colors
	FgStatusLive    = lipgloss.Color("10") // Green - auto-refresh on, task running
	FgStatusWarning = lipgloss.Color("11") // Yellow - loading, rotation marker
	FgStatusError   = lipgloss.Color("9")  // Red - error slot, destructive actions
	FgStatusPaused  = lipgloss.Color("8")  // Gray - auto-refresh off, task idle
)

// NoticeColor is the adaptive color for the truncation notice and separators
var NoticeColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}
