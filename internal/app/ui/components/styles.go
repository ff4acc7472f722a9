package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(FgPrimary).Bold(true)

	SeparatorStyle = lipgloss.NewStyle().Foreground(FgBorder)

	ContentStyle = lipgloss.NewStyle().Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().Foreground(FgBorder)

	FooterHelpStyle = lipgloss.NewStyle().PaddingTop(0)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().Foreground(FgBorder)

	// StatusBarStyle for the line below the log
	StatusBarStyle = lipgloss.NewStyle().Foreground(FgMuted).Padding(0, 1)

	LiveStyle    = lipgloss.NewStyle().Foreground(FgStatusLive)
	PausedStyle  = lipgloss.NewStyle().Foreground(FgStatusPaused)
	WarningStyle = lipgloss.NewStyle().Foreground(FgStatusWarning)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().Foreground(FgStatusError)

	NoticeStyle = lipgloss.NewStyle().Foreground(NoticeColor).Italic(true)

	// EmptyStateStyle for empty state messages
	EmptyStateStyle = lipgloss.NewStyle().Foreground(FgMuted).Padding(1, 2)

	// SpinnerStyle for loading spinners
	SpinnerStyle = lipgloss.NewStyle().Foreground(FgPrimary)

	// DialogStyle frames the clear confirmation
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgStatusError).
			Padding(1, 2).
			Width(DialogWidth)

	DialogTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(FgStatusError)
)

// Log line highlighting
var (
	LogLevelErrorStyle = lipgloss.NewStyle().Foreground(FgStatusError).Bold(true)
	LogLevelWarnStyle  = lipgloss.NewStyle().Foreground(FgStatusWarning)
	LogLevelInfoStyle  = lipgloss.NewStyle().Foreground(FgStatusLive)
	LogLevelDebugStyle = lipgloss.NewStyle().Foreground(FgBorder)

	TimestampStyle = lipgloss.NewStyle().Foreground(FgMuted)
	UUIDStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"})
)
