package cli

import (
	"github.com/charmbracelet/lipgloss"

	"lookout/internal/config"
)

var (
	sectionHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
	commandName   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	exampleCode   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	bodyMedium    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	mutedText     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
	errorLabel    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	successText   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyMedium.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}

// RenderUsage renders the command overview shown by help
func RenderUsage() string {
	row := func(cmd, desc string) string {
		return bodyMedium.Render("  " + commandName.Render(padRight(cmd, 34)) + desc)
	}

	example := func(cmd, desc string) string {
		return bodyMedium.Render("  " + exampleCode.Render(padRight(cmd, 34)) + desc)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		row("lookout <task-id>", "Open the log viewer"),
		row("lookout tail <task-id> [-f] [-n N]", "Print the log, optionally following it"),
		row("lookout clear <task-id> [--yes]", "Delete the task log"),
		row("lookout tasks [--match GLOB]", "List monitor tasks"),
		row("lookout init [--force] [--dry-run]", "Generate "+config.ConfigFile),
		row("lookout version", "Show version"),
		sectionHeader.Render("Examples:"),
		example("lookout 3", "Watch task 3"),
		example("lookout tail 3 -f --source file", "Follow task 3 from the log directory"),
		example("lookout tasks -m 'sony*'", "Tasks whose name starts with sony"),
		"",
		mutedText.Render("Global flag --source http|file overrides logs.source"),
	) + "\n"
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}

	return s
}
