package logs

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

var (
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}).Italic(true)
)

// Formatter renders headless output, styled only when writing to a terminal
type Formatter struct {
	styled bool
}

// NewFormatter inspects out to decide whether ANSI styling is safe
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{styled: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(f.Fd())
}

// Rotation is printed when the log was truncated or rotated under us
func (f *Formatter) Rotation(taskID int) string {
	line := fmt.Sprintf("--- log for task %d was rotated or cleared ---", taskID)
	if f.styled {
		line = markerStyle.Render(line)
	}

	return line + "\n"
}

// Content highlights the truncation notice line, everything else passes through untouched
func (f *Formatter) Content(content string) string {
	if !f.styled || !strings.Contains(content, TruncationNotice) {
		return content
	}

	return strings.Replace(content, TruncationNotice, noticeStyle.Render(TruncationNotice), 1)
}

// Snapshot renders a history page so the next appended increment starts on its own line
func (f *Formatter) Snapshot(content string) string {
	if content == "" {
		return ""
	}

	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	return f.Content(content)
}
