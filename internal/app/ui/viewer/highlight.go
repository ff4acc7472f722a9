package viewer

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lookout/internal/app/logs"
	"lookout/internal/app/ui/components"
)

type highlightPattern struct {
	pattern *regexp.Regexp
	style   lipgloss.Style
}

// Highlighter colors log levels, timestamps and ids in monitor output
type Highlighter struct {
	patterns []highlightPattern
}

func newHighlighter() Highlighter {
	return Highlighter{
		patterns: []highlightPattern{
			{pattern: regexp.MustCompile(`^\[?\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}(?:[.,]\d+)?\]?`), style: components.TimestampStyle},
			{pattern: regexp.MustCompile(`\b(?:ERROR|CRITICAL|FATAL)\b|❌`), style: components.LogLevelErrorStyle},
			{pattern: regexp.MustCompile(`\b(?:WARNING|WARN)\b|⚠️?`), style: components.LogLevelWarnStyle},
			{pattern: regexp.MustCompile(`\bINFO\b|✅`), style: components.LogLevelInfoStyle},
			{pattern: regexp.MustCompile(`\bDEBUG\b`), style: components.LogLevelDebugStyle},
			{pattern: regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`), style: components.UUIDStyle},
		},
	}
}

var defaultHighlighter = newHighlighter()

func (h Highlighter) highlight(line string) string {
	if line == logs.TruncationNotice {
		return components.NoticeStyle.Render(line)
	}

	if strings.TrimSpace(line) == "" {
		return line
	}

	for _, p := range h.patterns {
		line = p.pattern.ReplaceAllStringFunc(line, func(match string) string {
			return p.style.Render(match)
		})
	}

	return line
}

// highlightLine applies the default highlighter to a single log line
func highlightLine(line string) string {
	return defaultHighlighter.highlight(line)
}
