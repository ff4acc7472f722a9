package cli

import (
	"fmt"
	"strconv"

	"github.com/gobwas/glob"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"lookout/internal/app/api"
	"lookout/internal/app/errors"
)

// filterTasks keeps tasks whose name matches pattern; an empty pattern keeps everything
func filterTasks(tasks []api.Task, pattern string) ([]api.Task, error) {
	if pattern == "" {
		return tasks, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", errors.ErrInvalidGlobPattern, pattern, err)
	}

	filtered := make([]api.Task, 0, len(tasks))
	for _, task := range tasks {
		if g.Match(task.Name) {
			filtered = append(filtered, task)
		}
	}

	return filtered, nil
}

// renderTasks renders the task list as a rounded table
func renderTasks(tasks []api.Task) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Name", "Keyword", "Schedule", "Enabled", "State"})

	for _, task := range tasks {
		schedule := "manual"
		if task.Cron != nil && *task.Cron != "" {
			schedule = *task.Cron
		}

		state := "idle"
		if task.Running {
			state = "running"
		}

		tw.AppendRow(table.Row{
			strconv.Itoa(task.ID),
			task.Name,
			task.Keyword,
			schedule,
			yesNo(task.Enabled),
			state,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
