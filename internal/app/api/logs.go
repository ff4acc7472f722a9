package api

import (
	"context"
	"net/http"
)

// FetchLogs returns the log bytes written since fromPos
func (c *client) FetchLogs(ctx context.Context, taskID int, fromPos int64) (*LogIncrement, error) {
	var out LogIncrement

	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/logs",
		params: []param{int64Param("from_pos", fromPos), intParam("task_id", taskID)},
		out:    &out,
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// TailLogs returns a page of history lines counted from the end of the log
func (c *client) TailLogs(ctx context.Context, taskID, offsetLines, limitLines int) (*LogPage, error) {
	var out LogPage

	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/logs/tail",
		params: []param{
			intParam("task_id", taskID),
			intParam("offset_lines", offsetLines),
			intParam("limit_lines", limitLines),
		},
		out: &out,
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// ClearLogs truncates the task's log on the server
func (c *client) ClearLogs(ctx context.Context, taskID int) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/api/logs",
		params: []param{intParam("task_id", taskID)},
	})
}
