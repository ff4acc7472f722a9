package api

import (
	"context"
	"net/http"
)

// ListTasks returns every task configured on the monitor
func (c *client) ListTasks(ctx context.Context) ([]Task, error) {
	var out []Task

	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/tasks", out: &out}); err != nil {
		return nil, err
	}

	return out, nil
}
