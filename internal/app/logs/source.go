//go:generate mockgen -source=source.go -destination=source_mock.go -package=logs
package logs

import (
	"context"

	"lookout/internal/app/api"
)

// Source is where log increments and history pages come from
type Source interface {
	Fetch(ctx context.Context, taskID int, fromPos int64) (*api.LogIncrement, error)
	Tail(ctx context.Context, taskID, offsetLines, limitLines int) (*api.LogPage, error)
	Clear(ctx context.Context, taskID int) error
}

type httpSource struct {
	client api.Client
}

// NewHTTPSource reads logs through the monitor REST API
func NewHTTPSource(client api.Client) Source {
	return &httpSource{client: client}
}

func (s *httpSource) Fetch(ctx context.Context, taskID int, fromPos int64) (*api.LogIncrement, error) {
	return s.client.FetchLogs(ctx, taskID, fromPos)
}

func (s *httpSource) Tail(ctx context.Context, taskID, offsetLines, limitLines int) (*api.LogPage, error) {
	return s.client.TailLogs(ctx, taskID, offsetLines, limitLines)
}

func (s *httpSource) Clear(ctx context.Context, taskID int) error {
	return s.client.ClearLogs(ctx, taskID)
}
