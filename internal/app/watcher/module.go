package watcher

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the log file watcher
var Module = fx.Options(
	fx.Provide(NewWatcher),
	fx.Invoke(func(lc fx.Lifecycle, w Watcher) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				w.Close()
				return nil
			},
		})
	}),
)
