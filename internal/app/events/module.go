package events

import (
	"context"

	"go.uber.org/fx"

	"lookout/internal/app/session"
	"lookout/internal/config"
)

// Module provides the monitor event stream for dependency injection
var Module = fx.Options(
	fx.Provide(NewStream),
	fx.Invoke(register),
)

// register ties the stream to the session: connected while logged in, closed on logout and shutdown
func register(lc fx.Lifecycle, cfg *config.Config, s Stream, sess session.Session) {
	if !cfg.Events.Enabled {
		return
	}

	unwatch := sess.Watch(func(loggedIn bool) {
		if loggedIn {
			s.Start()
		} else {
			s.Stop()
		}
	})

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			unwatch()
			s.Stop()

			return nil
		},
	})
}
