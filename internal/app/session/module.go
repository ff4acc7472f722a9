package session

import (
	"context"

	"go.uber.org/fx"

	"lookout/internal/app/errors"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// Module provides the fx dependency injection options for the session package
var Module = fx.Options(
	fx.Provide(NewSession),
	fx.Invoke(register),
)

// register logs in on start when credentials are configured and logs out on stop
func register(lc fx.Lifecycle, cfg *config.Config, s Session, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.HasCredentials() {
				log.Debug().Msg("No credentials configured, skipping login")
				return nil
			}

			err := s.Login(ctx)
			if errors.Is(err, errors.ErrLoginRejected) {
				return err
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Logout()
			return nil
		},
	})
}
