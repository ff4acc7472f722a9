package logs

import (
	"context"

	"go.uber.org/fx"

	"lookout/internal/app/api"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// Module provides the fx dependency injection options for the logs package
var Module = fx.Options(
	fx.Provide(
		NewSource,
		NewController,
		NewFollower,
		NewRunner,
	),
	fx.Invoke(register),
)

// NewSource picks the log source configured in logs.source
func NewSource(cfg *config.Config, client api.Client, log logger.Logger) (Source, error) {
	if cfg.Logs.Source == config.SourceFile {
		return NewFileSource(cfg, log)
	}

	return NewHTTPSource(client), nil
}

func register(lc fx.Lifecycle, ctrl Controller) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			ctrl.Close()
			return nil
		},
	})
}
