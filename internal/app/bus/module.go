package bus

import (
	"go.uber.org/fx"

	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// Module provides bus for dependency injection
var Module = fx.Module("bus",
	fx.Provide(func(cfg *config.Config, log logger.Logger) Bus {
		return New(cfg, log)
	}),
)
