package api

import (
	"go.uber.org/fx"
)

// Module provides the monitor API client for dependency injection
var Module = fx.Module("api",
	fx.Provide(NewClient),
)
