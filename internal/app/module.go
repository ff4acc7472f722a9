package app

import (
	"go.uber.org/fx"

	"lookout/internal/app/api"
	"lookout/internal/app/bus"
	"lookout/internal/app/cli"
	"lookout/internal/app/events"
	"lookout/internal/app/generator"
	"lookout/internal/app/logs"
	"lookout/internal/app/monitor"
	"lookout/internal/app/session"
	"lookout/internal/app/ui/wire"
	"lookout/internal/app/watcher"
	"lookout/internal/config/logger"
)

var Module = fx.Options(
	logger.Module,
	api.Module,
	session.Module,
	events.Module,
	bus.Module,
	watcher.Module,
	logs.Module,
	monitor.Module,
	generator.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
