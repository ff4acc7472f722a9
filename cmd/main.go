package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"lookout/internal/app"
	"lookout/internal/app/cli"
	"lookout/internal/app/errors"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := fx.New(appOptions(cfg, opts)...)
	application.Run()
}

// loadConfig reads lookout.yaml and applies command-line overrides.
// init, version and help still work when the file is broken
func loadConfig(opts *cli.Options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		if needsConfig(opts) {
			return nil, err
		}

		cfg = config.DefaultConfig()
	}

	if opts.Source != "" {
		cfg.Logs.Source = strings.ToLower(opts.Source)

		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
		}
	}

	return cfg, nil
}

func needsConfig(opts *cli.Options) bool {
	switch opts.Type {
	case cli.CommandInit, cli.CommandVersion, cli.CommandHelp:
		return false
	default:
		return true
	}
}

// appOptions assembles the fx graph; while the TUI owns the terminal logs go to a rotating file
func appOptions(cfg *config.Config, opts *cli.Options) []fx.Option {
	options := []fx.Option{
		fx.WithLogger(createFxLogger(cfg, opts)),
		fx.Supply(cfg, opts),
		app.Module,
	}

	if opts.IsInteractive() {
		options = append(options, fx.Decorate(logger.NewFileLogger))
	}

	return options
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config, opts *cli.Options) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel && !opts.IsInteractive() {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
