//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"go.uber.org/fx"

	"lookout/internal/app/api"
	"lookout/internal/app/errors"
	"lookout/internal/app/generator"
	"lookout/internal/app/logs"
	"lookout/internal/app/ui/wire"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// Confirm asks a yes/no question on the terminal
type Confirm func(title string) (bool, error)

// Params contains dependencies for the cli
type Params struct {
	fx.In

	Options    *Options
	Config     *config.Config
	Client     api.Client
	Controller logs.Controller
	Runner     logs.Runner
	UI         wire.UI
	Generator  generator.Generator
	Logger     logger.Logger
}

type cli struct {
	opts      *Options
	cfg       *config.Config
	client    api.Client
	ctrl      logs.Controller
	runner    logs.Runner
	ui        wire.UI
	generator generator.Generator
	confirm   Confirm
	out       io.Writer
	errOut    io.Writer
	log       logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(p Params) CLI {
	return &cli{
		opts:      p.Options,
		cfg:       p.Config,
		client:    p.Client,
		ctrl:      p.Controller,
		runner:    p.Runner,
		ui:        p.UI,
		generator: p.Generator,
		confirm:   confirmPrompt,
		out:       os.Stdout,
		errOut:    os.Stderr,
		log:       p.Logger.WithComponent("CLI"),
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	err := c.dispatch(context.Background())

	switch {
	case err == nil:
		return 0, nil
	case errors.Is(err, errors.ErrClearCancelled):
		fmt.Fprintln(c.out, mutedText.Render("Nothing cleared"))
		return 0, nil
	}

	c.log.Error().Err(err).Msg("Command failed")
	fmt.Fprintf(c.errOut, "%s %v\n", errorLabel.Render("Error:"), err)

	return 1, err
}

func (c *cli) dispatch(ctx context.Context) error {
	switch c.opts.Type {
	case CommandView:
		return c.handleView(ctx)
	case CommandTail:
		return c.runner.Run(ctx, c.opts.TaskID, logs.RunOptions{Lines: c.opts.Lines, Follow: c.opts.Follow})
	case CommandClear:
		return c.handleClear(ctx)
	case CommandTasks:
		return c.handleTasks(ctx)
	case CommandInit:
		return c.handleInit()
	case CommandVersion:
		fmt.Fprintln(c.out, RenderTitle())
		return nil
	case CommandHelp:
		fmt.Fprint(c.out, RenderUsage())
		return nil
	default:
		return errors.ErrUnknownCommand
	}
}

// handleView runs the TUI until the user quits
func (c *cli) handleView(ctx context.Context) error {
	c.log.Debug().Int("task", c.opts.TaskID).Msg("Opening viewer")

	program, err := c.ui(ctx, c.opts.TaskID)
	if err != nil {
		return err
	}

	_, err = program.Run()

	return err
}

// handleClear clears the task log through the configured source after confirmation
func (c *cli) handleClear(ctx context.Context) error {
	id := c.opts.TaskID

	if !c.opts.Yes {
		ok, err := c.confirm(fmt.Sprintf("Delete the log of task %d?", id))
		if err != nil {
			return fmt.Errorf("%w: %w", errors.ErrClearCancelled, err)
		}

		if !ok {
			return errors.ErrClearCancelled
		}
	}

	c.ctrl.SetActiveTask(&id)

	if err := c.ctrl.Clear(ctx); err != nil {
		return err
	}

	fmt.Fprintln(c.out, successText.Render(fmt.Sprintf("Cleared log of task %d", id)))

	return nil
}

// handleTasks prints the task table, filtered by --match
func (c *cli) handleTasks(ctx context.Context) error {
	tasks, err := c.client.ListTasks(ctx)
	if err != nil {
		return err
	}

	tasks, err = filterTasks(tasks, c.opts.Match)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.out, mutedText.Render("No tasks"))
		return nil
	}

	fmt.Fprintln(c.out, renderTasks(tasks))

	return nil
}

func (c *cli) handleInit() error {
	opts := generator.DefaultOptions()
	opts.ServerURL = c.cfg.Server.URL
	opts.Source = c.cfg.Logs.Source
	opts.Dir = c.cfg.Logs.Dir

	return c.generator.Generate(opts, c.opts.Force, c.opts.DryRun)
}

func confirmPrompt(title string) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Keep").
		Value(&ok).
		Run()

	return ok, err
}
