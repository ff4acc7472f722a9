package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lookout/internal/app/errors"
	"lookout/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandView CommandType = iota
	CommandTail
	CommandClear
	CommandTasks
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type   CommandType
	TaskID int
	Source string
	Lines  int
	Follow bool
	Yes    bool
	Match  string
	Force  bool
	DryRun bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandHelp,
	}

	root := buildRootCommand(result)
	root.AddCommand(
		buildViewCommand(result),
		buildTailCommand(result),
		buildClearCommand(result),
		buildTasksCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	return result, nil
}

// IsInteractive reports whether the command takes over the terminal
func (o *Options) IsInteractive() bool {
	return o.Type == CommandView
}

// buildRootCommand creates the root cobra command; a bare task id opens the viewer
func buildRootCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName + " [task-id]",
		Short: config.AppDescription,
		Long: `Lookout follows the log of a marketplace monitor task from the terminal.
It tails the log over the monitor API or straight from its log directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				result.Type = CommandHelp
				return nil
			}

			return setView(result, args)
		},
	}

	cmd.PersistentFlags().StringVar(&result.Source, "source", "", "Log source override: http or file")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildViewCommand creates the view subcommand
func buildViewCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "view <task-id>",
		Aliases: []string{"v"},
		Short:   "Open the log viewer for a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setView(result, args)
		},
	}
}

// buildTailCommand creates the tail subcommand
func buildTailCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tail <task-id>",
		Aliases: []string{"t"},
		Short:   "Print the latest lines of a task log",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandTail
			return parseTaskID(result, args[0])
		},
	}

	cmd.Flags().BoolVarP(&result.Follow, "follow", "f", false, "Keep printing new output")
	cmd.Flags().IntVarP(&result.Lines, "lines", "n", 0, "Number of lines to print (default from config)")

	return cmd
}

// buildClearCommand creates the clear subcommand
func buildClearCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear <task-id>",
		Short: "Delete a task log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandClear
			return parseTaskID(result, args[0])
		},
	}

	cmd.Flags().BoolVarP(&result.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// buildTasksCommand creates the tasks subcommand
func buildTasksCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"ls"},
		Short:   "List monitor tasks",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandTasks
		},
	}

	cmd.Flags().StringVarP(&result.Match, "match", "m", "", "Only show tasks whose name matches the glob")

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate " + config.ConfigFile + " template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVar(&result.Force, "force", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}

func setView(result *Options, args []string) error {
	result.Type = CommandView
	return parseTaskID(result, args[0])
}

func parseTaskID(result *Options, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidTaskID, arg)
	}

	result.TaskID = id

	return nil
}
