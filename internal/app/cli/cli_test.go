package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lookout/internal/app/api"
	apperrors "lookout/internal/app/errors"
	"lookout/internal/app/generator"
	"lookout/internal/app/logs"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

type fakeGenerator struct {
	opts   generator.Options
	force  bool
	dryRun bool
	err    error
}

func (g *fakeGenerator) Generate(opts generator.Options, force bool, dryRun bool) error {
	g.opts, g.force, g.dryRun = opts, force, dryRun
	return g.err
}

type cliFixture struct {
	cli       *cli
	client    *api.MockClient
	ctrl      *logs.MockController
	runner    *logs.MockRunner
	generator *fakeGenerator
	out       *bytes.Buffer
	errOut    *bytes.Buffer
}

func newCLIFixture(t *testing.T, opts Options) *cliFixture {
	t.Helper()

	mock := gomock.NewController(t)

	log := logger.NewMockLogger(mock)
	log.EXPECT().WithComponent(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug().Return(nil).AnyTimes()
	log.EXPECT().Error().Return(nil).AnyTimes()

	f := &cliFixture{
		client:    api.NewMockClient(mock),
		ctrl:      logs.NewMockController(mock),
		runner:    logs.NewMockRunner(mock),
		generator: &fakeGenerator{},
		out:       &bytes.Buffer{},
		errOut:    &bytes.Buffer{},
	}

	instance := NewCLI(Params{
		Options:    &opts,
		Config:     config.DefaultConfig(),
		Client:     f.client,
		Controller: f.ctrl,
		Runner:     f.runner,
		Generator:  f.generator,
		Logger:     log,
	})

	f.cli = instance.(*cli)
	f.cli.out = f.out
	f.cli.errOut = f.errOut

	return f
}

func Test_NewCLI(t *testing.T) {
	f := newCLIFixture(t, Options{Type: CommandVersion})

	assert.NotNil(t, f.cli.confirm)
	assert.Equal(t, CommandVersion, f.cli.opts.Type)
}

func Test_Execute_Tail(t *testing.T) {
	f := newCLIFixture(t, Options{Type: CommandTail, TaskID: 4, Lines: 20, Follow: true})

	f.runner.EXPECT().Run(gomock.Any(), 4, logs.RunOptions{Lines: 20, Follow: true}).Return(nil)

	code, err := f.cli.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 0, code)
}

func Test_Execute_Failure(t *testing.T) {
	f := newCLIFixture(t, Options{Type: CommandTail, TaskID: 4})

	f.runner.EXPECT().Run(gomock.Any(), 4, gomock.Any()).Return(apperrors.ErrUnauthorized)

	code, err := f.cli.Execute()

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, 1, code)
	assert.Contains(t, f.errOut.String(), "unauthorized")
}

func Test_Execute_Clear(t *testing.T) {
	id := 9

	tests := []struct {
		name    string
		yes     bool
		confirm Confirm
		before  func(f *cliFixture)
		code    int
		output  string
	}{
		{
			name: "Confirmed",
			confirm: func(string) (bool, error) {
				return true, nil
			},
			before: func(f *cliFixture) {
				gomock.InOrder(
					f.ctrl.EXPECT().SetActiveTask(&id),
					f.ctrl.EXPECT().Clear(gomock.Any()).Return(nil),
				)
			},
			output: "Cleared log of task 9",
		},
		{
			name: "Skip prompt",
			yes:  true,
			confirm: func(string) (bool, error) {
				t.Fatal("prompt must not run")
				return false, nil
			},
			before: func(f *cliFixture) {
				f.ctrl.EXPECT().SetActiveTask(&id)
				f.ctrl.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			output: "Cleared log of task 9",
		},
		{
			name: "Declined",
			confirm: func(string) (bool, error) {
				return false, nil
			},
			before: func(f *cliFixture) {},
			output: "Nothing cleared",
		},
		{
			name: "Server rejects",
			yes:  true,
			before: func(f *cliFixture) {
				f.ctrl.EXPECT().SetActiveTask(&id)
				f.ctrl.EXPECT().Clear(gomock.Any()).Return(errors.New("HTTP error! status: 500"))
			},
			code: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCLIFixture(t, Options{Type: CommandClear, TaskID: id, Yes: tt.yes})
			f.cli.confirm = tt.confirm
			tt.before(f)

			code, _ := f.cli.Execute()

			assert.Equal(t, tt.code, code)
			assert.Contains(t, f.out.String(), tt.output)
		})
	}
}

func Test_Execute_Tasks(t *testing.T) {
	t.Run("Filtered table", func(t *testing.T) {
		f := newCLIFixture(t, Options{Type: CommandTasks, Match: "sony*"})

		f.client.EXPECT().ListTasks(gomock.Any()).Return([]api.Task{
			{ID: 1, Name: "sony a7"},
			{ID: 2, Name: "switch"},
		}, nil)

		code, err := f.cli.Execute()

		assert.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Contains(t, f.out.String(), "sony a7")
		assert.NotContains(t, f.out.String(), "switch")
	})

	t.Run("Empty", func(t *testing.T) {
		f := newCLIFixture(t, Options{Type: CommandTasks})

		f.client.EXPECT().ListTasks(gomock.Any()).Return(nil, nil)

		_, err := f.cli.Execute()

		assert.NoError(t, err)
		assert.Contains(t, f.out.String(), "No tasks")
	})

	t.Run("Request fails", func(t *testing.T) {
		f := newCLIFixture(t, Options{Type: CommandTasks})

		f.client.EXPECT().ListTasks(gomock.Any()).Return(nil, apperrors.ErrRequestFailed)

		code, err := f.cli.Execute()

		assert.ErrorIs(t, err, apperrors.ErrRequestFailed)
		assert.Equal(t, 1, code)
	})
}

func Test_Execute_Init(t *testing.T) {
	f := newCLIFixture(t, Options{Type: CommandInit, Force: true})

	code, err := f.cli.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.True(t, f.generator.force)
	assert.False(t, f.generator.dryRun)
	assert.Equal(t, config.DefaultServerURL, f.generator.opts.ServerURL)
	assert.Equal(t, config.ConfigFile, f.generator.opts.Path)
}

func Test_Execute_Info(t *testing.T) {
	tests := []struct {
		name     string
		typ      CommandType
		expected string
	}{
		{name: "Version", typ: CommandVersion, expected: config.Version},
		{name: "Help", typ: CommandHelp, expected: "Usage:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCLIFixture(t, Options{Type: tt.typ})

			code, err := f.cli.Execute()

			assert.NoError(t, err)
			assert.Equal(t, 0, code)
			assert.Contains(t, f.out.String(), tt.expected)
		})
	}
}

func Test_Execute_Unknown(t *testing.T) {
	f := newCLIFixture(t, Options{Type: CommandType(99)})

	code, err := f.cli.Execute()

	assert.ErrorIs(t, err, apperrors.ErrUnknownCommand)
	assert.Equal(t, 1, code)
}

func Test_handleView(t *testing.T) {
	f := newCLIFixture(t, Options{Type: CommandView, TaskID: 3})
	boom := errors.New("no tty")

	var gotTask int

	f.cli.ui = func(ctx context.Context, taskID int) (*tea.Program, error) {
		gotTask = taskID
		return nil, boom
	}

	code, err := f.cli.Execute()

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, code)
	assert.Equal(t, 3, gotTask)
}
