package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"lookout/internal/app/cli"
	"lookout/internal/app/errors"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// inTempDir runs the test from an empty directory so no lookout.yaml or .env is picked up
func inTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() { _ = os.Chdir(oldDir) })

	return dir
}

func Test_loadConfig(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		inTempDir(t)

		cfg, err := loadConfig(&cli.Options{Type: cli.CommandTail})

		require.NoError(t, err)
		assert.Equal(t, config.SourceHTTP, cfg.Logs.Source)
	})

	t.Run("Source override", func(t *testing.T) {
		dir := inTempDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("logs:\n  dir: ./logs\n"), 0600))

		cfg, err := loadConfig(&cli.Options{Type: cli.CommandTail, Source: "FILE"})

		require.NoError(t, err)
		assert.Equal(t, config.SourceFile, cfg.Logs.Source)
	})

	t.Run("Invalid override", func(t *testing.T) {
		inTempDir(t)

		_, err := loadConfig(&cli.Options{Type: cli.CommandTail, Source: "ftp"})

		assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	})

	t.Run("Broken file", func(t *testing.T) {
		dir := inTempDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("logs:\n  page_size: 0\n"), 0600))

		_, err := loadConfig(&cli.Options{Type: cli.CommandView})
		assert.Error(t, err)

		cfg, err := loadConfig(&cli.Options{Type: cli.CommandInit})
		require.NoError(t, err)
		assert.Equal(t, config.DefaultPageSize, cfg.Logs.PageSize)
	})
}

func Test_appOptions(t *testing.T) {
	tests := []struct {
		name string
		opts *cli.Options
	}{
		{name: "Viewer", opts: &cli.Options{Type: cli.CommandView, TaskID: 1}},
		{name: "Tail", opts: &cli.Options{Type: cli.CommandTail, TaskID: 1}},
		{name: "Tasks", opts: &cli.Options{Type: cli.CommandTasks}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fx.ValidateApp(appOptions(config.DefaultConfig(), tt.opts)...)
			assert.NoError(t, err)
		})
	}
}

func Test_createFxLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		opts     *cli.Options
		expected fxevent.Logger
	}{
		{name: "Info level", level: logger.InfoLevel, opts: &cli.Options{Type: cli.CommandTail}, expected: fxevent.NopLogger},
		{name: "Debug level", level: logger.DebugLevel, opts: &cli.Options{Type: cli.CommandTail}, expected: &fxevent.ConsoleLogger{W: os.Stderr}},
		{name: "Debug level in viewer", level: logger.DebugLevel, opts: &cli.Options{Type: cli.CommandView}, expected: fxevent.NopLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			assert.Equal(t, tt.expected, createFxLogger(cfg, tt.opts)())
		})
	}
}

func Test_needsConfig(t *testing.T) {
	assert.True(t, needsConfig(&cli.Options{Type: cli.CommandView}))
	assert.False(t, needsConfig(&cli.Options{Type: cli.CommandVersion}))
}
