package watcher

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lookout/internal/app/errors"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

func fileConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Logs.Source = config.SourceFile
	cfg.Logs.Dir = t.TempDir()
	cfg.Logs.Debounce = 20 * time.Millisecond
	cfg.Logs.Refresh = 100 * time.Millisecond

	return cfg
}

func newTestWatcher(t *testing.T, cfg *config.Config) Watcher {
	t.Helper()

	w, err := NewWatcher(cfg, logger.NewLoggerWithOutput(cfg, io.Discard))
	require.NoError(t, err)
	t.Cleanup(w.Close)

	return w
}

func appendLine(t *testing.T, path, line string) {
	t.Helper()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)

	_, err = f.WriteString(line + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func Test_NewWatcher(t *testing.T) {
	t.Run("HTTP source returns no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w, err := NewWatcher(config.DefaultConfig(), logger.NewMockLogger(ctrl))
		require.NoError(t, err)

		_, ok := w.(noOpWatcher)
		assert.True(t, ok)
		assert.NoError(t, w.Watch(1, func() {}))
		w.Unwatch()
		w.Close()
	})

	t.Run("File source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLog := logger.NewMockLogger(ctrl)
		mockLog.EXPECT().WithComponent("WATCHER").Return(logger.NewMockLogger(ctrl))

		w, err := NewWatcher(fileConfig(t), mockLog)
		require.NoError(t, err)

		_, ok := w.(*manager)
		assert.True(t, ok)
		w.Close()
	})
}

func Test_Watcher_TriggersOnActiveTaskWrites(t *testing.T) {
	cfg := fileConfig(t)
	w := newTestWatcher(t, cfg)

	changes := make(chan struct{}, 8)
	require.NoError(t, w.Watch(1, func() { changes <- struct{}{} }))

	appendLine(t, filepath.Join(cfg.Logs.Dir, "camera_2.log"), "other task")

	select {
	case <-changes:
		t.Fatal("Write to another task's log must not trigger")
	case <-time.After(100 * time.Millisecond):
	}

	appendLine(t, filepath.Join(cfg.Logs.Dir, "camera_1.log"), "hello")

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected change notification")
	}
}

func Test_Watcher_SwitchAndUnwatch(t *testing.T) {
	cfg := fileConfig(t)
	w := newTestWatcher(t, cfg)

	first := make(chan struct{}, 8)
	second := make(chan struct{}, 8)

	require.NoError(t, w.Watch(1, func() { first <- struct{}{} }))
	require.NoError(t, w.Watch(2, func() { second <- struct{}{} }))

	appendLine(t, filepath.Join(cfg.Logs.Dir, "lens_2.log"), "hello")

	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected change notification for the new target")
	}

	w.Unwatch()
	appendLine(t, filepath.Join(cfg.Logs.Dir, "lens_2.log"), "again")
	appendLine(t, filepath.Join(cfg.Logs.Dir, "camera_1.log"), "old target")

	select {
	case <-first:
		t.Fatal("Replaced target must not trigger")
	case <-second:
		t.Fatal("Unwatched target must not trigger")
	case <-time.After(150 * time.Millisecond):
	}
}

func Test_Watcher_MissingDir(t *testing.T) {
	cfg := fileConfig(t)
	cfg.Logs.Dir = filepath.Join(cfg.Logs.Dir, "missing")

	w := newTestWatcher(t, cfg)

	err := w.Watch(1, func() {})
	assert.ErrorIs(t, err, errors.ErrFailedToOpenLog)
}

func Test_Watcher_InvalidPattern(t *testing.T) {
	cfg := fileConfig(t)
	cfg.Logs.Pattern = "[bad_{id}.log"

	w := newTestWatcher(t, cfg)

	assert.ErrorIs(t, w.Watch(1, func() {}), errors.ErrInvalidGlobPattern)
}

func Test_Watcher_Close(t *testing.T) {
	cfg := fileConfig(t)
	w := newTestWatcher(t, cfg)

	w.Close()
	w.Close()

	assert.NoError(t, w.Watch(1, func() {}))
}
