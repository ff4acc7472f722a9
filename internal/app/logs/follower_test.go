package logs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lookout/internal/app/bus"
	"lookout/internal/app/errors"
	"lookout/internal/app/watcher"
	"lookout/internal/config"
)

func Test_Follower_Start(t *testing.T) {
	mock := gomock.NewController(t)

	cfg := config.DefaultConfig()
	b := bus.New(cfg, nil)
	defer b.Close()

	mockCtrl := NewMockController(mock)
	mockWatcher := watcher.NewMockWatcher(mock)

	var onChange func()

	watched := make(chan struct{}, 1)
	unwatched := make(chan struct{}, 2)
	polled := make(chan struct{}, 1)

	mockWatcher.EXPECT().Watch(7, gomock.Any()).DoAndReturn(func(_ int, fn func()) error {
		onChange = fn
		watched <- struct{}{}

		return nil
	}).Times(1)
	mockWatcher.EXPECT().Unwatch().Do(func() { unwatched <- struct{}{} }).Times(2)
	mockCtrl.EXPECT().PollForward(gomock.Any()).DoAndReturn(func(context.Context) error {
		polled <- struct{}{}
		return nil
	})

	f := NewFollower(mockCtrl, mockWatcher, b, quietLogger(mock))

	ctx, cancel := context.WithCancel(context.Background())
	f.Start(ctx)

	b.Publish(bus.Message{Type: bus.EventLogsReset, Data: bus.LogsReset{TaskID: taskPtr(7)}, Critical: true})
	b.Publish(bus.Message{Type: bus.EventLogsReset, Data: bus.LogsReset{TaskID: taskPtr(7), Content: "page"}, Critical: true})
	b.Publish(bus.Message{Type: bus.EventLogsAppended, Data: bus.LogsAppended{TaskID: 7}})

	waitSignal(t, watched)

	onChange()
	waitSignal(t, polled)

	b.Publish(bus.Message{Type: bus.EventLogsReset, Data: bus.LogsReset{}, Critical: true})
	waitSignal(t, unwatched)

	cancel()
	waitSignal(t, unwatched)
}

func Test_Follower_WatchFailureIsLogged(t *testing.T) {
	mock := gomock.NewController(t)

	b := bus.New(config.DefaultConfig(), nil)
	defer b.Close()

	mockWatcher := watcher.NewMockWatcher(mock)

	failed := make(chan struct{}, 1)
	done := make(chan struct{}, 1)

	mockWatcher.EXPECT().Watch(3, gomock.Any()).DoAndReturn(func(int, func()) error {
		failed <- struct{}{}
		return errors.ErrFailedToOpenLog
	})
	mockWatcher.EXPECT().Unwatch().Do(func() { done <- struct{}{} })

	f := NewFollower(NewMockController(mock), mockWatcher, b, quietLogger(mock))

	ctx, cancel := context.WithCancel(context.Background())
	f.Start(ctx)

	b.Publish(bus.Message{Type: bus.EventLogsReset, Data: bus.LogsReset{TaskID: taskPtr(3)}, Critical: true})
	waitSignal(t, failed)

	cancel()
	waitSignal(t, done)
}

func Test_Follower_retarget(t *testing.T) {
	mock := gomock.NewController(t)

	f := &follower{ctrl: NewMockController(mock), watcher: watcher.NoOp(), log: quietLogger(mock)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.retarget(ctx, taskPtr(1))
	require.NotNil(t, f.current)
	assert.Equal(t, 1, *f.current)
}

func waitSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for signal")
	}
}
