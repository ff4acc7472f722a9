package watcher

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Debouncer_Trigger(t *testing.T) {
	var (
		mu            sync.Mutex
		called        int
		receivedFiles []string
	)

	d := NewDebouncer(50*time.Millisecond, time.Second, func(files []string) {
		mu.Lock()
		defer mu.Unlock()

		called++
		receivedFiles = files
	})
	defer d.Stop()

	d.Trigger("task_1.log")
	d.Trigger("task_1.log")
	d.Trigger("task_1.log.1")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 1, called)
	assert.ElementsMatch(t, []string{"task_1.log", "task_1.log.1"}, receivedFiles)
	mu.Unlock()
}

func Test_Debouncer_CoalescesRapidEvents(t *testing.T) {
	var callCount atomic.Int32

	d := NewDebouncer(50*time.Millisecond, time.Second, func(files []string) {
		callCount.Add(1)
	})
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger("task_1.log")
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(1), callCount.Load())
}

func Test_Debouncer_MaxWaitUnderSteadyWrites(t *testing.T) {
	var callCount atomic.Int32

	d := NewDebouncer(40*time.Millisecond, 60*time.Millisecond, func(files []string) {
		callCount.Add(1)
	})
	defer d.Stop()

	deadline := time.Now().Add(300 * time.Millisecond)
	for time.Now().Before(deadline) {
		d.Trigger("task_1.log")
		time.Sleep(10 * time.Millisecond)
	}

	assert.GreaterOrEqual(t, callCount.Load(), int32(2), "steady writes must not starve the callback")
}

func Test_Debouncer_MaxWaitBelowDuration(t *testing.T) {
	d := NewDebouncer(50*time.Millisecond, time.Millisecond, func(files []string) {})

	impl, ok := d.(*debouncer)
	assert.True(t, ok)
	assert.Equal(t, 50*time.Millisecond, impl.maxWait)
}

func Test_Debouncer_Stop(t *testing.T) {
	var called atomic.Bool

	d := NewDebouncer(50*time.Millisecond, time.Second, func(files []string) {
		called.Store(true)
	})

	d.Trigger("task_1.log")
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	assert.False(t, called.Load())
}

func Test_Debouncer_StopPreventsNewTriggers(t *testing.T) {
	var called atomic.Bool

	d := NewDebouncer(50*time.Millisecond, time.Second, func(files []string) {
		called.Store(true)
	})

	d.Stop()
	d.Trigger("task_1.log")

	time.Sleep(100 * time.Millisecond)

	assert.False(t, called.Load())
}

func Test_Debouncer_MultipleCallbacks(t *testing.T) {
	var callCount atomic.Int32

	d := NewDebouncer(30*time.Millisecond, time.Second, func(files []string) {
		callCount.Add(1)
	})
	defer d.Stop()

	d.Trigger("task_1.log")
	time.Sleep(60 * time.Millisecond)

	d.Trigger("task_1.log")
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(2), callCount.Load())
}
