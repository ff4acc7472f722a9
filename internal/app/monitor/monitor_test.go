package monitor

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewMonitor(t *testing.T) {
	m := NewMonitor()

	assert.NotNil(t, m)
	assert.Equal(t, os.Getpid(), m.(*monitor).pid)
}

func Test_GetStats_InvalidPID(t *testing.T) {
	m := NewMonitor()
	ctx := context.Background()

	tests := []struct {
		name string
		pid  int
	}{
		{name: "Zero PID", pid: 0},
		{name: "Negative PID", pid: -1},
		{name: "Above MaxInt32", pid: 2147483648},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := m.GetStats(ctx, tt.pid)

			assert.NoError(t, err)
			assert.Equal(t, Stats{}, stats)
		})
	}
}

func Test_Self(t *testing.T) {
	m := NewMonitor()

	stats, err := m.Self(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.CPU, 0.0)
	assert.Greater(t, stats.RSS, uint64(0))
}

func Test_GetStats_NonExistentProcess(t *testing.T) {
	m := NewMonitor()

	_, err := m.GetStats(context.Background(), 999999999)

	assert.Error(t, err)
}

func Test_FormatMemory(t *testing.T) {
	tests := []struct {
		name     string
		bytes    uint64
		expected string
	}{
		{"Bytes", 512, "  512B"},
		{"Kilobytes", 2048, "2.00 Kb"},
		{"Megabytes", 10 * 1024 * 1024, "10.0 Mb"},
		{"Gigabytes", 5 * 1024 * 1024 * 1024, "5.00 Gb"},
		{"Large megabytes", 150 * 1024 * 1024, " 150 Mb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMemory(tt.bytes))
		})
	}
}

func Test_FormatUptime(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"Seconds", 30 * time.Second, "  30s"},
		{"Minutes and seconds", 2*time.Minute + 15*time.Second, " 2m15s"},
		{"Hours and minutes", 3*time.Hour + 45*time.Minute, " 3h45m"},
		{"One second", 1 * time.Second, "   1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatUptime(tt.duration))
		})
	}
}
