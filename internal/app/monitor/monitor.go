//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor
package monitor

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains process resource statistics
type Stats struct {
	CPU float64
	RSS uint64
}

// Monitor provides process resource monitoring
type Monitor interface {
	GetStats(ctx context.Context, pid int) (Stats, error)
	Self(ctx context.Context) (Stats, error)
}

type monitor struct {
	pid int
}

// NewMonitor creates a monitor that reports on this process by default
func NewMonitor() Monitor {
	return &monitor{pid: os.Getpid()}
}

// Self reports the viewer's own footprint, shown in the status bar
func (m *monitor) Self(ctx context.Context) (Stats, error) {
	return m.GetStats(ctx, m.pid)
}

func (m *monitor) GetStats(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	cpuPercent, err := proc.CPUPercentWithContext(ctx)
	if err == nil {
		stats.CPU = cpuPercent
	}

	memInfo, err := proc.MemoryInfoWithContext(ctx)
	if err == nil {
		stats.RSS = memInfo.RSS
	}

	return stats, nil
}

// FormatMemory formats bytes into human-readable format (Bytes, Kb, Mb, Gb)
func FormatMemory(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%5dB", bytes)
	}

	suffixes := []string{"Kb", "Mb", "Gb"}
	value := float64(bytes)

	for i, suffix := range suffixes {
		value /= float64(unit)
		if value < float64(unit) || i == len(suffixes)-1 {
			if value >= 100 {
				return fmt.Sprintf("%4.0f %s", value, suffix)
			} else if value >= 10 {
				return fmt.Sprintf("%4.1f %s", value, suffix)
			}

			return fmt.Sprintf("%4.2f %s", value, suffix)
		}
	}

	return fmt.Sprintf("%4.0f Tb", value)
}

// FormatUptime formats how long the viewer has been open (Xh Ym or Xm Ys or Xs)
func FormatUptime(d time.Duration) string {
	d = d.Round(time.Second)

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%2dh%02dm", h, m)
	}

	if m > 0 {
		return fmt.Sprintf("%2dm%02ds", m, s)
	}

	return fmt.Sprintf("  %2ds", s)
}
