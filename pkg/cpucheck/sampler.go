package cpucheck

import (
	"context"
	"errors"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
)

// Sampler abstracts CPU utilization measurement for testability.
type Sampler interface {
	// Percent blocks for interval and returns the overall busy percentage
	// across all CPUs during it.
	Percent(ctx context.Context, interval time.Duration) (float64, error)
}

// GopsutilSampler implements Sampler using gopsutil.
type GopsutilSampler struct{}

// Percent measures CPU busy percentage over interval.
func (s *GopsutilSampler) Percent(ctx context.Context, interval time.Duration) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, errors.New("no cpu usage reported")
	}
	return percents[0], nil
}
