// Package cpucheck classifies CPU utilization averaged over a few
// consecutive samples.
package cpucheck

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vertti/hostcheck/pkg/check"
	"github.com/vertti/hostcheck/pkg/threshold"
)

const (
	DefaultSamples  = 5
	DefaultInterval = time.Second
)

// Check verifies average CPU usage stays below thresholds.
type Check struct {
	Thresholds threshold.Pair
	Samples    int           // number of samples (default: 5)
	Interval   time.Duration // length of each sample (default: 1s)
	Sampler    Sampler
}

// Run executes the CPU check. It blocks for Samples*Interval.
func (c *Check) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name: "cpu",
	}

	if c.Sampler == nil {
		c.Sampler = &GopsutilSampler{}
	}
	samples := c.Samples
	if samples <= 0 {
		samples = DefaultSamples
	}
	interval := c.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	logger := zerolog.Ctx(ctx)

	var sum float64
	for i := 0; i < samples; i++ {
		if err := ctx.Err(); err != nil {
			return result.Unknownf("sampling cpu usage: %w", err)
		}
		pct, err := c.Sampler.Percent(ctx, interval)
		if err != nil {
			return result.Unknownf("sampling cpu usage: %w", err)
		}
		logger.Debug().Int("sample", i).Float64("percent", pct).Msg("cpu sample")
		result.AddDetailf("%d - CPU usage: %.1f", i, pct)
		sum += pct
	}

	avg := sum / float64(samples)
	result.AddDetailf("- Average CPU usage: %.1f", avg)
	result.Status = c.Thresholds.Classify(avg)

	logger.Debug().
		Float64("average", avg).
		Stringer("thresholds", c.Thresholds).
		Stringer("status", result.Status).
		Msg("classified cpu usage")

	return result
}
