// Package memcheck classifies virtual memory usage.
package memcheck

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vertti/hostcheck/pkg/check"
	"github.com/vertti/hostcheck/pkg/threshold"
)

// Check verifies virtual memory usage stays below thresholds.
type Check struct {
	Thresholds threshold.Pair
	Reader     Reader
}

// Run executes the memory check.
func (c *Check) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name: "memory",
	}

	if c.Reader == nil {
		c.Reader = &GopsutilReader{}
	}

	stat, err := c.Reader.VirtualMemory(ctx)
	if err != nil {
		return result.Unknownf("reading virtual memory: %w", err)
	}

	result.AddDetailf("Memory information: total=%s available=%s used=%s",
		check.FormatSize(stat.Total), check.FormatSize(stat.Available), check.FormatSize(stat.Used))
	result.AddDetailf("- Memory usage percentage: %.1f", stat.UsedPercent)

	result.Status = c.Thresholds.Classify(stat.UsedPercent)

	zerolog.Ctx(ctx).Debug().
		Float64("percent", stat.UsedPercent).
		Stringer("thresholds", c.Thresholds).
		Stringer("status", result.Status).
		Msg("classified memory usage")

	return result
}
