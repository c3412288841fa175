// Package diskcheck classifies filesystem usage against warning and
// critical thresholds.
package diskcheck

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vertti/hostcheck/pkg/check"
	"github.com/vertti/hostcheck/pkg/threshold"
)

// Mode selects how per-partition statuses are combined.
type Mode int

const (
	// ModeSummary classifies every partition and lists the ones at or
	// above a limit in the result summary.
	ModeSummary Mode = iota

	// ModeEscalate raises the status partition by partition and stops
	// at the first CRITICAL one.
	ModeEscalate
)

// Check verifies that mounted filesystems stay below usage thresholds.
type Check struct {
	Name       string         // result name (default: "disk")
	Thresholds threshold.Pair // usage percentage limits
	All        bool           // include pseudo and remote filesystems
	Mode       Mode
	Reader     Reader
}

type problem struct {
	part    Partition
	percent float64
}

// Run executes the disk check.
func (c *Check) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name:   c.Name,
		Status: check.StatusOK,
	}
	if result.Name == "" {
		result.Name = "disk"
	}

	if c.Reader == nil {
		c.Reader = &GopsutilReader{}
	}

	problems, err := c.scan(ctx, &result)

	// problems found before an abort are still reported
	c.summarize(&result, problems)

	if err != nil {
		return result.Unknown(err)
	}
	return result
}

func (c *Check) scan(ctx context.Context, result *check.Result) ([]problem, error) {
	logger := zerolog.Ctx(ctx).With().Str("check", result.Name).Logger()

	parts, err := c.Reader.Partitions(ctx, c.All && c.Mode == ModeSummary)
	if err != nil {
		return nil, fmt.Errorf("listing partitions: %w", err)
	}

	var problems []problem
	for _, part := range parts {
		result.AddDetailf("Checking device: %s (mounted on %s)", part.Device, part.Mountpoint)

		usage, err := c.Reader.Usage(ctx, part.Mountpoint)
		if err != nil {
			if isDeviceError(err) {
				logger.Debug().Err(err).Str("device", part.Device).Str("mountpoint", part.Mountpoint).Msg("skipping unreadable partition")
				result.AddDetailf("- Ignoring OS error: %v", err)
				continue
			}
			return problems, fmt.Errorf("reading usage of %s: %w", part.Mountpoint, err)
		}

		result.AddDetailf("- Disk usage percentage: %.1f (%s of %s)",
			usage.UsedPercent, check.FormatSize(usage.Used), check.FormatSize(usage.Total))

		status := c.Thresholds.Classify(usage.UsedPercent)
		logger.Debug().
			Str("device", part.Device).
			Float64("percent", usage.UsedPercent).
			Stringer("status", status).
			Msg("classified partition")

		if status != check.StatusOK {
			problems = append(problems, problem{part: part, percent: usage.UsedPercent})
		}
		result.Escalate(status)

		if c.Mode == ModeEscalate && status == check.StatusCritical {
			logger.Debug().Str("device", part.Device).Msg("critical partition found, stopping enumeration")
			break
		}
	}
	return problems, nil
}

// summarize renders the problem list. Each entry is labelled by testing
// the critical limit first.
func (c *Check) summarize(result *check.Result, problems []problem) {
	if c.Mode != ModeSummary {
		return
	}
	for _, p := range problems {
		label, limit := check.StatusWarning, c.Thresholds.Warning
		if p.percent >= float64(c.Thresholds.Critical) {
			label, limit = check.StatusCritical, c.Thresholds.Critical
		}
		result.AddSummaryf("%-8s alert for %s (mounted on %s) - %.1f%% is equal or greater than %d%%",
			label, p.part.Device, p.part.Mountpoint, p.percent, limit)
	}
}
