package diskcheck

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/disk"
)

// Partition is a mounted filesystem as reported by the OS.
type Partition struct {
	Device     string
	Mountpoint string
	Fstype     string
}

// Usage is the space consumption of one mounted filesystem.
type Usage struct {
	Total       uint64
	Used        uint64
	UsedPercent float64
}

// Reader abstracts partition enumeration and usage reads for testability.
type Reader interface {
	// Partitions lists mounted filesystems. With all=false only
	// physical local devices are returned.
	Partitions(ctx context.Context, all bool) ([]Partition, error)

	// Usage reads space usage of the filesystem mounted at mountpoint.
	Usage(ctx context.Context, mountpoint string) (Usage, error)
}

// GopsutilReader implements Reader using gopsutil.
type GopsutilReader struct{}

// Partitions lists mounted filesystems.
func (r *GopsutilReader) Partitions(ctx context.Context, all bool) ([]Partition, error) {
	stats, err := disk.PartitionsWithContext(ctx, all)
	if err != nil {
		if len(stats) == 0 {
			return nil, err
		}
		// gopsutil reports per-mount parse problems alongside the partitions
		// it could read; those are still usable.
		zerolog.Ctx(ctx).Debug().Err(err).Int("partitions", len(stats)).Msg("partial partition list")
	}

	parts := make([]Partition, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, Partition{
			Device:     s.Device,
			Mountpoint: s.Mountpoint,
			Fstype:     s.Fstype,
		})
	}
	return parts, nil
}

// Usage reads space usage at mountpoint.
func (r *GopsutilReader) Usage(ctx context.Context, mountpoint string) (Usage, error) {
	u, err := disk.UsageWithContext(ctx, mountpoint)
	if err != nil {
		return Usage{}, err
	}
	return Usage{
		Total:       u.Total,
		Used:        u.Used,
		UsedPercent: u.UsedPercent,
	}, nil
}
