package memcheck

import (
	"context"

	"github.com/shirou/gopsutil/v4/mem"
)

// Stat is a virtual memory snapshot.
type Stat struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
}

// Reader abstracts virtual memory statistics for testability.
type Reader interface {
	VirtualMemory(ctx context.Context) (Stat, error)
}

// GopsutilReader implements Reader using gopsutil.
type GopsutilReader struct{}

// VirtualMemory returns the current virtual memory usage.
func (r *GopsutilReader) VirtualMemory(ctx context.Context) (Stat, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Stat{}, err
	}
	return Stat{
		Total:       v.Total,
		Available:   v.Available,
		Used:        v.Used,
		UsedPercent: v.UsedPercent,
	}, nil
}
