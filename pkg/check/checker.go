package check

import "context"

// Checker is implemented by all check types.
// Each check samples one aspect of the host and classifies it
// into a Result carrying one of the four monitoring statuses.
//
// Implementations:
//   - diskcheck.Check: filesystem usage per partition
//   - memcheck.Check: virtual memory usage
//   - cpucheck.Check: averaged CPU utilization
type Checker interface {
	Run(ctx context.Context) Result
}
