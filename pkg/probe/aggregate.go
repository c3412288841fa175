package probe

import "github.com/vertti/hostcheck/pkg/check"

// Policy decides how a new check status folds into the running status.
type Policy int

const (
	// PolicyLastNonOK lets every non-OK result replace the running status,
	// even when it is less severe. This is the historical plugin behavior
	// and the default.
	PolicyLastNonOK Policy = iota

	// PolicyWorst keeps the most severe status seen, ranked by
	// check.Status.Severity.
	PolicyWorst
)

// String returns the policy name used in logs.
func (p Policy) String() string {
	if p == PolicyWorst {
		return "worst"
	}
	return "last-non-ok"
}

// Fold combines the running status with the status of the check that
// just ran.
func (p Policy) Fold(running, next check.Status) check.Status {
	switch p {
	case PolicyWorst:
		if next.Severity() > running.Severity() {
			return next
		}
		return running
	default:
		if next != check.StatusOK {
			return next
		}
		return running
	}
}

// Aggregate folds statuses in order, starting from OK.
func Aggregate(p Policy, statuses ...check.Status) check.Status {
	running := check.StatusOK
	for _, s := range statuses {
		running = p.Fold(running, s)
	}
	return running
}
