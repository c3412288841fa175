package check

// Status is the outcome of a check. Its numeric value is the exit code
// expected by Nagios-compatible supervisors and must not change.
type Status int

const (
	StatusOK       Status = 0
	StatusWarning  Status = 1
	StatusCritical Status = 2
	StatusUnknown  Status = 3
)

// String returns the label used in plugin output.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the status.
func (s Status) ExitCode() int {
	switch s {
	case StatusOK, StatusWarning, StatusCritical:
		return int(s)
	default:
		return int(StatusUnknown)
	}
}

// Severity ranks statuses for worst-wins aggregation:
// OK < WARNING < UNKNOWN < CRITICAL.
func (s Status) Severity() int {
	switch s {
	case StatusOK:
		return 0
	case StatusWarning:
		return 1
	case StatusCritical:
		return 3
	default:
		return 2
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "disk:all", "memory"
	Status  Status   // OK, WARNING, CRITICAL or UNKNOWN
	Details []string // human-readable progress lines
	Summary []string // flagged items, printed as a separate block
	Err     error    // cause of an UNKNOWN status
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
