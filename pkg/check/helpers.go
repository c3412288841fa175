package check

import (
	"fmt"
)

// Unknown marks the result as UNKNOWN, recording the cause as a detail.
// Whatever status was computed so far is discarded.
func (r *Result) Unknown(err error) Result {
	r.Status = StatusUnknown
	r.Details = append(r.Details, "Error: "+err.Error())
	r.Err = err
	return *r
}

// Unknownf marks the result as UNKNOWN with a formatted cause.
func (r *Result) Unknownf(format string, args ...interface{}) Result {
	return r.Unknown(fmt.Errorf(format, args...))
}

// Escalate raises the status to s unless the result is already
// at or above it in the OK < WARNING < CRITICAL order.
func (r *Result) Escalate(s Status) *Result {
	if r.Status == StatusUnknown {
		return r
	}
	if s > r.Status {
		r.Status = s
	}
	return r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}

// AddSummaryf appends a formatted line to the summary block.
func (r *Result) AddSummaryf(format string, args ...interface{}) *Result {
	r.Summary = append(r.Summary, fmt.Sprintf(format, args...))
	return r
}
