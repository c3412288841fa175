// Package probe runs the enabled checks in order and folds their results
// into the overall plugin status.
package probe

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vertti/hostcheck/pkg/check"
)

// Step is one entry of the run plan.
type Step struct {
	Name    string        // heading printed before the check, e.g. "Disk"
	Checker check.Checker // nil when the step only prints Notice
	Notice  string
}

// Reporter receives progress from the runner.
type Reporter interface {
	Start(name string)
	Result(r check.Result)
	Notice(msg string)
}

// Runner executes steps sequentially.
type Runner struct {
	Steps    []Step
	Policy   Policy
	Reporter Reporter
}

// Run executes every step until one leaves the running status CRITICAL,
// then returns the overall status. Remaining steps are not run.
func (r *Runner) Run(ctx context.Context) check.Status {
	logger := zerolog.Ctx(ctx)
	running := check.StatusOK

	for i, step := range r.Steps {
		if running == check.StatusCritical {
			logger.Debug().Int("skipped", len(r.Steps)-i).Msg("status is critical, skipping remaining checks")
			break
		}

		if step.Checker == nil {
			if step.Notice != "" && r.Reporter != nil {
				r.Reporter.Notice(step.Notice)
			}
			continue
		}

		if r.Reporter != nil {
			r.Reporter.Start(step.Name)
		}
		result := step.Checker.Run(ctx)
		if r.Reporter != nil {
			r.Reporter.Result(result)
		}

		next := r.Policy.Fold(running, result.Status)
		logger.Debug().
			Str("check", result.Name).
			Stringer("result", result.Status).
			Stringer("before", running).
			Stringer("after", next).
			Stringer("policy", r.Policy).
			Msg("folded check status")
		if result.Err != nil {
			logger.Warn().Err(result.Err).Str("check", result.Name).Msg("check failed")
		}
		running = next
	}

	return running
}
