// Package threshold parses and applies "<warning>,<critical>" percentage
// limits.
package threshold

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vertti/hostcheck/pkg/check"
)

// Pattern is the accepted format of a threshold argument.
var Pattern = regexp.MustCompile(`^([0-9]+),([0-9]+)$`)

// Pair holds the warning and critical limits of one check.
// No ordering between the two is implied.
type Pair struct {
	Warning  int
	Critical int
}

// Validate reports whether s has the <warning>,<critical> shape.
func Validate(s string) error {
	if !Pattern.MatchString(s) {
		return fmt.Errorf("value '%s' does not match required format <warning>,<critical>", s)
	}
	return nil
}

// Parse converts a string like "90,95" into a Pair.
func Parse(s string) (Pair, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Pair{}, fmt.Errorf("expected <warning>,<critical>, got %q", s)
	}

	warning, err := parseLimit(parts[0])
	if err != nil {
		return Pair{}, fmt.Errorf("invalid warning limit: %w", err)
	}
	critical, err := parseLimit(parts[1])
	if err != nil {
		return Pair{}, fmt.Errorf("invalid critical limit: %w", err)
	}

	return Pair{Warning: warning, Critical: critical}, nil
}

func parseLimit(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("limit %d is negative", n)
	}
	return n, nil
}

// Classify maps a usage percentage to a status. Both limits are
// inclusive and always evaluated, so CRITICAL supersedes WARNING.
func (p Pair) Classify(percent float64) check.Status {
	status := check.StatusOK
	if percent >= float64(p.Warning) {
		status = check.StatusWarning
	}
	if percent >= float64(p.Critical) {
		status = check.StatusCritical
	}
	return status
}

// CheckOrder returns an error if the warning limit exceeds the critical one.
func (p Pair) CheckOrder() error {
	if p.Warning > p.Critical {
		return fmt.Errorf("warning limit %d is greater than critical limit %d", p.Warning, p.Critical)
	}
	return nil
}

// String formats the pair back into its argument form.
func (p Pair) String() string {
	return fmt.Sprintf("%d,%d", p.Warning, p.Critical)
}
