package main

import (
	"fmt"
	"strings"
)

// flagSet represents a flag that is either set (true) or not set (false).
type flagSet struct {
	name  string
	isSet bool
}

// namedThreshold pairs a threshold flag with its name for error messages.
type namedThreshold struct {
	name string
	flag *thresholdFlag
}

// requireAtMostOne returns an error if more than one of the given flags is set.
func requireAtMostOne(flags ...flagSet) error {
	var set []string
	for _, f := range flags {
		if f.isSet {
			set = append(set, f.name)
		}
	}
	if len(set) > 1 {
		return fmt.Errorf("only one of %s can be specified", strings.Join(set, ", "))
	}
	return nil
}

// requireOrdered returns an error if any set threshold has its warning
// limit above its critical limit.
func requireOrdered(thresholds ...namedThreshold) error {
	for _, t := range thresholds {
		if !t.flag.set {
			continue
		}
		if err := t.flag.pair.CheckOrder(); err != nil {
			return fmt.Errorf("invalid %s value: %w", t.name, err)
		}
	}
	return nil
}
