package main

import (
	"github.com/spf13/pflag"

	"github.com/vertti/hostcheck/pkg/threshold"
)

var _ pflag.Value = (*thresholdFlag)(nil)

// thresholdFlag is a pflag.Value accepting <warning>,<critical>.
// Malformed input is rejected while flags are parsed, before any
// check runs.
type thresholdFlag struct {
	raw  string
	pair threshold.Pair
	set  bool
}

func (f *thresholdFlag) String() string {
	return f.raw
}

func (f *thresholdFlag) Set(s string) error {
	if err := threshold.Validate(s); err != nil {
		return err
	}
	pair, err := threshold.Parse(s)
	if err != nil {
		return err
	}
	f.raw, f.pair, f.set = s, pair, true
	return nil
}

func (f *thresholdFlag) Type() string {
	return "warning,critical"
}
