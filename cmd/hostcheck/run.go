package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/hostcheck/pkg/check"
	"github.com/vertti/hostcheck/pkg/config"
	"github.com/vertti/hostcheck/pkg/cpucheck"
	"github.com/vertti/hostcheck/pkg/diskcheck"
	"github.com/vertti/hostcheck/pkg/logging"
	"github.com/vertti/hostcheck/pkg/memcheck"
	"github.com/vertti/hostcheck/pkg/output"
	"github.com/vertti/hostcheck/pkg/probe"
)

var (
	allDiskLimits   thresholdFlag
	localDiskLimits thresholdFlag
	diskLimits      thresholdFlag
	memoryLimits    thresholdFlag
	cpuLimits       thresholdFlag

	worstWins        bool
	strictThresholds bool
	noColor          bool
	logLevel         string
)

func init() {
	f := rootCmd.Flags()
	f.VarP(&allDiskLimits, "alldisk", "a",
		"enable all disks check and specify warning and critical values (e.g. 90,95)")
	f.VarP(&localDiskLimits, "localdisk", "l",
		"enable local disk check and specify warning and critical values (e.g. 90,95)")
	f.VarP(&diskLimits, "disk", "d",
		"enable local disk check that stops at the first critical filesystem (e.g. 90,95)")
	f.VarP(&memoryLimits, "memory", "m",
		"enable memory check and specify warning and critical values (e.g. 90,95)")
	f.VarP(&cpuLimits, "cpu", "c",
		"enable CPU check and specify warning and critical values (e.g. 90,95)")
	f.BoolVar(&worstWins, "worst-wins", false,
		"report the most severe status instead of the last non-OK one")
	f.BoolVar(&strictThresholds, "strict-thresholds", false,
		"reject thresholds whose warning value is above the critical value")
	f.BoolVar(&noColor, "no-color", false, "disable colored output")
	f.StringVar(&logLevel, "log-level", "warn", "diagnostic log level on stderr (debug, info, warn, error)")
}

// statusError carries a non-OK plugin status out of Execute.
type statusError struct {
	status check.Status
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %s", e.status)
}

// sources are the OS metric providers used by the checks.
type sources struct {
	disk   diskcheck.Reader
	memory memcheck.Reader
	cpu    cpucheck.Sampler
}

// newSources is replaced in tests.
var newSources = func() sources {
	return sources{
		disk:   &diskcheck.GopsutilReader{},
		memory: &memcheck.GopsutilReader{},
		cpu:    &cpucheck.GopsutilSampler{},
	}
}

func runProbe(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	if err := applyEnvironment(cmd); err != nil {
		return err
	}
	if err := requireAtMostOne(
		flagSet{"--disk", diskLimits.set},
		flagSet{"--alldisk", allDiskLimits.set},
	); err != nil {
		return err
	}
	if err := requireAtMostOne(
		flagSet{"--disk", diskLimits.set},
		flagSet{"--localdisk", localDiskLimits.set},
	); err != nil {
		return err
	}
	if strictThresholds {
		if err := requireOrdered(
			namedThreshold{"--alldisk", &allDiskLimits},
			namedThreshold{"--localdisk", &localDiskLimits},
			namedThreshold{"--disk", &diskLimits},
			namedThreshold{"--memory", &memoryLimits},
			namedThreshold{"--cpu", &cpuLimits},
		); err != nil {
			return err
		}
	}

	color := !noColor && output.SupportsColor()
	logger, err := logging.New(cmd.ErrOrStderr(), logLevel, color)
	if err != nil {
		return err
	}
	ctx := logger.WithContext(cmd.Context())

	printer := output.New(cmd.OutOrStdout(), color)
	printer.Parameters([]output.Param{
		{Label: "All Disk", Value: allDiskLimits.raw},
		{Label: "Local Disk", Value: localDiskLimits.raw},
		{Label: "Disk", Value: diskLimits.raw},
		{Label: "Memory", Value: memoryLimits.raw},
		{Label: "CPU", Value: cpuLimits.raw},
	})

	policy := probe.PolicyLastNonOK
	if worstWins {
		policy = probe.PolicyWorst
	}

	runner := &probe.Runner{
		Steps:    buildPlan(newSources()),
		Policy:   policy,
		Reporter: printer,
	}
	status := runner.Run(ctx)

	printer.Exit(status)
	logger.Debug().Stringer("status", status).Stringer("policy", policy).Msg("probe finished")

	if status != check.StatusOK {
		return &statusError{status: status}
	}
	return nil
}

// applyEnvironment fills every option not given on the command line from
// its HOSTCHECK_* variable.
func applyEnvironment(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for _, t := range []struct {
		name  string
		value string
		flag  *thresholdFlag
	}{
		{"alldisk", cfg.AllDisk, &allDiskLimits},
		{"localdisk", cfg.LocalDisk, &localDiskLimits},
		{"disk", cfg.Disk, &diskLimits},
		{"memory", cfg.Memory, &memoryLimits},
		{"cpu", cfg.CPU, &cpuLimits},
	} {
		if flags.Changed(t.name) || t.value == "" {
			continue
		}
		if err := t.flag.Set(t.value); err != nil {
			return fmt.Errorf("invalid %s value from environment: %w", t.name, err)
		}
	}

	if !flags.Changed("worst-wins") {
		worstWins = cfg.WorstWins
	}
	if !flags.Changed("strict-thresholds") {
		strictThresholds = cfg.StrictThresholds
	}
	if !flags.Changed("no-color") {
		noColor = cfg.NoColor
	}
	if !flags.Changed("log-level") {
		logLevel = cfg.LogLevel
	}
	return nil
}

// buildPlan turns the enabled checks into runner steps in the fixed
// disk, memory, CPU order.
func buildPlan(src sources) []probe.Step {
	var steps []probe.Step

	if allDiskLimits.set {
		steps = append(steps, probe.Step{
			Name: "Disk",
			Checker: &diskcheck.Check{
				Name:       "disk:all",
				Thresholds: allDiskLimits.pair,
				All:        true,
				Mode:       diskcheck.ModeSummary,
				Reader:     src.disk,
			},
		})
	}

	if localDiskLimits.set {
		if allDiskLimits.set {
			steps = append(steps, probe.Step{
				Name:   "Local Disk",
				Notice: "Skipping local disk check as all disk check is enabled...",
			})
		} else {
			steps = append(steps, probe.Step{
				Name: "Disk",
				Checker: &diskcheck.Check{
					Name:       "disk:local",
					Thresholds: localDiskLimits.pair,
					Mode:       diskcheck.ModeSummary,
					Reader:     src.disk,
				},
			})
		}
	}

	if diskLimits.set {
		steps = append(steps, probe.Step{
			Name: "Disk",
			Checker: &diskcheck.Check{
				Name:       "disk",
				Thresholds: diskLimits.pair,
				Mode:       diskcheck.ModeEscalate,
				Reader:     src.disk,
			},
		})
	}

	if memoryLimits.set {
		steps = append(steps, probe.Step{
			Name:    "Memory",
			Checker: &memcheck.Check{Thresholds: memoryLimits.pair, Reader: src.memory},
		})
	}

	if cpuLimits.set {
		steps = append(steps, probe.Step{
			Name:    "CPU",
			Checker: &cpucheck.Check{Thresholds: cpuLimits.pair, Sampler: src.cpu},
		})
	}

	return steps
}
