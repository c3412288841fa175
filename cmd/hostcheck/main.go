package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// exitUsage is returned for invalid invocations. It must stay clear of
// the 0-3 range that carries the check status.
const exitUsage = 64

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps the result of Execute to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.status.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitUsage
}

var rootCmd = &cobra.Command{
	Use:   "hostcheck",
	Short: "Nagios plugin checking disk, memory and CPU usage",
	Long: `hostcheck samples disk, memory and CPU utilization and reports the
result through its exit code: 0 OK, 1 WARNING, 2 CRITICAL, 3 UNKNOWN.

Each check is enabled by passing its <warning>,<critical> percentages.
Checks run in order disk, memory, CPU and stop once one is CRITICAL.

Examples:
  hostcheck --alldisk 90,95                  # every mounted filesystem
  hostcheck --localdisk 90,95 --memory 80,90 # local filesystems and memory
  hostcheck --disk 85,95 --cpu 90,98         # stop at the first full disk
  HOSTCHECK_MEMORY=80,90 hostcheck           # thresholds from the environment`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE:          runProbe,
}
