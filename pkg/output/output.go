package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/hostcheck/pkg/check"
)

var (
	green   = "\033[32m"
	yellow  = "\033[33m"
	red     = "\033[31m"
	magenta = "\033[35m"
	reset   = "\033[0m"
)

var rule = strings.Repeat("-", 20)

// SupportsColor reports whether stdout can render ANSI colors.
func SupportsColor() bool {
	return supportscolor.Stdout().SupportsColor
}

// Param is one line of the parameters header.
type Param struct {
	Label string
	Value string // empty prints as "None"
}

// Printer writes human-readable plugin output. It is not meant to be
// machine parsed; the exit code carries the status.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer writing to w.
func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Parameters prints the resolved thresholds for every check.
func (p *Printer) Parameters(params []Param) {
	p.println("Parameters provided:")
	p.println(rule)
	for _, param := range params {
		v := param.Value
		if v == "" {
			v = "None"
		}
		p.printf("%s: %s\n", param.Label, v)
	}
	p.println(rule)
}

// Start announces the check about to run.
func (p *Printer) Start(name string) {
	p.printf("Checking %s...\n", name)
}

// Result outputs a check result with colored status.
func (p *Printer) Result(r check.Result) {
	p.printf("%s[%s]%s %s\n", p.colorFor(r.Status), r.Status, p.reset(), r.Name)
	for _, d := range r.Details {
		p.printf("      %s\n", d)
	}

	if len(r.Summary) > 0 {
		p.println("")
		p.println("Summary:")
		p.println(rule)
		for _, s := range r.Summary {
			p.println(s)
		}
		p.println(rule)
		p.println("")
	}

	p.printf("- Returning code %d\n", r.Status.ExitCode())
}

// Notice prints an informational line.
func (p *Printer) Notice(msg string) {
	p.println(msg)
}

// Exit prints the final status line.
func (p *Printer) Exit(s check.Status) {
	p.printf("Exiting with code %d\n", s.ExitCode())
}

func (p *Printer) colorFor(s check.Status) string {
	if !p.color {
		return ""
	}
	switch s {
	case check.StatusOK:
		return green
	case check.StatusWarning:
		return yellow
	case check.StatusCritical:
		return red
	default:
		return magenta
	}
}

func (p *Printer) reset() string {
	if !p.color {
		return ""
	}
	return reset
}

func (p *Printer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}
