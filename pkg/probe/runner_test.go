package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/vertti/hostcheck/pkg/check"
)

type fakeCheck struct {
	name   string
	status check.Status
	err    error
	runs   int
}

func (f *fakeCheck) Run(context.Context) check.Result {
	f.runs++
	return check.Result{Name: f.name, Status: f.status, Err: f.err}
}

type recorder struct {
	events []string
}

func (r *recorder) Start(name string)       { r.events = append(r.events, "start:"+name) }
func (r *recorder) Result(res check.Result) { r.events = append(r.events, "result:"+res.Name+"="+res.Status.String()) }
func (r *recorder) Notice(msg string)       { r.events = append(r.events, "notice:"+msg) }

func TestRunner_Order(t *testing.T) {
	disk := &fakeCheck{name: "disk", status: warn}
	memory := &fakeCheck{name: "memory", status: unk, err: errors.New("boom")}
	cpu := &fakeCheck{name: "cpu", status: ok}
	rec := &recorder{}

	r := Runner{
		Steps: []Step{
			{Name: "Disk", Checker: disk},
			{Name: "Memory", Checker: memory},
			{Name: "CPU", Checker: cpu},
		},
		Reporter: rec,
	}

	got := r.Run(context.Background())

	if got != unk {
		t.Errorf("Run() = %v, want UNKNOWN", got)
	}
	if disk.runs != 1 || memory.runs != 1 || cpu.runs != 1 {
		t.Errorf("runs = %d/%d/%d, want every check run once", disk.runs, memory.runs, cpu.runs)
	}

	want := []string{
		"start:Disk", "result:disk=WARNING",
		"start:Memory", "result:memory=UNKNOWN",
		"start:CPU", "result:cpu=OK",
	}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, rec.events[i], want[i])
		}
	}
}

func TestRunner_ShortCircuit(t *testing.T) {
	tests := []struct {
		name        string
		statuses    []check.Status
		wantRuns    []int
		wantOverall check.Status
	}{
		{"critical first stops all", []check.Status{crit, ok, ok}, []int{1, 0, 0}, crit},
		{"critical second stops cpu", []check.Status{ok, crit, warn}, []int{1, 1, 0}, crit},
		{"warning does not stop", []check.Status{warn, ok, ok}, []int{1, 1, 1}, warn},
		{"unknown does not stop", []check.Status{unk, warn, ok}, []int{1, 1, 1}, warn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checks := make([]*fakeCheck, len(tt.statuses))
			steps := make([]Step, len(tt.statuses))
			for i, s := range tt.statuses {
				checks[i] = &fakeCheck{name: "c", status: s}
				steps[i] = Step{Name: "C", Checker: checks[i]}
			}

			r := Runner{Steps: steps}
			got := r.Run(context.Background())

			if got != tt.wantOverall {
				t.Errorf("Run() = %v, want %v", got, tt.wantOverall)
			}
			for i, c := range checks {
				if c.runs != tt.wantRuns[i] {
					t.Errorf("check %d runs = %d, want %d", i, c.runs, tt.wantRuns[i])
				}
			}
		})
	}
}

func TestRunner_NoticeStep(t *testing.T) {
	rec := &recorder{}
	all := &fakeCheck{name: "disk:all", status: ok}

	r := Runner{
		Steps: []Step{
			{Name: "Disk", Checker: all},
			{Name: "Local Disk", Notice: "Skipping local disk check as all disk check is enabled..."},
		},
		Reporter: rec,
	}

	if got := r.Run(context.Background()); got != ok {
		t.Errorf("Run() = %v, want OK", got)
	}
	last := rec.events[len(rec.events)-1]
	if last != "notice:Skipping local disk check as all disk check is enabled..." {
		t.Errorf("last event = %q, want skip notice", last)
	}
}

func TestRunner_NoticeSuppressedAfterCritical(t *testing.T) {
	rec := &recorder{}
	r := Runner{
		Steps: []Step{
			{Name: "Disk", Checker: &fakeCheck{name: "disk:all", status: crit}},
			{Name: "Local Disk", Notice: "skipping"},
		},
		Reporter: rec,
	}

	r.Run(context.Background())

	for _, e := range rec.events {
		if e == "notice:skipping" {
			t.Error("notice printed after a critical result")
		}
	}
}

func TestRunner_WorstPolicy(t *testing.T) {
	r := Runner{
		Steps: []Step{
			{Name: "Disk", Checker: &fakeCheck{status: warn}},
			{Name: "Memory", Checker: &fakeCheck{status: unk}},
			{Name: "CPU", Checker: &fakeCheck{status: warn}},
		},
		Policy: PolicyWorst,
	}

	if got := r.Run(context.Background()); got != unk {
		t.Errorf("Run() = %v, want UNKNOWN", got)
	}
}

func TestRunner_Empty(t *testing.T) {
	r := Runner{}
	if got := r.Run(context.Background()); got != ok {
		t.Errorf("Run() = %v, want OK", got)
	}
}
