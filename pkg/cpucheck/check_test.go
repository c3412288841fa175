package cpucheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vertti/hostcheck/pkg/check"
	"github.com/vertti/hostcheck/pkg/testutil"
	"github.com/vertti/hostcheck/pkg/threshold"
)

// mockSampler returns the queued values in order.
type mockSampler struct {
	values    []float64
	errAt     int // index that fails, -1 for none
	err       error
	calls     int
	intervals []time.Duration
}

func (m *mockSampler) Percent(_ context.Context, interval time.Duration) (float64, error) {
	i := m.calls
	m.calls++
	m.intervals = append(m.intervals, interval)
	if i == m.errAt {
		return 0, m.err
	}
	return m.values[i%len(m.values)], nil
}

func TestCPUCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		wantStatus check.Status
	}{
		{"idle", []float64{1, 2, 3, 2, 2}, check.StatusOK},
		{"spike does not warn", []float64{100, 10, 10, 10, 10}, check.StatusOK},
		{"average exactly warning", []float64{70, 70, 70, 70, 70}, check.StatusWarning},
		{"average between limits", []float64{80, 90, 75, 85, 70}, check.StatusWarning},
		{"average exactly critical", []float64{90, 90, 90, 90, 90}, check.StatusCritical},
		{"average above critical", []float64{95, 99, 100, 92, 97}, check.StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockSampler{values: tt.values, errAt: -1}
			c := Check{
				Thresholds: threshold.Pair{Warning: 70, Critical: 90},
				Sampler:    s,
			}

			result := c.Run(context.Background())

			if result.Status != tt.wantStatus {
				t.Errorf("status = %v, want %v (details: %v)", result.Status, tt.wantStatus, result.Details)
			}
			if s.calls != DefaultSamples {
				t.Errorf("samples taken = %d, want %d", s.calls, DefaultSamples)
			}
			for _, iv := range s.intervals {
				if iv != DefaultInterval {
					t.Errorf("interval = %v, want %v", iv, DefaultInterval)
				}
			}
		})
	}
}

func TestCPUCheck_Average(t *testing.T) {
	c := Check{
		Thresholds: threshold.Pair{Warning: 70, Critical: 90},
		Sampler:    &mockSampler{values: []float64{10, 20, 30, 40, 50}, errAt: -1},
	}

	result := c.Run(context.Background())

	if !testutil.ContainsDetail(result.Details, "Average CPU usage: 30.0") {
		t.Errorf("Details = %v, want average of 30.0", result.Details)
	}
	if !testutil.ContainsDetail(result.Details, "4 - CPU usage: 50.0") {
		t.Errorf("Details = %v, want per-sample lines", result.Details)
	}
}

func TestCPUCheck_CustomSampling(t *testing.T) {
	s := &mockSampler{values: []float64{50}, errAt: -1}
	c := Check{
		Thresholds: threshold.Pair{Warning: 70, Critical: 90},
		Samples:    2,
		Interval:   10 * time.Millisecond,
		Sampler:    s,
	}

	c.Run(context.Background())

	if s.calls != 2 {
		t.Errorf("samples taken = %d, want 2", s.calls)
	}
	if s.intervals[0] != 10*time.Millisecond {
		t.Errorf("interval = %v, want 10ms", s.intervals[0])
	}
}

func TestCPUCheck_Errors(t *testing.T) {
	t.Run("sampler error", func(t *testing.T) {
		boom := errors.New("/proc/stat unreadable")
		s := &mockSampler{values: []float64{99}, errAt: 2, err: boom}
		c := Check{Thresholds: threshold.Pair{Warning: 70, Critical: 90}, Sampler: s}

		result := c.Run(context.Background())

		if result.Status != check.StatusUnknown {
			t.Errorf("status = %v, want UNKNOWN", result.Status)
		}
		if !errors.Is(result.Err, boom) {
			t.Errorf("Err = %v, want wrapping %v", result.Err, boom)
		}
		if s.calls != 3 {
			t.Errorf("samples taken = %d, want sampling to stop at the failure", s.calls)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := &mockSampler{values: []float64{10}, errAt: -1}
		c := Check{Thresholds: threshold.Pair{Warning: 70, Critical: 90}, Sampler: s}

		result := c.Run(ctx)

		if result.Status != check.StatusUnknown {
			t.Errorf("status = %v, want UNKNOWN", result.Status)
		}
		if !errors.Is(result.Err, context.Canceled) {
			t.Errorf("Err = %v, want context.Canceled", result.Err)
		}
		if s.calls != 0 {
			t.Errorf("samples taken = %d, want 0", s.calls)
		}
	})
}
