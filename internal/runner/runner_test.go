// internal/runner/runner_test.go
package runner

import (
	"testing"
	"time"

	"github.com/mwiater/stadion/internal/variant"
)

func TestRunCountsInvocations(t *testing.T) {
	t.Parallel()

	calls := 0
	v := variant.Variant{Name: "counter", Fn: func(data []float64) float64 {
		calls++
		return float64(calls)
	}}

	r := New(5, 2)
	result := r.Run("test", v, nil)

	if calls != 7 {
		t.Fatalf("expected 2 warmup + 5 trials = 7 calls, got %d", calls)
	}
	if len(result.Trials) != 5 {
		t.Fatalf("expected 5 recorded trials, got %d", len(result.Trials))
	}
	if result.TrialCount != 5 {
		t.Fatalf("expected trial count 5, got %d", result.TrialCount)
	}
	if result.Value != 7 {
		t.Fatalf("expected the last return value (7), got %g", result.Value)
	}
}

func TestRunStatistics(t *testing.T) {
	t.Parallel()

	work := make([]float64, 50_000)
	v := variant.Variant{Name: "sum", Fn: func(data []float64) float64 {
		var total float64
		for _, x := range work {
			total += x
		}
		return total
	}}

	r := New(8, 1)
	result := r.Run("test", v, nil)

	if result.Min < 0 {
		t.Fatalf("minimum statistic is negative: %v", result.Min)
	}
	if result.Min > result.Mean || result.Mean > result.Max {
		t.Fatalf("expected min <= mean <= max, got %v <= %v <= %v", result.Min, result.Mean, result.Max)
	}
	if result.CenterMs < result.MinMillis() || result.CenterMs > float64(result.Max)/float64(time.Millisecond) {
		t.Fatalf("summary center %g outside [%g, %g]", result.CenterMs, result.MinMillis(), float64(result.Max)/float64(time.Millisecond))
	}
	for i, trial := range result.Trials {
		if trial.Trial != i+1 {
			t.Fatalf("trial %d numbered %d", i, trial.Trial)
		}
		if trial.Elapsed < 0 {
			t.Fatalf("trial %d has negative elapsed time %v", i, trial.Elapsed)
		}
	}
}

func TestRunProgressCallback(t *testing.T) {
	t.Parallel()

	var seen []int
	r := New(3, 0)
	r.OnTrial = func(name string, trial, total int) {
		if name != "noop" {
			t.Fatalf("unexpected variant name %q", name)
		}
		if total != 3 {
			t.Fatalf("unexpected total %d", total)
		}
		seen = append(seen, trial)
	}

	r.Run("test", variant.Variant{Name: "noop", Fn: func([]float64) float64 { return 0 }}, nil)

	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Fatalf("unexpected progress sequence: %v", seen)
	}
}

func TestNewClampsArguments(t *testing.T) {
	t.Parallel()

	r := New(0, -3)
	if r.Trials != 1 {
		t.Fatalf("expected trials clamped to 1, got %d", r.Trials)
	}
	if r.Warmup != 0 {
		t.Fatalf("expected warmup clamped to 0, got %d", r.Warmup)
	}
}
