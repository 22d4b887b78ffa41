// internal/runner/runner.go
// Package runner executes variants against the shared input and reduces the
// timing samples each one produces.
package runner

import (
	"time"

	"golang.org/x/perf/benchmath"

	"github.com/mwiater/stadion/internal/logging"
	"github.com/mwiater/stadion/internal/variant"
)

// summaryConfidence is the confidence level used for benchmath summaries.
const summaryConfidence = 0.95

// Progress is invoked after each completed trial.
type Progress func(variantName string, trial, total int)

// Runner times repeated invocations of a variant. Warmup invocations run
// first and are excluded from the sample set, so one-time compilation and
// caching costs do not penalize a variant.
type Runner struct {
	Trials  int
	Warmup  int
	Debug   bool
	OnTrial Progress
}

// New returns a Runner with the given trial and warmup counts.
func New(trials, warmup int) *Runner {
	if trials < 1 {
		trials = 1
	}
	if warmup < 0 {
		warmup = 0
	}
	return &Runner{Trials: trials, Warmup: warmup}
}

// Run executes v against data and returns the aggregated result. Return
// values are discarded except for the last, which the caller may use for
// equivalence checks.
func (r *Runner) Run(suiteName string, v variant.Variant, data []float64) *VariantResult {
	for i := 0; i < r.Warmup; i++ {
		_ = v.Fn(data)
	}

	result := &VariantResult{
		VariantName: v.Name,
		TrialCount:  r.Trials,
		Trials:      make([]TrialResult, 0, r.Trials),
	}

	var value float64
	for i := 0; i < r.Trials; i++ {
		start := time.Now()
		value = v.Fn(data)
		elapsed := time.Since(start)

		result.Trials = append(result.Trials, TrialResult{Trial: i + 1, Elapsed: elapsed})
		if r.Debug {
			logging.LogTrial(suiteName, v.Name, i+1, elapsed)
		}
		if r.OnTrial != nil {
			r.OnTrial(v.Name, i+1, r.Trials)
		}
	}
	result.Value = value

	aggregate(result)
	return result
}

// aggregate reduces the trial samples to min, max, mean, and a benchmath
// summary of the sample distribution.
func aggregate(result *VariantResult) {
	if len(result.Trials) == 0 {
		return
	}

	result.Min = result.Trials[0].Elapsed
	result.Max = result.Trials[0].Elapsed

	var total time.Duration
	seconds := make([]float64, 0, len(result.Trials))
	for _, trial := range result.Trials {
		total += trial.Elapsed
		seconds = append(seconds, trial.Elapsed.Seconds())

		if trial.Elapsed < result.Min {
			result.Min = trial.Elapsed
		}
		if trial.Elapsed > result.Max {
			result.Max = trial.Elapsed
		}
	}
	result.Mean = time.Duration(float64(total) / float64(len(result.Trials)))

	sample := benchmath.NewSample(seconds, &benchmath.DefaultThresholds)
	summary := benchmath.AssumeNothing.Summary(sample, summaryConfidence)
	result.CenterMs = summary.Center * 1000
	result.LoMs = summary.Lo * 1000
	result.HiMs = summary.Hi * 1000
}
