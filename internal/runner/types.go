// internal/runner/types.go
package runner

import "time"

// TrialResult captures one timed invocation of a variant.
type TrialResult struct {
	Trial   int           `json:"trial"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// VariantResult aggregates every trial for one variant. Min is the headline
// statistic.
type VariantResult struct {
	VariantName string        `json:"variant_name"`
	TrialCount  int           `json:"trial_count"`
	Trials      []TrialResult `json:"trials"`
	Min         time.Duration `json:"min_ns"`
	Max         time.Duration `json:"max_ns"`
	Mean        time.Duration `json:"mean_ns"`
	CenterMs    float64       `json:"center_ms"`
	LoMs        float64       `json:"lo_ms"`
	HiMs        float64       `json:"hi_ms"`
	Value       float64       `json:"value"`
	Match       bool          `json:"equivalent"`
}

// MinMillis returns the headline statistic in milliseconds.
func (r *VariantResult) MinMillis() float64 {
	return float64(r.Min) / float64(time.Millisecond)
}

// MeanMillis returns the mean trial time in milliseconds.
func (r *VariantResult) MeanMillis() float64 {
	return float64(r.Mean) / float64(time.Millisecond)
}
