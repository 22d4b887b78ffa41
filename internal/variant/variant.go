// internal/variant/variant.go
// Package variant models the alternative implementations a suite compares.
package variant

import "math"

// Fn is one implementation of a suite's computation. Every variant in a set
// receives the same shared buffer and returns a scalar result.
type Fn func(data []float64) float64

// Variant is a named implementation of a shared computation.
type Variant struct {
	Name string
	Fn   Fn
}

// Set is an ordered, fixed list of variants computing the same logical
// quantity. The first variant acts as the equivalence baseline.
type Set struct {
	Quantity string
	Variants []Variant
}

// NewSet builds a set computing the named quantity.
func NewSet(quantity string, variants ...Variant) *Set {
	return &Set{Quantity: quantity, Variants: variants}
}

// Equivalence is the outcome of comparing one variant's result against the
// set's baseline.
type Equivalence struct {
	Name     string
	Result   float64
	Baseline float64
	Match    bool
}

// CheckEquivalence runs every variant against data once and compares each
// result to the first variant's within the given relative tolerance. A
// mismatch flags a defect in the benchmark itself, not in the variant under
// test, so callers report it rather than abort.
func (s *Set) CheckEquivalence(data []float64, tolerance float64) []Equivalence {
	if len(s.Variants) == 0 {
		return nil
	}

	baseline := s.Variants[0].Fn(data)
	checks := make([]Equivalence, 0, len(s.Variants))
	for _, v := range s.Variants {
		result := v.Fn(data)
		checks = append(checks, Equivalence{
			Name:     v.Name,
			Result:   result,
			Baseline: baseline,
			Match:    WithinTolerance(result, baseline, tolerance),
		})
	}
	return checks
}

// WithinTolerance reports whether a and b agree within the relative tolerance.
// Exact equality short-circuits so zero results compare cleanly.
func WithinTolerance(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= tolerance*scale
}
