// internal/variant/variant_test.go
package variant

import (
	"math"
	"testing"
)

func sum(data []float64) float64 {
	var total float64
	for _, v := range data {
		total += v
	}
	return total
}

func TestCheckEquivalence(t *testing.T) {
	t.Parallel()

	set := NewSet("sum",
		Variant{Name: "forward", Fn: sum},
		Variant{Name: "reverse", Fn: func(data []float64) float64 {
			var total float64
			for i := len(data) - 1; i >= 0; i-- {
				total += data[i]
			}
			return total
		}},
		Variant{Name: "broken", Fn: func(data []float64) float64 {
			return sum(data) + 1
		}},
	)

	data := []float64{0.25, 0.5, 0.125, 0.0625}
	checks := set.CheckEquivalence(data, 1e-9)
	if len(checks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(checks))
	}
	if !checks[0].Match || !checks[1].Match {
		t.Fatalf("agreeing variants flagged as mismatched: %+v", checks)
	}
	if checks[2].Match {
		t.Fatalf("broken variant should mismatch: %+v", checks[2])
	}
}

func TestCheckEquivalenceEmptyInput(t *testing.T) {
	t.Parallel()

	set := NewSet("sum",
		Variant{Name: "forward", Fn: sum},
		Variant{Name: "unrolled", Fn: func(data []float64) float64 {
			var s0, s1 float64
			i := 0
			for ; i+1 < len(data); i += 2 {
				s0 += data[i]
				s1 += data[i+1]
			}
			for ; i < len(data); i++ {
				s0 += data[i]
			}
			return s0 + s1
		}},
	)

	checks := set.CheckEquivalence(nil, 1e-9)
	for _, c := range checks {
		if c.Result != 0.0 {
			t.Fatalf("variant %s on empty input returned %g, want exactly 0", c.Name, c.Result)
		}
		if !c.Match {
			t.Fatalf("variant %s mismatched on empty input", c.Name)
		}
	}
}

func TestWithinTolerance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		a, b, tol float64
		want      bool
	}{
		{name: "exact zero", a: 0, b: 0, tol: 1e-9, want: true},
		{name: "tiny relative error", a: 1.0, b: 1.0 + 1e-12, tol: 1e-9, want: true},
		{name: "large relative error", a: 1.0, b: 1.0001, tol: 1e-9, want: false},
		{name: "scaled values", a: 1e12, b: 1e12 * (1 + 1e-10), tol: 1e-9, want: true},
		{name: "nan differs", a: math.NaN(), b: 1, tol: 1e-9, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := WithinTolerance(tt.a, tt.b, tt.tol); got != tt.want {
				t.Fatalf("WithinTolerance(%g,%g,%g)=%v want %v", tt.a, tt.b, tt.tol, got, tt.want)
			}
		})
	}
}
