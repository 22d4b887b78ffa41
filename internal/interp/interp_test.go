// internal/interp/interp_test.go
package interp

import (
	"testing"

	"github.com/mwiater/stadion/internal/variant"
)

const goSumSrc = `
package kernels

func Sum(data []float64) float64 {
	total := 0.0
	for _, v := range data {
		total += v
	}
	return total
}
`

const jsSumSrc = `
function sum(data) {
	var total = 0.0;
	for (var i = 0; i < data.length; i++) {
		total += data[i];
	}
	return total;
}
`

func TestGoVariant(t *testing.T) {
	t.Parallel()

	v, err := GoVariant("yaegi-sum", goSumSrc, "kernels.Sum")
	if err != nil {
		t.Fatalf("GoVariant: %v", err)
	}
	if v.Name != "yaegi-sum" {
		t.Fatalf("unexpected name %q", v.Name)
	}

	data := []float64{0.5, 0.25, 0.125}
	if got := v.Fn(data); !variant.WithinTolerance(got, 0.875, 1e-9) {
		t.Fatalf("interpreted sum = %g, want 0.875", got)
	}
	if got := v.Fn(nil); got != 0.0 {
		t.Fatalf("interpreted sum of empty input = %g, want exactly 0", got)
	}
}

func TestGoVariantErrors(t *testing.T) {
	t.Parallel()

	if _, err := GoVariant("bad", "package kernels\nfunc Sum(", "kernels.Sum"); err == nil {
		t.Fatal("expected an eval error for invalid source")
	}
	if _, err := GoVariant("missing", goSumSrc, "kernels.Nope"); err == nil {
		t.Fatal("expected a lookup error for a missing symbol")
	}

	wrongShape := `
package kernels

func Sum(n int) int { return n }
`
	if _, err := GoVariant("shape", wrongShape, "kernels.Sum"); err == nil {
		t.Fatal("expected a shape error for the wrong signature")
	}
}

func TestJSVariant(t *testing.T) {
	t.Parallel()

	v, err := JSVariant("goja-sum", jsSumSrc, "sum")
	if err != nil {
		t.Fatalf("JSVariant: %v", err)
	}

	data := []float64{0.5, 0.25, 0.125}
	if got := v.Fn(data); !variant.WithinTolerance(got, 0.875, 1e-9) {
		t.Fatalf("js sum = %g, want 0.875", got)
	}
	if got := v.Fn(nil); got != 0.0 {
		t.Fatalf("js sum of empty input = %g, want exactly 0", got)
	}
}

func TestJSVariantErrors(t *testing.T) {
	t.Parallel()

	if _, err := JSVariant("bad", "function sum(", "sum"); err == nil {
		t.Fatal("expected an eval error for invalid source")
	}
	if _, err := JSVariant("missing", jsSumSrc, "nope"); err == nil {
		t.Fatal("expected an error for a missing function")
	}
}
