// internal/suite/sum.go
package suite

import "github.com/mwiater/stadion/internal/interp"

const yaegiSumSrc = `
package kernels

func Sum(data []float64) float64 {
	total := 0.0
	for _, v := range data {
		total += v
	}
	return total
}
`

const gojaSumSrc = `
function sum(data) {
	var total = 0.0;
	for (var i = 0; i < data.length; i++) {
		total += data[i];
	}
	return total;
}
`

func goSum(data []float64) float64 {
	var total float64
	for _, v := range data {
		total += v
	}
	return total
}

// goSumUnrolled accumulates four partial sums per pass. The reassociation
// changes rounding, so results agree with goSum only within tolerance.
func goSumUnrolled(data []float64) float64 {
	var s0, s1, s2, s3 float64
	n := len(data)
	i := 0

	for ; i+3 < n; i += 4 {
		s0 += data[i]
		s1 += data[i+1]
		s2 += data[i+2]
		s3 += data[i+3]
	}
	for ; i < n; i++ {
		s0 += data[i]
	}

	return s0 + s1 + s2 + s3
}

func init() {
	register(&Definition{
		Name:        "sum",
		Description: "Array summation: Go loops, interpreted loops, and C kernels across optimization levels",
		Quantity:    "array summation",
		build: func(b *builder) error {
			b.addGo("go-range", goSum)
			b.addGo("go-unrolled", goSumUnrolled)

			if err := b.add(interp.GoVariant("yaegi-go", yaegiSumSrc, "kernels.Sum")); err != nil {
				return err
			}
			if err := b.add(interp.JSVariant("goja-js", gojaSumSrc, "sum")); err != nil {
				return err
			}

			for _, opt := range []string{"-O0", "-O2", "-O3", "-Ofast"} {
				name := "c" + opt
				if err := b.addNative(name, "sum.c.tmpl", "sum_kernel", nil, opt); err != nil {
					return err
				}
			}
			return nil
		},
	})
}
