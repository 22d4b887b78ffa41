// internal/suite/loopbound.go
package suite

import "github.com/mwiater/stadion/internal/interp"

const yaegiLoopboundSrc = `
package kernels

func bound(data []float64) int {
	return len(data)
}

func SumCached(data []float64) float64 {
	total := 0.0
	limit := bound(data)
	for i := 0; i < limit; i++ {
		total += data[i]
	}
	return total
}

func SumCalled(data []float64) float64 {
	total := 0.0
	for i := 0; i < bound(data); i++ {
		total += data[i]
	}
	return total
}
`

//go:noinline
func bufferBound(data []float64) int {
	return len(data)
}

// goSumCachedBound evaluates the loop bound once before entering the loop.
func goSumCachedBound(data []float64) float64 {
	var total float64
	limit := bufferBound(data)
	for i := 0; i < limit; i++ {
		total += data[i]
	}
	return total
}

// goSumCalledBound re-evaluates the bound through a function call on every
// iteration.
func goSumCalledBound(data []float64) float64 {
	var total float64
	for i := 0; i < bufferBound(data); i++ {
		total += data[i]
	}
	return total
}

func init() {
	register(&Definition{
		Name:        "loopbound",
		Description: "Loop-bound caching: bound hoisted into a local vs re-evaluated every iteration",
		Quantity:    "array summation",
		build: func(b *builder) error {
			b.addGo("go-cached", goSumCachedBound)
			b.addGo("go-called", goSumCalledBound)

			if err := b.add(interp.GoVariant("yaegi-cached", yaegiLoopboundSrc, "kernels.SumCached")); err != nil {
				return err
			}
			if err := b.add(interp.GoVariant("yaegi-called", yaegiLoopboundSrc, "kernels.SumCalled")); err != nil {
				return err
			}

			if err := b.addNative("c-cached-O2", "loopbound.c.tmpl", "loop_cached_kernel", map[string]any{
				"Cached": true,
			}, "-O2"); err != nil {
				return err
			}
			if err := b.addNative("c-called-O0", "loopbound.c.tmpl", "loop_called_kernel", map[string]any{
				"Cached": false,
			}, "-O0"); err != nil {
				return err
			}
			return nil
		},
	})
}
