// internal/suite/branch.go
package suite

import "github.com/mwiater/stadion/internal/interp"

// branchThreshold is the cutoff counted against; input values are uniform in
// [0, 1), so roughly half the buffer lands on each side.
const branchThreshold = 0.5

const yaegiBranchSrc = `
package kernels

func CountAbove(data []float64) float64 {
	count := 0.0
	for _, v := range data {
		if v > 0.5 {
			count++
		}
	}
	return count
}
`

const gojaBranchIfSrc = `
function countIf(data) {
	var count = 0;
	for (var i = 0; i < data.length; i++) {
		if (data[i] > 0.5) {
			count++;
		}
	}
	return count;
}
`

const gojaBranchTernarySrc = `
function countTernary(data) {
	var count = 0;
	for (var i = 0; i < data.length; i++) {
		count += data[i] > 0.5 ? 1 : 0;
	}
	return count;
}
`

func goCountIf(data []float64) float64 {
	var count float64
	for _, v := range data {
		if v > branchThreshold {
			count++
		}
	}
	return count
}

// goCountBranchless keeps the increment in a local so the compiler can lower
// the comparison to a conditional move instead of a branch.
func goCountBranchless(data []float64) float64 {
	var count int
	for _, v := range data {
		c := 0
		if v > branchThreshold {
			c = 1
		}
		count += c
	}
	return float64(count)
}

func init() {
	register(&Definition{
		Name:        "branch",
		Description: "Conditional counting: if/else vs ternary vs branchless, interpreted and compiled",
		Quantity:    "count of values above threshold",
		build: func(b *builder) error {
			b.addGo("go-if", goCountIf)
			b.addGo("go-branchless", goCountBranchless)

			if err := b.add(interp.GoVariant("yaegi-if", yaegiBranchSrc, "kernels.CountAbove")); err != nil {
				return err
			}
			if err := b.add(interp.JSVariant("goja-if", gojaBranchIfSrc, "countIf")); err != nil {
				return err
			}
			if err := b.add(interp.JSVariant("goja-ternary", gojaBranchTernarySrc, "countTernary")); err != nil {
				return err
			}

			if err := b.addNative("c-if-O2", "branch.c.tmpl", "branch_if_kernel", map[string]any{
				"Threshold":  "0.5",
				"Branchless": false,
			}, "-O2"); err != nil {
				return err
			}
			if err := b.addNative("c-branchless-O2", "branch.c.tmpl", "branch_nb_kernel", map[string]any{
				"Threshold":  "0.5",
				"Branchless": true,
			}, "-O2"); err != nil {
				return err
			}
			return nil
		},
	})
}
