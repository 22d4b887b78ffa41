// internal/suite/matrix.go
package suite

import "github.com/mwiater/stadion/internal/input"

func goSumRowMajor(data []float64) float64 {
	dim := input.MatrixDim(len(data))
	var total float64
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			total += data[r*dim+c]
		}
	}
	return total
}

func goSumColMajor(data []float64) float64 {
	dim := input.MatrixDim(len(data))
	var total float64
	for c := 0; c < dim; c++ {
		for r := 0; r < dim; r++ {
			total += data[r*dim+c]
		}
	}
	return total
}

func init() {
	register(&Definition{
		Name:        "matrix",
		Description: "Row-major vs column-major traversal sums over the n×n view of the buffer",
		Quantity:    "matrix traversal sum",
		build: func(b *builder) error {
			b.addGo("go-rows", goSumRowMajor)
			b.addGo("go-cols", goSumColMajor)

			// Each traversal/flag pair gets its own artifact; -O3 and -Ofast
			// are never bound to the same compilation.
			for _, opt := range []string{"-O3", "-Ofast"} {
				if err := b.addNative("c-rows"+opt, "matrix.c.tmpl", "matrix_rows_kernel", map[string]any{
					"RowMajor": true,
				}, opt); err != nil {
					return err
				}
				if err := b.addNative("c-cols"+opt, "matrix.c.tmpl", "matrix_cols_kernel", map[string]any{
					"RowMajor": false,
				}, opt); err != nil {
					return err
				}
			}
			return nil
		},
	})
}
