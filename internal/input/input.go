// internal/input/input.go
// Package input produces the shared numeric buffers benchmarked variants run against.
package input

import "math/rand/v2"

// Buffer is a fixed-length sequence of uniformly distributed values generated
// once per run and shared read-only by every variant.
type Buffer struct {
	data []float64
	seed uint64
}

// Generate builds a buffer of size uniformly distributed values in [0, 1).
// The same seed always yields the same buffer.
func Generate(size int, seed uint64) *Buffer {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	data := make([]float64, size)
	for i := range data {
		data[i] = rng.Float64()
	}
	return &Buffer{data: data, seed: seed}
}

// Data returns the underlying values. Callers must treat the slice as
// read-only; every variant shares it.
func (b *Buffer) Data() []float64 {
	return b.data
}

// Len returns the number of values in the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Seed returns the seed the buffer was generated from.
func (b *Buffer) Seed() uint64 {
	return b.seed
}

// MatrixDim returns the side length of the largest square row-major matrix
// that n values can back; values past dim*dim are ignored. Zero means the
// buffer is too small for any matrix view.
func MatrixDim(n int) int {
	dim := 0
	for (dim+1)*(dim+1) <= n {
		dim++
	}
	return dim
}
