//go:build !(darwin || linux || freebsd)

package ffi

import "errors"

// Kernel is a bound native kernel.
type Kernel func(n uintptr, data *float64) float64

// Module owns a handle to a loaded shared object.
type Module struct {
	path string
}

var errUnsupported = errors.New("native kernels are not supported on this platform")

// Open always fails on platforms without dlopen.
func Open(path string) (*Module, error) {
	return nil, errUnsupported
}

// Path returns the file the module was loaded from.
func (m *Module) Path() string { return m.path }

// Close releases the loaded module.
func (m *Module) Close() error { return nil }

// Kernel binds the named exported symbol.
func (m *Module) Kernel(symbol string) (Kernel, error) { return nil, errUnsupported }

// Func binds the named symbol and wraps it as a slice-taking function.
func (m *Module) Func(symbol string) (func(data []float64) float64, error) {
	return nil, errUnsupported
}
