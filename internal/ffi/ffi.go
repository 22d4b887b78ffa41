//go:build darwin || linux || freebsd

// internal/ffi/ffi.go
// Package ffi binds exported symbols in compiled shared objects to Go
// functions matching the kernel ABI: double f(size_t n, const double *data).
package ffi

import (
	"fmt"
	"os"

	"github.com/ebitengine/purego"
)

// Kernel is a bound native kernel. The input buffer is passed by address and
// length; nothing is copied across the boundary.
type Kernel func(n uintptr, data *float64) float64

// Module owns a handle to a loaded shared object. Release it with Close once
// the run is over; lifetime is scoped to the benchmark run, not process exit.
type Module struct {
	handle uintptr
	path   string
}

// Open loads the shared object at path. The artifact must already exist and
// be loadable; a missing or unloadable file is a configuration error, never
// retried.
func Open(path string) (*Module, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open module %q: %w", path, err)
	}
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("open module %q: %w", path, err)
	}
	return &Module{handle: handle, path: path}, nil
}

// Path returns the file the module was loaded from.
func (m *Module) Path() string {
	return m.path
}

// Close releases the loaded module. Safe to call once per module.
func (m *Module) Close() error {
	if m.handle == 0 {
		return nil
	}
	err := purego.Dlclose(m.handle)
	m.handle = 0
	if err != nil {
		return fmt.Errorf("close module %q: %w", m.path, err)
	}
	return nil
}

// Kernel binds the named exported symbol. A missing symbol is fatal to the
// run configuration and surfaces as an error here rather than a panic later.
func (m *Module) Kernel(symbol string) (Kernel, error) {
	if m.handle == 0 {
		return nil, fmt.Errorf("bind %q: module %q is closed", symbol, m.path)
	}
	if _, err := purego.Dlsym(m.handle, symbol); err != nil {
		return nil, fmt.Errorf("bind %q in %q: %w", symbol, m.path, err)
	}
	var kernel Kernel
	purego.RegisterLibFunc(&kernel, m.handle, symbol)
	return kernel, nil
}

// Func binds the named symbol and wraps it as a slice-taking function. An
// empty buffer passes a nil pointer with length zero.
func (m *Module) Func(symbol string) (func(data []float64) float64, error) {
	kernel, err := m.Kernel(symbol)
	if err != nil {
		return nil, err
	}
	return func(data []float64) float64 {
		if len(data) == 0 {
			return kernel(0, nil)
		}
		return kernel(uintptr(len(data)), &data[0])
	}, nil
}
