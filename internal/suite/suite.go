// internal/suite/suite.go
// Package suite defines the benchmark suites: fixed variant sets that compare
// native Go, interpreted, and C-compiled implementations of one computation.
package suite

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/mwiater/stadion/internal/cc"
	"github.com/mwiater/stadion/internal/ffi"
	"github.com/mwiater/stadion/internal/variant"
)

// Definition describes one suite and knows how to assemble its variant set.
type Definition struct {
	Name        string
	Description string
	Quantity    string
	build       func(b *builder) error
}

var registry = map[string]*Definition{}

func register(def *Definition) {
	registry[def.Name] = def
}

// Names returns the registered suite names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the definition for name.
func Lookup(name string) (*Definition, error) {
	def, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown suite %q (available: %v)", name, Names())
	}
	return def, nil
}

// Built is an assembled suite: the variant set plus the compiled artifacts
// and loaded modules backing its native variants. Close releases everything;
// lifetime is scoped to the run.
type Built struct {
	Definition *Definition
	Set        *variant.Set
	modules    []*ffi.Module
	artifacts  []*cc.Artifact
}

// Close unloads every native module and removes its artifact.
func (b *Built) Close() error {
	var errs []error
	for _, module := range b.modules {
		if err := module.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	b.modules = nil
	for _, artifact := range b.artifacts {
		if err := artifact.Remove(); err != nil {
			errs = append(errs, err)
		}
	}
	b.artifacts = nil
	return errors.Join(errs...)
}

// Build assembles the suite's variants. Compilation or binding failures are
// fatal: the partially built suite is released and the error propagates.
func (d *Definition) Build(ctx context.Context, compiler *cc.Compiler) (*Built, error) {
	b := &builder{
		ctx:      ctx,
		compiler: compiler,
		built:    &Built{Definition: d},
	}
	if err := d.build(b); err != nil {
		_ = b.built.Close()
		return nil, fmt.Errorf("build suite %s: %w", d.Name, err)
	}
	b.built.Set = variant.NewSet(d.Quantity, b.variants...)
	return b.built, nil
}

// builder accumulates variants and owns native resources while a suite is
// being assembled.
type builder struct {
	ctx      context.Context
	compiler *cc.Compiler
	built    *Built
	variants []variant.Variant
}

// add appends an already-callable variant.
func (b *builder) add(v variant.Variant, err error) error {
	if err != nil {
		return err
	}
	b.variants = append(b.variants, v)
	return nil
}

// addGo appends a plain Go variant.
func (b *builder) addGo(name string, fn variant.Fn) {
	b.variants = append(b.variants, variant.Variant{Name: name, Fn: fn})
}

// addNative renders the kernel template, compiles it with the given flags,
// loads the shared object, and binds the symbol as a variant. Each call
// produces its own artifact and module, one per flag set.
func (b *builder) addNative(name, templateName, symbol string, data map[string]any, optFlags ...string) error {
	if data == nil {
		data = map[string]any{}
	}
	data["Symbol"] = symbol

	source, err := cc.RenderKernel(templateName, data)
	if err != nil {
		return err
	}

	artifact, err := b.compiler.Compile(b.ctx, source, symbol, optFlags...)
	if err != nil {
		return err
	}
	b.built.artifacts = append(b.built.artifacts, artifact)

	module, err := ffi.Open(artifact.Path)
	if err != nil {
		return err
	}
	b.built.modules = append(b.built.modules, module)

	fn, err := module.Func(symbol)
	if err != nil {
		return err
	}
	b.variants = append(b.variants, variant.Variant{Name: name, Fn: fn})
	return nil
}
