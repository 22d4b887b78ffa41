// internal/interp/yaegi.go
// Package interp builds variants that run inside embedded interpreters, so
// interpreted implementations compete against native ones in the same set.
package interp

import (
	"fmt"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/mwiater/stadion/internal/variant"
)

// GoVariant evaluates src in a yaegi interpreter and wraps the exported
// symbol (e.g. "kernels.Sum") as a variant. The symbol must have the shape
// func([]float64) float64.
func GoVariant(name, src, symbol string) (variant.Variant, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return variant.Variant{}, fmt.Errorf("yaegi stdlib: %w", err)
	}
	if _, err := i.Eval(src); err != nil {
		return variant.Variant{}, fmt.Errorf("yaegi eval %s: %w", name, err)
	}
	v, err := i.Eval(symbol)
	if err != nil {
		return variant.Variant{}, fmt.Errorf("yaegi lookup %s: %w", symbol, err)
	}
	fn, ok := v.Interface().(func([]float64) float64)
	if !ok {
		return variant.Variant{}, fmt.Errorf("yaegi symbol %s is %T, want func([]float64) float64", symbol, v.Interface())
	}
	return variant.Variant{Name: name, Fn: fn}, nil
}
