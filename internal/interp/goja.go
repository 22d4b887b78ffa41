// internal/interp/goja.go
package interp

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/mwiater/stadion/internal/variant"
)

// JSVariant evaluates src in a goja runtime and wraps the named global
// function as a variant. The function receives the shared buffer as an array
// and must return a number.
func JSVariant(name, src, fnName string) (variant.Variant, error) {
	rt := goja.New()
	if _, err := rt.RunString(src); err != nil {
		return variant.Variant{}, fmt.Errorf("goja eval %s: %w", name, err)
	}
	callable, ok := goja.AssertFunction(rt.Get(fnName))
	if !ok {
		return variant.Variant{}, fmt.Errorf("goja global %q is not a function", fnName)
	}
	return variant.Variant{Name: name, Fn: func(data []float64) float64 {
		if data == nil {
			data = []float64{}
		}
		result, err := callable(goja.Undefined(), rt.ToValue(data))
		if err != nil {
			// a failed call cannot yield a sample
			panic(fmt.Sprintf("goja call %s: %v", fnName, err))
		}
		return result.ToFloat()
	}}, nil
}
