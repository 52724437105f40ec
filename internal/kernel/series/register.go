package series

import (
	"github.com/cwbudde/algo-scalar/core"
	"github.com/cwbudde/algo-scalar/evalmode"
	"github.com/cwbudde/algo-scalar/internal/kernel/registry"
)

// init registers the series kernels with the kernel registry.
//
// The series family is always linked and serves as the fallback whenever the
// platform family is absent (purego builds) or disabled by the environment.
//
// Priority: 0 (lowest - used only when no platform kernels are permitted)
func init() {
	registry.Global.Register(registry.Entry{
		Name:     "series",
		Mode:     evalmode.ModeSeries,
		Priority: 0,

		Wide:   Ops[float64](),
		Narrow: Ops[float32](),
	})
}

// Ops returns the series kernel table for T.
func Ops[T core.Float]() registry.Ops[T] {
	return registry.Ops[T]{
		Sqrt:      Sqrt[T],
		Pow:       Pow[T],
		Factorial: Factorial[T],
		Mod:       Mod[T],
		Sin:       Sin[T],
		Cos:       Cos[T],
		Tan:       Tan[T],
	}
}
