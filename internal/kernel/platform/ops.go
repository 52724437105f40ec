package platform

import (
	"github.com/cwbudde/algo-scalar/core"
	"github.com/cwbudde/algo-scalar/internal/kernel/registry"
)

// Ops returns the platform kernel table for T.
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
