package scalar

import (
	"sync/atomic"

	"github.com/cwbudde/algo-scalar/core"
	"github.com/cwbudde/algo-scalar/evalmode"
	"github.com/cwbudde/algo-scalar/internal/kernel/registry"
)

// binding caches the family resolved for one environment. The environment is
// compared on every call so that evalmode.SetForced takes effect immediately.
type binding struct {
	env   evalmode.Environment
	entry *registry.Entry
}

var active atomic.Pointer[binding]

func resolve() *registry.Entry {
	env := evalmode.Detect()
	if b := active.Load(); b != nil && b.env == env {
		return b.entry
	}

	entry := registry.Global.Lookup(env)
	if entry == nil {
		panic("scalar: no kernel family registered")
	}
	active.Store(&binding{env: env, entry: entry})
	return entry
}

// ActiveMode reports the evaluation mode the package-level functions use.
func ActiveMode() evalmode.Mode {
	return resolve().Mode
}

// Default returns the evaluator selected by the environment.
func Default[T core.Float]() Evaluator[T] {
	return registered[T]{entry: resolve()}
}

// registered evaluates with a registry entry, picking the table that matches
// the width of T.
type registered[T core.Float] struct {
	entry *registry.Entry
}

func narrow[T core.Float]() bool {
	return core.WidthOf[T]() == core.WidthNarrow
}

func (r registered[T]) Mode() evalmode.Mode { return r.entry.Mode }

func (r registered[T]) Sqrt(value T) (T, error) {
	if err := checkSqrt(value); err != nil {
		return 0, err
	}
	if narrow[T]() {
		return T(r.entry.Narrow.Sqrt(float32(value))), nil
	}
	return T(r.entry.Wide.Sqrt(float64(value))), nil
}

func (r registered[T]) Pow(base T, exponent int) T {
	if narrow[T]() {
		return T(r.entry.Narrow.Pow(float32(base), exponent))
	}
	return T(r.entry.Wide.Pow(float64(base), exponent))
}

func (r registered[T]) Factorial(n uint) T {
	if narrow[T]() {
		return T(r.entry.Narrow.Factorial(n))
	}
	return T(r.entry.Wide.Factorial(n))
}

func (r registered[T]) Mod(value, divisor T) (T, error) {
	if err := checkMod(divisor); err != nil {
		return 0, err
	}
	if narrow[T]() {
		return T(r.entry.Narrow.Mod(float32(value), float32(divisor))), nil
	}
	return T(r.entry.Wide.Mod(float64(value), float64(divisor))), nil
}

func (r registered[T]) Sin(value T) T {
	if narrow[T]() {
		return T(r.entry.Narrow.Sin(float32(value)))
	}
	return T(r.entry.Wide.Sin(float64(value)))
}

func (r registered[T]) Cos(value T) T {
	if narrow[T]() {
		return T(r.entry.Narrow.Cos(float32(value)))
	}
	return T(r.entry.Wide.Cos(float64(value)))
}

func (r registered[T]) Tan(value T) T {
	if narrow[T]() {
		return T(r.entry.Narrow.Tan(float32(value)))
	}
	return T(r.entry.Wide.Tan(float64(value)))
}
