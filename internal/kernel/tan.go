// Package kernel holds rules shared by every kernel family.
package kernel

import "github.com/cwbudde/algo-scalar/core"

// TanSpecialCase resolves the inputs whose tangent is fixed regardless of the
// kernel family, using that family's mod. It reports ok == false when value
// has to be computed.
//
// NaN and ±Inf yield NaN. Tolerant multiples of π yield 0. Other tolerant
// multiples of π/2 are singularities and yield NaN; they are caught here
// because a ratio of sine and cosine would give a large but finite value.
func TanSpecialCase[T core.Float](value T, mod func(value, divisor T) T) (result T, ok bool) {
	if !core.IsFinite(value) {
		return core.NaN[T](), true
	}

	c := core.Constants[T]()
	if core.Equals(mod(value, c.Pi), 0) {
		return 0, true
	}

	if !core.Equals(value, 0) && core.Equals(mod(value, c.HalfPi), 0) {
		return core.NaN[T](), true
	}

	return 0, false
}
