package core

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the precision parameter of every primitive in this module.
// Any type whose underlying type is float32 or float64 satisfies it.
type Float interface {
	constraints.Float
}

// Width identifies the floating-point width a type parameter resolves to.
type Width int

const (
	// WidthWide is the 64-bit IEEE 754 width (float64).
	WidthWide Width = iota

	// WidthNarrow is the 32-bit IEEE 754 width (float32).
	WidthNarrow
)

// String returns a human-readable name for the width.
func (w Width) String() string {
	switch w {
	case WidthWide:
		return "wide"
	case WidthNarrow:
		return "narrow"
	default:
		return "unknown"
	}
}

// Bits returns the storage size of the width in bits.
func (w Width) Bits() int {
	if w == WidthNarrow {
		return 32
	}
	return 64
}

// WidthOf reports the width T resolves to. Named types report the width of
// their underlying type.
func WidthOf[T Float]() Width {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return WidthNarrow
	}
	return WidthWide
}
