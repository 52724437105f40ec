package core

import "math"

// Comparison tolerances. Each is chosen relative to the width's own
// representable precision: the narrow value is far too loose for wide-width
// noise, and the wide value is below the narrow width's unit round-off.
const (
	WideEpsilon   = 1e-9
	NarrowEpsilon = 1e-5
)

// Table is the set of named constants for one floating-point width.
type Table[T Float] struct {
	Pi        T
	HalfPi    T // π/2
	QuarterPi T // π/4
	TwoPi     T // 2π

	// DegToRad is the number of radians per degree (π/180).
	DegToRad T
	// RadToDeg is the number of degrees per radian (180/π).
	RadToDeg T

	// Inf is positive infinity.
	Inf T

	// Epsilon is the tolerance of Equals, GreaterThan and LessThan.
	Epsilon T

	// MachineEpsilon is the distance from 1 to the next representable value.
	MachineEpsilon T

	// IntegralLimit is 2^(mantissa bits). Every value whose magnitude is at
	// least IntegralLimit is an integer.
	IntegralLimit T
}

var wide = Table[float64]{
	Pi:             3.14159265358979323846,
	HalfPi:         1.57079632679489661923,
	QuarterPi:      0.785398163397448309616,
	TwoPi:          6.28318530717958647692,
	DegToRad:       0.017453292519943295,
	RadToDeg:       57.295779513082323,
	Inf:            math.Inf(1),
	Epsilon:        WideEpsilon,
	MachineEpsilon: 2.220446049250313e-16,
	IntegralLimit:  4503599627370496, // 2^52
}

var narrow = Table[float32]{
	Pi:             3.1415927,
	HalfPi:         1.5707964,
	QuarterPi:      0.7853982,
	TwoPi:          6.2831855,
	DegToRad:       0.017453292,
	RadToDeg:       57.29578,
	Inf:            float32(math.Inf(1)),
	Epsilon:        NarrowEpsilon,
	MachineEpsilon: 1.1920929e-07,
	IntegralLimit:  8388608, // 2^23
}

// Constants returns the constant table for the width of T.
func Constants[T Float]() Table[T] {
	if WidthOf[T]() == WidthNarrow {
		return convertTable[T](narrow)
	}
	return convertTable[T](wide)
}

func convertTable[T, S Float](src Table[S]) Table[T] {
	return Table[T]{
		Pi:             T(src.Pi),
		HalfPi:         T(src.HalfPi),
		QuarterPi:      T(src.QuarterPi),
		TwoPi:          T(src.TwoPi),
		DegToRad:       T(src.DegToRad),
		RadToDeg:       T(src.RadToDeg),
		Inf:            T(src.Inf),
		Epsilon:        T(src.Epsilon),
		MachineEpsilon: T(src.MachineEpsilon),
		IntegralLimit:  T(src.IntegralLimit),
	}
}

// Epsilon returns the comparison tolerance for the width of T.
func Epsilon[T Float]() T {
	if WidthOf[T]() == WidthNarrow {
		return T(narrow.Epsilon)
	}
	return T(wide.Epsilon)
}

// MachineEpsilon returns the unit round-off for the width of T.
func MachineEpsilon[T Float]() T {
	if WidthOf[T]() == WidthNarrow {
		return T(narrow.MachineEpsilon)
	}
	return T(wide.MachineEpsilon)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}

// NaN returns an IEEE 754 "not-a-number" value of type T.
func NaN[T Float]() T {
	return T(math.NaN())
}
