package series

import "github.com/cwbudde/algo-scalar/core"

// Mod returns the remainder of value/divisor with the sign of value.
//
// The remainder is exact for every quotient, see remainder. A result whose
// magnitude is within epsilon of the divisor's is the wrap point seen through
// round-off and is returned as 0.
//
// Special cases are:
//
//	Mod(±Inf, d) = NaN
//	Mod(NaN, d) = Mod(v, NaN) = NaN
//	Mod(v, 0) = NaN
//	Mod(v, ±Inf) = v
//	Mod(v, d) = 0 when v is within epsilon of zero
func Mod[T core.Float](value, divisor T) T {
	switch {
	case !core.IsFinite(value) || divisor != divisor || divisor == 0:
		return core.NaN[T]()
	case !core.IsFinite(divisor):
		return value
	case core.Equals(value, 0):
		return 0
	}

	r := remainder(value, divisor)
	if core.Equals(core.Abs(r), core.Abs(divisor)) {
		return 0
	}
	return r
}

// remainder returns value - n*divisor for n = trunc(value/divisor) without
// forming the quotient. The divisor is doubled up to the magnitude of value
// and then subtracted back down one power of two at a time; every step
// subtracts a value no larger than the running remainder and less than twice
// as small, so each difference is exact.
//
// value and divisor must be finite and divisor non-zero.
func remainder[T core.Float](value, divisor T) T {
	r, d := value, divisor
	if r < 0 {
		r = -r
	}
	if d < 0 {
		d = -d
	}
	if r < d {
		return value
	}

	scaled := d
	for scaled <= r-scaled {
		scaled += scaled
	}
	for {
		if r >= scaled {
			r -= scaled
		}
		if scaled == d {
			break
		}
		scaled /= 2
	}

	if value < 0 {
		return -r
	}
	return r
}
