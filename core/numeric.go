package core

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T Float](x T) bool {
	return x-x == 0
}

// Equals reports whether |a-b| <= Epsilon[T]().
//
// The comparison is tolerant and therefore not transitive. It is false
// whenever either operand is NaN or infinite, including Equals(x, x) for
// such x.
func Equals[T Float](a, b T) bool {
	if !IsFinite(a) || !IsFinite(b) {
		return false
	}

	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= Epsilon[T]()
}

// GreaterThan reports whether a exceeds b by more than Epsilon[T]().
// It is false whenever either operand is NaN or infinite.
func GreaterThan[T Float](a, b T) bool {
	if !IsFinite(a) || !IsFinite(b) {
		return false
	}
	return a-b > Epsilon[T]()
}

// LessThan reports whether b exceeds a by more than Epsilon[T]().
// It is false whenever either operand is NaN or infinite.
func LessThan[T Float](a, b T) bool {
	if !IsFinite(a) || !IsFinite(b) {
		return false
	}
	return b-a > Epsilon[T]()
}

// Sign returns 0 when x is within epsilon of zero, -1 when x is below zero
// by more than epsilon, and 1 otherwise.
//
// Special cases are:
//
//	Sign(-Inf) = -1
//	Sign(+Inf) = 1
//	Sign(NaN) = 1
func Sign[T Float](x T) int {
	switch {
	case Equals(x, 0):
		return 0
	case LessThan(x, 0) || isNegInf(x):
		return -1
	default:
		return 1
	}
}

// Abs returns -x when LessThan(x, 0), otherwise x. Values within epsilon
// below zero are returned unchanged.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
func Abs[T Float](x T) T {
	if LessThan(x, 0) || isNegInf(x) {
		return -x
	}
	return x
}

func isNegInf[T Float](x T) bool {
	return x < 0 && !IsFinite(x)
}
