package scalar

import (
	"github.com/cwbudde/algo-scalar/core"
	"github.com/cwbudde/algo-scalar/evalmode"
	"github.com/cwbudde/algo-scalar/internal/kernel/platform"
	"github.com/cwbudde/algo-scalar/internal/kernel/series"
)

// Evaluator is a set of primitives bound to one evaluation mode.
//
// Series and Platform are the two implementations; Default returns the one
// selected by the environment. Code that should be generic over the mode can
// take an Evaluator or use it as a constraint:
//
//	func Hypot[T core.Float, E scalar.Evaluator[T]](e E, x, y T) (T, error) {
//		return e.Sqrt(x*x + y*y)
//	}
type Evaluator[T core.Float] interface {
	// Mode reports the kernel family behind the evaluator.
	Mode() evalmode.Mode

	Sqrt(value T) (T, error)
	Pow(base T, exponent int) T
	Factorial(n uint) T
	Mod(value, divisor T) (T, error)
	Sin(value T) T
	Cos(value T) T
	Tan(value T) T
}

// Series evaluates with the self-contained series kernels.
type Series[T core.Float] struct{}

// Platform evaluates with the platform math library.
type Platform[T core.Float] struct{}

var (
	_ Evaluator[float64] = Series[float64]{}
	_ Evaluator[float32] = Platform[float32]{}
)

func (Series[T]) Mode() evalmode.Mode { return evalmode.ModeSeries }

func (Series[T]) Sqrt(value T) (T, error) {
	if err := checkSqrt(value); err != nil {
		return 0, err
	}
	return series.Sqrt(value), nil
}

func (Series[T]) Pow(base T, exponent int) T { return series.Pow(base, exponent) }

func (Series[T]) Factorial(n uint) T { return series.Factorial[T](n) }

func (Series[T]) Mod(value, divisor T) (T, error) {
	if err := checkMod(divisor); err != nil {
		return 0, err
	}
	return series.Mod(value, divisor), nil
}

func (Series[T]) Sin(value T) T { return series.Sin(value) }

func (Series[T]) Cos(value T) T { return series.Cos(value) }

func (Series[T]) Tan(value T) T { return series.Tan(value) }

func (Platform[T]) Mode() evalmode.Mode { return evalmode.ModePlatform }

func (Platform[T]) Sqrt(value T) (T, error) {
	if err := checkSqrt(value); err != nil {
		return 0, err
	}
	return platform.Sqrt(value), nil
}

func (Platform[T]) Pow(base T, exponent int) T { return platform.Pow(base, exponent) }

func (Platform[T]) Factorial(n uint) T { return platform.Factorial[T](n) }

func (Platform[T]) Mod(value, divisor T) (T, error) {
	if err := checkMod(divisor); err != nil {
		return 0, err
	}
	return platform.Mod(value, divisor), nil
}

func (Platform[T]) Sin(value T) T { return platform.Sin(value) }

func (Platform[T]) Cos(value T) T { return platform.Cos(value) }

func (Platform[T]) Tan(value T) T { return platform.Tan(value) }

func checkSqrt[T core.Float](value T) error {
	if value < 0 {
		return ErrNegativeInput
	}
	return nil
}

func checkMod[T core.Float](divisor T) error {
	if core.Equals(divisor, 0) {
		return ErrZeroDivisor
	}
	return nil
}
