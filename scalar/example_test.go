package scalar_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-scalar/scalar"
)

func ExampleSqrt() {
	root, err := scalar.Sqrt(52.0)
	fmt.Printf("%.4f %v\n", root, err)

	_, err = scalar.Sqrt(-1.0)
	fmt.Println(errors.Is(err, scalar.ErrNegativeInput))

	// Output:
	// 7.2111 <nil>
	// true
}

func ExampleMod() {
	r, _ := scalar.Mod(5.3, 2.0)
	fmt.Printf("%.1f\n", r)

	_, err := scalar.Mod(5.3, 0.0)
	fmt.Println(err)

	// Output:
	// 1.3
	// scalar: divisor must not be zero
}

func ExampleTan() {
	fmt.Printf("%.4f\n", scalar.Tan(math.Pi/4))
	fmt.Println(scalar.Tan(math.Pi))
	fmt.Println(math.IsNaN(scalar.Tan(math.Pi / 2)))

	// Output:
	// 1.0000
	// 0
	// true
}

func ExampleGCD() {
	d, err := scalar.GCD(1071, 462)
	fmt.Println(d, err)

	_, err = scalar.GCD(462, 1071)
	fmt.Println(err)

	// Output:
	// 21 <nil>
	// gcd(462, 1071): first operand is smaller than second: scalar: input must not be negative
}

func ExampleSeries() {
	var series scalar.Series[float32]
	var platform scalar.Platform[float32]

	x := scalar.DegreesToRadians[float32](30)
	fmt.Printf("%.4f %.4f\n", series.Sin(x), platform.Sin(x))
	fmt.Println(series.Factorial(5), scalar.Sign[float32](-0.5))

	// Output:
	// 0.5000 0.5000
	// 120 -1
}
