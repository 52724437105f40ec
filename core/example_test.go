package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-scalar/core"
)

func ExampleConstants() {
	wide := core.Constants[float64]()
	narrow := core.Constants[float32]()

	fmt.Println(core.WidthOf[float64](), wide.Epsilon)
	fmt.Println(core.WidthOf[float32](), narrow.Epsilon)

	// Output:
	// wide 1e-09
	// narrow 1e-05
}

func ExampleEquals() {
	fmt.Println(core.Equals(0.1+0.2, 0.3))
	fmt.Println(core.Equals[float32](1, 1.00002))
	fmt.Println(core.Sign(-1e-12), core.Sign(-0.5))

	// Output:
	// true
	// false
	// 0 -1
}
