package consistency_test

import (
	"fmt"

	"github.com/cwbudde/algo-scalar/consistency"
)

func ExampleRun() {
	report := consistency.Run[float64](consistency.WithSamples(257))

	fmt.Println(report.Width, report.Agree())
	fmt.Println(report.Series.SpecialPoints, report.Series.TanViolations)

	// Output:
	// wide true
	// 9 0
}
