// Package consistency measures how closely the series and platform evaluation
// modes agree.
//
// Run evaluates every kernel of both modes over an evenly spaced corpus and
// reports, per operation, the largest difference between the two modes.
// Differences are absolute for the bounded operations (sin, cos, mod),
// relative for sqrt, pow and factorial, and divided by sec² = 1+tan² for tan,
// whose condition number grows without bound near its singularities. Mod
// remainders are compared on a circle whose circumference is the divisor, so
// 0 and a remainder just below the divisor count as equal.
//
// Per mode the report also carries the Pythagorean residual
// max |sin²+cos²-1|, the unit radius residual max |hypot(sin, cos)-1| and the
// number of samples where tan misses its special values.
package consistency

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-scalar/core"
	"github.com/cwbudde/algo-scalar/scalar"
)

// OpResult summarizes one operation.
type OpResult struct {
	Name string

	// Compared counts samples where both modes returned finite values.
	Compared int

	// Mismatched counts samples where the modes disagree on finiteness
	// (one finite and one not, or different non-finite values).
	Mismatched int

	// MaxDiff is the largest scaled difference over the compared samples,
	// and WorstInput the input that produced it.
	MaxDiff    float64
	WorstInput float64
}

// Agree reports whether the modes agree within tol.
func (r OpResult) Agree(tol float64) bool {
	return r.Mismatched == 0 && r.MaxDiff <= tol
}

// Residuals are the identity checks of one mode.
type Residuals struct {
	// Pythagorean is max |sin²(x)+cos²(x)-1|.
	Pythagorean float64

	// Radius is max |hypot(sin(x), cos(x))-1|.
	Radius float64

	// SpecialPoints counts samples that are tolerant multiples of π/2.
	SpecialPoints int

	// TanViolations counts samples where tan is not 0 at a tolerant
	// multiple of π, or not NaN at any other tolerant multiple of π/2.
	TanViolations int
}

// Report is the result of Run.
type Report struct {
	Width     core.Width
	Config    Config
	Tolerance float64
	Ops       []OpResult
	Series    Residuals
	Platform  Residuals
}

// Agree reports whether every operation agrees, both residuals stay within
// the tolerance and tan honours its special values in both modes.
func (r Report) Agree() bool {
	for _, op := range r.Ops {
		if !op.Agree(r.Tolerance) {
			return false
		}
	}
	for _, res := range []Residuals{r.Series, r.Platform} {
		if res.Pythagorean > r.Tolerance || res.Radius > r.Tolerance || res.TanViolations > 0 {
			return false
		}
	}
	return true
}

// Op returns the result for the named operation.
func (r Report) Op(name string) (OpResult, bool) {
	for _, op := range r.Ops {
		if op.Name == name {
			return op, true
		}
	}
	return OpResult{}, false
}

// Operations lists the operation names a report contains, in order.
func Operations() []string {
	names := make([]string, 0, 7)
	for _, p := range checks[float64]() {
		names = append(names, p.name)
	}
	return append(names, "factorial")
}

type check[T core.Float] struct {
	name string

	// scale maps the platform result to the divisor of the difference.
	scale func(want float64) float64

	// period is non-zero when results are compared modulo period.
	period float64

	eval func(e scalar.Evaluator[T], x T) T
}

func absolute(float64) float64 { return 1 }

func relative(want float64) float64 { return math.Max(1, math.Abs(want)) }

func secSquared(want float64) float64 { return 1 + want*want }

func checks[T core.Float]() []check[T] {
	c := core.Constants[T]()

	return []check[T]{
		{name: "sin", scale: absolute, eval: func(e scalar.Evaluator[T], x T) T { return e.Sin(x) }},
		{name: "cos", scale: absolute, eval: func(e scalar.Evaluator[T], x T) T { return e.Cos(x) }},
		{name: "tan", scale: secSquared, eval: func(e scalar.Evaluator[T], x T) T { return e.Tan(x) }},
		{name: "sqrt", scale: relative, eval: func(e scalar.Evaluator[T], x T) T {
			if x < 0 {
				x = -x
			}
			r, _ := e.Sqrt(x)
			return r
		}},
		{name: "pow", scale: relative, eval: func(e scalar.Evaluator[T], x T) T { return e.Pow(x, 5) }},
		{name: "mod", scale: absolute, period: float64(c.Pi), eval: func(e scalar.Evaluator[T], x T) T {
			r, _ := e.Mod(x, c.Pi)
			return r
		}},
	}
}

// Run compares the series and platform modes at the width of T.
func Run[T core.Float](opts ...Option) Report {
	cfg := ApplyOptions(opts...)

	tol := cfg.Tolerance
	if tol == 0 {
		tol = float64(core.Epsilon[T]())
	}

	grid := floats.Span(make([]float64, cfg.Samples), cfg.Lo, cfg.Hi)
	inputs := make([]T, len(grid))
	for i, v := range grid {
		inputs[i] = T(v)
	}

	var (
		series   scalar.Evaluator[T] = scalar.Series[T]{}
		platform scalar.Evaluator[T] = scalar.Platform[T]{}
	)

	report := Report{
		Width:     core.WidthOf[T](),
		Config:    cfg,
		Tolerance: tol,
		Series:    residuals(series, inputs),
		Platform:  residuals(platform, inputs),
	}

	got := make([]float64, len(inputs))
	want := make([]float64, len(inputs))
	for _, p := range checks[T]() {
		for i, x := range inputs {
			got[i] = float64(p.eval(series, x))
			want[i] = float64(p.eval(platform, x))
		}
		res := compare(p.name, got, want, grid, p.scale, p.period)
		report.Ops = append(report.Ops, res)
	}

	report.Ops = append(report.Ops, compareFactorial(series, platform))

	return report
}

// compare returns the largest scaled difference between got and want.
func compare(name string, got, want, inputs []float64, scale func(float64) float64, period float64) OpResult {
	res := OpResult{Name: name}

	for i := range got {
		g, w := got[i], want[i]
		gFinite, wFinite := !math.IsNaN(g) && !math.IsInf(g, 0), !math.IsNaN(w) && !math.IsInf(w, 0)

		switch {
		case !gFinite && !wFinite:
			if math.IsNaN(g) != math.IsNaN(w) || (!math.IsNaN(g) && g != w) {
				res.Mismatched++
			}
			continue
		case gFinite != wFinite:
			res.Mismatched++
			continue
		}

		diff := math.Abs(g - w)
		if period > 0 {
			diff = math.Min(diff, math.Abs(period-diff))
		}
		diff /= scale(w)

		res.Compared++
		if diff > res.MaxDiff {
			res.MaxDiff = diff
			res.WorstInput = inputs[i]
		}
	}

	return res
}

// maxFactorial returns the largest n whose factorial is finite in T.
func maxFactorial[T core.Float]() uint {
	if core.WidthOf[T]() == core.WidthNarrow {
		return 34
	}
	return 170
}

func compareFactorial[T core.Float](series, platform scalar.Evaluator[T]) OpResult {
	n := maxFactorial[T]() + 1
	got := make([]float64, n)
	want := make([]float64, n)
	inputs := make([]float64, n)
	for i := range n {
		got[i] = float64(series.Factorial(i))
		want[i] = float64(platform.Factorial(i))
		inputs[i] = float64(i)
	}
	return compare("factorial", got, want, inputs, relative, 0)
}

func residuals[T core.Float](e scalar.Evaluator[T], inputs []T) Residuals {
	c := core.Constants[T]()
	n := len(inputs)

	sin := make([]float64, n)
	cos := make([]float64, n)
	var res Residuals
	for i, x := range inputs {
		sin[i] = float64(e.Sin(x))
		cos[i] = float64(e.Cos(x))

		byPi, _ := e.Mod(x, c.Pi)
		byHalfPi, _ := e.Mod(x, c.HalfPi)
		tan := e.Tan(x)
		switch {
		case core.Equals(byPi, 0):
			res.SpecialPoints++
			if tan != 0 {
				res.TanViolations++
			}
		case core.Equals(byHalfPi, 0):
			res.SpecialPoints++
			if tan == tan {
				res.TanViolations++
			}
		}
	}

	sq := make([]float64, n)
	vecmath.Power(sq, sin, cos)
	floats.AddConst(-1, sq)
	res.Pythagorean = maxAbs(sq)

	radius := make([]float64, n)
	vecmath.Magnitude(radius, sin, cos)
	floats.AddConst(-1, radius)
	res.Radius = maxAbs(radius)

	return res
}

func maxAbs(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Max(floats.Max(x), -floats.Min(x))
}
