package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-scalar/consistency"
	"github.com/cwbudde/algo-scalar/core"
	"github.com/cwbudde/algo-scalar/evalmode"
	"github.com/cwbudde/algo-scalar/internal/kernel/registry"
	"github.com/cwbudde/algo-scalar/internal/logging"
	"github.com/cwbudde/algo-scalar/scalar"
)

var (
	errUnknownWidth = errors.New("unknown width (use wide, narrow or all)")
	errUnknownOp    = errors.New("unknown operation (use -list to see available)")
	errDisagreement = errors.New("series and platform modes disagree")
)

// operations lists what -op accepts.
var operations = map[string]string{
	"sqrt":      "square root of x",
	"pow":       "x raised to the integer n",
	"factorial": "x! for integral x >= 0",
	"sin":       "sine of x radians",
	"cos":       "cosine of x radians",
	"tan":       "tangent of x radians",
	"mod":       "remainder of x / d",
	"abs":       "absolute value of x",
	"sign":      "sign of x (-1, 0 or 1)",
	"deg2rad":   "x degrees in radians",
	"rad2deg":   "x radians in degrees",
	"gcd":       "greatest common divisor of integral x >= d > 0",
}

func parseWidths(name string) ([]core.Width, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wide":
		return []core.Width{core.WidthWide}, nil
	case "narrow":
		return []core.Width{core.WidthNarrow}, nil
	case "all", "":
		return []core.Width{core.WidthWide, core.WidthNarrow}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownWidth, name)
	}
}

func printList(w io.Writer) {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range names {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", name, operations[name])
	}
	_ = tw.Flush()
}

func printEnvironment(w io.Writer) error {
	env := evalmode.Detect()

	var names []string
	for _, e := range registry.Global.ListEntries() {
		names = append(names, fmt.Sprintf("%s(%d)", e.Name, e.Priority))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Active mode", scalar.ActiveMode().String()},
		{"Source", env.Source},
		{"Force series", fmt.Sprint(env.ForceSeries)},
		{"Architecture", env.Architecture},
		{"Hardware FMA", fmt.Sprint(env.HasFMA)},
		{"Kernel families", strings.Join(names, " ")},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printConstants(w io.Writer, widths []core.Width) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Width\tPi\tHalfPi\tTwoPi\tDegToRad\tRadToDeg\tEpsilon\tMachine Eps\tIntegral Limit\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t--\t------\t-----\t--------\t--------\t-------\t-----------\t--------------\n"); err != nil {
		return err
	}

	for _, width := range widths {
		var row string
		if width == core.WidthNarrow {
			row = constantsRow[float32](9)
		} else {
			row = constantsRow[float64](17)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", width, row); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func constantsRow[T core.Float](digits int) string {
	c := core.Constants[T]()
	f := func(v T) string { return fmt.Sprintf("%.*g", digits, float64(v)) }
	return strings.Join([]string{
		f(c.Pi), f(c.HalfPi), f(c.TwoPi), f(c.DegToRad), f(c.RadToDeg),
		f(c.Epsilon), f(c.MachineEpsilon), f(c.IntegralLimit),
	}, "\t")
}

func printEvaluation(w io.Writer, log *logging.Logger, widths []core.Width, opts options) error {
	op := strings.ToLower(strings.TrimSpace(opts.op))
	if _, ok := operations[op]; !ok {
		log.Error("invalid flag", zap.String("flag", "op"), zap.String("value", opts.op))
		return fmt.Errorf("%w: %q", errUnknownOp, opts.op)
	}
	log.Debug("evaluating",
		zap.String("op", op),
		zap.Float64("x", opts.x),
		zap.String("active_mode", scalar.ActiveMode().String()))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Width\tOp\tSeries\tPlatform\tDiff\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t--\t------\t--------\t----\n"); err != nil {
		return err
	}

	for _, width := range widths {
		var cells [2]string
		var values [2]float64
		if width == core.WidthNarrow {
			cells[0], values[0] = evaluate[float32](scalar.Series[float32]{}, op, opts)
			cells[1], values[1] = evaluate[float32](scalar.Platform[float32]{}, op, opts)
		} else {
			cells[0], values[0] = evaluate[float64](scalar.Series[float64]{}, op, opts)
			cells[1], values[1] = evaluate[float64](scalar.Platform[float64]{}, op, opts)
		}

		diff := "-"
		if d := math.Abs(values[0] - values[1]); !math.IsNaN(d) {
			diff = fmt.Sprintf("%.3g", d)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", width, op, cells[0], cells[1], diff); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// evaluate runs op with ev and returns the formatted cell and the numeric
// result (NaN when the operation failed).
func evaluate[T core.Float](ev scalar.Evaluator[T], op string, opts options) (string, float64) {
	x, d := T(opts.x), T(opts.d)

	var (
		r   T
		err error
	)
	switch op {
	case "sqrt":
		r, err = ev.Sqrt(x)
	case "pow":
		r = ev.Pow(x, opts.n)
	case "factorial":
		if opts.x < 0 || opts.x != math.Trunc(opts.x) {
			return "error: factorial needs an integral x >= 0", math.NaN()
		}
		r = ev.Factorial(uint(opts.x))
	case "sin":
		r = ev.Sin(x)
	case "cos":
		r = ev.Cos(x)
	case "tan":
		r = ev.Tan(x)
	case "mod":
		r, err = ev.Mod(x, d)
	case "abs":
		r = scalar.Abs(x)
	case "sign":
		r = T(scalar.Sign(x))
	case "deg2rad":
		r = scalar.DegreesToRadians(x)
	case "rad2deg":
		r = scalar.RadiansToDegrees(x)
	case "gcd":
		g, gerr := scalar.GCD(int64(opts.x), int64(opts.d))
		r, err = T(g), gerr
	}
	if err != nil {
		return "error: " + err.Error(), math.NaN()
	}
	return fmt.Sprintf("%.*g", digitsOf[T](), float64(r)), float64(r)
}

func digitsOf[T core.Float]() int {
	if core.WidthOf[T]() == core.WidthNarrow {
		return 9
	}
	return 17
}

func printConsistency(w io.Writer, log *logging.Logger, widths []core.Width, opts options) error {
	runOpts := []consistency.Option{
		consistency.WithSamples(opts.samples),
		consistency.WithRange(opts.lo, opts.hi),
	}

	reports := make([]consistency.Report, 0, len(widths))
	for _, width := range widths {
		var report consistency.Report
		if width == core.WidthNarrow {
			report = consistency.Run[float32](runOpts...)
		} else {
			report = consistency.Run[float64](runOpts...)
		}
		log.Info("consistency run",
			zap.Stringer("width", report.Width),
			zap.Int("samples", report.Config.Samples),
			zap.Float64("lo", report.Config.Lo),
			zap.Float64("hi", report.Config.Hi),
			zap.Bool("agree", report.Agree()))
		reports = append(reports, report)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Width\tOp\tCompared\tMismatched\tMax Diff\tWorst Input\tAgree\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t--\t--------\t----------\t--------\t-----------\t-----\n"); err != nil {
		return err
	}
	for _, report := range reports {
		for _, op := range report.Ops {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.3g\t%.6g\t%t\n",
				report.Width, op.Name, op.Compared, op.Mismatched, op.MaxDiff, op.WorstInput, op.Agree(report.Tolerance),
			); err != nil {
				return err
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Width\tMode\tsin²+cos²-1\thypot-1\tSpecial Points\tTan Violations\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t----\t-----------\t-------\t--------------\t--------------\n"); err != nil {
		return err
	}
	agree := true
	for _, report := range reports {
		agree = agree && report.Agree()
		for _, row := range []struct {
			mode string
			res  consistency.Residuals
		}{{"series", report.Series}, {"platform", report.Platform}} {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%.3g\t%.3g\t%d\t%d\n",
				report.Width, row.mode, row.res.Pythagorean, row.res.Radius, row.res.SpecialPoints, row.res.TanViolations,
			); err != nil {
				return err
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !agree {
		log.Warn("modes disagree", zap.Int("widths", len(reports)))
		return errDisagreement
	}
	return nil
}
