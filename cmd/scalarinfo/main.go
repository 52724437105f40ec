// Command scalarinfo inspects the scalar primitives.
//
// Usage:
//
//	scalarinfo [flags]
//
// Without flags it prints the cross-mode consistency report for both widths.
//
// Examples:
//
//	scalarinfo -constants
//	scalarinfo -env
//	scalarinfo -width narrow -samples 4097 -lo 0 -hi 100
//	scalarinfo -op sin -x 1.2
//	scalarinfo -op mod -x 5.3 -d 2
//	scalarinfo -list
//
// SCALAR_MODE selects the mode of the package-level functions and
// SCALAR_LOG_LEVEL the diagnostics level (written to stderr).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-scalar/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	constants bool
	env       bool
	list      bool
	width     string
	samples   int
	lo, hi    float64
	op        string
	x, d      float64
	n         int
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("scalarinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.BoolVar(&opts.constants, "constants", false, "print the constant table of each width")
	fs.BoolVar(&opts.env, "env", false, "print the detected evaluation environment")
	fs.BoolVar(&opts.list, "list", false, "list operation names")
	fs.StringVar(&opts.width, "width", "all", "width to inspect: wide, narrow or all")
	fs.IntVar(&opts.samples, "samples", 1025, "number of consistency samples")
	fs.Float64Var(&opts.lo, "lo", -6.283185307179586, "lower bound of the consistency range")
	fs.Float64Var(&opts.hi, "hi", 6.283185307179586, "upper bound of the consistency range")
	fs.StringVar(&opts.op, "op", "", "evaluate a single operation in both modes (see -list)")
	fs.Float64Var(&opts.x, "x", 0, "operand of -op")
	fs.Float64Var(&opts.d, "d", 1, "divisor of -op mod, second operand of -op gcd")
	fs.IntVar(&opts.n, "n", 2, "exponent of -op pow")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: scalarinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Prints constants, cross-mode consistency and single evaluations of the scalar primitives.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  scalarinfo -constants\n")
		fmt.Fprintf(stderr, "  scalarinfo -width narrow -samples 4097\n")
		fmt.Fprintf(stderr, "  scalarinfo -op tan -x 1.5707963267948966\n")
		fmt.Fprintf(stderr, "  scalarinfo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := newLogger(stderr)
	defer func() { _ = log.Sync() }()

	widths, err := parseWidths(opts.width)
	if err != nil {
		log.Error("invalid flag", zap.String("flag", "width"), zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	switch {
	case opts.list:
		printList(stdout)
	case opts.env:
		err = printEnvironment(stdout)
	case opts.constants:
		err = printConstants(stdout, widths)
	case opts.op != "":
		err = printEvaluation(stdout, log, widths, opts)
	default:
		err = printConsistency(stdout, log, widths, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(stderr io.Writer) *logging.Logger {
	cfg, err := logging.FromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "warning: ignoring logging environment: %v\n", err)
	}
	log, err := logging.NewWithWriter(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "warning: logging disabled: %v\n", err)
		return logging.NewNop()
	}
	return log
}
