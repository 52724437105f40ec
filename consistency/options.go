package consistency

import "math"

// Config controls a consistency run.
type Config struct {
	// Samples is the number of evenly spaced inputs in [Lo, Hi].
	Samples int

	// Lo and Hi bound the sample range (radians for the trigonometric
	// operations, plain values for the others).
	Lo, Hi float64

	// Tolerance is the largest accepted difference. Zero selects the
	// comparison epsilon of the evaluated width.
	Tolerance float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig covers two full turns in each direction with a step of
// π/256, so every multiple of π/2 in the range is sampled exactly.
func DefaultConfig() Config {
	return Config{
		Samples: 1025,
		Lo:      -2 * math.Pi,
		Hi:      2 * math.Pi,
	}
}

// WithSamples sets the number of samples. Values below 2 are ignored.
func WithSamples(n int) Option {
	return func(cfg *Config) {
		if n >= 2 {
			cfg.Samples = n
		}
	}
}

// WithRange sets the sample range. It is ignored unless lo < hi and both
// bounds are finite.
func WithRange(lo, hi float64) Option {
	return func(cfg *Config) {
		if lo < hi && !math.IsInf(lo, 0) && !math.IsInf(hi, 0) {
			cfg.Lo, cfg.Hi = lo, hi
		}
	}
}

// WithTolerance overrides the width epsilon.
func WithTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.Tolerance = tol
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
