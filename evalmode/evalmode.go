// Package evalmode describes the evaluation environment used for kernel
// selection.
//
// Every primitive in this module has two implementations: a self-contained
// series/iterative kernel that never calls a numeric library, and a platform
// kernel that delegates to the Go math packages. The environment decides which
// of the registered kernels may be used.
//
// The environment is read lazily on the first call to Detect and cached. It is
// taken from the SCALAR_MODE variable ("auto", "series" or "platform"). Tests
// override it with SetForced and restore it with Reset.
package evalmode

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"
)

// Mode identifies a kernel family.
type Mode int

const (
	// ModeSeries is the self-contained iterative/series family. It is always
	// available and is what a build without platform kernels falls back to.
	ModeSeries Mode = iota

	// ModePlatform delegates to the platform math library.
	ModePlatform
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("evalmode: unknown mode")

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSeries:
		return "series"
	case ModePlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name to a Mode. Matching is case-insensitive.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "series":
		return ModeSeries, nil
	case "platform":
		return ModePlatform, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Environment describes the constraints on kernel selection.
type Environment struct {
	// ForceSeries restricts selection to ModeSeries kernels.
	ForceSeries bool

	// Source records where the environment came from ("default", "env" or
	// "forced").
	Source string

	// Architecture is runtime.GOARCH.
	Architecture string

	// HasFMA reports a hardware fused multiply-add, which backs math.FMA.
	HasFMA bool
}

// envConfig is populated from SCALAR_* variables.
type envConfig struct {
	Mode string `envconfig:"MODE" default:"auto"`
}

const envPrefix = "scalar"

var (
	detected   Environment
	detectOnce sync.Once
	detectMu   sync.Mutex

	forced atomic.Pointer[Environment]
)

// Detect returns the current environment.
//
// The process environment is read once; later calls return the cached value
// unless an override is installed with SetForced. Safe for concurrent use.
func Detect() Environment {
	if f := forced.Load(); f != nil {
		return *f
	}

	detectMu.Lock()
	detectOnce.Do(func() {
		detected = detectImpl()
	})
	env := detected
	detectMu.Unlock()

	return env
}

func detectImpl() Environment {
	env := detectHardware()
	env.Source = "default"

	var cfg envConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return env
	}
	if strings.EqualFold(strings.TrimSpace(cfg.Mode), "auto") {
		return env
	}

	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return env
	}
	env.ForceSeries = mode == ModeSeries
	env.Source = "env"
	return env
}

// SetForced overrides detection with env.
// This is intended for testing purposes only.
func SetForced(env Environment) {
	env.Source = "forced"
	forced.Store(&env)
}

// Reset clears any override and the detection cache, so the next Detect call
// reads the process environment again.
func Reset() {
	forced.Store(nil)

	detectMu.Lock()
	detectOnce = sync.Once{}
	detected = Environment{}
	detectMu.Unlock()
}

// Supports reports whether kernels of the given mode may be selected in env.
func Supports(env Environment, mode Mode) bool {
	if env.ForceSeries {
		return mode == ModeSeries
	}

	switch mode {
	case ModeSeries, ModePlatform:
		return true
	default:
		return false
	}
}
