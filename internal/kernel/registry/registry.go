// Package registry provides the implementation registry for scalar kernels.
//
// The registry-based dispatch system allows several kernel families (the
// self-contained series kernels and the platform kernels) to coexist. The
// scalar package asks the registry for the best family permitted by the
// current evalmode environment.
//
// Kernel packages register themselves via init() functions. Build tags decide
// which packages are linked: a purego build links only the series family.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-scalar/core"
	"github.com/cwbudde/algo-scalar/evalmode"
)

// Ops is the table of kernel functions for one floating-point width.
//
// Kernels do not report errors. Callers validate inputs first: Sqrt receives
// non-negative values and Mod receives a divisor that is not tolerant-zero.
type Ops[T core.Float] struct {
	// Sqrt returns the square root of a non-negative value.
	Sqrt func(value T) T

	// Pow returns base raised to an integer exponent.
	Pow func(base T, exponent int) T

	// Factorial returns n! as a floating-point value.
	Factorial func(n uint) T

	// Mod returns the remainder of value / divisor with the sign of value.
	Mod func(value, divisor T) T

	// Sin, Cos and Tan take radians.
	Sin func(value T) T
	Cos func(value T) T
	Tan func(value T) T
}

// Complete reports whether every operation is populated.
func (o *Ops[T]) Complete() bool {
	return o.Sqrt != nil && o.Pow != nil && o.Factorial != nil && o.Mod != nil &&
		o.Sin != nil && o.Cos != nil && o.Tan != nil
}

// Entry represents a registered kernel family.
type Entry struct {
	// Name is a human-readable identifier (e.g., "series", "platform").
	Name string

	// Mode is the evaluation mode the family implements.
	Mode evalmode.Mode

	// Priority determines selection order when several families are
	// permitted. Higher priority families are preferred:
	//   - series: 0
	//   - platform: 10
	Priority int

	// Wide holds the float64 kernels.
	Wide Ops[float64]

	// Narrow holds the float32 kernels.
	Narrow Ops[float32]
}

// Registry manages the registration and lookup of kernel families.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the scalar package.
var Global = &Registry{}

// Register adds a kernel family to the registry.
//
// This is typically called from init() functions in kernel packages. It is
// safe to call concurrently, but all registrations should complete before the
// first call to Lookup.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority family permitted by env, or nil if no
// family is permitted (which does not happen once the series family is
// registered).
func (r *Registry) Lookup(env evalmode.Environment) *Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if evalmode.Supports(env, entry.Mode) {
			return entry
		}
	}

	return nil
}

// LookupMode returns the highest-priority family implementing mode, or nil.
func (r *Registry) LookupMode(mode evalmode.Mode) *Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Mode == mode {
			return &r.entries[i]
		}
	}

	return nil
}

func (r *Registry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *Registry) sortByPriority() {
	// Insertion sort; the registry holds two or three entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
func (r *Registry) ListEntries() []Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
