package registry

import (
	"testing"

	"github.com/cwbudde/algo-scalar/evalmode"
)

func TestRegistry_Register(t *testing.T) {
	reg := &Registry{}

	reg.Register(Entry{Name: "series", Mode: evalmode.ModeSeries, Priority: 0})
	reg.Register(Entry{Name: "platform", Mode: evalmode.ModePlatform, Priority: 10})

	entries := reg.ListEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "platform" {
		t.Errorf("expected entries sorted by priority, first is %q", entries[0].Name)
	}
}

func TestRegistry_Lookup_Priority(t *testing.T) {
	reg := &Registry{}

	// Registration order must not matter.
	reg.Register(Entry{Name: "series", Mode: evalmode.ModeSeries, Priority: 0})
	reg.Register(Entry{Name: "platform", Mode: evalmode.ModePlatform, Priority: 10})

	tests := []struct {
		name string
		env  evalmode.Environment
		want string
	}{
		{name: "default - select platform", env: evalmode.Environment{}, want: "platform"},
		{name: "ForceSeries - select series", env: evalmode.Environment{ForceSeries: true}, want: "series"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.env)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestRegistry_Lookup_SeriesOnly(t *testing.T) {
	reg := &Registry{}
	reg.Register(Entry{Name: "series", Mode: evalmode.ModeSeries})

	entry := reg.Lookup(evalmode.Environment{})
	if entry == nil || entry.Name != "series" {
		t.Fatalf("expected series fallback, got %+v", entry)
	}

	if got := reg.LookupMode(evalmode.ModePlatform); got != nil {
		t.Fatalf("expected no platform entry, got %q", got.Name)
	}
}

func TestRegistry_LookupEmpty(t *testing.T) {
	reg := &Registry{}
	if entry := reg.Lookup(evalmode.Environment{}); entry != nil {
		t.Errorf("expected nil from empty registry, got %q", entry.Name)
	}
}

func TestRegistry_Reset(t *testing.T) {
	reg := &Registry{}
	reg.Register(Entry{Name: "series"})
	reg.Reset()

	if n := len(reg.ListEntries()); n != 0 {
		t.Errorf("expected empty registry after Reset, got %d entries", n)
	}
}

func TestOpsComplete(t *testing.T) {
	var ops Ops[float64]
	if ops.Complete() {
		t.Fatal("zero Ops reported complete")
	}

	ops = Ops[float64]{
		Sqrt:      func(v float64) float64 { return v },
		Pow:       func(b float64, _ int) float64 { return b },
		Factorial: func(uint) float64 { return 1 },
		Mod:       func(v, _ float64) float64 { return v },
		Sin:       func(v float64) float64 { return v },
		Cos:       func(v float64) float64 { return v },
		Tan:       func(v float64) float64 { return v },
	}
	if !ops.Complete() {
		t.Fatal("populated Ops reported incomplete")
	}
}
