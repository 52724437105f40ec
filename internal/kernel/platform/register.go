//go:build !purego

package platform

import (
	"github.com/cwbudde/algo-scalar/evalmode"
	"github.com/cwbudde/algo-scalar/internal/kernel/registry"
)

// init registers the platform kernels with the kernel registry.
//
// Priority: 10 (preferred over series whenever the environment permits)
func init() {
	registry.Global.Register(registry.Entry{
		Name:     "platform",
		Mode:     evalmode.ModePlatform,
		Priority: 10,

		Wide:   Ops[float64](),
		Narrow: Ops[float32](),
	})
}
