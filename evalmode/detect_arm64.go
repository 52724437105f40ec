//go:build arm64

package evalmode

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectHardware reports FMA on every ARMv8 core with Advanced SIMD, where
// FMADD is part of the base floating-point instruction set.
func detectHardware() Environment {
	return Environment{
		Architecture: runtime.GOARCH,
		HasFMA:       cpu.ARM64.HasASIMD,
	}
}
