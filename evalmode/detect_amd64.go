//go:build amd64

package evalmode

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func detectHardware() Environment {
	return Environment{
		Architecture: runtime.GOARCH,
		HasFMA:       cpu.X86.HasFMA,
	}
}
