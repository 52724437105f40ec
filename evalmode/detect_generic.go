//go:build !amd64 && !arm64

package evalmode

import "runtime"

func detectHardware() Environment {
	return Environment{Architecture: runtime.GOARCH}
}
