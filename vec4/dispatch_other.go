//go:build !amd64 && !arm64

package vec4

func init() {
	// Other architectures have no feature probe and run the base kernels.
	cpuFeatures = nil
}
