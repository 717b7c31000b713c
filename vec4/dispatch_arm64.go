//go:build arm64

package vec4

import "golang.org/x/sys/cpu"

func init() {
	// ASIMD is part of the ARMv8-A base architecture. There are no
	// hardware kernels for arm64 yet, so this only feeds CPUFeatures.
	flags := []struct {
		name string
		has  bool
	}{
		{"fp", cpu.ARM64.HasFP},
		{"asimd", cpu.ARM64.HasASIMD},
		{"asimdhp", cpu.ARM64.HasASIMDHP},
		{"sve", cpu.ARM64.HasSVE},
	}
	for _, f := range flags {
		if f.has {
			cpuFeatures = append(cpuFeatures, f.name)
		}
	}
}
