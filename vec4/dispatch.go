// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec4

import (
	"os"
	"strconv"
	"strings"
)

// DispatchLevel represents the lane kernel strategy in use.
type DispatchLevel int

const (
	// DispatchScalar indicates pure Go kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates 128-bit simd/archsimd kernels on an AVX2 CPU.
	// Only available in amd64 builds with GOEXPERIMENT=simd.
	DispatchAVX2
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// ParseDispatchLevel parses a level name as produced by String.
func ParseDispatchLevel(s string) (DispatchLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return DispatchScalar, true
	case "avx2":
		return DispatchAVX2, true
	default:
		return DispatchScalar, false
	}
}

// currentLevel is the strategy selected for this process.
// Set by init() in dispatch_*.go and kernels_*.go files.
var currentLevel DispatchLevel

// cpuFeatures lists the CPU features detected at init.
var cpuFeatures []string

// CurrentLevel returns the kernel strategy being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current strategy,
// for example "avx2" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// CPUFeatures returns the SIMD-related CPU features reported by the
// operating system, whether or not a kernel strategy uses them.
func CPUFeatures() []string {
	out := make([]string, len(cpuFeatures))
	copy(out, cpuFeatures)
	return out
}

// NoSimdEnv checks if the VEC4_NO_SIMD environment variable is set.
// When set, the pure Go kernels are used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("VEC4_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
