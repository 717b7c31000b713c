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

import "github.com/chewxy/math32"

// Lane kernels. The base (pure Go) kernels are installed here; hardware
// kernels replace them in init when the build and the CPU support it.
//
// Every kernel writes dst and may be called with dst aliasing a source.
// Only primitives whose results are bit-identical across strategies live in
// this table. Reductions, float max/min, the reciprocal estimate and the
// integer quirks are shared code in float32x4.go and int32x4.go.
var (
	addF32       = baseAddF32
	subF32       = baseSubF32
	mulF32       = baseMulF32
	addScalarF32 = baseAddScalarF32
	subScalarF32 = baseSubScalarF32
	mulScalarF32 = baseMulScalarF32
	sqrtF32      = baseSqrtF32

	addI32       = baseAddI32
	subI32       = baseSubI32
	mulI32       = baseMulI32
	maxI32       = baseMaxI32
	minI32       = baseMinI32
	addScalarI32 = baseAddScalarI32
	subScalarI32 = baseSubScalarI32
	mulScalarI32 = baseMulScalarI32
)

// ===== float32 base kernels =====

func baseAddF32(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func baseSubF32(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// The explicit conversion rounds each product, so the compiler may not fuse
// it into a later add (Dot) on targets with FMA.
func baseMulF32(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = float32(a[i] * b[i])
	}
}

func baseAddScalarF32(dst, a *[4]float32, s float32) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

func baseSubScalarF32(dst, a *[4]float32, s float32) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

func baseMulScalarF32(dst, a *[4]float32, s float32) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// baseSqrtF32 is correctly rounded, as FSQRT and SQRTPS are.
func baseSqrtF32(dst, a *[4]float32) {
	for i := range dst {
		dst[i] = math32.Sqrt(a[i])
	}
}

// ===== int32 base kernels =====
// Go integer arithmetic wraps, matching the vector instructions.

func baseAddI32(dst, a, b *[4]int32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func baseSubI32(dst, a, b *[4]int32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func baseMulI32(dst, a, b *[4]int32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func baseMaxI32(dst, a, b *[4]int32) {
	for i := range dst {
		dst[i] = max(a[i], b[i])
	}
}

func baseMinI32(dst, a, b *[4]int32) {
	for i := range dst {
		dst[i] = min(a[i], b[i])
	}
}

func baseAddScalarI32(dst, a *[4]int32, s int32) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

func baseSubScalarI32(dst, a *[4]int32, s int32) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

func baseMulScalarI32(dst, a *[4]int32, s int32) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}
