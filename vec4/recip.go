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
	"math"

	"github.com/chewxy/math32"
)

// RecipEstimate returns the AArch64 FRECPE estimate of 1/x for a single
// float32, bit for bit, with FPCR in its default state (round to nearest,
// no flush-to-zero, NaNs propagated).
//
// The estimate carries 8 significant mantissa bits; the relative error is
// below 2^-8 for normal inputs. For example RecipEstimate(1) is 0.998046875
// and RecipEstimate(5) is 0.19970703125.
//
// Special inputs:
//   - NaN returns the input NaN, quieted.
//   - ±Inf returns ±0.
//   - ±0 and any |x| < 2^-128 return ±Inf.
func RecipEstimate(x float32) float32 {
	bits := math.Float32bits(x)
	sign := bits & 0x80000000

	switch {
	case math32.IsNaN(x):
		return math.Float32frombits(bits | 0x00400000)
	case math32.IsInf(x, 0):
		return math.Float32frombits(sign)
	case math32.Abs(x) < 0x1p-128:
		// Includes ±0. The result would overflow, which rounds to Inf.
		return math.Float32frombits(sign | 0x7f800000)
	}

	// Work on a 52-bit fraction as the architecture pseudocode does.
	const fracMask = 1<<52 - 1
	exp := int((bits >> 23) & 0xff)
	fraction := uint64(bits&0x7fffff) << 29
	if exp == 0 {
		// Subnormal input in [2^-128, 2^-126): normalize by one or two places.
		if fraction&(1<<51) == 0 {
			exp = -1
			fraction = (fraction << 2) & fracMask
		} else {
			fraction = (fraction << 1) & fracMask
		}
	}

	scaled := uint32(0x100 | (fraction>>44)&0xff)
	resultExp := 253 - exp
	estimate := recipEstimate(scaled)

	fraction = uint64(estimate&0xff) << 44
	switch resultExp {
	case 0:
		fraction = 1<<51 | fraction>>1
	case -1:
		fraction = 1<<50 | fraction>>2
		resultExp = 0
	}

	return math.Float32frombits(sign | uint32(resultExp)<<23 | uint32(fraction>>29))
}

// recipEstimate maps a 9-bit significand a in [256, 511], representing
// a/512 in [0.5, 1), to an estimate of 1/(a/512) in units of 1/256.
// The result is in [256, 511].
func recipEstimate(a uint32) uint32 {
	a = a*2 + 1
	b := (1 << 19) / a
	return (b + 1) / 2
}
