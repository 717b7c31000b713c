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
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Float32x4 is a vector of four float32 lanes.
//
// The zero value is the zero vector. Methods with a pointer receiver replace
// the receiver's lanes in place; methods with a value receiver never modify
// either operand.
type Float32x4 struct {
	data [4]float32
}

// ===== Float32x4 constructors =====

// NewFloat32x4 creates a vector with lanes a, b, c, d in order.
func NewFloat32x4(a, b, c, d float32) Float32x4 {
	return Float32x4{data: [4]float32{a, b, c, d}}
}

// ZeroFloat32x4 returns a vector with all lanes set to 0.
func ZeroFloat32x4() Float32x4 {
	return Float32x4{}
}

// UnitX returns the basis vector (1, 0, 0, 0).
func UnitX() Float32x4 { return NewFloat32x4(1, 0, 0, 0) }

// UnitY returns the basis vector (0, 1, 0, 0).
func UnitY() Float32x4 { return NewFloat32x4(0, 1, 0, 0) }

// UnitZ returns the basis vector (0, 0, 1, 0).
func UnitZ() Float32x4 { return NewFloat32x4(0, 0, 1, 0) }

// UnitW returns the basis vector (0, 0, 0, 1).
func UnitW() Float32x4 { return NewFloat32x4(0, 0, 0, 1) }

// BroadcastFloat32x4 creates a vector with all lanes set to s.
func BroadcastFloat32x4(s float32) Float32x4 {
	return Float32x4{data: [4]float32{s, s, s, s}}
}

// LoadFloat32x4 loads the first four values of s.
// It panics if len(s) < 4.
func LoadFloat32x4(s []float32) Float32x4 {
	return Float32x4{data: [4]float32(s[:4])}
}

// ===== Float32x4 accessors =====

// Data returns a copy of the four lanes.
func (v Float32x4) Data() [4]float32 {
	return v.data
}

// Get returns the lane at index i. It panics if i is not in [0, 4).
func (v Float32x4) Get(i int) float32 {
	return v.data[i]
}

// StoreSlice writes the four lanes to s. It panics if len(s) < 4.
func (v Float32x4) StoreSlice(s []float32) {
	copy(s[:4], v.data[:])
}

// AsInt32x4 reinterprets the lane bits as int32 without conversion.
func (v Float32x4) AsInt32x4() Int32x4 {
	var out Int32x4
	for i, x := range v.data {
		out.data[i] = int32(math.Float32bits(x))
	}
	return out
}

// String formats the lanes as "[a b c d]".
func (v Float32x4) String() string {
	return fmt.Sprint(v.data)
}

// ===== Float32x4 elementwise operations =====

// Add sets v to v + other lanewise.
func (v *Float32x4) Add(other Float32x4) {
	addF32(&v.data, &v.data, &other.data)
}

// Sub sets v to v - other lanewise.
func (v *Float32x4) Sub(other Float32x4) {
	subF32(&v.data, &v.data, &other.data)
}

// Mul sets v to v * other lanewise.
func (v *Float32x4) Mul(other Float32x4) {
	mulF32(&v.data, &v.data, &other.data)
}

// AddScalar adds s to every lane.
func (v *Float32x4) AddScalar(s float32) {
	addScalarF32(&v.data, &v.data, s)
}

// SubScalar subtracts s from every lane.
func (v *Float32x4) SubScalar(s float32) {
	subScalarF32(&v.data, &v.data, s)
}

// MulScalar multiplies every lane by s.
func (v *Float32x4) MulScalar(s float32) {
	mulScalarF32(&v.data, &v.data, s)
}

// Max sets v to the lanewise maximum of v and other.
//
// Lanes follow FMAX: a NaN in either operand yields NaN, and +0 is
// greater than -0.
func (v *Float32x4) Max(other Float32x4) {
	for i := range v.data {
		v.data[i] = max(v.data[i], other.data[i])
	}
}

// Min sets v to the lanewise minimum of v and other.
//
// Lanes follow FMIN: a NaN in either operand yields NaN, and -0 is
// less than +0.
func (v *Float32x4) Min(other Float32x4) {
	for i := range v.data {
		v.data[i] = min(v.data[i], other.data[i])
	}
}

// Abs clears the sign bit of every lane.
func (v *Float32x4) Abs() {
	for i := range v.data {
		v.data[i] = math32.Abs(v.data[i])
	}
}

// AbsDiff sets v to |v - other| lanewise.
func (v *Float32x4) AbsDiff(other Float32x4) {
	subF32(&v.data, &v.data, &other.data)
	v.Abs()
}

// Sqrt replaces every lane with its square root.
// Negative lanes become NaN.
func (v *Float32x4) Sqrt() {
	sqrtF32(&v.data, &v.data)
}

// Neg flips the sign of every lane, NaN and zero included.
func (v *Float32x4) Neg() {
	for i := range v.data {
		v.data[i] = -v.data[i]
	}
}

// Clamp limits every lane to [lo, hi].
//
// The upper bound is applied first and the lower bound last, so when
// lo > hi every non-NaN lane becomes lo. NaN lanes stay NaN.
func (v *Float32x4) Clamp(lo, hi float32) {
	for i := range v.data {
		v.data[i] = max(lo, min(v.data[i], hi))
	}
}

// Normalize scales v to unit length using the reciprocal estimate of its
// magnitude rather than an exact division:
//
//	v[i] = v[i] * RecipEstimate(v.Magnitude())
//
// The result has the estimate's 8-bit precision, so its magnitude is
// within about 2^-8 of 1. The zero vector becomes all NaN (0 * +Inf).
func (v *Float32x4) Normalize() {
	mulScalarF32(&v.data, &v.data, RecipEstimate(v.Magnitude()))
}

// ===== Float32x4 reductions =====

// Dot returns the dot product of v and other.
// The products are summed pairwise: (p0+p1) + (p2+p3).
func (v Float32x4) Dot(other Float32x4) float32 {
	var prod [4]float32
	mulF32(&prod, &v.data, &other.data)
	return hsum(&prod)
}

// Sum returns the sum of the lanes, added pairwise: (v0+v1) + (v2+v3).
func (v Float32x4) Sum() float32 {
	return hsum(&v.data)
}

// Magnitude returns the Euclidean length sqrt(v · v).
func (v Float32x4) Magnitude() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Concat returns (v0, v1, other0, other1): the low half of each operand.
func (v Float32x4) Concat(other Float32x4) Float32x4 {
	return Float32x4{data: concat(&v.data, &other.data)}
}
