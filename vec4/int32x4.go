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

// Int32x4 is a vector of four int32 lanes.
//
// Arithmetic wraps in two's complement on overflow, exactly as the vector
// instructions do; Go integers never trap, so no operation here can fault.
// As with Float32x4, pointer-receiver methods modify the receiver in place
// and value-receiver methods are pure.
type Int32x4 struct {
	data [4]int32
}

// NewInt32x4 creates a vector with lanes a, b, c, d in order.
func NewInt32x4(a, b, c, d int32) Int32x4 {
	return Int32x4{data: [4]int32{a, b, c, d}}
}

// ZeroInt32x4 returns a vector with all lanes set to 0.
func ZeroInt32x4() Int32x4 {
	return Int32x4{}
}

// BroadcastInt32x4 creates a vector with all lanes set to s.
func BroadcastInt32x4(s int32) Int32x4 {
	return Int32x4{data: [4]int32{s, s, s, s}}
}

// LoadInt32x4 loads the first four values of s.
// It panics if len(s) < 4.
func LoadInt32x4(s []int32) Int32x4 {
	return Int32x4{data: [4]int32(s[:4])}
}

// Data returns a copy of the four lanes.
func (v Int32x4) Data() [4]int32 {
	return v.data
}

// Get returns the lane at index i. It panics if i is not in [0, 4).
func (v Int32x4) Get(i int) int32 {
	return v.data[i]
}

// StoreSlice writes the four lanes to s. It panics if len(s) < 4.
func (v Int32x4) StoreSlice(s []int32) {
	copy(s[:4], v.data[:])
}

// AsFloat32x4 reinterprets the lane bits as float32 without conversion.
func (v Int32x4) AsFloat32x4() Float32x4 {
	var out Float32x4
	for i, x := range v.data {
		out.data[i] = math.Float32frombits(uint32(x))
	}
	return out
}

// String formats the lanes as "[a b c d]".
func (v Int32x4) String() string {
	return fmt.Sprint(v.data)
}

func (v *Int32x4) Add(other Int32x4) {
	addI32(&v.data, &v.data, &other.data)
}

func (v *Int32x4) Sub(other Int32x4) {
	subI32(&v.data, &v.data, &other.data)
}

// Mul keeps the low 32 bits of each product.
func (v *Int32x4) Mul(other Int32x4) {
	mulI32(&v.data, &v.data, &other.data)
}

func (v *Int32x4) AddScalar(s int32) {
	addScalarI32(&v.data, &v.data, s)
}

func (v *Int32x4) SubScalar(s int32) {
	subScalarI32(&v.data, &v.data, s)
}

func (v *Int32x4) MulScalar(s int32) {
	mulScalarI32(&v.data, &v.data, s)
}

func (v *Int32x4) Max(other Int32x4) {
	maxI32(&v.data, &v.data, &other.data)
}

func (v *Int32x4) Min(other Int32x4) {
	minI32(&v.data, &v.data, &other.data)
}

// Abs replaces every lane with its absolute value.
// math.MinInt32 has no positive counterpart and wraps to itself.
func (v *Int32x4) Abs() {
	for i, x := range v.data {
		if x < 0 {
			v.data[i] = -x
		}
	}
}

// AbsDiff sets v to |v - other| lanewise. The difference is taken without
// overflow and then truncated to 32 bits, as SABD does, so
// |MaxInt32 - MinInt32| = 2^32-1 reads back as -1.
func (v *Int32x4) AbsDiff(other Int32x4) {
	for i := range v.data {
		d := int64(v.data[i]) - int64(other.data[i])
		if d < 0 {
			d = -d
		}
		v.data[i] = int32(uint32(d))
	}
}

// Sqrt reinterprets each lane's bits as a float32, takes the float square
// root and stores the resulting bits back into the lane.
//
// This is not an integer square root: Sqrt of the bits of 4.0 gives the
// bits of 2.0, while Sqrt of the integer 4 gives the bits of a subnormal
// root. Callers depend on this bit-level behavior, so it is kept as is.
// Negative lanes (other than the bits of -0) hold negative floats and
// become the default NaN 0x7fc00000; lanes holding NaN bits are quieted.
func (v *Int32x4) Sqrt() {
	for i, x := range v.data {
		v.data[i] = sqrtBits(x)
	}
}

// sqrtBits is FSQRT on raw bits, with its NaN rules made explicit so the
// result does not depend on which NaN the host produces.
func sqrtBits(x int32) int32 {
	bits := uint32(x)
	f := math.Float32frombits(bits)
	switch {
	case math32.IsNaN(f):
		return int32(bits | 0x00400000)
	case f < 0:
		return 0x7fc00000
	}
	return int32(math.Float32bits(math32.Sqrt(f)))
}

// Neg negates every lane. math.MinInt32 wraps to itself.
func (v *Int32x4) Neg() {
	for i := range v.data {
		v.data[i] = -v.data[i]
	}
}

// Dot returns the dot product of v and other, wrapping on overflow.
// The products are summed pairwise like Float32x4.Dot.
func (v Int32x4) Dot(other Int32x4) int32 {
	var prod [4]int32
	mulI32(&prod, &v.data, &other.data)
	return hsum(&prod)
}

// Sum returns the sum of the lanes, wrapping on overflow.
func (v Int32x4) Sum() int32 {
	return hsum(&v.data)
}

// Concat returns (v0, v1, other0, other1): the low half of each operand.
func (v Int32x4) Concat(other Int32x4) Int32x4 {
	return Int32x4{data: concat(&v.data, &other.data)}
}
