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

//go:build amd64 && goexperiment.simd && !noasm

package vec4

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

// 128-bit AVX2 kernels. archsimd gives exactly one XMM register per vector,
// so each kernel is a load, one instruction and a store.
//
// Float max/min are not overridden: MAXPS/MINPS return the second operand
// when either lane is NaN, which differs from the FMAX/FMIN semantics the
// Float32x4 type guarantees.

func init() {
	if NoSimdEnv() || !cpu.X86.HasAVX2 {
		return
	}

	addF32 = avx2AddF32
	subF32 = avx2SubF32
	mulF32 = avx2MulF32
	addScalarF32 = avx2AddScalarF32
	subScalarF32 = avx2SubScalarF32
	mulScalarF32 = avx2MulScalarF32
	sqrtF32 = avx2SqrtF32

	addI32 = avx2AddI32
	subI32 = avx2SubI32
	mulI32 = avx2MulI32
	maxI32 = avx2MaxI32
	minI32 = avx2MinI32
	addScalarI32 = avx2AddScalarI32
	subScalarI32 = avx2SubScalarI32
	mulScalarI32 = avx2MulScalarI32

	currentLevel = DispatchAVX2
}

func avx2AddF32(dst, a, b *[4]float32) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	va.Add(vb).Store(dst)
}

func avx2SubF32(dst, a, b *[4]float32) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	va.Sub(vb).Store(dst)
}

func avx2MulF32(dst, a, b *[4]float32) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	va.Mul(vb).Store(dst)
}

func avx2AddScalarF32(dst, a *[4]float32, s float32) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	va.Add(archsimd.BroadcastFloat32x4(s)).Store(dst)
}

func avx2SubScalarF32(dst, a *[4]float32, s float32) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	va.Sub(archsimd.BroadcastFloat32x4(s)).Store(dst)
}

func avx2MulScalarF32(dst, a *[4]float32, s float32) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	va.Mul(archsimd.BroadcastFloat32x4(s)).Store(dst)
}

// avx2SqrtF32 uses VSQRTPS, which is correctly rounded.
func avx2SqrtF32(dst, a *[4]float32) {
	archsimd.LoadFloat32x4Slice(a[:]).Sqrt().Store(dst)
}

func avx2AddI32(dst, a, b *[4]int32) {
	va := archsimd.LoadInt32x4Slice(a[:])
	vb := archsimd.LoadInt32x4Slice(b[:])
	va.Add(vb).Store(dst)
}

func avx2SubI32(dst, a, b *[4]int32) {
	va := archsimd.LoadInt32x4Slice(a[:])
	vb := archsimd.LoadInt32x4Slice(b[:])
	va.Sub(vb).Store(dst)
}

// avx2MulI32 uses VPMULLD, which keeps the low 32 bits of each product.
func avx2MulI32(dst, a, b *[4]int32) {
	va := archsimd.LoadInt32x4Slice(a[:])
	vb := archsimd.LoadInt32x4Slice(b[:])
	va.Mul(vb).Store(dst)
}

func avx2MaxI32(dst, a, b *[4]int32) {
	va := archsimd.LoadInt32x4Slice(a[:])
	vb := archsimd.LoadInt32x4Slice(b[:])
	va.Max(vb).Store(dst)
}

func avx2MinI32(dst, a, b *[4]int32) {
	va := archsimd.LoadInt32x4Slice(a[:])
	vb := archsimd.LoadInt32x4Slice(b[:])
	va.Min(vb).Store(dst)
}

func avx2AddScalarI32(dst, a *[4]int32, s int32) {
	va := archsimd.LoadInt32x4Slice(a[:])
	va.Add(archsimd.BroadcastInt32x4(s)).Store(dst)
}

func avx2SubScalarI32(dst, a *[4]int32, s int32) {
	va := archsimd.LoadInt32x4Slice(a[:])
	va.Sub(archsimd.BroadcastInt32x4(s)).Store(dst)
}

func avx2MulScalarI32(dst, a *[4]int32, s int32) {
	va := archsimd.LoadInt32x4Slice(a[:])
	va.Mul(archsimd.BroadcastInt32x4(s)).Store(dst)
}
