package vec4

import (
	"math"
	"math/rand"
	"testing"
)

func randomF32x4(rng *rand.Rand) [4]float32 {
	var x [4]float32
	for i := range x {
		x[i] = float32(rng.NormFloat64() * 1000)
	}
	return x
}

func randomI32x4(rng *rand.Rand) [4]int32 {
	var x [4]int32
	for i := range x {
		x[i] = int32(rng.Uint32())
	}
	return x
}

func sameBitsF32(a, b [4]float32) bool {
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return false
		}
	}
	return true
}

// TestKernelsMatchBase checks that whichever kernels init installed agree
// bit for bit with the pure Go kernels.
func TestKernelsMatchBase(t *testing.T) {
	t.Logf("kernel level: %s", CurrentName())
	rng := rand.New(rand.NewSource(1))

	binF32 := []struct {
		name      string
		got, want func(dst, a, b *[4]float32)
	}{
		{"add", addF32, baseAddF32},
		{"sub", subF32, baseSubF32},
		{"mul", mulF32, baseMulF32},
	}
	scalarF32 := []struct {
		name      string
		got, want func(dst, a *[4]float32, s float32)
	}{
		{"addScalar", addScalarF32, baseAddScalarF32},
		{"subScalar", subScalarF32, baseSubScalarF32},
		{"mulScalar", mulScalarF32, baseMulScalarF32},
	}
	binI32 := []struct {
		name      string
		got, want func(dst, a, b *[4]int32)
	}{
		{"add", addI32, baseAddI32},
		{"sub", subI32, baseSubI32},
		{"mul", mulI32, baseMulI32},
		{"max", maxI32, baseMaxI32},
		{"min", minI32, baseMinI32},
	}
	scalarI32 := []struct {
		name      string
		got, want func(dst, a *[4]int32, s int32)
	}{
		{"addScalar", addScalarI32, baseAddScalarI32},
		{"subScalar", subScalarI32, baseSubScalarI32},
		{"mulScalar", mulScalarI32, baseMulScalarI32},
	}

	for iter := 0; iter < 1000; iter++ {
		a, b := randomF32x4(rng), randomF32x4(rng)
		s := float32(rng.NormFloat64())
		for _, k := range binF32 {
			var got, want [4]float32
			k.got(&got, &a, &b)
			k.want(&want, &a, &b)
			if !sameBitsF32(got, want) {
				t.Fatalf("%sF32(%v, %v): got %v, want %v", k.name, a, b, got, want)
			}
		}
		for _, k := range scalarF32 {
			var got, want [4]float32
			k.got(&got, &a, s)
			k.want(&want, &a, s)
			if !sameBitsF32(got, want) {
				t.Fatalf("%sF32(%v, %v): got %v, want %v", k.name, a, s, got, want)
			}
		}

		abs := a
		for i := range abs {
			abs[i] = float32(math.Abs(float64(abs[i])))
		}
		var gotSqrt, wantSqrt [4]float32
		sqrtF32(&gotSqrt, &abs)
		baseSqrtF32(&wantSqrt, &abs)
		if !sameBitsF32(gotSqrt, wantSqrt) {
			t.Fatalf("sqrtF32(%v): got %v, want %v", abs, gotSqrt, wantSqrt)
		}

		ia, ib := randomI32x4(rng), randomI32x4(rng)
		is := int32(rng.Uint32())
		for _, k := range binI32 {
			var got, want [4]int32
			k.got(&got, &ia, &ib)
			k.want(&want, &ia, &ib)
			if got != want {
				t.Fatalf("%sI32(%v, %v): got %v, want %v", k.name, ia, ib, got, want)
			}
		}
		for _, k := range scalarI32 {
			var got, want [4]int32
			k.got(&got, &ia, is)
			k.want(&want, &ia, is)
			if got != want {
				t.Fatalf("%sI32(%v, %v): got %v, want %v", k.name, ia, is, got, want)
			}
		}
	}
}

// TestKernelsAliasDst checks that kernels accept dst aliasing a source, which
// every in-place method relies on.
func TestKernelsAliasDst(t *testing.T) {
	x := [4]float32{1, 2, 3, 4}
	addF32(&x, &x, &x)
	if x != [4]float32{2, 4, 6, 8} {
		t.Errorf("addF32 aliased: got %v", x)
	}

	y := [4]int32{1, -2, 3, -4}
	mulI32(&y, &y, &y)
	if y != [4]int32{1, 4, 9, 16} {
		t.Errorf("mulI32 aliased: got %v", y)
	}
}

// useBaseKernels reinstalls the pure Go kernels and reports the scalar level.
func useBaseKernels() {
	addF32 = baseAddF32
	subF32 = baseSubF32
	mulF32 = baseMulF32
	addScalarF32 = baseAddScalarF32
	subScalarF32 = baseSubScalarF32
	mulScalarF32 = baseMulScalarF32
	sqrtF32 = baseSqrtF32

	addI32 = baseAddI32
	subI32 = baseSubI32
	mulI32 = baseMulI32
	maxI32 = baseMaxI32
	minI32 = baseMinI32
	addScalarI32 = baseAddScalarI32
	subScalarI32 = baseSubScalarI32
	mulScalarI32 = baseMulScalarI32

	currentLevel = DispatchScalar
}

// restoreKernels reinstalls the current kernel table when t finishes.
func restoreKernels(t testing.TB) {
	level := currentLevel
	addF, subF, mulF := addF32, subF32, mulF32
	addSF, subSF, mulSF := addScalarF32, subScalarF32, mulScalarF32
	sqrtF := sqrtF32
	addI, subI, mulI, maxI, minI := addI32, subI32, mulI32, maxI32, minI32
	addSI, subSI, mulSI := addScalarI32, subScalarI32, mulScalarI32

	t.Cleanup(func() {
		currentLevel = level
		addF32, subF32, mulF32 = addF, subF, mulF
		addScalarF32, subScalarF32, mulScalarF32 = addSF, subSF, mulSF
		sqrtF32 = sqrtF
		addI32, subI32, mulI32, maxI32, minI32 = addI, subI, mulI, maxI, minI
		addScalarI32, subScalarI32, mulScalarI32 = addSI, subSI, mulSI
	})
}

// TestBaseKernelsContract runs the public operations with the pure Go
// kernels installed.
func TestBaseKernelsContract(t *testing.T) {
	restoreKernels(t)
	useBaseKernels()
	if CurrentLevel() != DispatchScalar {
		t.Fatalf("useBaseKernels: level %v, want scalar", CurrentLevel())
	}

	v := NewFloat32x4(3, 4, 0, 0)
	v.Normalize()
	if v != NewFloat32x4(0.59912109375, 0.798828125, 0, 0) {
		t.Errorf("Normalize on base kernels: got %v", v)
	}

	w := NewInt32x4(1, 2, 3, 4)
	w.Mul(NewInt32x4(5, 6, 7, 8))
	if got := w.Sum(); got != 70 {
		t.Errorf("Mul+Sum on base kernels: got %v, want 70", got)
	}
}
