// Package vec4 provides fixed four-lane float32 and int32 vectors with
// elementwise arithmetic and lane reductions.
//
// The lane primitives run on SIMD hardware when the build and the CPU allow
// it (see CurrentLevel) and on pure Go otherwise. Results are the same on
// every strategy, including the two approximations the types carry on
// purpose: Float32x4.Normalize multiplies by an 8-bit reciprocal estimate of
// the magnitude, and Int32x4.Sqrt is a float square root applied to the raw
// lane bits.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-vec4/vec4"
//
//	v := vec4.NewFloat32x4(3, 4, 0, 0)
//	v.Add(vec4.UnitZ())
//	m := v.Magnitude() // sqrt(26)
//
// Operations that transform lanes (Add, Sqrt, Clamp, ...) modify the
// receiver in place. Reductions and constructors (Dot, Sum, Magnitude,
// Concat) return new values and leave their operands untouched.
package vec4

// Lanes is a constraint for the element kinds a four-lane vector can hold.
type Lanes interface {
	~float32 | ~int32
}

// NumLanes is the fixed lane count of every vector in this package.
const NumLanes = 4

// hsum reduces four lanes with a pairwise tree: (x0+x1)+(x2+x3).
// This is the order of a NEON pairwise add followed by a swapped-halves add.
func hsum[T Lanes](x *[4]T) T {
	return (x[0] + x[1]) + (x[2] + x[3])
}

// concat merges the low halves of a and b.
func concat[T Lanes](a, b *[4]T) [4]T {
	return [4]T{a[0], a[1], b[0], b[1]}
}
