// Package geom provides the affine transform, rectangle, and fingerprint
// primitives shared by every rendering package: the pixel pool sizes
// buffers from rectangles, the render cache hashes transforms, and the
// group renderer composes transforms down the tree.
package geom

import "math"

// Transform is a 2D affine transformation in row-major form:
//
//	| A  B  C |
//	| D  E  F |
//
// representing x' = A*x + B*y + C, y' = D*x + E*y + F.
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// Translate returns a translation transform.
func Translate(x, y float64) Transform {
	return Transform{A: 1, B: 0, C: x, D: 0, E: 1, F: y}
}

// Scale returns a scaling transform.
func Scale(x, y float64) Transform {
	return Transform{A: x, B: 0, C: 0, D: 0, E: y, F: 0}
}

// Rotate returns a rotation transform (angle in radians).
func Rotate(angle float64) Transform {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Transform{A: cos, B: -sin, C: 0, D: sin, E: cos, F: 0}
}

// PreConcat returns t ∘ other: other is applied first, then t.
// This is the operation the group renderer uses to fold a parent
// transform with a node's local transform: T' = T.PreConcat(local).
func (t Transform) PreConcat(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// TransformPoint applies the transform to a point.
func (t Transform) TransformPoint(x, y float64) (float64, float64) {
	return t.A*x + t.B*y + t.C, t.D*x + t.E*y + t.F
}

// TransformVector applies the transform to a vector, ignoring translation.
func (t Transform) TransformVector(x, y float64) (float64, float64) {
	return t.A*x + t.B*y, t.D*x + t.E*y
}

// Invert returns the inverse transform and whether it exists.
// A non-invertible (singular) transform returns the identity and false.
func (t Transform) Invert() (Transform, bool) {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}
	invDet := 1.0 / det
	return Transform{
		A: t.E * invDet,
		B: -t.B * invDet,
		C: (t.B*t.F - t.C*t.E) * invDet,
		D: -t.D * invDet,
		E: t.A * invDet,
		F: (t.C*t.D - t.A*t.F) * invDet,
	}, true
}

// IsIdentity reports whether every component of t compares equal (==)
// to the identity's; a -0 component counts as 0 here.
func (t Transform) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 &&
		t.D == 0 && t.E == 1 && t.F == 0
}

// Equal reports bitwise equality, the notion P6 requires for cache
// soundness: two transforms that merely compare equal under tolerance
// must still be allowed to diverge in the cache.
func (t Transform) Equal(o Transform) bool {
	return math.Float64bits(t.A) == math.Float64bits(o.A) &&
		math.Float64bits(t.B) == math.Float64bits(o.B) &&
		math.Float64bits(t.C) == math.Float64bits(o.C) &&
		math.Float64bits(t.D) == math.Float64bits(o.D) &&
		math.Float64bits(t.E) == math.Float64bits(o.E) &&
		math.Float64bits(t.F) == math.Float64bits(o.F)
}
