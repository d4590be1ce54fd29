package geom

import (
	"math"
	"strconv"
)

// Matrix2D is a 2D affine transform in SVG order:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the neutral transform.
var Identity = Matrix2D{A: 1, D: 1}

// Mult returns the composition of t and s: the result applies s first,
// then t.
func (t Matrix2D) Mult(s Matrix2D) Matrix2D {
	return Matrix2D{
		A: t.A*s.A + t.C*s.B,
		B: t.B*s.A + t.D*s.B,
		C: t.A*s.C + t.C*s.D,
		D: t.B*s.C + t.D*s.D,
		E: t.A*s.E + t.C*s.F + t.E,
		F: t.B*s.E + t.D*s.F + t.F,
	}
}

// Apply transforms the point (x, y).
func (t Matrix2D) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// Translate returns t composed with a translation by (x, y).
func (t Matrix2D) Translate(x, y float64) Matrix2D {
	return t.Mult(Matrix2D{A: 1, D: 1, E: x, F: y})
}

// Scale returns t composed with a scale by (x, y).
func (t Matrix2D) Scale(x, y float64) Matrix2D {
	return t.Mult(Matrix2D{A: x, D: y})
}

// Rotate returns t composed with a rotation by a radians about the origin.
func (t Matrix2D) Rotate(a float64) Matrix2D {
	sin, cos := math.Sin(a), math.Cos(a)
	return t.Mult(Matrix2D{A: cos, B: sin, C: -sin, D: cos})
}

// SkewX returns t composed with a skew of a radians along the x axis.
func (t Matrix2D) SkewX(a float64) Matrix2D {
	return t.Mult(Matrix2D{A: 1, D: 1, C: math.Tan(a)})
}

// SkewY returns t composed with a skew of a radians along the y axis.
func (t Matrix2D) SkewY(a float64) Matrix2D {
	return t.Mult(Matrix2D{A: 1, D: 1, B: math.Tan(a)})
}

// IsIdentity reports whether t is exactly the identity transform.
func (t Matrix2D) IsIdentity() bool {
	return t == Identity
}

const epsilon = 1e-9

// Near reports whether t and s are equal within a small tolerance,
// absorbing float noise from trig-heavy compositions.
func (t Matrix2D) Near(s Matrix2D) bool {
	return math.Abs(t.A-s.A) < epsilon &&
		math.Abs(t.B-s.B) < epsilon &&
		math.Abs(t.C-s.C) < epsilon &&
		math.Abs(t.D-s.D) < epsilon &&
		math.Abs(t.E-s.E) < epsilon &&
		math.Abs(t.F-s.F) < epsilon
}

// Ftoa formats a float in invariant markup form: dot decimal separator,
// no grouping, shortest representation that round-trips.
func Ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
