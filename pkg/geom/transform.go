package geom

import (
	"math"
	"strings"
)

// TransformKind identifies a single transform operation.
type TransformKind uint8

const (
	TransformMatrix TransformKind = iota
	TransformTranslate
	TransformScale
	TransformRotate
	TransformSkewX
	TransformSkewY
)

// String returns the markup keyword for the kind.
func (k TransformKind) String() string {
	switch k {
	case TransformMatrix:
		return "matrix"
	case TransformTranslate:
		return "translate"
	case TransformScale:
		return "scale"
	case TransformRotate:
		return "rotate"
	case TransformSkewX:
		return "skewX"
	case TransformSkewY:
		return "skewY"
	default:
		return "unknown"
	}
}

// Transform is one operation of a transform list. Args hold the raw
// attribute arguments: angles stay in degrees so serialization reproduces
// the authored values.
//
//	matrix:    a b c d e f
//	translate: tx [ty]
//	scale:     sx [sy]
//	rotate:    angle [cx cy]
//	skewX:     angle
//	skewY:     angle
type Transform struct {
	Kind TransformKind
	Args []float64
}

// Matrix reduces the operation to a single affine matrix.
func (t Transform) Matrix() Matrix2D {
	a := t.Args
	switch t.Kind {
	case TransformMatrix:
		if len(a) == 6 {
			return Matrix2D{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}
		}
	case TransformTranslate:
		switch len(a) {
		case 1:
			return Identity.Translate(a[0], 0)
		case 2:
			return Identity.Translate(a[0], a[1])
		}
	case TransformScale:
		switch len(a) {
		case 1:
			return Identity.Scale(a[0], a[0])
		case 2:
			return Identity.Scale(a[0], a[1])
		}
	case TransformRotate:
		switch len(a) {
		case 1:
			return Identity.Rotate(a[0] * math.Pi / 180)
		case 3:
			return Identity.Translate(a[1], a[2]).
				Rotate(a[0] * math.Pi / 180).
				Translate(-a[1], -a[2])
		}
	case TransformSkewX:
		if len(a) == 1 {
			return Identity.SkewX(a[0] * math.Pi / 180)
		}
	case TransformSkewY:
		if len(a) == 1 {
			return Identity.SkewY(a[0] * math.Pi / 180)
		}
	}
	return Identity
}

// String returns the operation in markup form, e.g. "rotate(30, 5, 5)".
func (t Transform) String() string {
	var b strings.Builder
	b.WriteString(t.Kind.String())
	b.WriteByte('(')
	for i, v := range t.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Ftoa(v))
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether two operations have the same kind and arguments.
func (t Transform) Equal(o Transform) bool {
	if t.Kind != o.Kind || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if t.Args[i] != o.Args[i] {
			return false
		}
	}
	return true
}

// TransformList is an ordered sequence of transform operations. Operations
// compose left to right: the first listed operation is applied first to
// points in the node's coordinate system.
type TransformList []Transform

// Matrix composes the whole list into one affine matrix.
func (l TransformList) Matrix() Matrix2D {
	m := Identity
	for _, t := range l {
		m = m.Mult(t.Matrix())
	}
	return m
}

// String returns the list in transform attribute form.
func (l TransformList) String() string {
	parts := make([]string, len(l))
	for i, t := range l {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Equal reports element-wise equality.
func (l TransformList) Equal(o TransformList) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the list and its argument slices.
func (l TransformList) Clone() TransformList {
	if l == nil {
		return nil
	}
	out := make(TransformList, len(l))
	for i, t := range l {
		out[i] = Transform{Kind: t.Kind, Args: append([]float64(nil), t.Args...)}
	}
	return out
}
