package path

import (
	"strings"

	"golang.org/x/image/math/fixed"

	"github.com/vexel-dev/vexel/pkg/geom"
)

// Adder accumulates path segments. rasterx fillers and dashers satisfy it.
type Adder interface {
	// Start begins a new subpath at the given point.
	Start(a fixed.Point26_6)
	// Line adds a line segment from the current point to b.
	Line(b fixed.Point26_6)
	// QuadBezier adds a quadratic segment with control point b ending at c.
	QuadBezier(b, c fixed.Point26_6)
	// CubeBezier adds a cubic segment with control points b, c ending at d.
	CubeBezier(b, c, d fixed.Point26_6)
	// Stop ends the subpath, closing it back to the start when closeLoop
	// is true.
	Stop(closeLoop bool)
}

// Op is a single path operation.
type Op interface {
	isOp()
}

// MoveTo starts a new subpath.
type MoveTo fixed.Point26_6

// LineTo draws a straight segment.
type LineTo fixed.Point26_6

// QuadTo draws a quadratic bezier: control point then end point.
type QuadTo [2]fixed.Point26_6

// CubicTo draws a cubic bezier: two control points then end point.
type CubicTo [3]fixed.Point26_6

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isOp()  {}
func (LineTo) isOp()  {}
func (QuadTo) isOp()  {}
func (CubicTo) isOp() {}
func (Close) isOp()   {}

// Path is a sequence of operations. The zero value is an empty path ready
// for use.
type Path []Op

func fixp(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func unfix(v fixed.Int26_6) float64 { return float64(v) / 64 }

// Clear empties the path, keeping its storage.
func (p *Path) Clear() { *p = (*p)[:0] }

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) { *p = append(*p, MoveTo(fixp(x, y))) }

// LineTo appends a line segment ending at (x, y).
func (p *Path) LineTo(x, y float64) { *p = append(*p, LineTo(fixp(x, y))) }

// QuadTo appends a quadratic segment with control (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	*p = append(*p, QuadTo{fixp(cx, cy), fixp(x, y)})
}

// CubicTo appends a cubic segment with controls (c1x, c1y), (c2x, c2y)
// ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	*p = append(*p, CubicTo{fixp(c1x, c1y), fixp(c2x, c2y), fixp(x, y)})
}

// Close closes the current subpath.
func (p *Path) Close() { *p = append(*p, Close{}) }

// Start, Line, QuadBezier, CubeBezier and Stop make *Path itself an Adder,
// so one path can be replayed into another.

func (p *Path) Start(a fixed.Point26_6) { *p = append(*p, MoveTo(a)) }

func (p *Path) Line(b fixed.Point26_6) { *p = append(*p, LineTo(b)) }

func (p *Path) QuadBezier(b, c fixed.Point26_6) { *p = append(*p, QuadTo{b, c}) }

func (p *Path) CubeBezier(b, c, d fixed.Point26_6) { *p = append(*p, CubicTo{b, c, d}) }

func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Draw replays the path into dst with every point transformed by m. An open
// subpath interrupted by a new MoveTo is stopped without closing.
func (p Path) Draw(dst Adder, m geom.Matrix2D) {
	tr := func(pt fixed.Point26_6) fixed.Point26_6 {
		x, y := m.Apply(unfix(pt.X), unfix(pt.Y))
		return fixp(x, y)
	}
	open := false
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			if open {
				dst.Stop(false)
			}
			dst.Start(tr(fixed.Point26_6(op)))
			open = true
		case LineTo:
			dst.Line(tr(fixed.Point26_6(op)))
		case QuadTo:
			dst.QuadBezier(tr(op[0]), tr(op[1]))
		case CubicTo:
			dst.CubeBezier(tr(op[0]), tr(op[1]), tr(op[2]))
		case Close:
			dst.Stop(true)
			open = false
		}
	}
	if open {
		dst.Stop(false)
	}
}

// Transform returns a copy of the path with every point mapped through m.
func (p Path) Transform(m geom.Matrix2D) Path {
	if m.IsIdentity() {
		return p.Clone()
	}
	out := make(Path, 0, len(p))
	p.Draw(&out, m)
	return out
}

// Append returns p with q's operations appended. Both inputs are left
// unchanged; subpath boundaries are preserved because every path begins
// with its own MoveTo.
func (p Path) Append(q Path) Path {
	out := make(Path, 0, len(p)+len(q))
	out = append(out, p...)
	out = append(out, q...)
	return out
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}

// Bounds returns the control-point bounding box in user units. Bezier
// control points may lie outside the painted region, so the box is a
// conservative cover. An empty path yields the zero Rect.
func (p Path) Bounds() geom.Rect {
	first := true
	var x0, y0, x1, y1 float64
	add := func(pt fixed.Point26_6) {
		x, y := unfix(pt.X), unfix(pt.Y)
		if first {
			x0, y0, x1, y1 = x, y, x, y
			first = false
			return
		}
		x0, y0 = min(x0, x), min(y0, y)
		x1, y1 = max(x1, x), max(y1, y)
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			add(fixed.Point26_6(op))
		case LineTo:
			add(fixed.Point26_6(op))
		case QuadTo:
			add(op[0])
			add(op[1])
		case CubicTo:
			add(op[0])
			add(op[1])
			add(op[2])
		}
	}
	if first {
		return geom.Rect{}
	}
	return geom.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// String renders the path in d attribute form, e.g. "M10 20 L30 40 Z".
// The output parses back to an equal path.
func (p Path) String() string {
	var b strings.Builder
	for i, op := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch op := op.(type) {
		case MoveTo:
			writeCmd(&b, 'M', fixed.Point26_6(op))
		case LineTo:
			writeCmd(&b, 'L', fixed.Point26_6(op))
		case QuadTo:
			writeCmd(&b, 'Q', op[0], op[1])
		case CubicTo:
			writeCmd(&b, 'C', op[0], op[1], op[2])
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writeCmd(b *strings.Builder, cmd byte, pts ...fixed.Point26_6) {
	b.WriteByte(cmd)
	for i, pt := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(geom.Ftoa(unfix(pt.X)))
		b.WriteByte(' ')
		b.WriteString(geom.Ftoa(unfix(pt.Y)))
	}
}

// Equal reports whether two paths contain the same operations.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}
