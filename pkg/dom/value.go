package dom

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/vexel-dev/vexel/pkg/geom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// Value is a typed attribute value. Implementations are small immutable
// values; Clone exists for the container kinds that hold slices.
type Value interface {
	// Text renders the value in markup attribute form.
	Text() string
	// Equal reports semantic equality with another value. Values of
	// different kinds are never equal.
	Equal(Value) bool
	// Clone returns a copy sharing no mutable state with the receiver.
	Clone() Value
}

// Number is a float-valued attribute such as a coordinate or length.
type Number float64

func (n Number) Text() string { return geom.Ftoa(float64(n)) }

func (n Number) Equal(o Value) bool {
	m, ok := o.(Number)
	return ok && m == n
}

func (n Number) Clone() Value { return n }

// String is a free-form string attribute.
type String string

func (s String) Text() string { return string(s) }

func (s String) Equal(o Value) bool {
	t, ok := o.(String)
	return ok && t == s
}

func (s String) Clone() Value { return s }

// Bool is a boolean attribute serialized as "true"/"false".
type Bool bool

func (b Bool) Text() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Equal(o Value) bool {
	c, ok := o.(Bool)
	return ok && c == b
}

func (b Bool) Clone() Value { return b }

// PaintKind distinguishes the states of a paint attribute.
type PaintKind uint8

const (
	// PaintUnset is the explicit "inherit from ancestor" sentinel. It is
	// never written to markup.
	PaintUnset PaintKind = iota
	// PaintNone disables painting.
	PaintNone
	// PaintColor paints with a solid color.
	PaintColor
)

// Paint is the value of an inheritable paint attribute such as fill.
type Paint struct {
	Kind  PaintKind
	Color color.RGBA
}

// Unset is the inherit-from-ancestor paint sentinel.
var Unset = Paint{Kind: PaintUnset}

// NoPaint is the explicit "none" paint.
var NoPaint = Paint{Kind: PaintNone}

// RGB builds an opaque color paint.
func RGB(r, g, b uint8) Paint {
	return Paint{Kind: PaintColor, Color: color.RGBA{R: r, G: g, B: b, A: 0xff}}
}

func (p Paint) Text() string {
	switch p.Kind {
	case PaintNone:
		return "none"
	case PaintColor:
		return fmt.Sprintf("#%02x%02x%02x", p.Color.R, p.Color.G, p.Color.B)
	default:
		return ""
	}
}

func (p Paint) Equal(o Value) bool {
	q, ok := o.(Paint)
	if !ok || q.Kind != p.Kind {
		return false
	}
	return p.Kind != PaintColor || p.Color == q.Color
}

func (p Paint) Clone() Value { return p }

// ParsePaint parses a paint attribute value: "none", "#rgb", "#rrggbb"
// or a named color.
func ParsePaint(s string) (Paint, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "none":
		return NoPaint, nil
	case strings.HasPrefix(s, "#"):
		c, err := parseHexColor(s)
		if err != nil {
			return Paint{}, err
		}
		return Paint{Kind: PaintColor, Color: c}, nil
	default:
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return Paint{Kind: PaintColor, Color: c}, nil
		}
		return Paint{}, fmt.Errorf("dom: unknown paint %q", s)
	}
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("dom: bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("dom: bad color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// parseNumber parses a numeric attribute value, tolerating a px suffix.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	return strconv.ParseFloat(s, 64)
}

// Href is a resource reference attribute value, such as an image source.
// It is stored verbatim; resolution happens at the fetch boundary.
type Href string

func (h Href) Text() string { return string(h) }

func (h Href) Equal(o Value) bool {
	i, ok := o.(Href)
	return ok && i == h
}

func (h Href) Clone() Value { return h }

// Transforms is a transform-list attribute value.
type Transforms geom.TransformList

func (t Transforms) Text() string { return geom.TransformList(t).String() }

func (t Transforms) Equal(o Value) bool {
	u, ok := o.(Transforms)
	return ok && geom.TransformList(t).Equal(geom.TransformList(u))
}

func (t Transforms) Clone() Value {
	return Transforms(geom.TransformList(t).Clone())
}

// ViewBox is a viewBox attribute value.
type ViewBox geom.ViewBox

func (v ViewBox) Text() string { return geom.ViewBox(v).String() }

func (v ViewBox) Equal(o Value) bool {
	u, ok := o.(ViewBox)
	return ok && u == v
}

func (v ViewBox) Clone() Value { return v }

// Points is a point-list attribute value, as used by polyline and
// polygon. It holds x,y pairs.
type Points []float64

func (p Points) Text() string {
	var b strings.Builder
	for i := 0; i+1 < len(p); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(geom.Ftoa(p[i]))
		b.WriteByte(',')
		b.WriteString(geom.Ftoa(p[i+1]))
	}
	return b.String()
}

func (p Points) Equal(o Value) bool {
	q, ok := o.(Points)
	if !ok || len(q) != len(p) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func (p Points) Clone() Value { return Points(append([]float64(nil), p...)) }

// PathData is a path geometry attribute value. Serialization emits the
// normalized absolute form, which parses back to an equal path.
type PathData path.Path

func (p PathData) Text() string { return path.Path(p).String() }

func (p PathData) Equal(o Value) bool {
	q, ok := o.(PathData)
	return ok && path.Path(p).Equal(path.Path(q))
}

func (p PathData) Clone() Value { return PathData(path.Path(p).Clone()) }
