package geom

import (
	"fmt"
	"strings"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Union returns the smallest rectangle containing both r and o. An empty
// rectangle is treated as absent.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.MaxX(), o.MaxX())
	y1 := max(r.MaxY(), o.MaxY())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether the point lies inside or on the edge of r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.MaxX() && y >= r.Y && y <= r.MaxY()
}

// ViewBox is the viewBox attribute of a document root: a rectangle in user
// units that maps onto the viewport.
type ViewBox struct {
	MinX, MinY, W, H float64
}

// String returns the viewBox in attribute form, "minx miny w h".
func (v ViewBox) String() string {
	return strings.Join([]string{Ftoa(v.MinX), Ftoa(v.MinY), Ftoa(v.W), Ftoa(v.H)}, " ")
}

// ParseViewBox parses a viewBox attribute value.
func ParseViewBox(s string) (ViewBox, error) {
	vals, err := ParseFloats(s)
	if err != nil {
		return ViewBox{}, err
	}
	if len(vals) != 4 {
		return ViewBox{}, fmt.Errorf("geom: viewBox needs 4 numbers, got %d", len(vals))
	}
	return ViewBox{MinX: vals[0], MinY: vals[1], W: vals[2], H: vals[3]}, nil
}
