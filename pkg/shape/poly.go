package shape

import (
	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// Polyline is an open chain of straight segments through "points".
type Polyline struct {
	dom.Element
	cache pathCache
}

// Polygon is a closed chain of straight segments through "points".
type Polygon struct {
	dom.Element
	cache pathCache
}

var polylineInfo = dom.NewTypeInfo("polyline",
	dom.BaseAttrs(append([]dom.AttrSpec{
		{Name: "points", Kind: dom.KindPoints, Default: dom.Points(nil)},
	}, paintAttrs()...)...),
	dom.AllEvents,
	nil,
)

func init() { polylineInfo.New = func() dom.Node { return NewPolyline() } }

var polygonInfo = dom.NewTypeInfo("polygon",
	dom.BaseAttrs(append([]dom.AttrSpec{
		{Name: "points", Kind: dom.KindPoints, Default: dom.Points(nil)},
	}, paintAttrs()...)...),
	dom.AllEvents,
	nil,
)

func init() { polygonInfo.New = func() dom.Node { return NewPolygon() } }

func init() {
	dom.RegisterType(polylineInfo)
	dom.RegisterType(polygonInfo)
}

// NewPolyline returns a polyline with no points.
func NewPolyline() *Polyline {
	p := &Polyline{}
	p.Init(p, polylineInfo)
	return p
}

// NewPolygon returns a polygon with no points.
func NewPolygon() *Polygon {
	p := &Polygon{}
	p.Init(p, polygonInfo)
	return p
}

func (p *Polyline) AttrChanged(string, dom.Value) { p.cache.invalidate() }
func (p *Polygon) AttrChanged(string, dom.Value)  { p.cache.invalidate() }

func polyPoints(e *dom.Element) []float64 {
	v, ok := e.Attr("points")
	if !ok {
		return nil
	}
	pts, _ := v.(dom.Points)
	return pts
}

// LocalPath returns the open chain, empty with fewer than two points.
func (p *Polyline) LocalPath() path.Path {
	return p.cache.get(func() path.Path {
		var out path.Path
		out.AddPolyline(polyPoints(&p.Element), false)
		return out
	})
}

// LocalPath returns the closed chain, empty with fewer than two points.
func (p *Polygon) LocalPath() path.Path {
	return p.cache.get(func() path.Path {
		var out path.Path
		out.AddPolyline(polyPoints(&p.Element), true)
		return out
	})
}

func (p *Polyline) Render(c dom.Canvas) error {
	return renderOutline(&p.Element, c, p.LocalPath())
}

func (p *Polygon) Render(c dom.Canvas) error {
	return renderOutline(&p.Element, c, p.LocalPath())
}
