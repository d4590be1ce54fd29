package shape

import (
	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// Ellipse is an axis-aligned ellipse centered at (cx, cy).
type Ellipse struct {
	dom.Element
	cache pathCache
}

var ellipseInfo = dom.NewTypeInfo("ellipse",
	dom.BaseAttrs(append([]dom.AttrSpec{
		{Name: "cx", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "cy", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "rx", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "ry", Kind: dom.KindNumber, Default: dom.Number(0)},
	}, paintAttrs()...)...),
	dom.AllEvents,
	nil,
)

func init() { ellipseInfo.New = func() dom.Node { return NewEllipse() } }

func init() { dom.RegisterType(ellipseInfo) }

// NewEllipse returns an ellipse with zero radii.
func NewEllipse() *Ellipse {
	e := &Ellipse{}
	e.Init(e, ellipseInfo)
	return e
}

func (e *Ellipse) AttrChanged(string, dom.Value) { e.cache.invalidate() }

// LocalPath returns the outline in local coordinates, empty when either
// radius is not positive.
func (e *Ellipse) LocalPath() path.Path {
	return e.cache.get(func() path.Path {
		rx := e.NumberAttr("rx", 0)
		ry := e.NumberAttr("ry", 0)
		if rx <= 0 || ry <= 0 {
			return nil
		}
		var p path.Path
		p.AddEllipse(e.NumberAttr("cx", 0), e.NumberAttr("cy", 0), rx, ry)
		return p
	})
}

func (e *Ellipse) Render(c dom.Canvas) error {
	return renderOutline(&e.Element, c, e.LocalPath())
}
