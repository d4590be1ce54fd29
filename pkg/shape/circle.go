package shape

import (
	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// Circle is a circle centered at (cx, cy) with radius r.
type Circle struct {
	dom.Element
	cache pathCache
}

var circleInfo = dom.NewTypeInfo("circle",
	dom.BaseAttrs(append([]dom.AttrSpec{
		{Name: "cx", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "cy", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "r", Kind: dom.KindNumber, Default: dom.Number(0)},
	}, paintAttrs()...)...),
	dom.AllEvents,
	nil,
)

func init() { circleInfo.New = func() dom.Node { return NewCircle() } }

func init() { dom.RegisterType(circleInfo) }

// NewCircle returns a circle with zero radius.
func NewCircle() *Circle {
	c := &Circle{}
	c.Init(c, circleInfo)
	return c
}

func (c *Circle) AttrChanged(string, dom.Value) { c.cache.invalidate() }

// LocalPath returns the outline in local coordinates, empty when the
// radius is not positive.
func (c *Circle) LocalPath() path.Path {
	return c.cache.get(func() path.Path {
		r := c.NumberAttr("r", 0)
		if r <= 0 {
			return nil
		}
		var p path.Path
		p.AddCircle(c.NumberAttr("cx", 0), c.NumberAttr("cy", 0), r)
		return p
	})
}

func (c *Circle) Render(cv dom.Canvas) error {
	return renderOutline(&c.Element, cv, c.LocalPath())
}
