package shape

import (
	"image/color"

	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// paintAttrs are the paint declarations shared by the visual shapes.
// fill resolves through ancestors; stroke is local and off unless set.
func paintAttrs() []dom.AttrSpec {
	return []dom.AttrSpec{
		{Name: "fill", Kind: dom.KindPaint, Inherited: true},
		{Name: "stroke", Kind: dom.KindPaint},
		{Name: "stroke-width", Kind: dom.KindNumber, Default: dom.Number(1)},
	}
}

// pathCache memoizes a shape's outline until an attribute changes.
type pathCache struct {
	p     path.Path
	valid bool
}

func (c *pathCache) get(build func() path.Path) path.Path {
	if !c.valid {
		c.p = build()
		c.valid = true
	}
	return c.p
}

func (c *pathCache) invalidate() {
	c.p = nil
	c.valid = false
}

// paintPath fills and strokes p according to the element's paints.
func paintPath(e *dom.Element, c dom.Canvas, p path.Path) {
	if len(p) == 0 {
		return
	}
	if f := e.FillPaint(); f.Kind == dom.PaintColor {
		c.FillPath(p, f.Color)
	}
	if s, ok := strokeColor(e); ok {
		c.StrokePath(p, s, e.NumberAttr("stroke-width", 1))
	}
}

func strokeColor(e *dom.Element) (color.RGBA, bool) {
	v, ok := e.Attr("stroke")
	if !ok {
		return color.RGBA{}, false
	}
	p, ok := v.(dom.Paint)
	if !ok || p.Kind != dom.PaintColor {
		return color.RGBA{}, false
	}
	return p.Color, true
}

// renderOutline is the shared traversal step of the leaf shapes: compose
// the local transform, paint the outline, restore the transform.
func renderOutline(e *dom.Element, c dom.Canvas, p path.Path) error {
	saved := e.PushTransform(c)
	defer e.PopTransform(c, saved)
	paintPath(e, c, p)
	return nil
}
