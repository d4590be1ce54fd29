package shape

import (
	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// Rect is an axis-aligned rectangle, optionally with rounded corners.
type Rect struct {
	dom.Element
	cache pathCache
}

var rectInfo = dom.NewTypeInfo("rect",
	dom.BaseAttrs(append([]dom.AttrSpec{
		{Name: "x", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "y", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "width", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "height", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "rx", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "ry", Kind: dom.KindNumber, Default: dom.Number(0)},
	}, paintAttrs()...)...),
	dom.AllEvents,
	nil,
)

func init() { rectInfo.New = func() dom.Node { return NewRect() } }

func init() { dom.RegisterType(rectInfo) }

// NewRect returns a rectangle with zero size.
func NewRect() *Rect {
	r := &Rect{}
	r.Init(r, rectInfo)
	return r
}

func (r *Rect) AttrChanged(string, dom.Value) { r.cache.invalidate() }

// LocalPath returns the outline in local coordinates. A rectangle with a
// non-positive width or height has no outline. When only one corner
// radius is given the other mirrors it.
func (r *Rect) LocalPath() path.Path {
	return r.cache.get(func() path.Path {
		w := r.NumberAttr("width", 0)
		h := r.NumberAttr("height", 0)
		if w <= 0 || h <= 0 {
			return nil
		}
		x := r.NumberAttr("x", 0)
		y := r.NumberAttr("y", 0)
		rx := r.NumberAttr("rx", 0)
		ry := r.NumberAttr("ry", 0)
		if rx == 0 {
			rx = ry
		}
		if ry == 0 {
			ry = rx
		}
		var p path.Path
		if rx > 0 && ry > 0 {
			p.AddRoundRect(x, y, w, h, rx, ry)
		} else {
			p.AddRect(x, y, w, h)
		}
		return p
	})
}

func (r *Rect) Render(c dom.Canvas) error {
	return renderOutline(&r.Element, c, r.LocalPath())
}
