package shape

import (
	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// PathShape is a freeform outline carried in the "d" attribute.
type PathShape struct {
	dom.Element
}

var pathInfo = dom.NewTypeInfo("path",
	dom.BaseAttrs(append([]dom.AttrSpec{
		{Name: "d", Kind: dom.KindPathData, Default: dom.PathData(nil)},
	}, paintAttrs()...)...),
	dom.AllEvents,
	nil,
)

func init() { pathInfo.New = func() dom.Node { return NewPathShape() } }

func init() { dom.RegisterType(pathInfo) }

// NewPathShape returns a path element with no outline.
func NewPathShape() *PathShape {
	p := &PathShape{}
	p.Init(p, pathInfo)
	return p
}

// SetPath stores p as the element's outline.
func (ps *PathShape) SetPath(p path.Path) error {
	return ps.SetAttr("d", dom.PathData(p))
}

// LocalPath returns the stored outline. The "d" value already is the
// path, so there is nothing to cache.
func (ps *PathShape) LocalPath() path.Path {
	v, ok := ps.Attr("d")
	if !ok {
		return nil
	}
	d, _ := v.(dom.PathData)
	return path.Path(d)
}

func (ps *PathShape) Render(c dom.Canvas) error {
	return renderOutline(&ps.Element, c, ps.LocalPath())
}
