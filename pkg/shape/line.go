package shape

import (
	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// Line is a straight segment from (x1, y1) to (x2, y2). Lines enclose no
// area, so only the stroke paint draws anything.
type Line struct {
	dom.Element
	cache pathCache
}

var lineInfo = dom.NewTypeInfo("line",
	dom.BaseAttrs(append([]dom.AttrSpec{
		{Name: "x1", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "y1", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "x2", Kind: dom.KindNumber, Default: dom.Number(0)},
		{Name: "y2", Kind: dom.KindNumber, Default: dom.Number(0)},
	}, paintAttrs()...)...),
	dom.AllEvents,
	nil,
)

func init() { lineInfo.New = func() dom.Node { return NewLine() } }

func init() { dom.RegisterType(lineInfo) }

// NewLine returns a zero-length line.
func NewLine() *Line {
	l := &Line{}
	l.Init(l, lineInfo)
	return l
}

func (l *Line) AttrChanged(string, dom.Value) { l.cache.invalidate() }

// LocalPath returns the segment in local coordinates.
func (l *Line) LocalPath() path.Path {
	return l.cache.get(func() path.Path {
		var p path.Path
		p.MoveTo(l.NumberAttr("x1", 0), l.NumberAttr("y1", 0))
		p.LineTo(l.NumberAttr("x2", 0), l.NumberAttr("y2", 0))
		return p
	})
}

func (l *Line) Render(c dom.Canvas) error {
	saved := l.PushTransform(c)
	defer l.PopTransform(c, saved)
	if s, ok := strokeColor(&l.Element); ok {
		c.StrokePath(l.LocalPath(), s, l.NumberAttr("stroke-width", 1))
	}
	return nil
}
