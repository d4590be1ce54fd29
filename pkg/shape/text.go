package shape

import (
	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// Text draws its content string with the baseline anchored at (x, y).
// Glyphs are not converted to outlines, so text contributes nothing to
// path aggregation.
type Text struct {
	dom.Element
}

var textInfo = dom.NewTypeInfo("text",
	dom.BaseAttrs(
		dom.AttrSpec{Name: "x", Kind: dom.KindNumber, Default: dom.Number(0)},
		dom.AttrSpec{Name: "y", Kind: dom.KindNumber, Default: dom.Number(0)},
		dom.AttrSpec{Name: "fill", Kind: dom.KindPaint, Inherited: true},
	),
	dom.AllEvents,
	nil,
)

func init() { textInfo.New = func() dom.Node { return NewText() } }

func init() { dom.RegisterType(textInfo) }

// NewText returns a text element with empty content.
func NewText() *Text {
	t := &Text{}
	t.Init(t, textInfo)
	return t
}

// LocalPath reports no outline; see the type comment.
func (t *Text) LocalPath() path.Path { return nil }

func (t *Text) Render(c dom.Canvas) error {
	saved := t.PushTransform(c)
	defer t.PopTransform(c, saved)
	s := t.Content()
	if s == "" {
		return nil
	}
	f := t.FillPaint()
	if f.Kind != dom.PaintColor {
		return nil
	}
	c.FillText(s, t.NumberAttr("x", 0), t.NumberAttr("y", 0), f.Color)
	return nil
}
