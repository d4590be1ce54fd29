package dom

import (
	"image"
	"image/color"
	"testing"

	"github.com/vexel-dev/vexel/pkg/geom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// trackingCanvas records the transform in effect at every fill so tests
// can observe what each node actually drew under.
type trackingCanvas struct {
	xform geom.Matrix2D
	fills []geom.Matrix2D
}

func newTrackingCanvas() *trackingCanvas { return &trackingCanvas{xform: geom.Identity} }

func (c *trackingCanvas) Transform() geom.Matrix2D     { return c.xform }
func (c *trackingCanvas) SetTransform(m geom.Matrix2D) { c.xform = m }
func (c *trackingCanvas) FillPath(path.Path, color.Color) {
	c.fills = append(c.fills, c.xform)
}
func (c *trackingCanvas) StrokePath(path.Path, color.Color, float64)     {}
func (c *trackingCanvas) DrawImage(image.Image, geom.Rect)               {}
func (c *trackingCanvas) FillText(string, float64, float64, color.Color) {}
func (c *trackingCanvas) SetClip(geom.Rect)                              {}
func (c *trackingCanvas) ResetClip()                                     {}

// mark is a renderable leaf: it applies its transform, fills a square
// of its declared size, and restores. Size zero returns before drawing,
// which still must leave the ambient transform untouched.
type mark struct{ Element }

var markInfo = NewTypeInfo("mark",
	BaseAttrs(AttrSpec{Name: "size", Kind: KindNumber, Default: Number(0)}),
	nil,
	nil,
)

func init() {
	markInfo.New = func() Node { return newMark() }
	RegisterType(markInfo)
}

func newMark() *mark {
	m := &mark{}
	m.Init(m, markInfo)
	return m
}

func (m *mark) Render(c Canvas) error {
	saved := m.PushTransform(c)
	defer m.PopTransform(c, saved)
	size := m.NumberAttr("size", 0)
	if size <= 0 {
		return nil
	}
	var p path.Path
	p.AddRect(0, 0, size, size)
	c.FillPath(p, color.Black)
	return nil
}

// layer is a renderable container that renders its children under its
// own transform.
type layer struct{ Element }

var layerInfo = NewTypeInfo("layer", BaseAttrs(), nil, nil)

func init() {
	layerInfo.New = func() Node { return newLayer() }
	RegisterType(layerInfo)
}

func newLayer() *layer {
	l := &layer{}
	l.Init(l, layerInfo)
	return l
}

func (l *layer) Render(c Canvas) error {
	saved := l.PushTransform(c)
	defer l.PopTransform(c, saved)
	return RenderChildren(l, c)
}

func scaleOp(s float64) geom.TransformList {
	return geom.TransformList{{Kind: geom.TransformScale, Args: []float64{s}}}
}

// Each child's push must be undone before its sibling renders: a scaled
// leaf and an early-return leaf both restore the ambient transform, so
// the last sibling draws under exactly the container's transform and the
// canvas comes back with the caller's transform intact.
func TestRenderRestoresTransform(t *testing.T) {
	parent := newLayer()
	if err := parent.SetTransform(geom.TransformList{
		{Kind: geom.TransformTranslate, Args: []float64{10, 20}},
	}); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	scaled := newMark()
	if err := scaled.SetAttr("size", Number(1)); err != nil {
		t.Fatalf("SetAttr(size): %v", err)
	}
	if err := scaled.SetTransform(scaleOp(2)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	// Size zero: Render pushes, then returns before drawing anything.
	empty := newMark()
	if err := empty.SetTransform(scaleOp(3)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	plain := newMark()
	if err := plain.SetAttr("size", Number(1)); err != nil {
		t.Fatalf("SetAttr(size): %v", err)
	}

	for _, n := range []Node{scaled, empty, plain} {
		if err := parent.AppendChild(n); err != nil {
			t.Fatalf("AppendChild: %v", err)
		}
	}

	c := newTrackingCanvas()
	base := geom.Identity.Translate(100, 0)
	c.SetTransform(base)
	if err := parent.Render(c); err != nil {
		t.Fatalf("Render: %v", err)
	}

	ambient := base.Translate(10, 20)
	if len(c.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(c.fills))
	}
	if want := ambient.Scale(2, 2); !c.fills[0].Near(want) {
		t.Errorf("scaled leaf drew under %+v, want %+v", c.fills[0], want)
	}
	// plain renders after both earlier siblings; seeing the container's
	// transform proves each of them, the early return included, popped.
	if !c.fills[1].Near(ambient) {
		t.Errorf("last leaf drew under %+v, want container transform %+v", c.fills[1], ambient)
	}
	if !c.Transform().Near(base) {
		t.Errorf("canvas transform after render = %+v, want %+v", c.Transform(), base)
	}
}
