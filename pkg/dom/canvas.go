package dom

import (
	"image"
	"image/color"

	"github.com/vexel-dev/vexel/pkg/geom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// Canvas is the drawing surface capability handed to rendering
// traversals. Paths and rectangles are in user coordinates; the canvas
// applies its current transform when drawing. The tree never touches
// pixels directly.
type Canvas interface {
	// Transform returns the current transform.
	Transform() geom.Matrix2D
	// SetTransform replaces the current transform.
	SetTransform(geom.Matrix2D)
	// FillPath fills p under the current transform.
	FillPath(p path.Path, c color.Color)
	// StrokePath strokes p's outline with the given width in user units.
	StrokePath(p path.Path, c color.Color, width float64)
	// DrawImage draws img scaled into dst under the current transform.
	DrawImage(img image.Image, dst geom.Rect)
	// FillText draws s with its baseline starting at (x, y).
	FillText(s string, x, y float64, c color.Color)
	// SetClip restricts drawing to r under the current transform.
	SetClip(r geom.Rect)
	// ResetClip removes the clip set by SetClip.
	ResetClip()
}

// Renderable is implemented by nodes that draw themselves onto a Canvas.
type Renderable interface {
	Node
	Render(c Canvas) error
}

// PushTransform composes this node's transform list onto the canvas's
// current transform and returns the prior transform for PopTransform.
// Every push must be matched by exactly one pop before control returns
// to the parent, including early returns; otherwise siblings observe a
// stale transform.
func (e *Element) PushTransform(c Canvas) geom.Matrix2D {
	saved := c.Transform()
	if tl := e.Transform(); len(tl) > 0 {
		c.SetTransform(saved.Mult(tl.Matrix()))
	}
	return saved
}

// PopTransform restores the transform saved by the matching PushTransform.
func (e *Element) PopTransform(c Canvas, saved geom.Matrix2D) {
	c.SetTransform(saved)
}

// RenderChildren renders every renderable child in order. Later children
// draw over earlier ones.
func RenderChildren(n Node, c Canvas) error {
	for _, child := range n.Base().Children() {
		if r, ok := child.(Renderable); ok {
			if err := r.Render(c); err != nil {
				return err
			}
		}
	}
	return nil
}
