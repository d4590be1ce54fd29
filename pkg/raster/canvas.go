package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/vexel-dev/vexel/pkg/geom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// Canvas rasterizes dom render traversals into an RGBA image. It keeps
// the current transform the tree's push/pop discipline manipulates and
// maps the rectangular clip onto the scanner's clip rectangle.
type Canvas struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher

	xform geom.Matrix2D
}

// New returns a canvas drawing into a fresh w-by-h image with an
// identity transform and no clip.
func New(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Canvas{
		img:     img,
		scanner: scanner,
		filler:  rasterx.NewFiller(w, h, scanner),
		dasher:  rasterx.NewDasher(w, h, scanner),
		xform:   geom.Identity,
	}
}

// Image returns the destination image shared with the rasterizer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Transform returns the current transform.
func (c *Canvas) Transform() geom.Matrix2D { return c.xform }

// SetTransform replaces the current transform.
func (c *Canvas) SetTransform(m geom.Matrix2D) { c.xform = m }

// FillPath fills p under the current transform using the non-zero
// winding rule.
func (c *Canvas) FillPath(p path.Path, col color.Color) {
	if len(p) == 0 {
		return
	}
	c.scanner.SetColor(col)
	p.Draw(c.filler, c.xform)
	c.filler.Draw()
	c.filler.Clear()
}

// StrokePath strokes p's outline. The width is in user units; the
// device width follows the current transform's scale.
func (c *Canvas) StrokePath(p path.Path, col color.Color, width float64) {
	if len(p) == 0 || width <= 0 {
		return
	}
	c.scanner.SetColor(col)
	dev := width * c.scaleFactor()
	c.dasher.SetStroke(
		fixed.Int26_6(dev*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		nil, 0)
	p.Draw(c.dasher, c.xform)
	c.dasher.Draw()
	c.dasher.Clear()
}

// scaleFactor is the linear scale of the current transform, the square
// root of the absolute determinant.
func (c *Canvas) scaleFactor() float64 {
	det := c.xform.A*c.xform.D - c.xform.B*c.xform.C
	return math.Sqrt(math.Abs(det))
}

// DrawImage draws img scaled into dst under the current transform with
// bilinear filtering.
func (c *Canvas) DrawImage(img image.Image, dst geom.Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || dst.Empty() {
		return
	}
	m := c.xform.
		Mult(geom.Identity.Translate(dst.X, dst.Y)).
		Mult(geom.Identity.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy())))
	aff := f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}
	draw.ApproxBiLinear.Transform(c.img, aff, img, b, draw.Over, nil)
}

// FillText draws s with its baseline starting at (x, y) in user
// coordinates. The fixed bitmap face only honors the transform's
// translation, not its scale or rotation.
func (c *Canvas) FillText(s string, x, y float64, col color.Color) {
	if s == "" {
		return
	}
	dx, dy := c.xform.Apply(x, y)
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(dx * 64), Y: fixed.Int26_6(dy * 64)},
	}
	d.DrawString(s)
}

// SetClip restricts drawing to r under the current transform. The clip
// is the axis-aligned device bounds of the transformed rectangle.
func (c *Canvas) SetClip(r geom.Rect) {
	x0, y0 := c.xform.Apply(r.X, r.Y)
	x1, y1 := c.xform.Apply(r.MaxX(), r.MaxY())
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	clip := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)))
	c.scanner.SetClip(clip.Intersect(c.img.Bounds()))
}

// ResetClip removes the clip set by SetClip.
func (c *Canvas) ResetClip() {
	c.scanner.SetClip(c.img.Bounds())
}
