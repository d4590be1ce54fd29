package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/geom"
	"github.com/vexel-dev/vexel/pkg/path"
	"github.com/vexel-dev/vexel/pkg/shape"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func pixelSet(img *image.RGBA, x, y int) bool {
	_, _, _, a := img.At(x, y).RGBA()
	return a > 0
}

func TestFillPath(t *testing.T) {
	c := New(40, 40)
	var p path.Path
	p.AddRect(10, 10, 20, 20)
	c.FillPath(p, red)

	img := c.Image()
	if !pixelSet(img, 20, 20) {
		t.Error("center of filled rect is empty")
	}
	if pixelSet(img, 5, 5) {
		t.Error("pixel outside filled rect is set")
	}
}

func TestFillPathUnderTransform(t *testing.T) {
	c := New(40, 40)
	c.SetTransform(geom.Identity.Translate(20, 0))
	var p path.Path
	p.AddRect(0, 0, 10, 10)
	c.FillPath(p, red)

	img := c.Image()
	if !pixelSet(img, 25, 5) {
		t.Error("translated rect did not land at x+20")
	}
	if pixelSet(img, 5, 5) {
		t.Error("rect drawn at untranslated position")
	}
}

func TestStrokePath(t *testing.T) {
	c := New(40, 40)
	var p path.Path
	p.MoveTo(5, 20)
	p.LineTo(35, 20)
	c.StrokePath(p, red, 4)

	img := c.Image()
	if !pixelSet(img, 20, 20) {
		t.Error("stroked line center is empty")
	}
	if pixelSet(img, 20, 5) {
		t.Error("pixel far from the stroke is set")
	}
}

func TestClip(t *testing.T) {
	c := New(40, 40)
	c.SetClip(geom.Rect{X: 0, Y: 0, W: 20, H: 40})
	var p path.Path
	p.AddRect(0, 0, 40, 40)
	c.FillPath(p, red)

	img := c.Image()
	if !pixelSet(img, 10, 20) {
		t.Error("pixel inside the clip is empty")
	}
	if pixelSet(img, 30, 20) {
		t.Error("pixel outside the clip is set")
	}

	c.ResetClip()
	c.FillPath(p, red)
	if !pixelSet(c.Image(), 30, 20) {
		t.Error("pixel still clipped after ResetClip")
	}
}

func TestDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, red)
		}
	}
	c := New(40, 40)
	c.DrawImage(src, geom.Rect{X: 10, Y: 10, W: 20, H: 20})

	img := c.Image()
	if !pixelSet(img, 20, 20) {
		t.Error("scaled image center is empty")
	}
	if pixelSet(img, 2, 2) {
		t.Error("pixel outside the image destination is set")
	}
}

func TestRenderDocument(t *testing.T) {
	doc := dom.NewDocument()
	if err := doc.SetSize(40, 40); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	r := shape.NewRect()
	for name, v := range map[string]float64{"x": 10, "y": 10, "width": 20, "height": 20} {
		if err := r.SetAttr(name, dom.Number(v)); err != nil {
			t.Fatalf("SetAttr(%q): %v", name, err)
		}
	}
	if err := r.SetAttr("fill", dom.RGB(0xff, 0, 0)); err != nil {
		t.Fatalf("SetAttr(fill): %v", err)
	}
	if err := doc.AppendChild(r); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}

	img, err := Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !pixelSet(img, 20, 20) {
		t.Error("rendered rect center is empty")
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := decoded.Bounds(); got.Dx() != 40 || got.Dy() != 40 {
		t.Errorf("decoded bounds = %v, want 40x40", got)
	}
}

func TestRenderSizeScales(t *testing.T) {
	doc := dom.NewDocument()
	if err := doc.SetSize(10, 10); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	r := shape.NewRect()
	for name, v := range map[string]float64{"width": 10, "height": 10} {
		if err := r.SetAttr(name, dom.Number(v)); err != nil {
			t.Fatalf("SetAttr(%q): %v", name, err)
		}
	}
	if err := r.SetAttr("fill", dom.RGB(0xff, 0, 0)); err != nil {
		t.Fatalf("SetAttr(fill): %v", err)
	}
	if err := doc.AppendChild(r); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}

	// The document covers itself completely, so at any requested size
	// every pixel must be painted, the far corner included.
	img, err := RenderSize(doc, 40, 20)
	if err != nil {
		t.Fatalf("RenderSize: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 40 || got.Dy() != 20 {
		t.Fatalf("bounds = %v, want 40x20", got)
	}
	for _, p := range [][2]int{{1, 1}, {38, 18}, {38, 1}, {1, 18}} {
		if !pixelSet(img, p[0], p[1]) {
			t.Errorf("pixel (%d, %d) is empty, content not scaled to the output", p[0], p[1])
		}
	}
}

func TestRenderNoSize(t *testing.T) {
	doc := dom.NewDocument()
	if _, err := Render(doc); err == nil {
		t.Fatal("Render of unsized document succeeded, want error")
	}
}
