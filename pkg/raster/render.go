package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/geom"
)

// Render rasterizes the document at its declared size. Zero or negative
// declared dimensions are an error: the caller must size the document
// (or use RenderSize) before rasterizing.
func Render(doc *dom.Document) (*image.RGBA, error) {
	w, h := doc.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: document has no size (%gx%g)", w, h)
	}
	return RenderSize(doc, int(w), int(h))
}

// RenderSize rasterizes the document into a w-by-h image regardless of
// its declared size. When the document declares a size, its content is
// scaled to fill the requested pixels; without one the document's own
// coordinates map to pixels directly.
func RenderSize(doc *dom.Document, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", w, h)
	}
	c := New(w, h)
	if dw, dh := doc.Size(); dw > 0 && dh > 0 {
		c.SetTransform(geom.Identity.Scale(float64(w)/dw, float64(h)/dh))
	}
	if err := doc.Render(c); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
