package shape

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/fetch"
	"github.com/vexel-dev/vexel/pkg/geom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// Image places a fetched raster image into the rectangle (x, y) by
// (width, height). A fetch or decode failure degrades to drawing
// nothing; the tree stays valid either way.
type Image struct {
	dom.Element
	cache pathCache

	res     fetch.Resolver
	img     image.Image
	fetched bool
}

var imageInfo = dom.NewTypeInfo("image",
	dom.BaseAttrs(
		dom.AttrSpec{Name: "x", Kind: dom.KindNumber, Default: dom.Number(0)},
		dom.AttrSpec{Name: "y", Kind: dom.KindNumber, Default: dom.Number(0)},
		dom.AttrSpec{Name: "width", Kind: dom.KindNumber, Default: dom.Number(0)},
		dom.AttrSpec{Name: "height", Kind: dom.KindNumber, Default: dom.Number(0)},
		dom.AttrSpec{Name: "href", NS: "xlink", Kind: dom.KindHref, Default: dom.Href("")},
	),
	dom.AllEvents,
	nil,
)

func init() { imageInfo.New = func() dom.Node { return NewImage() } }

func init() { dom.RegisterType(imageInfo) }

// NewImage returns an image element with no reference.
func NewImage() *Image {
	m := &Image{}
	m.Init(m, imageInfo)
	return m
}

// SetResolver routes href fetches through r. Nil restores fetch.Default.
func (m *Image) SetResolver(r fetch.Resolver) {
	m.res = r
	m.img = nil
	m.fetched = false
}

// Href returns the image reference, empty when unset.
func (m *Image) Href() string {
	v, ok := m.Attr("href")
	if !ok {
		return ""
	}
	h, _ := v.(dom.Href)
	return string(h)
}

func (m *Image) AttrChanged(name string, _ dom.Value) {
	m.cache.invalidate()
	if name == "href" {
		m.img = nil
		m.fetched = false
	}
}

// resolve fetches and decodes the reference once, remembering failure so
// a broken reference is not refetched on every render.
func (m *Image) resolve() image.Image {
	if m.fetched {
		return m.img
	}
	m.fetched = true
	uri := m.Href()
	if uri == "" {
		return nil
	}
	res := m.res
	if res == nil {
		res = fetch.Default
	}
	b, err := res.Fetch(context.Background(), uri)
	if err != nil {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil
	}
	m.img = img
	return m.img
}

// LocalPath is the declared placement rectangle. An image without an
// explicit size contributes nothing: sizing it needs the fetched pixels,
// and geometry queries must not trigger fetches.
func (m *Image) LocalPath() path.Path {
	return m.cache.get(func() path.Path {
		w := m.NumberAttr("width", 0)
		h := m.NumberAttr("height", 0)
		if w <= 0 || h <= 0 {
			return nil
		}
		var p path.Path
		p.AddRect(m.NumberAttr("x", 0), m.NumberAttr("y", 0), w, h)
		return p
	})
}

func (m *Image) Render(c dom.Canvas) error {
	saved := m.PushTransform(c)
	defer m.PopTransform(c, saved)
	img := m.resolve()
	if img == nil {
		return nil
	}
	w := m.NumberAttr("width", 0)
	h := m.NumberAttr("height", 0)
	if w <= 0 || h <= 0 {
		b := img.Bounds()
		if w <= 0 {
			w = float64(b.Dx())
		}
		if h <= 0 {
			h = float64(b.Dy())
		}
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	c.DrawImage(img, geom.Rect{X: m.NumberAttr("x", 0), Y: m.NumberAttr("y", 0), W: w, H: h})
	return nil
}
