package dom

import "github.com/vexel-dev/vexel/pkg/geom"

// Markup namespaces and the document version emitted on the root element.
const (
	Namespace      = "http://www.w3.org/2000/svg"
	XLinkNamespace = "http://www.w3.org/1999/xlink"
	Version        = "1.1"
)

// Document is the root of an element tree. It owns the identifier
// registry every attached descendant participates in and carries the
// switch for automatic event-binding attributes.
type Document struct {
	Element

	// AutoPublishEvents controls whether serialization emits binding
	// attributes for observed events. On for new documents.
	AutoPublishEvents bool

	ids *IDRegistry
}

var documentInfo = NewTypeInfo("svg",
	BaseAttrs(
		AttrSpec{Name: "width", Kind: KindNumber},
		AttrSpec{Name: "height", Kind: KindNumber},
		AttrSpec{Name: "viewBox", Kind: KindViewBox},
		AttrSpec{Name: "fill", Kind: KindPaint, Inherited: true},
	),
	AllEvents,
	nil,
)

func init() {
	documentInfo.New = func() Node { return NewDocument() }
	RegisterType(documentInfo)
}

// NewDocument returns an empty document with event auto-publication on.
func NewDocument() *Document {
	d := &Document{AutoPublishEvents: true, ids: newIDRegistry()}
	d.Init(d, documentInfo)
	return d
}

// IDs exposes the document's identifier registry.
func (d *Document) IDs() *IDRegistry { return d.ids }

// ElementByID resolves an identifier registered in this document.
func (d *Document) ElementByID(id string) (Node, bool) { return d.ids.Lookup(id) }

// SetSize sets the width and height attributes in user units.
func (d *Document) SetSize(w, h float64) error {
	if err := d.SetAttr("width", Number(w)); err != nil {
		return err
	}
	return d.SetAttr("height", Number(h))
}

// Size reports the document's viewport size. Unset dimensions fall back
// to the viewBox extent, then to zero.
func (d *Document) Size() (w, h float64) {
	vb, hasVB := d.ViewBox()
	w = d.NumberAttr("width", 0)
	h = d.NumberAttr("height", 0)
	if hasVB {
		if w == 0 {
			w = vb.W
		}
		if h == 0 {
			h = vb.H
		}
	}
	return w, h
}

// ViewBox reports the viewBox attribute if one is set.
func (d *Document) ViewBox() (geom.ViewBox, bool) {
	v, ok := d.Attr("viewBox")
	if !ok {
		return geom.ViewBox{}, false
	}
	vb, ok := v.(ViewBox)
	if !ok {
		return geom.ViewBox{}, false
	}
	return geom.ViewBox(vb), true
}

// Render draws the document's children onto c under the viewport
// transform mapping viewBox coordinates to the viewport.
func (d *Document) Render(c Canvas) error {
	saved := c.Transform()
	defer c.SetTransform(saved)
	c.SetTransform(saved.Mult(d.ViewportTransform()))
	return RenderChildren(d, c)
}

// ViewportTransform maps viewBox coordinates onto the width/height
// viewport. Identity when either is missing or degenerate.
func (d *Document) ViewportTransform() geom.Matrix2D {
	vb, ok := d.ViewBox()
	if !ok || vb.W <= 0 || vb.H <= 0 {
		return geom.Identity
	}
	w, h := d.Size()
	if w <= 0 || h <= 0 {
		return geom.Identity
	}
	m := geom.Identity.Scale(w/vb.W, h/vb.H)
	return m.Mult(geom.Identity.Translate(-vb.MinX, -vb.MinY))
}

// Fragment is a transparent container. It has no tag of its own:
// serializing one emits only its children, and it carries no attributes.
type Fragment struct{ Element }

var fragmentInfo = NewTypeInfo("", nil, nil, nil)

func init() {
	fragmentInfo.New = func() Node { return NewFragment() }
}

// NewFragment returns an empty transparent container.
func NewFragment() *Fragment {
	f := &Fragment{}
	f.Init(f, fragmentInfo)
	return f
}

// Unknown preserves an element whose tag has no registered type.
// Its attributes live in the custom store so documents round-trip
// through parse and serialize without loss.
type Unknown struct{ Element }

// NewUnknown returns a pass-through element with the given tag.
func NewUnknown(tag string) *Unknown {
	u := &Unknown{}
	info := NewTypeInfo(tag,
		[]AttrSpec{{Name: "id", Kind: KindString, Default: String("")}},
		nil, nil)
	info.New = func() Node { return NewUnknown(tag) }
	u.Init(u, info)
	return u
}
