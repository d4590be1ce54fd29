package dom

import (
	"io"
	"strings"

	"github.com/vexel-dev/vexel/pkg/markup"
)

// WriteOptions configures markup serialization.
type WriteOptions struct {
	// Pretty emits one element per line with Indent per depth level.
	Pretty bool
	// Indent is the per-level indent string, two spaces when empty.
	Indent string
	// OmitDeclaration drops the XML declaration that document
	// serialization otherwise starts with.
	OmitDeclaration bool
}

// Write serializes the subtree rooted at n as markup. Documents start
// with an XML declaration unless OmitDeclaration is set; detached
// subtrees serialize without one.
func Write(n Node, w io.Writer, opts WriteOptions) error {
	mw := markup.NewWriter(w, markup.WriterConfig{Pretty: opts.Pretty, Indent: opts.Indent})
	if _, ok := n.(*Document); ok && !opts.OmitDeclaration {
		if err := mw.Declaration(); err != nil {
			return err
		}
	}
	s := serializer{w: mw, doc: n.Base().OwnerDocument()}
	return s.node(n)
}

// MarkupString renders n compactly without a declaration. Intended for
// tests and patch payloads; errors cannot occur on an in-memory buffer.
func MarkupString(n Node) string {
	var sb strings.Builder
	_ = Write(n, &sb, WriteOptions{OmitDeclaration: true})
	return sb.String()
}

// Write serializes the subtree rooted at this node.
func (e *Element) Write(w io.Writer, opts WriteOptions) error {
	return Write(e.self, w, opts)
}

type serializer struct {
	w   *markup.Writer
	doc *Document
}

func (s *serializer) node(n Node) error {
	e := n.Base()
	if e.info.Tag == "" {
		// Transparent container: children only.
		for _, c := range e.children {
			if err := s.node(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := s.w.Open(e.info.Tag); err != nil {
		return err
	}
	if _, ok := n.(*Document); ok {
		if err := s.w.Attr("xmlns", Namespace); err != nil {
			return err
		}
		if err := s.w.Attr("xmlns:xlink", XLinkNamespace); err != nil {
			return err
		}
		if err := s.w.Attr("version", Version); err != nil {
			return err
		}
	}
	if err := s.attrs(e); err != nil {
		return err
	}
	if err := s.events(e); err != nil {
		return err
	}
	for _, name := range e.CustomNames() {
		v, _ := e.Custom(name)
		if err := s.w.Attr(name, v); err != nil {
			return err
		}
	}
	if e.content == "" && len(e.children) == 0 {
		return s.w.SelfClose()
	}
	if err := s.w.CloseStart(); err != nil {
		return err
	}
	if e.content != "" {
		if err := s.w.Text(e.content); err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := s.node(c); err != nil {
			return err
		}
	}
	return s.w.Close(e.info.Tag)
}

// attrs emits the typed attributes in declaration order. Values equal to
// the registered default are suppressed unless force-write is on for
// that attribute; inherited attributes follow inheritedAttr's rules.
func (s *serializer) attrs(e *Element) error {
	for i := range e.info.Attrs {
		spec := &e.info.Attrs[i]
		if spec.Inherited {
			if err := s.inheritedAttr(e, spec); err != nil {
				return err
			}
			continue
		}
		v, ok := e.attrs.get(spec.Name)
		if !ok {
			continue
		}
		if !e.forceWrite(spec.Name) && spec.Default != nil && spec.Default.Equal(v) {
			continue
		}
		if err := s.w.Attr(spec.qualified(), v.Text()); err != nil {
			return err
		}
	}
	return nil
}

// inheritedAttr emits an inherited attribute. The explicit unset
// sentinel is never written. A value equal to the nearest ancestor's is
// suppressed unless force-write is on. A node with no value anywhere in
// its ancestor chain writes the literal "none" so the output does not
// pick up a different inherited value in a new context.
func (s *serializer) inheritedAttr(e *Element, spec *AttrSpec) error {
	own, hasOwn := e.attrs.get(spec.Name)
	anc, hasAnc := ancestorAttr(e, spec.Name)
	switch {
	case hasOwn:
		if p, ok := own.(Paint); ok && p.Kind == PaintUnset {
			return nil
		}
		if hasAnc && !e.forceWrite(spec.Name) && anc.Equal(own) {
			return nil
		}
		return s.w.Attr(spec.qualified(), own.Text())
	case hasAnc:
		if p, ok := anc.(Paint); ok && p.Kind == PaintUnset {
			return nil
		}
		if e.forceWrite(spec.Name) {
			return s.w.Attr(spec.qualified(), anc.Text())
		}
		return nil
	default:
		return s.w.Attr(spec.qualified(), NoPaint.Text())
	}
}

// ancestorAttr finds the nearest ancestor holding a stored value for
// name, whatever that value is.
func ancestorAttr(e *Element, name string) (Value, bool) {
	for p := e.parent; p != nil; p = p.Base().parent {
		if v, ok := p.Base().attrs.get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// events emits binding attributes for observed events, value
// "{id}/{event-name}". Skipped entirely for detached subtrees,
// documents with auto-publication off, and elements without an id.
func (s *serializer) events(e *Element) error {
	if s.doc == nil || !s.doc.AutoPublishEvents {
		return nil
	}
	id := e.ID()
	if id == "" {
		return nil
	}
	for _, kind := range e.info.Events {
		if !e.events.observed[kind] {
			continue
		}
		if err := s.w.Attr(kind.AttrName(), EventToken(id, kind)); err != nil {
			return err
		}
	}
	return nil
}
