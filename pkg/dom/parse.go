package dom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vexel-dev/vexel/pkg/markup"
)

// ReadOptions configures document parsing.
type ReadOptions struct {
	// Mode decides what happens on unsupported or malformed content.
	Mode markup.ErrorMode
	// Logger receives warnings in WarnErrorMode. slog.Default when nil.
	Logger *slog.Logger
}

// ReadDocument parses markup from r into a document tree. The root
// element must be svg. Unregistered tags become Unknown pass-through
// nodes except in StrictErrorMode, where they fail the parse. Event
// binding attributes are dropped: they are routing tokens for a live
// session and carry no meaning in a fresh tree.
func ReadDocument(r io.Reader, opts ReadOptions) (*Document, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	p := parser{opts: opts, dec: markup.NewDecoder(r)}
	return p.run()
}

// ParseDocument parses an in-memory markup string.
func ParseDocument(s string, opts ReadOptions) (*Document, error) {
	return ReadDocument(strings.NewReader(s), opts)
}

type parser struct {
	opts ReadOptions
	dec  *xml.Decoder

	doc   *Document
	stack []Node
	text  []strings.Builder
}

func (p *parser) run() (*Document, error) {
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dom: reading markup: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.start(t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			p.end()
		case xml.CharData:
			if len(p.text) > 0 {
				p.text[len(p.text)-1].Write(t)
			}
		}
	}
	if p.doc == nil {
		return nil, errors.New("dom: no root element")
	}
	return p.doc, nil
}

func (p *parser) start(t xml.StartElement) error {
	tag := t.Name.Local
	if p.doc == nil {
		if tag != "svg" {
			return fmt.Errorf("dom: root element is <%s>, want <svg>", tag)
		}
		p.doc = NewDocument()
		if err := p.applyAttrs(p.doc, t.Attr); err != nil {
			return err
		}
		// The root never attaches to anything, so its id registers here.
		if id := p.doc.ID(); id != "" {
			if _, err := p.doc.ids.add(p.doc, id, false); err != nil {
				return err
			}
		}
		p.push(p.doc)
		return nil
	}

	var node Node
	info, known := LookupType(tag)
	switch {
	case known && info.New != nil:
		node = info.New()
	case known:
		if err := p.opts.Mode.Handle(p.opts.Logger,
			fmt.Errorf("dom: <%s>: %w", tag, ErrUnsupportedElement)); err != nil {
			return err
		}
		node = NewUnknown(tag)
	default:
		if err := p.opts.Mode.Handle(p.opts.Logger,
			fmt.Errorf("dom: unrecognized element <%s>", tag)); err != nil {
			return err
		}
		node = NewUnknown(tag)
	}
	if err := p.applyAttrs(node, t.Attr); err != nil {
		return err
	}
	if err := p.attach(node); err != nil {
		return err
	}
	p.push(node)
	return nil
}

// attach links node under the current open element. In the tolerant
// modes a duplicate identifier costs the node its id rather than its
// place in the tree.
func (p *parser) attach(node Node) error {
	parent := p.stack[len(p.stack)-1].Base()
	err := parent.AppendChild(node)
	if errors.Is(err, ErrDuplicateID) {
		if herr := p.opts.Mode.Handle(p.opts.Logger, err); herr != nil {
			return herr
		}
		node.Base().attrs.setQuiet("id", String(""))
		err = parent.AppendChild(node)
	}
	if err != nil {
		return fmt.Errorf("dom: attaching <%s>: %w", node.Base().Tag(), err)
	}
	return nil
}

func (p *parser) push(n Node) {
	p.stack = append(p.stack, n)
	p.text = append(p.text, strings.Builder{})
}

func (p *parser) end() {
	if len(p.stack) == 0 {
		return
	}
	n := p.stack[len(p.stack)-1]
	if s := strings.TrimSpace(p.text[len(p.text)-1].String()); s != "" {
		n.Base().content = s
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.text = p.text[:len(p.text)-1]
}

// applyAttrs routes parsed attributes: typed specs parse into the typed
// store, event bindings and namespace declarations are dropped, and
// everything else lands in the custom store verbatim.
func (p *parser) applyAttrs(n Node, attrs []xml.Attr) error {
	e := n.Base()
	for _, a := range attrs {
		name := a.Name.Local
		switch a.Name.Space {
		case "", Namespace:
		case "xmlns":
			continue
		case XLinkNamespace:
			name = "xlink:" + a.Name.Local
		default:
			// Foreign namespace: keep the local name.
		}
		if name == "xmlns" || (name == "version" && e.Tag() == "svg") {
			continue
		}
		if _, isEvent := EventKindByAttr(name); isEvent {
			continue
		}
		spec := e.info.Spec(specName(name))
		if spec == nil {
			e.SetCustom(name, a.Value)
			continue
		}
		if spec.Name == "id" {
			if err := p.setParsedID(e, a.Value); err != nil {
				return err
			}
			continue
		}
		v, err := spec.Kind.parse(a.Value)
		if err != nil {
			err = fmt.Errorf("dom: <%s> %s=%q: %w", e.Tag(), name, a.Value, err)
			if herr := p.opts.Mode.Handle(p.opts.Logger, err); herr != nil {
				return herr
			}
			e.SetCustom(name, a.Value)
			continue
		}
		e.attrs.setQuiet(spec.Name, v)
	}
	return nil
}

// setParsedID stores an id read from markup. The node is still detached,
// so registration happens later at attach; invalid ids are dropped in
// the tolerant modes.
func (p *parser) setParsedID(e *Element, id string) error {
	if err := validateID(id); err != nil {
		err = fmt.Errorf("dom: id %q: %w", id, err)
		if herr := p.opts.Mode.Handle(p.opts.Logger, err); herr != nil {
			return herr
		}
		return nil
	}
	e.attrs.setQuiet("id", String(id))
	return nil
}

// specName maps a qualified markup name to the spec lookup name.
func specName(name string) string {
	if s, ok := strings.CutPrefix(name, "xlink:"); ok {
		return s
	}
	return name
}
