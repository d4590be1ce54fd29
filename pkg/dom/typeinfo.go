package dom

import (
	"fmt"

	"github.com/vexel-dev/vexel/pkg/geom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// AttrKind names the value type an attribute accepts.
type AttrKind uint8

const (
	KindNumber AttrKind = iota
	KindString
	KindBool
	KindPaint
	KindTransforms
	KindViewBox
	KindPoints
	KindPathData
	KindHref
)

func (k AttrKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindPaint:
		return "paint"
	case KindTransforms:
		return "transform list"
	case KindViewBox:
		return "view box"
	case KindPoints:
		return "point list"
	case KindPathData:
		return "path data"
	case KindHref:
		return "reference"
	default:
		return "unknown"
	}
}

// matches reports whether v is a value of kind k.
func (k AttrKind) matches(v Value) bool {
	switch k {
	case KindNumber:
		_, ok := v.(Number)
		return ok
	case KindString:
		_, ok := v.(String)
		return ok
	case KindBool:
		_, ok := v.(Bool)
		return ok
	case KindPaint:
		_, ok := v.(Paint)
		return ok
	case KindTransforms:
		_, ok := v.(Transforms)
		return ok
	case KindViewBox:
		_, ok := v.(ViewBox)
		return ok
	case KindPoints:
		_, ok := v.(Points)
		return ok
	case KindPathData:
		_, ok := v.(PathData)
		return ok
	case KindHref:
		_, ok := v.(Href)
		return ok
	}
	return false
}

// parse converts markup text into a value of kind k.
func (k AttrKind) parse(s string) (Value, error) {
	switch k {
	case KindNumber:
		f, err := parseNumber(s)
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case KindString:
		return String(s), nil
	case KindBool:
		switch s {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return nil, fmt.Errorf("dom: bad bool %q", s)
	case KindPaint:
		return ParsePaint(s)
	case KindTransforms:
		l, err := geom.ParseTransformList(s)
		if err != nil {
			return nil, err
		}
		return Transforms(l), nil
	case KindViewBox:
		v, err := geom.ParseViewBox(s)
		if err != nil {
			return nil, err
		}
		return ViewBox(v), nil
	case KindPoints:
		f, err := geom.ParseFloats(s)
		if err != nil {
			return nil, err
		}
		return Points(f), nil
	case KindPathData:
		p, err := path.Parse(s)
		if err != nil {
			return nil, err
		}
		return PathData(p), nil
	case KindHref:
		return Href(s), nil
	}
	return nil, fmt.Errorf("dom: cannot parse attribute kind %v", k)
}

// AttrSpec declares one typed attribute of an element type.
type AttrSpec struct {
	// Name is the attribute name within the element.
	Name string
	// NS is a namespace prefix, empty for the default namespace.
	NS string
	// Kind is the accepted value type.
	Kind AttrKind
	// Default, when non-nil, suppresses serialization of equal values.
	Default Value
	// Inherited marks a paint attribute resolved through ancestors when
	// not set locally, with the matching serialization suppression.
	Inherited bool
}

// qualified returns the attribute name as written in markup.
func (a AttrSpec) qualified() string {
	if a.NS == "" {
		return a.Name
	}
	return a.NS + ":" + a.Name
}

// TypeInfo is the static registration record of an element type: its tag,
// ordered attribute declarations, event attributes and markup factory.
// Build one per type with NewTypeInfo at package init time.
type TypeInfo struct {
	// Tag is the markup element name. Empty means a transparent
	// container: its children serialize, the node itself does not.
	Tag string
	// Attrs lists typed attributes in serialization order.
	Attrs []AttrSpec
	// Events lists the event kinds instances can raise and publish.
	Events []EventKind
	// New creates a detached instance; nil for types with no markup form.
	New func() Node

	byName map[string]*AttrSpec
}

// NewTypeInfo builds a TypeInfo and indexes its attributes.
func NewTypeInfo(tag string, attrs []AttrSpec, events []EventKind, factory func() Node) *TypeInfo {
	info := &TypeInfo{Tag: tag, Attrs: attrs, Events: events, New: factory}
	info.byName = make(map[string]*AttrSpec, len(attrs))
	for i := range attrs {
		info.byName[attrs[i].Name] = &info.Attrs[i]
	}
	return info
}

// Spec returns the declaration for a typed attribute, or nil.
func (t *TypeInfo) Spec(name string) *AttrSpec {
	return t.byName[name]
}

// typeRegistry maps markup tags to element types. Populated from init
// functions; read-only afterwards.
var typeRegistry = map[string]*TypeInfo{}

// RegisterType makes an element type constructible from markup by tag.
// Call it from an init function; later registrations for the same tag
// replace earlier ones.
func RegisterType(info *TypeInfo) {
	if info.Tag == "" {
		return
	}
	typeRegistry[info.Tag] = info
}

// LookupType returns the registered element type for a tag.
func LookupType(tag string) (*TypeInfo, bool) {
	info, ok := typeRegistry[tag]
	return info, ok
}

// BaseAttrs builds the attribute declarations shared by every concrete
// element type: id and transform, followed by the given extras.
func BaseAttrs(extra ...AttrSpec) []AttrSpec {
	base := []AttrSpec{
		{Name: "id", Kind: KindString, Default: String("")},
		{Name: "transform", Kind: KindTransforms, Default: Transforms(nil)},
	}
	return append(base, extra...)
}
