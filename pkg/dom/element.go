package dom

import (
	"fmt"
	"sort"

	"github.com/vexel-dev/vexel/pkg/geom"
)

// Node is any tree participant. Concrete types embed Element and pass
// themselves to Init so the base can dispatch to them.
type Node interface {
	Base() *Element
}

// StructureObserver is implemented by node types that react to changes in
// their own child list, such as dropping a cached aggregate path.
type StructureObserver interface {
	StructureChanged()
}

// AttrObserver is implemented by node types that react to changes of
// their own typed attributes, such as invalidating a cached outline.
type AttrObserver interface {
	AttrChanged(name string, v Value)
}

// Element is the base of every node: typed attributes, custom attributes,
// children, parent back-reference, text content and event state. The
// parent reference never owns; a node is owned by its parent's child list
// or by the caller while detached.
type Element struct {
	self Node
	info *TypeInfo

	parent   Node
	children []Node

	attrs   attrStore
	custom  map[string]string
	content string
	forced  map[string]bool

	events    eventSlots
	listeners treeListeners
}

// Init wires a concrete node to its base. Every constructor must call it
// with the node itself and its type record before any other use.
func (e *Element) Init(self Node, info *TypeInfo) {
	e.self = self
	e.info = info
	e.attrs.onChange = e.attrChanged
}

// Base returns the element itself, satisfying Node.
func (e *Element) Base() *Element { return e }

// Type returns the node's static type record.
func (e *Element) Type() *TypeInfo { return e.info }

// Tag returns the markup element name, empty for transparent containers.
func (e *Element) Tag() string { return e.info.Tag }

// Parent returns the parent node, nil while detached.
func (e *Element) Parent() Node { return e.parent }

// Children returns the child list in order. The slice is the node's own
// storage; callers must not modify it.
func (e *Element) Children() []Node { return e.children }

// OwnerDocument returns the document at the root of this node's tree, or
// nil if the tree's root is not a Document.
func (e *Element) OwnerDocument() *Document {
	n := e.self
	for n.Base().parent != nil {
		n = n.Base().parent
	}
	d, _ := n.(*Document)
	return d
}

// IsAncestorOf reports whether e is n or one of n's ancestors.
func (e *Element) IsAncestorOf(n Node) bool {
	for cur := n; cur != nil; cur = cur.Base().parent {
		if cur == e.self {
			return true
		}
	}
	return false
}

// AppendChild adds child as the last child of this node.
func (e *Element) AppendChild(child Node) error {
	return e.InsertChild(child, len(e.children))
}

// InsertChild adds child at the given index, shifting later siblings
// right. The child must be detached: re-parenting requires an explicit
// RemoveChild first. Attaching a subtree to a document registers every
// identifier in it; a collision rejects the whole operation.
func (e *Element) InsertChild(child Node, index int) error {
	if child == nil {
		return fmt.Errorf("%w: nil child", ErrInvalidOperation)
	}
	cb := child.Base()
	if cb.self == nil {
		return fmt.Errorf("%w: node not initialized", ErrInvalidOperation)
	}
	if cb.parent != nil {
		return fmt.Errorf("%w: node already has a parent", ErrInvalidOperation)
	}
	if index < 0 || index > len(e.children) {
		return fmt.Errorf("%w: index %d out of range [0,%d]", ErrInvalidOperation, index, len(e.children))
	}
	if cb.IsAncestorOf(e.self) {
		return fmt.Errorf("%w: node would become its own ancestor", ErrInvalidOperation)
	}
	if doc := e.OwnerDocument(); doc != nil {
		if err := doc.ids.addSubtree(child); err != nil {
			return err
		}
	}

	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
	cb.parent = e.self

	if so, ok := e.self.(StructureObserver); ok {
		so.StructureChanged()
	}
	var next Node
	if index+1 < len(e.children) {
		next = e.children[index+1]
	}
	e.notify(func(l *treeListeners) {
		for _, fn := range l.childAdded {
			fn(ChildAdded{Parent: e.self, Child: child, Next: next})
		}
	})
	return nil
}

// RemoveChild detaches child from this node. Removing a node that is not
// a child fails and leaves the tree unchanged.
func (e *Element) RemoveChild(child Node) error {
	idx := -1
	for i, c := range e.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: node is not a child", ErrInvalidOperation)
	}
	if doc := e.OwnerDocument(); doc != nil {
		doc.ids.removeSubtree(child)
	}

	e.children = append(e.children[:idx], e.children[idx+1:]...)
	child.Base().parent = nil

	if so, ok := e.self.(StructureObserver); ok {
		so.StructureChanged()
	}
	e.notify(func(l *treeListeners) {
		for _, fn := range l.childRemoved {
			fn(ChildRemoved{Parent: e.self, Child: child, Index: idx})
		}
	})
	return nil
}

// IndexOf returns child's position in the child list, or -1.
func (e *Element) IndexOf(child Node) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Attr returns the stored typed attribute value.
func (e *Element) Attr(name string) (Value, bool) {
	return e.attrs.get(name)
}

// SetAttr stores a typed attribute value. The name must be declared by
// the element type and the value must match the declared kind; a changed
// value raises an attribute-changed notification. The id attribute is
// routed through SetID so identifier uniqueness holds.
func (e *Element) SetAttr(name string, v Value) error {
	spec := e.info.Spec(name)
	if spec == nil {
		return fmt.Errorf("%w: %q on <%s>", ErrUnknownAttribute, name, e.info.Tag)
	}
	if v == nil || !spec.Kind.matches(v) {
		return fmt.Errorf("%w: %q on <%s> takes a %s", ErrTypeMismatch, name, e.info.Tag, spec.Kind)
	}
	if name == "id" {
		return e.SetID(string(v.(String)))
	}
	e.attrs.set(name, v)
	return nil
}

// RemoveAttr deletes a stored attribute value, reverting the node to the
// declared default. The name must be declared by the element type. A
// removal raises an attribute-changed notification with a nil value;
// removing an attribute that is not stored is a no-op. The id attribute
// is routed through SetID so the identifier registry stays consistent.
func (e *Element) RemoveAttr(name string) error {
	if spec := e.info.Spec(name); spec == nil {
		return fmt.Errorf("%w: %q on <%s>", ErrUnknownAttribute, name, e.info.Tag)
	}
	if name == "id" {
		return e.SetID("")
	}
	e.attrs.remove(name)
	return nil
}

// HasAttr reports whether the typed attribute is stored on this node.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs.get(name)
	return ok
}

// NumberAttr returns a numeric attribute, or its fallback when unset.
func (e *Element) NumberAttr(name string, fallback float64) float64 {
	if v, ok := e.attrs.get(name); ok {
		if n, ok := v.(Number); ok {
			return float64(n)
		}
	}
	return fallback
}

// Transform returns the node's local transform list, nil when empty.
func (e *Element) Transform() geom.TransformList {
	if v, ok := e.attrs.get("transform"); ok {
		if t, ok := v.(Transforms); ok {
			return geom.TransformList(t)
		}
	}
	return nil
}

// SetTransform replaces the node's local transform list.
func (e *Element) SetTransform(l geom.TransformList) error {
	return e.SetAttr("transform", Transforms(l))
}

// Content returns the node's text content.
func (e *Element) Content() string { return e.content }

// SetContent replaces the node's text content, raising a content-changed
// notification when the text differs.
func (e *Element) SetContent(s string) {
	if s == e.content {
		return
	}
	e.content = s
	e.notify(func(l *treeListeners) {
		for _, fn := range l.contentChanged {
			fn(ContentChange{Node: e.self, Content: s})
		}
	})
}

// Custom returns a pass-through attribute with no typed declaration.
func (e *Element) Custom(name string) (string, bool) {
	v, ok := e.custom[name]
	return v, ok
}

// SetCustom stores a pass-through attribute, serialized verbatim after
// the typed attributes.
func (e *Element) SetCustom(name, value string) {
	if e.custom == nil {
		e.custom = make(map[string]string)
	}
	e.custom[name] = value
}

// RemoveCustom deletes a pass-through attribute.
func (e *Element) RemoveCustom(name string) {
	delete(e.custom, name)
}

// CustomNames returns the custom attribute names in sorted order.
func (e *Element) CustomNames() []string {
	if len(e.custom) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.custom))
	for name := range e.custom {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForceWrite controls serialization of name on this node: when on, the
// attribute is emitted even if suppression would normally drop it, such
// as a fill equal to an ancestor's.
func (e *Element) ForceWrite(name string, on bool) {
	if !on {
		delete(e.forced, name)
		return
	}
	if e.forced == nil {
		e.forced = make(map[string]bool)
	}
	e.forced[name] = true
}

func (e *Element) forceWrite(name string) bool { return e.forced[name] }

// attrChanged re-dispatches a store-level change as this node's public
// attribute-changed notification, after giving the node itself a chance
// to react.
func (e *Element) attrChanged(name string, v Value) {
	if ao, ok := e.self.(AttrObserver); ok {
		ao.AttrChanged(name, v)
	}
	e.notify(func(l *treeListeners) {
		for _, fn := range l.attrChanged {
			fn(AttrChange{Node: e.self, Name: name, Value: v})
		}
	})
}

// Walk visits n and its descendants depth-first in child order. Returning
// false skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Base().Children() {
		Walk(c, fn)
	}
}
