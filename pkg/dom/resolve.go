package dom

// ResolvedAttr resolves name on this node following inheritance: the
// node's own stored value wins, else the nearest ancestor's stored
// value. ok is false when no node in the chain stores one.
func (e *Element) ResolvedAttr(name string) (Value, bool) {
	if v, ok := e.attrs.get(name); ok {
		return v, true
	}
	return ancestorAttr(e, name)
}

// FillPaint resolves the effective fill for drawing. The unset sentinel
// does not count as a value, so inheritance flows through nodes that
// store it. Chains with no paint anywhere resolve to no paint, matching
// the serialized form.
func (e *Element) FillPaint() Paint {
	for b := e; ; {
		if v, ok := b.attrs.get("fill"); ok {
			if p, isPaint := v.(Paint); isPaint && p.Kind != PaintUnset {
				return p
			}
		}
		if b.parent == nil {
			return NoPaint
		}
		b = b.parent.Base()
	}
}
