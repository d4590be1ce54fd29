package dom

// CloneNode produces a detached deep copy of this node's subtree. Copies
// carry the attribute values, text content, custom attributes,
// force-write flags and the per-kind observed markers, but not the event
// subscriptions themselves or any tree-change listeners: callbacks bind
// to the instance they were registered on. The copy belongs to no
// document until attached, so identifiers stay unregistered.
func (e *Element) CloneNode() Node {
	n := e.info.New()
	nb := n.Base()
	nb.attrs = e.attrs.clone()
	nb.attrs.onChange = nb.attrChanged
	nb.content = e.content
	if len(e.custom) > 0 {
		nb.custom = make(map[string]string, len(e.custom))
		for k, v := range e.custom {
			nb.custom[k] = v
		}
	}
	if len(e.forced) > 0 {
		nb.forced = make(map[string]bool, len(e.forced))
		for k, v := range e.forced {
			nb.forced[k] = v
		}
	}
	nb.events.observed = e.events.observed
	for _, c := range e.children {
		cc := c.Base().CloneNode()
		cc.Base().parent = n
		nb.children = append(nb.children, cc)
	}
	return n
}

// Clone deep-copies the whole document. The copy has its own identifier
// registry holding the cloned nodes and keeps the auto-publication flag.
func (d *Document) Clone() *Document {
	nd := d.CloneNode().(*Document)
	nd.AutoPublishEvents = d.AutoPublishEvents
	// CloneNode links children directly, bypassing attach registration.
	// Identifiers are unique in the source, so this cannot collide.
	if err := nd.ids.addSubtree(nd); err != nil {
		panic("dom: cloned document has duplicate ids: " + err.Error())
	}
	return nd
}
