package dom

// AttrChange reports a typed attribute mutation on a node.
type AttrChange struct {
	Node  Node
	Name  string
	Value Value
}

// ContentChange reports a text content mutation on a node.
type ContentChange struct {
	Node    Node
	Content string
}

// ChildAdded reports a child joining a parent. Next is the sibling that
// now immediately follows the new child, nil when it was appended last;
// collaborators that mirror the tree elsewhere need it to insert at the
// right position.
type ChildAdded struct {
	Parent Node
	Child  Node
	Next   Node
}

// ChildRemoved reports a child leaving a parent. Index is the position
// the child held before removal; the child itself is already detached
// when listeners run.
type ChildRemoved struct {
	Parent Node
	Child  Node
	Index  int
}

// treeListeners holds structural and attribute change subscribers.
type treeListeners struct {
	attrChanged    []func(AttrChange)
	contentChanged []func(ContentChange)
	childAdded     []func(ChildAdded)
	childRemoved   []func(ChildRemoved)
}

// OnAttrChanged subscribes to attribute changes on this node and every
// node below it: change notifications climb to the root, so one
// subscription on the document observes the whole tree.
func (e *Element) OnAttrChanged(fn func(AttrChange)) {
	e.listeners.attrChanged = append(e.listeners.attrChanged, fn)
}

// OnContentChanged subscribes to text content changes on this node and
// every node below it.
func (e *Element) OnContentChanged(fn func(ContentChange)) {
	e.listeners.contentChanged = append(e.listeners.contentChanged, fn)
}

// OnChildAdded subscribes to child insertions on this node and every node
// below it.
func (e *Element) OnChildAdded(fn func(ChildAdded)) {
	e.listeners.childAdded = append(e.listeners.childAdded, fn)
}

// OnChildRemoved subscribes to child removals on this node and every node
// below it.
func (e *Element) OnChildRemoved(fn func(ChildRemoved)) {
	e.listeners.childRemoved = append(e.listeners.childRemoved, fn)
}

// notify runs deliver against this node's listeners and then each
// ancestor's, root last.
func (e *Element) notify(deliver func(*treeListeners)) {
	for n := e.self; n != nil; n = n.Base().parent {
		deliver(&n.Base().listeners)
	}
}
