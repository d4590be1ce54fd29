package live

import (
	"sync"

	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/protocol"
)

// mirror converts a document's change notifications into wire patches.
// One subscription on the document root observes the whole tree, since
// tree notifications climb to the root. Patches accumulate until the
// event loop drains them with Take after each unit of work, so one
// handler producing several mutations broadcasts as one batch.
type mirror struct {
	doc *dom.Document

	mu      sync.Mutex
	pending []protocol.Patch
}

func newMirror(doc *dom.Document) *mirror {
	m := &mirror{doc: doc}
	doc.OnAttrChanged(m.attrChanged)
	doc.OnContentChanged(m.contentChanged)
	doc.OnChildAdded(m.childAdded)
	doc.OnChildRemoved(m.childRemoved)
	return m
}

// Take drains and returns the accumulated patches.
func (m *mirror) Take() []protocol.Patch {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.pending
	m.pending = nil
	return p
}

func (m *mirror) add(p protocol.Patch) {
	m.mu.Lock()
	m.pending = append(m.pending, p)
	m.mu.Unlock()
}

// pathOf addresses n by child indexes from the mirrored document. Nodes
// in detached subtrees have no path; their changes never reach the
// mirror anyway because notifications stop at their root.
func (m *mirror) pathOf(n dom.Node) (protocol.NodePath, bool) {
	var rev []uint32
	cur := n
	for {
		parent := cur.Base().Parent()
		if parent == nil {
			break
		}
		idx := parent.Base().IndexOf(cur)
		if idx < 0 {
			return nil, false
		}
		rev = append(rev, uint32(idx))
		cur = parent
	}
	if cur != dom.Node(m.doc) {
		return nil, false
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return protocol.NodePath(rev), true
}

func (m *mirror) attrChanged(c dom.AttrChange) {
	path, ok := m.pathOf(c.Node)
	if !ok {
		return
	}
	if c.Value == nil {
		m.add(protocol.NewRemoveAttrPatch(path, c.Name))
		return
	}
	m.add(protocol.NewSetAttrPatch(path, c.Name, c.Value.Text()))
}

func (m *mirror) contentChanged(c dom.ContentChange) {
	path, ok := m.pathOf(c.Node)
	if !ok {
		return
	}
	m.add(protocol.NewSetContentPatch(path, c.Content))
}

func (m *mirror) childAdded(c dom.ChildAdded) {
	parentPath, ok := m.pathOf(c.Parent)
	if !ok {
		return
	}
	idx := c.Parent.Base().IndexOf(c.Child)
	if idx < 0 {
		return
	}
	m.add(protocol.NewInsertNodePatch(parentPath, uint32(idx), dom.MarkupString(c.Child)))
}

func (m *mirror) childRemoved(c dom.ChildRemoved) {
	parentPath, ok := m.pathOf(c.Parent)
	if !ok {
		return
	}
	m.add(protocol.NewRemoveNodePatch(parentPath, uint32(c.Index)))
}
