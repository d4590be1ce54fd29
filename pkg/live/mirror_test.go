package live

import (
	"strings"
	"testing"

	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/protocol"
	"github.com/vexel-dev/vexel/pkg/shape"
)

func testDoc(t *testing.T) (*dom.Document, *shape.Group, *shape.Rect) {
	t.Helper()
	doc := dom.NewDocument()
	if err := doc.SetSize(100, 100); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	g := shape.NewGroup()
	r := shape.NewRect()
	if err := doc.AppendChild(g); err != nil {
		t.Fatalf("AppendChild group: %v", err)
	}
	if err := g.AppendChild(r); err != nil {
		t.Fatalf("AppendChild rect: %v", err)
	}
	return doc, g, r
}

func takeOne(t *testing.T, m *mirror) protocol.Patch {
	t.Helper()
	patches := m.Take()
	if len(patches) != 1 {
		t.Fatalf("got %d patches, want 1: %+v", len(patches), patches)
	}
	return patches[0]
}

func TestMirrorSetAttr(t *testing.T) {
	doc, _, r := testDoc(t)
	m := newMirror(doc)

	if err := r.SetAttr("x", dom.Number(5)); err != nil {
		t.Fatalf("SetAttr: %v", err)
	}
	p := takeOne(t, m)
	if p.Op != protocol.PatchSetAttr {
		t.Fatalf("op = %v, want SetAttr", p.Op)
	}
	if !p.Path.Equal(protocol.NodePath{0, 0}) {
		t.Errorf("path = %v, want [0 0]", p.Path)
	}
	if p.Name != "x" || p.Value != "5" {
		t.Errorf("patch = %q=%q, want x=5", p.Name, p.Value)
	}
}

func TestMirrorRemoveAttr(t *testing.T) {
	doc, _, r := testDoc(t)
	if err := r.SetAttr("x", dom.Number(5)); err != nil {
		t.Fatalf("SetAttr: %v", err)
	}
	m := newMirror(doc)

	if err := r.RemoveAttr("x"); err != nil {
		t.Fatalf("RemoveAttr: %v", err)
	}
	p := takeOne(t, m)
	if p.Op != protocol.PatchRemoveAttr {
		t.Fatalf("op = %v, want RemoveAttr", p.Op)
	}
	if !p.Path.Equal(protocol.NodePath{0, 0}) || p.Name != "x" {
		t.Errorf("patch = %v %q, want [0 0] x", p.Path, p.Name)
	}
}

func TestMirrorSetContent(t *testing.T) {
	doc := dom.NewDocument()
	txt := shape.NewText()
	if err := doc.AppendChild(txt); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	m := newMirror(doc)

	txt.SetContent("hello")
	p := takeOne(t, m)
	if p.Op != protocol.PatchSetContent {
		t.Fatalf("op = %v, want SetContent", p.Op)
	}
	if !p.Path.Equal(protocol.NodePath{0}) || p.Value != "hello" {
		t.Errorf("patch = %v %q", p.Path, p.Value)
	}
}

func TestMirrorInsertNode(t *testing.T) {
	doc, g, _ := testDoc(t)
	m := newMirror(doc)

	c := shape.NewCircle()
	if err := g.AppendChild(c); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	p := takeOne(t, m)
	if p.Op != protocol.PatchInsertNode {
		t.Fatalf("op = %v, want InsertNode", p.Op)
	}
	if !p.Path.Equal(protocol.NodePath{0}) {
		t.Errorf("parent path = %v, want [0]", p.Path)
	}
	if p.Index != 1 {
		t.Errorf("index = %d, want 1", p.Index)
	}
	if !strings.Contains(p.Markup, "<circle") {
		t.Errorf("markup = %q, want a circle element", p.Markup)
	}
}

func TestMirrorRemoveNode(t *testing.T) {
	doc, g, r := testDoc(t)
	m := newMirror(doc)

	if err := g.RemoveChild(r); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	p := takeOne(t, m)
	if p.Op != protocol.PatchRemoveNode {
		t.Fatalf("op = %v, want RemoveNode", p.Op)
	}
	if !p.Path.Equal(protocol.NodePath{0}) || p.Index != 0 {
		t.Errorf("patch = path %v index %d, want [0] 0", p.Path, p.Index)
	}
}

func TestMirrorDetachedSubtreeIgnored(t *testing.T) {
	doc, _, _ := testDoc(t)
	m := newMirror(doc)

	// Mutations in a tree not attached to the mirrored document must
	// produce nothing.
	stray := shape.NewRect()
	if err := stray.SetAttr("x", dom.Number(1)); err != nil {
		t.Fatalf("SetAttr: %v", err)
	}
	if got := m.Take(); len(got) != 0 {
		t.Errorf("got %d patches from detached node, want 0", len(got))
	}
}

func TestMirrorBatch(t *testing.T) {
	doc, _, r := testDoc(t)
	m := newMirror(doc)

	r.SetAttr("x", dom.Number(1))
	r.SetAttr("y", dom.Number(2))
	r.SetAttr("width", dom.Number(3))

	patches := m.Take()
	if len(patches) != 3 {
		t.Fatalf("got %d patches, want 3", len(patches))
	}
	if got := m.Take(); got != nil {
		t.Errorf("second Take = %v, want nil", got)
	}
}
