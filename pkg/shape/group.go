package shape

import (
	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/path"
)

// Group clusters child shapes under a shared transform and fill context.
// It draws nothing itself.
type Group struct {
	dom.Element
}

var groupInfo = dom.NewTypeInfo("g",
	dom.BaseAttrs(dom.AttrSpec{Name: "fill", Kind: dom.KindPaint, Inherited: true}),
	dom.AllEvents,
	nil,
)

func init() { groupInfo.New = func() dom.Node { return NewGroup() } }

func init() { dom.RegisterType(groupInfo) }

// NewGroup returns an empty group.
func NewGroup() *Group {
	g := &Group{}
	g.Init(g, groupInfo)
	return g
}

// Path returns the union of the descendant shape outlines in the group's
// own coordinate space. Each contribution carries its local transform;
// nested groups aggregate first and are then placed by their own
// transform. The result is recomputed on every call.
func (g *Group) Path() path.Path {
	return dom.AggregatePath(g)
}

// Render draws the children in order under the group's transform.
func (g *Group) Render(c dom.Canvas) error {
	saved := g.PushTransform(c)
	defer g.PopTransform(c, saved)
	return dom.RenderChildren(g, c)
}
