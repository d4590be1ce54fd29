package dom

import "github.com/vexel-dev/vexel/pkg/path"

// PathProvider is implemented by nodes that expose their own geometry.
// LocalPath returns the outline in the node's local coordinates, before
// the node's transform applies.
type PathProvider interface {
	Node
	LocalPath() path.Path
}

// AggregatePath collects the geometry of every path-providing descendant
// of n into a single path expressed in n's local coordinates. Each
// child's contribution is mapped through that child's transform; nodes
// without geometry of their own contribute the aggregate of their
// children. Children with no geometry anywhere below them are skipped.
func AggregatePath(n Node) path.Path {
	var out path.Path
	for _, child := range n.Base().Children() {
		var p path.Path
		if pp, ok := child.(PathProvider); ok {
			p = pp.LocalPath()
		} else {
			p = AggregatePath(child)
		}
		if len(p) == 0 {
			continue
		}
		out = append(out, p.Transform(child.Base().Transform().Matrix())...)
	}
	return out
}
