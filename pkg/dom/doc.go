// Package dom implements the document tree at the heart of vexel: typed
// nodes with parent/child ownership, attribute storage with change
// notification, document-scoped identifier management, markup
// serialization and deep copying.
//
// A Node is any type embedding Element; concrete shapes live in package
// shape. Nodes are created detached and join a tree through InsertChild
// or AppendChild. Once the root of the tree is a Document, identifiers
// become document-unique and can be looked up through the registry.
//
// Rendering and geometry are expressed through small capability
// interfaces: Renderable nodes draw onto a Canvas, PathProvider nodes
// expose their local geometry, and AggregatePath unions the geometry of
// a whole subtree. The tree itself never touches pixels.
package dom
