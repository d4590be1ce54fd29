// Package shape provides the concrete element types of a vexel document:
// rect, circle, ellipse, line, polyline, polygon, path, text, image and
// the g grouping element. Every type registers itself with the dom type
// registry, so parsed markup constructs them by tag.
//
// Shapes expose their outline through LocalPath in local coordinates and
// draw themselves onto a dom.Canvas. Outlines are cached and recomputed
// lazily when an attribute changes.
package shape
