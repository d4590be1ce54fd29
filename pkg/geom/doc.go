// Package geom provides the 2D affine geometry used throughout vexel:
// matrices, transform lists in SVG attribute form, rectangles, and the
// viewBox type.
//
// Matrix2D follows the SVG/PostScript convention
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// so the six fields map one-to-one onto the matrix(a,b,c,d,e,f) markup
// form. Transform lists compose left to right, matching how the transform
// attribute is interpreted during rendering.
package geom
