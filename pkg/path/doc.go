// Package path holds the flattened geometric form of a shape: an ordered
// list of move, line and bezier operations in fixed-point coordinates.
//
// Shapes reduce themselves to a Path, groups concatenate the paths of
// their children, and rendering backends replay a Path into any sink that
// implements Adder. Coordinates use fixed.Point26_6 so paths can be handed
// to a rasterizer without conversion.
package path
