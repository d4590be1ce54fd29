// Package raster implements the dom.Canvas drawing surface on top of
// srwiley/rasterx, rendering documents into in-memory RGBA images.
package raster
