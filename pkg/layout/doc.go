// Package layout provides the floating-point geometry shared by the grid
// packages: rectangles in a grid's local coordinate space and extents.
//
// Coordinates grow right and down. A [Rect] is half-open: its left and top
// edges are inside, its right and bottom edges are outside.
package layout
