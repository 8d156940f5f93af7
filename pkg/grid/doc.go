// Package grid composes a column and a row [axis.Layout] into a virtualized
// two-dimensional grid.
//
// A layout pass synchronizes both axes with the grid's dimensions, resolves
// a viewport rectangle into the visible column and row spans, and yields a
// [Plan]: the total content extent, the separator-line offsets for the
// visible region, and a row-major sequence of visible cells with their
// rectangles. Work per pass is bounded by the number of visible cells, not by
// the size of the grid.
//
// The state a grid carries between passes lives in [Metadata], which the
// caller owns and passes in explicitly; see package store for keyed
// persistence between frames.
package grid
