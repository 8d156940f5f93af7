// Package axis tracks the sizes of the rows or the columns of a grid.
//
// A [Layout] maps between index space and coordinate space along a single
// dimension. It has two representations: [Uniform], where every index shares
// one size and all queries are arithmetic, and [Variable], where each index
// has its own size and a cumulative-offset cache answers position queries in
// O(1) and range queries in O(log n).
//
// The cache is rebuilt eagerly by every mutation, so a Layout can be read at
// any point without an explicit refresh step. Layouts are not safe for
// concurrent use; a grid instance is owned by a single layout pass at a time.
package axis
