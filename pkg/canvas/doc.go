// Package canvas draws grid layout plans into a character-cell buffer.
//
// A Buffer is a fixed-size grid of terminal cells. Paint translates a
// grid.Plan into buffer coordinates (plan coordinates minus the viewport
// origin, one unit per cell), draws the separator lines and writes each
// visible cell's text clipped to its rectangle. Crossing lines merge into
// the matching box-drawing junction.
package canvas
