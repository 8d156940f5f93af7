package grid

import (
	"iter"

	"github.com/grindlemire/go-grid/pkg/axis"
	"github.com/grindlemire/go-grid/pkg/layout"
)

// Cell is one visible grid cell and its rectangle relative to the grid origin.
type Cell struct {
	Col, Row int
	Rect     layout.Rect
}

// Plan is the result of a layout pass. It shares no memory with the
// Metadata it was computed from, so later mutations do not affect it.
type Plan struct {
	// Extent is the full content size of the grid, independent of the viewport.
	Extent layout.Size
	// Viewport is the rectangle the plan was resolved for.
	Viewport layout.Rect

	// Columns and Rows are the visible index spans.
	Columns, Rows axis.Span

	// SeparatorsX holds the x offset of the left edge of every visible
	// column plus the right edge of the last one. SeparatorsY is the same
	// for rows. Vertical grid lines are drawn at SeparatorsX, horizontal
	// lines at SeparatorsY.
	SeparatorsX, SeparatorsY []float64

	// ColumnWidths and RowHeights hold the sizes of the visible indices.
	ColumnWidths, RowHeights []float64
}

// Empty returns true if no cell is visible.
func (p Plan) Empty() bool {
	return p.Columns.Empty() || p.Rows.Empty()
}

// Len returns the number of visible cells.
func (p Plan) Len() int {
	if p.Empty() {
		return 0
	}
	return p.Columns.Len() * p.Rows.Len()
}

// CellRect returns the rectangle of a visible cell.
func (p Plan) CellRect(col, row int) (layout.Rect, bool) {
	if !p.Columns.Contains(col) || !p.Rows.Contains(row) {
		return layout.Rect{}, false
	}
	ci, ri := col-p.Columns.First, row-p.Rows.First
	return layout.NewRect(p.SeparatorsX[ci], p.SeparatorsY[ri], p.ColumnWidths[ci], p.RowHeights[ri]), true
}

// Cells yields every visible cell in row-major order. The sequence can be
// ranged over any number of times.
func (p Plan) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if p.Empty() {
			return
		}
		for ri := range p.RowHeights {
			y, h := p.SeparatorsY[ri], p.RowHeights[ri]
			for ci := range p.ColumnWidths {
				c := Cell{
					Col:  p.Columns.First + ci,
					Row:  p.Rows.First + ri,
					Rect: layout.NewRect(p.SeparatorsX[ci], y, p.ColumnWidths[ci], h),
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}
