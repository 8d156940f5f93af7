package grid

import "github.com/grindlemire/go-grid/pkg/layout"

// CellAt returns the cell whose rectangle contains the grid-local point
// (x, y). The second result is false outside the grid.
func (m *Metadata) CellAt(x, y float64) (Cursor, bool) {
	col, ok := m.Columns.Index(x)
	if !ok {
		return Cursor{}, false
	}
	row, ok := m.Rows.Index(y)
	if !ok {
		return Cursor{}, false
	}
	return Cursor{Col: col, Row: row}, true
}

// CellRect returns the rectangle of any cell in the grid, visible or not.
func (m *Metadata) CellRect(col, row int) (layout.Rect, bool) {
	w, ok := m.Columns.Width(col)
	if !ok {
		return layout.Rect{}, false
	}
	h, ok := m.Rows.Width(row)
	if !ok {
		return layout.Rect{}, false
	}
	x, _ := m.Columns.Accum(col)
	y, _ := m.Rows.Accum(row)
	return layout.NewRect(x, y, w, h), true
}

// SetCursor selects a cell. It returns false, leaving the selection alone,
// when the cell lies outside the grid.
func (m *Metadata) SetCursor(c Cursor) bool {
	cols, rows := m.Dimension()
	if c.Col < 0 || c.Col >= cols || c.Row < 0 || c.Row >= rows {
		return false
	}
	m.Cursor = &c
	return true
}

// ClearCursor removes the selection.
func (m *Metadata) ClearCursor() {
	m.Cursor = nil
}

// MoveCursor moves the selection by (dcol, drow), clamped to the grid. With
// no selection the move starts from the first cell. The second result is
// false for an empty grid.
func (m *Metadata) MoveCursor(dcol, drow int) (Cursor, bool) {
	cols, rows := m.Dimension()
	if cols == 0 || rows == 0 {
		return Cursor{}, false
	}

	var c Cursor
	if m.Cursor != nil {
		c = *m.Cursor
	}
	c.Col = clamp(c.Col+dcol, 0, cols-1)
	c.Row = clamp(c.Row+drow, 0, rows-1)
	m.Cursor = &c
	return c, true
}

// ScrollIntoView returns viewport moved by the smallest offset that makes the
// cell fully visible. A cell larger than the viewport is aligned to its
// top-left corner. The result never scrolls past the content extent.
func (m *Metadata) ScrollIntoView(viewport layout.Rect, c Cursor) layout.Rect {
	cell, ok := m.CellRect(c.Col, c.Row)
	if !ok {
		return viewport
	}
	extent := m.TotalSize()

	x := scrollAxis(viewport.X, viewport.Width, cell.X, cell.Width, extent.Width)
	y := scrollAxis(viewport.Y, viewport.Height, cell.Y, cell.Height, extent.Height)
	return layout.NewRect(x, y, viewport.Width, viewport.Height)
}

// scrollAxis returns the new viewport start along one axis.
func scrollAxis(start, size, cellStart, cellSize, extent float64) float64 {
	switch {
	case cellStart < start || cellSize > size:
		start = cellStart
	case cellStart+cellSize > start+size:
		start = cellStart + cellSize - size
	}
	return max(0, min(start, extent-size))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
