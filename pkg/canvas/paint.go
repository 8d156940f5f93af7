package canvas

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-grid/pkg/grid"
)

// TextFunc returns the text shown in a cell. Only the first line is drawn.
type TextFunc func(col, row int) string

type painter struct {
	columnLines bool
	rowLines    bool
	cursor      *grid.Cursor
}

// Option configures Paint.
type Option func(*painter)

// WithColumnLines draws vertical separators at column edges. Default true.
func WithColumnLines(on bool) Option {
	return func(p *painter) {
		p.columnLines = on
	}
}

// WithRowLines draws horizontal separators at row edges. Default false, since
// a separator needs a row of its own and terminal rows are usually one cell
// high.
func WithRowLines(on bool) Option {
	return func(p *painter) {
		p.rowLines = on
	}
}

// WithCursor highlights the given cell.
func WithCursor(c *grid.Cursor) Option {
	return func(p *painter) {
		p.cursor = c
	}
}

// Paint draws plan into buf. Plan coordinates are translated by the
// viewport origin so the viewport's top-left lands on buffer cell (0, 0).
func Paint(buf *Buffer, plan grid.Plan, text TextFunc, opts ...Option) {
	p := painter{columnLines: true}
	for _, opt := range opts {
		opt(&p)
	}
	if plan.Empty() {
		return
	}

	ox, oy := plan.Viewport.MinX(), plan.Viewport.MinY()
	xs := toCells(plan.SeparatorsX, ox)
	ys := toCells(plan.SeparatorsY, oy)
	left, right := xs[0], xs[len(xs)-1]
	top, bottom := ys[0], ys[len(ys)-1]

	// Without lines on the other axis a separator runs through every
	// row or column of the grid instead of ending at the outer edges.
	if p.columnLines {
		y0, to := top, bottom
		if !p.rowLines {
			y0, to = top-1, bottom-1
		}
		for _, x := range xs {
			buf.vline(x, y0, bottom, top, to)
		}
	}
	if p.rowLines {
		x0, to := left, right
		if !p.columnLines {
			x0, to = left-1, right-1
		}
		for _, y := range ys {
			buf.hline(x0, right, y, left, to)
		}
	}

	for cell := range plan.Cells() {
		ci, ri := cell.Col-plan.Columns.First, cell.Row-plan.Rows.First
		clip := Rect{X: xs[ci], Y: ys[ri]}
		clip.Width, clip.Height = xs[ci+1]-clip.X, ys[ri+1]-clip.Y
		if p.columnLines {
			clip.X++
			clip.Width--
		}
		if p.rowLines {
			clip.Y++
			clip.Height--
		}
		if clip.IsEmpty() {
			continue
		}

		attr := AttrNone
		if p.cursor != nil && p.cursor.Col == cell.Col && p.cursor.Row == cell.Row {
			attr = AttrCursor
			buf.Fill(clip, ' ', attr)
		}
		if text == nil {
			continue
		}
		s, _, _ := strings.Cut(text(cell.Col, cell.Row), "\n")
		buf.SetStringClipped(clip.X, clip.Y, s, attr, clip)
	}
}

// PaintColumnHeader writes one label per visible column on row y, centered
// between the column's edges.
func PaintColumnHeader(buf *Buffer, plan grid.Plan, y int, label func(col int) string) {
	buf.Fill(NewRect(0, y, buf.Width(), 1), ' ', AttrHeader)
	if plan.Empty() {
		return
	}

	xs := toCells(plan.SeparatorsX, plan.Viewport.MinX())
	for col := range plan.Columns.Indices() {
		i := col - plan.Columns.First
		clip := NewRect(xs[i], y, xs[i+1]-xs[i], 1)
		s := label(col)
		pad := (clip.Width - runewidth.StringWidth(s)) / 2
		buf.SetStringClipped(clip.X+max(pad, 0), y, s, AttrHeader, clip)
	}
}

// PaintRowHeader writes one right-aligned label per visible row into the
// columns [x, x+width) of buf.
func PaintRowHeader(buf *Buffer, plan grid.Plan, x, width int, label func(row int) string) {
	buf.Fill(NewRect(x, 0, width, buf.Height()), ' ', AttrHeader)
	if plan.Empty() {
		return
	}

	ys := toCells(plan.SeparatorsY, plan.Viewport.MinY())
	for row := range plan.Rows.Indices() {
		i := row - plan.Rows.First
		clip := NewRect(x, ys[i], width, ys[i+1]-ys[i])
		s := label(row)
		buf.SetStringClipped(x+width-runewidth.StringWidth(s), clip.Y, s, AttrHeader, clip)
	}
}

// toCells maps plan offsets to buffer cells relative to origin.
func toCells(offsets []float64, origin float64) []int {
	cells := make([]int, len(offsets))
	for i, v := range offsets {
		cells[i] = int(math.Floor(v - origin))
	}
	return cells
}
