package grid

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-grid/pkg/axis"
	"github.com/grindlemire/go-grid/pkg/layout"
)

// Widget lays out a grid of a fixed dimension. It holds no per-grid state
// of its own: sizes and the cursor live in the Metadata passed to each call.
type Widget struct {
	cols, rows int
	viewport   *layout.Rect
	id         string
	logger     *log.Logger
}

// New creates a widget for a grid of cols columns and rows rows.
func New(cols, rows int, opts ...Option) (*Widget, error) {
	if cols < 0 || rows < 0 {
		return nil, fmt.Errorf("grid: negative dimension %dx%d", cols, rows)
	}

	w := &Widget{
		cols:   cols,
		rows:   rows,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
	}
	return w, nil
}

// Dimension returns the widget's column and row counts.
func (w *Widget) Dimension() (cols, rows int) {
	return w.cols, w.rows
}

// ID returns the identity set with WithID.
func (w *Widget) ID() string {
	return w.id
}

// Viewport returns the rectangle set with WithViewport.
func (w *Widget) Viewport() (layout.Rect, bool) {
	if w.viewport == nil {
		return layout.Rect{}, false
	}
	return *w.viewport, true
}

// Sync resizes both axes of meta to the widget's dimension.
func (w *Widget) Sync(meta *Metadata) {
	meta.Columns.SetLen(w.cols)
	meta.Rows.SetLen(w.rows)
}

// Configure runs one layout pass: it synchronizes meta with the widget's
// dimension and resolves viewport into a Plan. A grid with no columns or no
// rows yields a plan with no cells and no separators.
func (w *Widget) Configure(meta *Metadata, viewport layout.Rect) Plan {
	w.Sync(meta)

	plan := Plan{
		Extent:   meta.TotalSize(),
		Viewport: viewport,
		Columns:  axis.EmptySpan,
		Rows:     axis.EmptySpan,
	}
	if w.cols == 0 || w.rows == 0 {
		w.logger.Debug("empty grid", "id", w.id, "columns", w.cols, "rows", w.rows)
		return plan
	}

	cols := meta.Columns.Range(viewport.MinX(), viewport.MaxX())
	rows := meta.Rows.Range(viewport.MinY(), viewport.MaxY())
	if cols.Empty() || rows.Empty() {
		return plan
	}

	plan.Columns, plan.Rows = cols, rows
	plan.SeparatorsX, plan.ColumnWidths = resolve(meta.Columns, cols)
	plan.SeparatorsY, plan.RowHeights = resolve(meta.Rows, rows)
	return plan
}

// Show runs a layout pass over the widget viewport, or the full extent when
// none was set, and calls fn once per visible cell in row-major order.
func (w *Widget) Show(meta *Metadata, fn func(Cell)) Plan {
	viewport, ok := w.Viewport()
	if !ok {
		w.Sync(meta)
		viewport = layout.RectFromSize(meta.TotalSize())
	}

	plan := w.Configure(meta, viewport)
	for c := range plan.Cells() {
		fn(c)
	}
	return plan
}

// SetCellSize sets the width of a column or the height of a row. It is the
// entry point for resize interactions; index must be within the dimension
// of the last pass.
func (w *Widget) SetCellSize(meta *Metadata, a Axis, index int, size float64) error {
	if !a.Valid() {
		return fmt.Errorf("grid: set %s size: %w", a, ErrUnknownAxis)
	}
	if err := meta.Axis(a).TrySetWidth(index, size); err != nil {
		return fmt.Errorf("grid: set %s size: %w", a, err)
	}
	return nil
}

// SetResizable switches an axis between uniform sizing (false) and per-index
// sizing (true), and sets the size given to indices added later.
func (w *Widget) SetResizable(meta *Metadata, a Axis, resizable bool, defaultSize float64) error {
	if !a.Valid() {
		return fmt.Errorf("grid: set %s resizable: %w", a, ErrUnknownAxis)
	}
	if !axis.ValidSize(defaultSize) {
		return fmt.Errorf("grid: set %s resizable: %w", a, axis.ErrInvalidSize)
	}

	l := meta.Axis(a)
	l.SetDefaultSize(defaultSize)
	if l.SetResizable(resizable) {
		w.logger.Debug("axis mode changed", "id", w.id, "axis", a, "mode", l.Mode(), "len", l.Len())
	}
	return nil
}

// resolve returns the edge offsets [First, Last+1] and the sizes of the
// indices in span.
func resolve(l *axis.Layout, span axis.Span) (edges, sizes []float64) {
	edges = make([]float64, 0, span.Len()+1)
	sizes = make([]float64, 0, span.Len())
	for i := range span.Edges() {
		off, _ := l.Accum(i)
		edges = append(edges, off)
	}
	for i := range span.Indices() {
		size, _ := l.Width(i)
		sizes = append(sizes, size)
	}
	return edges, sizes
}
