// Package viewer is an interactive terminal host for a grid: it scrolls a
// viewport over the grid, moves a cell cursor and resizes columns and rows.
package viewer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-grid/pkg/canvas"
	"github.com/grindlemire/go-grid/pkg/grid"
	"github.com/grindlemire/go-grid/pkg/layout"
	"github.com/grindlemire/go-grid/pkg/store"
	"github.com/grindlemire/go-grid/pkg/workbook"
)

// wheelStep is the number of grid units one mouse wheel notch scrolls.
const wheelStep = 3

// Model is the bubbletea model of the grid viewer. Grid metadata lives in
// the store under the viewer's id, so sizes and the cursor survive when
// the model is rebuilt.
type Model struct {
	cols, rows int
	id         string
	store      store.Store
	text       canvas.TextFunc
	label      func(col int) string
	styles     canvas.Styles
	status     lipgloss.Style
	logger     *log.Logger
	keys       keymap
	help       help.Model

	width, height int
	scroll        layout.Point
	message       string
}

// Option configures a Model.
type Option func(*Model)

// WithStore sets the metadata store. Default is an empty store.Memory.
func WithStore(s store.Store) Option {
	return func(m *Model) {
		m.store = s
	}
}

// WithID sets the key the grid metadata is stored under. Default "grid".
func WithID(id string) Option {
	return func(m *Model) {
		m.id = id
	}
}

// WithText sets the cell text source. Default shows each cell's coordinate.
func WithText(fn canvas.TextFunc) Option {
	return func(m *Model) {
		m.text = fn
	}
}

// WithColumnLabels sets the column header labels. Default is spreadsheet
// column names.
func WithColumnLabels(fn func(col int) string) Option {
	return func(m *Model) {
		m.label = fn
	}
}

// WithLogger sets the logger. Default discards.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// New creates a viewer for a grid of cols columns and rows rows.
func New(cols, rows int, opts ...Option) Model {
	m := Model{
		cols:   cols,
		rows:   rows,
		id:     "grid",
		text:   coordinate,
		label:  workbook.ColumnName,
		styles: canvas.DefaultStyles(),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		logger: log.New(io.Discard),
		keys:   newKeymap(),
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.store == nil {
		m.store = store.NewMemory()
	}
	return m
}

func coordinate(col, row int) string {
	return fmt.Sprintf("(%d, %d)", col, row)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.scroll = m.clampScroll(m.scroll)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.up):
		m = m.move(0, -1)
	case key.Matches(msg, m.keys.down):
		m = m.move(0, 1)
	case key.Matches(msg, m.keys.left):
		m = m.move(-1, 0)
	case key.Matches(msg, m.keys.right):
		m = m.move(1, 0)
	case key.Matches(msg, m.keys.pageUp):
		m = m.move(0, -m.pageRows())
	case key.Matches(msg, m.keys.pageDown):
		m = m.move(0, m.pageRows())
	case key.Matches(msg, m.keys.home):
		m = m.move(-m.cols, 0)
	case key.Matches(msg, m.keys.end):
		m = m.move(m.cols, 0)
	case key.Matches(msg, m.keys.top):
		m = m.move(0, -m.rows)
	case key.Matches(msg, m.keys.bottom):
		m = m.move(0, m.rows)
	case key.Matches(msg, m.keys.wider):
		m = m.resize(grid.Columns, 1)
	case key.Matches(msg, m.keys.narrower):
		m = m.resize(grid.Columns, -1)
	case key.Matches(msg, m.keys.taller):
		m = m.resize(grid.Rows, 1)
	case key.Matches(msg, m.keys.shorter):
		m = m.resize(grid.Rows, -1)
	case key.Matches(msg, m.keys.toggle):
		m = m.toggleColumns()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll = m.clampScroll(m.scroll.Add(layout.Point{Y: -wheelStep}))
	case tea.MouseButtonWheelDown:
		m.scroll = m.clampScroll(m.scroll.Add(layout.Point{Y: wheelStep}))
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m
		}
		x := m.scroll.X + float64(msg.X-m.gutter())
		y := m.scroll.Y + float64(msg.Y-1)
		m.message = ""
		m.edit(func(_ *grid.Widget, meta *grid.Metadata) error {
			if c, ok := meta.CellAt(x, y); ok {
				meta.SetCursor(c)
			}
			return nil
		})
	}
	return m
}

// move shifts the cursor and scrolls it into view.
func (m Model) move(dcol, drow int) Model {
	viewport := m.viewport()
	m.message = ""
	m.edit(func(_ *grid.Widget, meta *grid.Metadata) error {
		if c, ok := meta.MoveCursor(dcol, drow); ok {
			viewport = meta.ScrollIntoView(viewport, c)
		}
		return nil
	})
	m.scroll = viewport.Min()
	return m
}

// resize changes the size of the cursor's column or row by delta, keeping
// it at least one cell.
func (m Model) resize(a grid.Axis, delta float64) Model {
	err := m.edit(func(w *grid.Widget, meta *grid.Metadata) error {
		var c grid.Cursor
		if meta.Cursor != nil {
			c = *meta.Cursor
		}
		index := c.Col
		if a == grid.Rows {
			index = c.Row
		}
		size, ok := meta.Axis(a).Width(index)
		if !ok {
			return nil
		}
		return w.SetCellSize(meta, a, index, max(size+delta, 1))
	})
	if err != nil {
		m.logger.Error("resize failed", "axis", a, "err", err)
		m.message = err.Error()
	}
	m.scroll = m.clampScroll(m.scroll)
	return m
}

func (m Model) toggleColumns() Model {
	m.edit(func(w *grid.Widget, meta *grid.Metadata) error {
		l := meta.Columns
		if err := w.SetResizable(meta, grid.Columns, !l.Resizable(), l.DefaultSize()); err != nil {
			return err
		}
		m.message = "columns: " + l.Mode().String()
		return nil
	})
	m.scroll = m.clampScroll(m.scroll)
	return m
}

// edit applies fn to the stored metadata, synchronized to the grid
// dimension, and stores the result.
func (m Model) edit(fn func(*grid.Widget, *grid.Metadata) error) error {
	w, err := m.widget()
	if err != nil {
		return err
	}
	return store.Update(m.store, m.id, func(meta *grid.Metadata) error {
		w.Sync(meta)
		return fn(w, meta)
	})
}

// peek returns the stored metadata synchronized to the grid dimension
// without writing it back.
func (m Model) peek() (*grid.Metadata, bool) {
	w, err := m.widget()
	if err != nil {
		return nil, false
	}
	meta := m.store.Load(m.id)
	w.Sync(meta)
	return meta, true
}

func (m Model) widget() (*grid.Widget, error) {
	return grid.New(m.cols, m.rows,
		grid.WithID(m.id),
		grid.WithViewport(m.viewport()),
		grid.WithLogger(m.logger),
	)
}

// gutter returns the width of the row header, wide enough for the largest
// row number plus a space.
func (m Model) gutter() int {
	return len(strconv.Itoa(m.rows)) + 1
}

// bodySize returns the size of the grid area in cells.
func (m Model) bodySize() (width, height int) {
	width = max(m.width-m.gutter(), 0)
	height = max(m.height-2-lipgloss.Height(m.help.View(m.keys)), 0)
	return width, height
}

// viewport returns the visible rectangle in grid coordinates.
func (m Model) viewport() layout.Rect {
	w, h := m.bodySize()
	return layout.NewRect(m.scroll.X, m.scroll.Y, float64(w), float64(h))
}

// pageRows returns how many rows one page moves, at least one.
func (m Model) pageRows() int {
	_, h := m.bodySize()
	meta, ok := m.peek()
	if !ok {
		return 1
	}
	rows := meta.Rows.Range(m.scroll.Y, m.scroll.Y+float64(h)).Len() - 1
	return max(rows, 1)
}

// clampScroll keeps the viewport inside the grid content.
func (m Model) clampScroll(p layout.Point) layout.Point {
	w, h := m.bodySize()
	var extent layout.Size
	if meta, ok := m.peek(); ok {
		extent = meta.TotalSize()
	}
	p.X = max(0, min(p.X, extent.Width-float64(w)))
	p.Y = max(0, min(p.Y, extent.Height-float64(h)))
	return p
}
