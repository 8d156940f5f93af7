package grid

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-grid/pkg/axis"
	"github.com/grindlemire/go-grid/pkg/layout"
)

const (
	// DefaultColumnWidth is the column width used by DefaultMetadata.
	DefaultColumnWidth = 200
	// DefaultRowHeight is the row height used by DefaultMetadata.
	DefaultRowHeight = 20
)

// ErrUnknownAxis is reported for an Axis value other than Columns or Rows.
var ErrUnknownAxis = errors.New("unknown axis")

// Axis names one dimension of a grid.
type Axis uint8

const (
	// Columns is the horizontal axis; its sizes are column widths.
	Columns Axis = iota
	// Rows is the vertical axis; its sizes are row heights.
	Rows
)

// String returns "columns" or "rows".
func (a Axis) String() string {
	switch a {
	case Columns:
		return "columns"
	case Rows:
		return "rows"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// Valid reports whether a is Columns or Rows.
func (a Axis) Valid() bool {
	return a == Columns || a == Rows
}

// Cursor is a selected cell coordinate.
type Cursor struct {
	Col int `json:"col" yaml:"col"`
	Row int `json:"row" yaml:"row"`
}

// Metadata is the state one grid instance keeps between layout passes.
// It is owned by a single caller at a time.
type Metadata struct {
	Columns *axis.Layout
	Rows    *axis.Layout
	// Cursor is the selected cell, or nil when nothing is selected.
	Cursor *Cursor
}

// NewMetadata creates metadata with uniform axes of the given sizes.
func NewMetadata(columnWidth, rowHeight float64) *Metadata {
	return &Metadata{
		Columns: axis.New(columnWidth),
		Rows:    axis.New(rowHeight),
	}
}

// DefaultMetadata creates metadata sized for pixel hosts.
func DefaultMetadata() *Metadata {
	return NewMetadata(DefaultColumnWidth, DefaultRowHeight)
}

// Axis returns the layout for the given dimension. It panics if a is not
// Columns or Rows.
func (m *Metadata) Axis(a Axis) *axis.Layout {
	switch a {
	case Columns:
		return m.Columns
	case Rows:
		return m.Rows
	default:
		panic(fmt.Errorf("grid: %w: %s", ErrUnknownAxis, a))
	}
}

// TotalSize returns the full content extent of the grid.
func (m *Metadata) TotalSize() layout.Size {
	return layout.Size{
		Width:  m.Columns.TotalExtent(),
		Height: m.Rows.TotalExtent(),
	}
}

// Dimension returns the current column and row counts.
func (m *Metadata) Dimension() (cols, rows int) {
	return m.Columns.Len(), m.Rows.Len()
}

// Clone returns a deep copy.
func (m *Metadata) Clone() *Metadata {
	c := &Metadata{
		Columns: m.Columns.Clone(),
		Rows:    m.Rows.Clone(),
	}
	if m.Cursor != nil {
		cur := *m.Cursor
		c.Cursor = &cur
	}
	return c
}

// State is the serializable form of Metadata.
type State struct {
	Columns axis.State `json:"columns" yaml:"columns"`
	Rows    axis.State `json:"rows" yaml:"rows"`
	Cursor  *Cursor    `json:"cursor,omitempty" yaml:"cursor,omitempty"`
}

// Snapshot captures the metadata as a State sharing no memory with it.
func (m *Metadata) Snapshot() State {
	s := State{
		Columns: m.Columns.Snapshot(),
		Rows:    m.Rows.Snapshot(),
	}
	if m.Cursor != nil {
		cur := *m.Cursor
		s.Cursor = &cur
	}
	return s
}

// Restore rebuilds Metadata from a snapshot.
func Restore(s State) (*Metadata, error) {
	cols, err := axis.FromState(s.Columns)
	if err != nil {
		return nil, fmt.Errorf("grid: restore columns: %w", err)
	}
	rows, err := axis.FromState(s.Rows)
	if err != nil {
		return nil, fmt.Errorf("grid: restore rows: %w", err)
	}
	m := &Metadata{Columns: cols, Rows: rows}
	if s.Cursor != nil {
		cur := *s.Cursor
		m.Cursor = &cur
	}
	return m, nil
}
