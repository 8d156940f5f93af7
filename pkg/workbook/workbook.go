// Package workbook imports grid dimensions, sizes and cell text from an
// .xlsx sheet.
package workbook

import (
	"errors"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/grindlemire/go-grid/pkg/grid"
)

// ErrNoSheets is returned when a workbook has no worksheets.
var ErrNoSheets = errors.New("workbook: no sheets")

// Sheet is the layout and text of one worksheet. Column widths are in
// Excel character units and row heights in points.
type Sheet struct {
	Name         string
	ColumnWidths []float64
	RowHeights   []float64

	cells [][]string
}

// Open reads the named sheet of the workbook at path, or its first sheet
// when name is empty.
func Open(path, name string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("workbook: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, name)
}

// Read extracts a sheet from an open workbook.
func Read(f *excelize.File, name string) (*Sheet, error) {
	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		name = sheets[0]
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("workbook: read sheet %q: %w", name, err)
	}

	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}

	s := &Sheet{
		Name:         name,
		ColumnWidths: make([]float64, cols),
		RowHeights:   make([]float64, len(rows)),
		cells:        rows,
	}
	for i := range cols {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("workbook: column %d: %w", i, err)
		}
		if s.ColumnWidths[i], err = f.GetColWidth(name, colName); err != nil {
			return nil, fmt.Errorf("workbook: width of column %s: %w", colName, err)
		}
	}
	for i := range rows {
		if s.RowHeights[i], err = f.GetRowHeight(name, i+1); err != nil {
			return nil, fmt.Errorf("workbook: height of row %d: %w", i+1, err)
		}
	}
	return s, nil
}

// Dimension returns the column and row counts of the used range.
func (s *Sheet) Dimension() (cols, rows int) {
	return len(s.ColumnWidths), len(s.RowHeights)
}

// Text returns the formatted value of a cell, or "" when it is empty or
// outside the sheet. Indices are zero-based.
func (s *Sheet) Text(col, row int) string {
	if row < 0 || row >= len(s.cells) || col < 0 || col >= len(s.cells[row]) {
		return ""
	}
	return s.cells[row][col]
}

// ColumnName returns the spreadsheet name of a zero-based column ("A", "B",
// ..., "AA").
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return ""
	}
	return name
}

// Scale converts sheet units into grid units.
type Scale struct {
	// Column multiplies character-unit widths.
	Column float64
	// Row multiplies point heights.
	Row float64
	// Whole rounds every size to a whole unit, at least 1.
	Whole bool
}

var (
	// TerminalScale maps one width character to one cell and a default
	// 15pt row to one line.
	TerminalScale = Scale{Column: 1, Row: 1.0 / 15, Whole: true}
	// PixelScale maps sheet units to pixels at 96 DPI.
	PixelScale = Scale{Column: 7, Row: 4.0 / 3}
)

func (sc Scale) apply(v, factor float64) float64 {
	v *= factor
	if sc.Whole {
		v = max(math.Round(v), 1)
	}
	return v
}

// Apply sizes meta's axes from the sheet: both axes become per-index
// resizable and take the sheet's dimension and sizes.
func (s *Sheet) Apply(meta *grid.Metadata, sc Scale) error {
	if err := applyAxis(meta, grid.Columns, s.ColumnWidths, sc.Column, sc); err != nil {
		return err
	}
	return applyAxis(meta, grid.Rows, s.RowHeights, sc.Row, sc)
}

func applyAxis(meta *grid.Metadata, a grid.Axis, sizes []float64, factor float64, sc Scale) error {
	l := meta.Axis(a)
	l.SetResizable(true)
	scaled := make([]float64, len(sizes))
	for i, v := range sizes {
		scaled[i] = sc.apply(v, factor)
	}
	if err := l.SetWidths(scaled); err != nil {
		return fmt.Errorf("workbook: %s: %w", a, err)
	}
	return nil
}
