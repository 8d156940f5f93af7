package viewer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-grid/pkg/canvas"
	"github.com/grindlemire/go-grid/pkg/grid"
	"github.com/grindlemire/go-grid/pkg/store"
)

// frame is one rendered layout pass.
type frame struct {
	plan    grid.Plan
	cursor  *grid.Cursor
	columns string
	rows    string
	cells   int
}

// frame runs a layout pass over the current viewport.
func (m Model) frame() (frame, error) {
	w, err := m.widget()
	if err != nil {
		return frame{}, err
	}

	var f frame
	err = store.Update(m.store, m.id, func(meta *grid.Metadata) error {
		f.plan = w.Show(meta, func(grid.Cell) { f.cells++ })
		f.cursor = meta.Cursor
		f.columns = meta.Columns.Mode().String()
		f.rows = meta.Rows.Mode().String()
		return nil
	})
	return f, err
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	f, err := m.frame()
	if err != nil {
		return err.Error()
	}

	bw, bh := m.bodySize()
	gutter := m.gutter()

	header := canvas.NewBuffer(bw, 1)
	canvas.PaintColumnHeader(header, f.plan, 0, m.label)

	body := canvas.NewBuffer(bw, bh)
	canvas.Paint(body, f.plan, m.text, canvas.WithCursor(f.cursor))

	rowHeader := canvas.NewBuffer(gutter, bh)
	canvas.PaintRowHeader(rowHeader, f.plan, 0, gutter-1, func(row int) string {
		return strconv.Itoa(row + 1)
	})

	corner := m.styles[canvas.AttrHeader].Render(strings.Repeat(" ", gutter))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, corner, header.Render(m.styles)),
		lipgloss.JoinHorizontal(lipgloss.Top, rowHeader.Render(m.styles), body.Render(m.styles)),
		m.statusLine(f),
		m.help.View(m.keys),
	)
}

func (m Model) statusLine(f frame) string {
	parts := []string{}
	if f.cursor != nil {
		parts = append(parts, fmt.Sprintf("%s%d", m.label(f.cursor.Col), f.cursor.Row+1))
		if text := m.text(f.cursor.Col, f.cursor.Row); text != "" {
			parts = append(parts, text)
		}
	}
	parts = append(parts,
		fmt.Sprintf("%dx%d", m.cols, m.rows),
		"columns: "+f.columns,
		"rows: "+f.rows,
		fmt.Sprintf("%d visible", f.cells),
	)
	if m.message != "" {
		parts = append(parts, m.message)
	}
	return m.status.Width(m.width).MaxHeight(1).Render(strings.Join(parts, "  "))
}
