package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/pkg/canvas"
	"github.com/grindlemire/go-grid/pkg/grid"
	"github.com/grindlemire/go-grid/pkg/layout"
	"github.com/grindlemire/go-grid/pkg/store"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func (a *app) renderCmd() *cobra.Command {
	var (
		x, y          float64
		width, height int
		color         bool
		rowLines      bool
		state         string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the grid",
		Long:  longRender,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd, state)
			if err != nil {
				return err
			}
			defer debug.Close()

			out := cmd.OutOrStdout()
			if width <= 0 || height <= 0 {
				tw, th := terminalSize(out)
				width, height = orDefault(width, tw), orDefault(height, th)
			}

			frame, err := s.render(x, y, width, height, rowLines)
			if err != nil {
				return err
			}
			if color {
				fmt.Fprintln(out, frame.Render(canvas.DefaultStyles()))
			} else {
				fmt.Fprintln(out, frame.StringTrimmed())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&x, "x", 0, "left edge of the viewport in grid units")
	flags.Float64Var(&y, "y", 0, "top edge of the viewport in grid units")
	flags.IntVar(&width, "width", 0, "frame width in cells (default is the terminal width)")
	flags.IntVar(&height, "height", 0, "frame height in cells (default is the terminal height)")
	flags.BoolVar(&color, "color", false, "style the frame with ANSI colors")
	flags.BoolVar(&rowLines, "row-lines", false, "draw horizontal separators")
	flags.StringVar(&state, "state", "", "file to load grid sizes from")
	return cmd
}

// orDefault returns v, or fallback when v is not positive.
func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

// terminalSize returns the size of the terminal behind w, or 80x24 when w
// is not a terminal.
func terminalSize(w io.Writer) (int, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackWidth, fallbackHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return fallbackWidth, fallbackHeight
	}
	return width, height
}

// render draws a width x height frame: a column header row, a row number
// gutter and the grid viewport starting at (x, y).
func (s *session) render(x, y float64, width, height int, rowLines bool) (*canvas.Buffer, error) {
	gutter := len(strconv.Itoa(s.rows)) + 1
	bw, bh := max(width-gutter, 0), max(height-1, 0)

	w, err := s.widget(grid.WithViewport(layout.NewRect(x, y, float64(bw), float64(bh))))
	if err != nil {
		return nil, err
	}

	var cursor *grid.Cursor
	plan := store.ShowPersisted(s.store, w, func(grid.Cell) {})
	if meta, ok := s.store.Get(gridID); ok {
		cursor = meta.Cursor
	}

	text := s.text
	if text == nil {
		text = func(col, row int) string { return fmt.Sprintf("(%d, %d)", col, row) }
	}

	frame := canvas.NewBuffer(width, height)
	body := canvas.NewBuffer(bw, bh)
	canvas.Paint(body, plan, text, canvas.WithCursor(cursor), canvas.WithRowLines(rowLines))
	header := canvas.NewBuffer(bw, 1)
	canvas.PaintColumnHeader(header, plan, 0, s.label)

	gutterBuf := canvas.NewBuffer(gutter, bh)
	canvas.PaintRowHeader(gutterBuf, plan, 0, gutter-1, func(row int) string {
		return strconv.Itoa(row + 1)
	})

	frame.Fill(canvas.NewRect(0, 0, gutter, 1), ' ', canvas.AttrHeader)
	frame.Blit(gutter, 0, header)
	frame.Blit(0, 1, gutterBuf)
	frame.Blit(gutter, 1, body)
	return frame, nil
}

var longRender = `
Print one frame of the grid to stdout, the way the viewer would draw it.

Examples:
  gridview render --width 100 --height 30
  gridview render --x 1200000 --y 999990 --workbook book.xlsx
`
