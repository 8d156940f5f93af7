package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/pkg/axis"
	"github.com/grindlemire/go-grid/pkg/grid"
	"github.com/grindlemire/go-grid/pkg/layout"
	"github.com/grindlemire/go-grid/pkg/store"
)

// planOutput is the printed form of a grid.Plan.
type planOutput struct {
	Extent      [2]float64   `json:"extent" yaml:"extent,flow"`
	Viewport    [4]float64   `json:"viewport" yaml:"viewport,flow"`
	Columns     *[2]int      `json:"columns,omitempty" yaml:"columns,omitempty,flow"`
	Rows        *[2]int      `json:"rows,omitempty" yaml:"rows,omitempty,flow"`
	Visible     int          `json:"visible" yaml:"visible"`
	SeparatorsX []float64    `json:"separators_x,omitempty" yaml:"separators_x,omitempty,flow"`
	SeparatorsY []float64    `json:"separators_y,omitempty" yaml:"separators_y,omitempty,flow"`
	Cells       []cellOutput `json:"cells,omitempty" yaml:"cells,omitempty"`
}

type cellOutput struct {
	Col  int        `json:"col" yaml:"col"`
	Row  int        `json:"row" yaml:"row"`
	Rect [4]float64 `json:"rect" yaml:"rect,flow"`
}

func rectOutput(r layout.Rect) [4]float64 {
	return [4]float64{r.X, r.Y, r.Width, r.Height}
}

func spanOutput(s axis.Span) *[2]int {
	if s.Empty() {
		return nil
	}
	return &[2]int{s.First, s.Last}
}

func (a *app) planCmd() *cobra.Command {
	var (
		x, y, width, height float64
		format              string
		cells               bool
		state               string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the layout plan for a viewport",
		Long:  longPlan,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd, state)
			if err != nil {
				return err
			}
			defer debug.Close()

			w, err := s.widget(grid.WithViewport(layout.NewRect(x, y, width, height)))
			if err != nil {
				return err
			}

			var out planOutput
			plan := store.ShowPersisted(s.store, w, func(c grid.Cell) {
				if cells {
					out.Cells = append(out.Cells, cellOutput{Col: c.Col, Row: c.Row, Rect: rectOutput(c.Rect)})
				}
			})
			out.Extent = [2]float64{plan.Extent.Width, plan.Extent.Height}
			out.Viewport = rectOutput(plan.Viewport)
			out.Columns = spanOutput(plan.Columns)
			out.Rows = spanOutput(plan.Rows)
			out.Visible = plan.Len()
			out.SeparatorsX = plan.SeparatorsX
			out.SeparatorsY = plan.SeparatorsY

			return writePlan(cmd.OutOrStdout(), format, out)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&x, "x", 0, "left edge of the viewport")
	flags.Float64Var(&y, "y", 0, "top edge of the viewport")
	flags.Float64Var(&width, "width", fallbackWidth, "viewport width")
	flags.Float64Var(&height, "height", fallbackHeight, "viewport height")
	flags.StringVar(&format, "format", "yaml", "output format (yaml or json)")
	flags.BoolVar(&cells, "cells", false, "list every visible cell")
	flags.StringVar(&state, "state", "", "file to load grid sizes from")
	return cmd
}

func writePlan(w io.Writer, format string, out planOutput) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

var longPlan = `
Resolve a viewport against the grid and print the visible column and row
spans, separator offsets and, with --cells, every visible cell.

Examples:
  gridview plan --columns 1000000 --rows 1000000 --x 5e6 --y 2e5
  gridview plan --workbook book.xlsx --cells --format json
`
