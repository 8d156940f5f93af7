package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grindlemire/go-grid/internal/config"
)

// app carries the state shared by every command.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "gridview",
		Short:         "A terminal viewer for very large grids",
		Long:          longRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./gridview.yaml)")
	flags.Int("columns", 0, "number of columns")
	flags.Int("rows", 0, "number of rows")
	flags.Float64("column-width", 0, "width of new columns")
	flags.Float64("row-height", 0, "height of new rows")
	flags.Bool("resizable-columns", false, "size columns independently")
	flags.Bool("resizable-rows", false, "size rows independently")
	flags.String("workbook", "", "xlsx file to display")
	flags.String("sheet", "", "sheet of the workbook (default is the first)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	for key, flag := range map[string]string{
		"grid.columns":           "columns",
		"grid.rows":              "rows",
		"grid.column_width":      "column-width",
		"grid.row_height":        "row-height",
		"grid.resizable_columns": "resizable-columns",
		"grid.resizable_rows":    "resizable-rows",
		"workbook.path":          "workbook",
		"workbook.sheet":         "sheet",
		"log.level":              "log-level",
	} {
		// only fails for a nil flag
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		a.viewCmd(),
		a.renderCmd(),
		a.planCmd(),
		versionCmd(),
	)
	return root
}

var longRoot = `
gridview lays out grids of any size, up to millions of rows and columns,
and shows only the cells inside the current viewport.

Settings come from gridview.yaml, GRIDVIEW_* environment variables and flags,
in increasing order of precedence. Set GRID_DEBUG to a file path to write
debug logs there.
`
