// Package main provides gridview, a terminal viewer for very large grids.
//
// Usage:
//
//	gridview view                 Browse the grid interactively
//	gridview render               Print one frame of the grid
//	gridview plan                 Print the layout plan for a viewport
//	gridview version              Print version information
//
// Examples:
//
//	gridview view --workbook book.xlsx
//	gridview render --x 120 --y 40 --width 80 --height 20
//	gridview plan --columns 1000000 --rows 1000000 --format json
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
