package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/internal/viewer"
)

func (a *app) viewCmd() *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the grid interactively",
		Long:  longView,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd, state)
			if err != nil {
				return err
			}
			defer debug.Close()

			m := viewer.New(s.cols, s.rows, s.viewerOptions()...)
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
				return fmt.Errorf("run viewer: %w", err)
			}

			if state == "" {
				return nil
			}
			if err := s.store.SaveFile(state); err != nil {
				return err
			}
			s.logger.Info("saved grid state", "path", state)
			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "file to load grid sizes from and save them to on exit")
	return cmd
}

func (s *session) viewerOptions() []viewer.Option {
	opts := []viewer.Option{
		viewer.WithStore(s.store),
		viewer.WithID(gridID),
		viewer.WithColumnLabels(s.label),
		viewer.WithLogger(s.engine),
	}
	if s.text != nil {
		opts = append(opts, viewer.WithText(s.text))
	}
	return opts
}

var longView = `
Browse the grid in the terminal.

Keys:
  arrows, hjkl   move the cursor
  pgup, pgdn     move a page
  g, G           first and last row
  home, end      first and last column
  < >            narrow or widen the cursor's column
  - +            shrink or grow the cursor's row
  r              toggle per-column sizing
  ?              show all keys
  q              quit

Examples:
  gridview view
  gridview view --workbook book.xlsx --sheet Data --state sizes.yaml
`
