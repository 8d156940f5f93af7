package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-grid/internal/config"
	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/pkg/canvas"
	"github.com/grindlemire/go-grid/pkg/grid"
	"github.com/grindlemire/go-grid/pkg/store"
	"github.com/grindlemire/go-grid/pkg/workbook"
)

// gridID is the store key of the displayed grid.
const gridID = "grid"

// session is a loaded grid ready to be shown.
type session struct {
	cfg        *config.Config
	cols, rows int
	store      *store.Memory
	text       canvas.TextFunc
	label      func(col int) string
	logger     *log.Logger
	engine     *log.Logger
}

// open loads the configuration and, if one is configured, the workbook.
// state names an optional store file holding sizes from an earlier run.
func (a *app) open(cmd *cobra.Command, state string) (*session, error) {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:   cfg,
		cols:  cfg.Grid.Columns,
		rows:  cfg.Grid.Rows,
		label: workbook.ColumnName,
		logger: log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Level:  cfg.Level(),
			Prefix: "gridview",
		}),
	}
	if s.engine, err = debug.FromEnv(); err != nil {
		return nil, err
	}

	opts := []store.MemoryOption{store.WithDefaults(cfg.Metadata), store.WithLogger(s.engine)}
	if state != "" {
		s.store, err = store.LoadFile(state, opts...)
		if err != nil {
			return nil, err
		}
	} else {
		s.store = store.NewMemory(opts...)
	}

	if cfg.Workbook.Path == "" {
		return s, nil
	}

	sheet, err := workbook.Open(cfg.Workbook.Path, cfg.Workbook.Sheet)
	if err != nil {
		return nil, err
	}
	s.cols, s.rows = sheet.Dimension()
	s.text = sheet.Text
	s.logger.Info("loaded workbook", "path", cfg.Workbook.Path, "sheet", sheet.Name, "columns", s.cols, "rows", s.rows)

	if _, ok := s.store.Get(gridID); !ok {
		meta := cfg.Metadata()
		if err := sheet.Apply(meta, workbook.TerminalScale); err != nil {
			return nil, err
		}
		s.store.Put(gridID, meta)
	}
	return s, nil
}

// widget builds the grid widget for this session.
func (s *session) widget(opts ...grid.Option) (*grid.Widget, error) {
	opts = append([]grid.Option{grid.WithID(gridID), grid.WithLogger(s.engine)}, opts...)
	w, err := grid.New(s.cols, s.rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("create grid: %w", err)
	}
	return w, nil
}
