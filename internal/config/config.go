// Package config loads gridview settings from a YAML file, GRIDVIEW_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/grindlemire/go-grid/pkg/axis"
	"github.com/grindlemire/go-grid/pkg/grid"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. GRIDVIEW_GRID_COLUMNS.
	EnvPrefix = "GRIDVIEW"
	// FileName is the config file name searched for without --config.
	FileName = "gridview"
)

// Config is the full gridview configuration.
type Config struct {
	Grid     GridConfig     `mapstructure:"grid"`
	Workbook WorkbookConfig `mapstructure:"workbook"`
	Log      LogConfig      `mapstructure:"log"`
}

// GridConfig sizes the grid shown when no workbook is loaded.
type GridConfig struct {
	Columns          int     `mapstructure:"columns"`
	Rows             int     `mapstructure:"rows"`
	ColumnWidth      float64 `mapstructure:"column_width"`
	RowHeight        float64 `mapstructure:"row_height"`
	ResizableColumns bool    `mapstructure:"resizable_columns"`
	ResizableRows    bool    `mapstructure:"resizable_rows"`
}

// WorkbookConfig names an optional .xlsx file to display.
type WorkbookConfig struct {
	Path  string `mapstructure:"path"`
	Sheet string `mapstructure:"sheet"`
}

// LogConfig controls stderr logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// New returns a viper instance with gridview defaults and environment
// overrides registered.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("grid.columns", 1_000_000)
	v.SetDefault("grid.rows", 1_000_000)
	v.SetDefault("grid.column_width", 12)
	v.SetDefault("grid.row_height", 1)
	v.SetDefault("grid.resizable_columns", true)
	v.SetDefault("grid.resizable_rows", false)
	v.SetDefault("workbook.path", "")
	v.SetDefault("workbook.sheet", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path into v and decodes the result. With an
// empty path it looks for gridview.yaml in the working directory and in
// the user config directory, and a missing file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Columns < 0 {
		errs = append(errs, fmt.Errorf("grid.columns must not be negative, got %d", c.Grid.Columns))
	}
	if c.Grid.Rows < 0 {
		errs = append(errs, fmt.Errorf("grid.rows must not be negative, got %d", c.Grid.Rows))
	}
	if !axis.ValidSize(c.Grid.ColumnWidth) || c.Grid.ColumnWidth == 0 {
		errs = append(errs, fmt.Errorf("grid.column_width must be positive, got %v", c.Grid.ColumnWidth))
	}
	if !axis.ValidSize(c.Grid.RowHeight) || c.Grid.RowHeight == 0 {
		errs = append(errs, fmt.Errorf("grid.row_height must be positive, got %v", c.Grid.RowHeight))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Workbook.Sheet != "" && c.Workbook.Path == "" {
		errs = append(errs, errors.New("workbook.sheet requires workbook.path"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the configured log level, or info when it does not parse.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Metadata builds grid metadata with the configured sizes and modes.
func (c *Config) Metadata() *grid.Metadata {
	meta := grid.NewMetadata(c.Grid.ColumnWidth, c.Grid.RowHeight)
	meta.Columns.SetResizable(c.Grid.ResizableColumns)
	meta.Rows.SetResizable(c.Grid.ResizableRows)
	return meta
}
