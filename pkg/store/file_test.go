package store

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-grid/pkg/grid"
)

func TestMemory_ExportImport(t *testing.T) {
	src := NewMemory()
	meta := grid.NewMetadata(12, 1)
	meta.Columns.SetLen(3)
	meta.Columns.SetResizable(true)
	meta.Columns.SetWidth(2, 30)
	meta.Rows.SetLen(100)
	meta.SetCursor(grid.Cursor{Col: 2, Row: 7})
	src.Put("sheet", meta)

	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf))
	assert.Contains(t, buf.String(), "mode: variable")
	assert.Contains(t, buf.String(), "mode: uniform")

	dst := NewMemory()
	require.NoError(t, dst.Import(&buf))

	got, ok := dst.Get("sheet")
	require.True(t, ok)
	assert.Equal(t, meta.Snapshot(), got.Snapshot())
}

func TestMemory_ImportRejectsInvalid(t *testing.T) {
	doc := `
good:
  columns: {mode: uniform, default_size: 1, size: 1, count: 2}
  rows: {mode: uniform, default_size: 1, size: 1, count: 2}
bad:
  columns: {mode: variable, default_size: 1, sizes: [1, -4]}
  rows: {mode: uniform, default_size: 1, size: 1}
`
	m := NewMemory()
	err := m.Import(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)
	assert.Equal(t, 0, m.Len())

	require.Error(t, m.Import(strings.NewReader("columns: [")))
	require.Error(t, m.Import(strings.NewReader("g:\n  columns: {mode: diagonal}\n")))
}

func TestMemory_ImportEmpty(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Import(strings.NewReader("")))
	assert.Equal(t, 0, m.Len())
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grids.yaml")

	m, err := LoadFile(path)
	require.NoError(t, err, "missing file is an empty store")
	assert.Equal(t, 0, m.Len())

	meta := grid.DefaultMetadata()
	meta.Rows.SetLen(5)
	m.Put("a", meta)
	require.NoError(t, m.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, loaded.IDs())
	got, _ := loaded.Get("a")
	assert.Equal(t, 5, got.Rows.Len())
}
