package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-grid/pkg/axis"
	"github.com/grindlemire/go-grid/pkg/grid"
	"github.com/grindlemire/go-grid/pkg/layout"
)

func TestNewMemory(t *testing.T) {
	s := NewMemory()
	assert.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.IDs())
}

func TestMemory_GetPut(t *testing.T) {
	s := NewMemory()

	meta, ok := s.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, meta)

	m := grid.NewMetadata(10, 2)
	m.Columns.SetLen(3)
	m.Columns.SetResizable(true)
	m.Columns.SetWidth(1, 25)
	s.Put("sheet", m)

	got, ok := s.Get("sheet")
	require.True(t, ok)
	assert.Equal(t, m.Snapshot(), got.Snapshot())

	// the stored value is a snapshot, not the caller's pointer
	m.Columns.SetWidth(1, 99)
	got, _ = s.Get("sheet")
	w, _ := got.Columns.Width(1)
	assert.Equal(t, 25.0, w)

	// each Get hands out a private copy
	got.Columns.SetWidth(0, 1)
	again, _ := s.Get("sheet")
	w, _ = again.Columns.Width(0)
	assert.Equal(t, 10.0, w)
}

func TestMemory_LoadDefaults(t *testing.T) {
	s := NewMemory(WithDefaults(func() *grid.Metadata { return grid.NewMetadata(12, 1) }))

	meta := s.Load("new")
	assert.Equal(t, 12.0, meta.Columns.DefaultSize())
	assert.Equal(t, 0, s.Len(), "Load must not store anything")
}

func TestMemory_Delete(t *testing.T) {
	s := NewMemory()
	s.Put("a", grid.DefaultMetadata())
	s.Put("b", grid.DefaultMetadata())
	assert.Equal(t, []string{"a", "b"}, s.IDs())

	s.Delete("a")
	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestShowPersisted(t *testing.T) {
	s := NewMemory(WithDefaults(func() *grid.Metadata { return grid.NewMetadata(10, 1) }))
	w, err := grid.New(5, 5, grid.WithID("sheet"), grid.WithViewport(layout.NewRect(0, 0, 25, 2)))
	require.NoError(t, err)

	var cells []grid.Cell
	plan := ShowPersisted(s, w, func(c grid.Cell) { cells = append(cells, c) })
	assert.Len(t, cells, plan.Len())
	assert.Equal(t, axis.Span{First: 0, Last: 2}, plan.Columns)

	stored, ok := s.Get("sheet")
	require.True(t, ok)
	cols, rows := stored.Dimension()
	assert.Equal(t, 5, cols)
	assert.Equal(t, 5, rows)

	// a resize between passes is seen by the next pass
	err = Update(s, "sheet", func(m *grid.Metadata) error {
		if err := w.SetResizable(m, grid.Columns, true, 10); err != nil {
			return err
		}
		return w.SetCellSize(m, grid.Columns, 0, 30)
	})
	require.NoError(t, err)

	plan = ShowPersisted(s, w, func(grid.Cell) {})
	assert.Equal(t, axis.Span{First: 0, Last: 0}, plan.Columns)
	assert.Equal(t, 70.0, plan.Extent.Width)
}

func TestUpdate_ErrorLeavesStoreUntouched(t *testing.T) {
	s := NewMemory()
	s.Put("sheet", grid.DefaultMetadata())
	before, _ := s.Get("sheet")

	boom := errors.New("boom")
	err := Update(s, "sheet", func(m *grid.Metadata) error {
		m.Columns.SetLen(100)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	after, _ := s.Get("sheet")
	assert.Equal(t, before.Snapshot(), after.Snapshot())
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	s := NewMemory()
	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("grid-%d", i%4)
			for j := range 100 {
				m := s.Load(id)
				m.Rows.SetLen(j)
				s.Put(id, m)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, s.Len())
}
