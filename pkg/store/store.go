// Package store keeps grid metadata between layout passes, keyed by grid
// identity.
//
// A host retrieves the metadata for a grid, runs one pass against it and
// writes it back. Stored values are snapshots, so the metadata a caller holds
// during a pass is never shared with another caller.
package store

import (
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-grid/pkg/grid"
)

// Store is a keyed collection of grid metadata.
type Store interface {
	// Get returns a private copy of the metadata stored under id.
	Get(id string) (*grid.Metadata, bool)
	// Load is Get, falling back to fresh default metadata.
	Load(id string) *grid.Metadata
	// Put stores a copy of meta under id, replacing any previous value.
	Put(id string, meta *grid.Metadata)
	// Delete removes id.
	Delete(id string)
}

// Memory is an in-memory Store safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	data     map[string]grid.State
	defaults func() *grid.Metadata
	logger   *log.Logger
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithDefaults sets the factory Load uses for unknown ids.
// Default is grid.DefaultMetadata.
func WithDefaults(fn func() *grid.Metadata) MemoryOption {
	return func(m *Memory) {
		m.defaults = fn
	}
}

// WithLogger sets the store logger. Default discards.
func WithLogger(l *log.Logger) MemoryOption {
	return func(m *Memory) {
		m.logger = l
	}
}

// NewMemory creates an empty in-memory store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		data:     make(map[string]grid.State),
		defaults: grid.DefaultMetadata,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get restores the metadata stored under id. Each call returns a fresh copy.
// A stored state that no longer restores is logged, deleted and reported as
// missing.
func (m *Memory) Get(id string) (*grid.Metadata, bool) {
	m.mu.RLock()
	state, ok := m.data[id]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}

	meta, err := grid.Restore(state)
	if err != nil {
		m.logger.Error("discarding unreadable grid state", "id", id, "err", err)
		m.Delete(id)
		return nil, false
	}
	return meta, true
}

// Load returns the metadata stored under id, or new default metadata when
// there is none.
func (m *Memory) Load(id string) *grid.Metadata {
	if meta, ok := m.Get(id); ok {
		return meta
	}
	m.logger.Debug("new grid metadata", "id", id)
	return m.defaults()
}

// Put stores a snapshot of meta under id. Later changes to meta are not
// seen until it is put again.
func (m *Memory) Put(id string, meta *grid.Metadata) {
	state := meta.Snapshot()
	m.mu.Lock()
	m.data[id] = state
	m.mu.Unlock()
}

// Delete removes id. Deleting a missing id is a no-op.
func (m *Memory) Delete(id string) {
	m.mu.Lock()
	delete(m.data, id)
	m.mu.Unlock()
}

// Len returns the number of stored grids.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// IDs returns the stored ids in sorted order.
func (m *Memory) IDs() []string {
	m.mu.RLock()
	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// ShowPersisted runs w.Show against the metadata stored under w.ID() and
// writes the result back, so sizes and the cursor survive between passes.
func ShowPersisted(s Store, w *grid.Widget, fn func(grid.Cell)) grid.Plan {
	meta := s.Load(w.ID())
	plan := w.Show(meta, fn)
	s.Put(w.ID(), meta)
	return plan
}

// Update applies fn to the metadata stored under id and writes it back.
// It is the path for mutations made outside a layout pass, such as a resize
// drag or a cursor move.
func Update(s Store, id string, fn func(*grid.Metadata) error) error {
	meta := s.Load(id)
	if err := fn(meta); err != nil {
		return err
	}
	s.Put(id, meta)
	return nil
}
