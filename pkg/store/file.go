package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-grid/pkg/grid"
)

// Export writes every stored grid to w as a YAML document keyed by id.
func (m *Memory) Export(w io.Writer) error {
	m.mu.RLock()
	data := maps.Clone(m.data)
	m.mu.RUnlock()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("store: export: %w", err)
	}
	return enc.Close()
}

// Import reads a document written by Export and stores every grid in it,
// replacing grids with the same id. Nothing is stored if any grid is invalid.
func (m *Memory) Import(r io.Reader) error {
	var data map[string]grid.State
	if err := yaml.NewDecoder(r).Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("store: import: %w", err)
	}
	for id, state := range data {
		if _, err := grid.Restore(state); err != nil {
			return fmt.Errorf("store: import %q: %w", id, err)
		}
	}

	m.mu.Lock()
	maps.Copy(m.data, data)
	m.mu.Unlock()
	m.logger.Debug("imported grids", "count", len(data))
	return nil
}

// LoadFile creates a store from a file written by SaveFile. A missing file
// yields an empty store.
func LoadFile(path string, opts ...MemoryOption) (*Memory, error) {
	m := NewMemory(opts...)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	defer f.Close()

	if err := m.Import(f); err != nil {
		return nil, err
	}
	return m, nil
}

// SaveFile writes the store to path, replacing it atomically.
func (m *Memory) SaveFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("store: save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := m.Export(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store: save: %w", err)
	}
	return nil
}
