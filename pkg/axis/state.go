package axis

import (
	"fmt"
	"slices"
)

// State is the serializable form of a Layout. The cumulative cache is not
// part of it; FromState rebuilds it.
type State struct {
	Mode        Mode      `json:"mode" yaml:"mode"`
	DefaultSize float64   `json:"default_size" yaml:"default_size"`
	Size        float64   `json:"size,omitempty" yaml:"size,omitempty"`
	Count       int       `json:"count,omitempty" yaml:"count,omitempty"`
	Sizes       []float64 `json:"sizes,omitempty" yaml:"sizes,omitempty"`
}

// Snapshot captures the layout as a State that shares no memory with it.
func (l *Layout) Snapshot() State {
	s := State{Mode: l.mode, DefaultSize: l.defaultSize}
	switch l.mode {
	case Uniform:
		s.Size, s.Count = l.size, l.count
	case Variable:
		s.Sizes = slices.Clone(l.sizes)
	}
	return s
}

// FromState rebuilds a Layout from a snapshot, validating every size.
func FromState(s State) (*Layout, error) {
	if err := checkSize("FromState", s.DefaultSize); err != nil {
		return nil, err
	}

	switch s.Mode {
	case Uniform:
		if err := checkSize("FromState", s.Size); err != nil {
			return nil, err
		}
		if s.Count < 0 {
			return nil, &ContractError{Op: "FromState", Index: s.Count, Err: ErrNegativeLength}
		}
		return &Layout{mode: Uniform, defaultSize: s.DefaultSize, size: s.Size, count: s.Count}, nil
	case Variable:
		l := &Layout{
			mode:        Variable,
			defaultSize: s.DefaultSize,
			sizes:       slices.Clone(s.Sizes),
			ends:        make([]float64, len(s.Sizes)),
		}
		for i, v := range l.sizes {
			if !ValidSize(v) {
				return nil, &ContractError{Op: "FromState", Index: i, Value: v, Err: ErrInvalidSize}
			}
		}
		l.rebuildFrom(0)
		return l, nil
	default:
		return nil, fmt.Errorf("axis: unknown mode %d", s.Mode)
	}
}
