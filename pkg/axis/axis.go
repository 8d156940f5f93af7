package axis

import (
	"fmt"
	"math"
	"slices"
)

// Mode selects how a Layout stores its sizes.
type Mode uint8

const (
	// Uniform gives every index the same size. Positions are computed
	// arithmetically and no per-index storage is kept.
	Uniform Mode = iota
	// Variable stores an independent size per index plus a cumulative cache.
	Variable
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case Variable:
		return "variable"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Uniform, Variable:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("axis: unknown mode %d", uint8(m))
	}
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "uniform":
		*m = Uniform
	case "variable":
		*m = Variable
	default:
		return fmt.Errorf("axis: unknown mode %q", text)
	}
	return nil
}

// Layout is the sizing model for one dimension of a grid.
//
// Exactly one of the two field groups is live, selected by mode. For Variable
// layouts ends[i] holds the sum of sizes[0..i] inclusive, so the start of
// index i is ends[i-1] and the trailing edge of the axis is ends[len-1].
type Layout struct {
	mode        Mode
	defaultSize float64

	// Uniform
	size  float64
	count int

	// Variable
	sizes []float64
	ends  []float64
}

// New creates an empty Uniform layout whose indices are defaultSize wide.
// It panics if defaultSize is negative or not finite.
func New(defaultSize float64) *Layout {
	mustSize("New", defaultSize)
	return &Layout{
		mode:        Uniform,
		defaultSize: defaultSize,
		size:        defaultSize,
	}
}

// NewVariable creates an empty Variable layout. Indices added by SetLen
// start out defaultSize wide.
func NewVariable(defaultSize float64) *Layout {
	mustSize("NewVariable", defaultSize)
	return &Layout{
		mode:        Variable,
		defaultSize: defaultSize,
	}
}

// Mode returns the current representation.
func (l *Layout) Mode() Mode {
	return l.mode
}

// Resizable returns true if indices can be sized independently.
func (l *Layout) Resizable() bool {
	return l.mode == Variable
}

// DefaultSize returns the size given to indices appended by SetLen.
func (l *Layout) DefaultSize() float64 {
	return l.defaultSize
}

// SetDefaultSize changes the size given to indices appended from now on.
// Existing indices are not touched. It panics on an invalid size.
func (l *Layout) SetDefaultSize(v float64) {
	mustSize("SetDefaultSize", v)
	l.defaultSize = v
}

// Len returns the number of indices on the axis.
func (l *Layout) Len() int {
	if l.mode == Uniform {
		return l.count
	}
	return len(l.sizes)
}

// SetLen resizes the axis to n indices. Surviving indices keep their sizes;
// new indices get the default size. It panics if n is negative.
func (l *Layout) SetLen(n int) {
	if n < 0 {
		panic(&ContractError{Op: "SetLen", Index: n, Len: l.Len(), Err: ErrNegativeLength})
	}

	switch l.mode {
	case Uniform:
		l.count = n
	case Variable:
		old := len(l.sizes)
		if n <= old {
			l.sizes = l.sizes[:n]
			l.ends = l.ends[:n]
			return
		}
		l.sizes = slices.Grow(l.sizes, n-old)
		l.ends = slices.Grow(l.ends, n-old)
		for range n - old {
			l.sizes = append(l.sizes, l.defaultSize)
			l.ends = append(l.ends, 0)
		}
		l.rebuildFrom(old)
	}
}

// Width returns the size of index i. The second result is false when i is
// outside [0, Len()).
func (l *Layout) Width(i int) (float64, bool) {
	if i < 0 || i >= l.Len() {
		return 0, false
	}
	if l.mode == Uniform {
		return l.size, true
	}
	return l.sizes[i], true
}

// SetWidth sets the size of index i. In Uniform mode the shared size is
// changed, which resizes every index. It panics with a *ContractError when i
// is outside [0, Len()) or v is negative or not finite.
func (l *Layout) SetWidth(i int, v float64) {
	if err := l.TrySetWidth(i, v); err != nil {
		panic(err)
	}
}

// TrySetWidth is SetWidth returning the contract violation instead of
// panicking. The layout is unchanged when an error is returned.
func (l *Layout) TrySetWidth(i int, v float64) error {
	if i < 0 || i >= l.Len() {
		return &ContractError{Op: "SetWidth", Index: i, Value: v, Len: l.Len(), Err: ErrIndexOutOfRange}
	}
	if err := checkSize("SetWidth", v); err != nil {
		return err
	}

	switch l.mode {
	case Uniform:
		l.size = v
	case Variable:
		if l.sizes[i] == v {
			return nil
		}
		l.sizes[i] = v
		l.rebuildFrom(i)
	}
	return nil
}

// SetWidths resizes the axis to len(sizes) and assigns every index in one
// pass. The result matches SetLen followed by SetWidth for each index in
// order, so a Uniform layout ends up with the last size as its shared size.
// Every size is checked before anything changes; on error the layout is
// untouched.
func (l *Layout) SetWidths(sizes []float64) error {
	for i, v := range sizes {
		if !ValidSize(v) {
			return &ContractError{Op: "SetWidths", Index: i, Value: v, Len: len(sizes), Err: ErrInvalidSize}
		}
	}

	switch l.mode {
	case Uniform:
		l.count = len(sizes)
		if len(sizes) > 0 {
			l.size = sizes[len(sizes)-1]
		}
	case Variable:
		l.sizes = append(l.sizes[:0], sizes...)
		l.ends = slices.Grow(l.ends[:0], len(sizes))[:len(sizes)]
		l.rebuildFrom(0)
	}
	return nil
}

// Accum returns the coordinate at which index i begins: the sum of the sizes
// of indices [0, i). Accum(0) is 0 and Accum(Len()) is the trailing edge of
// the axis. The second result is false when i is outside [0, Len()].
func (l *Layout) Accum(i int) (float64, bool) {
	if i < 0 || i > l.Len() {
		return 0, false
	}
	if i == 0 {
		return 0, true
	}
	if l.mode == Uniform {
		return l.size * float64(i), true
	}
	return l.ends[i-1], true
}

// TotalExtent returns the sum of all sizes along the axis.
func (l *Layout) TotalExtent() float64 {
	if l.mode == Uniform {
		return l.size * float64(l.count)
	}
	if len(l.ends) == 0 {
		return 0
	}
	return l.ends[len(l.ends)-1]
}

// Range returns the indices that intersect the coordinate interval [lo, hi].
//
// First is the index containing lo and Last is the index containing hi. A
// coordinate lying exactly on a boundary belongs to the index that begins
// there, so an index starting exactly at hi is included: two viewports that
// tile the axis share exactly one index at their common edge. Both ends are
// clamped to the axis. The span is empty when the axis has no extent or the
// interval misses [0, TotalExtent()).
func (l *Layout) Range(lo, hi float64) Span {
	n := l.Len()
	total := l.TotalExtent()
	if n == 0 || total <= 0 || math.IsNaN(lo) || math.IsNaN(hi) {
		return EmptySpan
	}
	if hi < lo || hi < 0 || lo >= total {
		return EmptySpan
	}
	return Span{First: l.containing(lo, n, total), Last: l.containing(hi, n, total)}
}

// Index returns the index whose half-open extent [Accum(i), Accum(i+1))
// contains coord. The second result is false when coord lies outside the axis.
func (l *Layout) Index(coord float64) (int, bool) {
	n := l.Len()
	total := l.TotalExtent()
	if n == 0 || math.IsNaN(coord) || coord < 0 || coord >= total {
		return 0, false
	}
	return l.containing(coord, n, total), true
}

// containing resolves coord to an index clamped to [0, n-1]. n and total
// must both be positive.
func (l *Layout) containing(coord float64, n int, total float64) int {
	if coord >= total {
		return n - 1
	}
	if l.mode == Variable {
		return clampIndex(searchSorted(l.ends, coord), n)
	}
	if coord <= 0 {
		return 0
	}
	i := int(math.Floor(coord / l.size))
	// keep the quotient consistent with Accum when it rounds across a boundary
	if i > 0 && l.size*float64(i) > coord {
		i--
	} else if l.size*float64(i+1) <= coord {
		i++
	}
	return clampIndex(i, n)
}

// SetResizable switches between Uniform (false) and Variable (true) sizing.
// Switching to Variable seeds every index with the current uniform size;
// switching to Uniform keeps the first index's size as the shared size, or
// the default size for an empty axis. Calling it with the current mode is a
// no-op. It reports whether the mode changed.
func (l *Layout) SetResizable(resizable bool) bool {
	switch {
	case resizable && l.mode == Uniform:
		n := l.count
		l.sizes = make([]float64, n)
		l.ends = make([]float64, n)
		for i := range l.sizes {
			l.sizes[i] = l.size
		}
		l.rebuildFrom(0)
		l.mode = Variable
		l.size, l.count = 0, 0
		return true
	case !resizable && l.mode == Variable:
		size := l.defaultSize
		if len(l.sizes) > 0 {
			size = l.sizes[0]
		}
		l.size, l.count = size, len(l.sizes)
		l.sizes, l.ends = nil, nil
		l.mode = Uniform
		return true
	}
	return false
}

// Clone returns an independent copy of the layout.
func (l *Layout) Clone() *Layout {
	c := *l
	c.sizes = slices.Clone(l.sizes)
	c.ends = slices.Clone(l.ends)
	return &c
}

// rebuildFrom recomputes ends[i:] from sizes. Earlier entries are already valid.
func (l *Layout) rebuildFrom(i int) {
	var acc float64
	if i > 0 {
		acc = l.ends[i-1]
	}
	for j := i; j < len(l.sizes); j++ {
		acc += l.sizes[j]
		l.ends[j] = acc
	}
}

func mustSize(op string, v float64) {
	if err := checkSize(op, v); err != nil {
		panic(err)
	}
}
