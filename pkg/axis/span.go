package axis

import "iter"

// Span is an inclusive range of indices [First, Last] along one axis.
// A Span with Last < First is empty.
type Span struct {
	First, Last int
}

// EmptySpan is the canonical empty range.
var EmptySpan = Span{First: 0, Last: -1}

// Empty returns true if the span holds no indices.
func (s Span) Empty() bool {
	return s.Last < s.First
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	if s.Empty() {
		return 0
	}
	return s.Last - s.First + 1
}

// Contains returns true if i lies within the span.
func (s Span) Contains(i int) bool {
	return i >= s.First && i <= s.Last
}

// Indices yields every index in the span in ascending order.
func (s Span) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := s.First; i <= s.Last; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Edges yields the boundary indices of the span: the start edge of every
// index in the span plus the trailing edge of the last one, i.e. [First, Last+1].
// An empty span has no edges.
func (s Span) Edges() iter.Seq[int] {
	return func(yield func(int) bool) {
		if s.Empty() {
			return
		}
		for i := s.First; i <= s.Last+1; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
