package axis

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is reported when an index lies outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidSize is reported for NaN, infinite or negative sizes.
	ErrInvalidSize = errors.New("size must be finite and non-negative")
	// ErrNegativeLength is reported when an axis is resized below zero.
	ErrNegativeLength = errors.New("negative length")
)

// ContractError describes a call that violated a Layout precondition.
// Mutating methods panic with a *ContractError; the Try variants return it.
type ContractError struct {
	Op    string
	Index int
	Value float64
	Len   int
	Err   error
}

func (e *ContractError) Error() string {
	switch {
	case errors.Is(e.Err, ErrIndexOutOfRange):
		return fmt.Sprintf("axis: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
	case errors.Is(e.Err, ErrNegativeLength):
		return fmt.Sprintf("axis: %s: negative length %d", e.Op, e.Index)
	default:
		return fmt.Sprintf("axis: %s: %v (got %g)", e.Op, e.Err, e.Value)
	}
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// ValidSize reports whether v can be used as a row height or column width.
func ValidSize(v float64) bool {
	return v >= 0 && !nonFinite(v)
}

func checkSize(op string, v float64) error {
	if !ValidSize(v) {
		return &ContractError{Op: op, Index: -1, Value: v, Err: ErrInvalidSize}
	}
	return nil
}
