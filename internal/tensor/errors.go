package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNonContiguousLayout = errors.New("layout is not standard row-major contiguous")
	ErrShapeMismatch       = errors.New("data length does not match shape")
	ErrInvalidShape        = errors.New("invalid shape")
	ErrDTypeMismatch       = errors.New("dtype mismatch")
	ErrUnknownDType        = errors.New("unknown dtype")
	ErrBorrowed            = errors.New("tensor is already borrowed")
	ErrEmptyTensor         = errors.New("tensor has no elements")
	ErrReleased            = errors.New("view has been released")
	ErrNilPointer          = errors.New("nil source pointer")
)

// LayoutError describes an array whose memory layout was rejected.
// It unwraps to ErrNonContiguousLayout.
type LayoutError struct {
	Shape    Shape
	Strides  []int // Strides as supplied, in elements
	Expected []int // Row-major strides for Shape
	Details  string
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	msg := fmt.Sprintf("%v: shape %v strides %v (want %v)", ErrNonContiguousLayout, e.Shape, e.Strides, e.Expected)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

// Unwrap lets errors.Is match ErrNonContiguousLayout.
func (e *LayoutError) Unwrap() error {
	return ErrNonContiguousLayout
}
