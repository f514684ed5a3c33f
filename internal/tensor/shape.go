package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor.
// An empty shape is a rank-0 tensor holding exactly one element.
type Shape []int

// NumElements returns the total number of elements in the tensor.
// The result is only meaningful for shapes that pass Validate.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is non-negative and that the product
// of the non-zero dimensions fits in an int.
// Zero-sized dimensions are allowed and yield an empty buffer.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
		if dim == 0 {
			continue
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: shape %v overflows the element count", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
// A nil or empty shape clones to a non-nil empty shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape, in elements.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

// IsStandardLayout reports whether strides (in elements) describe the dense
// row-major layout of shape. A dimension of size 1 is never stepped over, so
// its stride is ignored. An empty array is trivially standard.
func IsStandardLayout(shape Shape, strides []int) bool {
	if len(shape) != len(strides) {
		return false
	}
	if shape.NumElements() == 0 {
		return true
	}
	expected := shape.ComputeStrides()
	for i := range shape {
		if shape[i] == 1 {
			continue
		}
		if strides[i] != expected[i] {
			return false
		}
	}
	return true
}
