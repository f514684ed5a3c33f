package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToMatrix exposes a rank-2 float64 tensor as a gonum matrix backed by the
// same buffer. Ownership passes to the matrix, so a tensor with live views is
// refused with ErrBorrowed.
func ToMatrix(t *Tensor[float64]) (*mat.Dense, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("%w: matrix needs rank 2, got shape %v", ErrInvalidShape, t.shape)
	}
	if t.Borrowed() {
		return nil, fmt.Errorf("%w: %s cannot be handed over while views are live", ErrBorrowed, t)
	}
	if len(t.data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTensor, t)
	}
	return mat.NewDense(t.shape[0], t.shape[1], t.data), nil
}

// FromMatrix adopts the backing array of m without copying it.
// Sub-matrices whose row stride exceeds their width are rejected with a
// *LayoutError matching ErrNonContiguousLayout.
func FromMatrix(m *mat.Dense) (*Tensor[float64], error) {
	if m == nil || m.IsEmpty() {
		return nil, fmt.Errorf("%w: empty matrix", ErrEmptyTensor)
	}
	raw := m.RawMatrix()
	shape := Shape{raw.Rows, raw.Cols}
	strides := []int{raw.Stride, 1}
	if !IsStandardLayout(shape, strides) {
		return nil, &LayoutError{
			Shape:    shape,
			Strides:  strides,
			Expected: shape.ComputeStrides(),
			Details:  "matrix is a strided sub-matrix",
		}
	}
	return New(shape, raw.Data[:raw.Rows*raw.Cols])
}
