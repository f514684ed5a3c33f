package tensor

import "fmt"

// Tensor is an owned, dense, row-major n-dimensional array of T.
//
// Invariants, established at construction and never broken by the API:
//   - len(data) == shape.NumElements()
//   - the layout is the unit-stride row-major layout of shape
//
// A Tensor has a single owner. It is never shared implicitly: Clone is the
// only way to duplicate it. Views borrow it without copying; see View and
// ViewMut.
//
// Example:
//
//	t, err := tensor.New(tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(t.Shape(), t.AsSlice())
type Tensor[T Element] struct {
	data   []T
	shape  Shape
	borrow borrowState
}

// New creates a Tensor that adopts data (no copy) with the given shape.
// The caller hands over ownership of data and must not use it afterwards.
func New[T Element](shape Shape, data []T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.NumElements()
	if len(data) != n {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d", ErrShapeMismatch, shape, n, len(data))
	}
	return &Tensor[T]{
		data:  data[:n:n],
		shape: shape.Clone(),
	}, nil
}

// FromStrided adopts an already-allocated array described by shape and
// strides (in elements). Only the standard row-major layout is accepted:
// transposed, sliced or otherwise strided arrays fail with a *LayoutError
// that matches ErrNonContiguousLayout, as does data running past the end of
// shape (a prefix of a larger buffer). Nothing is copied and nothing is
// retained on failure.
func FromStrided[T Element](shape Shape, strides []int, data []T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	var details string
	switch {
	case !IsStandardLayout(shape, strides):
	case len(data) > shape.NumElements():
		details = "trailing elements beyond shape"
	default:
		return New(shape, data)
	}
	return nil, &LayoutError{
		Shape:    shape.Clone(),
		Strides:  append([]int(nil), strides...),
		Expected: shape.ComputeStrides(),
		Details:  details,
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// DType returns the tensor's data type tag.
func (t *Tensor[T]) DType() DType {
	return DTypeOf[T]()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// AsSlice returns the whole element buffer in row-major order.
// The slice aliases the tensor's memory (zero-copy) and must be treated as
// read-only.
func (t *Tensor[T]) AsSlice() []T {
	t.checkLayout()
	return t.data
}

// AsSliceMut returns the whole element buffer for writing.
// Writes are immediately visible through AsSlice; there is no copy-on-write.
//
// WARNING: the caller must not write while a View of t is live.
func (t *Tensor[T]) AsSliceMut() []T {
	t.checkLayout()
	return t.data
}

// checkLayout re-validates the contiguity invariant before handing out the
// buffer.
func (t *Tensor[T]) checkLayout() {
	if n := t.shape.NumElements(); len(t.data) != n {
		panic(fmt.Sprintf("tensor buffer has %d elements, shape %v requires %d", len(t.data), t.shape, n))
	}
}

// Clone creates a deep copy of the tensor with its own buffer and no
// outstanding borrows.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{
		data:  data,
		shape: t.shape.Clone(),
	}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), t.shape)
}
