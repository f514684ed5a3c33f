package tensor

import (
	"fmt"

	gorgonia "gorgonia.org/tensor"
)

// denseDtype maps a tag to the equivalent gorgonia dtype.
func denseDtype(dt DType) gorgonia.Dtype {
	switch dt {
	case Int8:
		return gorgonia.Int8
	case Uint8:
		return gorgonia.Uint8
	case Int16:
		return gorgonia.Int16
	case Uint16:
		return gorgonia.Uint16
	case Int32:
		return gorgonia.Int32
	case Uint32:
		return gorgonia.Uint32
	case Int64:
		return gorgonia.Int64
	case Uint64:
		return gorgonia.Uint64
	case Float32:
		return gorgonia.Float32
	case Float64:
		return gorgonia.Float64
	default:
		panic(fmt.Sprintf("unknown data type: %d", uint8(dt)))
	}
}

// ToDense exposes t as a gorgonia *tensor.Dense backed by the same buffer.
// Nothing is copied: writes through either side are visible to the other, and
// ownership of the buffer passes to the Dense. The caller must not use t
// afterwards.
//
// A tensor with live views returns ErrBorrowed. Zero-element tensors return
// ErrEmptyTensor; gorgonia cannot address an empty backing array.
func (t *Tensor[T]) ToDense() (*gorgonia.Dense, error) {
	if t.Borrowed() {
		return nil, fmt.Errorf("%w: %s cannot be handed over while views are live", ErrBorrowed, t)
	}
	if len(t.data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTensor, t)
	}
	return gorgonia.New(
		gorgonia.WithShape(t.shape...),
		gorgonia.WithBacking(t.data),
	), nil
}

// FromDense adopts the backing array of d without copying it.
//
// d must hold elements of type T and must be a plain dense row-major array:
// views, transposes (even lazy ones), column-major arrays and masked arrays
// are rejected with a *LayoutError matching ErrNonContiguousLayout.
// A rank-0 Dense stores its value out of line, so its single element is
// copied.
func FromDense[T Element](d *gorgonia.Dense) (*Tensor[T], error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil dense array", ErrInvalidShape)
	}
	want := DTypeOf[T]()
	if d.Dtype() != denseDtype(want) {
		return nil, fmt.Errorf("%w: dense array is %v, want %s", ErrDTypeMismatch, d.Dtype(), want)
	}

	shape := Shape(d.Shape()).Clone()
	strides := append([]int(nil), d.Strides()...)
	var reason string
	switch {
	case d.IsView():
		reason = "array is a view of another array"
	case d.IsMaterializable():
		reason = "array has a pending transpose"
	case d.DataOrder().IsColMajor():
		reason = "array is column-major"
	case d.IsMasked():
		reason = "array is masked"
	case d.RequiresIterator():
		reason = "array requires an iterator"
	case len(shape) > 0 && !IsStandardLayout(shape, strides):
		reason = "array strides are not row-major"
	}
	if reason != "" {
		return nil, &LayoutError{Shape: shape, Strides: strides, Expected: shape.ComputeStrides(), Details: reason}
	}

	if len(shape) == 0 {
		v, ok := d.Data().(T)
		if !ok {
			return nil, fmt.Errorf("%w: scalar is %T", ErrDTypeMismatch, d.Data())
		}
		return New(shape, []T{v})
	}
	if shape.NumElements() == 0 {
		return New(shape, []T{})
	}
	data, ok := d.Data().([]T)
	if !ok {
		return nil, fmt.Errorf("%w: backing array is %T", ErrDTypeMismatch, d.Data())
	}
	return New(shape, data)
}
