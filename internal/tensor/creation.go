package tensor

// Zeros creates a tensor filled with zeros.
// Panics if shape fails Validate.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.Shape{3, 4})
func Zeros[T Element](shape Shape) *Tensor[T] {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	t, err := New(shape, make([]T, shape.NumElements()))
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return t
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[uint8](tensor.Shape{3, 3}, 255)
func Full[T Element](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// CopyFromSlice creates a tensor from a copy of src.
// Unlike New, src remains owned by the caller.
func CopyFromSlice[T Element](shape Shape, src []T) (*Tensor[T], error) {
	data := make([]T, len(src))
	copy(data, src)
	return New(shape, data)
}
