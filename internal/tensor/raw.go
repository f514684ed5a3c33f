package tensor

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/born-ml/tensorbridge/internal/parallel"
)

// copyConfig splits copy-in of large foreign buffers across CPUs.
var copyConfig = parallel.DefaultConfig()

// CopyFromPointer allocates a new Tensor of shape and copies
// shape.NumElements() elements of T starting at ptr into it.
//
// This is the boundary copy-in path for buffers owned by another runtime.
// The foreign buffer is never adopted by reference.
//
// SAFETY: ptr must address at least shape.NumElements() contiguous, properly
// aligned elements of type T that stay readable for the duration of the call.
// None of this can be verified here; violating it is undefined behavior, not
// an error. The only checks performed are the locally decidable ones: a
// negative dimension or an element count whose byte size overflows returns
// ErrInvalidShape, and a nil ptr with a non-zero element count returns
// ErrNilPointer. A zero-element shape never dereferences ptr.
func CopyFromPointer[T Element](shape Shape, ptr unsafe.Pointer) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.NumElements()
	var zero T
	if size := int(unsafe.Sizeof(zero)); n > math.MaxInt/size {
		return nil, fmt.Errorf("%w: shape %v exceeds the addressable size for %s", ErrInvalidShape, shape, DTypeOf[T]())
	}
	if n > 0 && ptr == nil {
		return nil, fmt.Errorf("%w: shape %v requires %d elements", ErrNilPointer, shape, n)
	}
	data := make([]T, n)
	if n > 0 {
		//nolint:gosec // unsafe.Slice over caller-guaranteed foreign memory, bounded by shape
		parallel.Copy(data, unsafe.Slice((*T)(ptr), n), copyConfig)
	}
	return &Tensor[T]{
		data:  data,
		shape: shape.Clone(),
	}, nil
}

// dataPointer returns the address of the first element, or nil for an empty
// buffer.
func dataPointer[T Element](data []T) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

// sliceAt reinterprets n elements of T at ptr.
func sliceAt[T Element](ptr unsafe.Pointer, n int) []T {
	if ptr == nil || n == 0 {
		return []T{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounded by the owner's shape
	return unsafe.Slice((*T)(ptr), n)
}
