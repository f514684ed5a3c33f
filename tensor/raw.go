// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"unsafe"

	"github.com/born-ml/tensorbridge/internal/tensor"
)

// View is a non-owning, read-only descriptor of a tensor's buffer.
//
// View provides:
//   - Shape() and DType() describing the buffer
//   - Pointer() to the first element, for the other side of the boundary
//   - Release() to end the borrow
//
// Views never copy. A View must not outlive its tensor, and the tensor must
// not be written to while the View is live.
type View = tensor.View

// MutableView is the exclusive, writable counterpart of View. While one is
// live, no other View or MutableView of the same tensor can be obtained.
type MutableView = tensor.MutableView

// ViewAs reinterprets a view's buffer as []T after checking its dtype tag.
//
// Example:
//
//	v, _ := t.View()
//	defer v.Release()
//	data, err := tensor.ViewAs[float32](v)
func ViewAs[T Element](v *View) ([]T, error) {
	return tensor.ViewAs[T](v)
}

// MutableViewAs reinterprets an exclusive view's buffer as a writable []T
// after checking its dtype tag.
func MutableViewAs[T Element](v *MutableView) ([]T, error) {
	return tensor.MutableViewAs[T](v)
}

// CopyFromPointer allocates a tensor of shape and copies
// shape.NumElements() elements of T from ptr.
//
// SAFETY: ptr must address at least shape.NumElements() contiguous elements
// of T, readable for the duration of the call. This is not checked; violating
// it is undefined behavior.
func CopyFromPointer[T Element](shape Shape, ptr unsafe.Pointer) (*Tensor[T], error) {
	return tensor.CopyFromPointer[T](shape, ptr)
}
