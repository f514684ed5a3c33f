// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bridge is the typed face of tensorbridge toward a foreign runtime.
//
// Generic types cannot be named across a language boundary, so every
// supported element type gets a concrete façade (TensorI8 through TensorF64)
// with an identical method set. A façade owns its tensor: wrapping and
// unwrapping never copy. Buffers from the other side enter through the
// CopyFromPointer functions, which always copy.
//
// Façades that cross the boundary as opaque values travel through the handle
// table: Export moves a façade in and returns a Handle, Import moves it out.
//
//	f, err := bridge.CopyFromPointer(tensor.Int32, tensor.Shape{2, 3}, ptr)
//	if err != nil {
//	    return err
//	}
//	h, err := bridge.Export(f)
package bridge

import (
	"unsafe"

	"github.com/born-ml/tensorbridge/tensor"
)

// Facade is implemented by every typed façade. It lets a caller holding a
// dtype tag work with a tensor without knowing its element type.
type Facade interface {
	// DType returns the element type tag.
	DType() tensor.DType

	// Shape returns the dimensions.
	Shape() tensor.Shape

	// View borrows the buffer for reading.
	View() (*tensor.View, error)

	// ViewMut borrows the buffer exclusively for writing.
	ViewMut() (*tensor.MutableView, error)

	// Borrowed reports whether any view is live.
	Borrowed() bool

	// valid reports whether the façade wraps a tensor. It also keeps the set
	// of façades closed to this package.
	valid() bool
}

// copyIn copies a foreign buffer into a tensor of T and wraps it.
func copyIn[T tensor.Element, F Facade](shape tensor.Shape, ptr unsafe.Pointer, wrap func(*tensor.Tensor[T]) F) (Facade, error) {
	t, err := tensor.CopyFromPointer[T](shape, ptr)
	if err != nil {
		return nil, err
	}
	return wrap(t), nil
}
