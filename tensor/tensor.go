// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for owned tensors and borrowed views
// in tensorbridge.
//
// The package defines the core types of the exchange layer:
//   - Tensor[T]: owned, dense, row-major n-dimensional array
//   - View, MutableView: non-owning descriptors of a tensor's buffer
//   - DType: the boundary's element type tag
//   - Shape: tensor dimensions
//
// Example:
//
//	t, err := tensor.New(tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
//	if err != nil {
//	    return err
//	}
//	v, err := t.View()
//	if err != nil {
//	    return err
//	}
//	defer v.Release()
package tensor

import (
	"gonum.org/v1/gonum/mat"
	gorgonia "gorgonia.org/tensor"

	"github.com/born-ml/tensorbridge/internal/tensor"
)

// Type aliases for public API

// Element is the constraint for tensor element types:
// int8, uint8, int16, uint16, int32, uint32, int64, uint64, float32, float64.
type Element = tensor.Element

// DType is the element type tag transmitted across the boundary as its ordinal.
type DType = tensor.DType

// Data type constants. The ordinals are a published ABI and never change.
const (
	Int8    DType = tensor.Int8
	Uint8   DType = tensor.Uint8
	Float32 DType = tensor.Float32
	Float64 DType = tensor.Float64
	Int16   DType = tensor.Int16
	Uint16  DType = tensor.Uint16
	Int32   DType = tensor.Int32
	Uint32  DType = tensor.Uint32
	Int64   DType = tensor.Int64
	Uint64  DType = tensor.Uint64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
// An empty Shape is a rank-0 tensor with one element.
type Shape = tensor.Shape

// Tensor is an owned, dense, row-major tensor of T.
//
// Tensor guarantees:
//   - len(AsSlice()) == Shape().NumElements()
//   - unit-stride row-major layout, always
//   - single ownership; Clone is the only way to duplicate
type Tensor[T Element] = tensor.Tensor[T]

// LayoutError describes an array rejected for not being dense row-major.
type LayoutError = tensor.LayoutError

// Errors returned by this package.
var (
	ErrNonContiguousLayout = tensor.ErrNonContiguousLayout
	ErrShapeMismatch       = tensor.ErrShapeMismatch
	ErrInvalidShape        = tensor.ErrInvalidShape
	ErrDTypeMismatch       = tensor.ErrDTypeMismatch
	ErrUnknownDType        = tensor.ErrUnknownDType
	ErrBorrowed            = tensor.ErrBorrowed
	ErrEmptyTensor         = tensor.ErrEmptyTensor
	ErrReleased            = tensor.ErrReleased
	ErrNilPointer          = tensor.ErrNilPointer
)

// Registry functions

// DTypeOf returns the tag for T.
func DTypeOf[T Element]() DType {
	return tensor.DTypeOf[T]()
}

// CheckDType returns ErrDTypeMismatch unless dt is the tag for T.
func CheckDType[T Element](dt DType) error {
	return tensor.CheckDType[T](dt)
}

// ParseDType maps a type name such as "uint16" to its tag.
func ParseDType(name string) (DType, error) {
	return tensor.ParseDType(name)
}

// DTypes returns every supported tag in ordinal order.
func DTypes() []DType {
	return tensor.DTypes()
}

// Creation functions

// New creates a tensor that adopts data without copying it.
//
// Example:
//
//	x, err := tensor.New(tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
func New[T Element](shape Shape, data []T) (*Tensor[T], error) {
	return tensor.New(shape, data)
}

// FromStrided adopts an array described by shape and element strides.
// Anything but the standard row-major layout fails with ErrNonContiguousLayout.
//
// Example:
//
//	// A transposed 2x3 buffer is rejected:
//	_, err := tensor.FromStrided(tensor.Shape{3, 2}, []int{1, 3}, data)
//	errors.Is(err, tensor.ErrNonContiguousLayout) // true
func FromStrided[T Element](shape Shape, strides []int, data []T) (*Tensor[T], error) {
	return tensor.FromStrided(shape, strides, data)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Element](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with value.
func Full[T Element](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// CopyFromSlice creates a tensor holding a copy of src.
func CopyFromSlice[T Element](shape Shape, src []T) (*Tensor[T], error) {
	return tensor.CopyFromSlice(shape, src)
}

// Interop functions

// FromDense adopts the backing array of a gorgonia dense tensor.
// Views, transposes, column-major and masked arrays are rejected.
func FromDense[T Element](d *gorgonia.Dense) (*Tensor[T], error) {
	return tensor.FromDense[T](d)
}

// ToMatrix exposes a rank-2 float64 tensor as a gonum matrix without copying.
func ToMatrix(t *Tensor[float64]) (*mat.Dense, error) {
	return tensor.ToMatrix(t)
}

// FromMatrix adopts the backing array of a gonum matrix.
// Strided sub-matrices are rejected.
func FromMatrix(m *mat.Dense) (*Tensor[float64], error) {
	return tensor.FromMatrix(m)
}

// Utility functions

// IsStandardLayout reports whether element strides describe the dense
// row-major layout of shape.
func IsStandardLayout(shape Shape, strides []int) bool {
	return tensor.IsStandardLayout(shape, strides)
}
