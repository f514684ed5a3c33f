// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides owned tensors and borrowed views for exchanging
// n-dimensional arrays with another runtime without serialization.
//
// # Overview
//
// The package provides:
//   - Generic owned tensors (Tensor[T]) with a dense row-major buffer
//   - A closed dtype registry whose ordinals form the boundary ABI
//   - Zero-copy read-only and exclusive views (View, MutableView)
//   - Copy-in from a foreign pointer (CopyFromPointer)
//   - Zero-copy conversion to and from gorgonia dense tensors and gonum matrices
//
// Per-type handles for boundaries that cannot name generic types live in the
// bridge package.
//
// # Basic Usage
//
//	import "github.com/born-ml/tensorbridge/tensor"
//
//	func main() {
//	    t, err := tensor.New(tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    v, err := t.View()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer v.Release()
//	    foreignRead(v.Pointer(), v.Shape(), v.DType())
//	}
//
// # Supported Data Types
//
// Tags and their published ordinals:
//   - Int8 (0), Uint8 (1), Float32 (2), Float64 (3)
//   - Int16 (4), Uint16 (5), Int32 (6), Uint32 (7), Int64 (8), Uint64 (9)
//
// Ordinals are never reordered; new types are appended.
//
// # Layout
//
// Every Tensor is dense, unit-stride and row-major. Arrays with any other
// layout (transposed, sliced, column-major) are rejected at construction with
// ErrNonContiguousLayout instead of being silently copied.
//
// # Borrowing
//
// A tensor may have any number of live Views, or exactly one live
// MutableView. The rule is enforced at runtime: View and ViewMut return
// ErrBorrowed when it would be broken. Direct owner access through AsSlice and
// AsSliceMut is not guarded; the owner must not write while views are live.
//
// # Unsafe Contracts
//
// The following are undefined behavior, not errors, because this package
// cannot observe them:
//   - passing CopyFromPointer a pointer that does not address
//     shape.NumElements() readable elements of T
//   - reinterpreting a View's pointer as a type other than its DType
//   - using a View's pointer after Release or after the tensor is gone
package tensor
