// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package bridge

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"k8s.io/klog/v2"

	"github.com/born-ml/tensorbridge/tensor"
)

// ErrInvalidHandle is returned for a handle that was never issued or has
// already been imported or released.
var ErrInvalidHandle = errors.New("invalid handle")

// Handle is an opaque, non-zero token for a façade held by the handle table.
// Its value carries no meaning beyond identity and is never reused.
type Handle uintptr

// handles maps live handles to façades. Handles may be released from any
// goroutine of the foreign runtime.
var (
	handles    sync.Map // Handle -> Facade
	lastHandle atomic.Uintptr
	liveCount  atomic.Int64
)

// Export moves f into the handle table. The caller gives up f: it must not
// be used again until it comes back out through Import.
//
// A façade with a live view cannot be exported.
func Export(f Facade) (Handle, error) {
	if f == nil || !f.valid() {
		return 0, fmt.Errorf("export: %w: nil facade", ErrInvalidHandle)
	}
	if f.Borrowed() {
		return 0, fmt.Errorf("export %s%v: %w", f.DType(), f.Shape(), tensor.ErrBorrowed)
	}

	h := Handle(lastHandle.Add(1))
	handles.Store(h, f)
	liveCount.Add(1)
	klog.V(4).InfoS("Exported tensor", "handle", uintptr(h), "dtype", f.DType(), "shape", f.Shape())
	return h, nil
}

// Import moves the façade behind h out of the table. h is consumed.
func Import(h Handle) (Facade, error) {
	v, ok := handles.LoadAndDelete(h)
	if !ok {
		return nil, fmt.Errorf("import %d: %w", uintptr(h), ErrInvalidHandle)
	}
	liveCount.Add(-1)
	f := v.(Facade)
	klog.V(4).InfoS("Imported tensor", "handle", uintptr(h), "dtype", f.DType())
	return f, nil
}

// ImportAs moves the façade behind h out of the table as an F. On a type
// mismatch the handle is left in place.
//
// Example:
//
//	t, err := bridge.ImportAs[*bridge.TensorF32](h)
func ImportAs[F Facade](h Handle) (F, error) {
	var zero F
	v, ok := handles.Load(h)
	if !ok {
		return zero, fmt.Errorf("import %d: %w", uintptr(h), ErrInvalidHandle)
	}
	f, ok := v.(F)
	if !ok {
		want := fmt.Sprintf("%T", zero)
		return zero, fmt.Errorf("import %d: handle holds %s, requested %s: %w",
			uintptr(h), v.(Facade).DType(), want, tensor.ErrDTypeMismatch)
	}
	if !handles.CompareAndDelete(h, v) {
		// Lost a race with another Import or Release.
		return zero, fmt.Errorf("import %d: %w", uintptr(h), ErrInvalidHandle)
	}
	liveCount.Add(-1)
	klog.V(4).InfoS("Imported tensor", "handle", uintptr(h), "dtype", f.DType())
	return f, nil
}

// Lookup returns the façade behind h without consuming the handle. The table
// keeps ownership; the result must not be retained past Release or Import.
func Lookup(h Handle) (Facade, error) {
	v, ok := handles.Load(h)
	if !ok {
		return nil, fmt.Errorf("lookup %d: %w", uintptr(h), ErrInvalidHandle)
	}
	return v.(Facade), nil
}

// Release destroys the façade behind h.
func Release(h Handle) error {
	v, ok := handles.LoadAndDelete(h)
	if !ok {
		return fmt.Errorf("release %d: %w", uintptr(h), ErrInvalidHandle)
	}
	liveCount.Add(-1)
	klog.V(4).InfoS("Released tensor", "handle", uintptr(h), "dtype", v.(Facade).DType())
	return nil
}

// Live returns the number of handles not yet imported or released.
func Live() int {
	return int(liveCount.Load())
}
