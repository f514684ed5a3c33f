package tensor

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// borrowState is the runtime exclusivity guard of a Tensor: any number of
// readers, or exactly one writer.
//
// Both sides publish their intent before checking the other, so a reader and
// a writer racing for the same tensor cannot both succeed.
type borrowState struct {
	readers atomic.Int32
	writer  atomic.Bool
}

func (b *borrowState) acquireRead() bool {
	if b.writer.Load() {
		return false
	}
	b.readers.Add(1)
	if b.writer.Load() {
		b.readers.Add(-1)
		return false
	}
	return true
}

func (b *borrowState) acquireWrite() bool {
	if !b.writer.CompareAndSwap(false, true) {
		return false
	}
	if b.readers.Load() != 0 {
		b.writer.Store(false)
		return false
	}
	return true
}

func (b *borrowState) releaseRead() { b.readers.Add(-1) }

func (b *borrowState) releaseWrite() { b.writer.Store(false) }

func (b *borrowState) borrowed() bool {
	return b.readers.Load() != 0 || b.writer.Load()
}

// View is a non-owning, read-only descriptor of a tensor's buffer: shape,
// dtype tag and the address of the first element. Creating one allocates
// nothing and copies no data.
//
// A View is valid until Release is called. The owner must stay reachable and
// must not be written to while the view is live. Pointer values obtained from
// a view must not be used after Release; this cannot be checked.
type View struct {
	shape    Shape
	dtype    DType
	ptr      unsafe.Pointer
	owner    *borrowState
	released atomic.Bool
}

// MutableView is the exclusive, writable counterpart of View. While it is
// live no other View or MutableView of the same tensor can be created.
type MutableView struct {
	shape    Shape
	dtype    DType
	ptr      unsafe.Pointer
	owner    *borrowState
	released atomic.Bool
}

// View borrows t for reading. It fails with ErrBorrowed while a MutableView
// of t is live.
func (t *Tensor[T]) View() (*View, error) {
	if !t.borrow.acquireRead() {
		return nil, fmt.Errorf("%w: %s has a live mutable view", ErrBorrowed, t)
	}
	return &View{
		shape: t.shape,
		dtype: DTypeOf[T](),
		ptr:   dataPointer(t.data),
		owner: &t.borrow,
	}, nil
}

// ViewMut borrows t exclusively for writing. It fails with ErrBorrowed while
// any View or MutableView of t is live.
func (t *Tensor[T]) ViewMut() (*MutableView, error) {
	if !t.borrow.acquireWrite() {
		return nil, fmt.Errorf("%w: %s has live views", ErrBorrowed, t)
	}
	return &MutableView{
		shape: t.shape,
		dtype: DTypeOf[T](),
		ptr:   dataPointer(t.data),
		owner: &t.borrow,
	}, nil
}

// Borrowed reports whether any View or MutableView of t is live.
func (t *Tensor[T]) Borrowed() bool {
	return t.borrow.borrowed()
}

// Shape returns a copy of the viewed shape.
func (v *View) Shape() Shape { return v.shape.Clone() }

// DType returns the element type tag of the viewed buffer.
func (v *View) DType() DType { return v.dtype }

// Pointer returns the address of the first element, or nil for an empty
// tensor. Memory behind it must only be read.
func (v *View) Pointer() unsafe.Pointer { return v.ptr }

// Release ends the borrow. Calling it more than once has no further effect.
func (v *View) Release() {
	if v.released.CompareAndSwap(false, true) {
		v.owner.releaseRead()
	}
}

// Shape returns a copy of the viewed shape.
func (v *MutableView) Shape() Shape { return v.shape.Clone() }

// DType returns the element type tag of the viewed buffer.
func (v *MutableView) DType() DType { return v.dtype }

// Pointer returns the writable address of the first element, or nil for an
// empty tensor.
func (v *MutableView) Pointer() unsafe.Pointer { return v.ptr }

// Release ends the exclusive borrow. Calling it more than once has no further
// effect.
func (v *MutableView) Release() {
	if v.released.CompareAndSwap(false, true) {
		v.owner.releaseWrite()
	}
}

// ViewAs reinterprets the viewed buffer as []T after checking the dtype tag.
// The result must be treated as read-only and not used after v.Release().
func ViewAs[T Element](v *View) ([]T, error) {
	if v.released.Load() {
		return nil, ErrReleased
	}
	if err := CheckDType[T](v.dtype); err != nil {
		return nil, err
	}
	return sliceAt[T](v.ptr, v.shape.NumElements()), nil
}

// MutableViewAs reinterprets the exclusively borrowed buffer as a writable []T
// after checking the dtype tag.
func MutableViewAs[T Element](v *MutableView) ([]T, error) {
	if v.released.Load() {
		return nil, ErrReleased
	}
	if err := CheckDType[T](v.dtype); err != nil {
		return nil, err
	}
	return sliceAt[T](v.ptr, v.shape.NumElements()), nil
}
