package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DType Tests

func TestDTypeOrdinals(t *testing.T) {
	// Published boundary ABI: these values must never change.
	tests := []struct {
		dtype   DType
		ordinal uint8
	}{
		{Int8, 0},
		{Uint8, 1},
		{Float32, 2},
		{Float64, 3},
		{Int16, 4},
		{Uint16, 5},
		{Int32, 6},
		{Uint32, 7},
		{Int64, 8},
		{Uint64, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ordinal, uint8(tt.dtype), tt.dtype.String())
	}
	assert.Len(t, DTypes(), len(tests))
}

func TestDTypeSize(t *testing.T) {
	tests := []struct {
		dtype DType
		size  int
	}{
		{Int8, 1},
		{Uint8, 1},
		{Int16, 2},
		{Uint16, 2},
		{Int32, 4},
		{Uint32, 4},
		{Float32, 4},
		{Int64, 8},
		{Uint64, 8},
		{Float64, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dtype.Size(), tt.dtype.String())
	}
	assert.Panics(t, func() { _ = DType(200).Size() })
}

func TestDTypeString(t *testing.T) {
	assert.Equal(t, "int8", Int8.String())
	assert.Equal(t, "uint64", Uint64.String())
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "dtype(42)", DType(42).String())
	assert.False(t, DType(42).Valid())
}

func TestParseDType(t *testing.T) {
	for _, dt := range DTypes() {
		got, err := ParseDType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, got)
	}

	got, err := ParseDType(" Float64 ")
	require.NoError(t, err)
	assert.Equal(t, Float64, got)

	_, err = ParseDType("bfloat16")
	assert.ErrorIs(t, err, ErrUnknownDType)
}

func TestDTypeOf(t *testing.T) {
	assert.Equal(t, Int8, DTypeOf[int8]())
	assert.Equal(t, Uint8, DTypeOf[uint8]())
	assert.Equal(t, Int16, DTypeOf[int16]())
	assert.Equal(t, Uint16, DTypeOf[uint16]())
	assert.Equal(t, Int32, DTypeOf[int32]())
	assert.Equal(t, Uint32, DTypeOf[uint32]())
	assert.Equal(t, Int64, DTypeOf[int64]())
	assert.Equal(t, Uint64, DTypeOf[uint64]())
	assert.Equal(t, Float32, DTypeOf[float32]())
	assert.Equal(t, Float64, DTypeOf[float64]())
}

func TestCheckDType(t *testing.T) {
	assert.NoError(t, CheckDType[float32](Float32))
	err := CheckDType[float32](Int32)
	assert.ErrorIs(t, err, ErrDTypeMismatch)
	assert.Contains(t, err.Error(), "int32")
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{nil, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{4, 0, 2}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{}.Validate())
	assert.NoError(t, Shape{0, 3}.Validate())
	err := Shape{2, -1}.Validate()
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestShapeValidateOverflow(t *testing.T) {
	assert.ErrorIs(t, Shape{1 << 32, 1 << 32}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{1 << 62, 3}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{1 << 62, 3, 0}.Validate(), ErrInvalidShape)
	assert.NoError(t, Shape{1 << 31, 1 << 31}.Validate())
	assert.NoError(t, Shape{0, 1 << 62}.Validate())
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{}, Shape{}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{7}.ComputeStrides())
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
}

func TestIsStandardLayout(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		strides []int
		want    bool
	}{
		{"scalar", Shape{}, []int{}, true},
		{"row-major", Shape{2, 3}, []int{3, 1}, true},
		{"transposed", Shape{3, 2}, []int{1, 3}, false},
		{"row slice of wider array", Shape{2, 3}, []int{5, 1}, false},
		{"every other element", Shape{4}, []int{2}, false},
		{"unit dim ignores stride", Shape{1, 3}, []int{99, 1}, true},
		{"empty array", Shape{0, 3}, []int{7, 7}, true},
		{"rank mismatch", Shape{2, 3}, []int{1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStandardLayout(tt.shape, tt.strides))
		})
	}
}

// Owned Tensor Tests

// checkConstruct verifies that construction preserves shape and data for one
// element type.
func checkConstruct[T Element](t *testing.T, shape Shape, data []T) {
	t.Helper()
	want := make([]T, len(data))
	copy(want, data)

	tensor, err := New(shape, data)
	require.NoError(t, err)
	assert.Equal(t, shape.Clone(), tensor.Shape())
	assert.Equal(t, want, tensor.AsSlice())
	assert.Equal(t, DTypeOf[T](), tensor.DType())
	assert.Equal(t, len(want), tensor.NumElements())
}

func TestNewAllTypes(t *testing.T) {
	shape := Shape{2, 3}
	checkConstruct(t, shape, []int8{-1, 2, -3, 4, -5, 6})
	checkConstruct(t, shape, []uint8{1, 2, 3, 4, 5, 255})
	checkConstruct(t, shape, []int16{-300, 2, 3, 4, 5, 6})
	checkConstruct(t, shape, []uint16{1, 2, 3, 4, 5, 65535})
	checkConstruct(t, shape, []int32{1, 2, 3, 4, 5, 6})
	checkConstruct(t, shape, []uint32{1, 2, 3, 4, 5, 6})
	checkConstruct(t, shape, []int64{-1 << 40, 2, 3, 4, 5, 6})
	checkConstruct(t, shape, []uint64{1 << 63, 2, 3, 4, 5, 6})
	checkConstruct(t, shape, []float32{0.5, 1.5, 2.5, 3.5, 4.5, 5.5})
	checkConstruct(t, shape, []float64{0.25, 1, 2, 3, 4, 5})
}

func TestNewShapes(t *testing.T) {
	checkConstruct(t, Shape{}, []float64{3.14})
	checkConstruct(t, Shape{4}, []int32{1, 2, 3, 4})
	checkConstruct(t, Shape{2, 2, 2}, []uint8{1, 2, 3, 4, 5, 6, 7, 8})
	checkConstruct(t, Shape{3, 0}, []int64{})
}

func TestNewShapeMismatch(t *testing.T) {
	_, err := New(Shape{2, 3}, []float32{1, 2, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = New(Shape{}, []float32{})
	assert.ErrorIs(t, err, ErrShapeMismatch, "rank-0 tensor needs exactly one element")

	_, err = New(Shape{-2}, []float32{})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestNewRejectsOverflowingShape(t *testing.T) {
	_, err := New(Shape{1 << 32, 1 << 32}, []int8{})
	assert.ErrorIs(t, err, ErrInvalidShape)

	assert.Panics(t, func() { Zeros[int8](Shape{1 << 62, 3}) })
}

func TestNewDoesNotAliasShape(t *testing.T) {
	shape := Shape{2, 2}
	tensor, err := New(shape, []int32{1, 2, 3, 4})
	require.NoError(t, err)

	shape[0] = 100
	assert.Equal(t, Shape{2, 2}, tensor.Shape())
}

func TestShapeReturnsCopy(t *testing.T) {
	tensor, err := New(Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	got := tensor.Shape()
	got[0] = 5
	assert.Equal(t, Shape{2, 3}, tensor.Shape())
	assert.NotPanics(t, func() { tensor.AsSlice() })

	view, err := tensor.View()
	require.NoError(t, err)
	viewShape := view.Shape()
	viewShape[1] = 100
	data, err := ViewAs[int32](view)
	require.NoError(t, err)
	assert.Len(t, data, 6)
	view.Release()

	mview, err := tensor.ViewMut()
	require.NoError(t, err)
	mviewShape := mview.Shape()
	mviewShape[0] = 0
	assert.Equal(t, Shape{2, 3}, mview.Shape())
	mview.Release()
}

func TestFromStrided(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}

	tensor, err := FromStrided(Shape{2, 3}, []int{3, 1}, data)
	require.NoError(t, err)
	assert.Equal(t, data, tensor.AsSlice())
}

func TestFromStridedRejectsNonContiguous(t *testing.T) {
	// Transposed view of a 2x3 buffer.
	_, err := FromStrided(Shape{3, 2}, []int{1, 3}, []float32{1, 2, 3, 4, 5, 6})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonContiguousLayout)

	var layoutErr *LayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, Shape{3, 2}, layoutErr.Shape)
	assert.Equal(t, []int{1, 3}, layoutErr.Strides)
	assert.Equal(t, []int{2, 1}, layoutErr.Expected)

	// Every other column of a 2x4 buffer.
	_, err = FromStrided(Shape{2, 2}, []int{4, 2}, []int8{1, 2, 3, 4, 5, 6, 7, 8})
	assert.ErrorIs(t, err, ErrNonContiguousLayout)
}

func TestFromStridedRejectsSlack(t *testing.T) {
	// A prefix of a larger buffer is a layout violation, not a short buffer.
	_, err := FromStrided(Shape{2}, []int{1}, []int16{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonContiguousLayout)

	var layoutErr *LayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, "trailing elements beyond shape", layoutErr.Details)

	_, err = FromStrided(Shape{4}, []int{1}, []int16{1, 2, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAsSliceMutVisible(t *testing.T) {
	tensor, err := New(Shape{2, 2}, []int32{1, 2, 3, 4})
	require.NoError(t, err)

	tensor.AsSliceMut()[3] = 42
	assert.Equal(t, []int32{1, 2, 3, 42}, tensor.AsSlice())
}

func TestNewAdoptsBuffer(t *testing.T) {
	data := []uint16{1, 2, 3}
	tensor, err := New(Shape{3}, data)
	require.NoError(t, err)

	assert.Same(t, &data[0], &tensor.AsSlice()[0], "New must not copy")
}

func TestAsSlicePanicsOnBrokenInvariant(t *testing.T) {
	tensor := &Tensor[float32]{data: []float32{1}, shape: Shape{2}}
	assert.Panics(t, func() { tensor.AsSlice() })
	assert.Panics(t, func() { tensor.AsSliceMut() })
}

func TestZeroRankTensor(t *testing.T) {
	tensor, err := New(nil, []float64{2.5})
	require.NoError(t, err)

	assert.Empty(t, tensor.Shape())
	assert.NotNil(t, tensor.Shape())
	assert.Equal(t, []float64{2.5}, tensor.AsSlice())

	view, err := tensor.View()
	require.NoError(t, err)
	defer view.Release()
	assert.Empty(t, view.Shape())
	got, err := ViewAs[float64](view)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5}, got)
}

func TestClone(t *testing.T) {
	tensor, err := New(Shape{3}, []float32{1, 2, 3})
	require.NoError(t, err)
	view, err := tensor.View()
	require.NoError(t, err)
	defer view.Release()

	clone := tensor.Clone()
	clone.AsSliceMut()[0] = 99

	assert.Equal(t, []float32{1, 2, 3}, tensor.AsSlice(), "clone must be deep")
	assert.Equal(t, tensor.Shape(), clone.Shape())
	assert.False(t, clone.Borrowed(), "clone must not inherit borrows")
}

func TestTensorString(t *testing.T) {
	tensor := Zeros[uint32](Shape{2, 5})
	assert.Equal(t, "Tensor[uint32][2 5]", tensor.String())
}
