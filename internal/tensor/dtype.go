// Package tensor provides the owned tensor, dtype registry and borrowed views
// that back the tensorbridge exchange layer.
package tensor

import (
	"fmt"
	"strings"
)

// Element is the closed set of scalar types a tensor may hold.
// Exact types only: the dtype tag must be a function of the type alone.
type Element interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// DType is the runtime tag identifying a buffer's element type across the
// boundary. It is transmitted as its ordinal.
//
// The ordinals are part of the boundary ABI. Never reorder them; new types
// are appended at the end.
type DType uint8

// Supported data types.
const (
	Int8 DType = iota
	Uint8
	Float32
	Float64
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64

	numDTypes
)

var dtypeNames = [numDTypes]string{
	Int8:    "int8",
	Uint8:   "uint8",
	Float32: "float32",
	Float64: "float64",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
}

// DTypes returns every supported data type in ordinal order.
func DTypes() []DType {
	out := make([]DType, numDTypes)
	for i := range out {
		out[i] = DType(i)
	}
	return out
}

// Valid reports whether dt is one of the published tags.
func (dt DType) Valid() bool {
	return dt < numDTypes
}

// Size returns the byte size of one element.
func (dt DType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		panic(fmt.Sprintf("unknown data type: %d", uint8(dt)))
	}
}

// String returns a human-readable name for the data type.
func (dt DType) String() string {
	if dt.Valid() {
		return dtypeNames[dt]
	}
	return fmt.Sprintf("dtype(%d)", uint8(dt))
}

// ParseDType maps a name such as "float32" back to its tag.
func ParseDType(name string) (DType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range dtypeNames {
		if n == name {
			return DType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDType, name)
}

// DTypeOf returns the tag for T.
func DTypeOf[T Element]() DType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case uint8:
		return Uint8
	case int16:
		return Int16
	case uint16:
		return Uint16
	case int32:
		return Int32
	case uint32:
		return Uint32
	case int64:
		return Int64
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}

// CheckDType returns ErrDTypeMismatch unless dt is the tag for T.
// Boundary code calls it before reinterpreting a buffer as []T.
func CheckDType[T Element](dt DType) error {
	if want := DTypeOf[T](); dt != want {
		return fmt.Errorf("%w: buffer is %s, accessed as %s", ErrDTypeMismatch, dt, want)
	}
	return nil
}
