package util

import (
	"errors"

	"github.com/renproject/surge"
	"golang.org/x/exp/constraints"
)

// ErrValueOutOfRange is returned when an unmarshalled value does not fit in
// the integer type that it is being unmarshalled into.
var ErrValueOutOfRange = errors.New("value out of range for integer width")

// SizeHintInt is the number of bytes used to marshal any signed integer,
// independent of its width.
const SizeHintInt = surge.SizeHintI64

// SizeHintUint is the number of bytes used to marshal any unsigned integer,
// independent of its width.
const SizeHintUint = surge.SizeHintU64

// MarshalInt marshals a signed integer of any width. All widths share the
// same 8 byte encoding so that values can be read back at a different width
// as long as they fit.
func MarshalInt[T constraints.Signed](x T, buf []byte, rem int) ([]byte, int, error) {
	return surge.MarshalI64(int64(x), buf, rem)
}

// UnmarshalInt unmarshals a signed integer that was marshalled with
// MarshalInt. An error wrapping ErrValueOutOfRange is returned if the value
// does not fit in the destination type, in which case the destination is left
// unchanged.
func UnmarshalInt[T constraints.Signed](dst *T, buf []byte, rem int) ([]byte, int, error) {
	var v int64
	buf, rem, err := surge.UnmarshalI64(&v, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	if int64(T(v)) != v {
		return buf, rem, ErrValueOutOfRange
	}
	*dst = T(v)
	return buf, rem, nil
}

// MarshalUint marshals an unsigned integer of any width.
func MarshalUint[U constraints.Unsigned](x U, buf []byte, rem int) ([]byte, int, error) {
	return surge.MarshalU64(uint64(x), buf, rem)
}

// UnmarshalUint unmarshals an unsigned integer that was marshalled with
// MarshalUint. An error is returned if the value does not fit in the
// destination type.
func UnmarshalUint[U constraints.Unsigned](dst *U, buf []byte, rem int) ([]byte, int, error) {
	var v uint64
	buf, rem, err := surge.UnmarshalU64(&v, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	if uint64(U(v)) != v {
		return buf, rem, ErrValueOutOfRange
	}
	*dst = U(v)
	return buf, rem, nil
}
