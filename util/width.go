// Package util contains helpers that are shared by the packages of this
// module: width queries over generic integer types and width independent
// surge marshalling.
package util

import (
	"math/rand"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bits returns the width of the integer type T in bits.
func Bits[T constraints.Integer]() int {
	var x T
	return int(unsafe.Sizeof(x)) * 8
}

// MaxSigned returns the largest value of the signed type T.
func MaxSigned[T constraints.Signed]() T {
	return T(^uint64(0) >> (65 - Bits[T]()))
}

// MaxUnsigned returns the largest value of the unsigned type U.
func MaxUnsigned[U constraints.Unsigned]() U {
	return ^U(0)
}

// RandomSigned returns a uniformly random non-negative value of type T.
func RandomSigned[T constraints.Signed](r *rand.Rand) T {
	return T(r.Uint64() >> (65 - Bits[T]()))
}

// RandomUnsigned returns a uniformly random value of type U.
func RandomUnsigned[U constraints.Unsigned](r *rand.Rand) U {
	return U(r.Uint64() >> (64 - Bits[U]()))
}
