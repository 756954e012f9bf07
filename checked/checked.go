// Package checked implements signed integer arithmetic that reports overflow
// instead of silently wrapping. It is generic over every signed fixed-width
// integer type, so the same check can be used to confirm that a coefficient
// bound holds for int8 just as well as for int64.
package checked

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned when the result of an operation is not
// representable in the operand type.
var ErrOverflow = errors.New("arithmetic overflow")

// Add returns x + y, and false if the sum overflowed.
func Add[T constraints.Signed](x, y T) (T, bool) {
	z := x + y
	if (y > 0 && z < x) || (y < 0 && z > x) {
		return 0, false
	}
	return z, true
}

// Sub returns x - y, and false if the difference overflowed.
func Sub[T constraints.Signed](x, y T) (T, bool) {
	z := x - y
	if (y > 0 && z > x) || (y < 0 && z < x) {
		return 0, false
	}
	return z, true
}

// Mul returns x * y, and false if the product overflowed.
func Mul[T constraints.Signed](x, y T) (T, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	z := x * y
	// The quotient test alone misses min * -1, which wraps back to min.
	if z/y != x || ((x < 0) == (y < 0)) != (z > 0) {
		return 0, false
	}
	return z, true
}

// SubMul returns x - q*y, the update used for every remainder and coefficient
// in the extended Euclidean recurrence. An error wrapping ErrOverflow is
// returned if either the product or the difference overflowed.
func SubMul[T constraints.Signed](x, q, y T) (T, error) {
	p, ok := Mul(q, y)
	if !ok {
		return 0, ErrOverflow
	}
	z, ok := Sub(x, p)
	if !ok {
		return 0, ErrOverflow
	}
	return z, nil
}
