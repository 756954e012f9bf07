// Package gcd implements the plain (non-extended) Euclidean algorithm. It is
// used as an oracle when checking the results and the coefficient bounds of
// the extended algorithm, and is not needed by the extended algorithm itself.
package gcd

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b. The result is always
// non-negative, and by convention GCD(0, 0) = 0.
//
// NOTE: For signed types the absolute value of the result must be
// representable, so passing the minimum value of the type together with 0 (or
// with itself) will return a negative number.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return Abs(a)
}

// Abs returns the absolute value of x.
func Abs[T constraints.Integer](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of a and b.
func Max[T constraints.Integer](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// Coprime returns true if the only common divisors of a and b are 1 and -1.
// Zero is coprime only to 1 and -1.
func Coprime[T constraints.Integer](a, b T) bool {
	return GCD(a, b) == 1
}
