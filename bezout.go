// Package bezout computes the greatest common divisor of two non-negative
// integers together with a pair of Bézout coefficients, using the extended
// Euclidean algorithm.
//
// For inputs a, b >= 0 the result (g, x, y) satisfies a*x + b*y = g, where g is
// the gcd of a and b, and the coefficients satisfy
//
//	|x| <= max(1, b/2) and |y| <= max(1, a/2).
//
// Compute never produces an intermediate value that is larger in magnitude
// than its inputs, so it cannot overflow the integer type of the inputs. See
// the bound package for how the bounds can be used to size an integer type
// before calling.
//
// By convention gcd(0, 0) = 0, and the coefficients returned for (0, 0) are
// x = 1, y = 0. This is a convention and not something that follows from the
// definition of the gcd.
package bezout

import (
	"errors"
	"fmt"

	"github.com/renproject/bezout/bound"
	"github.com/renproject/bezout/eea"
	"golang.org/x/exp/constraints"
)

// ErrNegativeInput is returned when one of the inputs is negative.
var ErrNegativeInput = errors.New("input must be non-negative")

// Result holds the gcd of two integers and their Bézout coefficients.
type Result[T constraints.Signed] struct {
	GCD, X, Y T
}

// Verify returns an error if the result is not a valid result for the inputs
// a and b; see bound.Verify.
func (r Result[T]) Verify(a, b T) error {
	return bound.Verify(a, b, r.GCD, r.X, r.Y)
}

// Compute returns the gcd g of a and b and coefficients x, y such that
// a*x + b*y = g. If either input is negative an error wrapping
// ErrNegativeInput is returned.
//
// The inputs are dispatched as follows:
//
//   - a = b = 0 gives (0, 1, 0),
//   - a = b > 0 gives (a, 0, 1),
//   - a > b runs the algorithm on (a, b),
//   - a < b runs the algorithm on (b, a) and swaps the coefficients.
func Compute[T constraints.Signed](a, b T) (Result[T], error) {
	return dispatch(a, b, func(a, b T) (T, T, T, error) {
		g, x, y := eea.Run(a, b)
		return g, x, y, nil
	})
}

// ComputeChecked is the same as Compute, but checks every coefficient update
// for overflow. An error wrapping checked.ErrOverflow would mean that the
// coefficient bounds do not hold; it is never expected to be returned.
func ComputeChecked[T constraints.Signed](a, b T) (Result[T], error) {
	return dispatch(a, b, eea.RunChecked[T])
}

// MustCompute is the same as Compute, but panics if either input is negative.
func MustCompute[T constraints.Signed](a, b T) Result[T] {
	res, err := Compute(a, b)
	if err != nil {
		panic(err)
	}
	return res
}

func dispatch[T constraints.Signed](a, b T, run func(a, b T) (T, T, T, error)) (Result[T], error) {
	if a < 0 || b < 0 {
		return Result[T]{}, fmt.Errorf("%w: got a = %v and b = %v", ErrNegativeInput, a, b)
	}

	switch {
	case a == 0 && b == 0:
		return Result[T]{GCD: 0, X: 1, Y: 0}, nil
	case a == b:
		return Result[T]{GCD: a, X: 0, Y: 1}, nil
	case b < a:
		g, x, y, err := run(a, b)
		if err != nil {
			return Result[T]{}, err
		}
		return Result[T]{GCD: g, X: x, Y: y}, nil
	default:
		g, y, x, err := run(b, a)
		if err != nil {
			return Result[T]{}, err
		}
		return Result[T]{GCD: g, X: x, Y: y}, nil
	}
}

// UnsignedResult holds the gcd of two unsigned integers and their Bézout
// coefficients, which are signed integers of the same width.
type UnsignedResult[U constraints.Unsigned, S constraints.Signed] struct {
	GCD  U
	X, Y S
}

// ComputeUnsigned returns the gcd g of a and b and coefficients x, y such that
// a*x + b*y = g, for inputs given as unsigned magnitudes. S must be the signed
// type with the same width as U. The result is the same as the result of
// Compute for the same values, and the coefficients always fit in S, even when
// a and b do not.
//
// Panics: This function will panic if S and U do not have the same width.
func ComputeUnsigned[U constraints.Unsigned, S constraints.Signed](a, b U) UnsignedResult[U, S] {
	g, x, y := eea.RunUnsigned[U, S](a, b)
	return UnsignedResult[U, S]{GCD: g, X: x, Y: y}
}

// Pair is a pair of inputs.
type Pair[T constraints.Signed] struct {
	A, B T
}

// Compute is shorthand for Compute(p.A, p.B).
func (p Pair[T]) Compute() (Result[T], error) {
	return Compute(p.A, p.B)
}

// Certificate returns the coefficient bounds for the pair.
func (p Pair[T]) Certificate() bound.Certificate[T] {
	return bound.For(p.A, p.B)
}
