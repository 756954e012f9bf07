// Package bound states the coefficient bounds of the extended Euclidean
// algorithm as checkable values.
//
// For non-negative inputs a and b, the coefficients x, y returned by the
// algorithm satisfy
//
//	|x| <= max(1, b/2) and |y| <= max(1, a/2)
//
// so the magnitude of each coefficient is bounded by half of the other input.
// The bound only depends on the inputs, so a caller can use it to pick an
// integer width before running the algorithm. When a > b >= 0 and g = gcd(a, b)
// the state at loop exit additionally has |x1| = b/g and |y1| = a/g, and the
// returned coefficients satisfy x = 1 or |x| <= (b/g)/2, and |y| <= (a/g)/2.
//
// Nothing in this package is needed to run the algorithm. It exists so that
// the bounds can be verified, by tests and by callers that want to size their
// storage.
package bound

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/renproject/bezout/gcd"
	"golang.org/x/exp/constraints"
)

var (
	// ErrNotBezout is returned when a*x + b*y != g.
	ErrNotBezout = errors.New("coefficients do not satisfy the Bézout identity")
	// ErrNotGCD is returned when g is not the greatest common divisor.
	ErrNotGCD = errors.New("result is not the greatest common divisor")
	// ErrOutOfBounds is returned when a coefficient exceeds its bound.
	ErrOutOfBounds = errors.New("coefficient exceeds its bound")
)

// Certificate holds the coefficient bounds for a pair of inputs.
type Certificate[T constraints.Signed] struct {
	A, B       T
	MaxX, MaxY T
}

// For returns the certificate for the non-negative inputs a and b, that is
// MaxX = max(1, b/2) and MaxY = max(1, a/2).
func For[T constraints.Signed](a, b T) Certificate[T] {
	return Certificate[T]{
		A: a, B: b,
		MaxX: gcd.Max(1, b/2),
		MaxY: gcd.Max(1, a/2),
	}
}

// Admits returns true if the coefficients x and y are within the bounds of the
// certificate.
func (c Certificate[T]) Admits(x, y T) bool {
	return absLeq(x, c.MaxX) && absLeq(y, c.MaxY)
}

// Bits returns the number of bits needed by a signed integer type that can
// store every coefficient admitted by the certificate.
func (c Certificate[T]) Bits() int {
	mx := bits.Len64(uint64(c.MaxX))
	my := bits.Len64(uint64(c.MaxY))
	return gcd.Max(mx, my) + 1
}

// FitsWidth returns true if every coefficient admitted by the certificate for
// a and b can be stored in a signed integer of the given number of bits.
func FitsWidth[T constraints.Signed](a, b T, width int) bool {
	return For(a, b).Bits() <= width
}

// Verify checks the result (g, x, y) of the extended Euclidean algorithm on
// the non-negative inputs a and b. It checks that g is the gcd (with gcd(0, 0)
// = 0), that a*x + b*y = g, and that the certificate admits x and y. The
// identity is checked with arbitrary precision, so Verify itself never
// overflows. When g != 0 the identity also implies that x and y are coprime:
// a common divisor d of x and y would make g/d an integer combination of a and
// b, and so a multiple of g.
func Verify[T constraints.Signed](a, b, g, x, y T) error {
	if want := gcd.GCD(a, b); g != want {
		return fmt.Errorf("%w: expected gcd(%v, %v) = %v, got %v", ErrNotGCD, a, b, want, g)
	}
	if !bezout(a, b, x, y, g) {
		return fmt.Errorf("%w: %v*%v + %v*%v != %v", ErrNotBezout, a, x, b, y, g)
	}
	if c := For(a, b); !c.Admits(x, y) {
		return fmt.Errorf("%w: |%v| <= %v and |%v| <= %v required", ErrOutOfBounds, x, c.MaxX, y, c.MaxY)
	}
	return nil
}

// VerifyExit checks the refined bounds that hold at loop exit when the
// algorithm is run on a > b >= 0. Here (x0, y0) are the returned coefficients
// and (x1, y1) the coefficients of the terminating zero remainder. It checks
// that |x1| = b/g and |y1| = a/g, and that x0 = 1 or |x0| <= (b/g)/2, and that
// |y0| <= (a/g)/2.
//
// Panics: This function will panic if a <= b or if b < 0.
func VerifyExit[T constraints.Signed](a, b, g, x0, y0, x1, y1 T) error {
	if b < 0 || a <= b {
		panic(fmt.Sprintf("loop exit bounds need a > b >= 0: got a = %v and b = %v", a, b))
	}
	if want := gcd.GCD(a, b); g != want {
		return fmt.Errorf("%w: expected gcd(%v, %v) = %v, got %v", ErrNotGCD, a, b, want, g)
	}
	if !absEq(x1, b/g) || !absEq(y1, a/g) {
		return fmt.Errorf("%w: expected |x1| = %v and |y1| = %v, got x1 = %v and y1 = %v",
			ErrOutOfBounds, b/g, a/g, x1, y1)
	}
	if x0 != 1 && !absLeq(x0, (b/g)/2) {
		return fmt.Errorf("%w: expected x0 = 1 or |x0| <= %v, got %v", ErrOutOfBounds, (b/g)/2, x0)
	}
	if !absLeq(y0, (a/g)/2) {
		return fmt.Errorf("%w: expected |y0| <= %v, got %v", ErrOutOfBounds, (a/g)/2, y0)
	}
	return nil
}

// absLeq returns true if |x| <= m for m >= 0. It does not negate x, so it is
// correct for the minimum value of the type.
func absLeq[T constraints.Signed](x, m T) bool {
	return -m <= x && x <= m
}

func absEq[T constraints.Signed](x, m T) bool {
	return x == m || x == -m
}

func bezout[T constraints.Signed](a, b, x, y, g T) bool {
	ax := new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(x)))
	by := new(big.Int).Mul(big.NewInt(int64(b)), big.NewInt(int64(y)))
	return ax.Add(ax, by).Cmp(big.NewInt(int64(g))) == 0
}
