package eea

import (
	"fmt"

	"github.com/renproject/bezout/util"
	"golang.org/x/exp/constraints"
)

// UStepper is a variant of Stepper that takes its inputs as unsigned
// magnitudes and produces signed coefficients. S must be the signed type of
// the same width as U (e.g. int32 for uint32).
//
// The signed coefficients are kept one step behind the unsigned remainders:
// the pending quotient is stored and only applied to the coefficients on the
// following step. Because of this the coefficient pair that belongs to the
// terminating zero remainder, whose magnitudes are b/g and a/g and so may not
// fit in S, is never computed. Every coefficient that is computed is bounded
// by max(1, b/2) and max(1, a/2) respectively, which always fits in S.
type UStepper[U constraints.Unsigned, S constraints.Signed] struct {
	r, rNext U
	q        U
	xPrev, x S
	yPrev, y S
	steps    int
}

// NewUStepper constructs a new unsigned EEA algorithm object initialised for
// the given inputs. No steps in the algorithm are performed.
//
// Panics: This function will panic if S and U do not have the same width.
func NewUStepper[U constraints.Unsigned, S constraints.Signed](a, b U) UStepper[U, S] {
	var eea UStepper[U, S]
	eea.Init(a, b)
	return eea
}

// Init performs the initialisation of the state for the given inputs. The
// state starts as if a step with quotient 0 is pending, so that the first call
// to Step applies it.
//
// Panics: This function will panic if S and U do not have the same width.
func (eea *UStepper[U, S]) Init(a, b U) {
	if util.Bits[S]() != util.Bits[U]() {
		panic(fmt.Sprintf("coefficient width must match input width: got %v bits and %v bits", util.Bits[S](), util.Bits[U]()))
	}
	eea.r, eea.rNext = a, b
	eea.q = 0
	eea.xPrev, eea.x = 0, 1
	eea.yPrev, eea.y = 1, 0
	eea.steps = 0
}

// Rem returns the remainder that the current coefficients X and Y belong to.
func (eea *UStepper[U, S]) Rem() U { return eea.r }

// NextRem returns the next remainder, whose coefficients have not been
// computed yet.
func (eea *UStepper[U, S]) NextRem() U { return eea.rNext }

// X returns the current coefficient of the first input.
func (eea *UStepper[U, S]) X() S { return eea.x }

// Y returns the current coefficient of the second input.
func (eea *UStepper[U, S]) Y() S { return eea.y }

// Steps returns the number of steps carried out since the last call to Init.
func (eea *UStepper[U, S]) Steps() int { return eea.steps }

// Done returns true when the next remainder is zero.
func (eea *UStepper[U, S]) Done() bool { return eea.rNext == 0 }

// Result returns the gcd and the Bézout coefficients held by the state. The
// values are only meaningful once Done returns true.
func (eea *UStepper[U, S]) Result() (g U, x, y S) {
	return eea.r, eea.x, eea.y
}

// Step applies the pending quotient to the coefficients and then divides the
// remainders, storing the new quotient for the next step. It returns true when
// the next remainder is zero. Calling Step on a terminated state does nothing.
func (eea *UStepper[U, S]) Step() bool {
	if eea.rNext == 0 {
		return true
	}

	// The pending quotient is either 0 (first step) or at most r/2 (a
	// quotient followed by a non-zero remainder has a divisor of at least
	// 2), so it is representable in S.
	q := S(eea.q)
	eea.xPrev, eea.x = eea.x, eea.xPrev-q*eea.x
	eea.yPrev, eea.y = eea.y, eea.yPrev-q*eea.y

	r := eea.r
	eea.r = eea.rNext
	eea.q = r / eea.r
	eea.rNext = r - eea.q*eea.r

	eea.steps++
	return eea.rNext == 0
}

// RunUnsigned executes the unsigned EEA to completion and returns g = gcd(a, b)
// along with coefficients x, y such that a*x + b*y = g. The result is
// identical to that of Run on the same values, for every pair of inputs.
//
// Panics: This function will panic if S and U do not have the same width.
func RunUnsigned[U constraints.Unsigned, S constraints.Signed](a, b U) (g U, x, y S) {
	eea := NewUStepper[U, S](a, b)
	for !eea.Step() {
	}
	return eea.Result()
}
