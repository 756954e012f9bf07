package eea

import (
	"github.com/renproject/bezout/checked"
	"golang.org/x/exp/constraints"
)

// Stepper encapsulates the functionality of the Extended Euclidean Algorithm
// over a signed fixed-width integer type. It holds the internal state of the
// algorithm, and allows it to be stepped, and hence allows this state to be
// inspected at points in the algorithm before the canonical termination
// condition.
//
// For inputs a, b the state always satisfies
//
//	a*PrevX() + b*PrevY() == PrevRem()
//	a*X()     + b*Y()     == Rem()
//
// and the coefficient matrix [[PrevX, PrevY], [X, Y]] has determinant 1 or -1.
// When a > b >= 0, the magnitudes of the coefficients never exceed the bounds
// described in the bound package, so the algorithm cannot overflow T.
type Stepper[T constraints.Signed] struct {
	rPrev, rNext T
	xPrev, xNext T
	yPrev, yNext T
	steps        int
}

// NewStepper constructs a new EEA algorithm object initialised for the given
// inputs. No steps in the algorithm are performed.
func NewStepper[T constraints.Signed](a, b T) Stepper[T] {
	var eea Stepper[T]
	eea.Init(a, b)
	return eea
}

// Init performs the initialisation of the state for the EEA for the given
// inputs. No steps in the algorithm are performed. Both inputs must be
// non-negative; this is not checked.
func (eea *Stepper[T]) Init(a, b T) {
	// r0 = a, r1 = b
	eea.rPrev, eea.rNext = a, b
	// x0 = 1, x1 = 0
	eea.xPrev, eea.xNext = 1, 0
	// y0 = 0, y1 = 1
	eea.yPrev, eea.yNext = 0, 1
	eea.steps = 0
}

// Rem returns the current remainder term for the EEA.
func (eea *Stepper[T]) Rem() T { return eea.rNext }

// PrevRem returns the previous remainder term for the EEA. Once the algorithm
// has terminated this is the greatest common divisor.
func (eea *Stepper[T]) PrevRem() T { return eea.rPrev }

// X returns the current coefficient of the first input.
func (eea *Stepper[T]) X() T { return eea.xNext }

// Y returns the current coefficient of the second input.
func (eea *Stepper[T]) Y() T { return eea.yNext }

// PrevX returns the previous coefficient of the first input.
func (eea *Stepper[T]) PrevX() T { return eea.xPrev }

// PrevY returns the previous coefficient of the second input.
func (eea *Stepper[T]) PrevY() T { return eea.yPrev }

// Steps returns the number of steps carried out since the last call to Init.
func (eea *Stepper[T]) Steps() int { return eea.steps }

// Done returns true when the state has reached the canonical termination
// condition (r_{k+1} = 0).
func (eea *Stepper[T]) Done() bool { return eea.rNext == 0 }

// Result returns the gcd and the Bézout coefficients held by the state. The
// values are only meaningful once Done returns true.
func (eea *Stepper[T]) Result() (g, x, y T) {
	return eea.rPrev, eea.xPrev, eea.yPrev
}

// Step carries out one step of the EEA. It returns a boolean that is true when
// the state has reached the canonical termination condition (r_{k+1} = 0).
// Calling Step on a terminated state does nothing.
func (eea *Stepper[T]) Step() bool {
	if eea.rNext == 0 {
		return true
	}

	// Both remainders are non-negative, so truncating division is floor
	// division and q*rNext <= rPrev.
	q := eea.rPrev / eea.rNext

	// rNext, rPrev = rPrev - q * rNext, rNext
	eea.rPrev, eea.rNext = eea.rNext, eea.rPrev-q*eea.rNext

	// xNext, xPrev = xPrev - q * xNext, xNext
	eea.xPrev, eea.xNext = eea.xNext, eea.xPrev-q*eea.xNext

	// yNext, yPrev = yPrev - q * yNext, yNext
	eea.yPrev, eea.yNext = eea.yNext, eea.yPrev-q*eea.yNext

	eea.steps++
	return eea.rNext == 0
}

// StepChecked is the same as Step, but every coefficient update is checked for
// overflow. If an update overflows, an error wrapping checked.ErrOverflow is
// returned and the state is left unchanged.
func (eea *Stepper[T]) StepChecked() (bool, error) {
	if eea.rNext == 0 {
		return true, nil
	}

	q := eea.rPrev / eea.rNext
	r := eea.rPrev - q*eea.rNext
	x, err := checked.SubMul(eea.xPrev, q, eea.xNext)
	if err != nil {
		return false, err
	}
	y, err := checked.SubMul(eea.yPrev, q, eea.yNext)
	if err != nil {
		return false, err
	}

	eea.rPrev, eea.rNext = eea.rNext, r
	eea.xPrev, eea.xNext = eea.xNext, x
	eea.yPrev, eea.yNext = eea.yNext, y

	eea.steps++
	return r == 0, nil
}

// Run executes the EEA to completion on the given non-negative inputs and
// returns g = gcd(a, b) along with coefficients x, y such that a*x + b*y = g.
//
// If a < b the first step has quotient 0 and swaps the roles of the inputs, so
// the result is the same as running on (b, a) and swapping x and y. If both
// inputs are 0 the result is (0, 1, 0).
func Run[T constraints.Signed](a, b T) (g, x, y T) {
	eea := NewStepper(a, b)
	for !eea.Step() {
	}
	return eea.Result()
}

// RunChecked is the same as Run, but returns an error wrapping
// checked.ErrOverflow if any coefficient update overflows T.
func RunChecked[T constraints.Signed](a, b T) (g, x, y T, err error) {
	eea := NewStepper(a, b)
	for {
		done, err := eea.StepChecked()
		if err != nil {
			return 0, 0, 0, err
		}
		if done {
			break
		}
	}
	g, x, y = eea.Result()
	return g, x, y, nil
}
