package eea

import (
	"math/rand"
	"reflect"

	"github.com/renproject/bezout/util"
	"github.com/renproject/surge"
)

// Generate implements the quick.Generator interface. The generated stepper is
// a valid state: it is initialised from random non-negative inputs and then
// stepped a random number of times.
func (eea Stepper[T]) Generate(rand *rand.Rand, size int) reflect.Value {
	a, b := util.RandomSigned[T](rand), util.RandomSigned[T](rand)
	stepper := NewStepper(a, b)
	for n := rand.Intn(size + 1); n > 0 && !stepper.Step(); n-- {
	}
	return reflect.ValueOf(stepper)
}

// SizeHint implements the surge.SizeHinter interface.
func (eea Stepper[T]) SizeHint() int {
	return 6*util.SizeHintInt + surge.SizeHintU32
}

// Marshal implements the surge.Marshaler interface.
func (eea Stepper[T]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.MarshalInt(eea.rPrev, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(eea.rNext, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(eea.xPrev, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(eea.xNext, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(eea.yPrev, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(eea.yNext, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return surge.MarshalU32(uint32(eea.steps), buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface.
func (eea *Stepper[T]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.UnmarshalInt(&eea.rPrev, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&eea.rNext, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&eea.xPrev, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&eea.xNext, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&eea.yPrev, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&eea.yNext, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	var steps uint32
	buf, rem, err = surge.UnmarshalU32(&steps, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	eea.steps = int(steps)
	return buf, rem, nil
}

// Generate implements the quick.Generator interface.
func (eea UStepper[U, S]) Generate(rand *rand.Rand, size int) reflect.Value {
	a, b := util.RandomUnsigned[U](rand), util.RandomUnsigned[U](rand)
	stepper := NewUStepper[U, S](a, b)
	for n := rand.Intn(size + 1); n > 0 && !stepper.Step(); n-- {
	}
	return reflect.ValueOf(stepper)
}

// SizeHint implements the surge.SizeHinter interface.
func (eea UStepper[U, S]) SizeHint() int {
	return 3*util.SizeHintUint + 4*util.SizeHintInt + surge.SizeHintU32
}

// Marshal implements the surge.Marshaler interface.
func (eea UStepper[U, S]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.MarshalUint(eea.r, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalUint(eea.rNext, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalUint(eea.q, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(eea.xPrev, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(eea.x, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(eea.yPrev, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(eea.y, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return surge.MarshalU32(uint32(eea.steps), buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface.
func (eea *UStepper[U, S]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.UnmarshalUint(&eea.r, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalUint(&eea.rNext, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalUint(&eea.q, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&eea.xPrev, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&eea.x, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&eea.yPrev, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&eea.y, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	var steps uint32
	buf, rem, err = surge.UnmarshalU32(&steps, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	eea.steps = int(steps)
	return buf, rem, nil
}
