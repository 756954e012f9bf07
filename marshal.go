package bezout

import (
	"math/rand"
	"reflect"

	"github.com/renproject/bezout/util"
)

// Generate implements the quick.Generator interface.
func (r Result[T]) Generate(rand *rand.Rand, size int) reflect.Value {
	a, b := util.RandomSigned[T](rand), util.RandomSigned[T](rand)
	return reflect.ValueOf(MustCompute(a, b))
}

// SizeHint implements the surge.SizeHinter interface.
func (r Result[T]) SizeHint() int {
	return 3 * util.SizeHintInt
}

// Marshal implements the surge.Marshaler interface.
func (r Result[T]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.MarshalInt(r.GCD, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(r.X, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return util.MarshalInt(r.Y, buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface.
func (r *Result[T]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.UnmarshalInt(&r.GCD, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&r.X, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return util.UnmarshalInt(&r.Y, buf, rem)
}

// Generate implements the quick.Generator interface.
func (r UnsignedResult[U, S]) Generate(rand *rand.Rand, size int) reflect.Value {
	a, b := util.RandomUnsigned[U](rand), util.RandomUnsigned[U](rand)
	return reflect.ValueOf(ComputeUnsigned[U, S](a, b))
}

// SizeHint implements the surge.SizeHinter interface.
func (r UnsignedResult[U, S]) SizeHint() int {
	return util.SizeHintUint + 2*util.SizeHintInt
}

// Marshal implements the surge.Marshaler interface.
func (r UnsignedResult[U, S]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.MarshalUint(r.GCD, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(r.X, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return util.MarshalInt(r.Y, buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface.
func (r *UnsignedResult[U, S]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.UnmarshalUint(&r.GCD, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&r.X, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return util.UnmarshalInt(&r.Y, buf, rem)
}

// Generate implements the quick.Generator interface.
func (p Pair[T]) Generate(rand *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(Pair[T]{A: util.RandomSigned[T](rand), B: util.RandomSigned[T](rand)})
}

// SizeHint implements the surge.SizeHinter interface.
func (p Pair[T]) SizeHint() int {
	return 2 * util.SizeHintInt
}

// Marshal implements the surge.Marshaler interface.
func (p Pair[T]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.MarshalInt(p.A, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return util.MarshalInt(p.B, buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface. Negative values are
// accepted here and rejected when the pair is computed.
func (p *Pair[T]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.UnmarshalInt(&p.A, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return util.UnmarshalInt(&p.B, buf, rem)
}
