package bound

import (
	"math/rand"
	"reflect"

	"github.com/renproject/bezout/util"
)

// Generate implements the quick.Generator interface.
func (c Certificate[T]) Generate(rand *rand.Rand, size int) reflect.Value {
	a, b := util.RandomSigned[T](rand), util.RandomSigned[T](rand)
	return reflect.ValueOf(For(a, b))
}

// SizeHint implements the surge.SizeHinter interface.
func (c Certificate[T]) SizeHint() int {
	return 4 * util.SizeHintInt
}

// Marshal implements the surge.Marshaler interface.
func (c Certificate[T]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.MarshalInt(c.A, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(c.B, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.MarshalInt(c.MaxX, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return util.MarshalInt(c.MaxY, buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface.
func (c *Certificate[T]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := util.UnmarshalInt(&c.A, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&c.B, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = util.UnmarshalInt(&c.MaxX, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return util.UnmarshalInt(&c.MaxY, buf, rem)
}
