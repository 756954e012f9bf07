package eeautil

import (
	"math/rand"

	"github.com/renproject/bezout/util"
	"golang.org/x/exp/constraints"
)

// RandRange returns a random number x such that lower <= x <= upper.
func RandRange(lower, upper int) int {
	return rand.Intn(upper+1-lower) + lower
}

// RandomMagnitude returns a random non-negative value of type T. The bit length
// of the value is chosen uniformly first, so that small values and values near
// the maximum of the type are both common.
func RandomMagnitude[T constraints.Signed]() T {
	n := RandRange(0, util.Bits[T]()-1)
	if n == 0 {
		return 0
	}
	return T(rand.Uint64() >> (64 - n))
}

// RandomUMagnitude is the unsigned counterpart of RandomMagnitude.
func RandomUMagnitude[U constraints.Unsigned]() U {
	n := RandRange(0, util.Bits[U]())
	if n == 0 {
		return 0
	}
	return U(rand.Uint64() >> (64 - n))
}

// FibonacciPair returns the largest pair of consecutive Fibonacci numbers
// F(k+1) > F(k) that fit in T. These inputs maximise the number of steps of the
// Euclidean algorithm for their size, and every quotient but the last is 1.
func FibonacciPair[T constraints.Signed]() (T, T) {
	max := util.MaxSigned[T]()
	var prev, cur T = 1, 2
	for cur <= max-prev {
		prev, cur = cur, prev+cur
	}
	return cur, prev
}

// Fibonacci returns the first n Fibonacci numbers F(0), ..., F(n-1).
func Fibonacci(n int) []int64 {
	fib := make([]int64, n)
	for i := range fib {
		if i < 2 {
			fib[i] = int64(i)
			continue
		}
		fib[i] = fib[i-1] + fib[i-2]
	}
	return fib
}
