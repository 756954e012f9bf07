package bezout_test

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"time"

	"github.com/renproject/surge"
	"github.com/renproject/surge/surgeutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/bezout"

	"github.com/renproject/bezout/gcd"
)

var _ = Describe("Surge marshalling", func() {
	trials := 100
	types := []reflect.Type{
		reflect.TypeOf(Result[int8]{}),
		reflect.TypeOf(Result[int32]{}),
		reflect.TypeOf(Result[int64]{}),
		reflect.TypeOf(UnsignedResult[uint8, int8]{}),
		reflect.TypeOf(UnsignedResult[uint64, int64]{}),
		reflect.TypeOf(Pair[int16]{}),
		reflect.TypeOf(Pair[int64]{}),
	}

	for _, t := range types {
		t := t

		Context(fmt.Sprintf("surge marshalling and unmarshalling for %v", t), func() {
			It("should be the same after marshalling and unmarshalling", func() {
				for i := 0; i < trials; i++ {
					Expect(surgeutil.MarshalUnmarshalCheck(t)).To(Succeed())
				}
			})

			It("should not panic when fuzzing", func() {
				for i := 0; i < trials; i++ {
					Expect(func() { surgeutil.Fuzz(t) }).ToNot(Panic())
				}
			})

			Context("marshalling", func() {
				It("should return an error when the buffer is too small", func() {
					for i := 0; i < trials; i++ {
						Expect(surgeutil.MarshalBufTooSmall(t)).To(Succeed())
					}
				})

				It("should return an error when the memory quota is too small", func() {
					for i := 0; i < trials; i++ {
						Expect(surgeutil.MarshalRemTooSmall(t)).To(Succeed())
					}
				})
			})

			Context("unmarshalling", func() {
				It("should return an error when the buffer is too small", func() {
					for i := 0; i < trials; i++ {
						Expect(surgeutil.UnmarshalBufTooSmall(t)).To(Succeed())
					}
				})

				It("should return an error when the memory quota is too small", func() {
					for i := 0; i < trials; i++ {
						Expect(surgeutil.UnmarshalRemTooSmall(t)).To(Succeed())
					}
				})
			})
		})
	}

	Context("when generating random values", func() {
		It("should generate valid results", func() {
			r := rand.New(rand.NewSource(time.Now().UnixNano()))
			for i := 0; i < trials; i++ {
				var res Result[int64]
				Expect(func() { res = res.Generate(r, 0).Interface().(Result[int64]) }).ToNot(Panic())
				Expect(res.GCD).To(BeNumerically(">=", 0))
				Expect(gcd.Abs(res.X)).To(BeNumerically("<=", math.MaxInt64/2))
				Expect(gcd.Abs(res.Y)).To(BeNumerically("<=", math.MaxInt64/2))
			}
		})
	})

	Context("when changing the integer width", func() {
		It("should decode a result into any width that can hold it", func() {
			res := MustCompute(int64(240), 46)
			bs, err := surge.ToBinary(res)
			Expect(err).ToNot(HaveOccurred())

			var narrow Result[int8]
			_, _, err = narrow.Unmarshal(bs, len(bs))
			Expect(err).ToNot(HaveOccurred())
			Expect(narrow).To(Equal(Result[int8]{GCD: 2, X: -9, Y: 47}))
		})

		It("should fail to decode a result into a width that can not hold it", func() {
			res := MustCompute(int64(1<<40), 3)
			bs, err := surge.ToBinary(res)
			Expect(err).ToNot(HaveOccurred())

			var narrow Result[int16]
			_, _, err = narrow.Unmarshal(bs, len(bs))
			Expect(err).To(HaveOccurred())
		})
	})
})
