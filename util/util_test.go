package util_test

import (
	"errors"
	"math"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/bezout/util"
)

var _ = Describe("Integer width helpers", func() {
	It("should report the width of each integer type", func() {
		Expect(Bits[int8]()).To(Equal(8))
		Expect(Bits[uint16]()).To(Equal(16))
		Expect(Bits[int32]()).To(Equal(32))
		Expect(Bits[uint64]()).To(Equal(64))
	})

	It("should return the largest value of each type", func() {
		Expect(MaxSigned[int8]()).To(Equal(int8(math.MaxInt8)))
		Expect(MaxSigned[int16]()).To(Equal(int16(math.MaxInt16)))
		Expect(MaxSigned[int32]()).To(Equal(int32(math.MaxInt32)))
		Expect(MaxSigned[int64]()).To(Equal(int64(math.MaxInt64)))
		Expect(MaxUnsigned[uint8]()).To(Equal(uint8(math.MaxUint8)))
		Expect(MaxUnsigned[uint64]()).To(Equal(uint64(math.MaxUint64)))
	})

	It("should only generate non-negative signed values", func() {
		trials := 1000
		r := rand.New(rand.NewSource(time.Now().UnixNano()))

		for i := 0; i < trials; i++ {
			Expect(RandomSigned[int8](r)).To(BeNumerically(">=", 0))
			Expect(RandomSigned[int64](r)).To(BeNumerically(">=", 0))
		}
	})
})

var _ = Describe("Width independent marshalling", func() {
	Context("when the value fits the destination", func() {
		It("should be the same after marshalling and unmarshalling", func() {
			trials := 1000
			r := rand.New(rand.NewSource(time.Now().UnixNano()))

			for i := 0; i < trials; i++ {
				x := RandomSigned[int16](r) - RandomSigned[int16](r)
				buf := make([]byte, SizeHintInt)
				_, _, err := MarshalInt(x, buf, SizeHintInt)
				Expect(err).ToNot(HaveOccurred())

				var y int32
				_, _, err = UnmarshalInt(&y, buf, SizeHintInt)
				Expect(err).ToNot(HaveOccurred())
				Expect(y).To(Equal(int32(x)))

				u := RandomUnsigned[uint32](r)
				buf = make([]byte, SizeHintUint)
				_, _, err = MarshalUint(u, buf, SizeHintUint)
				Expect(err).ToNot(HaveOccurred())

				var v uint64
				_, _, err = UnmarshalUint(&v, buf, SizeHintUint)
				Expect(err).ToNot(HaveOccurred())
				Expect(v).To(Equal(uint64(u)))
			}
		})
	})

	Context("when the value does not fit the destination", func() {
		It("should return an error and leave the destination unchanged", func() {
			buf := make([]byte, SizeHintInt)
			_, _, err := MarshalInt(int64(math.MaxInt8+1), buf, SizeHintInt)
			Expect(err).ToNot(HaveOccurred())

			y := int8(3)
			_, _, err = UnmarshalInt(&y, buf, SizeHintInt)
			Expect(errors.Is(err, ErrValueOutOfRange)).To(BeTrue())
			Expect(y).To(Equal(int8(3)))

			buf = make([]byte, SizeHintUint)
			_, _, err = MarshalUint(uint64(math.MaxUint16+1), buf, SizeHintUint)
			Expect(err).ToNot(HaveOccurred())

			v := uint16(5)
			_, _, err = UnmarshalUint(&v, buf, SizeHintUint)
			Expect(errors.Is(err, ErrValueOutOfRange)).To(BeTrue())
			Expect(v).To(Equal(uint16(5)))
		})
	})

	Context("when the buffer is too small", func() {
		It("should return an error", func() {
			buf := make([]byte, SizeHintInt-1)
			_, _, err := MarshalInt(int8(1), buf, SizeHintInt-1)
			Expect(err).To(HaveOccurred())

			var y int8
			_, _, err = UnmarshalInt(&y, buf, SizeHintInt-1)
			Expect(err).To(HaveOccurred())
		})
	})
})
