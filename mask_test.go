package ux

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// i8b reinterprets a bit pattern as an int8; int8(0b1100_0110) does not
// compile as a constant conversion.
func i8b(b uint8) int8 { return int8(b) }

func TestMaskUnsigned(t *testing.T) {
	for idx, tc := range []struct {
		in   uint8
		bits uint
		out  uint8
	}{
		{0b1100_0110, 4, 0b0000_0110},
		{0b0000_1000, 4, 0b0000_1000},
		{0b0000_1110, 4, 0b0000_1110},
		{0b1111_1111, 2, 0b0000_0011},
		{0b1111_1111, 7, 0b0111_1111},
		{0b1000_0000, 7, 0},
	} {
		t.Run(fmt.Sprintf("%d/%08b@%d", idx, tc.in, tc.bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, maskUnsigned(tc.in, tc.bits))
		})
	}
}

func TestMaskSigned(t *testing.T) {
	for idx, tc := range []struct {
		in   int8
		bits uint
		out  int8
	}{
		{i8b(0b1100_0110), 4, i8b(0b0000_0110)},
		{i8b(0b0000_1000), 4, i8b(0b1111_1000)},
		{i8b(0b0000_1110), 4, i8b(0b1111_1110)},
		{i8b(0b0100_0000), 7, i8b(0b1100_0000)},
		{i8b(0b1011_1111), 7, i8b(0b0011_1111)},
		{i8b(0b0000_0010), 2, i8b(0b1111_1110)},
		{i8b(0b1111_1101), 2, i8b(0b0000_0001)},
	} {
		t.Run(fmt.Sprintf("%d/%08b@%d", idx, uint8(tc.in), tc.bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, maskSigned(tc.in, tc.bits))
		})
	}
}

func TestMaskSignedWide(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(int64(-1<<62), maskSigned(int64(1<<62), 63))
	tt.MustEqual(int64(1<<62-1), maskSigned(int64(-1<<62-1), 63))
	tt.MustEqual(int32(-1<<16), maskSigned(int32(1<<16), 17))
	tt.MustEqual(int16(-1), maskSigned(int16(0x1ff), 9))
}

func TestMaskIdempotentExhaustive(t *testing.T) {
	tt := assert.WrapTB(t)
	for bits := uint(2); bits <= 7; bits++ {
		for p := 0; p < 256; p++ {
			u := maskUnsigned(uint8(p), bits)
			tt.MustEqual(u, maskUnsigned(u, bits), "u%d %08b", bits, p)
			tt.MustAssert(u <= maxUnsigned[uint8](bits))

			s := maskSigned(i8b(uint8(p)), bits)
			tt.MustEqual(s, maskSigned(s, bits), "i%d %08b", bits, p)
			tt.MustAssert(s >= minSigned[int8](bits) && s <= maxSigned[int8](bits))

			// The low bits of the input always survive.
			low := uint8(1)<<bits - 1
			tt.MustEqual(uint8(p)&low, uint8(s)&low)
		}
	}
}

func TestMaskIdempotentRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 10000; i++ {
		p := rng.Uint64()
		for bits := uint(33); bits <= 63; bits++ {
			u := maskUnsigned(p, bits)
			tt.MustEqual(u, maskUnsigned(u, bits))
			s := maskSigned(int64(p), bits)
			tt.MustEqual(s, maskSigned(s, bits))
			tt.MustAssert(s >= minSigned[int64](bits) && s <= maxSigned[int64](bits))
		}
		for bits := uint(17); bits <= 31; bits++ {
			u := maskUnsigned(uint32(p), bits)
			tt.MustEqual(u, maskUnsigned(u, bits))
			s := maskSigned(int32(p), bits)
			tt.MustEqual(s, maskSigned(s, bits))
		}
		for bits := uint(9); bits <= 15; bits++ {
			u := maskUnsigned(uint16(p), bits)
			tt.MustEqual(u, maskUnsigned(u, bits))
			s := maskSigned(int16(p), bits)
			tt.MustEqual(s, maskSigned(s, bits))
		}
	}
}

func TestBounds(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint8(3), maxUnsigned[uint8](2))
	tt.MustEqual(uint16(511), maxUnsigned[uint16](9))
	tt.MustEqual(uint64(1<<63-1), maxUnsigned[uint64](63))
	tt.MustEqual(int8(1), maxSigned[int8](2))
	tt.MustEqual(int8(-2), minSigned[int8](2))
	tt.MustEqual(int8(63), maxSigned[int8](7))
	tt.MustEqual(int8(-64), minSigned[int8](7))
	tt.MustEqual(int64(1<<62-1), maxSigned[int64](63))
	tt.MustEqual(int64(-1<<62), minSigned[int64](63))
}
