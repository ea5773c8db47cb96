package ux

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func fromInt64[T any, PT settable[T]](v int64) T {
	var out T
	PT(&out).setInt64(v)
	return out
}

// mustPanic runs fn and returns the value it panicked with, failing the test
// if it returned normally.
func mustPanic(tt assert.T, fn func()) (err error) {
	tt.Helper()
	defer func() {
		r := recover()
		tt.MustAssert(r != nil, "expected panic")
		err = r.(error)
	}()
	fn()
	return nil
}

func TestMinMaxValues(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(uint8(3), MaxU2.Uint8())
	tt.MustEqual(uint8(7), MaxU3.Uint8())
	tt.MustEqual(uint8(127), MaxU7.Uint8())
	tt.MustEqual(uint16(511), MaxU9.Uint16())
	tt.MustEqual(uint64(1<<63-1), MaxU63.Uint64())

	tt.MustEqual(int8(1), MaxI2.Int8())
	tt.MustEqual(int8(3), MaxI3.Int8())
	tt.MustEqual(int8(63), MaxI7.Int8())
	tt.MustEqual(int16(255), MaxI9.Int16())
	tt.MustEqual(int64(1<<62-1), MaxI63.Int64())

	tt.MustEqual(uint8(0), MinU2.Uint8())
	tt.MustEqual(uint8(0), MinU3.Uint8())
	tt.MustEqual(uint8(0), MinU7.Uint8())
	tt.MustEqual(uint16(0), MinU9.Uint16())

	tt.MustEqual(int8(-2), MinI2.Int8())
	tt.MustEqual(int8(-4), MinI3.Int8())
	tt.MustEqual(int8(-64), MinI7.Int8())
	tt.MustEqual(int16(-256), MinI9.Int16())
	tt.MustEqual(int64(-1<<62), MinI63.Int64())

	tt.MustEqual(MaxU9, U9{}.MaxValue())
	tt.MustEqual(MinI9, I9{}.MinValue())
	tt.MustEqual(NewU2(3), MaxU2)
	tt.MustEqual(NewI9(-256), MinI9)
}

func TestNew(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(int64(31), NewU5(31).Int64())
	tt.MustEqual(int64(-16), NewI5(-16).Int64())
	tt.MustEqual(int64(15), NewI5(15).Int64())
	tt.MustEqual(int64(1<<33-1), NewU33(1<<33-1).Int64())
}

func TestNewOutOfRange(t *testing.T) {
	for idx, fn := range []func(){
		func() { NewU5(32) },
		func() { NewU2(4) },
		func() { NewU7(128) },
		func() { NewU15(1 << 15) },
		func() { NewU63(1 << 63) },
		func() { NewI5(16) },
		func() { NewI5(-17) },
		func() { NewI2(2) },
		func() { NewI7(-65) },
		func() { NewI63(1 << 62) },
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			err := mustPanic(tt, fn)
			tt.MustAssert(Error.Has(err), "unexpected panic %v", err)
		})
	}
}

func TestBitsSigned(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint(5), U5{}.Bits())
	tt.MustEqual(false, U5{}.Signed())
	tt.MustEqual(uint(63), I63{}.Bits())
	tt.MustEqual(true, I63{}.Signed())
}

func TestWrappingAdd(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(MinU5, MaxU5.WrappingAdd(NewU5(1)))
	tt.MustEqual(NewU5(3), MaxU5.WrappingAdd(NewU5(4)))

	tt.MustEqual(MinI7, MaxI7.WrappingAdd(NewI7(1)))
	tt.MustEqual(NewI7(-61), MaxI7.WrappingAdd(NewI7(4)))

	tt.MustEqual(MinI5, MaxI5.WrappingAdd(NewI5(1)))
	tt.MustEqual(NewI5(15), NewI5(10).WrappingAdd(NewI5(5)))
	tt.MustEqual(NewI5(-12), NewI5(15).WrappingAdd(NewI5(5)))

	tt.MustEqual(MinU63, MaxU63.WrappingAdd(NewU63(1)))
	tt.MustEqual(MinI63, MaxI63.WrappingAdd(NewI63(1)))
}

func TestWrappingSub(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(MaxI5, MinI5.WrappingSub(NewI5(1)))
	tt.MustEqual(NewI5(-15), NewI5(-10).WrappingSub(NewI5(5)))
	tt.MustEqual(NewI5(12), NewI5(-15).WrappingSub(NewI5(5)))

	tt.MustEqual(MaxU5, MinU5.WrappingSub(NewU5(1)))
	tt.MustEqual(NewU9(510), MinU9.WrappingSub(NewU9(2)))
	tt.MustEqual(MaxU33, MinU33.WrappingSub(NewU33(1)))
}

// wrapInt64 reduces v into [lo, lo+2^bits) by modular arithmetic, as an
// oracle for WrappingAdd and WrappingSub that does not use bit tricks.
func wrapInt64(v int64, bits uint, signed bool) int64 {
	m := int64(1) << bits
	var lo int64
	if signed {
		lo = -(m / 2)
	}
	r := (v - lo) % m
	if r < 0 {
		r += m
	}
	return r + lo
}

func checkModularLaw[T Ops[T], PT settable[T]](tt assert.T) {
	tt.Helper()
	var zero T
	lo, hi := zero.MinValue().Int64(), zero.MaxValue().Int64()
	for a := lo; a <= hi; a++ {
		for b := lo; b <= hi; b++ {
			x, y := fromInt64[T, PT](a), fromInt64[T, PT](b)
			sum, diff := x.WrappingAdd(y), x.WrappingSub(y)
			tt.MustEqual(wrapInt64(a+b, zero.Bits(), zero.Signed()), sum.Int64(), "%d + %d", a, b)
			tt.MustEqual(wrapInt64(a-b, zero.Bits(), zero.Signed()), diff.Int64(), "%d - %d", a, b)
			if !overflowChecks {
				tt.MustEqual(sum, x.Add(y))
				tt.MustEqual(diff, x.Sub(y))
			}
		}
	}
}

func TestWrappingModularLaw(t *testing.T) {
	tt := assert.WrapTB(t)
	checkModularLaw[U2](tt)
	checkModularLaw[U3](tt)
	checkModularLaw[U5](tt)
	checkModularLaw[U7](tt)
	checkModularLaw[U9](tt)
	checkModularLaw[I2](tt)
	checkModularLaw[I3](tt)
	checkModularLaw[I5](tt)
	checkModularLaw[I7](tt)
	checkModularLaw[I9](tt)
}

func TestAddSubOverflow(t *testing.T) {
	tt := assert.WrapTB(t)
	if !overflowChecks {
		tt.MustEqual(MinU5, MaxU5.Add(NewU5(1)))
		tt.MustEqual(MaxU5, MinU5.Sub(NewU5(1)))
		tt.MustEqual(MinI7, MaxI7.Add(NewI7(1)))
		tt.MustEqual(MaxI7, MinI7.Sub(NewI7(1)))
		return
	}
	for _, fn := range []func(){
		func() { MaxU5.Add(NewU5(1)) },
		func() { MinU5.Sub(NewU5(1)) },
		func() { MaxI7.Add(NewI7(1)) },
		func() { MinI7.Sub(NewI7(1)) },
		func() { MaxU63.Add(MaxU63) },
		func() { MinI63.Sub(MaxI63) },
	} {
		err := mustPanic(tt, fn)
		tt.MustAssert(Error.Has(err))
	}
}

func TestCompare(t *testing.T) {
	for idx, tc := range []struct {
		a, b I9
		cmp  int
	}{
		{NewI9(-256), NewI9(255), -1},
		{NewI9(255), NewI9(-256), 1},
		{NewI9(-1), NewI9(-1), 0},
		{NewI9(0), NewI9(-1), 1},
		{NewI9(3), NewI9(4), -1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.cmp, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.cmp == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.cmp == 0, tc.a == tc.b)
			tt.MustEqual(tc.cmp < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.cmp <= 0, tc.a.LessOrEqualTo(tc.b))
			tt.MustEqual(tc.cmp > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.cmp >= 0, tc.a.GreaterOrEqualTo(tc.b))
		})
	}
}

// checkEqualMatchesEq compares every pair of values of T, which must be small
// enough to enumerate, with both == and Equal.
func checkEqualMatchesEq[T interface {
	comparable
	Ops[T]
}, PT settable[T]](tt assert.T) {
	tt.Helper()
	var zero T
	lo, hi := zero.MinValue().Int64(), zero.MaxValue().Int64()
	for a := lo; a <= hi; a++ {
		for b := lo; b <= hi; b++ {
			x, y := fromInt64[T, PT](a), fromInt64[T, PT](b)
			tt.MustEqual(a == b, x == y, "%d == %d", a, b)
			tt.MustEqual(x == y, x.Equal(y), "%d == %d", a, b)
		}
	}
}

func TestEqualMatchesEq(t *testing.T) {
	tt := assert.WrapTB(t)
	checkEqualMatchesEq[U3](tt)
	checkEqualMatchesEq[U7](tt)
	checkEqualMatchesEq[U10](tt)
	checkEqualMatchesEq[I2](tt)
	checkEqualMatchesEq[I5](tt)
	checkEqualMatchesEq[I9](tt)
}

func TestLargerSmaller(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(NewI5(3), Larger(NewI5(-3), NewI5(3)))
	tt.MustEqual(NewI5(-3), Smaller(NewI5(-3), NewI5(3)))
	tt.MustEqual(MaxU40, Larger(MaxU40, MinU40))
	tt.MustEqual(MinU40, Smaller(MaxU40, MinU40))
}

func TestHash(t *testing.T) {
	tt := assert.WrapTB(t)

	// Equal values hash equal however they were produced.
	a := MaxU5.WrappingAdd(NewU5(4))
	b := NewU5(16).Rsh(2).WrappingSub(NewU5(1))
	tt.MustEqual(NewU5(3), a)
	tt.MustEqual(a, b)
	tt.MustEqual(a.Hash(), b.Hash())

	c := Lsh(NewI7(-1), 6)
	tt.MustEqual(MinI7, c)
	tt.MustEqual(MinI7.Hash(), c.Hash())

	seen := map[uint64]U9{}
	for v := int64(0); v <= MaxU9.Int64(); v++ {
		u := fromInt64[U9](v)
		h := u.Hash()
		prev, ok := seen[h]
		tt.MustAssert(!ok, "hash collision between %s and %s", prev, u)
		seen[h] = u
	}

	keys := map[I7]int{}
	keys[MaxI7.WrappingAdd(NewI7(1))]++
	keys[MinI7]++
	tt.MustEqual(2, keys[MinI7])
}

func TestRshEveryAmountType(t *testing.T) {
	tt := assert.WrapTB(t)
	x, four := NewU5(8), NewU5(4)
	tt.MustEqual(four, x.Rsh(1))
	tt.MustEqual(four, Rsh(x, 1))
	tt.MustEqual(four, Rsh(x, uint(1)))
	tt.MustEqual(four, Rsh(x, uint8(1)))
	tt.MustEqual(four, Rsh(x, uint16(1)))
	tt.MustEqual(four, Rsh(x, uint32(1)))
	tt.MustEqual(four, Rsh(x, uint64(1)))
	tt.MustEqual(four, Rsh(x, uintptr(1)))
	tt.MustEqual(four, Rsh(x, int(1)))
	tt.MustEqual(four, Rsh(x, int8(1)))
	tt.MustEqual(four, Rsh(x, int16(1)))
	tt.MustEqual(four, Rsh(x, int32(1)))
	tt.MustEqual(four, Rsh(x, int64(1)))

	tt.MustEqual(NewU5(1), Rsh(MaxU5, 4))
	tt.MustEqual(NewI7(-1), Rsh(NewI7(-1), 5))
	tt.MustEqual(NewI7(-2), Rsh(MinI7, 5))
	tt.MustEqual(NewI9(-1), Rsh(NewI9(-1), 100))
	tt.MustEqual(MinU63, Rsh(MaxU63, uint64(1<<40)))
}

func TestLshEveryAmountType(t *testing.T) {
	tt := assert.WrapTB(t)

	// 16<<1 is 32, which does not fit in 5 bits.
	x := NewU5(16)
	tt.MustEqual(MinU5, x.Lsh(1))
	tt.MustEqual(MinU5, Lsh(x, 1))
	tt.MustEqual(MinU5, Lsh(x, uint(1)))
	tt.MustEqual(MinU5, Lsh(x, uint8(1)))
	tt.MustEqual(MinU5, Lsh(x, uint16(1)))
	tt.MustEqual(MinU5, Lsh(x, uint32(1)))
	tt.MustEqual(MinU5, Lsh(x, uint64(1)))
	tt.MustEqual(MinU5, Lsh(x, int(1)))
	tt.MustEqual(MinU5, Lsh(x, int8(1)))
	tt.MustEqual(MinU5, Lsh(x, int16(1)))
	tt.MustEqual(MinU5, Lsh(x, int32(1)))
	tt.MustEqual(MinU5, Lsh(x, int64(1)))

	eight := NewU5(8)
	tt.MustEqual(NewU5(16), Lsh(eight, 1))
	tt.MustEqual(NewU5(16), Lsh(MaxU5, 4))

	tt.MustEqual(NewI5(0), Lsh(NewI5(-16), 1))
	tt.MustEqual(NewI7(8), Lsh(NewI7(1), 3))
	tt.MustEqual(MinI7, Lsh(NewI7(1), 6))
	tt.MustEqual(NewI7(-2), Lsh(NewI7(-1), 1))
	tt.MustEqual(MinU63, Lsh(MaxU63, 200))
}

func TestLshIsCanonical(t *testing.T) {
	tt := assert.WrapTB(t)

	// A left shift never leaves stale bits in the padding: the stored value
	// is the canonical one straight away, not only after a comparison.
	v := Lsh(MaxU5, 4)
	tt.MustEqual(uint8(16), v.v)
	tt.MustEqual(uint8(16), v.Uint8())
	tt.MustEqual("16", v.String())
	tt.MustEqual("10000", fmt.Sprintf("%b", v))

	s := Lsh(NewI5(15), 1) // 0b11110 -> -2
	tt.MustEqual(int8(-2), s.v)
	tt.MustEqual("11110", fmt.Sprintf("%b", s))

	p := NewI5(15)
	p.LshAssign(1)
	tt.MustEqual(s, p)
}

func TestNegativeShiftPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	err := mustPanic(tt, func() { Lsh(NewU5(1), -1) })
	tt.MustAssert(Error.Has(err))
	err = mustPanic(tt, func() { RshAssign(new(I9), int8(-3)) })
	tt.MustAssert(Error.Has(err))
}

func TestRshAssign(t *testing.T) {
	tt := assert.WrapTB(t)
	x := NewU10(512)
	RshAssign(&x, uint(1))
	tt.MustEqual(NewU10(256), x)
	RshAssign(&x, int(1))
	tt.MustEqual(NewU10(128), x)
	RshAssign(&x, uint8(1))
	tt.MustEqual(NewU10(64), x)
	RshAssign(&x, int8(1))
	tt.MustEqual(NewU10(32), x)
	RshAssign(&x, uint64(2))
	tt.MustEqual(NewU10(8), x)
	RshAssign(&x, int32(3))
	tt.MustEqual(NewU10(1), x)
	x.RshAssign(1)
	tt.MustEqual(MinU10, x)
}

func TestLshAssign(t *testing.T) {
	tt := assert.WrapTB(t)
	x := NewU9(1)
	LshAssign(&x, int32(3))
	tt.MustEqual(NewU9(8), x)
	LshAssign(&x, uint64(2))
	tt.MustEqual(NewU9(32), x)
	LshAssign(&x, uint(1))
	tt.MustEqual(NewU9(64), x)
	LshAssign(&x, int(1))
	tt.MustEqual(NewU9(128), x)
	LshAssign(&x, uint8(1))
	tt.MustEqual(NewU9(256), x)
	x.LshAssign(1)
	tt.MustEqual(MinU9, x)
}

func TestShiftAssignEquivalence(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 1000; i++ {
		x := Rand[I13](rng)
		y := x
		for j := 0; j < 8; j++ {
			n := rng.Intn(15)
			left := rng.Intn(2) == 0
			switch rng.Intn(4) {
			case 0:
				if left {
					LshAssign(&x, int8(n))
				} else {
					RshAssign(&x, int8(n))
				}
			case 1:
				if left {
					LshAssign(&x, uint16(n))
				} else {
					RshAssign(&x, uint16(n))
				}
			case 2:
				if left {
					x.LshAssign(uint(n))
				} else {
					x.RshAssign(uint(n))
				}
			default:
				if left {
					LshAssign(&x, int64(n))
				} else {
					RshAssign(&x, int64(n))
				}
			}
			if left {
				y = y.Lsh(uint(n))
			} else {
				y = y.Rsh(uint(n))
			}
			tt.MustEqual(y, x)
		}
	}
}

func TestOr(t *testing.T) {
	tt := assert.WrapTB(t)
	a, b := NewU9(1), NewU9(8)
	pa, pb := &a, &b
	nine := NewU9(9)
	tt.MustEqual(nine, a.Or(b))
	tt.MustEqual(nine, pa.Or(b))
	tt.MustEqual(nine, a.Or(*pb))
	tt.MustEqual(nine, pa.Or(*pb))

	// The sign bit of the result can come from either operand.
	tt.MustEqual(NewI5(-1), NewI5(-16).Or(NewI5(15)))
	tt.MustEqual(NewI5(-13), NewI5(3).Or(NewI5(-16)))
}

func TestOrAssign(t *testing.T) {
	tt := assert.WrapTB(t)
	x := NewU12(4)
	x.OrAssign(NewU12(1))
	tt.MustEqual(NewU12(5), x)
	x.OrAssign(NewU12(128))
	tt.MustEqual(NewU12(133), x)
	x = NewU12(1)
	x.OrAssign(NewU12(127))
	tt.MustEqual(NewU12(127), x)
}

func TestGenericOps(t *testing.T) {
	tt := assert.WrapTB(t)

	sum := func(vs ...I6) (out I6) {
		for _, v := range vs {
			out = out.WrappingAdd(v)
		}
		return out
	}
	tt.MustEqual(NewI6(-32), sum(NewI6(31), NewI6(1)))

	var ints []Integer
	ints = append(ints, NewU5(3), NewI17(-3), MaxU63)
	tt.MustEqual("3 -3 9223372036854775807", fmt.Sprint(ints[0], " ", ints[1], " ", ints[2]))
}
