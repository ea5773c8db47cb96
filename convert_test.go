package ux

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestWiden(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(NewU9(17), Widen[U9](NewU5(17)))
	tt.MustEqual(NewU5(17), Widen[U5](NewU5(17)))
	tt.MustEqual(NewI6(31), Widen[I6](NewU5(31)))
	tt.MustEqual(NewI63(-16), Widen[I63](NewI5(-16)))
	tt.MustEqual(NewI63(1<<61-1), Widen[I63](MaxI62))
	tt.MustEqual(NewI63(-1<<61), Widen[I63](MinI62))
	tt.MustEqual(NewU63(1<<62-1), Widen[U63](MaxU62))
	tt.MustEqual(NewI33(1<<31-1), Widen[I33](MaxU31))
}

func TestWidenIllegal(t *testing.T) {
	for idx, fn := range []func(){
		func() { Widen[U5](NewU6(1)) },
		func() { Widen[I5](NewU5(1)) },
		func() { Widen[U9](NewI5(1)) },
		func() { Widen[U63](NewI2(0)) },
		func() { Widen[I62](MinI63) },
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			err := mustPanic(tt, fn)
			tt.MustAssert(Error.Has(err))
		})
	}
}

func TestCanWiden(t *testing.T) {
	for idx, tc := range []struct {
		from, to Integer
		ok       bool
	}{
		{U5{}, U5{}, true},
		{U5{}, U9{}, true},
		{U5{}, I6{}, true},
		{U5{}, I5{}, false},
		{U9{}, U5{}, false},
		{I5{}, I9{}, true},
		{I9{}, I5{}, false},
		{I5{}, U9{}, false},
		{I5{}, U63{}, false},
		{U62{}, I63{}, true},
		{U63{}, I63{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%s->%s", idx, typeName(tc.from), typeName(tc.to)), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.ok, CanWiden(tc.from, tc.to))
		})
	}
}

// Every widening that goes through an intermediate type is also legal
// directly.
func TestCanWidenTransitive(t *testing.T) {
	tt := assert.WrapTB(t)

	var all []Integer
	for bits := uint(2); bits < 64; bits++ {
		if bits == 8 || bits == 16 || bits == 32 {
			continue
		}
		all = append(all, widthOnly{bits, false}, widthOnly{bits, true})
	}

	for _, a := range all {
		for _, b := range all {
			if !CanWiden(a, b) {
				continue
			}
			for _, c := range all {
				if CanWiden(b, c) {
					tt.MustAssert(CanWiden(a, c), "%s -> %s -> %s", typeName(a), typeName(b), typeName(c))
				}
			}
		}
	}
}

type widthOnly struct {
	bits   uint
	signed bool
}

func (w widthOnly) Bits() uint     { return w.bits }
func (w widthOnly) Signed() bool   { return w.signed }
func (w widthOnly) Int64() int64   { return 0 }
func (w widthOnly) String() string { return typeName(w) }

func TestNativeRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	for v := 0; v <= int(MaxU9.Uint16()); v++ {
		x := NewU9(uint16(v))
		tt.MustEqual(x, NewU9(x.Uint16()))
		tt.MustEqual(uint32(v), x.Uint32())
		tt.MustEqual(int16(v), x.Int16())
	}

	for v := -64; v <= 63; v++ {
		x := NewI7(int8(v))
		tt.MustEqual(x, NewI7(x.Int8()))
		tt.MustEqual(int64(v), x.Int64())
		tt.MustEqual(int32(v), x.Int32())
	}

	tt.MustEqual(NewU9(200), U9FromUint8(200))
	tt.MustEqual(NewI9(-128), I9FromInt8(-128))
	tt.MustEqual(NewI9(255), I9FromUint8(255))
	tt.MustEqual(NewI17(-32768), I17FromInt16(-32768))
	tt.MustEqual(NewU33(1<<32-1), U33FromUint32(1<<32-1))
	tt.MustEqual(NewI63(-1<<31), I63FromInt32(-1<<31))
}

func TestRand(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := globalRNG

	var sawNeg, sawPos bool
	for i := 0; i < 1000; i++ {
		u := Rand[U13](rng)
		tt.MustAssert(u.LessOrEqualTo(MaxU13))
		tt.MustEqual(u, NewU13(u.Uint16()))

		s := Rand[I5](rng)
		tt.MustAssert(s.GreaterOrEqualTo(MinI5) && s.LessOrEqualTo(MaxI5))
		tt.MustEqual(s, NewI5(s.Int8()))
		sawNeg = sawNeg || s.LessThan(I5{})
		sawPos = sawPos || s.GreaterThan(I5{})

		w := Rand[I63](rng)
		tt.MustEqual(w, NewI63(w.Int64()))
	}
	tt.MustAssert(sawNeg && sawPos)
}
