package ux

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// tryArith calls fn and reports whether it panicked.
func tryArith[T any](fn func() T) (out T, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
		}
	}()
	return fn(), false
}

func TestArithUnsignedExhaustive(t *testing.T) {
	for bits := uint(2); bits < 8; bits++ {
		t.Run(fmt.Sprintf("u%d", bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			hi := int(maxUnsigned[uint8](bits))
			for a := 0; a <= hi; a++ {
				for b := 0; b <= hi; b++ {
					ua, ub := uint8(a), uint8(b)

					sum, panicked := tryArith(func() uint8 { return addUnsigned(ua, ub, bits, "U") })
					over := a+b > hi
					tt.MustEqual(overflowChecks && over, panicked, "%d + %d", a, b)
					if !panicked {
						tt.MustEqual(uint8(wrapInt64(int64(a+b), bits, false)), sum, "%d + %d", a, b)
					}

					diff, panicked := tryArith(func() uint8 { return subUnsigned(ua, ub, bits, "U") })
					over = a-b < 0
					tt.MustEqual(overflowChecks && over, panicked, "%d - %d", a, b)
					if !panicked {
						tt.MustEqual(uint8(wrapInt64(int64(a-b), bits, false)), diff, "%d - %d", a, b)
					}
				}
			}
		})
	}
}

func TestArithSignedExhaustive(t *testing.T) {
	for bits := uint(2); bits < 8; bits++ {
		t.Run(fmt.Sprintf("i%d", bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			lo, hi := int(minSigned[int8](bits)), int(maxSigned[int8](bits))
			for a := lo; a <= hi; a++ {
				for b := lo; b <= hi; b++ {
					ia, ib := int8(a), int8(b)

					sum, panicked := tryArith(func() int8 { return addSigned(ia, ib, bits, "I") })
					over := a+b < lo || a+b > hi
					tt.MustEqual(overflowChecks && over, panicked, "%d + %d", a, b)
					if !panicked {
						tt.MustEqual(int8(wrapInt64(int64(a+b), bits, true)), sum, "%d + %d", a, b)
					}

					diff, panicked := tryArith(func() int8 { return subSigned(ia, ib, bits, "I") })
					over = a-b < lo || a-b > hi
					tt.MustEqual(overflowChecks && over, panicked, "%d - %d", a, b)
					if !panicked {
						tt.MustEqual(int8(wrapInt64(int64(a-b), bits, true)), diff, "%d - %d", a, b)
					}
				}
			}
		})
	}
}

func TestArithWidestBacking(t *testing.T) {
	tt := assert.WrapTB(t)

	hi := maxUnsigned[uint64](63)
	sum, panicked := tryArith(func() uint64 { return addUnsigned(hi, hi, 63, "U63") })
	tt.MustEqual(overflowChecks, panicked)
	if !panicked {
		tt.MustEqual(hi-1, sum)
	}

	lo := minSigned[int64](63)
	diff, panicked := tryArith(func() int64 { return subSigned(lo, 1, 63, "I63") })
	tt.MustEqual(overflowChecks, panicked)
	if !panicked {
		tt.MustEqual(maxSigned[int64](63), diff)
	}
}
