package ux

// ShiftAmount is satisfied by every native integer type. Like Go's own shift
// operators, the package-level shift functions accept a count of any of
// them.
type ShiftAmount interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Shifter is implemented by every integer type in this package.
type Shifter[T any] interface {
	Lsh(n uint) T
	Rsh(n uint) T
}

// Lsh returns v << n. The result is canonical: bits shifted past the width
// of T are discarded.
func Lsh[T Shifter[T], S ShiftAmount](v T, n S) T { return v.Lsh(shiftCount(n)) }

// Rsh returns v >> n. Signed types shift arithmetically.
func Rsh[T Shifter[T], S ShiftAmount](v T, n S) T { return v.Rsh(shiftCount(n)) }

// LshAssign is the equivalent of '*p <<= n'.
func LshAssign[T Shifter[T], S ShiftAmount](p *T, n S) { *p = (*p).Lsh(shiftCount(n)) }

// RshAssign is the equivalent of '*p >>= n'.
func RshAssign[T Shifter[T], S ShiftAmount](p *T, n S) { *p = (*p).Rsh(shiftCount(n)) }

// shiftCount converts n to the uint taken by the Lsh and Rsh methods. A
// negative count panics, as it does for a native shift.
func shiftCount[S ShiftAmount](n S) uint {
	if n < 0 {
		panic(Error.New("negative shift amount %d", n))
	}
	if uint64(n) > nativeBits {
		// Every backing type is fully shifted out by now; clamping keeps
		// huge counts from wrapping when uint is 32 bits wide.
		return nativeBits
	}
	return uint(n)
}
