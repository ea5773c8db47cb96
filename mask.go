package ux

// unsigned is satisfied by the native types backing the unsigned widths.
type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// signed is satisfied by the native types backing the signed widths.
type signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// maskUnsigned returns the canonical form of v for an unsigned integer of
// the given width: every bit at or above position bits is cleared.
//
// bits must be less than the width of T.
func maskUnsigned[T unsigned](v T, bits uint) T {
	return v & (T(1)<<bits - 1)
}

// maskSigned returns the canonical form of v for a signed integer of the
// given width: bit (bits-1) is copied into every higher bit of T.
//
//	maskSigned(int8(0b0000_1000), 4) == int8(-8) // 0b1111_1000
//	maskSigned(int8(0b1100_0110), 4) == int8(6)  // 0b0000_0110
//
// bits must be less than the width of T.
func maskSigned[T signed](v T, bits uint) T {
	low := T(1)<<bits - 1 // still the low mask when 1<<bits lands on the sign bit
	if v&(T(1)<<(bits-1)) == 0 {
		return v & low
	}
	return v | ^low
}

func maxUnsigned[T unsigned](bits uint) T { return T(1)<<bits - 1 }
func maxSigned[T signed](bits uint) T     { return T(1)<<(bits-1) - 1 }
func minSigned[T signed](bits uint) T     { return -(T(1) << (bits - 1)) }

// mustFitUnsigned returns v unchanged if it lies within an unsigned
// integer of the given width. It panics otherwise: constructing a value
// that does not fit is a programming error, like an overflowing constant.
func mustFitUnsigned[T unsigned](v T, bits uint, name string) T {
	if hi := maxUnsigned[T](bits); v > hi {
		panic(Error.New("%s: %d out of range [0, %d]", name, v, hi))
	}
	return v
}

func mustFitSigned[T signed](v T, bits uint, name string) T {
	lo, hi := minSigned[T](bits), maxSigned[T](bits)
	if v < lo || v > hi {
		panic(Error.New("%s: %d out of range [%d, %d]", name, v, lo, hi))
	}
	return v
}
