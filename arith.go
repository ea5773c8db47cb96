package ux

// The checked arithmetic below produces the same result as WrappingAdd and
// WrappingSub. When overflowChecks is enabled (build tag ux_debug) a result
// that needed wrapping panics instead.
//
// The backing type is always at least one bit wider than the logical width,
// so the native sum or difference of two canonical operands is exact for
// signed types, and exceeds the logical maximum (rather than wrapping back
// into range) for unsigned ones. Overflow is therefore exactly the case
// where the native result is not already canonical.

func addUnsigned[T unsigned](a, b T, bits uint, name string) T {
	raw := a + b
	out := maskUnsigned(raw, bits)
	if overflowChecks && raw != out {
		panic(Error.New("%s: %d + %d overflows", name, a, b))
	}
	return out
}

func subUnsigned[T unsigned](a, b T, bits uint, name string) T {
	raw := a - b
	out := maskUnsigned(raw, bits)
	if overflowChecks && raw != out {
		panic(Error.New("%s: %d - %d overflows", name, a, b))
	}
	return out
}

func addSigned[T signed](a, b T, bits uint, name string) T {
	raw := a + b
	out := maskSigned(raw, bits)
	if overflowChecks && raw != out {
		panic(Error.New("%s: %d + %d overflows", name, a, b))
	}
	return out
}

func subSigned[T signed](a, b T, bits uint, name string) T {
	raw := a - b
	out := maskSigned(raw, bits)
	if overflowChecks && raw != out {
		panic(Error.New("%s: %d - %d overflows", name, a, b))
	}
	return out
}
