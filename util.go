package ux

// RandSource is satisfied by *math/rand.Rand and *math/rand/v2.Rand.
type RandSource interface {
	Uint64() uint64
}

// Rand returns a uniformly distributed value of T from an external source.
//
//	v := ux.Rand[ux.I13](rand.New(rand.NewSource(1)))
func Rand[T any, PT settable[T]](source RandSource) T {
	var out T
	p := PT(&out)
	bits := p.Bits()
	raw := source.Uint64() & (uint64(1)<<bits - 1)
	if p.Signed() {
		p.setInt64(maskSigned(int64(raw), bits))
	} else {
		p.setInt64(int64(raw))
	}
	return out
}

// Larger returns the larger of a and b.
func Larger[T Ops[T]](a, b T) T {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

// Smaller returns the smaller of a and b.
func Smaller[T Ops[T]](a, b T) T {
	if b.LessThan(a) {
		return b
	}
	return a
}
