package ux

// Integer is implemented by every integer type in this package.
type Integer interface {
	// Bits returns the logical width of the type.
	Bits() uint

	// Signed reports whether the type is a two's complement signed integer.
	Signed() bool

	// Int64 returns the value as an int64. Every supported width fits, so
	// this never loses information.
	Int64() int64

	String() string
}

// Ops is the operator set shared by every integer type in this package,
// expressed over the type itself so it can be used as a constraint:
//
//	func Sum[T ux.Ops[T]](vs ...T) (out T) {
//		for _, v := range vs {
//			out = out.WrappingAdd(v)
//		}
//		return out
//	}
type Ops[T any] interface {
	Integer
	Shifter[T]

	MinValue() T
	MaxValue() T

	WrappingAdd(n T) T
	WrappingSub(n T) T
	Add(n T) T
	Sub(n T) T

	Cmp(n T) int
	Equal(n T) bool
	LessThan(n T) bool
	LessOrEqualTo(n T) bool
	GreaterThan(n T) bool
	GreaterOrEqualTo(n T) bool

	Or(n T) T
	Hash() uint64
}

// settable is the pointer type of an integer in this package. setInt64
// stores v without a range check; callers guarantee v fits.
type settable[T any] interface {
	*T
	Integer
	setInt64(v int64)
}

// Widen converts v to the integer type To without loss:
//
//	u9 := ux.Widen[ux.U9](ux.NewU5(17))
//	i6 := ux.Widen[ux.I6](ux.NewU5(31))
//
// The conversion is defined when every value of From is a value of To: both
// types have the same signedness and To is at least as wide, or From is
// unsigned and To is signed and strictly wider. Widen panics for any other
// pair; like an impossible conversion between native types, that is a
// programming error rather than something to handle at run time. Narrowing
// is not provided.
func Widen[To any, PTo settable[To], From Integer](v From) To {
	var out To
	dst := PTo(&out)
	if !lossless(v, dst) {
		panic(Error.New("no lossless conversion from %s to %s", typeName(v), typeName(dst)))
	}
	dst.setInt64(v.Int64())
	return out
}

// CanWiden reports whether Widen can convert values of from's type to to's
// type.
func CanWiden(from, to Integer) bool { return lossless(from, to) }

func lossless(from, to Integer) bool {
	fb, tb := from.Bits(), to.Bits()
	switch {
	case from.Signed() == to.Signed():
		return tb >= fb
	case !from.Signed():
		return tb > fb
	default:
		return false
	}
}

func typeName(v Integer) string {
	if v.Signed() {
		return "I" + formatInt(int64(v.Bits()))
	}
	return "U" + formatInt(int64(v.Bits()))
}
