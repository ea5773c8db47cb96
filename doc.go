/*
Package ux provides integer types of non-standard widths: U2-U7, U9-U15,
U17-U31 and U33-U63, and the signed I2-I7, I9-I15, I17-I31 and I33-I63.

Each type is stored in the smallest native integer that can hold it (a U5 in
a uint8, an I17 in an int32) and behaves like a native integer of its own
width: it wraps at its own boundary, shifts and ORs within its own width, and
compares, hashes and formats by its value.

The bits of the backing integer above the logical width are padding. They
are kept in canonical form at all times: zero for unsigned types, a copy of
the sign bit for signed types. Every operation re-establishes that form
before returning, so the built-in == and map keys agree with Equal and Hash.

Values are immutable; all operations return new values:

	x := ux.NewU5(30)
	fmt.Println(x.WrappingAdd(ux.NewU5(3))) // 1
	fmt.Println(ux.MaxI7.WrappingAdd(ux.NewI7(1)) == ux.MinI7) // true
	fmt.Printf("%#b\n", ux.NewI5(-3)) // 0b11101

Construction from a native value panics if the value does not fit, as an
overflowing constant would fail to compile:

	NewU5(v uint8) U5       // panics if v > 31
	U9FromUint8(v uint8) U9 // never panics
	ParseU5(s string, base int) (U5, error)

Conversions that cannot lose information are provided between every pair of
types where they exist, and to every native type wide enough:

	ux.Widen[ux.U9](ux.NewU5(17))  // U5 -> U9
	ux.Widen[ux.I6](ux.NewU5(31))  // U5 -> I6
	ux.NewU5(17).Uint8()           // U5 -> uint8
	ux.NewI9(-200).Int16()         // I9 -> int16

Shifts accept a count of any integer type through the package-level
functions, mirroring Go's shift operators:

	ux.Lsh(x, int8(2))
	ux.RshAssign(&x, uint64(1))

Binary, octal and hex verbs print a negative signed value as the two's
complement pattern of its own width, not of the backing integer: %x of
I5(-3) is "1d", where an int8 holding -3 would give "fd" as a bit pattern.

Add and Sub wrap like the native integers. Building with the ux_debug tag
turns an overflowing Add or Sub into a panic; WrappingAdd and WrappingSub
always wrap.

All types support the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package ux
