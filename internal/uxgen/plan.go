package main

import "fmt"

// file is one generated source file: every width of one signedness that
// shares a backing type.
type file struct {
	Name    string
	Package string
	Types   []integer
}

// integer describes one generated type.
type integer struct {
	Name    string // U5, I17
	Bits    uint
	Signed  bool
	Backing string // uint8, int32

	// Kind selects the generic helpers: maskSigned, parseUnsigned, ...
	Kind string

	// ParseFunc names the strconv function that ParseXX mirrors.
	ParseFunc string

	// Desc completes "U5 is ... 5-bit integer".
	Desc string

	Min, Max string // composite literals for MinXX and MaxXX

	FormatArgs string

	Natives []native // lossless conversions to native types
	Froms   []native // lossless constructors from native types
}

// native is a lossless conversion between a generated type and a native
// integer type.
type native struct {
	Owner   string // generated type
	Backing string // backing type of Owner
	Native  string // uint8, int64
	Func    string // Uint8, or U9FromUint8 for constructors
}

type nativeType struct {
	name   string
	method string
	bits   uint
	signed bool
}

var nativeTypes = []nativeType{
	{"uint8", "Uint8", 8, false},
	{"uint16", "Uint16", 16, false},
	{"uint32", "Uint32", 32, false},
	{"uint64", "Uint64", 64, false},
	{"int8", "Int8", 8, true},
	{"int16", "Int16", 16, true},
	{"int32", "Int32", 32, true},
	{"int64", "Int64", 64, true},
}

// backingWidths lists each native width and the logical widths it backs.
var backingWidths = []struct {
	bits     uint
	from, to uint
}{
	{8, 2, 7},
	{16, 9, 15},
	{32, 17, 31},
	{64, 33, 63},
}

func plan(pkg string) []file {
	var files []file
	for _, signed := range []bool{false, true} {
		for _, bw := range backingWidths {
			f := file{Package: pkg}
			prefix := "u"
			if signed {
				prefix = "i"
			}
			f.Name = fmt.Sprintf("%s%d_gen.go", prefix, bw.bits)
			for bits := bw.from; bits <= bw.to; bits++ {
				f.Types = append(f.Types, newInteger(bits, signed, bw.bits))
			}
			files = append(files, f)
		}
	}
	return files
}

func newInteger(bits uint, signed bool, backingBits uint) integer {
	it := integer{Bits: bits, Signed: signed}
	if signed {
		it.Name = fmt.Sprintf("I%d", bits)
		it.Backing = fmt.Sprintf("int%d", backingBits)
		it.Kind = "Signed"
		it.ParseFunc = "ParseInt"
		it.Desc = "a signed"
		it.Min = fmt.Sprintf("%s{v: -1 << %d}", it.Name, bits-1)
		it.Max = fmt.Sprintf("%s{v: 1<<%d - 1}", it.Name, bits-1)
		it.FormatArgs = fmt.Sprintf("u.v, %d", bits)
	} else {
		it.Name = fmt.Sprintf("U%d", bits)
		it.Backing = fmt.Sprintf("uint%d", backingBits)
		it.Kind = "Unsigned"
		it.ParseFunc = "ParseUint"
		it.Desc = "an unsigned"
		it.Min = fmt.Sprintf("%s{}", it.Name)
		it.Max = fmt.Sprintf("%s{v: 1<<%d - 1}", it.Name, bits)
		it.FormatArgs = "u.v"
	}

	for _, nt := range nativeTypes {
		if holds(nt.bits, nt.signed, bits, signed) {
			it.Natives = append(it.Natives, native{
				Owner: it.Name, Backing: it.Backing, Native: nt.name, Func: nt.method,
			})
		}
		if holds(bits, signed, nt.bits, nt.signed) {
			it.Froms = append(it.Froms, native{
				Owner: it.Name, Backing: it.Backing, Native: nt.name, Func: it.Name + "From" + nt.method,
			})
		}
	}
	return it
}

// holds reports whether an integer of dstBits/dstSigned can represent every
// value of an integer of srcBits/srcSigned.
func holds(dstBits uint, dstSigned bool, srcBits uint, srcSigned bool) bool {
	switch {
	case dstSigned == srcSigned:
		return dstBits >= srcBits
	case dstSigned:
		return dstBits > srcBits
	default:
		return false
	}
}
