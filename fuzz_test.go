package ux

import (
	"fmt"
	"math/big"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

type fuzzOp string
type fuzzType string

// This is the equivalent of passing -ux.fuzziter=1000 to 'go test'. Every op
// runs this many times for each type.
const fuzzDefaultIterations = 1000

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-ux.fuzzop=add -ux.fuzzop=sub', or you can
// use the short form '-ux.fuzzop=add,sub,lsh'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAdd              fuzzOp = "add"
	fuzzCmp              fuzzOp = "cmp"
	fuzzEqual            fuzzOp = "equal"
	fuzzGreaterOrEqualTo fuzzOp = "gte"
	fuzzGreaterThan      fuzzOp = "gt"
	fuzzHash             fuzzOp = "hash"
	fuzzLessOrEqualTo    fuzzOp = "lte"
	fuzzLessThan         fuzzOp = "lt"
	fuzzLsh              fuzzOp = "lsh"
	fuzzOr               fuzzOp = "or"
	fuzzParse            fuzzOp = "parse"
	fuzzRsh              fuzzOp = "rsh"
	fuzzString           fuzzOp = "string"
	fuzzSub              fuzzOp = "sub"
)

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAdd,
	fuzzCmp,
	fuzzEqual,
	fuzzGreaterOrEqualTo,
	fuzzGreaterThan,
	fuzzHash,
	fuzzLessOrEqualTo,
	fuzzLessThan,
	fuzzLsh,
	fuzzOr,
	fuzzParse,
	fuzzRsh,
	fuzzString,
	fuzzSub,
}

// fuzzTypes holds every type that can be passed to -ux.fuzztype.
var fuzzTypes = map[fuzzType]func(source *rando) fuzzOps{
	"u2":  newFuzzInt[U2],
	"u3":  newFuzzInt[U3],
	"u4":  newFuzzInt[U4],
	"u5":  newFuzzInt[U5],
	"u6":  newFuzzInt[U6],
	"u7":  newFuzzInt[U7],
	"u9":  newFuzzInt[U9],
	"u10": newFuzzInt[U10],
	"u11": newFuzzInt[U11],
	"u12": newFuzzInt[U12],
	"u13": newFuzzInt[U13],
	"u14": newFuzzInt[U14],
	"u15": newFuzzInt[U15],
	"u17": newFuzzInt[U17],
	"u18": newFuzzInt[U18],
	"u19": newFuzzInt[U19],
	"u20": newFuzzInt[U20],
	"u21": newFuzzInt[U21],
	"u22": newFuzzInt[U22],
	"u23": newFuzzInt[U23],
	"u24": newFuzzInt[U24],
	"u25": newFuzzInt[U25],
	"u26": newFuzzInt[U26],
	"u27": newFuzzInt[U27],
	"u28": newFuzzInt[U28],
	"u29": newFuzzInt[U29],
	"u30": newFuzzInt[U30],
	"u31": newFuzzInt[U31],
	"u33": newFuzzInt[U33],
	"u34": newFuzzInt[U34],
	"u35": newFuzzInt[U35],
	"u36": newFuzzInt[U36],
	"u37": newFuzzInt[U37],
	"u38": newFuzzInt[U38],
	"u39": newFuzzInt[U39],
	"u40": newFuzzInt[U40],
	"u41": newFuzzInt[U41],
	"u42": newFuzzInt[U42],
	"u43": newFuzzInt[U43],
	"u44": newFuzzInt[U44],
	"u45": newFuzzInt[U45],
	"u46": newFuzzInt[U46],
	"u47": newFuzzInt[U47],
	"u48": newFuzzInt[U48],
	"u49": newFuzzInt[U49],
	"u50": newFuzzInt[U50],
	"u51": newFuzzInt[U51],
	"u52": newFuzzInt[U52],
	"u53": newFuzzInt[U53],
	"u54": newFuzzInt[U54],
	"u55": newFuzzInt[U55],
	"u56": newFuzzInt[U56],
	"u57": newFuzzInt[U57],
	"u58": newFuzzInt[U58],
	"u59": newFuzzInt[U59],
	"u60": newFuzzInt[U60],
	"u61": newFuzzInt[U61],
	"u62": newFuzzInt[U62],
	"u63": newFuzzInt[U63],
	"i2":  newFuzzInt[I2],
	"i3":  newFuzzInt[I3],
	"i4":  newFuzzInt[I4],
	"i5":  newFuzzInt[I5],
	"i6":  newFuzzInt[I6],
	"i7":  newFuzzInt[I7],
	"i9":  newFuzzInt[I9],
	"i10": newFuzzInt[I10],
	"i11": newFuzzInt[I11],
	"i12": newFuzzInt[I12],
	"i13": newFuzzInt[I13],
	"i14": newFuzzInt[I14],
	"i15": newFuzzInt[I15],
	"i17": newFuzzInt[I17],
	"i18": newFuzzInt[I18],
	"i19": newFuzzInt[I19],
	"i20": newFuzzInt[I20],
	"i21": newFuzzInt[I21],
	"i22": newFuzzInt[I22],
	"i23": newFuzzInt[I23],
	"i24": newFuzzInt[I24],
	"i25": newFuzzInt[I25],
	"i26": newFuzzInt[I26],
	"i27": newFuzzInt[I27],
	"i28": newFuzzInt[I28],
	"i29": newFuzzInt[I29],
	"i30": newFuzzInt[I30],
	"i31": newFuzzInt[I31],
	"i33": newFuzzInt[I33],
	"i34": newFuzzInt[I34],
	"i35": newFuzzInt[I35],
	"i36": newFuzzInt[I36],
	"i37": newFuzzInt[I37],
	"i38": newFuzzInt[I38],
	"i39": newFuzzInt[I39],
	"i40": newFuzzInt[I40],
	"i41": newFuzzInt[I41],
	"i42": newFuzzInt[I42],
	"i43": newFuzzInt[I43],
	"i44": newFuzzInt[I44],
	"i45": newFuzzInt[I45],
	"i46": newFuzzInt[I46],
	"i47": newFuzzInt[I47],
	"i48": newFuzzInt[I48],
	"i49": newFuzzInt[I49],
	"i50": newFuzzInt[I50],
	"i51": newFuzzInt[I51],
	"i52": newFuzzInt[I52],
	"i53": newFuzzInt[I53],
	"i54": newFuzzInt[I54],
	"i55": newFuzzInt[I55],
	"i56": newFuzzInt[I56],
	"i57": newFuzzInt[I57],
	"i58": newFuzzInt[I58],
	"i59": newFuzzInt[I59],
	"i60": newFuzzInt[I60],
	"i61": newFuzzInt[I61],
	"i62": newFuzzInt[I62],
	"i63": newFuzzInt[I63],
}

func allFuzzTypes() (out []fuzzType) {
	for k := range fuzzTypes {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NEWOP: update this interface if a new op is added.
type fuzzOps interface {
	Name() string // Not an op

	Add() error
	Cmp() error
	Equal() error
	GreaterOrEqualTo() error
	GreaterThan() error
	Hash() error
	LessOrEqualTo() error
	LessThan() error
	Lsh() error
	Or() error
	Parse() error
	Rsh() error
	String() error
	Sub() error
}

// classic rando!
type rando struct {
	operands []*big.Int
	rng      *rand.Rand
}

func (r *rando) Operands() []*big.Int { return r.operands }

func (r *rando) Clear() {
	for i := range r.operands {
		r.operands[i] = nil
	}
	r.operands = r.operands[:0]
}

func (r *rando) Uintn(n int) uint {
	v := uint(r.rng.Intn(n))
	r.operands = append(r.operands, new(big.Int).SetUint64(uint64(v)))
	return v
}

// samesies returns the number of arguments up to n - 1 that should be the same
// for this request. Only used for randos that are 'x2', 'x3', etc.
//
// The chance of two random 60-bit operands being the same is too small to
// exercise the equality branches otherwise.
func (r *rando) samesies(n int) int {
	const samesiesChance = 0.03
	if r.rng.Float64() < samesiesChance {
		return r.rng.Intn(n)
	}
	return 0
}

// Big returns a random value in [lo, hi]. Bit lengths are evenly
// distributed so small values turn up as often as large ones, and the bounds
// themselves are picked now and then.
func (r *rando) Big(lo, hi *big.Int) *big.Int {
	var v *big.Int
	switch r.rng.Intn(16) {
	case 0:
		v = new(big.Int).Set(lo)
	case 1:
		v = new(big.Int).Set(hi)
	default:
		limit := hi
		neg := lo.Sign() < 0 && r.rng.Intn(2) == 1
		if neg {
			limit = new(big.Int).Neg(lo)
		}
		bits := r.rng.Intn(limit.BitLen() + 1)
		v = new(big.Int).Rand(r.rng, new(big.Int).Lsh(big1, uint(bits)))
		if v.Cmp(limit) > 0 {
			v.Set(limit)
		}
		if neg {
			v.Neg(v)
		}
	}
	r.operands = append(r.operands, v)
	return v
}

func (r *rando) Bigx2(lo, hi *big.Int) (b1, b2 *big.Int) {
	b1 = r.Big(lo, hi)
	if r.samesies(2) > 0 {
		b2 = new(big.Int).Set(b1)
		r.operands = append(r.operands, b2)
	} else {
		b2 = r.Big(lo, hi)
	}
	return b1, b2
}

var big1 = big.NewInt(1)

// fuzzPtr is satisfied by the pointer type of every integer in this package.
type fuzzPtr[T any] interface {
	settable[T]
	UnmarshalText(bts []byte) error
}

// fuzzable is Ops with ==, which the equal op checks against Equal.
type fuzzable[T any] interface {
	comparable
	Ops[T]
}

type fuzzInt[T fuzzable[T], PT fuzzPtr[T]] struct {
	source *rando
	lo, hi *big.Int
	wrap   *big.Int
}

func newFuzzInt[T fuzzable[T], PT fuzzPtr[T]](source *rando) fuzzOps {
	var zero T
	return &fuzzInt[T, PT]{
		source: source,
		lo:     big.NewInt(zero.MinValue().Int64()),
		hi:     big.NewInt(zero.MaxValue().Int64()),
		wrap:   new(big.Int).Lsh(big1, zero.Bits()),
	}
}

func (f *fuzzInt[T, PT]) Name() string {
	var zero T
	return typeName(zero)
}

func (f *fuzzInt[T, PT]) from(b *big.Int) T {
	if !b.IsInt64() || b.Cmp(f.lo) < 0 || b.Cmp(f.hi) > 0 {
		panic(fmt.Errorf("ux: %s out of range for %s in fuzz tester", b, f.Name()))
	}
	var out T
	PT(&out).setInt64(b.Int64())
	return out
}

// simulateOverflow reduces b into [lo, hi] modulo 2^bits.
func (f *fuzzInt[T, PT]) simulateOverflow(b *big.Int) *big.Int {
	rb := new(big.Int).Sub(b, f.lo)
	rb.Mod(rb, f.wrap)
	return rb.Add(rb, f.lo)
}

func (f *fuzzInt[T, PT]) checkEqual(u T, b *big.Int) error {
	if u.String() != b.String() {
		return fmt.Errorf("%s(%s) != big(%s)", f.Name(), u.String(), b.String())
	}
	return nil
}

func (f *fuzzInt[T, PT]) Add() error {
	b1, b2 := f.source.Bigx2(f.lo, f.hi)
	u1, u2 := f.from(b1), f.from(b2)
	rb := f.simulateOverflow(new(big.Int).Add(b1, b2))
	if err := f.checkEqual(u1.WrappingAdd(u2), rb); err != nil {
		return err
	}
	return f.checkArith(rb, func() T { return u1.Add(u2) }, new(big.Int).Add(b1, b2))
}

func (f *fuzzInt[T, PT]) Sub() error {
	b1, b2 := f.source.Bigx2(f.lo, f.hi)
	u1, u2 := f.from(b1), f.from(b2)
	rb := f.simulateOverflow(new(big.Int).Sub(b1, b2))
	if err := f.checkEqual(u1.WrappingSub(u2), rb); err != nil {
		return err
	}
	return f.checkArith(rb, func() T { return u1.Sub(u2) }, new(big.Int).Sub(b1, b2))
}

// checkArith verifies the overflow policy of Add and Sub: with checks
// disabled they wrap, otherwise they panic exactly when the exact result
// leaves [lo, hi].
func (f *fuzzInt[T, PT]) checkArith(wrapped *big.Int, fn func() T, exact *big.Int) (err error) {
	overflows := exact.Cmp(f.lo) < 0 || exact.Cmp(f.hi) > 0
	if !overflowChecks || !overflows {
		return f.checkEqual(fn(), wrapped)
	}
	defer func() {
		if r := recover(); r == nil {
			err = fmt.Errorf("%s: expected overflow panic for result %s", f.Name(), exact)
		}
	}()
	fn()
	return nil
}

func (f *fuzzInt[T, PT]) Cmp() error {
	b1, b2 := f.source.Bigx2(f.lo, f.hi)
	return checkEqualInt(f.from(b1).Cmp(f.from(b2)), b1.Cmp(b2))
}

func (f *fuzzInt[T, PT]) Equal() error {
	b1, b2 := f.source.Bigx2(f.lo, f.hi)
	u1, u2 := f.from(b1), f.from(b2)
	if err := checkEqualBool(u1 == u2, b1.Cmp(b2) == 0); err != nil {
		return err
	}
	return checkEqualBool(u1.Equal(u2), b1.Cmp(b2) == 0)
}

func (f *fuzzInt[T, PT]) GreaterThan() error {
	b1, b2 := f.source.Bigx2(f.lo, f.hi)
	return checkEqualBool(f.from(b1).GreaterThan(f.from(b2)), b1.Cmp(b2) > 0)
}

func (f *fuzzInt[T, PT]) GreaterOrEqualTo() error {
	b1, b2 := f.source.Bigx2(f.lo, f.hi)
	return checkEqualBool(f.from(b1).GreaterOrEqualTo(f.from(b2)), b1.Cmp(b2) >= 0)
}

func (f *fuzzInt[T, PT]) LessThan() error {
	b1, b2 := f.source.Bigx2(f.lo, f.hi)
	return checkEqualBool(f.from(b1).LessThan(f.from(b2)), b1.Cmp(b2) < 0)
}

func (f *fuzzInt[T, PT]) LessOrEqualTo() error {
	b1, b2 := f.source.Bigx2(f.lo, f.hi)
	return checkEqualBool(f.from(b1).LessOrEqualTo(f.from(b2)), b1.Cmp(b2) <= 0)
}

func (f *fuzzInt[T, PT]) Hash() error {
	b1, b2 := f.source.Bigx2(f.lo, f.hi)
	u1, u2 := f.from(b1), f.from(b2)
	if b1.Cmp(b2) == 0 {
		return checkEqualBool(u1.Hash() == u2.Hash(), true)
	}
	return nil
}

func (f *fuzzInt[T, PT]) Lsh() error {
	b1 := f.source.Big(f.lo, f.hi)
	var zero T
	by := f.source.Uintn(int(zero.Bits()) + 2)
	rb := f.simulateOverflow(new(big.Int).Lsh(b1, by))
	return f.checkEqual(Lsh(f.from(b1), by), rb)
}

func (f *fuzzInt[T, PT]) Rsh() error {
	b1 := f.source.Big(f.lo, f.hi)
	var zero T
	by := f.source.Uintn(int(zero.Bits()) + 2)
	rb := new(big.Int).Rsh(b1, by)
	return f.checkEqual(Rsh(f.from(b1), by), rb)
}

func (f *fuzzInt[T, PT]) Or() error {
	b1, b2 := f.source.Bigx2(f.lo, f.hi)
	rb := new(big.Int).Or(b1, b2)
	return f.checkEqual(f.from(b1).Or(f.from(b2)), rb)
}

func (f *fuzzInt[T, PT]) String() error {
	b1 := f.source.Big(f.lo, f.hi)
	return checkEqualString(f.from(b1), b1)
}

func (f *fuzzInt[T, PT]) Parse() error {
	b1 := f.source.Big(f.lo, f.hi)
	var u T
	if err := PT(&u).UnmarshalText([]byte(b1.String())); err != nil {
		return err
	}
	if err := f.checkEqual(u, b1); err != nil {
		return err
	}

	// One past either end must be rejected without touching the target.
	over := new(big.Int).Add(f.hi, big1)
	if err := PT(&u).UnmarshalText([]byte(over.String())); err == nil {
		return fmt.Errorf("%s: parsed out of range value %s", f.Name(), over)
	}
	under := new(big.Int).Sub(f.lo, big1)
	if err := PT(&u).UnmarshalText([]byte(under.String())); err == nil {
		return fmt.Errorf("%s: parsed out of range value %s", f.Name(), under)
	}
	return f.checkEqual(u, b1)
}

func checkEqualInt(u int, b int) error {
	if u != b {
		return fmt.Errorf("ux(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualBool(u bool, b bool) error {
	if u != b {
		return fmt.Errorf("ux(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualString(u fmt.Stringer, b fmt.Stringer) error {
	if u.String() != b.String() {
		return fmt.Errorf("ux(%s) != big(%s)", u.String(), b.String())
	}
	return nil
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -ux.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	// fuzzTypesActive comes from the -ux.fuzztype flag, in TestMain:
	var runFuzzTypes = fuzzTypesActive

	var source = &rando{rng: globalRNG} // Classic rando!
	var totalFailures int

	var impls []fuzzOps
	for _, fuzzType := range runFuzzTypes {
		ctor, ok := fuzzTypes[fuzzType]
		if !ok {
			panic(fmt.Errorf("unknown fuzz type %q", fuzzType))
		}
		impls = append(impls, ctor(source))
	}

	for _, fuzzImpl := range impls {
		var failures = make([]int, len(runFuzzOps))

		for opIdx, op := range runFuzzOps {
			for i := 0; i < fuzzIterations; i++ {
				source.Clear()

				var err error

				// NEWOP: add a new branch here in alphabetical order if a new
				// op is added.
				switch op {
				case fuzzAdd:
					err = fuzzImpl.Add()
				case fuzzCmp:
					err = fuzzImpl.Cmp()
				case fuzzEqual:
					err = fuzzImpl.Equal()
				case fuzzGreaterOrEqualTo:
					err = fuzzImpl.GreaterOrEqualTo()
				case fuzzGreaterThan:
					err = fuzzImpl.GreaterThan()
				case fuzzHash:
					err = fuzzImpl.Hash()
				case fuzzLessOrEqualTo:
					err = fuzzImpl.LessOrEqualTo()
				case fuzzLessThan:
					err = fuzzImpl.LessThan()
				case fuzzLsh:
					err = fuzzImpl.Lsh()
				case fuzzOr:
					err = fuzzImpl.Or()
				case fuzzParse:
					err = fuzzImpl.Parse()
				case fuzzRsh:
					err = fuzzImpl.Rsh()
				case fuzzString:
					err = fuzzImpl.String()
				case fuzzSub:
					err = fuzzImpl.Sub()
				default:
					panic(fmt.Errorf("unsupported op %q", op))
				}

				if err != nil {
					failures[opIdx]++
					t.Logf("%s %s: %s\n%s", fuzzImpl.Name(), op.Print(source.Operands()...), err,
						spew.Sdump(source.Operands()))
				}
			}
		}

		for opIdx, cnt := range failures {
			if cnt > 0 {
				totalFailures += cnt
				t.Logf("impl %s, op %s: %d/%d failed", fuzzImpl.Name(), string(runFuzzOps[opIdx]), cnt, fuzzIterations)
			}
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) Print(operands ...*big.Int) string {
	// NEWOP: please add a human-readale format for your op here; this is used
	// for reporting errors and should show the operation, i.e. "2 + 2".
	switch op {
	case fuzzString, fuzzParse, fuzzHash:
		s := strings.TrimRight(op.String(), "()")
		return fmt.Sprintf("%s(%d)", s, operands[0])

	case fuzzAdd,
		fuzzCmp,
		fuzzEqual,
		fuzzGreaterOrEqualTo,
		fuzzGreaterThan,
		fuzzLessOrEqualTo,
		fuzzLessThan,
		fuzzLsh,
		fuzzOr,
		fuzzRsh,
		fuzzSub:

		// simple binary case:
		return fmt.Sprintf("%d %s %d", operands[0], op.String(), operands[1])

	default:
		return string(op)
	}
}

func (op fuzzOp) String() string {
	// NEWOP: please add a short string representation of this op, as if
	// the operands were in a sum (if that's possible)
	switch op {
	case fuzzAdd:
		return "+"
	case fuzzCmp:
		return "<=>"
	case fuzzEqual:
		return "=="
	case fuzzGreaterThan:
		return ">"
	case fuzzGreaterOrEqualTo:
		return ">="
	case fuzzHash:
		return "hash()"
	case fuzzLessThan:
		return "<"
	case fuzzLessOrEqualTo:
		return "<="
	case fuzzLsh:
		return "<<"
	case fuzzOr:
		return "|"
	case fuzzParse:
		return "parse()"
	case fuzzRsh:
		return ">>"
	case fuzzString:
		return "string()"
	case fuzzSub:
		return "-"
	default:
		return string(op)
	}
}
