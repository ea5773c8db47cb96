package ux

import (
	"math/big"
	"testing"
)

var (
	BenchBoolResult   bool
	BenchIntResult    int
	BenchStringResult string
	BenchU5Result     U5
	BenchI13Result    I13
	BenchU63Result    U63
	BenchUint64Result uint64
	BenchUint8Result  uint8

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917
	BenchUint81, BenchUint82   uint8  = 17, 29

	BenchU51, BenchU52   = NewU5(7), NewU5(12)
	BenchI131, BenchI132 = NewI13(-1234), NewI13(3456)
	BenchU631, BenchU632 = NewU63(12093749018), NewU63(18927348917)
)

func BenchmarkUint8Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint8Result = BenchUint81 + BenchUint82
	}
}

func BenchmarkUint64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 + BenchUint642
	}
}

func BenchmarkUint64Equal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = BenchUint641 == BenchUint642
	}
}

func BenchmarkU5WrappingAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU5Result = BenchU51.WrappingAdd(BenchU52)
	}
}

func BenchmarkU5Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU5Result = BenchU51.Add(BenchU52)
	}
}

func BenchmarkI13WrappingSub(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchI13Result = BenchI131.WrappingSub(BenchI132)
	}
}

func BenchmarkI13Lsh(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchI13Result = Lsh(BenchI131, 3)
	}
}

func BenchmarkI13Rsh(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchI13Result = Rsh(BenchI131, int8(3))
	}
}

func BenchmarkU63WrappingAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU63Result = BenchU631.WrappingAdd(BenchU632)
	}
}

func BenchmarkU63Equal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = BenchU631 == BenchU632
	}
}

func BenchmarkU63Cmp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult = BenchU631.Cmp(BenchU632)
	}
}

func BenchmarkU63Hash(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchU631.Hash()
	}
}

func BenchmarkU63String(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = BenchU631.String()
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	var max big.Int
	max.SetUint64(BenchUint641)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Add(&dest, &max)
	}
}

func BenchmarkBigIntCmpEqual(b *testing.B) {
	var v1, v2 big.Int
	v1.SetUint64(BenchUint641)
	v2.SetUint64(BenchUint641)

	for i := 0; i < b.N; i++ {
		BenchIntResult = v1.Cmp(&v2)
	}
}
