package bam

import (
	"math"
	"testing"
)

var benchSink int32

var benchSinkFloat float64

func BenchmarkSin(b *testing.B) {
	var acc int32
	a := uint16(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc += Sin(a)
		a += 37
	}
	benchSink = acc
}

func BenchmarkCos(b *testing.B) {
	var acc int32
	a := uint16(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc += Cos(a)
		a += 37
	}
	benchSink = acc
}

func BenchmarkSinCos(b *testing.B) {
	var acc int32
	a := uint16(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, c := SinCos(a)
		acc += s + c
		a += 37
	}
	benchSink = acc
}

func BenchmarkMathSinBaseline(b *testing.B) {
	var acc float64
	x := 0.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc += math.Sin(x)
		x += 0.0141
	}
	benchSinkFloat = acc
}
