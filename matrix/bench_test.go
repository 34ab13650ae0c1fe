// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the expression and multiply paths,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bla/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkF float64
	sinkE error
)

func benchPair(b *testing.B, n int) (*matrix.Matrix[float64], *matrix.Matrix[float64]) {
	b.Helper()
	a := mustMatrix[float64](b, n, n)
	c := mustMatrix[float64](b, n, n)
	fillRand(&a.View, 1337)
	fillRand(&c.View, 4242)

	return a, c
}

func BenchmarkSumScaleAssign(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(b, n)
			dst := mustMatrix[float64](b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := x.Add(y.Scale(2))
				if err != nil {
					b.Fatal(err)
				}
				sinkE = dst.Assign(s)
			}
			sinkM = dst
		})
	}
}

func BenchmarkMulBlocked(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(b, n)
			dst := mustMatrix[float64](b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = matrix.MulInto(&dst.View, &x.View, &y.View)
			}
			sinkM = dst
		})
	}
}

func BenchmarkMulBlockedParallel(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(b, n)
			dst := mustMatrix[float64](b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = matrix.MulInto(&dst.View, &x.View, &y.View, matrix.WithWorkers(0))
			}
			sinkM = dst
		})
	}
}

// BenchmarkMulNaive is the reference triple loop, for comparison only.
func BenchmarkMulNaive(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = naiveMul[float64](b, x, y)
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, _ := benchPair(b, n)
			for i := 0; i < n; i++ {
				x.Set(i, i, x.At(i, i)+float64(n))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, err := matrix.Inverse(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = inv
			}
		})
	}
}

func BenchmarkDotStrided(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, _ := benchPair(b, n)
			r0, err := x.Row(0)
			if err != nil {
				b.Fatal(err)
			}
			r1, err := x.Row(1)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF, sinkE = r0.Dot(r1)
			}
		})
	}
}
