package window_test

import (
	"math"
	"testing"

	"github.com/quantfold/qstat/ndarr"
	"github.com/quantfold/qstat/window"
)

// benchArray builds an n-element fiber with every tenth element missing.
func benchArray(n int) *ndarr.Array {
	data := make([]float64, n)
	for i := range data {
		if i%10 == 9 {
			data[i] = math.NaN()

			continue
		}
		data[i] = float64(i % 97)
	}

	return ndarr.FromSlice(data)
}

// benchmarkMovSum runs MovSum with the given window over 100k elements.
// The prefix-sum construction should make the cost independent of the
// window length.
func benchmarkMovSum(b *testing.B, win int, norm bool) {
	x := benchArray(100_000)
	opts := window.DefaultOptions()
	opts.Norm = norm

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := window.MovSum(x, win, &opts); err != nil {
			b.Fatalf("MovSum failed: %v", err)
		}
	}
}

// BenchmarkMovSum_Window10 benchmarks a short window.
func BenchmarkMovSum_Window10(b *testing.B) { benchmarkMovSum(b, 10, false) }

// BenchmarkMovSum_Window1000 benchmarks a long window; the runtime should
// match the short-window case.
func BenchmarkMovSum_Window1000(b *testing.B) { benchmarkMovSum(b, 1_000, false) }

// BenchmarkMovSum_Normalized benchmarks the missing-data normalized mode.
func BenchmarkMovSum_Normalized(b *testing.B) { benchmarkMovSum(b, 100, true) }

// BenchmarkMovingRank_Window20 benchmarks the per-window LastRank loop.
func BenchmarkMovingRank_Window20(b *testing.B) {
	x := benchArray(10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := window.MovingRank(x, 20, 0); err != nil {
			b.Fatalf("MovingRank failed: %v", err)
		}
	}
}
