package rank_test

import (
	"fmt"
	"math"

	"github.com/quantfold/qstat/ndarr"
	"github.com/quantfold/qstat/rank"
)

// ExampleRanking demonstrates cross-sectional ranking of a single fiber
// with the default [-1,1] normalization: n distinct values come out as the
// evenly spaced set from -1 to 1, NaNs stay NaN.
func ExampleRanking() {
	x := ndarr.FromSlice([]float64{30, 10, 50, math.NaN(), 20, 40})

	r, _ := rank.Ranking(x, 0, nil)
	fmt.Println(r.Values())
	// Output:
	// [0 -1 1 NaN -0.5 0.5]
}

// ExampleLastRank demonstrates ranking only the last element: 2 is the
// second smallest of five values, so its [-1,1] rank is -0.5.
func ExampleLastRank() {
	x := ndarr.FromSlice([]float64{1, 3, 4, 5, 2})

	r, _ := rank.LastRank(x, 0, 0)
	v, _ := r.Float()
	fmt.Println(v)

	// With strong decay only the nearby elements matter, and among those
	// the last value is the smallest.
	r, _ = rank.LastRank(x, 0, 10)
	v, _ = r.Float()
	fmt.Printf("%.1f\n", v)
	// Output:
	// -0.5
	// -1.0
}

// ExampleQuantile demonstrates bucketing six values into terciles.
func ExampleQuantile() {
	x := ndarr.FromSlice([]float64{1, 2, 3, 4, 5, 6})

	y, _ := rank.Quantile(x, 3, 0)
	fmt.Println(y.Values())
	// Output:
	// [-1 -1 0 0 1 1]
}
