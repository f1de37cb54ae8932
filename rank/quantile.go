package rank

import (
	"math"
	"sort"

	"github.com/quantfold/qstat/ndarr"
)

// Quantile converts the elements of each fiber along the axis into q
// rank-based buckets, then normalizes the bucket numbers to [-1, 1].
// Passing ndarr.NoAxis buckets the flattened array instead.
//
// Bucketing is by ordinal rank among the finite elements of the fiber;
// non-finite elements come out NaN. q must be at least 1 and at most the
// number of elements along the axis, else ErrQuantileCount. With q=1 the
// result is all zeros with NaN positions preserved.
//
// Example:
//
//	Quantile([1 2 3 4 5 6], q=3) → [-1 -1 0 0 1 1]
func Quantile(x *ndarr.Array, q int, axis int) (*ndarr.Array, error) {
	if q < 1 {
		return nil, ErrQuantileCount
	}
	if q == 1 {
		if axis != ndarr.NoAxis {
			if _, err := x.NormAxis(axis); err != nil {
				return nil, err
			}
		}
		vals := x.Values()
		for i, v := range vals {
			if !math.IsNaN(v) {
				vals[i] = 0
			}
		}

		return ndarr.FromData(vals, x.Shape()...)
	}

	if axis == ndarr.NoAxis {
		flat := ndarr.FromSlice(x.Values())
		y, err := Quantile(flat, q, 0)
		if err != nil {
			return nil, err
		}

		return ndarr.FromData(y.Values(), x.Shape()...)
	}

	it, err := x.Fibers(axis)
	if err != nil {
		return nil, err
	}
	if q > it.Len() {
		return nil, ErrQuantileCount
	}
	out, err := ndarr.NaNs(x.Shape()...)
	if err != nil {
		return nil, err
	}
	ot, _ := out.Fibers(axis)

	n := it.Len()
	buf := make([]float64, n)
	bins := make([]float64, n)
	bounds := make([]float64, q+1)
	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		quantile1D(buf, q, bins, bounds)
		// Normalize bucket numbers 1..q onto [-1, 1].
		for j, b := range bins {
			if !math.IsNaN(b) {
				bins[j] = 2 * ((b-1)/float64(q-1) - 0.5)
			}
		}
		ot.Scatter(k, bins)
	}

	return out, nil
}

// quantile1D assigns each finite element of buf a bucket number in 1..q by
// ordinal rank; non-finite elements get NaN. bounds is scratch of length
// q+1: bucket j covers ranks in (bounds[j-1], bounds[j]], with cut points
// at multiples of (nx-1)/q and the final bound at nx.
func quantile1D(buf []float64, q int, bins, bounds []float64) {
	fin := make([]int, 0, len(buf))
	for i, v := range buf {
		bins[i] = math.NaN()
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			fin = append(fin, i)
		}
	}
	nx := len(fin)
	if nx == 0 {
		return
	}
	sort.SliceStable(fin, func(a, b int) bool { return buf[fin[a]] < buf[fin[b]] })

	step := float64(nx-1) / float64(q)
	bounds[0] = -1
	for j := 1; j <= q; j++ {
		bounds[j] = float64(j) * step
	}
	bounds[q] = float64(nx)

	for r, i := range fin {
		for j := 1; j <= q; j++ {
			if float64(r) > bounds[j-1] && float64(r) <= bounds[j] {
				bins[i] = float64(j)

				break
			}
		}
	}
}
