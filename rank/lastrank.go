package rank

import (
	"math"

	"github.com/quantfold/qstat/ndarr"
)

// LastRank computes the rank of only the last element of each fiber along
// the given axis, normalized to [-1, 1] and adjusted for ties. It equals
// slicing Ranking (Ties=true, MinusOneToOne) at the last position, but is
// computed by an O(n) counting pass instead of a sort.
//
// decay selects exponential decay weighting: with decay=0 every comparison
// counts equally; with decay>0 each element i is weighted by
// exp(-decay·(n-1-i)), renormalized so the weights sum to n, so elements
// near the last position dominate. A negative decay fails with
// ErrDecayNegative.
//
// The result has the input's shape with the axis removed (a 0-d scalar
// array for 1-D input). A non-finite last element ranks NaN. An array with
// a zero-length dimension yields an all-NaN reduced array.
func LastRank(x *ndarr.Array, axis int, decay float64) (*ndarr.Array, error) {
	if decay < 0 {
		return nil, ErrDecayNegative
	}
	out, err := x.Reduced(axis)
	if err != nil {
		return nil, err
	}
	if x.Size() == 0 {
		return out, nil // some dimension is empty: all-NaN reduction
	}
	it, _ := x.Fibers(axis)
	buf := make([]float64, it.Len())
	vals := out.Values()
	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		vals[k] = lastRank1D(buf, decay)
	}

	return ndarr.FromData(vals, out.Shape()...)
}

// LastRankSlice is the 1-D kernel behind LastRank: the [-1,1] tie-adjusted
// rank of the last element of xs, with optional exponential decay.
func LastRankSlice(xs []float64, decay float64) (float64, error) {
	if decay < 0 {
		return math.NaN(), ErrDecayNegative
	}
	if len(xs) == 0 {
		return math.NaN(), nil
	}

	return lastRank1D(xs, decay), nil
}

// lastRank1D implements the counting formula. With g elements strictly
// below the last value, e equal to it (itself included) and n finite
// elements, the tie-averaged zero-based rank of the last element is
// (2g+e-1)/2, which divided by n-1 and rescaled gives the [-1,1] rank.
// The decayed variant replaces the counts with weighted sums and removes
// the last element's own weight from the denominator.
func lastRank1D(xs []float64, decay float64) float64 {
	n := len(xs)
	last := xs[n-1]
	if math.IsNaN(last) || math.IsInf(last, 0) {
		return math.NaN()
	}

	var r float64
	if decay > 0 {
		w := make([]float64, n)
		sum := 0.0
		for i := range w {
			w[i] = math.Exp(-decay * float64(n-1-i))
			sum += w[i]
		}
		scale := float64(n) / sum
		var g, e, nf float64
		for i, v := range xs {
			wi := w[i] * scale
			if last > v {
				g += wi
			}
			if v == last {
				e += wi
			}
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				nf += wi
			}
		}
		wLast := w[n-1] * scale
		r = (g + g + e - wLast) / 2
		r /= nf - wLast
	} else {
		var g, e, nf float64
		for _, v := range xs {
			if last > v {
				g++
			}
			if v == last {
				e++
			}
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				nf++
			}
		}
		r = (g + g + e - 1) / 2
		r /= nf - 1
	}

	return 2 * (r - 0.5)
}
