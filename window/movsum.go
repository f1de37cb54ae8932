package window

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/quantfold/qstat/ndarr"
)

// Options configures MovSum and MovSumForward.
//
// Fields:
//   - Skip — offset the window back from the current position: the sum at
//     position i covers [i-skip-window+1, i-skip]. Default 0.
//   - Axis — the traversal axis, possibly negative. Default -1 (last).
//   - Norm — scale each sum by window/observed so it estimates the sum
//     had all window slots been observed. Default false.
type Options struct {
	Skip int
	Axis int
	Norm bool
}

// DefaultOptions returns the canonical configuration: no skip, last axis,
// no missing-data normalization.
func DefaultOptions() Options {
	return Options{Axis: -1}
}

// MovSum computes the NaN-ignoring moving sum of each fiber of arr along
// opts.Axis using forward-cumulative prefix sums. A nil opts means
// DefaultOptions.
//
// Precondition failures: window < 1 or window > axis length yield
// ErrWindowSize; skip < 0 or skip > axis length yields ErrSkipRange.
//
// The output shape always equals the input shape; positions with
// insufficient history hold NaN, as does any window containing zero
// non-NaN values (0/0 is not a valid estimate even under Norm).
//
// Example:
//
//	MovSum([1 2 NaN 4 5], window=2)            → [NaN 3 2 4 9]
//	MovSum([1 2 NaN 4 5], window=2, Norm=true) → [NaN 3 4 8 9]
func MovSum(arr *ndarr.Array, window int, opts *Options) (*ndarr.Array, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	it, err := arr.Fibers(o.Axis)
	if err != nil {
		return nil, err
	}
	n := it.Len()
	if window < 1 || window > n {
		return nil, ErrWindowSize
	}
	if o.Skip < 0 || o.Skip > n {
		return nil, ErrSkipRange
	}

	out, err := ndarr.NaNs(arr.Shape()...)
	if err != nil {
		return nil, err
	}
	ot, _ := out.Fibers(o.Axis)

	buf := make([]float64, n)
	csum := make([]float64, n)  // cumulative sum of NaN-zeroed values
	ccnt := make([]float64, n)  // cumulative count of non-NaN values
	res := make([]float64, n)
	lead := o.Skip + window - 1 // NaN padding: insufficient history

	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		for j, v := range buf {
			if math.IsNaN(v) {
				buf[j] = 0
				ccnt[j] = 0
			} else {
				ccnt[j] = 1
			}
		}
		floats.CumSum(csum, buf)
		floats.CumSum(ccnt, ccnt)

		for j := 0; j < n; j++ {
			if j < lead {
				res[j] = math.NaN()

				continue
			}
			// Window ending at position j-skip, as a prefix-sum difference.
			end := j - o.Skip
			sum, cnt := csum[end], ccnt[end]
			if end-window >= 0 {
				sum -= csum[end-window]
				cnt -= ccnt[end-window]
			}
			if o.Norm {
				res[j] = float64(window) * sum / cnt // cnt==0 → 0/0 → NaN
			} else if cnt == 0 {
				res[j] = math.NaN()
			} else {
				res[j] = sum
			}
		}
		ot.Scatter(k, res)
	}

	return out, nil
}

// MovSumForward computes the moving sum looking forward from each position:
// it is equivalent to reversing arr along the axis, applying MovSum, and
// reversing the result back.
func MovSumForward(arr *ndarr.Array, window int, opts *Options) (*ndarr.Array, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	rev, err := arr.Reverse(o.Axis)
	if err != nil {
		return nil, err
	}
	ms, err := MovSum(rev, window, &o)
	if err != nil {
		return nil, err
	}

	return ms.Reverse(o.Axis)
}
