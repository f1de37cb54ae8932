package norm

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/quantfold/qstat/ndarr"
)

// ErrNonPositive indicates a non-positive (and non-NaN) element passed to
// GeometricMean with the positivity check enabled.
var ErrNonPositive = errors.New("norm: all elements (except NaNs) must be greater than zero")

// Demean subtracts the NaN-ignoring mean along the axis from every
// element. With axis == ndarr.NoAxis the mean of the flattened array is
// removed instead. NaN positions stay NaN.
//
// Example: Demean([1 NaN 2 3]) → [-1 NaN 0 1].
func Demean(arr *ndarr.Array, axis int) (*ndarr.Array, error) {
	return apply(arr, axis, NanMean)
}

// Demedian subtracts the NaN-ignoring median along the axis from every
// element. With axis == ndarr.NoAxis the median of the flattened array is
// removed instead.
//
// Example: Demedian([1 NaN 2 10]) → [-1 NaN 0 8].
func Demedian(arr *ndarr.Array, axis int) (*ndarr.Array, error) {
	return apply(arr, axis, NanMedian)
}

// ZScore removes the NaN-ignoring mean along the axis and divides by the
// NaN-ignoring population standard deviation.
//
// Example: ZScore([1 NaN 2 3]) → [-1.2247 NaN 0 1.2247].
func ZScore(arr *ndarr.Array, axis int) (*ndarr.Array, error) {
	out, err := apply(arr, axis, NanMean)
	if err != nil {
		return nil, err
	}

	return applyDiv(out, axis, NanStd)
}

// GeometricMean reduces each fiber along the axis to the geometric mean of
// its non-NaN elements. The result has the axis removed from the shape
// (a 0-d scalar array for 1-D input); an all-NaN fiber reduces to NaN.
//
// With checkPositive, any element of arr that is zero or less (NaN
// excluded) fails with ErrNonPositive before anything is computed; with
// the check disabled such elements flow into the logarithm as-is.
func GeometricMean(arr *ndarr.Array, axis int, checkPositive bool) (*ndarr.Array, error) {
	if checkPositive {
		for _, v := range arr.Values() {
			if v <= 0 { // false for NaN
				return nil, ErrNonPositive
			}
		}
	}
	out, err := arr.Reduced(axis)
	if err != nil {
		return nil, err
	}
	it, _ := arr.Fibers(axis)
	buf := make([]float64, it.Len())
	vals := out.Values()
	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		cnt := 0
		logSum := 0.0
		for _, v := range buf {
			if math.IsNaN(v) {
				continue // log(1) contributes nothing
			}
			logSum += math.Log(v)
			cnt++
		}
		if cnt == 0 {
			vals[k] = math.NaN()
		} else {
			vals[k] = math.Exp(logSum / float64(cnt))
		}
	}

	return ndarr.FromData(vals, out.Shape()...)
}

// apply subtracts stat(fiber) from every fiber element (or stat(all) for
// ndarr.NoAxis), returning a new array.
func apply(arr *ndarr.Array, axis int, stat func([]float64) float64) (*ndarr.Array, error) {
	return transform(arr, axis, stat, func(v, s float64) float64 { return v - s })
}

// applyDiv divides every fiber element by stat(fiber).
func applyDiv(arr *ndarr.Array, axis int, stat func([]float64) float64) (*ndarr.Array, error) {
	return transform(arr, axis, stat, func(v, s float64) float64 { return v / s })
}

func transform(arr *ndarr.Array, axis int, stat func([]float64) float64, op func(v, s float64) float64) (*ndarr.Array, error) {
	if axis == ndarr.NoAxis {
		vals := arr.Values()
		s := stat(vals)
		for i, v := range vals {
			vals[i] = op(v, s)
		}

		return ndarr.FromData(vals, arr.Shape()...)
	}

	it, err := arr.Fibers(axis)
	if err != nil {
		return nil, err
	}
	out := arr.Clone()
	ot, _ := out.Fibers(axis)
	buf := make([]float64, it.Len())
	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		s := stat(buf)
		for j, v := range buf {
			buf[j] = op(v, s)
		}
		ot.Scatter(k, buf)
	}

	return out, nil
}

// NanMean returns the mean over the non-NaN elements of xs; NaN when
// there are none.
func NanMean(xs []float64) float64 {
	sum, cnt := 0.0, 0
	for _, v := range xs {
		if !math.IsNaN(v) {
			sum += v
			cnt++
		}
	}
	if cnt == 0 {
		return math.NaN()
	}

	return sum / float64(cnt)
}

// NanMedian returns the median over the non-NaN elements of xs; NaN when
// there are none. The median itself comes from montanaflynn/stats over the
// compacted values.
func NanMedian(xs []float64) float64 {
	compact := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			compact = append(compact, v)
		}
	}
	med, err := stats.Median(compact)
	if err != nil {
		return math.NaN() // empty input
	}

	return med
}

// NanStd returns the population standard deviation over the non-NaN
// elements of xs.
func NanStd(xs []float64) float64 {
	m := NanMean(xs)
	if math.IsNaN(m) {
		return math.NaN()
	}
	sum, cnt := 0.0, 0
	for _, v := range xs {
		if !math.IsNaN(v) {
			d := v - m
			sum += d * d
			cnt++
		}
	}

	return math.Sqrt(sum / float64(cnt))
}
