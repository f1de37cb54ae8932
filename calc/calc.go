package calc

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/quantfold/qstat/ndarr"
)

var (
	// ErrNot2D indicates a CovMissing input that is not two-dimensional.
	ErrNot2D = errors.New("calc: 2-D input required")

	// ErrTooFewObs indicates a covariance cell with fewer than two jointly
	// observed columns.
	ErrTooFewObs = errors.New("calc: not enough observations")
)

// Correlation computes the Pearson correlation between a and b along the
// given axis, reducing the shape by that axis; with axis == ndarr.NoAxis
// the flattened arrays are correlated and a 0-d scalar array is returned.
//
// Positions where either array holds NaN are excluded pairwise. A fiber
// with no complete pairs, or with zero variance on either side, comes out
// NaN. The arrays must have equal shapes, else ndarr.ErrShapeMismatch.
func Correlation(a, b *ndarr.Array, axis int) (*ndarr.Array, error) {
	if !a.SameShape(b) {
		return nil, ndarr.ErrShapeMismatch
	}
	if axis == ndarr.NoAxis {
		return ndarr.Scalar(pairCorr(a.Values(), b.Values())), nil
	}

	out, err := a.Reduced(axis)
	if err != nil {
		return nil, err
	}
	ita, _ := a.Fibers(axis)
	itb, _ := b.Fibers(axis)
	bufa := make([]float64, ita.Len())
	bufb := make([]float64, ita.Len())
	vals := out.Values()
	for k := 0; k < ita.Count(); k++ {
		ita.Gather(k, bufa)
		itb.Gather(k, bufb)
		vals[k] = pairCorr(bufa, bufb)
	}

	return ndarr.FromData(vals, out.Shape()...)
}

// pairCorr correlates the pairwise-complete entries of xs and ys via
// gonum's Pearson correlation. NaN when no complete pair exists or either
// side is constant.
func pairCorr(xs, ys []float64) float64 {
	cx := make([]float64, 0, len(xs))
	cy := make([]float64, 0, len(ys))
	for i, x := range xs {
		if math.IsNaN(x) || math.IsNaN(ys[i]) {
			continue
		}
		cx = append(cx, x)
		cy = append(cy, ys[i])
	}
	if len(cx) == 0 {
		return math.NaN()
	}

	return stat.Correlation(cx, cy, nil)
}

// CovMissing computes the covariance matrix of the rows of r (an n×t array
// of, e.g., log returns) adjusted for missing observations: NaN entries
// are zeroed on an owned copy, and each covariance cell (i,j) is
// normalized by the number of columns where both row i and row j are
// observed. Rows are assumed to be zero-mean, so nothing is demeaned and
// the normalization is by the joint observation count, not count-1.
//
// Any cell with fewer than two joint observations fails with ErrTooFewObs.
// The input is never modified.
func CovMissing(r *ndarr.Array) (*ndarr.Array, error) {
	if r.NDim() != 2 {
		return nil, ErrNot2D
	}
	shape := r.Shape()
	n, t := shape[0], shape[1]
	if n == 0 || t == 0 {
		return nil, ErrTooFewObs
	}

	vals := r.Values() // owned copy: the caller's array stays intact
	present := make([]float64, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			vals[i] = 0
		} else {
			present[i] = 1
		}
	}
	rd := mat.NewDense(n, t, vals)
	md := mat.NewDense(n, t, present)

	var obs mat.Dense
	obs.Mul(md, md.T())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if obs.At(i, j) < 2 {
				return nil, ErrTooFewObs
			}
		}
	}

	var prod mat.Dense
	prod.Mul(rd, rd.T())

	cov := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cov[i*n+j] = prod.At(i, j) / obs.At(i, j)
		}
	}

	return ndarr.FromData(cov, n, n)
}
