package window

import (
	"math"

	"github.com/quantfold/qstat/ndarr"
	"github.com/quantfold/qstat/rank"
)

// MovingRank computes, at every position along the axis with at least
// window-1 predecessors, the [-1,1] tie-adjusted rank of that position's
// value within its trailing window (rank.LastRank over each sliding
// window). Positions with insufficient history, and windows whose last
// value is missing, hold NaN. The output shape equals the input shape.
//
// window < 2 or window > axis length yields ErrWindowSize.
func MovingRank(x *ndarr.Array, window, axis int) (*ndarr.Array, error) {
	it, err := x.Fibers(axis)
	if err != nil {
		return nil, err
	}
	n := it.Len()
	if window < 2 || window > n {
		return nil, ErrWindowSize
	}

	out, err := ndarr.NaNs(x.Shape()...)
	if err != nil {
		return nil, err
	}
	ot, _ := out.Fibers(axis)

	buf := make([]float64, n)
	res := make([]float64, n)
	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		for j := 0; j < n; j++ {
			if j < window-1 {
				res[j] = math.NaN()

				continue
			}
			r, rerr := rank.LastRankSlice(buf[j-window+1:j+1], 0)
			if rerr != nil {
				return nil, rerr
			}
			res[j] = r
		}
		ot.Scatter(k, res)
	}

	return out, nil
}
