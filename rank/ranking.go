package rank

import (
	"math"
	"sort"

	"github.com/quantfold/qstat/ndarr"
)

// Ranking assigns each non-NaN element of x a rank among the non-NaN
// elements of its fiber along the given (possibly negative) axis, then
// rescales the ranks according to opts.Norm. A nil opts means
// DefaultOptions.
//
// NaN positions stay NaN and never occupy a rank slot. A fiber with a
// single non-NaN value ranks it at the normalization's midpoint; an
// all-NaN fiber stays all NaN. The output is a new array of the same
// shape; the input is never modified.
//
// With Ties=false the ranks are ordinal and stable by position: NaNs are
// temporarily mapped past +Inf so they sort last, and ±Inf entries receive
// a cumulative-NaN-count correction because they would otherwise collide
// with the NaN sort sentinel.
//
// Complexity: O(F · n log n) for F fibers of length n.
func Ranking(x *ndarr.Array, axis int, opts *Options) (*ndarr.Array, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	switch o.Norm {
	case MinusOneToOne, ZeroToNMinusOne, Gaussian:
	default:
		return nil, ErrNormalization
	}
	if o.Norm == Gaussian && o.InvCDF == nil {
		return nil, ErrInvCDFUnavailable
	}

	it, err := x.Fibers(axis)
	if err != nil {
		return nil, err
	}
	out, err := ndarr.NaNs(x.Shape()...)
	if err != nil {
		return nil, err
	}
	ot, _ := out.Fibers(axis)

	n := it.Len()
	nAll := float64(n)
	buf := make([]float64, n)
	ranks := make([]float64, n)
	order := make([]int, n)

	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		cnt := 0
		for _, v := range buf {
			if !math.IsNaN(v) {
				cnt++
			}
		}
		if cnt == 0 {
			continue // all-NaN fiber: output stays all NaN
		}

		if o.Ties {
			fractionalRanks(buf, ranks, order)
		} else {
			ordinalRanks(buf, ranks, order)
		}

		// Rescale zero-based ranks per the normalization. cnt==1 makes the
		// divisor zero; the midpoint substitution below overrides whatever
		// that produced.
		var middle float64
		div := float64(cnt - 1)
		switch o.Norm {
		case MinusOneToOne:
			for j := range ranks {
				if !math.IsNaN(ranks[j]) {
					ranks[j] = ranks[j]/div*2 - 1
				}
			}
		case ZeroToNMinusOne:
			scale := (nAll - 1) / div
			for j := range ranks {
				if !math.IsNaN(ranks[j]) {
					ranks[j] *= scale
				}
			}
			middle = (nAll - 1) / 2
		case Gaussian:
			scale := (nAll - 1) / div
			for j := range ranks {
				if !math.IsNaN(ranks[j]) {
					ranks[j] = o.InvCDF((ranks[j]*scale + 1) / (nAll + 1))
				}
			}
		}
		if cnt == 1 {
			for j := range ranks {
				if !math.IsNaN(buf[j]) {
					ranks[j] = middle
				}
			}
		}
		ot.Scatter(k, ranks)
	}

	return out, nil
}

// fractionalRanks writes tie-averaged zero-based ranks of the non-NaN
// entries of buf into ranks; NaN entries rank NaN. order is scratch.
func fractionalRanks(buf, ranks []float64, order []int) {
	sel := order[:0]
	for i, v := range buf {
		if math.IsNaN(v) {
			ranks[i] = math.NaN()
		} else {
			sel = append(sel, i)
		}
	}
	sort.SliceStable(sel, func(a, b int) bool { return buf[sel[a]] < buf[sel[b]] })
	// Equal values share the mean of the ordinal ranks they span.
	for s := 0; s < len(sel); {
		e := s + 1
		for e < len(sel) && buf[sel[e]] == buf[sel[s]] {
			e++
		}
		mean := float64(s+e-1) / 2
		for t := s; t < e; t++ {
			ranks[sel[t]] = mean
		}
		s = e
	}
}

// ordinalRanks writes position-stable ordinal zero-based ranks into ranks.
// NaNs sort last (mapped to +Inf) and rank NaN; ±Inf entries are corrected
// by the count of NaNs at or before their position, which is exactly the
// inflation caused by sharing the +Inf sort sentinel with earlier NaNs.
func ordinalRanks(buf, ranks []float64, order []int) {
	key := func(i int) float64 {
		if math.IsNaN(buf[i]) {
			return math.Inf(1)
		}

		return buf[i]
	}
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return key(order[a]) < key(order[b]) })
	for pos, i := range order {
		ranks[i] = float64(pos)
	}
	cum := 0
	for i, v := range buf {
		if math.IsNaN(v) {
			cum++
			ranks[i] = math.NaN()

			continue
		}
		if math.IsInf(v, 0) {
			ranks[i] -= float64(cum)
		}
	}
}
