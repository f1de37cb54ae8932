package group

import (
	"errors"
	"sort"

	"github.com/quantfold/qstat/ndarr"
	"github.com/quantfold/qstat/norm"
	"github.com/quantfold/qstat/rank"
)

// ErrGroupLength indicates that the groups slice does not have one label
// per position along the axis.
var ErrGroupLength = errors.New("group: one label required per position along the axis")

// Ranking ranks within each group along the axis: every group's sub-array
// is ranked independently with rank.Ranking and written back in place.
// Ungrouped positions (label "") come out NaN. A nil opts means
// rank.DefaultOptions.
func Ranking(x *ndarr.Array, groups []string, axis int, opts *rank.Options) (*ndarr.Array, error) {
	return overGroups(x, groups, axis, func(sub *ndarr.Array, ax int) (*ndarr.Array, error) {
		return rank.Ranking(sub, ax, opts)
	})
}

// Mean replaces every element by the NaN-ignoring mean of its group along
// the axis. Ungrouped positions come out NaN.
func Mean(x *ndarr.Array, groups []string, axis int) (*ndarr.Array, error) {
	return overGroups(x, groups, axis, func(sub *ndarr.Array, ax int) (*ndarr.Array, error) {
		return broadcastFiberStat(sub, ax, norm.NanMean)
	})
}

// Median replaces every element by the NaN-ignoring median of its group
// along the axis. Ungrouped positions come out NaN.
func Median(x *ndarr.Array, groups []string, axis int) (*ndarr.Array, error) {
	return overGroups(x, groups, axis, func(sub *ndarr.Array, ax int) (*ndarr.Array, error) {
		return broadcastFiberStat(sub, ax, norm.NanMedian)
	})
}

// uniqueGroups returns the sorted set of non-empty labels.
func uniqueGroups(groups []string) []string {
	seen := make(map[string]struct{}, len(groups))
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if g == "" {
			continue
		}
		if _, ok := seen[g]; !ok {
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}
	sort.Strings(out)

	return out
}

// overGroups gathers each group's positions along the axis, applies fn to
// the group sub-array, and scatters the result back. Positions outside any
// group stay NaN.
func overGroups(x *ndarr.Array, groups []string, axis int, fn func(*ndarr.Array, int) (*ndarr.Array, error)) (*ndarr.Array, error) {
	ax, err := x.NormAxis(axis)
	if err != nil {
		return nil, err
	}
	n, _ := x.AxisLen(ax)
	if len(groups) != n {
		return nil, ErrGroupLength
	}
	out, err := ndarr.NaNs(x.Shape()...)
	if err != nil {
		return nil, err
	}
	for _, g := range uniqueGroups(groups) {
		var idx []int
		for i, label := range groups {
			if label == g {
				idx = append(idx, i)
			}
		}
		sub, err := x.TakeAxis(ax, idx)
		if err != nil {
			return nil, err
		}
		res, err := fn(sub, ax)
		if err != nil {
			return nil, err
		}
		if err := out.ScatterAxis(ax, idx, res); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// broadcastFiberStat reduces each fiber of sub along ax with stat and
// expands the result back to sub's shape, so every element of a fiber
// holds that fiber's statistic.
func broadcastFiberStat(sub *ndarr.Array, ax int, stat func([]float64) float64) (*ndarr.Array, error) {
	it, err := sub.Fibers(ax)
	if err != nil {
		return nil, err
	}
	out := sub.Clone()
	ot, _ := out.Fibers(ax)
	buf := make([]float64, it.Len())
	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		s := stat(buf)
		for j := range buf {
			buf[j] = s
		}
		ot.Scatter(k, buf)
	}

	return out, nil
}
