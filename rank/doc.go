// Package rank computes NaN-aware normalized ranks of array elements along
// an axis.
//
// 🚀 What is rank?
//
//	Three closely related transforms used by cross-sectional pipelines:
//	  • Ranking  — full per-fiber ranks, tie-averaged or ordinal, rescaled
//	    to [0,N-1], [-1,1] or a Gaussian via the inverse normal CDF
//	  • LastRank — the rank of only the last element along the axis, with
//	    an optional exponential decay weighting of the comparisons; an
//	    O(n) counting formula rather than a full sort
//	  • Quantile — bucketing into q bins by rank, normalized to [-1,1]
//
// Missing data (NaN) never occupies a rank slot: NaN positions stay NaN in
// the output and are excluded from the rank computation. A fiber with a
// single non-NaN value ranks it at the normalization's midpoint, so the
// result is defined even when there is nothing to compare against.
//
// The Gaussian normalization needs an inverse standard-normal CDF. It is
// modeled as a capability on Options (InvCDF) and defaults to
// gonum's distuv.UnitNormal quantile; a nil capability yields
// ErrInvCDFUnavailable rather than a crash.
//
// Ranks for the '0,N-1' normalization span [0, N-1] where N is the axis
// length including NaNs, while the rank values themselves range over the
// non-NaN count rescaled to that span. This keeps the output range uniform
// across fibers with differing NaN counts.
package rank
