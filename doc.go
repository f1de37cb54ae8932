// Package qstat is an in-memory toolbox of NaN-aware statistical
// transforms over dense N-dimensional numeric arrays: cross-sectional
// ranking, moving-window aggregation, normalization and missing-data
// covariance for quantitative-analysis pipelines.
//
// 🚀 What is qstat?
//
//	A pure, stateless numeric transform library that brings together:
//		• ndarr/   — dense N-d float64 arrays: fiber iteration, cumulative
//		  sums, reversal, forward-fill (Push) and axis shuffling
//		• rank/    — NaN-aware normalized ranking, decay-weighted last-element
//		  ranks and quantile bucketing
//		• window/  — prefix-sum moving sums (backward & forward) and moving
//		  ranks, normalized for missing data
//		• norm/    — demean, demedian, z-score and geometric mean
//		• group/   — grouped ranking, mean and median along an axis
//		• calc/    — pairwise-complete correlation and missing-data covariance
//
// ✨ Why choose qstat?
//
//   - Missing-data first — NaN is the missing-value sentinel everywhere;
//     every transform either skips or propagates it, never invents numbers
//   - Axis-generic — every operation runs along any (possibly negative)
//     axis of an N-dimensional array via strided fiber iteration
//   - Deterministic — pure functions, no global state, no hidden mutation
//     of caller arrays
//   - Typed failures — sentinel errors per package, matched with errors.Is
//
// Quick example:
//
//	x := ndarr.FromSlice([]float64{1, 2, math.NaN(), 4, 5})
//	ms, _ := window.MovSum(x, 2, nil) // [NaN 3 2 4 9]
//
// Every call is independently reentrant: concurrent use is safe provided
// distinct input/output arrays are used.
package qstat
