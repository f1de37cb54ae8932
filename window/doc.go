// Package window computes NaN-aware moving-window aggregates along an axis.
//
// 🚀 What is window?
//
//   - MovSum        — moving sum ignoring NaNs, built from prefix sums so
//     the cost is O(total elements) regardless of the window length, with
//     optional normalization for missing data and a configurable skip
//     offset back from the current position
//   - MovSumForward — the same sum looking forward from each position
//   - MovingRank    — rank.LastRank applied to each trailing window,
//     normalized to [-1, 1]
//
// The sum over any window is the difference of two running cumulative
// sums of the NaN-zeroed values; a second cumulative count of the non-NaN
// entries tells each window how many real observations it saw. A window
// with zero observations yields NaN, never a spurious zero. With
// Options.Norm the sum is scaled by window/observed, estimating what the
// sum would have been with no data missing.
//
// Outputs always have the input's shape: the first skip+window-1 positions
// along the axis are NaN (insufficient history) and the skip most recent
// positions shift out of the valid region.
package window
