// Package norm provides simple NaN-aware elementwise normalizers:
// Demean, Demedian and ZScore subtract (and scale by) per-fiber or
// whole-array statistics computed over the non-NaN elements only, and
// GeometricMean reduces each fiber to its NaN-ignoring geometric mean.
//
// Pass ndarr.NoAxis to normalize against the statistic of the flattened
// array instead of per fiber. NaN positions always stay NaN.
package norm
