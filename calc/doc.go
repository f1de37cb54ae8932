// Package calc provides the direct reductions of qstat: pairwise-complete
// Pearson correlation between two arrays, and a covariance matrix adjusted
// for missing observations.
//
// Correlation drops every position where either input is NaN before
// correlating, either along an axis (reducing the shape) or over the
// flattened arrays (yielding a scalar). CovMissing zeroes missing returns on an
// owned copy of its input and normalizes each covariance cell by the
// number of jointly observed columns; it never mutates the caller's array.
package calc
