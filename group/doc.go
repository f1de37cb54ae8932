// Package group applies the qstat primitives within labeled groups of
// positions along an axis.
//
// Each position along the axis carries a string label; positions sharing a
// label form a group, and the transform (ranking, mean, median) runs on
// each group's sub-array independently before the results are scattered
// back into place. The empty label "" marks ungrouped positions: they are
// skipped and come out NaN, as does any position whose group produced no
// value.
package group
