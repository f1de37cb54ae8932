// Package ndarr provides the dense N-dimensional float64 array that every
// qstat transform operates on.
//
// An Array stores its elements in a flat row-major slice for cache
// friendliness. Missing values are represented by NaN; there is no
// separate validity channel.
//
// The central abstraction is the fiber: the 1-D sub-array obtained by
// fixing every index except the one along a chosen axis. FiberIter walks
// all fibers of an array along an axis in a fixed, deterministic order and
// gathers/scatters them through a caller-owned buffer, so axis-generic
// transforms never build per-call index lists.
//
// Axis arguments accept negative values (Python-style: -1 is the last
// axis); out-of-range axes yield ErrAxisRange.
//
// All operations return fresh arrays and never mutate their inputs, with
// one documented exception: Shuffle permutes the receiver in place.
package ndarr
