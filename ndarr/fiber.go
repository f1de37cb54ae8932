package ndarr

// FiberIter walks every 1-D fiber of an array along one axis.
//
// For an array of shape (d0, .., dk, .., dn) and axis k there are
// outer*inner fibers, where outer = d0*..*d(k-1) and inner = d(k+1)*..*dn.
// Fiber k = o*inner + i starts at flat offset o*n*inner + i and advances by
// inner between consecutive positions along the axis. The fiber index k of
// an iterator equals the flat index of the corresponding element in the
// axis-reduced array, so reductions can be written fiber-by-fiber without
// any index arithmetic on the caller side.
type FiberIter struct {
	arr          *Array
	n            int // length along the axis
	outer, inner int
}

// Fibers returns a fiber iterator along the given (possibly negative) axis.
func (a *Array) Fibers(axis int) (*FiberIter, error) {
	ax, err := a.NormAxis(axis)
	if err != nil {
		return nil, err
	}
	outer, inner := 1, 1
	for _, d := range a.shape[:ax] {
		outer *= d
	}
	for _, d := range a.shape[ax+1:] {
		inner *= d
	}

	return &FiberIter{arr: a, n: a.shape[ax], outer: outer, inner: inner}, nil
}

// Count returns the number of fibers.
func (it *FiberIter) Count() int { return it.outer * it.inner }

// Len returns the length of each fiber (the dimension size along the axis).
func (it *FiberIter) Len() int { return it.n }

// base returns the flat offset of position 0 of fiber k.
func (it *FiberIter) base(k int) int {
	return (k/it.inner)*it.n*it.inner + k%it.inner
}

// Gather copies fiber k into dst, which must have length Len().
func (it *FiberIter) Gather(k int, dst []float64) {
	off, step := it.base(k), it.inner
	for j := 0; j < it.n; j++ {
		dst[j] = it.arr.data[off]
		off += step
	}
}

// Scatter copies src, which must have length Len(), into fiber k.
func (it *FiberIter) Scatter(k int, src []float64) {
	off, step := it.base(k), it.inner
	for j := 0; j < it.n; j++ {
		it.arr.data[off] = src[j]
		off += step
	}
}

// SetAt stores v at position j of fiber k.
func (it *FiberIter) SetAt(k, j int, v float64) {
	it.arr.data[it.base(k)+j*it.inner] = v
}

// AtPos returns the element at position j of fiber k.
func (it *FiberIter) AtPos(k, j int) float64 {
	return it.arr.data[it.base(k)+j*it.inner]
}
