package ndarr

import (
	"gonum.org/v1/gonum/floats"
)

// CumSum returns a new array holding the running cumulative sum of each
// fiber along the given axis. NaN values propagate through the running sum
// exactly as float64 addition dictates; callers that want NaN-ignoring sums
// zero the missing entries first.
func (a *Array) CumSum(axis int) (*Array, error) {
	it, err := a.Fibers(axis)
	if err != nil {
		return nil, err
	}
	out := a.Clone()
	ot, _ := out.Fibers(axis)
	buf := make([]float64, it.Len())
	cum := make([]float64, it.Len())
	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		floats.CumSum(cum, buf)
		ot.Scatter(k, cum)
	}

	return out, nil
}

// Reverse returns a copy of the array with every fiber along the given
// axis reversed.
func (a *Array) Reverse(axis int) (*Array, error) {
	it, err := a.Fibers(axis)
	if err != nil {
		return nil, err
	}
	out := a.Clone()
	ot, _ := out.Fibers(axis)
	buf := make([]float64, it.Len())
	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		floats.Reverse(buf)
		ot.Scatter(k, buf)
	}

	return out, nil
}

// TakeAxis returns a new array selecting the given positions along the
// axis, in order. The result's length along the axis equals len(indices).
// Returns ErrIndexRange if any position is out of bounds.
func (a *Array) TakeAxis(axis int, indices []int) (*Array, error) {
	ax, err := a.NormAxis(axis)
	if err != nil {
		return nil, err
	}
	n := a.shape[ax]
	for _, ix := range indices {
		if ix < 0 || ix >= n {
			return nil, ErrIndexRange
		}
	}
	shape := a.Shape()
	shape[ax] = len(indices)
	out, err := New(shape...)
	if err != nil {
		return nil, err
	}
	it, _ := a.Fibers(ax)
	ot, _ := out.Fibers(ax)
	buf := make([]float64, it.Len())
	sel := make([]float64, len(indices))
	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		for j, ix := range indices {
			sel[j] = buf[ix]
		}
		ot.Scatter(k, sel)
	}

	return out, nil
}

// ScatterAxis writes src into the given positions along the axis of the
// receiver, inverting TakeAxis. src must have the receiver's shape
// with the axis dimension replaced by len(indices); otherwise
// ErrShapeMismatch is returned.
func (a *Array) ScatterAxis(axis int, indices []int, src *Array) error {
	ax, err := a.NormAxis(axis)
	if err != nil {
		return err
	}
	n := a.shape[ax]
	for _, ix := range indices {
		if ix < 0 || ix >= n {
			return ErrIndexRange
		}
	}
	want := a.Shape()
	want[ax] = len(indices)
	got := src.Shape()
	if len(want) != len(got) {
		return ErrShapeMismatch
	}
	for i := range want {
		if want[i] != got[i] {
			return ErrShapeMismatch
		}
	}
	it, _ := a.Fibers(ax)
	st, _ := src.Fibers(ax)
	buf := make([]float64, it.Len())
	sel := make([]float64, len(indices))
	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		st.Gather(k, sel)
		for j, ix := range indices {
			buf[ix] = sel[j]
		}
		it.Scatter(k, buf)
	}

	return nil
}
