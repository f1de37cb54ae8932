package ndarr

import (
	"math"
)

// NoAxis selects whole-array (flattened) treatment in operations whose axis
// parameter is optional (Demean, ZScore, Correlation, Quantile, ...). It is
// deliberately outside any valid axis range.
const NoAxis = math.MinInt

// Array is a dense N-dimensional array of float64 values stored in a flat
// row-major slice. A zero-dimensional Array (empty shape) holds exactly one
// element and represents a scalar reduction result. NaN marks missing data.
type Array struct {
	shape   []int     // ordered dimension sizes, all >= 0
	strides []int     // row-major strides, strides[ndim-1] == 1
	data    []float64 // flat backing storage, length == product(shape)
}

// New creates an array of the given shape initialized to zeros.
// An empty shape yields a 0-d scalar array holding a single zero.
// Returns ErrShape if any dimension is negative.
func New(shape ...int) (*Array, error) {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return nil, ErrShape
		}
		size *= d
	}

	return newOwned(append([]int(nil), shape...), make([]float64, size)), nil
}

// NaNs creates an array of the given shape with every element set to NaN.
func NaNs(shape ...int) (*Array, error) {
	a, err := New(shape...)
	if err != nil {
		return nil, err
	}
	a.Fill(math.NaN())

	return a, nil
}

// Scalar wraps a single value in a 0-d array.
func Scalar(v float64) *Array {
	return newOwned(nil, []float64{v})
}

// FromSlice copies a 1-D slice into a new one-dimensional array.
func FromSlice(values []float64) *Array {
	return newOwned([]int{len(values)}, append([]float64(nil), values...))
}

// From2D copies a slice of rows into a new two-dimensional array.
// Returns ErrRagged if the rows have differing lengths.
func From2D(rows [][]float64) (*Array, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrRagged
		}
		data = append(data, row...)
	}

	return newOwned([]int{r, c}, data), nil
}

// FromData wraps a copy of a flat row-major slice in an array of the given
// shape. Returns ErrShape if len(data) does not equal the shape's size.
func FromData(data []float64, shape ...int) (*Array, error) {
	a, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, ErrShape
	}
	copy(a.data, data)

	return a, nil
}

// newOwned constructs an Array that takes ownership of shape and data.
func newOwned(shape []int, data []float64) *Array {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}

	return &Array{shape: shape, strides: strides, data: data}
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// Size returns the total number of elements (1 for a 0-d array).
func (a *Array) Size() int { return len(a.data) }

// Shape returns a copy of the dimension sizes.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// NormAxis normalizes a possibly negative axis index.
// Returns ErrAxisRange unless axis+ndim (for negative axis) or axis itself
// lies in [0, ndim).
func (a *Array) NormAxis(axis int) (int, error) {
	n := len(a.shape)
	if axis < 0 {
		axis += n
	}
	if axis < 0 || axis >= n {
		return 0, ErrAxisRange
	}

	return axis, nil
}

// AxisLen returns the dimension size along the given (possibly negative) axis.
func (a *Array) AxisLen(axis int) (int, error) {
	ax, err := a.NormAxis(axis)
	if err != nil {
		return 0, err
	}

	return a.shape[ax], nil
}

// At returns the element at the given multi-index.
// Returns ErrIndexRange on a wrong index count or an out-of-bounds index.
func (a *Array) At(index ...int) (float64, error) {
	off, err := a.offset(index)
	if err != nil {
		return math.NaN(), err
	}

	return a.data[off], nil
}

// Set stores v at the given multi-index.
func (a *Array) Set(v float64, index ...int) error {
	off, err := a.offset(index)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// offset converts a multi-index to a flat offset.
func (a *Array) offset(index []int) (int, error) {
	if len(index) != len(a.shape) {
		return 0, ErrIndexRange
	}
	off := 0
	for i, ix := range index {
		if ix < 0 || ix >= a.shape[i] {
			return 0, ErrIndexRange
		}
		off += ix * a.strides[i]
	}

	return off, nil
}

// Float reads the value of a single-element (scalar or size-1) array.
// Returns ErrNotScalar for any other size.
func (a *Array) Float() (float64, error) {
	if len(a.data) != 1 {
		return math.NaN(), ErrNotScalar
	}

	return a.data[0], nil
}

// Values returns a copy of the flat row-major element data.
func (a *Array) Values() []float64 {
	return append([]float64(nil), a.data...)
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	return newOwned(append([]int(nil), a.shape...), append([]float64(nil), a.data...))
}

// Fill sets every element to v.
func (a *Array) Fill(v float64) {
	for i := range a.data {
		a.data[i] = v
	}
}

// SameShape reports whether b has exactly the same shape as a.
func (a *Array) SameShape(b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i, d := range a.shape {
		if b.shape[i] != d {
			return false
		}
	}

	return true
}

// reducedShape returns the shape with the (normalized) axis removed.
func (a *Array) reducedShape(ax int) []int {
	out := make([]int, 0, len(a.shape)-1)
	out = append(out, a.shape[:ax]...)
	out = append(out, a.shape[ax+1:]...)

	return out
}

// Reduced creates a NaN-filled array shaped like a with the given
// (possibly negative) axis removed. Reducing a 1-D array yields a 0-d
// scalar array. Reduction results align with fiber order: the fiber k of a
// along axis corresponds to flat element k of the reduced array.
func (a *Array) Reduced(axis int) (*Array, error) {
	ax, err := a.NormAxis(axis)
	if err != nil {
		return nil, err
	}

	return NaNs(a.reducedShape(ax)...)
}
