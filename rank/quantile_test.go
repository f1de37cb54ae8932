package rank_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/quantfold/qstat/ndarr"
	"github.com/quantfold/qstat/rank"
)

// TestQuantile_ThreeBuckets verifies the reference example.
func TestQuantile_ThreeBuckets(t *testing.T) {
	x := ndarr.FromSlice([]float64{1, 2, 3, 4, 5, 6})

	y, err := rank.Quantile(x, 3, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, -1, 0, 0, 1, 1}, y.Values(), 1e-12)
}

// TestQuantile_TwoBuckets verifies the median split.
func TestQuantile_TwoBuckets(t *testing.T) {
	x := ndarr.FromSlice([]float64{4, 1, 3, 2})

	y, err := rank.Quantile(x, 2, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, -1, 1, -1}, y.Values(), 1e-12)
}

// TestQuantile_CountValidation verifies q < 1 and q > axis length errors.
func TestQuantile_CountValidation(t *testing.T) {
	x := ndarr.FromSlice([]float64{1, 2, 3})

	_, err := rank.Quantile(x, 0, 0)
	assert.ErrorIs(t, err, rank.ErrQuantileCount)

	_, err = rank.Quantile(x, 4, 0)
	assert.ErrorIs(t, err, rank.ErrQuantileCount)
}

// TestQuantile_SingleBucket verifies q=1: all zeros, NaNs preserved.
func TestQuantile_SingleBucket(t *testing.T) {
	nan := math.NaN()
	x := ndarr.FromSlice([]float64{5, nan, 7})

	y, err := rank.Quantile(x, 1, 0)
	require.NoError(t, err)
	assert.True(t, floats.Same([]float64{0, nan, 0}, y.Values()), "got %v", y.Values())
}

// TestQuantile_NaNExcluded verifies that missing values stay NaN and do
// not shift bucket boundaries.
func TestQuantile_NaNExcluded(t *testing.T) {
	nan := math.NaN()
	x := ndarr.FromSlice([]float64{1, nan, 2, 3, 4})

	y, err := rank.Quantile(x, 2, 0)
	require.NoError(t, err)
	want := []float64{-1, nan, -1, 1, 1}
	assert.True(t, floats.Same(want, y.Values()), "got %v", y.Values())
}

// TestQuantile_Flattened verifies ndarr.NoAxis bucketing over the whole
// array with the original shape restored.
func TestQuantile_Flattened(t *testing.T) {
	x, err := ndarr.From2D([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	y, err := rank.Quantile(x, 3, ndarr.NoAxis)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, y.Shape())
	assert.InDeltaSlice(t, []float64{-1, -1, 0, 0, 1, 1}, y.Values(), 1e-12)
}

// TestQuantile_PerColumn verifies independent bucketing along axis 0.
func TestQuantile_PerColumn(t *testing.T) {
	x, err := ndarr.From2D([][]float64{
		{1, 6},
		{2, 5},
	})
	require.NoError(t, err)

	y, err := rank.Quantile(x, 2, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 1, 1, -1}, y.Values(), 1e-12)
}
