package norm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/quantfold/qstat/ndarr"
	"github.com/quantfold/qstat/norm"
)

// TestDemean_Flattened verifies whole-array demeaning with NaN passthrough.
func TestDemean_Flattened(t *testing.T) {
	nan := math.NaN()
	x := ndarr.FromSlice([]float64{1, nan, 2, 3})

	y, err := norm.Demean(x, ndarr.NoAxis)
	require.NoError(t, err)
	assert.True(t, floats.Same([]float64{-1, nan, 0, 1}, y.Values()), "got %v", y.Values())
}

// TestDemean_PerRow verifies per-fiber means along the last axis.
func TestDemean_PerRow(t *testing.T) {
	x, err := ndarr.From2D([][]float64{
		{1, 2, 3},
		{10, 20, 30},
	})
	require.NoError(t, err)

	y, err := norm.Demean(x, -1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 0, 1, -10, 0, 10}, y.Values(), 1e-12)
}

// TestDemedian_Flattened verifies median removal: the median is robust to
// the outlier 10.
func TestDemedian_Flattened(t *testing.T) {
	nan := math.NaN()
	x := ndarr.FromSlice([]float64{1, nan, 2, 10})

	y, err := norm.Demedian(x, ndarr.NoAxis)
	require.NoError(t, err)
	assert.True(t, floats.Same([]float64{-1, nan, 0, 8}, y.Values()), "got %v", y.Values())
}

// TestZScore_Flattened verifies z-scoring against the population standard
// deviation of the non-NaN elements.
func TestZScore_Flattened(t *testing.T) {
	nan := math.NaN()
	x := ndarr.FromSlice([]float64{1, nan, 2, 3})

	y, err := norm.ZScore(x, ndarr.NoAxis)
	require.NoError(t, err)
	v := y.Values()
	assert.InDelta(t, -1.22474487, v[0], 1e-8)
	assert.True(t, math.IsNaN(v[1]))
	assert.InDelta(t, 0, v[2], 1e-12)
	assert.InDelta(t, 1.22474487, v[3], 1e-8)
}

// TestNormalizers_AllNaN verifies the all-NaN invariant for the whole
// normalizer family: never an error, never a number.
func TestNormalizers_AllNaN(t *testing.T) {
	nan := math.NaN()
	x := ndarr.FromSlice([]float64{nan, nan})

	for name, fn := range map[string]func(*ndarr.Array, int) (*ndarr.Array, error){
		"Demean":   norm.Demean,
		"Demedian": norm.Demedian,
		"ZScore":   norm.ZScore,
	} {
		y, err := fn(x, 0)
		require.NoError(t, err, name)
		assert.True(t, floats.Same([]float64{nan, nan}, y.Values()), "%s: got %v", name, y.Values())
	}

	g, err := norm.GeometricMean(x, 0, true)
	require.NoError(t, err)
	v, err := g.Float()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "GeometricMean of all NaN must be NaN")
}

// TestGeometricMean_Basic verifies the NaN-ignoring geometric mean and its
// reduced output shape.
func TestGeometricMean_Basic(t *testing.T) {
	nan := math.NaN()
	x, err := ndarr.From2D([][]float64{
		{1, 2, 4},
		{3, nan, 27},
	})
	require.NoError(t, err)

	g, err := norm.GeometricMean(x, -1, true)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, g.Shape())
	assert.InDeltaSlice(t, []float64{2, 9}, g.Values(), 1e-12)
}

// TestGeometricMean_NonPositive verifies the domain check and that
// disabling it lets non-positive values flow into the logarithm.
func TestGeometricMean_NonPositive(t *testing.T) {
	x := ndarr.FromSlice([]float64{1, -2, 3})

	_, err := norm.GeometricMean(x, 0, true)
	assert.ErrorIs(t, err, norm.ErrNonPositive)

	g, err := norm.GeometricMean(x, 0, false)
	require.NoError(t, err)
	v, err := g.Float()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "log of a negative value must poison the mean")
}

// TestNanHelpers exercises the exported NaN-aware scalar statistics.
func TestNanHelpers(t *testing.T) {
	nan := math.NaN()
	xs := []float64{1, nan, 2, 3}

	assert.InDelta(t, 2, norm.NanMean(xs), 1e-12)
	assert.InDelta(t, 2, norm.NanMedian(xs), 1e-12)
	assert.InDelta(t, math.Sqrt(2.0/3.0), norm.NanStd(xs), 1e-12)

	assert.True(t, math.IsNaN(norm.NanMean(nil)))
	assert.True(t, math.IsNaN(norm.NanMedian([]float64{nan})))
	assert.True(t, math.IsNaN(norm.NanStd(nil)))
}
