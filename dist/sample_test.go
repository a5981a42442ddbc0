package dist_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pwlfit/dist"
)

// TestSample_SupportAndBatchGuard: every draw sits on the support and
// every interval of an accepted batch holds more than 2 observations.
func TestSample_SupportAndBatchGuard(t *testing.T) {
	d, err := dist.New([]float64{1, 5}, []float64{1.8, 3.0})
	require.NoError(t, err)

	xs := d.Sample(rand.New(rand.NewSource(42)), 500)
	require.Len(t, xs, 500, "sample size must be honored")

	for _, v := range xs {
		assert.GreaterOrEqual(t, v, 1.0, "draws must sit on the support")
		assert.Equal(t, math.Trunc(v), v, "draws must be integers")
	}
	for i, c := range dist.Counts(xs, d.Breaks()) {
		assert.Greater(t, c, 2, "interval %d must hold more than 2 draws in an accepted batch", i)
	}
}

// TestSample_EmpiricalCDFConverges: the empirical CDF of a large
// seeded sample tracks the model CDF (Kolmogorov–Smirnov style bound).
func TestSample_EmpiricalCDFConverges(t *testing.T) {
	d, err := dist.New([]float64{1, 5}, []float64{1.8, 3.0})
	require.NoError(t, err)

	const n = 20000
	xs := d.Sample(rand.New(rand.NewSource(7)), n)
	sort.Float64s(xs)

	var maxGap float64
	for x := 1.0; x <= 200; x++ {
		// Empirical P(X <= x) on the sorted sample.
		idx := sort.SearchFloat64s(xs, x+0.5)
		emp := float64(idx) / n
		if gap := math.Abs(emp - d.CDF(x)); gap > maxGap {
			maxGap = gap
		}
	}
	assert.Less(t, maxGap, 0.03, "empirical CDF must converge to the model CDF")
}

// TestSample_Deterministic: a seeded source reproduces the batch.
func TestSample_Deterministic(t *testing.T) {
	d, err := dist.New([]float64{1, 5}, []float64{1.8, 3.0})
	require.NoError(t, err)

	a := d.Sample(rand.New(rand.NewSource(99)), 100)
	b := d.Sample(rand.New(rand.NewSource(99)), 100)
	assert.Equal(t, a, b, "identical seeds must reproduce the batch")
}
