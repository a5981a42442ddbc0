package fit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pwlfit/dist"
	"github.com/katalvlaran/pwlfit/fit"
)

// TestLogLik_MatchesPointwisePMF: the closed-form likelihood must
// agree with summing log PMF over the sample — they are algebraically
// the same quantity.
func TestLogLik_MatchesPointwisePMF(t *testing.T) {
	breaks := []float64{1, 10}
	alphas := []float64{1.5, 3.5}
	x := []float64{1, 2, 2, 3, 5, 8, 12, 15, 40}

	d, err := dist.New(breaks, alphas)
	require.NoError(t, err)

	var want float64
	for _, v := range x {
		want += math.Log(d.PMF(v))
	}

	got, err := fit.LogLik(alphas, x, breaks)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-10, "log-likelihood must equal the summed log PMF")
}

// TestLogLik_PrefersTrueExponents: the likelihood at the generating
// parameters beats clearly wrong ones on a decent sample.
func TestLogLik_PrefersTrueExponents(t *testing.T) {
	breaks := []float64{1, 10}
	d, err := dist.New(breaks, []float64{1.5, 3.5})
	require.NoError(t, err)
	xs := d.Sample(newRand(21), 2000)

	atTruth, err := fit.LogLik([]float64{1.5, 3.5}, xs, breaks)
	require.NoError(t, err)
	wrong, err := fit.LogLik([]float64{3.5, 1.5}, xs, breaks)
	require.NoError(t, err)

	assert.Greater(t, atTruth, wrong, "truth must out-score swapped exponents")
}

// TestLogLik_InvalidParameter surfaces the fatal sentinels.
func TestLogLik_InvalidParameter(t *testing.T) {
	x := []float64{1, 2, 3}

	_, err := fit.LogLik([]float64{1.5}, x, []float64{1, 10})
	assert.ErrorIs(t, err, fit.ErrLengthMismatch, "mismatched vectors must be fatal")

	_, err = fit.LogLik([]float64{1.5, 0.9}, x, []float64{1, 10})
	assert.ErrorIs(t, err, dist.ErrAlphaOutOfRange, "an exponent at or below 1 must be fatal")

	_, err = fit.LogLik([]float64{1.5, 2.5}, x, []float64{10, 1})
	assert.ErrorIs(t, err, dist.ErrNonIncreasingBreaks, "a non-increasing partition must be fatal")
}
