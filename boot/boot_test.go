package boot_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pwlfit/boot"
	"github.com/katalvlaran/pwlfit/dist"
	"github.com/katalvlaran/pwlfit/fit"
)

func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// synthetic draws a seeded sample from a known piecewise power law.
func synthetic(t *testing.T, breaks, alphas []float64, n int, seed int64) []float64 {
	t.Helper()
	d, err := dist.New(breaks, alphas)
	require.NoError(t, err)
	return d.Sample(newRand(seed), n)
}

// TestBootstrap_EmptyInput: an empty sample is the only fatal input.
func TestBootstrap_EmptyInput(t *testing.T) {
	_, err := boot.Bootstrap(nil, boot.DefaultOptions())
	assert.ErrorIs(t, err, fit.ErrNoObservations, "empty input must error")
}

// TestBootstrap_ExactRowCount: the result always carries NSim rows,
// with the reference fit in row 0, no matter how many replicates fail.
func TestBootstrap_ExactRowCount(t *testing.T) {
	xs := synthetic(t, []float64{1, 3}, []float64{1.6, 2.8}, 300, 5)

	res, err := boot.Bootstrap(xs, boot.Options{NSim: 20, Breakpoints: []float64{3}, Seed: 9})
	require.NoError(t, err)

	assert.Len(t, res.Rows, 20, "exactly NSim rows, failures included")
	assert.Equal(t, []float64{1, 3}, res.Rows[0].Breaks, "row 0 is the reference fit")
	assert.Equal(t, 300, res.N)
}

// TestBootstrap_DeterministicWithSeed: identical inputs and seed must
// reproduce the whole replicate collection.
func TestBootstrap_DeterministicWithSeed(t *testing.T) {
	xs := synthetic(t, []float64{1, 3}, []float64{1.6, 2.8}, 200, 5)
	opts := boot.Options{NSim: 15, Breakpoints: []float64{3}, Seed: 31}

	r1, err := boot.Bootstrap(xs, opts)
	require.NoError(t, err)
	r2, err := boot.Bootstrap(xs, opts)
	require.NoError(t, err)

	assert.Equal(t, r1, r2, "seeded bootstraps must be reproducible")
}

// TestBootstrap_ParallelDeterministic: every replicate owns its seed
// stream and row slot, so the parallel engine is reproducible too.
func TestBootstrap_ParallelDeterministic(t *testing.T) {
	xs := synthetic(t, []float64{1, 3}, []float64{1.6, 2.8}, 200, 5)
	opts := boot.Options{NSim: 15, Breakpoints: []float64{3}, Seed: 31, Parallel: true, Workers: 4}

	r1, err := boot.Bootstrap(xs, opts)
	require.NoError(t, err)
	r2, err := boot.Bootstrap(xs, opts)
	require.NoError(t, err)

	assert.Equal(t, r1, r2, "seeded parallel bootstraps must be reproducible")
	assert.Len(t, r1.Rows, 15)
}

// TestBootstrap_ImputationKeepsCollectionFull: a sample with a thin
// tail makes some resamples degenerate; the failed replicates are
// mean-imputed so every row stays usable.
func TestBootstrap_ImputationKeepsCollectionFull(t *testing.T) {
	// 30 head observations and a 3-observation tail past the fixed
	// breakpoint: resampling regularly starves the tail interval.
	xs := make([]float64, 0, 33)
	for i := 0; i < 30; i++ {
		xs = append(xs, float64(1+i%5))
	}
	xs = append(xs, 50, 52, 55)

	res, err := boot.Bootstrap(xs, boot.Options{NSim: 50, Breakpoints: []float64{50}, Seed: 7})
	require.NoError(t, err)

	require.Len(t, res.Rows, 50)
	assert.Positive(t, res.Failed, "the thin tail must starve some resamples")
	for i, row := range res.Rows {
		assert.True(t, row.Feasible(), "row %d must be real or imputed, never a sentinel", i)
	}
	assert.NotEmpty(t, res.Warnings, "imputation must be warned about")
}

// TestBootstrap_ObserverReportsProgress: the callback fires once per
// replicate.
func TestBootstrap_ObserverReportsProgress(t *testing.T) {
	xs := synthetic(t, []float64{1, 3}, []float64{1.6, 2.8}, 150, 5)

	calls := 0
	_, err := boot.Bootstrap(xs, boot.Options{
		NSim:        10,
		Breakpoints: []float64{3},
		Seed:        3,
		Observer:    func(done int) { calls++ },
	})
	require.NoError(t, err)
	assert.Equal(t, 9, calls, "one callback per replicate, reference excluded")
}

// TestBootstrap_InfeasibleReference: when even the original data cannot
// be fitted, the collection is filled with the sentinel reference row
// and flagged, without raising.
func TestBootstrap_InfeasibleReference(t *testing.T) {
	res, err := boot.Bootstrap([]float64{1, 1, 1, 1, 2, 2}, boot.Options{NSim: 8, NBreak: 3, Seed: 1})
	require.NoError(t, err, "infeasibility is not an error")

	require.Len(t, res.Rows, 8)
	assert.False(t, res.Rows[0].Feasible(), "reference row carries the sentinel")
	assert.Equal(t, 7, res.Failed, "every replicate counts as failed")
	for _, row := range res.Rows[1:] {
		assert.Equal(t, res.Rows[0], row, "replicates mirror the sentinel reference")
	}
	assert.NotEmpty(t, res.Warnings)
}

// TestBootstrap_BiasCorrectedAlphas: the correction has the reference
// shape and stays near the reference exponents on a clean sample.
func TestBootstrap_BiasCorrectedAlphas(t *testing.T) {
	xs := synthetic(t, []float64{1, 3}, []float64{1.6, 2.8}, 500, 13)

	res, err := boot.Bootstrap(xs, boot.Options{NSim: 30, Breakpoints: []float64{3}, Seed: 17})
	require.NoError(t, err)

	corrected := res.BiasCorrectedAlphas()
	require.Len(t, corrected, len(res.Rows[0].Alphas))
	for j, a := range corrected {
		assert.InDelta(t, res.Rows[0].Alphas[j], a, 0.5, "correction %d must stay near the reference", j+1)
	}
}

// TestBootstrap_Matrices: the matrix accessors copy, row per bootstrap
// row.
func TestBootstrap_Matrices(t *testing.T) {
	xs := synthetic(t, []float64{1, 3}, []float64{1.6, 2.8}, 200, 5)

	res, err := boot.Bootstrap(xs, boot.Options{NSim: 10, Breakpoints: []float64{3}, Seed: 23})
	require.NoError(t, err)

	bm, am := res.BreakMatrix(), res.AlphaMatrix()
	require.Len(t, bm, 10)
	require.Len(t, am, 10)
	assert.Equal(t, res.Rows[0].Breaks, bm[0])

	bm[0][0] = -1
	assert.NotEqual(t, -1.0, res.Rows[0].Breaks[0], "matrices must be copies")

	col := res.AlphaColumn(0)
	assert.Len(t, col, 9, "column spans replicates only")
}
