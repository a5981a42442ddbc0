package fit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pwlfit/fit"
)

// TestCoalesce_SnapsNearTiesToAnchor: values within tol·range of the
// last retained anchor collapse onto it; the multiset size is kept.
func TestCoalesce_SnapsNearTiesToAnchor(t *testing.T) {
	vals := []float64{1, 1.001, 2, 5, 5.004, 10}

	got := fit.Coalesce(vals, 0.01) // window = 0.01 * 9 = 0.09
	assert.Equal(t, []float64{1, 1, 2, 5, 5, 10}, got, "near-ties snap to their anchor")
	assert.Len(t, got, len(vals), "coalescing replaces values, never drops them")
}

// TestCoalesce_ZeroTolIsNoop: tol = 0 must return the input untouched.
func TestCoalesce_ZeroTolIsNoop(t *testing.T) {
	vals := []float64{1, 1.0000001, 2}
	assert.Equal(t, vals, fit.Coalesce(vals, 0), "tol=0 disables coalescing")
}

// TestCoalesce_ChainDoesNotDrift: the anchor only advances on a real
// gap, so a slow drift of near-ties all snap to the first anchor.
func TestCoalesce_ChainDoesNotDrift(t *testing.T) {
	vals := []float64{1, 1.04, 1.08, 2}

	got := fit.Coalesce(vals, 0.1) // window = 0.1 * 1 = 0.1
	assert.Equal(t, []float64{1, 1, 1, 2}, got, "drifting ties anchor to the first value")
}
