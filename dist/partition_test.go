package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pwlfit/dist"
)

// TestIntervalIndex covers below-support, boundary and interior lookups.
func TestIntervalIndex(t *testing.T) {
	breaks := []float64{1, 3, 5}

	assert.Equal(t, -1, dist.IntervalIndex(0.5, breaks), "below the floor belongs to no interval")
	assert.Equal(t, 0, dist.IntervalIndex(1, breaks), "the floor opens the first interval")
	assert.Equal(t, 0, dist.IntervalIndex(2.9, breaks), "just below a break stays left")
	assert.Equal(t, 1, dist.IntervalIndex(3, breaks), "a break opens its own interval")
	assert.Equal(t, 2, dist.IntervalIndex(1e9, breaks), "the last interval is closed at infinity")
}

// TestAssign_HalfOpenIntervals checks membership sets and that empty
// intervals are valid.
func TestAssign_HalfOpenIntervals(t *testing.T) {
	x := []float64{0.2, 1, 2, 3, 4, 8}
	breaks := []float64{1, 3, 5}

	sets := dist.Assign(x, breaks)
	assert.Equal(t, []int{1, 2}, sets[0], "first interval holds [1,3)")
	assert.Equal(t, []int{3, 4}, sets[1], "second interval holds [3,5)")
	assert.Equal(t, []int{5}, sets[2], "tail interval holds [5,inf)")

	counts := dist.Counts(x, breaks)
	assert.Equal(t, []int{2, 2, 1}, counts, "counts must mirror assignment sizes")

	empty := dist.Counts([]float64{1, 2}, breaks)
	assert.Equal(t, []int{2, 0, 0}, empty, "empty intervals signal zero, not an error")
}
