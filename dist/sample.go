package dist

import (
	"math/rand"
	"time"
)

// minPerInterval is the occupancy every interval must reach before a
// sampled batch is accepted.  Later estimation needs more than two
// points per segment, so degenerate batches are rejected wholesale.
const minPerInterval = 2

// Sample draws n variates by inverting n uniform(0,1) deviates through
// Quantile.
//
// The whole batch is rejected and redrawn until every partition
// interval receives more than 2 observations — a guard against
// degenerate samples with too few points per segment for estimation.
// The retry loop is unbounded: for parameter sets where some interval
// carries vanishing mass it may not terminate.
//
// rng may be nil, in which case a time-seeded source is used (pass a
// seeded *rand.Rand for reproducibility).
func (d *Dist) Sample(rng *rand.Rand, n int) []float64 {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	out := make([]float64, n)
	for {
		for i := range out {
			out[i] = d.Quantile(rng.Float64())
		}
		if wellPopulated(Counts(out, d.breaks)) {
			return out
		}
	}
}

// wellPopulated reports whether every interval holds more than
// minPerInterval observations.
func wellPopulated(counts []int) bool {
	for _, c := range counts {
		if c <= minPerInterval {
			return false
		}
	}

	return true
}
