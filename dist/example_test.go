package dist_test

import (
	"fmt"

	"github.com/katalvlaran/pwlfit/dist"
)

// Partition a small sample into the intervals induced by (1, 3, 5) and
// count per-interval occupancy.
func ExampleCounts() {
	x := []float64{1, 2, 2, 3, 4, 5, 8, 13}
	fmt.Println(dist.Counts(x, []float64{1, 3, 5}))
	// Output: [3 2 3]
}

// The smallest integer whose cumulative mass reaches a level at or
// below zero is the partition floor itself.
func ExampleDist_Quantile() {
	d, _ := dist.New([]float64{1, 10}, []float64{1.5, 3.5})
	fmt.Println(d.Quantile(0))
	// Output: 1
}
