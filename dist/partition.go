package dist

import "sort"

// IntervalIndex returns the index of the innermost interval holding v:
// the largest j with breaks[j] ≤ v, or -1 when v lies below the
// partition floor.  breaks must be sorted ascending.
func IntervalIndex(v float64, breaks []float64) int {
	// First position where breaks[i] > v; the interval owner is one left.
	return sort.Search(len(breaks), func(i int) bool { return breaks[i] > v }) - 1
}

// Assign maps each observation to its half-open interval
// [breaks[j], breaks[j+1]) — the last interval is closed at +∞ — and
// returns one index set per interval.  Observations below breaks[0]
// belong to no interval and are dropped.
//
// Empty intervals are valid and simply come back as empty sets; the
// caller decides whether that is fatal.
func Assign(x, breaks []float64) [][]int {
	sets := make([][]int, len(breaks))
	for i, v := range x {
		if j := IntervalIndex(v, breaks); j >= 0 {
			sets[j] = append(sets[j], i)
		}
	}

	return sets
}

// Counts returns the per-interval occupancy of x under breaks.
// It is the cheap companion of Assign for callers that only need
// sizes, not membership.
func Counts(x, breaks []float64) []int {
	counts := make([]int, len(breaks))
	for _, v := range x {
		if j := IntervalIndex(v, breaks); j >= 0 {
			counts[j]++
		}
	}

	return counts
}
