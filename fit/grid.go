package fit

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// generateGrid enumerates (or subsamples) candidate breakpoint rows
// from the observed times, respecting the combinatorial budget maxSet.
//
// Steps:
//  1. Deduplicate times.
//  2. Optionally drop the smallest value — it is the partition floor
//     and never makes a useful breakpoint.
//  3. Remove any time equal to, or the sorted nearest neighbor of, a
//     fixed breakpoint (avoids degenerate zero-width intervals).
//  4. With nFree = nBreakTotal − len(fixed) free breakpoints left to
//     choose: if C(pool, nFree) exceeds maxSet, binary-search the
//     largest pool size whose combination count fits the budget and
//     uniformly subsample the pool down to it.
//  5. Enumerate all nFree-combinations; if the row count still exceeds
//     maxSet, uniformly subsample rows without replacement.
//  6. Merge every free combination with the fixed breakpoints, sorted.
//
// A pool smaller than nFree yields a single all−Inf sentinel row,
// signaling the fitter to report a degenerate result.
func generateGrid(times, fixed []float64, nBreakTotal, maxSet int, removeFirst bool, rng *rand.Rand) [][]float64 {
	cand := sortedUnique(times)
	if removeFirst && len(cand) > 0 {
		cand = cand[1:]
	}
	cand = pruneNearFixed(cand, fixed)

	nFree := nBreakTotal - len(fixed)
	if nFree <= 0 {
		row := append([]float64(nil), fixed...)
		sort.Float64s(row)
		return [][]float64{row}
	}
	if len(cand) < nFree {
		return [][]float64{sentinelRow(nBreakTotal)}
	}

	budget := float64(maxSet)
	if combin.GeneralizedBinomial(float64(len(cand)), float64(nFree)) > budget {
		m := poolSizeForBudget(len(cand), nFree, budget)
		cand = subsample(cand, m, rng)
		sort.Float64s(cand)
	}

	combos := combin.Combinations(len(cand), nFree)
	if len(combos) > maxSet {
		perm := rng.Perm(len(combos))
		picked := make([][]int, maxSet)
		for i := range picked {
			picked[i] = combos[perm[i]]
		}
		combos = picked
	}

	rows := make([][]float64, len(combos))
	for i, combo := range combos {
		row := make([]float64, 0, nBreakTotal)
		for _, ci := range combo {
			row = append(row, cand[ci])
		}
		row = append(row, fixed...)
		sort.Float64s(row)
		rows[i] = row
	}

	return rows
}

// poolSizeForBudget binary-searches the largest pool size whose
// nFree-combination count stays at or below budget.  The float bounds
// and the (nr−nl) > 1.1 stop rule are load-bearing: downstream
// candidate sets are sensitive to the exact boundary.
func poolSizeForBudget(pool, nFree int, budget float64) int {
	nl, nr := float64(nFree), float64(pool)
	for nr-nl > 1.1 {
		mid := math.Floor((nl + nr) / 2)
		if combin.GeneralizedBinomial(mid, float64(nFree)) > budget {
			nr = mid
		} else {
			nl = mid
		}
	}

	return int(nl)
}

// pruneNearFixed removes candidates equal to a fixed breakpoint or
// immediately adjacent to one in sorted order.  Adjacent candidates
// would induce an interval containing at most one observed value.
func pruneNearFixed(cand, fixed []float64) []float64 {
	if len(fixed) == 0 || len(cand) == 0 {
		return cand
	}

	drop := make(map[int]struct{}, 3*len(fixed))
	mark := func(i int) {
		if i >= 0 && i < len(cand) {
			drop[i] = struct{}{}
		}
	}
	for _, f := range fixed {
		i := sort.SearchFloat64s(cand, f)
		if i < len(cand) && cand[i] == f {
			mark(i - 1)
			mark(i)
			mark(i + 1)
		} else {
			mark(i - 1) // nearest neighbor below
			mark(i)     // nearest neighbor above
		}
	}

	kept := make([]float64, 0, len(cand)-len(drop))
	for i, v := range cand {
		if _, gone := drop[i]; !gone {
			kept = append(kept, v)
		}
	}

	return kept
}

// subsample picks m values uniformly without replacement.
func subsample(vals []float64, m int, rng *rand.Rand) []float64 {
	if m >= len(vals) {
		return vals
	}
	perm := rng.Perm(len(vals))
	out := make([]float64, m)
	for i := 0; i < m; i++ {
		out[i] = vals[perm[i]]
	}

	return out
}

// sortedUnique returns the ascending distinct values of xs.
func sortedUnique(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// sentinelRow encodes "no valid candidate" as a row of −Inf.
func sentinelRow(n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = math.Inf(-1)
	}

	return row
}
