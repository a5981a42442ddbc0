package fit

// Coalesce merges near-duplicate values in a sorted sample within a
// relative tolerance window: any value whose gap from the last
// retained anchor is smaller than tol·range is snapped to that anchor.
// The multiset size is preserved — values are replaced, not dropped.
//
// This stabilizes the breakpoint candidate grid against near-tied
// observations; the bootstrap applies it to the data before
// resampling, the fitter to the candidate pool.  tol = 0 is a no-op.
func Coalesce(sortedVals []float64, tol float64) []float64 {
	if tol == 0 || len(sortedVals) == 0 {
		return sortedVals
	}

	window := tol * (sortedVals[len(sortedVals)-1] - sortedVals[0])
	out := make([]float64, len(sortedVals))
	anchor := sortedVals[0]
	out[0] = anchor
	for i := 1; i < len(sortedVals); i++ {
		if v := sortedVals[i]; v-anchor < window {
			out[i] = anchor
		} else {
			anchor = v
			out[i] = v
		}
	}

	return out
}
