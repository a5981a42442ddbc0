package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// PMF — probability mass at x.
//
// Description:
//
//	With j the innermost interval holding x (the largest τ not
//	exceeding x), the mass is
//
//		P(X = x) = x^(−α_j) / ζ(α_j, τ_{j-1}) · C_{j-1}
//
//	where C_{j-1} is the continuity constant carrying the cumulative
//	mass of all intervals left of R_j.
//
// Returns 0 (not an error) for x below the partition floor.
func (d *Dist) PMF(x float64) float64 {
	j := IntervalIndex(x, d.breaks)
	if j < 0 {
		return 0
	}

	return math.Pow(x, -d.alphas[j]) / d.zetas[j] * d.consts[j]
}

// CDF — cumulative probability P(X ≤ x).
//
// The distribution lives on the integers, so the survival tail past x
// starts strictly above ⌊x⌋; the zeta shift is therefore ⌊x⌋+1:
//
//	P(X ≤ x) = 1 − ζ(α_j, ⌊x⌋+1) / ζ(α_j, τ_{j-1}) · C_{j-1}
//
// Returns 0 for x below the partition floor.  CDF is a right-continuous
// non-decreasing step function.
func (d *Dist) CDF(x float64) float64 {
	xf := math.Floor(x)
	j := IntervalIndex(xf, d.breaks)
	if j < 0 {
		return 0
	}

	return 1 - mathext.Zeta(d.alphas[j], xf+1)/d.zetas[j]*d.consts[j]
}

// Survival — upper tail probability P(X > x) = 1 − CDF(x).
func (d *Dist) Survival(x float64) float64 {
	return 1 - d.CDF(x)
}

// Hazard — discrete hazard P(X = x | X ≥ x) = PMF(x) / Survival(x−1).
// Returns 0 for x below the partition floor.
func (d *Dist) Hazard(x float64) float64 {
	if IntervalIndex(x, d.breaks) < 0 {
		return 0
	}

	return d.PMF(x) / d.Survival(x-1)
}

// Quantile — the smallest integer x ≥ τ₀ with CDF(x) ≥ u.
//
// The scan walks upward from τ₀ one integer at a time; monotonicity of
// the CDF guarantees termination for u ∈ (0,1).  There is deliberately
// no upper bound: for u extremely close to 1 combined with a heavy
// tail (α near 1) the scan can visit very many integers, and callers
// must guard against u outside (0,1).
func (d *Dist) Quantile(u float64) float64 {
	x := math.Ceil(d.breaks[0])
	for d.CDF(x) < u {
		x++
	}

	return x
}

// PMFEach returns PMF(xs[i]) for each i.  Evaluations are independent.
func (d *Dist) PMFEach(xs []float64) []float64 {
	return each(xs, d.PMF)
}

// CDFEach returns CDF(xs[i]) for each i.
func (d *Dist) CDFEach(xs []float64) []float64 {
	return each(xs, d.CDF)
}

// SurvivalEach returns Survival(xs[i]) for each i.
func (d *Dist) SurvivalEach(xs []float64) []float64 {
	return each(xs, d.Survival)
}

// HazardEach returns Hazard(xs[i]) for each i.
func (d *Dist) HazardEach(xs []float64) []float64 {
	return each(xs, d.Hazard)
}

// QuantileEach returns Quantile(us[i]) for each i.
func (d *Dist) QuantileEach(us []float64) []float64 {
	return each(us, d.Quantile)
}

// each applies a pure scalar function point-wise; the scalar case is
// just the length-1 special case of this.
func each(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}

	return out
}
