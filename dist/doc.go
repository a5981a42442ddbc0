// Package dist implements the piecewise discrete power-law
// distribution: a probability model on the integers whose scaling
// exponent changes at a finite set of breakpoints.
//
// 🚀 What is the piecewise discrete power law?
//
//	The support [τ₀, ∞) is split into contiguous half-open intervals
//	R_j = [τ_{j-1}, τ_j) by a strictly increasing partition vector
//	p = (τ₀, τ₁, …, τ_k); the last interval is closed at +∞.  Inside
//	R_j the probability of observing x is proportional to x^(−α_j),
//	normalized by the Hurwitz zeta function ζ(α_j, τ_{j-1}) and glued
//	to its neighbors with continuity constants C₀…C_k so cumulative
//	mass is continuous across boundaries:
//		• C₀ = 1
//		• C_i = C_{i-1} · ζ(α_i, τ_i) / ζ(α_i, τ_{i-1})
//		• C_{k+1} = 0 by convention (open-ended final interval)
//
// ✨ Key features:
//   - PMF, CDF, Survival, Hazard, Quantile and Sample, each with a
//     vectorized ...Each companion (every point is independent, so
//     callers may evaluate concurrently)
//   - Exact discrete normalization through gonum's Hurwitz zeta
//   - Interval bookkeeping (Assign / Counts / IntervalIndex) shared
//     with the fitting machinery
//   - Seeded sampling via an injected *rand.Rand
//
// ⚙️ Usage:
//
//	d, err := dist.New([]float64{1, 10}, []float64{1.5, 3.5})
//	if err != nil {
//	  // ErrNonIncreasingBreaks, ErrAlphaOutOfRange, ...
//	}
//	fmt.Println(d.PMF(15))                  // single point
//	xs := d.Sample(rand.New(rand.NewSource(42)), 1000)
//	fmt.Println(dist.Counts(xs, d.Breaks())) // per-interval occupancy
//
// Numerical notes:
//
//   - Quantile scans upward from τ₀ with no upper bound; for u very
//     close to 1 with an exponent near 1 the scan can visit very many
//     integers.  Callers must guard u outside (0,1).
//   - Sample retries whole batches until every interval holds more
//     than 2 draws; for parameter sets with vanishing interval mass
//     this rejection loop may not terminate.
package dist
