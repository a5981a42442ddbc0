// Package pwlfit fits piecewise discrete power-law models to
// count-valued data — estimating where the scaling exponent changes
// and how steep each regime is.
//
// 🚀 What is pwlfit?
//
//	Many empirical counts (word frequencies, degree distributions,
//	casualty sizes, file transfers) follow a power law whose exponent
//	is not constant across the whole support.  pwlfit models the
//	support as contiguous intervals separated by change points
//	(breakpoints), each interval governed by its own exponent, with
//	the density kept continuous in cumulative mass across boundaries:
//		• Breakpoint search: enumerate candidate change-point sets
//		  from the observed values under a combinatorial budget
//		• Exponent estimation: constrained maximum likelihood per
//		  candidate, best candidate wins
//		• Uncertainty: bootstrap resampling with bias correction and
//		  percentile confidence intervals
//
// ✨ Why choose pwlfit?
//
//   - Exact discrete likelihood — Hurwitz-zeta normalization, no
//     continuous approximation of integer-valued data
//   - Honest degradation — degenerate breakpoints, thin intervals and
//     failed bootstrap replicates are warned about and worked around,
//     never crashed on
//   - Deterministic — every stochastic step takes an explicit seed
//
// Under the hood, everything is organized under three subpackages:
//
//	dist/ — the piecewise distribution itself: PMF, CDF, survival,
//	        hazard, quantile and sampling, plus the normalizing-constant
//	        recursion and interval bookkeeping
//	fit/  — log-likelihood, breakpoint grid generation and the
//	        maximum-likelihood model fitter (AIC/BIC reporting)
//	boot/ — bootstrap resampling, replicate aggregation and mean
//	        imputation of failed replicates
//
// A thin CLI lives in cmd/pwlfit; runnable walkthroughs in examples/.
package pwlfit
