// Package fit estimates piecewise discrete power-law models by joint
// maximum likelihood over breakpoints and exponents.
//
// 🚀 How fitting works:
//
//	Breakpoints can only sit on observed values, so the search is
//	combinatorial rather than continuous:
//	 1. Build a candidate pool from the (deduplicated) observations,
//	    optionally reserving a tail or excluding an interval.
//	 2. Enumerate breakpoint combinations from the pool.  When the
//	    combination count blows past the budget (MaxSet), binary-search
//	    the largest pool size that fits, subsample, and enumerate that.
//	 3. For each candidate partition, maximize the discrete
//	    log-likelihood over the exponents (Nelder–Mead on
//	    log-transformed exponents, enforcing αⱼ > 1.01).
//	 4. Keep the best candidate (or all of them with Trace) and report
//	    AIC/BIC.
//
// ✨ Failure semantics (degrade, don't crash):
//   - A fixed breakpoint inducing an empty or singleton interval is
//     dropped or merged with a warning, never fatal.
//   - A candidate restriction leaving too few candidate times is
//     ignored with a warning.
//   - A candidate partition with a thin interval is skipped locally.
//   - When nothing is fittable the result is a single all−Inf row;
//     check Result.Feasible().
//   - Only invalid parameters (empty data, mismatched vectors) return
//     an error.
//
// ⚙️ Usage:
//
//	res, err := fit.Fit(times, fit.Options{NBreak: 2, Seed: 42})
//	if err != nil { ... }
//	if !res.Feasible() { ... } // no candidate could be estimated
//	fmt.Println(res.Best.Breaks, res.Best.Alphas, res.Best.LogLik)
//
// Determinism: with a non-zero Seed, identical inputs yield identical
// candidate rows and the identical best row, including under Workers>1
// (every candidate owns a derived RNG and a result slot).
package fit
