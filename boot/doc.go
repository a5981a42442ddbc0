// Package boot bias-corrects piecewise power-law fits by bootstrap
// resampling: resample the data with replacement, refit each
// resample, and aggregate the replicate estimates.
//
// 🚀 The procedure:
//
//	 1. Fit the original data once — the reference fit, row 0.
//	 2. Optionally coalesce near-tied observations (Tol) so the
//	    breakpoint candidate grid stays stable across resamples.
//	 3. Draw NSim−1 resamples of size N with replacement and refit
//	    each one.  Sequentially, a resample that leaves some
//	    reference interval with ≤ 1 observation is skipped outright;
//	    in parallel mode failed fits are simply dropped.
//	 4. Replace failed replicate rows with the column-wise mean of
//	    the successful rows, so the result always carries exactly
//	    NSim rows.
//
//	Downstream, the replicate matrices support the usual first-order
//	bias correction
//
//		α̂_bc = 2·α̂_original − mean(α̂_bootstrap)
//
//	(see Result.BiasCorrectedAlphas) and empirical percentile
//	confidence intervals over Result.AlphaColumn.
//
// ✨ Notes:
//   - Replicates are independent; parallel mode runs them on a fixed
//     worker pool and merges results order-independently.  Consumers
//     must rely on row content and total count, not row order.
//   - Expected estimation warnings inside replicate fits are
//     suppressed; the engine only surfaces its own conditions.
//   - An optional Observer callback fires once per completed
//     replicate (progress reporting); no core logic depends on it.
//
// ⚙️ Usage:
//
//	res, err := boot.Bootstrap(times, boot.Options{NSim: 100, Seed: 7})
//	if err != nil { ... }
//	fmt.Println(res.BiasCorrectedAlphas())
package boot
