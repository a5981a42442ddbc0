package fit

import (
	"io"
	"log/slog"
	"math"
)

// DefaultMaxSet is the default combinatorial budget: the maximum
// number of breakpoint candidate rows evaluated per fit.
const DefaultMaxSet = 1000

// Options configures a fit.
//
// Fields:
//   - Breakpoints — user-fixed breakpoints (τ₁-level values, not τ₀).
//     They are validated against the data and may be dropped or merged
//     with a warning when they induce empty or singleton intervals.
//   - NBreak      — total number of breakpoints (fixed + free).  0
//     derives a default: len(Breakpoints) when fixed breakpoints are
//     given, else ⌈8·N^0.2⌉ from the sample size.
//   - ExcludeInt  — optional [lo, hi] interval whose observed values
//     are removed from the candidate pool.  Ignored with a warning
//     when it would leave too few candidate times.
//   - MinPtTail   — number of largest observations reserved from the
//     candidate pool (breakpoints never land in the reserved tail).
//     Ignored with a warning when it exceeds the sample size.
//   - MaxSet      — combinatorial budget; 0 means DefaultMaxSet.
//   - Trace       — keep every evaluated candidate row in Result.Rows
//     for diagnostic inspection instead of only the best row.
//   - Tol         — relative tolerance for coalescing near-duplicate
//     candidate times (gap < Tol·range merges into the last anchor);
//     0 disables coalescing.
//   - Seed        — RNG seed for initial exponent values and pool
//     subsampling; 0 seeds from the clock (non-reproducible).
//   - Workers     — candidate optimizations run on a pool of this many
//     goroutines when > 1; results are identical to sequential runs.
//   - Logger      — destination for recoverable-condition warnings;
//     nil discards them (they are still collected in Result.Warnings).
type Options struct {
	Breakpoints []float64
	NBreak      int
	ExcludeInt  *[2]float64
	MinPtTail   int
	MaxSet      int
	Trace       bool
	Tol         float64
	Seed        int64
	Workers     int
	Logger      *slog.Logger
}

// DefaultOptions returns the zero-configuration defaults: derived
// breakpoint count, DefaultMaxSet budget, sequential execution.
func DefaultOptions() Options {
	return Options{MaxSet: DefaultMaxSet}
}

// withDefaults resolves zero values so downstream code is branch-free.
func (o Options) withDefaults() Options {
	if o.MaxSet <= 0 {
		o.MaxSet = DefaultMaxSet
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Row is one fitted candidate: a full partition vector (τ₀..τ_k), the
// per-interval exponents, the attained log-likelihood and the
// information criteria.  An unfittable candidate is encoded as an
// all−Inf row.
type Row struct {
	Breaks []float64
	Alphas []float64
	LogLik float64
	AIC    float64
	BIC    float64
}

// Feasible reports whether the row carries an actual fit rather than
// the −Inf sentinel.
func (r Row) Feasible() bool {
	return !math.IsInf(r.LogLik, -1) && !math.IsNaN(r.LogLik)
}

// Result is the outcome of Fit.
//
// Best is the highest-likelihood row (ties broken by first
// occurrence).  Rows holds every evaluated candidate when Trace was
// set, in candidate order.  Warnings lists recoverable conditions that
// were worked around during the fit.
type Result struct {
	Best     Row
	Rows     []Row
	N        int
	Warnings []string
}

// Feasible reports whether any candidate could be estimated.  A false
// return is the non-throwing "no feasible fit" signal: every candidate
// was unfittable or the grid generator could not produce a pool.
func (r Result) Feasible() bool {
	return r.Best.Feasible()
}
