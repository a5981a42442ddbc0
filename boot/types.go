package boot

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pwlfit/fit"
)

// DefaultNSim is the default number of bootstrap rows (reference fit
// included).
const DefaultNSim = 100

// Options configures a bootstrap run.
//
// Breakpoints, NBreak, ExcludeInt, MinPtTail, MaxSet and Tol are
// forwarded to every underlying fit (see fit.Options).  The remaining
// fields are engine-specific:
//   - NSim     — total number of result rows, reference fit included;
//     0 means DefaultNSim.
//   - Parallel — distribute replicates across a worker pool.
//   - Workers  — pool size when Parallel; ≤ 0 uses GOMAXPROCS.
//   - Seed     — base RNG seed; every replicate derives its own
//     stream, so runs are reproducible sequentially and in parallel.
//   - Logger   — destination for engine warnings; nil discards.
//   - Observer — invoked once per completed replicate with the number
//     of replicates finished so far.  May be nil.
type Options struct {
	NSim        int
	Breakpoints []float64
	NBreak      int
	ExcludeInt  *[2]float64
	MinPtTail   int
	MaxSet      int
	Tol         float64
	Parallel    bool
	Workers     int
	Seed        int64
	Logger      *slog.Logger
	Observer    func(done int)
}

// DefaultOptions returns the zero-configuration defaults.
func DefaultOptions() Options {
	return Options{NSim: DefaultNSim}
}

// Result aggregates the bootstrap: exactly NSim rows, with Rows[0] the
// reference fit on the original data and the remainder replicate fits
// (failed replicates mean-imputed).  Failed counts how many rows were
// imputed.
type Result struct {
	Rows     []fit.Row
	N        int
	Failed   int
	Warnings []string
}

// BreakMatrix returns the achieved breakpoint vectors, one row per
// bootstrap row.  Rows whose partition length differs from the
// reference (a replicate that dropped a degenerate fixed breakpoint)
// are returned as-is; consumers aggregating columns should filter on
// length.
func (r Result) BreakMatrix() [][]float64 {
	m := make([][]float64, len(r.Rows))
	for i, row := range r.Rows {
		m[i] = append([]float64(nil), row.Breaks...)
	}

	return m
}

// AlphaMatrix returns the fitted exponent vectors, one row per
// bootstrap row.
func (r Result) AlphaMatrix() [][]float64 {
	m := make([][]float64, len(r.Rows))
	for i, row := range r.Rows {
		m[i] = append([]float64(nil), row.Alphas...)
	}

	return m
}

// AlphaColumn returns the j-th exponent across all replicate rows
// (reference row excluded), the shape needed for empirical percentile
// confidence intervals.  Rows not carrying a j-th exponent are
// skipped.
func (r Result) AlphaColumn(j int) []float64 {
	col := make([]float64, 0, len(r.Rows))
	for _, row := range r.Rows[1:] {
		if j < len(row.Alphas) {
			col = append(col, row.Alphas[j])
		}
	}

	return col
}

// BiasCorrectedAlphas applies the first-order correction
// 2·original − mean(bootstrap) to every exponent of the reference fit.
func (r Result) BiasCorrectedAlphas() []float64 {
	orig := r.Rows[0].Alphas
	out := make([]float64, len(orig))
	for j := range orig {
		out[j] = 2*orig[j] - stat.Mean(r.AlphaColumn(j), nil)
	}

	return out
}
