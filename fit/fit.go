package fit

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pwlfit/dist"
)

// Fit estimates a piecewise discrete power law from times by joint
// maximum likelihood over breakpoints and exponents.
//
// Pipeline (see the package doc for the full contract):
//  1. sort observations, sort and validate fixed breakpoints;
//  2. resolve the total breakpoint count (default ⌈8·N^0.2⌉);
//  3. restrict the candidate pool (tail reservation, exclusion
//     interval), each restriction ignorable with a warning;
//  4. generate the candidate grid under the MaxSet budget;
//  5. run constrained MLE per candidate (parallel when Workers > 1);
//  6. keep the best row, or all rows with Trace;
//  7. attach AIC/BIC.
//
// Individual degenerate candidates are skipped, not fatal; a
// completely infeasible request yields an all−Inf Result.Best that
// callers must check via Result.Feasible().  Only ErrNoObservations
// aborts.
func Fit(times []float64, opts Options) (Result, error) {
	if len(times) == 0 {
		return Result{}, ErrNoObservations
	}
	opts = opts.withDefaults()
	w := &warnings{logger: opts.Logger}

	x := append([]float64(nil), times...)
	sort.Float64s(x)
	n := len(x)
	tau0 := x[0]

	fixed := append([]float64(nil), opts.Breakpoints...)
	sort.Float64s(fixed)

	// The total count is pinned before validation: a fixed breakpoint
	// dropped below frees a slot for the grid search instead of
	// shrinking the model.
	nBreakTotal := totalBreakCount(opts.NBreak, len(fixed), n, w)

	fixed = validateFixed(x, tau0, fixed, w)
	nFree := nBreakTotal - len(fixed)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	pool := x
	if opts.Tol > 0 {
		pool = Coalesce(pool, opts.Tol)
	}
	pool = restrictPool(pool, nFree, opts, w)

	grid := generateGrid(pool, fixed, nBreakTotal, opts.MaxSet, true, rng)
	rows := evalGrid(x, tau0, grid, seed, opts.Workers)

	// Information criteria: n_k free parameters at the largest
	// considered model size, minus the user-pinned breakpoints.
	nk := 2*max(len(fixed), nBreakTotal) + 1
	free := float64(nk - len(fixed))
	logN := math.Log(float64(n))
	for i := range rows {
		rows[i].AIC = 2*free - 2*rows[i].LogLik
		rows[i].BIC = free*logN - 2*rows[i].LogLik
	}

	best := 0
	for i := 1; i < len(rows); i++ {
		if rows[i].LogLik > rows[best].LogLik {
			best = i
		}
	}

	res := Result{Best: rows[best], N: n, Warnings: w.list}
	if opts.Trace {
		res.Rows = rows
	}

	return res, nil
}

// totalBreakCount resolves the total number of breakpoints: an
// explicit request wins (floored at the fixed count), then the fixed
// count, then the sample-size default ⌈8·N^0.2⌉.
func totalBreakCount(nBreak, nFixed, n int, w *warnings) int {
	switch {
	case nBreak > 0 && nBreak < nFixed:
		w.warnf("requested %d breakpoints but %d are fixed; raising to %d", nBreak, nFixed, nFixed)
		return nFixed
	case nBreak > 0:
		return nBreak
	case nFixed > 0:
		return nFixed
	default:
		return int(math.Ceil(8 * math.Pow(float64(n), 0.2)))
	}
}

// validateFixed repeatedly checks that every interval induced by the
// fixed breakpoints holds more than one observation.  An offending
// breakpoint at either end is dropped; an interior offender is
// resolved by merging the two bounding breakpoints to their midpoint.
// Each repair emits a recoverable warning; the loop runs until stable
// or no breakpoints remain.
func validateFixed(x []float64, tau0 float64, fixed []float64, w *warnings) []float64 {
	for len(fixed) > 0 {
		breaks := append([]float64{tau0}, fixed...)
		counts := dist.Counts(x, breaks)

		bad := -1
		for i, c := range counts {
			if c <= 1 {
				bad = i
				break
			}
		}
		if bad < 0 {
			break
		}

		switch {
		case bad == len(counts)-1:
			w.warnf("fixed breakpoint %g leaves a near-empty tail; dropping it", fixed[len(fixed)-1])
			fixed = fixed[:len(fixed)-1]
		case bad == 0:
			w.warnf("fixed breakpoint %g leaves a near-empty head; dropping it", fixed[0])
			fixed = fixed[1:]
		default:
			mid := (fixed[bad-1] + fixed[bad]) / 2
			w.warnf("fixed breakpoints %g and %g induce a near-empty interval; merging to midpoint %g",
				fixed[bad-1], fixed[bad], mid)
			merged := append([]float64(nil), fixed[:bad-1]...)
			merged = append(merged, mid)
			merged = append(merged, fixed[bad+1:]...)
			fixed = merged
		}
	}

	return fixed
}

// restrictPool applies the candidate-time restrictions in priority
// order: tail reservation first, then the exclusion interval.  A
// restriction that would leave too few candidate times is ignored with
// a warning and the unrestricted pool is used.  pool must be sorted.
func restrictPool(pool []float64, nFree int, opts Options, w *warnings) []float64 {
	out := pool

	if opts.MinPtTail > 0 {
		if opts.MinPtTail >= len(out) {
			w.warnf("min_pt_tail %d reserves more observations than available (%d); restriction ignored",
				opts.MinPtTail, len(out))
		} else {
			out = out[:len(out)-opts.MinPtTail]
		}
	}

	if opts.ExcludeInt != nil {
		lo, hi := opts.ExcludeInt[0], opts.ExcludeInt[1]
		kept := make([]float64, 0, len(out))
		for _, v := range out {
			if v < lo || v > hi {
				kept = append(kept, v)
			}
		}
		if len(sortedUnique(kept)) <= 2*nFree {
			w.warnf("exclusion interval [%g, %g] leaves too few candidate times; restriction ignored", lo, hi)
		} else {
			out = kept
		}
	}

	return out
}

// evalGrid fits every candidate row.  Candidates are independent: each
// one owns a derived RNG and writes its own result slot, so the
// parallel path produces results identical to the sequential one.
func evalGrid(x []float64, tau0 float64, grid [][]float64, seed int64, workers int) []Row {
	rows := make([]Row, len(grid))
	eval := func(i int) {
		rows[i] = evalCandidate(x, tau0, grid[i], rand.New(rand.NewSource(seed+int64(i)+1)))
	}

	if workers > 1 {
		g := new(errgroup.Group)
		g.SetLimit(workers)
		for i := range grid {
			i := i
			g.Go(func() error {
				eval(i)
				return nil
			})
		}
		_ = g.Wait() // eval never returns an error
	} else {
		for i := range grid {
			eval(i)
		}
	}

	return rows
}

// evalCandidate builds the full partition (τ₀, row...) and runs the
// constrained MLE.  A sentinel row, an interval with ≤ 1 observation
// or a convergence failure all yield the −Inf row: skipped, not fatal.
func evalCandidate(x []float64, tau0 float64, row []float64, rng *rand.Rand) Row {
	if len(row) > 0 && math.IsInf(row[0], -1) {
		return infeasibleRow(len(row))
	}

	breaks := make([]float64, 0, len(row)+1)
	breaks = append(breaks, tau0)
	breaks = append(breaks, row...)

	for _, c := range dist.Counts(x, breaks) {
		if c <= 1 {
			return infeasibleRow(len(row))
		}
	}

	alphas, ll, err := maximizeLogLik(x, breaks, rng)
	if err != nil {
		return infeasibleRow(len(row))
	}

	return Row{Breaks: breaks, Alphas: alphas, LogLik: ll}
}

// infeasibleRow is the all−Inf "unfittable" sentinel sized for a
// partition with nBreaks breakpoints.
func infeasibleRow(nBreaks int) Row {
	inf := math.Inf(-1)
	breaks := make([]float64, nBreaks+1)
	alphas := make([]float64, nBreaks+1)
	for i := range breaks {
		breaks[i], alphas[i] = inf, inf
	}

	return Row{Breaks: breaks, Alphas: alphas, LogLik: inf}
}

// warnings accumulates recoverable-condition messages and mirrors them
// to the configured logger.
type warnings struct {
	logger *slog.Logger
	list   []string
}

func (w *warnings) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.logger.Warn(msg)
	w.list = append(w.list, msg)
}
