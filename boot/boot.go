package boot

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pwlfit/dist"
	"github.com/katalvlaran/pwlfit/fit"
)

// replicateSeedStride separates the derived RNG streams of individual
// replicates.
const replicateSeedStride = 7919

// Bootstrap runs the full resampling procedure described in the
// package doc and returns exactly opts.NSim rows.
//
// Only an empty sample (or an invalid-parameter failure of the
// reference fit) returns an error; per-replicate failures degrade to
// mean imputation.
func Bootstrap(times []float64, opts Options) (Result, error) {
	if len(times) == 0 {
		return Result{}, fit.ErrNoObservations
	}
	opts = opts.withDefaults()
	w := &warnings{logger: opts.Logger}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Reference fit on the original data: row 0.
	ref, err := fit.Fit(times, opts.fitOptions(seed, opts.Logger))
	if err != nil {
		return Result{}, fmt.Errorf("boot: reference fit: %w", err)
	}

	rows := make([]fit.Row, opts.NSim)
	rows[0] = ref.Best

	if !ref.Feasible() {
		w.warnf("reference fit is infeasible; replicates cannot be screened or imputed")
		for i := 1; i < opts.NSim; i++ {
			rows[i] = ref.Best
		}
		return Result{Rows: rows, N: len(times), Failed: opts.NSim - 1, Warnings: w.list}, nil
	}

	// Near-tied observations destabilize the candidate grid across
	// resamples; coalesce them once, before any resampling.
	data := append([]float64(nil), times...)
	sort.Float64s(data)
	if opts.Tol != 0 {
		data = fit.Coalesce(data, opts.Tol)
	}

	// Replicate fits run quiet: estimation warnings are expected there.
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	if opts.Parallel {
		runParallel(rows, data, ref.Best.Breaks, seed, quiet, opts)
	} else {
		runSequential(rows, data, ref.Best.Breaks, seed, quiet, opts, w)
	}

	failed := imputeFailed(rows, w)

	return Result{Rows: rows, N: len(times), Failed: failed, Warnings: w.list}, nil
}

// runSequential draws and refits replicates one at a time.  A resample
// that would leave some reference-breakpoint interval with ≤ 1
// observation is skipped entirely — it could not be fitted anyway —
// and later mean-imputed.
func runSequential(rows []fit.Row, data, refBreaks []float64, seed int64, quiet *slog.Logger, opts Options, w *warnings) {
	for i := 1; i < opts.NSim; i++ {
		rng := rand.New(rand.NewSource(seed + int64(i)*replicateSeedStride))
		sample := resample(data, rng)

		if thin(dist.Counts(sample, refBreaks)) {
			opts.Logger.Debug("skipping degenerate resample", "replicate", i)
			rows[i] = failedRow()
		} else {
			r, err := fit.Fit(sample, opts.fitOptions(seed+int64(i), quiet))
			if err != nil {
				rows[i] = failedRow()
			} else {
				rows[i] = r.Best
			}
		}

		if opts.Observer != nil {
			opts.Observer(i)
		}
	}
}

// runParallel distributes replicates across a fixed-size worker pool.
// A replicate whose fit fails is dropped (no retry) and later
// mean-imputed; results merge order-independently since every
// replicate owns its row slot and RNG stream.
func runParallel(rows []fit.Row, data, refBreaks []float64, seed int64, quiet *slog.Logger, opts Options) {
	_ = refBreaks // screening is a sequential-mode optimization only

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		done int
	)
	g.SetLimit(workers)

	for i := 1; i < opts.NSim; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(i)*replicateSeedStride))
			sample := resample(data, rng)

			r, err := fit.Fit(sample, opts.fitOptions(seed+int64(i), quiet))
			if err != nil {
				rows[i] = failedRow()
			} else {
				rows[i] = r.Best
			}

			if opts.Observer != nil {
				mu.Lock()
				done++
				opts.Observer(done)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait() // workers report failure through their row, never an error
}

// imputeFailed replaces failed rows (infinite first column) with the
// column-wise mean of the successful rows, so the collection keeps its
// full replicate count.  Two passes, so the imputation source never
// aliases the collection being repaired.
func imputeFailed(rows []fit.Row, w *warnings) int {
	width := len(rows[0].Breaks)
	var ok []fit.Row
	for _, r := range rows {
		if r.Feasible() && len(r.Breaks) == width {
			ok = append(ok, r)
		}
	}

	failed := 0
	for i := range rows {
		if !rows[i].Feasible() {
			failed++
		}
	}
	if failed == 0 {
		return 0
	}
	if len(ok) == 0 {
		w.warnf("no successful replicates; failed rows left as -Inf sentinels")
		return failed
	}

	mean := meanRow(ok, width)
	for i := range rows {
		if !rows[i].Feasible() {
			rows[i] = cloneRow(mean)
		}
	}
	w.warnf("%d failed replicates imputed with column means of %d successful rows", failed, len(ok))

	return failed
}

// meanRow builds the column-wise mean of the given rows.
func meanRow(rs []fit.Row, width int) fit.Row {
	col := make([]float64, len(rs))
	colOf := func(get func(fit.Row) float64) float64 {
		for i, r := range rs {
			col[i] = get(r)
		}
		return stat.Mean(col, nil)
	}

	out := fit.Row{
		Breaks: make([]float64, width),
		Alphas: make([]float64, width),
		LogLik: colOf(func(r fit.Row) float64 { return r.LogLik }),
		AIC:    colOf(func(r fit.Row) float64 { return r.AIC }),
		BIC:    colOf(func(r fit.Row) float64 { return r.BIC }),
	}
	for j := 0; j < width; j++ {
		out.Breaks[j] = colOf(func(r fit.Row) float64 { return r.Breaks[j] })
		out.Alphas[j] = colOf(func(r fit.Row) float64 { return r.Alphas[j] })
	}

	return out
}

func cloneRow(r fit.Row) fit.Row {
	r.Breaks = append([]float64(nil), r.Breaks...)
	r.Alphas = append([]float64(nil), r.Alphas...)
	return r
}

// resample draws len(data) values with replacement.
func resample(data []float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(data))
	for i := range out {
		out[i] = data[rng.Intn(len(data))]
	}

	return out
}

// thin reports whether any interval holds at most one observation.
func thin(counts []int) bool {
	for _, c := range counts {
		if c <= 1 {
			return true
		}
	}

	return false
}

func failedRow() fit.Row {
	return fit.Row{LogLik: math.Inf(-1)}
}

// withDefaults resolves zero values.
func (o Options) withDefaults() Options {
	if o.NSim <= 0 {
		o.NSim = DefaultNSim
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// fitOptions forwards the shared knobs to an underlying fit.
func (o Options) fitOptions(seed int64, logger *slog.Logger) fit.Options {
	return fit.Options{
		Breakpoints: o.Breakpoints,
		NBreak:      o.NBreak,
		ExcludeInt:  o.ExcludeInt,
		MinPtTail:   o.MinPtTail,
		MaxSet:      o.MaxSet,
		Tol:         o.Tol,
		Seed:        seed,
		Logger:      logger,
	}
}

// warnings accumulates engine-level messages and mirrors them to the
// configured logger.
type warnings struct {
	logger *slog.Logger
	list   []string
}

func (w *warnings) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.logger.Warn(msg)
	w.list = append(w.list, msg)
}
