// Command pwlfit fits piecewise discrete power-law models to a column
// of numbers: estimate breakpoints and exponents, bootstrap confidence
// intervals, or draw synthetic samples.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pwlfit/boot"
	"github.com/katalvlaran/pwlfit/dist"
	"github.com/katalvlaran/pwlfit/fit"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "pwlfit",
		Short:         "Piecewise discrete power-law fitting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
	}

	root.AddCommand(fitCommand(), bootCommand(), sampleCommand())

	return root
}

func fitCommand() *cobra.Command {
	var (
		opts  fit.Options
		excl  []float64
		input string
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit breakpoints and exponents by maximum likelihood",
		RunE: func(cmd *cobra.Command, args []string) error {
			times, err := readData(input)
			if err != nil {
				return err
			}
			if opts.ExcludeInt, err = excludeInterval(excl); err != nil {
				return err
			}
			opts.Logger = slog.Default()

			res, err := fit.Fit(times, opts)
			if err != nil {
				return err
			}
			if !res.Feasible() {
				return fmt.Errorf("no feasible fit for the given configuration")
			}

			printRow(cmd.OutOrStdout(), "best", res.Best)
			if opts.Trace {
				for i, r := range res.Rows {
					printRow(cmd.OutOrStdout(), fmt.Sprintf("cand %d", i), r)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "data file (newline-delimited numbers), - for stdin")
	cmd.Flags().Float64SliceVar(&opts.Breakpoints, "breaks", nil, "fixed breakpoints")
	cmd.Flags().IntVar(&opts.NBreak, "n-break", 0, "total breakpoint count (0 = derive)")
	cmd.Flags().IntVar(&opts.MinPtTail, "min-pt-tail", 0, "observations reserved from the candidate tail")
	cmd.Flags().Float64SliceVar(&excl, "exclude", nil, "lo,hi interval excluded from the candidate pool")
	cmd.Flags().IntVar(&opts.MaxSet, "max-set", 0, "combinatorial budget (0 = default)")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print every evaluated candidate")
	cmd.Flags().Float64Var(&opts.Tol, "tol", 0, "relative tolerance for coalescing near-ties")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "RNG seed (0 = clock)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "parallel candidate optimizations")

	return cmd
}

func bootCommand() *cobra.Command {
	var (
		opts  boot.Options
		excl  []float64
		input string
	)

	cmd := &cobra.Command{
		Use:   "boot",
		Short: "Bootstrap the fit: bias-corrected exponents and 95% CIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			times, err := readData(input)
			if err != nil {
				return err
			}
			if opts.ExcludeInt, err = excludeInterval(excl); err != nil {
				return err
			}
			opts.Logger = slog.Default()
			opts.Observer = func(done int) {
				slog.Debug("replicate finished", "done", done, "total", opts.NSim-1)
			}

			res, err := boot.Bootstrap(times, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printRow(out, "original", res.Rows[0])
			fmt.Fprintf(out, "replicates: %d (failed and imputed: %d)\n", len(res.Rows)-1, res.Failed)
			bc := res.BiasCorrectedAlphas()
			for j, a := range bc {
				col := res.AlphaColumn(j)
				stat.SortWeighted(col, nil)
				lo := stat.Quantile(0.025, stat.Empirical, col, nil)
				hi := stat.Quantile(0.975, stat.Empirical, col, nil)
				fmt.Fprintf(out, "alpha[%d]: bias-corrected %.4f, 95%% CI [%.4f, %.4f]\n", j+1, a, lo, hi)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "data file (newline-delimited numbers), - for stdin")
	cmd.Flags().IntVar(&opts.NSim, "n-sim", 0, "bootstrap rows incl. reference (0 = default)")
	cmd.Flags().Float64SliceVar(&opts.Breakpoints, "breaks", nil, "fixed breakpoints")
	cmd.Flags().IntVar(&opts.NBreak, "n-break", 0, "total breakpoint count (0 = derive)")
	cmd.Flags().IntVar(&opts.MinPtTail, "min-pt-tail", 0, "observations reserved from the candidate tail")
	cmd.Flags().Float64SliceVar(&excl, "exclude", nil, "lo,hi interval excluded from the candidate pool")
	cmd.Flags().IntVar(&opts.MaxSet, "max-set", 0, "combinatorial budget (0 = default)")
	cmd.Flags().Float64Var(&opts.Tol, "tol", 0, "relative tolerance for coalescing near-ties")
	cmd.Flags().BoolVar(&opts.Parallel, "parallel", false, "run replicates on a worker pool")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "worker pool size (0 = GOMAXPROCS)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "RNG seed (0 = clock)")

	return cmd
}

func sampleCommand() *cobra.Command {
	var (
		breaks []float64
		alphas []float64
		n      int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw synthetic data from a piecewise power law",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dist.New(breaks, alphas)
			if err != nil {
				return err
			}
			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()
			for _, v := range d.Sample(seededRand(seed), n) {
				fmt.Fprintf(out, "%g\n", v)
			}
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&breaks, "breaks", []float64{1}, "partition vector tau0..tauK")
	cmd.Flags().Float64SliceVar(&alphas, "alphas", []float64{2.5}, "one exponent per interval")
	cmd.Flags().IntVarP(&n, "count", "n", 1000, "sample size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = clock)")

	return cmd
}

func seededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

func printRow(w io.Writer, label string, r fit.Row) {
	fmt.Fprintf(w, "%-8s breaks=%v alphas=%s loglik=%.4f aic=%.4f bic=%.4f\n",
		label, r.Breaks, formatAlphas(r.Alphas), r.LogLik, r.AIC, r.BIC)
}

func formatAlphas(alphas []float64) string {
	parts := make([]string, len(alphas))
	for i, a := range alphas {
		parts[i] = strconv.FormatFloat(a, 'f', 4, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func excludeInterval(excl []float64) (*[2]float64, error) {
	switch len(excl) {
	case 0:
		return nil, nil
	case 2:
		return &[2]float64{excl[0], excl[1]}, nil
	default:
		return nil, fmt.Errorf("--exclude wants exactly two values lo,hi, got %d", len(excl))
	}
}

// readData parses newline-delimited numbers from a file or stdin.
func readData(path string) ([]float64, error) {
	var in *os.File
	if path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var out []float64
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("bad data line %q: %w", line, err)
		}
		out = append(out, v)
	}

	return out, sc.Err()
}
