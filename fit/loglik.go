package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/pwlfit/dist"
)

// LogLik evaluates the joint log-likelihood of the exponent vector
// given observations x and the full partition vector breaks
// (τ₀..τ_k):
//
//	ℓ(α) = Σ_j [ n_j·(log C_{j-1} − log ζ(α_j, τ_{j-1})) − α_j·Σ_{x∈R_j} log x ]
//
// with n_j the occupancy of interval R_j and C the continuity
// constants, recomputed per call since α varies during optimization.
// Larger is better: this is a maximization target.
//
// Errors: ErrLengthMismatch, plus the dist InvalidParameter sentinels
// (wrapped) for a bad partition or exponent vector.
func LogLik(alphas, x, breaks []float64) (float64, error) {
	if len(breaks) != len(alphas) {
		return 0, ErrLengthMismatch
	}
	if err := dist.Validate(breaks, alphas); err != nil {
		return 0, fmt.Errorf("fit: %w", err)
	}

	ns, sumLogs := intervalStats(x, breaks)

	return logLikFromStats(alphas, breaks, ns, sumLogs), nil
}

// intervalStats precomputes per-interval occupancy and Σ log x.  These
// depend only on the partition, not the exponents, so the optimizer
// computes them once per candidate.
func intervalStats(x, breaks []float64) (ns, sumLogs []float64) {
	ns = make([]float64, len(breaks))
	sumLogs = make([]float64, len(breaks))
	for _, v := range x {
		if j := dist.IntervalIndex(v, breaks); j >= 0 {
			ns[j]++
			sumLogs[j] += math.Log(v)
		}
	}

	return ns, sumLogs
}

// logLikFromStats is the optimizer hot path: only the zeta terms and
// continuity constants are recomputed as the exponents move.  Returns
// −Inf for an invalid exponent vector instead of an error so the
// maximizer can treat it as an infinitely bad point.
func logLikFromStats(alphas, breaks, ns, sumLogs []float64) float64 {
	c, err := dist.Constants(breaks, alphas)
	if err != nil {
		return math.Inf(-1)
	}

	var ll float64
	for j := range breaks {
		ll += ns[j]*(math.Log(c[j])-math.Log(mathext.Zeta(alphas[j], breaks[j]))) - alphas[j]*sumLogs[j]
	}

	return ll
}
