package fit

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/optimize"
)

// alphaFloor is the box constraint on every exponent: αⱼ ≥ 1.01.
// Below 1 the zeta normalizer diverges; the extra margin keeps the
// optimizer away from the singular boundary.
const alphaFloor = 1.01

// Initial exponent values are drawn uniformly from this range.
const (
	initAlphaLo = 1.5
	initAlphaHi = 3.5
)

// maximizeLogLik runs constrained maximum likelihood over the
// exponents for a fixed partition.
//
// The box constraint is enforced by reparametrization rather than by a
// constrained solver: Nelder–Mead minimizes −ℓ over
// θⱼ = log(αⱼ − alphaFloor), so every visited point satisfies
// αⱼ > alphaFloor exactly.  Initial exponents are sampled uniformly
// from (1.5, 3.5) using the candidate's own rng.
//
// A convergence failure is reported to the caller, which treats it as
// a non-fatal per-candidate skip.
func maximizeLogLik(x, breaks []float64, rng *rand.Rand) (alphas []float64, ll float64, err error) {
	ns, sumLogs := intervalStats(x, breaks)

	theta0 := make([]float64, len(breaks))
	for j := range theta0 {
		a := initAlphaLo + (initAlphaHi-initAlphaLo)*rng.Float64()
		theta0[j] = math.Log(a - alphaFloor)
	}

	problem := optimize.Problem{
		Func: func(theta []float64) float64 {
			v := logLikFromStats(alphasFromTheta(theta), breaks, ns, sumLogs)
			if math.IsNaN(v) {
				return math.Inf(1)
			}
			return -v
		},
	}

	res, err := optimize.Minimize(problem, theta0, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, 0, fmt.Errorf("fit: exponent optimization: %w", err)
	}

	return alphasFromTheta(res.X), -res.F, nil
}

// alphasFromTheta maps the unconstrained optimizer coordinates back to
// exponents: αⱼ = alphaFloor + exp(θⱼ).
func alphasFromTheta(theta []float64) []float64 {
	alphas := make([]float64, len(theta))
	for j, t := range theta {
		alphas[j] = alphaFloor + math.Exp(t)
	}

	return alphas
}
