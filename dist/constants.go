package dist

import (
	"gonum.org/v1/gonum/mathext"
)

// Constants computes the chain of continuity constants C₀..C_{k+1}
// linking adjacent partitions' densities:
//
//	C₀ = 1
//	C_i = C_{i-1} · ζ(α_i, τ_i) / ζ(α_i, τ_{i-1})   for i = 1..k
//	C_{k+1} = 0
//
// C_i is exactly the probability mass above τ_i, which makes the
// piecewise density continuous in cumulative mass across boundaries.
// The trailing 0 marks the open-ended final interval, which has no
// continuity constraint beyond it.
//
// The returned slice has length len(breaks)+1.  Constants fails with
// an InvalidParameter sentinel (see Validate) when breaks is not
// strictly increasing or any exponent is ≤ 1.
func Constants(breaks, alphas []float64) ([]float64, error) {
	if err := Validate(breaks, alphas); err != nil {
		return nil, err
	}

	c := make([]float64, len(breaks)+1)
	c[0] = 1
	for i := 1; i < len(breaks); i++ {
		c[i] = c[i-1] * mathext.Zeta(alphas[i-1], breaks[i]) / mathext.Zeta(alphas[i-1], breaks[i-1])
	}
	c[len(breaks)] = 0

	return c, nil
}
