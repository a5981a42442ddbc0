package dist

import (
	"gonum.org/v1/gonum/mathext"
)

// Dist is an immutable piecewise discrete power law.
//
// Fields are private: a Dist can only be obtained through New, which
// validates the parameters and precomputes the normalizing constants
// and the per-interval zeta values, so every method can assume a
// well-formed model.  Dist values are safe for concurrent use.
type Dist struct {
	breaks []float64 // τ₀..τ_k, strictly increasing, τ₀ ≥ 1
	alphas []float64 // α₁..α_{k+1}, one per interval, each > 1
	consts []float64 // C₀..C_{k+1}, continuity constants (C_{k+1} = 0)
	zetas  []float64 // ζ(α_j, τ_{j-1}) per interval, cached
}

// New validates (breaks, alphas) and builds the distribution.
//
// breaks is the partition vector (τ₀, τ₁, …, τ_k): τ₀ is the minimum
// observable value, the remaining entries are change points.  alphas
// holds one scaling exponent per interval, so len(alphas) must equal
// len(breaks).
//
// Errors: ErrEmptyParams, ErrLengthMismatch, ErrNonIncreasingBreaks,
// ErrBreakBelowOne, ErrAlphaOutOfRange.
func New(breaks, alphas []float64) (*Dist, error) {
	c, err := Constants(breaks, alphas)
	if err != nil {
		return nil, err
	}

	d := &Dist{
		breaks: append([]float64(nil), breaks...),
		alphas: append([]float64(nil), alphas...),
		consts: c,
		zetas:  make([]float64, len(breaks)),
	}
	for j := range d.breaks {
		d.zetas[j] = mathext.Zeta(d.alphas[j], d.breaks[j])
	}

	return d, nil
}

// Validate checks a (breaks, alphas) pair without constructing a Dist.
// It is the single source of truth for the InvalidParameter class:
// non-increasing breaks, a floor below 1, any exponent ≤ 1 and length
// mismatches are all fatal.
func Validate(breaks, alphas []float64) error {
	if len(breaks) == 0 || len(alphas) == 0 {
		return ErrEmptyParams
	}
	if len(breaks) != len(alphas) {
		return ErrLengthMismatch
	}
	if breaks[0] < 1 {
		return ErrBreakBelowOne
	}
	for i := 1; i < len(breaks); i++ {
		if breaks[i] <= breaks[i-1] {
			return ErrNonIncreasingBreaks
		}
	}
	for _, a := range alphas {
		if a <= 1 {
			return ErrAlphaOutOfRange
		}
	}

	return nil
}

// Breaks returns a copy of the partition vector (τ₀..τ_k).
func (d *Dist) Breaks() []float64 {
	return append([]float64(nil), d.breaks...)
}

// Alphas returns a copy of the exponent vector (α₁..α_{k+1}).
func (d *Dist) Alphas() []float64 {
	return append([]float64(nil), d.alphas...)
}

// Constants returns a copy of the continuity constants (C₀..C_{k+1}).
func (d *Dist) Constants() []float64 {
	return append([]float64(nil), d.consts...)
}
