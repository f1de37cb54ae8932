package rank

import "gonum.org/v1/gonum/stat/distuv"

// Normalization selects how raw zero-based ranks are rescaled.
//
//   - ZeroToNMinusOne — ranks span [0, N-1], where N is the axis length
//     including NaNs (the values themselves range over the non-NaN count
//     rescaled to that span).
//   - MinusOneToOne   — the [0, N-1] ranking rescaled to [-1, 1].
//   - Gaussian        — ranks mapped to (0,1) and passed through the
//     inverse standard-normal CDF.
type Normalization int

const (
	// MinusOneToOne rescales ranks to [-1, 1]. The default.
	MinusOneToOne Normalization = iota

	// ZeroToNMinusOne keeps ranks on the [0, N-1] scale.
	ZeroToNMinusOne

	// Gaussian maps ranks through the inverse standard-normal CDF.
	Gaussian
)

// InvCDF is the inverse-CDF capability used by the Gaussian normalization.
// It must map p in (0,1) to the standard-normal quantile.
type InvCDF func(p float64) float64

// Options configures Ranking.
//
// Fields:
//   - Norm   — rank rescaling mode (default MinusOneToOne).
//   - Ties   — true to average the ranks of equal values (default);
//     false for purely ordinal, position-stable ranks.
//   - InvCDF — inverse standard-normal CDF for Gaussian normalization.
//     DefaultOptions wires gonum's distuv.UnitNormal. If nil while
//     Norm == Gaussian, Ranking fails with ErrInvCDFUnavailable.
type Options struct {
	Norm   Normalization
	Ties   bool
	InvCDF InvCDF
}

// DefaultOptions returns the canonical configuration: [-1,1] normalization,
// tie averaging on, and the gonum unit-normal quantile as the inverse CDF.
func DefaultOptions() Options {
	return Options{
		Norm:   MinusOneToOne,
		Ties:   true,
		InvCDF: distuv.UnitNormal.Quantile,
	}
}
