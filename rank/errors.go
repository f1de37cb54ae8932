package rank

import "errors"

var (
	// ErrDecayNegative indicates a negative decay passed to LastRank.
	ErrDecayNegative = errors.New("rank: decay must be greater than or equal to zero")

	// ErrInvCDFUnavailable indicates that Gaussian normalization was
	// requested but no inverse normal CDF capability is configured.
	ErrInvCDFUnavailable = errors.New("rank: inverse normal CDF unavailable for gaussian normalization")

	// ErrNormalization indicates an unrecognized Normalization value.
	ErrNormalization = errors.New("rank: unknown normalization")

	// ErrQuantileCount indicates q < 1 or q larger than the number of
	// elements along the quantized axis.
	ErrQuantileCount = errors.New("rank: quantile count out of range")
)
