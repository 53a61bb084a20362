// Package params converts percentile-anchored business inputs into the
// fitted distribution parameters the sampler draws from.
package params

import (
	"fmt"
	"math"

	"venture-sim-lab/internal/domain"
)

// Standard-normal z-scores for the anchor probability levels.
const (
	z90 = 1.28155
	z75 = 0.6745
)

// FitLognormalP10P90 fits a lognormal to a known 10th and 90th
// percentile. Both anchors must be strictly positive and in order.
func FitLognormalP10P90(name string, p10, p90 float64) (domain.LognormalSpec, error) {
	if p10 <= 0 || p90 <= 0 {
		return domain.LognormalSpec{}, fmt.Errorf("%w: %s anchors must be strictly positive, got (%g, %g)",
			domain.ErrInvalidParameterization, name, p10, p90)
	}
	if p10 >= p90 {
		return domain.LognormalSpec{}, fmt.Errorf("%w: %s requires p10 < p90, got (%g, %g)",
			domain.ErrInvalidParameterization, name, p10, p90)
	}
	logP10 := math.Log(p10)
	logP90 := math.Log(p90)
	return domain.LognormalSpec{
		Mu:    (logP90 + logP10) / 2,
		Sigma: (logP90 - logP10) / (2 * z90),
	}, nil
}

// FitLognormalQuartiles fits a lognormal anchored by its median and
// upper quartile; q1 is supplied only for validity checking. A
// non-monotonic upper quartile (q3 <= median) or non-positive q1
// indicates insufficient spread information, so the fit collapses to a
// point mass at the median rather than failing.
func FitLognormalQuartiles(name string, q1, median, q3 float64) (domain.LognormalSpec, error) {
	if median <= 0 {
		return domain.LognormalSpec{}, fmt.Errorf("%w: %s median must be strictly positive, got %g",
			domain.ErrInvalidParameterization, name, median)
	}
	mu := math.Log(median)
	if q3 <= median || q1 <= 0 {
		return domain.LognormalSpec{Mu: mu, Sigma: 0}, nil
	}
	return domain.LognormalSpec{
		Mu:    mu,
		Sigma: (math.Log(q3) - mu) / z75,
	}, nil
}
