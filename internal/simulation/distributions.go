package simulation

import (
	"math"
	"math/rand/v2"

	"venture-sim-lab/internal/domain"
)

// sampleTriangular draws from a triangular distribution via inverse
// CDF. A zero-width spec is a point mass at Min.
func sampleTriangular(rng *rand.Rand, spec domain.TriangularSpec) float64 {
	span := spec.Max - spec.Min
	if span <= 0 {
		return spec.Min
	}
	c := (spec.Mode - spec.Min) / span
	u := rng.Float64()
	if u < c {
		return spec.Min + span*math.Sqrt(u*c)
	}
	return spec.Max - span*math.Sqrt((1-u)*(1-c))
}

// sampleLognormal draws exp(mu + sigma*Z). Sigma 0 yields exp(mu)
// exactly.
func sampleLognormal(rng *rand.Rand, spec domain.LognormalSpec) float64 {
	if spec.Sigma == 0 {
		return math.Exp(spec.Mu)
	}
	return math.Exp(spec.Mu + spec.Sigma*rng.NormFloat64())
}

// sampleDiscreteUniform draws an integer uniformly, inclusive of both
// bounds.
func sampleDiscreteUniform(rng *rand.Rand, spec domain.DiscreteUniformSpec) int {
	if spec.Min == spec.Max {
		return spec.Min
	}
	return spec.Min + rng.IntN(spec.Max-spec.Min+1)
}
