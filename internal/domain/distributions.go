package domain

import "fmt"

// TriangularSpec parameterizes a triangular distribution by its
// plausible range and most-likely value. A degenerate spec
// (Min == Max) is treated as a point mass at Min.
type TriangularSpec struct {
	Min  float64
	Mode float64
	Max  float64
}

// Validate checks the min <= mode <= max ordering invariant.
func (s TriangularSpec) Validate(name string) error {
	if !(s.Min <= s.Mode && s.Mode <= s.Max) {
		return fmt.Errorf("%w: %s requires min <= mode <= max, got (%g, %g, %g)",
			ErrInvalidDistributionSpec, name, s.Min, s.Mode, s.Max)
	}
	return nil
}

// LognormalSpec parameterizes a lognormal distribution by the mean and
// standard deviation of the underlying normal. Sigma == 0 means a
// point mass at exp(Mu).
type LognormalSpec struct {
	Mu    float64
	Sigma float64
}

// Validate checks sigma >= 0.
func (s LognormalSpec) Validate(name string) error {
	if s.Sigma < 0 {
		return fmt.Errorf("%w: %s requires sigma >= 0, got %g",
			ErrInvalidDistributionSpec, name, s.Sigma)
	}
	return nil
}

// DiscreteUniformSpec parameterizes an integer uniform distribution
// inclusive of both bounds.
type DiscreteUniformSpec struct {
	Min int
	Max int
}

// Validate checks min <= max.
func (s DiscreteUniformSpec) Validate(name string) error {
	if s.Min > s.Max {
		return fmt.Errorf("%w: %s requires min <= max, got (%d, %d)",
			ErrInvalidDistributionSpec, name, s.Min, s.Max)
	}
	return nil
}

// TrimodalRiskSpec holds the probabilities of the failure and zombie
// outcome regimes. The success probability is the remainder, so the
// three regimes exactly partition [0, 1).
type TrimodalRiskSpec struct {
	FailureRate float64
	ZombieRate  float64
}

// Validate checks both rates are probabilities and their sum does not
// exceed 1.
func (s TrimodalRiskSpec) Validate(name string) error {
	if s.FailureRate < 0 || s.FailureRate > 1 || s.ZombieRate < 0 || s.ZombieRate > 1 {
		return fmt.Errorf("%w: %s rates must lie in [0, 1], got (%g, %g)",
			ErrInvalidDistributionSpec, name, s.FailureRate, s.ZombieRate)
	}
	if s.FailureRate+s.ZombieRate > 1 {
		return fmt.Errorf("%w: %s failure_rate + zombie_rate must not exceed 1, got %g",
			ErrInvalidDistributionSpec, name, s.FailureRate+s.ZombieRate)
	}
	return nil
}

// SuccessRate returns the probability of the success regime.
func (s TrimodalRiskSpec) SuccessRate() float64 {
	return 1 - s.FailureRate - s.ZombieRate
}
