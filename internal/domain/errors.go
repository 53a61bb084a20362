package domain

import "errors"

// Error kinds surfaced before any sampling begins. Numeric edge cases
// during sampling (zero-scale triangular, zero valuation) are absorbed
// via documented fallback values instead.
var (
	// ErrInvalidParameterization covers non-positive or out-of-order
	// percentile anchors feeding the logarithmic transform.
	ErrInvalidParameterization = errors.New("invalid parameterization")

	// ErrInvalidDistributionSpec covers distribution bounds violating
	// their ordering invariants.
	ErrInvalidDistributionSpec = errors.New("invalid distribution spec")

	// ErrInvalidDealInputs covers deal inputs that cannot feed the
	// proceeds computation at all (negative investment). A zero
	// investment is not an error: it flows through the zero-output
	// ownership guards.
	ErrInvalidDealInputs = errors.New("invalid deal inputs")
)
