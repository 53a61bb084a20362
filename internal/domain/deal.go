package domain

import "fmt"

// DealInputs holds the deterministic inputs of one simulation request.
// Constructed once per request and never mutated.
type DealInputs struct {
	InitialInvestment float64
}

// Validate rejects a negative investment outright. Zero is allowed and
// handled downstream by the zero-output ownership guards.
func (d DealInputs) Validate() error {
	if d.InitialInvestment < 0 {
		return fmt.Errorf("%w: initial_investment must not be negative, got %g",
			ErrInvalidDealInputs, d.InitialInvestment)
	}
	return nil
}
