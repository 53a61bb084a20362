package simulation

import "math"

// AnnualizedReturn converts a terminal multiple and holding period
// into an annualized return. A zero multiple (or degenerate holding
// period) is a full loss: exactly -100% annualized.
func AnnualizedReturn(moic, holdingYears float64) float64 {
	if moic > 0 && holdingYears > 0 {
		return math.Pow(moic, 1/holdingYears) - 1
	}
	return -1.0
}
