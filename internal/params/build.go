package params

import (
	"fmt"

	"venture-sim-lab/internal/domain"
)

// Build assembles the typed engine inputs from the flat request.
// Steps:
//  1. Check the request-level invariants (rate sum, triangular
//     orderings, TAM anchors).
//  2. Fit the three lognormals from their percentile anchors.
//  3. Normalize percent-valued fields to the unit interval.
//  4. Re-validate the assembled parameter set so the sampler can trust
//     every invariant.
func Build(in Inputs) (domain.DealInputs, domain.StochasticParameters, error) {
	deal := domain.DealInputs{InitialInvestment: in.InitialInvestment}
	if err := deal.Validate(); err != nil {
		return domain.DealInputs{}, domain.StochasticParameters{}, err
	}

	if in.FailureRatePct+in.ZombieRatePct > 100 {
		return domain.DealInputs{}, domain.StochasticParameters{}, fmt.Errorf(
			"%w: failure_rate_pct + zombie_rate_pct must not exceed 100, got %g",
			domain.ErrInvalidDistributionSpec, in.FailureRatePct+in.ZombieRatePct)
	}

	tam, err := FitLognormalP10P90("tam", in.TAMMinP10, in.TAMMaxP90)
	if err != nil {
		return domain.DealInputs{}, domain.StochasticParameters{}, err
	}

	// Market-share anchors arrive in percent of market.
	share, err := FitLognormalP10P90("market_share", in.MSMinP10Pct/100, in.MSMaxP90Pct/100)
	if err != nil {
		return domain.DealInputs{}, domain.StochasticParameters{}, err
	}

	exitMult, err := FitLognormalQuartiles("exit_multiple", in.Q1Mult, in.MedianMult, in.Q3Mult)
	if err != nil {
		return domain.DealInputs{}, domain.StochasticParameters{}, err
	}

	p := domain.StochasticParameters{
		TrimodalRisk: domain.TrimodalRiskSpec{
			FailureRate: in.FailureRatePct / 100,
			ZombieRate:  in.ZombieRatePct / 100,
		},
		RecoveryOnZombie: domain.TriangularSpec{Min: in.RecMin, Mode: in.RecMode, Max: in.RecMax},
		PostMoneyValCap:  domain.TriangularSpec{Min: in.ValMin, Mode: in.ValMode, Max: in.ValMax},
		TimeToExitYrs:    domain.TriangularSpec{Min: in.TimeMin, Mode: in.TimeMode, Max: in.TimeMax},
		NumFutureRounds:  domain.DiscreteUniformSpec{Min: in.RoundsMin, Max: in.RoundsMax},
		DilutionPerRound: domain.TriangularSpec{Min: in.DilMin / 100, Mode: in.DilMode / 100, Max: in.DilMax / 100},
		TAM:              tam,
		MarketShare:      share,
		ExitMult:         exitMult,
	}

	if err := p.Validate(); err != nil {
		return domain.DealInputs{}, domain.StochasticParameters{}, err
	}

	return deal, p, nil
}
