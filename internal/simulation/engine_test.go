package simulation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture-sim-lab/internal/domain"
)

func referenceParameters() (domain.DealInputs, domain.StochasticParameters) {
	deal := domain.DealInputs{InitialInvestment: 1_000_000}
	p := domain.StochasticParameters{
		TrimodalRisk:     domain.TrimodalRiskSpec{FailureRate: 0.5, ZombieRate: 0.25},
		RecoveryOnZombie: domain.TriangularSpec{Min: 0.1, Mode: 0.3, Max: 0.9},
		PostMoneyValCap:  domain.TriangularSpec{Min: 4e6, Mode: 6e6, Max: 10e6},
		TimeToExitYrs:    domain.TriangularSpec{Min: 3, Mode: 5, Max: 8},
		NumFutureRounds:  domain.DiscreteUniformSpec{Min: 1, Max: 3},
		DilutionPerRound: domain.TriangularSpec{Min: 0.10, Mode: 0.15, Max: 0.20},
		// ln TAM anchors 1e9 / 5e9, ln share anchors 1% / 5%,
		// exit multiple quartiles 3 / 5 / 8.
		TAM:         domain.LognormalSpec{Mu: 21.5280, Sigma: 0.6279},
		MarketShare: domain.LognormalSpec{Mu: -3.8004, Sigma: 0.6279},
		ExitMult:    domain.LognormalSpec{Mu: 1.6094, Sigma: 0.6968},
	}
	return deal, p
}

func TestRun_RegimeFrequencies(t *testing.T) {
	deal, p := referenceParameters()
	engine := NewEngine(Options{Seed: 7})

	n := 200_000
	sample, err := engine.Run(context.Background(), deal, p, n)
	require.NoError(t, err)
	require.Equal(t, n, sample.Len())

	failures, zombies, successes := 0, 0, 0
	for i := 0; i < n; i++ {
		switch {
		case sample.PathDraw[i] < 0.5:
			failures++
		case sample.PathDraw[i] < 0.75:
			zombies++
		default:
			successes++
		}
	}

	assert.InDelta(t, 0.50, float64(failures)/float64(n), 0.01)
	assert.InDelta(t, 0.25, float64(zombies)/float64(n), 0.01)
	assert.InDelta(t, 0.25, float64(successes)/float64(n), 0.01)
}

func TestRun_PathOutcomes(t *testing.T) {
	deal, p := referenceParameters()
	engine := NewEngine(Options{Seed: 11})

	sample, err := engine.Run(context.Background(), deal, p, 100_000)
	require.NoError(t, err)

	successSum := 0.0
	successCount := 0
	for i := 0; i < sample.Len(); i++ {
		sel := sample.PathDraw[i]
		moic := sample.MOIC[i]

		// MOIC is never negative on any path.
		require.GreaterOrEqual(t, moic, 0.0)

		switch {
		case sel < 0.5:
			// Failure: MOIC exactly 0, IRR exactly -1.
			require.Equal(t, 0.0, moic)
			require.Equal(t, -1.0, sample.IRR[i])
		case sel < 0.75:
			// Zombie recovery stays within its triangular bounds.
			require.GreaterOrEqual(t, moic, 0.1)
			require.LessOrEqual(t, moic, 0.9)
		default:
			successSum += moic
			successCount++
		}

		// Holding period is drawn for every path.
		require.GreaterOrEqual(t, sample.HoldingPeriod[i], 3.0)
		require.LessOrEqual(t, sample.HoldingPeriod[i], 8.0)
	}

	require.NotZero(t, successCount)
	assert.Positive(t, successSum/float64(successCount), "success cohort must have positive mean MOIC")
}

func TestRun_SeededDeterminism(t *testing.T) {
	deal, p := referenceParameters()

	a, err := NewEngine(Options{Seed: 99, Workers: 4}).Run(context.Background(), deal, p, 10_000)
	require.NoError(t, err)
	b, err := NewEngine(Options{Seed: 99, Workers: 4}).Run(context.Background(), deal, p, 10_000)
	require.NoError(t, err)

	assert.Equal(t, a.MOIC, b.MOIC)
	assert.Equal(t, a.IRR, b.IRR)
}

func TestRun_DegenerateExitMultiple(t *testing.T) {
	deal, p := referenceParameters()
	p.ExitMult = domain.LognormalSpec{Mu: 1.6094379124341003, Sigma: 0} // ln(5)
	engine := NewEngine(Options{Seed: 3})

	sample, err := engine.Run(context.Background(), deal, p, 20_000)
	require.NoError(t, err)

	for i := 0; i < sample.Len(); i++ {
		assert.InDelta(t, 5.0, sample.ExitMultiple[i], 1e-12)
	}
}

func TestRun_InvalidParameters(t *testing.T) {
	deal, p := referenceParameters()
	p.RecoveryOnZombie = domain.TriangularSpec{Min: 0.9, Mode: 0.3, Max: 0.1}

	_, err := NewEngine(Options{Seed: 1}).Run(context.Background(), deal, p, 1000)
	require.ErrorIs(t, err, domain.ErrInvalidDistributionSpec)
}

func TestRun_InvalidTrialCount(t *testing.T) {
	deal, p := referenceParameters()

	_, err := NewEngine(Options{}).Run(context.Background(), deal, p, 0)
	require.ErrorIs(t, err, ErrInvalidTrialCount)
}

func TestRun_CanceledContext(t *testing.T) {
	deal, p := referenceParameters()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine(Options{Seed: 5}).Run(ctx, deal, p, 50_000)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestRun_ZeroInvestment(t *testing.T) {
	deal, p := referenceParameters()
	deal.InitialInvestment = 0
	engine := NewEngine(Options{Seed: 13})

	sample, err := engine.Run(context.Background(), deal, p, 10_000)
	require.NoError(t, err)

	// Zero investment collapses every success-path MOIC to 0 via the
	// zero-output guards; zombie recoveries are unaffected.
	for i := 0; i < sample.Len(); i++ {
		if sample.PathDraw[i] >= 0.75 {
			require.Equal(t, 0.0, sample.MOIC[i])
		}
	}
}
