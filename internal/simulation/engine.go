// Package simulation runs the trimodal Monte Carlo model for venture
// returns: every trial lands in exactly one of three regimes (total
// loss, partial recovery on a zombie exit, or full success through the
// compounding dilution model) selected by a single uniform draw.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sync"

	"venture-sim-lab/internal/domain"
)

// minHoldingPeriod floors the sampled time to exit so the annualized
// return never divides by zero.
const minHoldingPeriod = 0.01

// Engine errors.
var (
	ErrInvalidTrialCount = errors.New("trial count must be positive")
)

// Options configures an Engine.
type Options struct {
	// Workers is the number of goroutines to scatter trial chunks
	// across. Zero means GOMAXPROCS.
	Workers int

	// Seed fixes the random streams for reproducible runs. Zero means
	// seed from the system source.
	Seed uint64
}

// Engine produces trial samples. Trials are independent, so the batch
// is scattered across workers in disjoint index ranges with no
// synchronization beyond the final gather.
type Engine struct {
	workers int
	seed    uint64
}

// NewEngine creates an engine.
func NewEngine(opts Options) *Engine {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{workers: workers, seed: opts.Seed}
}

// Run draws n independent trials. Parameter-shape violations fail
// before any sampling begins; a canceled context abandons the batch.
func (e *Engine) Run(ctx context.Context, deal domain.DealInputs, p domain.StochasticParameters, n int) (*domain.TrialSample, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrialCount, n)
	}
	if err := deal.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	seed := e.seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	sample := domain.NewTrialSample(n)

	// Disjoint index ranges per worker; each chunk owns an independent
	// PCG stream keyed by (seed, chunk) so a seeded run is
	// deterministic for a fixed worker count.
	chunkSize := (n + e.workers - 1) / e.workers
	var wg sync.WaitGroup
	for chunk := 0; chunk*chunkSize < n; chunk++ {
		lo := chunk * chunkSize
		hi := min(lo+chunkSize, n)
		rng := rand.New(rand.NewPCG(seed, uint64(chunk)))

		wg.Add(1)
		go func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			e.fillChunk(rng, deal, p, sample, lo, hi)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sample, nil
}

// fillChunk computes trials [lo, hi). The success-path compound model
// is drawn for every trial regardless of the selected regime, keeping
// the draw sequence identical across regimes; the holding period in
// particular must exist for all paths so every trial has a
// well-defined duration.
func (e *Engine) fillChunk(rng *rand.Rand, deal domain.DealInputs, p domain.StochasticParameters, s *domain.TrialSample, lo, hi int) {
	failThreshold := p.TrimodalRisk.FailureRate
	zombieThreshold := failThreshold + p.TrimodalRisk.ZombieRate

	for i := lo; i < hi; i++ {
		sel := rng.Float64()

		postMoney := sampleTriangular(rng, p.PostMoneyValCap)
		holding := math.Max(sampleTriangular(rng, p.TimeToExitYrs), minHoldingPeriod)
		tam := sampleLognormal(rng, p.TAM)
		share := sampleLognormal(rng, p.MarketShare)
		exitMult := sampleLognormal(rng, p.ExitMult)
		rounds := sampleDiscreteUniform(rng, p.NumFutureRounds)
		// One dilution draw per trial, applied uniformly across that
		// trial's rounds.
		dilution := sampleTriangular(rng, p.DilutionPerRound)
		cumulativeDilution := math.Pow(1-dilution, float64(rounds))

		var initialOwnership float64
		if postMoney > 0 {
			initialOwnership = deal.InitialInvestment / postMoney
		}
		finalOwnership := initialOwnership * cumulativeDilution
		exitValuation := tam * share * exitMult
		exitProceeds := exitValuation * finalOwnership

		var successMOIC float64
		if deal.InitialInvestment > 0 {
			successMOIC = exitProceeds / deal.InitialInvestment
		}

		var moic float64
		switch {
		case sel < failThreshold:
			moic = 0
		case sel < zombieThreshold:
			moic = sampleTriangular(rng, p.RecoveryOnZombie)
		default:
			moic = successMOIC
		}

		s.PathDraw[i] = sel
		s.MOIC[i] = moic
		s.IRR[i] = AnnualizedReturn(moic, holding)
		s.HoldingPeriod[i] = holding
		s.ExitValuation[i] = exitValuation
		s.ExitMultiple[i] = exitMult
		s.MarketShare[i] = share
		s.TAM[i] = tam
		s.PostMoneyValuation[i] = postMoney
	}
}
