// Package metrics derives the summary-statistics bundle from a
// completed trial sample: central tendency, distribution percentiles,
// probability and proceeds metrics, and the asymmetry analysis feeding
// the recommendation.
package metrics

import (
	"math"

	"venture-sim-lab/internal/decision"
	"venture-sim-lab/internal/domain"
)

// Asymmetry holds the conditional-cohort analysis over the IRR column.
type Asymmetry struct {
	UpsideEPlus    float64
	DownsideEMinus float64
	Score          float64
	NoLosingTrials bool
}

// Analyze produces the full metric bundle, recommendation included,
// from a trial sample and the deal inputs. The label set, the section
// pseudo-entries and their order are an external contract consumed
// verbatim by existing display layers.
func Analyze(sample *domain.TrialSample, deal domain.DealInputs) *domain.SummaryMetrics {
	sortedIRR := sortedCopy(sample.IRR)
	sortedMOIC := sortedCopy(sample.MOIC)
	sortedExitVal := sortedCopy(sample.ExitValuation)
	sortedHolding := sortedCopy(sample.HoldingPeriod)

	meanMOIC := computeMean(sample.MOIC)
	medianMOIC := computePercentile(sortedMOIC, 0.50)
	irrP90 := computePercentile(sortedIRR, 0.90)

	asym := computeAsymmetry(sample.IRR, irrP90)
	rec := decision.NewEvaluator().Evaluate(decision.Input{
		UpsideEPlus:    asym.UpsideEPlus,
		DownsideEMinus: asym.DownsideEMinus,
		Score:          asym.Score,
		NoLosingTrials: asym.NoLosingTrials,
	})

	m := domain.NewSummaryMetrics()

	m.Section("--- Central Tendency (IRR) ---")
	m.Set("Expected IRR (Mean)", computeMean(sample.IRR))
	m.Set("Median IRR (50th Pctl)", computePercentile(sortedIRR, 0.50))

	m.Section("--- IRR Distribution ---")
	m.Set("5th Percentile IRR", computePercentile(sortedIRR, 0.05))
	m.Set("10th Percentile IRR", computePercentile(sortedIRR, 0.10))
	m.Set("25th Percentile IRR", computePercentile(sortedIRR, 0.25))
	m.Set("75th Percentile IRR", computePercentile(sortedIRR, 0.75))
	m.Set("90th Percentile IRR", irrP90)
	m.Set("95th Percentile IRR", computePercentile(sortedIRR, 0.95))

	m.Section("--- Central Tendency (MOIC) ---")
	m.Set("Expected MOIC (Mean)", meanMOIC)
	m.Set("Median MOIC (50th Pctl)", medianMOIC)

	m.Section("--- MOIC Distribution ---")
	m.Set("10th Percentile MOIC", computePercentile(sortedMOIC, 0.10))
	m.Set("25th Percentile MOIC", computePercentile(sortedMOIC, 0.25))
	m.Set("75th Percentile MOIC", computePercentile(sortedMOIC, 0.75))
	m.Set("90th Percentile MOIC", computePercentile(sortedMOIC, 0.90))

	m.Section("--- Probability Metrics ---")
	m.Set("P(Total Loss, MOIC < 0.1x)", fractionWhere(sample.MOIC, func(v float64) bool { return v < 0.1 }))
	m.Set("P(MOIC >= 3x)", fractionWhere(sample.MOIC, func(v float64) bool { return v >= 3 }))
	m.Set("P(MOIC >= 10x)", fractionWhere(sample.MOIC, func(v float64) bool { return v >= 10 }))

	// ExitValuation is the success-path valuation column, drawn for
	// all trials regardless of regime.
	m.Section("--- Valuation & Proceeds ---")
	m.Set("Mean 'Success Path' ExitVal", computeMean(sample.ExitValuation))
	m.Set("25th Pctl 'Success Path' ExitVal", computePercentile(sortedExitVal, 0.25))
	m.Set("Median 'Success Path' ExitVal", computePercentile(sortedExitVal, 0.50))
	m.Set("75th Pctl 'Success Path' ExitVal", computePercentile(sortedExitVal, 0.75))
	m.Set("Mean Final Investor Proceeds", meanMOIC*deal.InitialInvestment)
	m.Set("Median Final Investor Proceeds", medianMOIC*deal.InitialInvestment)

	m.Section("--- Holding Period ---")
	m.Set("Mean Holding Period", computeMean(sample.HoldingPeriod))
	m.Set("25th Pctl Holding Period", computePercentile(sortedHolding, 0.25))
	m.Set("Median Holding Period", computePercentile(sortedHolding, 0.50))
	m.Set("75th Pctl Holding Period", computePercentile(sortedHolding, 0.75))

	m.Section("--- Asymmetry Analysis (Doc 2, 7.2) ---")
	m.Set("Conditional Upside (E+)", asym.UpsideEPlus)
	m.Set("Conditional Downside (E-)", asym.DownsideEMinus)
	m.Set("Asymmetry Score (E+ / |E-|)", asym.Score)

	m.Section("--- Recommendation (Doc 1, 3.3) ---")
	m.Set("Recommendation", string(rec))

	return m
}

// computeAsymmetry builds the conditional upside/downside cohorts.
// E+ averages the top decile (IRR at or above the p90 threshold); E-
// averages the losing cohort (IRR < 0) and is 0 when nothing lost
// money, which the evaluator treats as "no downside registered" rather
// than a real ratio.
func computeAsymmetry(irr []float64, p90Threshold float64) Asymmetry {
	upside, _ := conditionalMean(irr, func(v float64) bool { return v >= p90Threshold })
	downside, hasLosses := conditionalMean(irr, func(v float64) bool { return v < 0 })

	score := 0.0
	if downside != 0 {
		if math.IsInf(downside, 0) || math.Abs(downside) < 1e-9 {
			score = math.Inf(1)
		} else {
			score = upside / math.Abs(downside)
		}
	}

	return Asymmetry{
		UpsideEPlus:    upside,
		DownsideEMinus: downside,
		Score:          score,
		NoLosingTrials: !hasLosses,
	}
}
