package metrics

import (
	"math"
	"strings"
	"testing"

	"venture-sim-lab/internal/decision"
	"venture-sim-lab/internal/domain"
)

func TestComputePercentile_LinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		p    float64
		want float64
	}{
		{0.50, 3},
		{0.25, 2},
		{0.10, 1.4},
		{0.90, 4.6},
		{0.0, 1},
		{1.0, 5},
	}

	for _, tt := range tests {
		got := computePercentile(sorted, tt.p)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("p=%.2f: expected %f, got %f", tt.p, tt.want, got)
		}
	}
}

func TestComputePercentile_SmallInputs(t *testing.T) {
	if got := computePercentile(nil, 0.5); got != 0 {
		t.Errorf("empty input: expected 0, got %f", got)
	}
	if got := computePercentile([]float64{7}, 0.9); got != 7 {
		t.Errorf("single value: expected 7, got %f", got)
	}
}

func TestComputeAsymmetry(t *testing.T) {
	irr := []float64{-1, -0.5, 0.1, 0.2, 2.0}
	// p90 of the sorted slice by linear interpolation: 1.28.
	p90 := computePercentile(sortedCopy(irr), 0.90)

	asym := computeAsymmetry(irr, p90)

	if math.Abs(asym.UpsideEPlus-2.0) > 1e-12 {
		t.Errorf("expected E+ 2.0, got %f", asym.UpsideEPlus)
	}
	if math.Abs(asym.DownsideEMinus-(-0.75)) > 1e-12 {
		t.Errorf("expected E- -0.75, got %f", asym.DownsideEMinus)
	}
	if math.Abs(asym.Score-2.0/0.75) > 1e-12 {
		t.Errorf("expected score %f, got %f", 2.0/0.75, asym.Score)
	}
	if asym.NoLosingTrials {
		t.Error("losing cohort is not empty")
	}
}

func TestComputeAsymmetry_NoLosingTrials(t *testing.T) {
	irr := []float64{0.1, 0.2, 0.5, 1.0}
	asym := computeAsymmetry(irr, computePercentile(sortedCopy(irr), 0.90))

	if !asym.NoLosingTrials {
		t.Error("expected empty losing cohort")
	}
	if asym.DownsideEMinus != 0 {
		t.Errorf("expected E- sentinel 0, got %f", asym.DownsideEMinus)
	}
	// Score stays at the 0 sentinel; the evaluator branches on the
	// empty cohort, never on this value.
	if asym.Score != 0 {
		t.Errorf("expected score sentinel 0, got %f", asym.Score)
	}
}

func TestComputeAsymmetry_VanishingDownside(t *testing.T) {
	irr := []float64{-1e-12, 0.5, 1.0, 2.0}
	asym := computeAsymmetry(irr, computePercentile(sortedCopy(irr), 0.90))

	if asym.NoLosingTrials {
		t.Error("losing cohort is not empty")
	}
	if !math.IsInf(asym.Score, 1) {
		t.Errorf("expected +Inf score for |E-| < 1e-9, got %f", asym.Score)
	}
}

func handSample() *domain.TrialSample {
	// Four trials: one failure, one zombie-grade recovery, two
	// successes. Columns hand-picked for easy arithmetic.
	return &domain.TrialSample{
		PathDraw:           []float64{0.1, 0.6, 0.8, 0.95},
		MOIC:               []float64{0, 0.5, 4, 12},
		IRR:                []float64{-1, -0.1, 0.3, 0.6},
		HoldingPeriod:      []float64{4, 5, 6, 5},
		ExitValuation:      []float64{1e8, 2e8, 3e8, 4e8},
		ExitMultiple:       []float64{5, 5, 5, 5},
		MarketShare:        []float64{0.02, 0.02, 0.02, 0.02},
		TAM:                []float64{2e9, 2e9, 2e9, 2e9},
		PostMoneyValuation: []float64{6e6, 6e6, 6e6, 6e6},
	}
}

func TestAnalyze_Bundle(t *testing.T) {
	deal := domain.DealInputs{InitialInvestment: 1_000_000}
	m := Analyze(handSample(), deal)

	// Mean MOIC = (0 + 0.5 + 4 + 12) / 4 = 4.125.
	if got := m.Float("Expected MOIC (Mean)"); math.Abs(got-4.125) > 1e-12 {
		t.Errorf("expected mean MOIC 4.125, got %f", got)
	}
	// Median MOIC by interpolation over [0, 0.5, 4, 12] = 2.25.
	if got := m.Float("Median MOIC (50th Pctl)"); math.Abs(got-2.25) > 1e-12 {
		t.Errorf("expected median MOIC 2.25, got %f", got)
	}
	// P(MOIC < 0.1) = 1/4, P(MOIC >= 3) = 2/4, P(MOIC >= 10) = 1/4.
	if got := m.Float("P(Total Loss, MOIC < 0.1x)"); got != 0.25 {
		t.Errorf("expected 0.25, got %f", got)
	}
	if got := m.Float("P(MOIC >= 3x)"); got != 0.5 {
		t.Errorf("expected 0.5, got %f", got)
	}
	if got := m.Float("P(MOIC >= 10x)"); got != 0.25 {
		t.Errorf("expected 0.25, got %f", got)
	}
	// Proceeds scale the MOIC stats by the investment.
	if got := m.Float("Mean Final Investor Proceeds"); math.Abs(got-4_125_000) > 1e-6 {
		t.Errorf("expected proceeds 4125000, got %f", got)
	}

	rec, ok := m.Get("Recommendation")
	if !ok {
		t.Fatal("missing Recommendation entry")
	}
	if _, isString := rec.(string); !isString || rec == "" {
		t.Errorf("recommendation must be a non-empty categorical string, got %v", rec)
	}
}

func TestAnalyze_LabelOrderContract(t *testing.T) {
	deal := domain.DealInputs{InitialInvestment: 1_000_000}
	m := Analyze(handSample(), deal)

	entries := m.Entries()
	if entries[0].Label != "--- Central Tendency (IRR) ---" {
		t.Errorf("first entry must be the IRR section header, got %q", entries[0].Label)
	}
	if last := entries[len(entries)-1]; last.Label != "Recommendation" {
		t.Errorf("last entry must be Recommendation, got %q", last.Label)
	}

	// Section pseudo-entries carry empty string values and survive in
	// order.
	sections := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Label, "--- ") {
			sections++
			if e.Value != "" {
				t.Errorf("section %q must map to empty string, got %v", e.Label, e.Value)
			}
		}
	}
	if sections != 9 {
		t.Errorf("expected 9 section headers, got %d", sections)
	}
}

func TestAnalyze_NoDownsideRecommendation(t *testing.T) {
	deal := domain.DealInputs{InitialInvestment: 1_000_000}
	s := handSample()
	s.IRR = []float64{0.1, 0.2, 0.3, 0.6}

	m := Analyze(s, deal)
	rec, _ := m.Get("Recommendation")
	if rec != string(decision.StrongNoDownside) {
		t.Errorf("expected %q, got %v", decision.StrongNoDownside, rec)
	}
}
