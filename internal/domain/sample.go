package domain

// TrialSample is the column-oriented result table of one simulation
// run: N independent trials, one row per trial, stored as parallel
// float64 columns so the analyzer can work over whole columns at once.
//
// Success-path columns (ExitValuation, ExitMultiple, MarketShare, TAM,
// PostMoneyValuation) are populated for every trial regardless of the
// selected regime, so the analyzer can always condition on them.
// HoldingPeriod is likewise drawn for all paths.
type TrialSample struct {
	PathDraw           []float64
	MOIC               []float64
	IRR                []float64
	HoldingPeriod      []float64
	ExitValuation      []float64
	ExitMultiple       []float64
	MarketShare        []float64
	TAM                []float64
	PostMoneyValuation []float64
}

// NewTrialSample allocates a sample with capacity for n trials.
func NewTrialSample(n int) *TrialSample {
	return &TrialSample{
		PathDraw:           make([]float64, n),
		MOIC:               make([]float64, n),
		IRR:                make([]float64, n),
		HoldingPeriod:      make([]float64, n),
		ExitValuation:      make([]float64, n),
		ExitMultiple:       make([]float64, n),
		MarketShare:        make([]float64, n),
		TAM:                make([]float64, n),
		PostMoneyValuation: make([]float64, n),
	}
}

// Len returns the number of trials.
func (s *TrialSample) Len() int {
	return len(s.MOIC)
}
