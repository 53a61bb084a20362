package domain

// StochasticParameters is the fixed set of fitted distribution
// specifications driving one simulation run. Built once by the
// quantile parameterizer and immutable afterwards.
type StochasticParameters struct {
	TrimodalRisk     TrimodalRiskSpec
	RecoveryOnZombie TriangularSpec
	PostMoneyValCap  TriangularSpec
	TimeToExitYrs    TriangularSpec
	NumFutureRounds  DiscreteUniformSpec
	DilutionPerRound TriangularSpec

	TAM         LognormalSpec
	MarketShare LognormalSpec
	ExitMult    LognormalSpec
}

// Validate re-asserts every distribution invariant. The sampler calls
// this before drawing anything so a shape violation can never produce
// a partial run.
func (p StochasticParameters) Validate() error {
	if err := p.TrimodalRisk.Validate("trimodal_risk"); err != nil {
		return err
	}
	if err := p.RecoveryOnZombie.Validate("recovery_on_zombie"); err != nil {
		return err
	}
	if err := p.PostMoneyValCap.Validate("post_money_val_cap"); err != nil {
		return err
	}
	if err := p.TimeToExitYrs.Validate("time_to_exit_yrs"); err != nil {
		return err
	}
	if err := p.NumFutureRounds.Validate("num_future_rounds"); err != nil {
		return err
	}
	if err := p.DilutionPerRound.Validate("dilution_per_round"); err != nil {
		return err
	}
	if err := p.TAM.Validate("tam_lognormal"); err != nil {
		return err
	}
	if err := p.MarketShare.Validate("market_share_lognormal"); err != nil {
		return err
	}
	if err := p.ExitMult.Validate("exit_multiple_lognormal"); err != nil {
		return err
	}
	return nil
}
