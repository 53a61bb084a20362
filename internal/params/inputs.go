package params

// Inputs is the flat, percentile-anchored request schema shared by the
// HTTP adapter (JSON body) and the CLI (YAML scenario file). Rates and
// dilution/market-share anchors are expressed in percent; Build
// normalizes them to the unit interval.
type Inputs struct {
	FailureRatePct float64 `json:"failure_rate_pct" yaml:"failure_rate_pct"`
	ZombieRatePct  float64 `json:"zombie_rate_pct" yaml:"zombie_rate_pct"`
	RecMin         float64 `json:"rec_min" yaml:"rec_min"`
	RecMode        float64 `json:"rec_mode" yaml:"rec_mode"`
	RecMax         float64 `json:"rec_max" yaml:"rec_max"`

	InitialInvestment float64 `json:"initial_investment" yaml:"initial_investment"`
	ValMin            float64 `json:"val_min" yaml:"val_min"`
	ValMode           float64 `json:"val_mode" yaml:"val_mode"`
	ValMax            float64 `json:"val_max" yaml:"val_max"`
	TAMMinP10         float64 `json:"tam_min_p10" yaml:"tam_min_p10"`
	TAMMaxP90         float64 `json:"tam_max_p90" yaml:"tam_max_p90"`
	TimeMin           float64 `json:"time_min" yaml:"time_min"`
	TimeMode          float64 `json:"time_mode" yaml:"time_mode"`
	TimeMax           float64 `json:"time_max" yaml:"time_max"`
	MSMinP10Pct       float64 `json:"ms_min_p10_pct" yaml:"ms_min_p10_pct"`
	MSMaxP90Pct       float64 `json:"ms_max_p90_pct" yaml:"ms_max_p90_pct"`
	Q1Mult            float64 `json:"q1_mult" yaml:"q1_mult"`
	MedianMult        float64 `json:"median_mult" yaml:"median_mult"`
	Q3Mult            float64 `json:"q3_mult" yaml:"q3_mult"`
	RoundsMin         int     `json:"rounds_min" yaml:"rounds_min"`
	RoundsMax         int     `json:"rounds_max" yaml:"rounds_max"`
	DilMin            float64 `json:"dil_min" yaml:"dil_min"`
	DilMode           float64 `json:"dil_mode" yaml:"dil_mode"`
	DilMax            float64 `json:"dil_max" yaml:"dil_max"`

	NumSimulations int `json:"num_simulations" yaml:"num_simulations"`
}
