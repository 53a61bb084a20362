package decision

// Recommendation is the categorical investment verdict.
type Recommendation string

// The seven possible verdicts, matched in order by the evaluator.
const (
	StrongNoDownside    Recommendation = "Strongly Recommend (No Downside Registered)"
	NoSignal            Recommendation = "N/A (No Upside or Downside Registered)"
	StrongAsymmetry     Recommendation = "Strongly Recommend (Exceptional Asymmetry)"
	FavorableAsymmetry  Recommendation = "Recommend (Favorable Asymmetry)"
	MarginallyFavorable Recommendation = "Proceed with Caution (Marginally Favorable)"
	Unfavorable         Recommendation = "Not Recommended (Unfavorable Asymmetry)"
)

// Input contains the asymmetry metrics the evaluator rules on.
type Input struct {
	// UpsideEPlus is the conditional mean IRR of the top decile
	// (trials at or above the 90th-percentile IRR threshold).
	UpsideEPlus float64

	// DownsideEMinus is the conditional mean IRR of the losing cohort
	// (trials with negative IRR); 0 when no trial lost money.
	DownsideEMinus float64

	// Score is E+ / |E-|, +Inf for a vanishing downside, 0 when no
	// losing trials exist (the sentinel is never ruled on directly in
	// that case).
	Score float64

	// NoLosingTrials marks an empty losing cohort, which branches
	// ahead of any score rule.
	NoLosingTrials bool
}
