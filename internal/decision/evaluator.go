// Package decision maps asymmetry metrics to a categorical investment
// recommendation via ordered rules, first match wins.
package decision

// Evaluator evaluates recommendation rules.
type Evaluator struct{}

// NewEvaluator creates a new recommendation evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the verdict for the given asymmetry metrics.
// Rule order:
//  1. No losing trials and positive upside -> no downside registered.
//  2. No losing trials otherwise -> no signal at all.
//  3. Score > 10 -> exceptional asymmetry.
//  4. Score > 3 -> favorable.
//  5. Score > 1 -> marginally favorable.
//  6. Score >= 0 -> unfavorable.
//  7. Negative score (negative upside while losses exist) -> unfavorable.
func (e *Evaluator) Evaluate(in Input) Recommendation {
	if in.NoLosingTrials {
		if in.UpsideEPlus > 0 {
			return StrongNoDownside
		}
		return NoSignal
	}

	switch {
	case in.Score > 10:
		return StrongAsymmetry
	case in.Score > 3:
		return FavorableAsymmetry
	case in.Score > 1:
		return MarginallyFavorable
	case in.Score >= 0:
		return Unfavorable
	default:
		return Unfavorable
	}
}
