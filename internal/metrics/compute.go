package metrics

import "sort"

// computeMean calculates the arithmetic mean of values.
func computeMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sortedCopy returns an ascending copy of values.
func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

// computePercentile uses linear interpolation.
// sorted must be pre-sorted ASC.
// p is percentile (0.10 = 10th percentile).
func computePercentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p * float64(n-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// fractionWhere counts the empirical fraction of values satisfying
// pred.
func fractionWhere(values []float64, pred func(float64) bool) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if pred(v) {
			count++
		}
	}
	return float64(count) / float64(len(values))
}

// conditionalMean averages the values satisfying pred; ok is false
// when the cohort is empty.
func conditionalMean(values []float64, pred func(float64) bool) (mean float64, ok bool) {
	sum := 0.0
	count := 0
	for _, v := range values {
		if pred(v) {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
