package rngx

// WeightedSample returns the least index k such that the prefix sum
// weights[0]+...+weights[k] is >= r * sum(weights), per spec.md §4.5.
// If weights is empty or every weight is zero, it returns 0 — the
// caller's subsequent propagate step is expected to detect the
// resulting contradiction.
func WeightedSample(weights []float64, r float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	threshold := r * total
	var running float64
	for k, w := range weights {
		running += w
		if running >= threshold {
			return k
		}
	}
	return len(weights) - 1
}
