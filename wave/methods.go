package wave

import (
	"math"

	"github.com/nrdyn/wfctile/propagator"
)

// Clear resets the wave, compatibility counters, sums, entropies, observed
// assignment, ban stack and scan cursor to their initial values (spec.md
// §4.3). Clear is idempotent: two consecutive calls yield identical state.
func (s *State) Clear() {
	n := s.W * s.H
	for cell := 0; cell < n; cell++ {
		for t := 0; t < s.T; t++ {
			s.live[s.index(cell, int32(t))] = true
			for d := propagator.Direction(0); d < 4; d++ {
				s.compatible[s.compatIndex(cell, int32(t), d)] = int32(len(s.prop.Neighbors(propagator.Opposite(d), int32(t))))
			}
		}
		s.sumsOfOnes[cell] = int32(s.T)
		s.sumsOfWeights[cell] = s.sumOfWeights
		s.sumsOfWeightLogWeights[cell] = s.sumOfWeightLogWeights
		s.entropies[cell] = s.startingEntropy
		s.observed[cell] = -1
	}
	s.stack = s.stack[:0]
	s.observedSoFar = 0
}

// Ban removes variant t from cell's live set. Precondition: t must
// currently be live at cell; calling Ban twice on the same (cell, t)
// without an intervening Clear panics (spec.md §8, invariant 10).
//
// Returns false if this ban leaves cell with zero live variants — a
// contradiction, detected at the moment it occurs rather than the
// reference implementation's end-of-propagate `sums_of_ones[0] > 0` proxy.
func (s *State) Ban(cell int, t int32) bool {
	idx := s.index(cell, t)
	if !s.live[idx] {
		panic("wave: Ban called on an already-banned (cell, variant) pair")
	}
	s.live[idx] = false
	for d := propagator.Direction(0); d < 4; d++ {
		s.compatible[s.compatIndex(cell, t, d)] = 0
	}
	s.stack = append(s.stack, banEntry{cell: cell, variant: t})

	s.sumsOfOnes[cell]--
	s.sumsOfWeights[cell] -= s.weights[t]
	s.sumsOfWeightLogWeights[cell] -= s.weightLogWeights[t]

	sum := s.sumsOfWeights[cell]
	s.entropies[cell] = math.Log(sum) - s.sumsOfWeightLogWeights[cell]/sum

	return s.sumsOfOnes[cell] > 0
}

// ObservedSoFar returns the ScanLine heuristic's scan cursor.
func (s *State) ObservedSoFar() int { return s.observedSoFar }

// SetObservedSoFar sets the ScanLine heuristic's scan cursor.
func (s *State) SetObservedSoFar(i int) { s.observedSoFar = i }

// SetObserved records cell's final collapsed variant.
func (s *State) SetObserved(cell int, t int32) { s.observed[cell] = t }

// Distribution fills dst (len == T) with each live variant's weight, 0 for
// banned variants, matching spec.md §4.5's sampling distribution.
func (s *State) Distribution(cell int, dst []float64) {
	for t := 0; t < s.T; t++ {
		if s.live[s.index(cell, int32(t))] {
			dst[t] = s.weights[t]
		} else {
			dst[t] = 0
		}
	}
}

// FinalizeSweep sets observed[i] to the first live variant at every cell
// still undecided, and reports whether every cell ended up with a live
// variant — the corrected success polarity of spec.md §9 (the reference
// implementation inverts this check).
func (s *State) FinalizeSweep() bool {
	ok := true
	for cell := 0; cell < s.W*s.H; cell++ {
		if s.observed[cell] >= 0 {
			continue
		}
		found := false
		for t := 0; t < s.T; t++ {
			if s.live[s.index(cell, int32(t))] {
				s.observed[cell] = int32(t)
				found = true
				break
			}
		}
		if !found {
			ok = false
		}
	}
	return ok
}
