package solver

import "math"

// eligible reports whether cell i qualifies for selection: its footprint
// must not fall within the n=1 edge margin unless the grid is periodic
// (spec.md §4.4). With n=1 this margin never actually excludes a cell
// (max coordinate is W-1, and (W-1)+1<=W always holds) — kept exactly as
// the reference computes it rather than simplified away.
func (s *Solver) eligible(i int) bool {
	if s.periodic {
		return true
	}
	const n = 1
	x, y := i%s.w, i/s.w
	return x+n <= s.w && y+n <= s.h
}

// nextUnobservedNode picks the next cell to collapse per the configured
// heuristic, or returns (0, false) if none remain (spec.md §4.4).
func (s *Solver) nextUnobservedNode(rng randFloat64) (int, bool) {
	switch s.heuristic {
	case ScanLine:
		return s.nextScanLine()
	default:
		return s.nextByMetric(rng)
	}
}

// randFloat64 is the minimal RNG surface this package needs; satisfied
// by *rngx.ChaCha8.
type randFloat64 interface {
	Float64() float64
}

func (s *Solver) nextScanLine() (int, bool) {
	n := s.w * s.h
	for i := s.state.ObservedSoFar(); i < n; i++ {
		if !s.eligible(i) {
			continue
		}
		if s.state.SumOfOnes(i) > 1 {
			s.state.SetObservedSoFar(i + 1)
			return i, true
		}
	}
	return 0, false
}

func (s *Solver) nextByMetric(rng randFloat64) (int, bool) {
	min := math.Inf(1)
	argmin := -1
	n := s.w * s.h
	for i := 0; i < n; i++ {
		if !s.eligible(i) {
			continue
		}
		remaining := s.state.SumOfOnes(i)
		if remaining <= 1 {
			continue
		}

		var metric float64
		if s.heuristic == Entropy {
			metric = s.state.Entropy(i)
		} else {
			metric = float64(remaining)
		}

		if metric <= min {
			noise := 0.000001 * rng.Float64()
			if metric+noise < min {
				min = metric + noise
				argmin = i
			}
		}
	}
	if argmin < 0 {
		return 0, false
	}
	return argmin, true
}
