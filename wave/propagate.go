package wave

import "github.com/nrdyn/wfctile/propagator"

// neighborCell computes the d-neighbor cell of (x1, y1), honoring the
// non-periodic edge-exclusion margin N and periodic wraparound, per
// spec.md §4.7. The second return value is false if the neighbor falls
// outside the grid in non-periodic mode.
func (s *State) neighborCell(x1, y1 int, d propagator.Direction) (cell int, ok bool) {
	x2 := x1 + propagator.DX[d]
	y2 := y1 + propagator.DY[d]

	if !s.Periodic && (x2 < 0 || y2 < 0 || x2+s.N > s.W || y2+s.N > s.H) {
		return 0, false
	}
	if x2 < 0 {
		x2 += s.W
	} else if x2 >= s.W {
		x2 -= s.W
	}
	if y2 < 0 {
		y2 += s.H
	} else if y2 >= s.H {
		y2 -= s.H
	}

	return s.CellIndex(x2, y2), true
}

// Propagate drains the ban stack, decrementing each affected neighbor's
// compatibility counters and cascading further bans, until the stack
// empties (consistent) or a ban produces a contradiction (returns false
// immediately, short-circuiting the remaining stack — spec.md §4.7).
func (s *State) Propagate() bool {
	for len(s.stack) > 0 {
		entry := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		i1, t1 := entry.cell, entry.variant
		x1, y1 := s.Coordinate(i1)

		for d := propagator.Direction(0); d < 4; d++ {
			i2, ok := s.neighborCell(x1, y1, d)
			if !ok {
				continue
			}

			var banList []int32
			for _, t2 := range s.prop.Neighbors(d, t1) {
				if !s.live[s.index(i2, t2)] {
					continue
				}
				ci := s.compatIndex(i2, t2, d)
				s.compatible[ci]--
				if s.compatible[ci] == 0 {
					banList = append(banList, t2)
				}
			}

			for _, t2 := range banList {
				if !s.live[s.index(i2, t2)] {
					continue
				}
				if !s.Ban(i2, t2) {
					return false
				}
			}
		}
	}

	return true
}
