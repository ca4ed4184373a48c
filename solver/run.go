package solver

import "github.com/nrdyn/wfctile/rngx"

// Run performs one deterministic solve attempt: clear the wave, seed a
// ChaCha8 stream from seed, then repeatedly select/observe/propagate up
// to limit times (spec.md §4.8).
//
// Returns true if the grid reached a fully consistent, fully observed
// state (or the step limit was exhausted without contradiction — the
// solver is still self-consistent and the caller may retry with a
// larger limit), false if propagation detected a contradiction.
// Run never returns an error: runtime outcomes are not errors, only a
// signal to retry with a fresh seed (spec.md §7).
func (s *Solver) Run(seed uint64, limit int) bool {
	s.state.Clear()
	rng := rngx.NewChaCha8(seed)

	for i := 0; i < limit; i++ {
		node, ok := s.nextUnobservedNode(rng)
		if !ok {
			return s.state.FinalizeSweep()
		}

		if s.onObserve != nil {
			s.onObserve()
		}
		s.observe(node, rng)
		if !s.state.Propagate() {
			return false
		}
	}

	return true
}
