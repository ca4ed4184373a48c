package solver

import "github.com/nrdyn/wfctile/rngx"

// observe collapses node to a single variant, sampled by weight among
// its still-live options, and bans every other live variant at that
// cell (spec.md §4.5).
func (s *Solver) observe(node int, rng *rngx.ChaCha8) {
	t := len(s.set.Variants)
	dist := make([]float64, t)
	s.state.Distribution(node, dist)

	r := rng.Float64()
	chosen := rngx.WeightedSample(dist, r)

	for v := 0; v < t; v++ {
		if v != chosen && s.state.Live(node, int32(v)) {
			s.state.Ban(node, int32(v))
		}
	}
}
