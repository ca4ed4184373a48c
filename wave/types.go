package wave

import (
	"math"

	"github.com/nrdyn/wfctile/propagator"
)

// banEntry is one LIFO stack entry awaiting propagation.
type banEntry struct {
	cell    int
	variant int32
}

// State is the W×H wave grid plus every counter spec.md §3 requires to
// keep it consistent: live bits, per-direction compatibility counts,
// weighted sums, entropies, the observed assignment, and the ban stack.
//
// Tile expander and propagator outputs (weights, prop) are immutable
// after construction; everything else here is reset by Clear and mutated
// during a run.
type State struct {
	W, H, T  int
	Periodic bool
	N        int // edge-exclusion margin; always 1 per spec.md §4.4

	prop    *propagator.Propagator
	weights []float64 // per-variant weight, copied from variant.Set

	weightLogWeights       []float64 // precomputed w_t * ln(w_t)
	sumOfWeights           float64
	sumOfWeightLogWeights  float64
	startingEntropy        float64

	live       []bool  // [cell*T+t]
	compatible []int32 // [(cell*T+t)*4+d]

	sumsOfOnes             []int32
	sumsOfWeights          []float64
	sumsOfWeightLogWeights []float64
	entropies              []float64
	observed               []int32 // -1 == None

	stack          []banEntry
	observedSoFar  int
}

// New allocates a State for a W×H grid over prop's variant space, with
// per-variant weights, and immediately clears it to its initial state.
func New(prop *propagator.Propagator, weights []float64, w, h int, periodic bool) *State {
	t := prop.NumVariants()
	s := &State{
		W: w, H: h, T: t,
		Periodic: periodic,
		N:        1,
		prop:     prop,
		weights:  append([]float64(nil), weights...),

		weightLogWeights: make([]float64, t),

		live:       make([]bool, w*h*t),
		compatible: make([]int32, w*h*t*4),

		sumsOfOnes:             make([]int32, w*h),
		sumsOfWeights:          make([]float64, w*h),
		sumsOfWeightLogWeights: make([]float64, w*h),
		entropies:              make([]float64, w*h),
		observed:               make([]int32, w*h),
	}
	for i, wt := range s.weights {
		s.weightLogWeights[i] = wt * math.Log(wt)
		s.sumOfWeights += wt
		s.sumOfWeightLogWeights += s.weightLogWeights[i]
	}
	s.startingEntropy = math.Log(s.sumOfWeights) - s.sumOfWeightLogWeights/s.sumOfWeights

	s.Clear()
	return s
}

// index returns the flat live-bit offset for (cell, t).
func (s *State) index(cell int, t int32) int {
	return cell*s.T + int(t)
}

// compatIndex returns the flat compatibility-counter offset for (cell, t, d).
func (s *State) compatIndex(cell int, t int32, d propagator.Direction) int {
	return (cell*s.T+int(t))*4 + int(d)
}

// Live reports whether variant t is still possible at cell.
func (s *State) Live(cell int, t int32) bool {
	return s.live[s.index(cell, t)]
}

// SumOfOnes returns the number of live variants remaining at cell.
func (s *State) SumOfOnes(cell int) int32 {
	return s.sumsOfOnes[cell]
}

// Entropy returns the current weighted Shannon entropy of cell.
func (s *State) Entropy(cell int) float64 {
	return s.entropies[cell]
}

// Observed returns the collapsed variant at cell, or -1 if still undecided.
func (s *State) Observed(cell int) int32 {
	return s.observed[cell]
}

// Weight returns the declared weight of variant t.
func (s *State) Weight(t int32) float64 {
	return s.weights[t]
}

// Coordinate converts a row-major cell index back to (x, y), matching the
// teacher's gridgraph.Coordinate convention.
func (s *State) Coordinate(cell int) (x, y int) {
	return cell % s.W, cell / s.W
}

// CellIndex converts (x, y) to a row-major cell index.
func (s *State) CellIndex(x, y int) int {
	return y*s.W + x
}
