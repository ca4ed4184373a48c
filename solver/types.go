package solver

import (
	"image"

	"github.com/nrdyn/wfctile/propagator"
	"github.com/nrdyn/wfctile/tileimg"
	"github.com/nrdyn/wfctile/variant"
	"github.com/nrdyn/wfctile/wave"
	"github.com/nrdyn/wfctile/wfconfig"
)

// Heuristic selects the cell-selection strategy a Solver run uses
// (spec.md §4.4).
type Heuristic int

const (
	// ScanLine returns the first eligible cell with more than one live
	// variant, scanning forward from the last cursor position.
	ScanLine Heuristic = iota
	// Entropy picks the eligible cell with the lowest weighted Shannon
	// entropy, tie-broken by a small uniform noise term.
	Entropy
	// MRV (minimum remaining values) picks the eligible cell with the
	// fewest live variants, tie-broken the same way as Entropy.
	MRV
)

// ParseHeuristic maps a CLI flag value to a Heuristic. Unrecognized
// strings fall back to ScanLine, the reference's default.
func ParseHeuristic(s string) Heuristic {
	switch s {
	case "entropy":
		return Entropy
	case "mrv":
		return MRV
	default:
		return ScanLine
	}
}

func (h Heuristic) String() string {
	switch h {
	case Entropy:
		return "entropy"
	case MRV:
		return "mrv"
	default:
		return "scan-line"
	}
}

// CellResult is one cell of a solved (or partially solved) grid, as
// yielded by Solver.Cells.
type CellResult struct {
	X, Y    int
	Variant int32
	Label   string
	Image   image.Image
}

// Solver owns one tiled WFC model: the expanded tile set, derived
// propagator, and wave state for a W×H grid.
type Solver struct {
	set       *variant.Set
	prop      *propagator.Propagator
	state     *wave.State
	heuristic Heuristic
	w, h      int
	periodic  bool
	onObserve func()
}

// New expands cfg's tiles via loader, builds the propagator from its
// declared neighbors, and allocates wave state for a w×h grid. Returns
// the same configuration errors variant.Expand and propagator.Build do
// (spec.md §7, "Configuration errors").
func New(cfg *wfconfig.Config, folder string, w, h int, periodic bool, heuristic Heuristic, loader tileimg.Loader) (*Solver, error) {
	set, err := variant.Expand(cfg, folder, loader)
	if err != nil {
		return nil, err
	}
	prop, err := propagator.Build(set, cfg.Neighbors)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, len(set.Variants))
	for i, v := range set.Variants {
		weights[i] = v.Weight
	}
	state := wave.New(prop, weights, w, h, periodic)

	return &Solver{set: set, prop: prop, state: state, heuristic: heuristic, w: w, h: h, periodic: periodic}, nil
}

// Diagnostics returns the modeling warnings collected while building
// the propagator (spec.md §7, "Modeling warnings").
func (s *Solver) Diagnostics() []string {
	return s.prop.Diagnostics
}

// OnObserve registers fn to be called once per cell collapsed during Run,
// mirroring original_source's inline bar.inc(1) per node — the caller
// drives a progress bar (or any other side channel) off real solve
// progress instead of guessing at Run's internal pacing. A nil fn (the
// default) disables the hook.
func (s *Solver) OnObserve(fn func()) {
	s.onObserve = fn
}
