package solver

import (
	"fmt"
	"iter"
	"strings"

	"github.com/nrdyn/wfctile/variant"
)

// Cells yields every grid cell's linear index and its observed result
// (the variant's index, label, and image), in row-major order. Cells
// whose variant is still unobserved (<0) are skipped.
func (s *Solver) Cells() iter.Seq2[int, CellResult] {
	return func(yield func(int, CellResult) bool) {
		for i := 0; i < s.w*s.h; i++ {
			t := s.state.Observed(i)
			if t < 0 {
				continue
			}
			cr := CellResult{
				X:       i % s.w,
				Y:       i / s.w,
				Variant: t,
				Label:   s.set.Label(int(t)),
				Image:   s.set.Variants[t].Image,
			}
			if !yield(i, cr) {
				return
			}
		}
	}
}

// Dump renders the grid as a textual "<stem> <orient>" table, one row
// per line, matching original_source's Display impl for SimpleTiled.
func (s *Solver) Dump() string {
	var unobserved int
	for i := 0; i < s.w*s.h; i++ {
		if s.state.Observed(i) < 0 {
			unobserved++
		}
	}
	if unobserved > 0 {
		return fmt.Sprintf("%d unobserved tiles", unobserved)
	}

	var b strings.Builder
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			t := s.state.Observed(x + y*s.w)
			b.WriteString(s.set.Label(int(t)))
			b.WriteString(",\t")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Observed exposes the raw observed slice length (grid size) and, via
// index, each cell's variant (or -1). Used by tileimg.Compositor.Save.
func (s *Solver) Observed() []int32 {
	out := make([]int32, s.w*s.h)
	for i := range out {
		out[i] = s.state.Observed(i)
	}
	return out
}

// Variants exposes the expanded variant set for rasterization.
func (s *Solver) Variants() []variant.Variant { return s.set.Variants }

// TileSize returns the declared tile image size, for rasterization.
func (s *Solver) TileSize() int { return s.set.TileSize }

// Dimensions returns the grid's width and height in tiles.
func (s *Solver) Dimensions() (w, h int) { return s.w, s.h }
