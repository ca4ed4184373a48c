package variant

import (
	"fmt"
	"image"
)

// Symmetry identifies the symmetry class of a declared source tile. Each
// class fixes a cardinality (the number of distinct oriented variants) and
// a pure rotate/reflect group action over local indices [0, cardinality).
//
// Modeled as a closed Go enum rather than interface dispatch, per the
// "no virtual dispatch in the hot path" design note: tile expansion runs
// once at construction, but the action table it produces is indexed in
// the solver's hot path, so the enum stays a plain byte and a switch.
type Symmetry byte

const (
	// SymL is an "L"-shaped tile: 4 rotations, no independent reflections.
	SymL Symmetry = 'L'
	// SymT is a "T"-shaped tile: 4 rotations, axis-aligned reflection.
	SymT Symmetry = 'T'
	// SymI is a straight tile: 2 rotations (0°/90°), reflection is identity.
	SymI Symmetry = 'I'
	// SymSlash is a diagonal tile: 2 rotations, reflection composes with rotation.
	SymSlash Symmetry = '\\'
	// SymF is a fully asymmetric tile: all 8 orientations are distinct.
	SymF Symmetry = 'F'
	// SymX is the default class for any other symmetry letter: fully
	// symmetric, a single variant covers every orientation.
	SymX Symmetry = 'X'
)

// ParseSymmetry maps a configuration's symmetry letter to a Symmetry class.
// Only the first character is examined: any value whose first character is
// not 'L', 'T', 'I', '\' or 'F' maps to SymX, matching the reference
// implementation's catch-all branch. An empty string is also SymX.
func ParseSymmetry(s string) Symmetry {
	if len(s) == 0 {
		return SymX
	}
	switch s[0] {
	case 'L':
		return SymL
	case 'T':
		return SymT
	case 'I':
		return SymI
	case '\\':
		return SymSlash
	case 'F':
		return SymF
	default:
		return SymX
	}
}

// Cardinality returns the number of distinct oriented variants this
// symmetry class produces from a single declared tile.
func (s Symmetry) Cardinality() int {
	switch s {
	case SymL, SymT:
		return 4
	case SymI, SymSlash:
		return 2
	case SymF:
		return 8
	default:
		return 1
	}
}

// Rotate applies this class's 90° rotation group action to local index i.
func (s Symmetry) Rotate(i int) int {
	switch s {
	case SymL, SymT:
		return (i + 1) % 4
	case SymI, SymSlash:
		return 1 - i
	case SymF:
		if i < 4 {
			return (i + 1) % 4
		}
		return 4 + (i-1)%4
	default:
		return i
	}
}

// Reflect applies this class's horizontal-reflection group action to local index i.
func (s Symmetry) Reflect(i int) int {
	switch s {
	case SymL:
		if i%2 == 0 {
			return i + 1
		}
		return i - 1
	case SymT:
		if i%2 == 0 {
			return i
		}
		return 4 - i
	case SymI:
		return i
	case SymSlash:
		return 1 - i
	case SymF:
		if i < 4 {
			return i + 4
		}
		return i - 4
	default:
		return i
	}
}

// Loader loads the pixel payload for a declared tile. folder is the
// configuration's source directory; name is the tile's declared file name
// (including extension). Implementations must return equally-sized square
// images for every tile in a set; Expand enforces this via ErrTileSizeMismatch.
type Loader interface {
	Load(folder, name string) (image.Image, error)
}

// Variant is a single distinct oriented tile: a stable dense index, a
// human-readable label ("<stem> <orientation>"), its sampling weight, and
// its oriented pixel payload. Variants are immutable once produced by Expand.
type Variant struct {
	Index  int
	Label  string
	Weight float64
	Image  image.Image
}

// ActionTable is the T×8 matrix of variant indices described in spec.md
// §3/§4.1: for variant t, ActionTable.At(t, k) is the variant obtained by
// applying the k-th symmetry transform to t. Columns 0..3 are the four
// rotations; columns 4..7 are those rotations composed with a horizontal
// flip. Stored as a flat row-major slice for cache locality, matching the
// teacher's flat-indexing convention (gridgraph.index(x,y) = y*Width+x).
type ActionTable struct {
	rows  int32 // T, the total number of variants
	flat  []int32
	width int32 // always 8
}

// NewActionTable allocates an ActionTable for n variants, zero-initialized.
func NewActionTable(n int) ActionTable {
	return ActionTable{rows: int32(n), flat: make([]int32, n*8), width: 8}
}

// Set records ActionTable.At(t, k) = v.
func (a ActionTable) Set(t, k int, v int32) {
	a.flat[int32(t)*a.width+int32(k)] = v
}

// At returns the variant obtained by applying transform k to variant t.
func (a ActionTable) At(t, k int) int32 {
	return a.flat[int32(t)*a.width+int32(k)]
}

// NumVariants returns T, the total number of oriented variants.
func (a ActionTable) NumVariants() int {
	return int(a.rows)
}

// Set is the complete output of tile expansion: every oriented variant,
// the action table closing them under symmetry, and the stem→base-index
// map used only during propagator construction.
type Set struct {
	Variants        []Variant
	Actions         ActionTable
	FirstOccurrence map[string]int
	TileSize        int
}

// Label formats the textual dump label "<stem> <orient>" for variant t,
// matching spec.md §6's "Solver output...textual dump" contract.
func (set *Set) Label(t int) string {
	if t < 0 || t >= len(set.Variants) {
		return fmt.Sprintf("<invalid %d>", t)
	}
	return set.Variants[t].Label
}
